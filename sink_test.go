package benchkit

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriterSinkSeparatesSeverities(t *testing.T) {
	var out, errOut bytes.Buffer
	sink := &WriterSink{Out: &out, Err: &errOut}

	sink.Print("all good")
	sink.Error("all bad")

	assert.Equal(t, "all good\n", out.String())
	assert.Equal(t, "all bad\n", errOut.String())
}

func TestColorSinkPlainWhenNotTerminal(t *testing.T) {
	dir := t.TempDir()

	open := func(name string) *os.File {
		f, err := os.Create(filepath.Join(dir, name))
		require.NoError(t, err)
		t.Cleanup(func() { f.Close() })
		return f
	}
	out := open("out")
	errOut := open("err")

	sink := NewColorSink(out, errOut)
	sink.Print("plain line")
	sink.Error("plain failure")

	read := func(f *os.File) string {
		data, err := os.ReadFile(f.Name())
		require.NoError(t, err)
		return string(data)
	}

	// A regular file is not a terminal, so no escape codes.
	assert.Equal(t, "plain line\n", read(out))
	assert.Equal(t, "plain failure\n", read(errOut))
}
