package benchkit

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

// Sink receives report lines from the executor. Error carries lines
// describing failures; implementations may render them differently.
type Sink interface {
	Print(line string)
	Error(line string)
}

// Flusher is implemented by sinks that buffer their output. The
// executor flushes such a sink before signalling a failing exit
// status, so no report line is lost to the process exit.
type Flusher interface {
	Flush() error
}

// WriterSink writes plain report lines to a pair of writers.
type WriterSink struct {
	Out io.Writer
	Err io.Writer
}

// Print writes line to Out followed by a newline.
func (s *WriterSink) Print(line string) {
	fmt.Fprintln(s.Out, line)
}

// Error writes line to Err followed by a newline.
func (s *WriterSink) Error(line string) {
	fmt.Fprintln(s.Err, line)
}

// ColorSink colorizes report lines: blue for ordinary lines, bold red
// for failures. Color is applied only when the target is a terminal;
// the NO_COLOR convention is honored as well.
type ColorSink struct {
	out   io.Writer
	err   io.Writer
	plain *color.Color
	fail  *color.Color
}

// NewColorSink returns a sink writing to the given files, typically
// os.Stdout and os.Stderr.
func NewColorSink(out, err *os.File) *ColorSink {
	s := &ColorSink{
		out:   out,
		err:   err,
		plain: color.New(color.FgBlue),
		fail:  color.New(color.FgRed, color.Bold),
	}
	if !terminal(out) {
		s.plain.DisableColor()
	}
	if !terminal(err) {
		s.fail.DisableColor()
	}
	return s
}

// Print writes line to the output file, in blue when colorized.
func (s *ColorSink) Print(line string) {
	s.plain.Fprintln(s.out, line)
}

// Error writes line to the error file, in bold red when colorized.
func (s *ColorSink) Error(line string) {
	s.fail.Fprintln(s.err, line)
}

func terminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
