package benchkit

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunDefinitionUntimed(t *testing.T) {
	def := Definition{
		Name: "sleepy",
		Runs: 1,
		Body: Body{Untimed: func() error {
			time.Sleep(5 * time.Millisecond)
			return nil
		}},
	}

	timings, err := runDefinition(def)
	require.NoError(t, err)
	require.Len(t, timings, 1)
	assert.GreaterOrEqual(t, timings[0], 5*time.Millisecond)
}

func TestRunDefinitionTimedExcludesSetup(t *testing.T) {
	def := Definition{
		Name: "trimmed",
		Runs: 1,
		Body: Body{Timed: func(tm *Timer) error {
			time.Sleep(10 * time.Millisecond) // setup, outside the window
			tm.Start()
			tm.Stop()
			return nil
		}},
	}

	timings, err := runDefinition(def)
	require.NoError(t, err)
	require.Len(t, timings, 1)
	assert.Less(t, timings[0], 10*time.Millisecond)
}

func TestRunDefinitionProducesOneTimingPerRun(t *testing.T) {
	var mu sync.Mutex
	invocations := 0

	def := Definition{
		Name: "counted",
		Runs: 7,
		Body: Body{Untimed: func() error {
			mu.Lock()
			invocations++
			mu.Unlock()
			return nil
		}},
	}

	timings, err := runDefinition(def)
	require.NoError(t, err)
	assert.Len(t, timings, 7)
	assert.Equal(t, 7, invocations)
}

func TestRunDefinitionFreshTimerPerRun(t *testing.T) {
	var mu sync.Mutex
	seen := make(map[*clock]bool)

	def := Definition{
		Name: "isolated",
		Runs: 5,
		Body: Body{Timed: func(tm *Timer) error {
			mu.Lock()
			seen[tm.c] = true
			mu.Unlock()
			tm.Start()
			tm.Stop()
			return nil
		}},
	}

	_, err := runDefinition(def)
	require.NoError(t, err)
	assert.Len(t, seen, 5, "runs shared a clock")
}

func TestRunDefinitionTimerNotStopped(t *testing.T) {
	def := Definition{
		Name: "forgetful",
		Runs: 1,
		Body: Body{Timed: func(tm *Timer) error {
			tm.Start()
			return nil
		}},
	}

	timings, err := runDefinition(def)
	require.ErrorIs(t, err, ErrTimerNotStopped)
	assert.Contains(t, err.Error(), "forgetful")
	assert.Nil(t, timings)
}

func TestRunDefinitionTimerNotStarted(t *testing.T) {
	def := Definition{
		Name: "backwards",
		Runs: 1,
		Body: Body{Timed: func(tm *Timer) error {
			tm.Stop()
			return nil
		}},
	}

	_, err := runDefinition(def)
	require.ErrorIs(t, err, ErrTimerNotStarted)
}

func TestRunDefinitionTimerOrderViolation(t *testing.T) {
	def := Definition{
		Name: "reversed",
		Runs: 1,
		Body: Body{Timed: func(tm *Timer) error {
			tm.Stop()
			time.Sleep(time.Millisecond)
			tm.Start()
			return nil
		}},
	}

	_, err := runDefinition(def)
	require.ErrorIs(t, err, ErrTimerOrderViolation)
}

func TestRunDefinitionBodyError(t *testing.T) {
	boom := errors.New("boom")
	def := Definition{
		Name: "failing",
		Runs: 3,
		Body: Body{Untimed: func() error { return boom }},
	}

	timings, err := runDefinition(def)
	require.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "failing")
	assert.Nil(t, timings)
}

func TestRunDefinitionBodyPanic(t *testing.T) {
	def := Definition{
		Name: "explosive",
		Runs: 1,
		Body: Body{Untimed: func() error { panic("kaboom") }},
	}

	_, err := runDefinition(def)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "explosive")
	assert.Contains(t, err.Error(), "kaboom")
}

func TestRunDefinitionFailedRunAbortsDefinitionOnly(t *testing.T) {
	var mu sync.Mutex
	invocations := 0

	def := Definition{
		Name: "partial",
		Runs: 4,
		Body: Body{Untimed: func() error {
			mu.Lock()
			invocations++
			n := invocations
			mu.Unlock()
			if n == 1 {
				return errors.New("first run fails")
			}
			return nil
		}},
	}

	timings, err := runDefinition(def)
	require.Error(t, err)
	assert.Nil(t, timings)
	// The join still waits for every run to settle.
	assert.Equal(t, 4, invocations)
}
