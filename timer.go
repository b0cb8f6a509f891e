package benchkit

import (
	"fmt"
	"time"
)

// clock records the boundaries of one measured invocation. Every run
// gets its own clock, so concurrent runs never share timestamps.
type clock struct {
	start   time.Time
	stop    time.Time
	started bool
	stopped bool
}

// Timer is the handle a timed benchmark body uses to mark the measured
// region. Call [Timer.Start] before the work and [Timer.Stop] after
// it, once each, in that order. Repeated calls overwrite the earlier
// mark; the runner validates the contract after the body returns.
type Timer struct {
	c *clock
}

// Start records the current time as the beginning of the measured region.
func (t *Timer) Start() {
	t.c.start = time.Now()
	t.c.started = true
}

// Stop records the current time as the end of the measured region.
func (t *Timer) Stop() {
	t.c.stop = time.Now()
	t.c.stopped = true
}

// span validates the timer contract and returns the measured duration.
// A missing Stop is reported before a missing Start.
func (c *clock) span(name string) (time.Duration, error) {
	if !c.stopped {
		return 0, fmt.Errorf("%s: %w", name, ErrTimerNotStopped)
	}
	if !c.started {
		return 0, fmt.Errorf("%s: %w", name, ErrTimerNotStarted)
	}
	if c.start.After(c.stop) {
		return 0, fmt.Errorf("%s: %w", name, ErrTimerOrderViolation)
	}
	return c.stop.Sub(c.start), nil
}
