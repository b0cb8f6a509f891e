package benchkit

import "errors"

// Registration and timer-contract errors. The runner wraps the timer
// errors with the benchmark name, so match them with [errors.Is].
var (
	// ErrInvalidDefinition rejects a registration whose name is empty
	// or whose body does not have exactly one variant set.
	ErrInvalidDefinition = errors.New("invalid benchmark definition")

	// ErrTimerNotStopped reports a timed body that completed without
	// calling Stop.
	ErrTimerNotStopped = errors.New("timer was never stopped")

	// ErrTimerNotStarted reports a timed body that completed without
	// calling Start.
	ErrTimerNotStarted = errors.New("timer was never started")

	// ErrTimerOrderViolation reports a stop mark that precedes the
	// start mark.
	ErrTimerOrderViolation = errors.New("timer stopped before it was started")
)
