package benchkit

import (
	"fmt"
	"sync"
)

// TimedFunc is a benchmark body that controls its own timer. It must
// call Start then Stop exactly once each before returning; work done
// outside the Start/Stop window is not measured.
type TimedFunc func(tm *Timer) error

// UntimedFunc is a benchmark body timed externally by the harness,
// from immediately before the call to immediately after it returns.
type UntimedFunc func() error

// Body is the unit of work for one benchmark. Exactly one of the two
// variants must be set; the runner dispatches on which one it is.
type Body struct {
	Timed   TimedFunc
	Untimed UntimedFunc
}

// Definition describes one registered benchmark.
type Definition struct {
	Name string
	Body Body
	Runs int // measured runs; values below 1 count as 1
}

// Suite holds benchmark definitions in registration order. The zero
// value is ready to use. Definitions are immutable once registered.
type Suite struct {
	mu   sync.Mutex
	defs []Definition
}

// NewSuite returns an empty suite.
func NewSuite() *Suite {
	return &Suite{}
}

// Bench registers a benchmark definition. The name must be non-empty
// and the body must have exactly one variant set; otherwise
// registration fails with [ErrInvalidDefinition] and nothing is
// appended. Runs below 1 are normalized to 1. Duplicate names are
// allowed and run independently.
func (s *Suite) Bench(def Definition) error {
	if def.Name == "" {
		return fmt.Errorf("%w: benchmark has no name", ErrInvalidDefinition)
	}
	if (def.Body.Timed == nil) == (def.Body.Untimed == nil) {
		return fmt.Errorf("%w: %s: body must have exactly one variant set", ErrInvalidDefinition, def.Name)
	}
	if def.Runs < 1 {
		def.Runs = 1
	}
	s.mu.Lock()
	s.defs = append(s.defs, def)
	s.mu.Unlock()
	return nil
}

// BenchFunc registers fn as a single-run benchmark timed by the harness.
func (s *Suite) BenchFunc(name string, fn UntimedFunc) error {
	return s.Bench(Definition{Name: name, Body: Body{Untimed: fn}})
}

// BenchTimed registers fn as a single-run benchmark that drives its own timer.
func (s *Suite) BenchTimed(name string, fn TimedFunc) error {
	return s.Bench(Definition{Name: name, Body: Body{Timed: fn}})
}

// Definitions returns a copy of the registered definitions in
// registration order.
func (s *Suite) Definitions() []Definition {
	s.mu.Lock()
	defer s.mu.Unlock()
	defs := make([]Definition, len(s.defs))
	copy(defs, s.defs)
	return defs
}

// Names returns the registered benchmark names in registration order.
func (s *Suite) Names() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	names := make([]string, len(s.defs))
	for i, def := range s.defs {
		names[i] = def.Name
	}
	return names
}
