package benchkit

import (
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"
)

// runDefinition executes one definition's measured runs and returns
// the recorded durations. All runs execute concurrently, each with a
// fresh clock. On success the slice has exactly def.Runs entries; its
// order carries no meaning, callers average over it. The first failed
// run aborts the definition, but every run is awaited before returning.
func runDefinition(def Definition) ([]time.Duration, error) {
	timings := make([]time.Duration, def.Runs)

	var g errgroup.Group
	for i := 0; i < def.Runs; i++ {
		i := i
		g.Go(func() error {
			d, err := runOnce(def)
			if err != nil {
				return err
			}
			timings[i] = d
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return timings, nil
}

// runOnce performs a single measured invocation of the body.
func runOnce(def Definition) (time.Duration, error) {
	c := new(clock)
	if def.Body.Timed != nil {
		tm := &Timer{c: c}
		if err := invoke(def.Name, func() error { return def.Body.Timed(tm) }); err != nil {
			return 0, err
		}
		return c.span(def.Name)
	}

	// Untimed variant: the harness brackets the call itself, so no
	// contract validation is needed.
	c.start = time.Now()
	err := invoke(def.Name, def.Body.Untimed)
	c.stop = time.Now()
	if err != nil {
		return 0, err
	}
	return c.stop.Sub(c.start), nil
}

// invoke calls fn, converting a panic into an error so a misbehaving
// body fails its own benchmark instead of the whole process.
func invoke(name string, fn func() error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%s: benchmark panicked: %v", name, r)
		}
	}()
	if e := fn(); e != nil {
		return fmt.Errorf("%s: %w", name, e)
	}
	return nil
}
