package benchkit

import (
	"fmt"
	"os"
	"regexp"
	"strconv"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"
)

// Config controls one execution of a suite.
type Config struct {
	// Only selects benchmarks by name. Nil selects every benchmark.
	Only *regexp.Regexp

	// Skip excludes benchmarks by name after Only has matched. Nil
	// excludes nothing.
	Skip *regexp.Regexp

	// Sink receives the report lines. Nil means a plain WriterSink on
	// stdout and stderr.
	Sink Sink

	// Exit receives a non-zero status when at least one benchmark
	// failed. It is invoked once, after all reporting is done and the
	// sink has been flushed, and never on a fully successful run.
	// Typically os.Exit; nil means no signal.
	Exit func(code int)
}

// resultEntry tracks one selected benchmark through a run. timings
// stays nil until the benchmark's runner completes successfully.
type resultEntry struct {
	def     Definition
	timings []time.Duration
	err     error
	printed bool
}

// Run executes every selected benchmark concurrently and reports one
// line per benchmark in registration order, each line as soon as its
// turn arrives. A benchmark that violates the timer contract, returns
// an error, or panics is reported as failed without disturbing its
// siblings; the summary then reads FAIL and Exit receives a non-zero
// status. Run returns after all benchmarks have settled and the
// summary has been written.
func (s *Suite) Run(cfg Config) {
	sink := cfg.Sink
	if sink == nil {
		sink = &WriterSink{Out: os.Stdout, Err: os.Stderr}
	}

	defs := s.Definitions()
	entries := make([]*resultEntry, 0, len(defs))
	for _, def := range defs {
		if cfg.Only != nil && !cfg.Only.MatchString(def.Name) {
			continue
		}
		if cfg.Skip != nil && cfg.Skip.MatchString(def.Name) {
			continue
		}
		entries = append(entries, &resultEntry{def: def})
	}
	filtered := len(defs) - len(entries)

	sink.Print(fmt.Sprintf("running %d %s", len(entries), plural(len(entries), "benchmark")))

	var (
		mu       sync.Mutex
		measured int
		g        errgroup.Group
	)
	for _, entry := range entries {
		entry := entry
		g.Go(func() error {
			timings, err := runDefinition(entry.def)

			// The whole completion handler runs under the table lock:
			// storing the result and flushing the ordered print chain
			// must not interleave with another runner's completion.
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				entry.err = err
				return err
			}
			entry.timings = timings
			measured++
			flushOrdered(sink, entries)
			return nil
		})
	}

	// Settle-all join: errgroup waits for every runner even when one
	// has already failed.
	anyFailed := g.Wait() != nil

	// Final sweep. A failed entry blocks the ordered chain for its
	// successors, so print everything still pending, in index order.
	for _, entry := range entries {
		if entry.printed {
			continue
		}
		switch {
		case entry.err != nil:
			sink.Error(fmt.Sprintf("benchmark %s ... FAILED: %v", entry.def.Name, entry.err))
		case entry.timings != nil:
			sink.Print(reportLine(entry))
		default:
			// A runner that neither completed nor failed. Cannot
			// happen with the join above, but report it rather than
			// lose the entry silently.
			sink.Error(fmt.Sprintf("benchmark %s ... unresolved", entry.def.Name))
			anyFailed = true
		}
		entry.printed = true
	}

	state := "DONE"
	if anyFailed {
		state = "FAIL"
	}
	sink.Print(fmt.Sprintf("%s. measured: %d; filtered: %d", state, measured, filtered))

	if anyFailed && cfg.Exit != nil {
		if f, ok := sink.(Flusher); ok {
			f.Flush()
		}
		cfg.Exit(1)
	}
}

// flushOrdered prints every entry whose turn has arrived: the chain
// starts past the already-printed prefix and stops at the first entry
// without timings. Called with the entry table locked.
func flushOrdered(sink Sink, entries []*resultEntry) {
	i := 0
	for i < len(entries) && entries[i].printed {
		i++
	}
	for i < len(entries) && entries[i].timings != nil {
		sink.Print(reportLine(entries[i]))
		entries[i].printed = true
		i++
	}
}

// reportLine renders one successful benchmark's report line.
func reportLine(entry *resultEntry) string {
	if len(entry.timings) == 1 {
		return fmt.Sprintf("benchmark %s ... %sms", entry.def.Name, millis(float64(entry.timings[0].Nanoseconds())))
	}
	var total float64
	for _, d := range entry.timings {
		total += float64(d.Nanoseconds())
	}
	mean := total / float64(len(entry.timings))
	return fmt.Sprintf("benchmark %s ... %sms (average over %d runs)",
		entry.def.Name, millis(mean), len(entry.timings))
}

// millis renders a duration given in nanoseconds as milliseconds,
// using the shortest decimal form that round-trips.
func millis(ns float64) string {
	return strconv.FormatFloat(ns/1e6, 'f', -1, 64)
}

func plural(n int, noun string) string {
	if n == 1 {
		return noun
	}
	return noun + "s"
}
