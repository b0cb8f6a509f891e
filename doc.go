// Package benchkit is an in-process micro-benchmark harness.
//
// # Overview
//
// benchkit measures the wall time of named units of work without an
// external profiler. Benchmarks are registered on a [Suite] and
// executed with [Suite.Run]:
//
//   - All selected benchmarks run concurrently, yet report lines
//     always appear in registration order.
//   - A benchmark repeats Runs times and reports the arithmetic mean.
//   - One failing benchmark never prevents its siblings from running
//     or being reported; it turns the summary to FAIL and triggers the
//     configured exit signal.
//
// # Quick Start
//
//	suite := benchkit.NewSuite()
//
//	suite.BenchFunc("encode", func() error {
//	    encode(payload)
//	    return nil
//	})
//
//	suite.Bench(benchkit.Definition{
//	    Name: "decode",
//	    Runs: 10,
//	    Body: benchkit.Body{Timed: func(tm *benchkit.Timer) error {
//	        blob := buildBlob() // setup, not measured
//	        tm.Start()
//	        decode(blob)
//	        tm.Stop()
//	        return nil
//	    }},
//	})
//
//	suite.Run(benchkit.Config{Exit: os.Exit})
//
// # Timed and Untimed Bodies
//
// An untimed body ([UntimedFunc]) is measured from call to return. A
// timed body ([TimedFunc]) receives a [Timer] and marks the measured
// region itself, which keeps setup and teardown out of the
// measurement. A timed body must call Start then Stop exactly once
// each; the harness fails the benchmark otherwise.
//
// # Filtering
//
// [Config].Only and [Config].Skip select benchmarks by name with
// regular expressions:
//
//	suite.Run(benchkit.Config{
//	    Only: regexp.MustCompile(`^decode`),
//	    Skip: regexp.MustCompile(`slow$`),
//	})
//
// # Output
//
// Report lines go to a [Sink]. The default writes plain text to
// stdout and stderr; [NewColorSink] colorizes when attached to a
// terminal. Any type with Print and Error methods can stand in, which
// is also how the tests in this package observe the harness.
package benchkit
