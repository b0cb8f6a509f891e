// benchkit runs a set of built-in demonstration benchmarks. It shows
// the harness end to end: registration, name filtering, concurrent
// execution, ordered reporting, and exit-code propagation.
package main

import (
	"bytes"
	"crypto/sha256"
	"encoding/json"
	"fmt"
	"math/rand"
	"os"
	"regexp"
	"sort"
	"strings"

	"github.com/feather-lang/benchkit"
	"github.com/spf13/cobra"
)

func main() {
	var (
		only    string
		skip    string
		runs    int
		noColor bool
		list    bool
	)

	cmd := &cobra.Command{
		Use:   "benchkit",
		Short: "Run the built-in demonstration benchmarks",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			suite := benchkit.NewSuite()
			if err := registerDemos(suite, runs); err != nil {
				return err
			}

			if list {
				for _, name := range suite.Names() {
					fmt.Fprintln(os.Stdout, name)
				}
				return nil
			}

			cfg := benchkit.Config{Exit: os.Exit}
			if only != "" {
				re, err := regexp.Compile(only)
				if err != nil {
					return fmt.Errorf("invalid --only pattern: %w", err)
				}
				cfg.Only = re
			}
			if skip != "" {
				re, err := regexp.Compile(skip)
				if err != nil {
					return fmt.Errorf("invalid --skip pattern: %w", err)
				}
				cfg.Skip = re
			}
			if noColor {
				cfg.Sink = &benchkit.WriterSink{Out: os.Stdout, Err: os.Stderr}
			} else {
				cfg.Sink = benchkit.NewColorSink(os.Stdout, os.Stderr)
			}

			suite.Run(cfg)
			return nil
		},
	}

	cmd.Flags().StringVar(&only, "only", "", "regex selecting benchmark names to run")
	cmd.Flags().StringVar(&skip, "skip", "", "regex excluding benchmark names")
	cmd.Flags().IntVar(&runs, "runs", 5, "measured runs per benchmark")
	cmd.Flags().BoolVar(&noColor, "no-color", false, "disable colorized output")
	cmd.Flags().BoolVar(&list, "list", false, "list benchmark names instead of running")
	cmd.SilenceUsage = true

	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// registerDemos fills the suite with small self-contained workloads.
func registerDemos(suite *benchkit.Suite, runs int) error {
	demos := []benchkit.Definition{
		{
			Name: "sha256/1MiB",
			Runs: runs,
			Body: benchkit.Body{Untimed: func() error {
				buf := bytes.Repeat([]byte{0x5a}, 1<<20)
				sha256.Sum256(buf)
				return nil
			}},
		},
		{
			Name: "sort/100k-ints",
			Runs: runs,
			Body: benchkit.Body{Timed: func(tm *benchkit.Timer) error {
				nums := rand.Perm(100_000) // setup, not measured
				tm.Start()
				sort.Ints(nums)
				tm.Stop()
				return nil
			}},
		},
		{
			Name: "json/roundtrip",
			Runs: runs,
			Body: benchkit.Body{Timed: func(tm *benchkit.Timer) error {
				type record struct {
					ID    int      `json:"id"`
					Name  string   `json:"name"`
					Tags  []string `json:"tags"`
					Score float64  `json:"score"`
				}
				records := make([]record, 1000)
				for i := range records {
					records[i] = record{
						ID:    i,
						Name:  fmt.Sprintf("record-%04d", i),
						Tags:  []string{"alpha", "beta", "gamma"},
						Score: float64(i) * 1.5,
					}
				}
				tm.Start()
				blob, err := json.Marshal(records)
				if err == nil {
					var out []record
					err = json.Unmarshal(blob, &out)
				}
				tm.Stop()
				return err
			}},
		},
		{
			Name: "strings/builder-1M",
			Runs: runs,
			Body: benchkit.Body{Untimed: func() error {
				var b strings.Builder
				for i := 0; i < 100_000; i++ {
					b.WriteString("0123456789")
				}
				if b.Len() == 0 {
					return fmt.Errorf("builder produced no output")
				}
				return nil
			}},
		},
	}

	for _, def := range demos {
		if err := suite.Bench(def); err != nil {
			return err
		}
	}
	return nil
}
