package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/elektrokombinacija/dwr-research/internal/algo"
	"github.com/elektrokombinacija/dwr-research/internal/bench"
	"github.com/elektrokombinacija/dwr-research/internal/core"
	"github.com/elektrokombinacija/dwr-research/internal/scenario"
)

var benchCmd = &cobra.Command{
	Use:   "bench [scenario...]",
	Short: "Run a scenario-by-solver grid and record the results",
	Long: `Bench runs every selected solver on every selected scenario, prints
a summary table, and optionally appends to a CSV file, a sqlite database and
a compressed search trace. Without arguments it runs all built-in scenarios.
Exit code 1 means at least one run produced no valid plan.`,
	Run: func(cmd *cobra.Command, args []string) {
		names := args
		if len(names) == 0 {
			names = scenario.Names()
		}
		var problems []*core.Problem
		for _, name := range names {
			p, err := scenario.Load(name)
			if err != nil {
				fail(err)
			}
			problems = append(problems, p)
		}
		files, _ := cmd.Flags().GetStringSlice("file")
		for _, path := range files {
			p, err := scenario.FromFile(path)
			if err != nil {
				fail(err)
			}
			problems = append(problems, p)
		}

		solvers, _ := cmd.Flags().GetStringSlice("solver")
		heuristic, _ := cmd.Flags().GetString("heuristic")
		maxNodes, _ := cmd.Flags().GetInt("max-nodes")

		opts := []bench.Option{
			bench.WithLogger(newLogger(cmd)),
			bench.WithMaxNodes(maxNodes),
			bench.WithHeuristic(heuristic),
		}
		var tw *bench.TraceWriter
		if tracePath, _ := cmd.Flags().GetString("trace"); tracePath != "" {
			var err error
			tw, err = bench.NewTraceWriter(tracePath)
			if err != nil {
				fail(err)
			}
			opts = append(opts, bench.WithTrace(tw))
		}

		entries, err := bench.NewRunner(opts...).Grid(cmd.Context(), problems, solvers)
		if tw != nil {
			if cerr := tw.Close(); cerr != nil && err == nil {
				err = cerr
			}
		}
		if err != nil {
			fail(err)
		}

		fmt.Println(bench.SummaryTable(entries))

		if csvPath, _ := cmd.Flags().GetString("csv"); csvPath != "" {
			f, err := os.Create(csvPath)
			if err != nil {
				fail(err)
			}
			if err := bench.WriteCSV(f, entries); err != nil {
				_ = f.Close()
				fail(err)
			}
			if err := f.Close(); err != nil {
				fail(err)
			}
		}
		if dbPath, _ := cmd.Flags().GetString("db"); dbPath != "" {
			store, err := bench.OpenStore(dbPath)
			if err != nil {
				fail(err)
			}
			if err := store.Record(entries); err != nil {
				_ = store.Close()
				fail(err)
			}
			latest, err := store.Latest()
			if err != nil {
				_ = store.Close()
				fail(err)
			}
			fmt.Println("latest per scenario and solver:")
			fmt.Println(bench.SummaryTable(latest))
			if err := store.Close(); err != nil {
				fail(err)
			}
		}

		for _, e := range entries {
			if !e.Valid {
				os.Exit(1)
			}
		}
	},
}

func init() {
	rootCmd.AddCommand(benchCmd)
	benchCmd.Flags().StringSlice("file", nil, "Additional scenario YAML files")
	benchCmd.Flags().StringSlice("solver", algo.Names(), "Solvers to run")
	benchCmd.Flags().String("heuristic", "", "Heuristic for informed solvers")
	benchCmd.Flags().Int("max-nodes", 0, "Expansion budget per run, 0 for unbounded")
	benchCmd.Flags().String("csv", "", "Write results to this CSV file")
	benchCmd.Flags().String("db", "", "Record results in this sqlite database")
	benchCmd.Flags().String("trace", "", "Stream search expansions to this .jsonl.zst file")
}
