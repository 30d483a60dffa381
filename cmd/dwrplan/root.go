package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/elektrokombinacija/dwr-research/internal/core"
	"github.com/elektrokombinacija/dwr-research/internal/scenario"
)

var rootCmd = &cobra.Command{
	Use:   "dwrplan",
	Short: "dwrplan plans container logistics for dock-worker robots",
	Long: `dwrplan searches for action plans in a harbor of docks, piles and
autonomous dock-worker robots. Robots carry up to three containers within a
weight limit, piles are stacks, and plans are sequences of move, pickup and
putdown steps that reach a goal arrangement.`,
}

// Execute runs the root command. Exit codes: 0 on success, 1 when a search
// finds no plan, 2 on usage and IO errors.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(2)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Log search and replay internals to stderr")
}

func newLogger(cmd *cobra.Command) *slog.Logger {
	level := slog.LevelWarn
	if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

// fail prints the error and exits with the usage/IO code.
func fail(err error) {
	fmt.Fprintln(os.Stderr, "error:", err)
	os.Exit(2)
}

// problemFrom resolves the shared --scenario / --file pair.
func problemFrom(cmd *cobra.Command) (*core.Problem, error) {
	name, _ := cmd.Flags().GetString("scenario")
	file, _ := cmd.Flags().GetString("file")
	switch {
	case name != "" && file != "":
		return nil, fmt.Errorf("--scenario and --file are mutually exclusive")
	case name != "":
		return scenario.Load(name)
	case file != "":
		return scenario.FromFile(file)
	default:
		return nil, fmt.Errorf("need --scenario NAME or --file PATH")
	}
}

func addProblemFlags(cmd *cobra.Command) {
	cmd.Flags().String("scenario", "", "Built-in scenario name (see 'dwrplan scenarios')")
	cmd.Flags().String("file", "", "Scenario YAML file")
}
