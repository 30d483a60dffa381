package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/elektrokombinacija/dwr-research/internal/algo"
	"github.com/elektrokombinacija/dwr-research/internal/render"
	"github.com/elektrokombinacija/dwr-research/internal/sim"
	"github.com/elektrokombinacija/dwr-research/internal/tui"
)

var replayCmd = &cobra.Command{
	Use:   "replay",
	Short: "Solve a scenario and step through the plan",
	Long: `Replay solves a scenario, executes the plan step by step, and opens
an interactive viewer on the recorded run. With --plain it prints the steps
and the summary instead.`,
	Run: func(cmd *cobra.Command, args []string) {
		p, err := problemFrom(cmd)
		if err != nil {
			fail(err)
		}

		solverName, _ := cmd.Flags().GetString("solver")
		heuristic, _ := cmd.Flags().GetString("heuristic")
		maxNodes, _ := cmd.Flags().GetInt("max-nodes")

		s, err := algo.New(solverName, algo.Options{MaxNodes: maxNodes, Heuristic: heuristic})
		if err != nil {
			fail(err)
		}
		res := s.Solve(p)
		if !res.Found {
			fmt.Printf("%s: %v (%s, %d expanded)\n", s.Name(), algo.ErrNoPlan, res.Duration, res.Expanded)
			os.Exit(1)
		}

		logger := newLogger(cmd)
		run, err := sim.NewReplayer(sim.WithLogger(logger)).Replay(p, res.Plan)
		if err != nil {
			fail(err)
		}

		if export, _ := cmd.Flags().GetString("export"); export != "" {
			if err := run.Export(export); err != nil {
				fail(err)
			}
			logger.Info("run exported", "path", export)
		}

		if plain, _ := cmd.Flags().GetBool("plain"); plain {
			fmt.Println(render.State(p, p.Init))
			for _, step := range run.Steps {
				fmt.Printf("%d. %s\n", step.Step, step.Text)
			}
			fmt.Println(render.State(p, run.Final))
			fmt.Println(render.RunSummary(run))
			return
		}
		if err := tui.Run(run); err != nil {
			fail(err)
		}
	},
}

func init() {
	rootCmd.AddCommand(replayCmd)
	addProblemFlags(replayCmd)
	replayCmd.Flags().String("solver", "astar", "Search algorithm: astar, bfs or gbfs")
	replayCmd.Flags().String("heuristic", "", "Heuristic for informed solvers")
	replayCmd.Flags().Int("max-nodes", 0, "Expansion budget, 0 for unbounded")
	replayCmd.Flags().Bool("plain", false, "Print the run instead of opening the viewer")
	replayCmd.Flags().String("export", "", "Write the run as JSON here")
}
