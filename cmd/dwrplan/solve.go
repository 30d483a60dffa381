package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/elektrokombinacija/dwr-research/internal/algo"
	"github.com/elektrokombinacija/dwr-research/internal/render"
	"github.com/elektrokombinacija/dwr-research/internal/sim"
)

var solveCmd = &cobra.Command{
	Use:   "solve",
	Short: "Search for a plan",
	Long: `Solve runs a search algorithm on a scenario and prints the plan it
finds. Exit code 1 means the search exhausted or hit the node budget without
reaching the goal.`,
	Run: func(cmd *cobra.Command, args []string) {
		p, err := problemFrom(cmd)
		if err != nil {
			fail(err)
		}

		solverName, _ := cmd.Flags().GetString("solver")
		heuristic, _ := cmd.Flags().GetString("heuristic")
		maxNodes, _ := cmd.Flags().GetInt("max-nodes")
		showPlan, _ := cmd.Flags().GetBool("show-plan")
		replayTable, _ := cmd.Flags().GetBool("replay-table")

		s, err := algo.New(solverName, algo.Options{MaxNodes: maxNodes, Heuristic: heuristic})
		if err != nil {
			fail(err)
		}

		logger := newLogger(cmd)
		logger.Info("solving", "problem", p.Name, "solver", s.Name())
		res := s.Solve(p)
		if !res.Found {
			fmt.Printf("%s: %v (%s, %d expanded)\n", s.Name(), algo.ErrNoPlan, res.Duration, res.Expanded)
			os.Exit(1)
		}

		fmt.Printf("%s: %d step(s) in %s (%d expanded, %d generated, frontier peak %d)\n",
			s.Name(), res.Cost, res.Duration, res.Expanded, res.Generated, res.MaxOpen)
		if showPlan {
			fmt.Println(render.Plan(p, res.Plan))
		}
		if replayTable {
			run, err := sim.NewReplayer(sim.WithLogger(logger)).Replay(p, res.Plan)
			if err != nil {
				fail(err)
			}
			fmt.Println(render.RunSummary(run))
		}
	},
}

func init() {
	rootCmd.AddCommand(solveCmd)
	addProblemFlags(solveCmd)
	solveCmd.Flags().String("solver", "astar", "Search algorithm: astar, bfs or gbfs")
	solveCmd.Flags().String("heuristic", "", "Heuristic for informed solvers: blind, goalcount or misplaced")
	solveCmd.Flags().Int("max-nodes", 0, "Expansion budget, 0 for unbounded")
	solveCmd.Flags().Bool("show-plan", true, "Print the plan steps")
	solveCmd.Flags().Bool("replay-table", false, "Replay the plan and print per-robot statistics")
}
