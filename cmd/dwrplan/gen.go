package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/elektrokombinacija/dwr-research/internal/scenario"
)

var genCmd = &cobra.Command{
	Use:   "gen",
	Short: "Generate a random solvable scenario",
	Long: `Gen builds a random harbor and derives the goal from a random walk
through the transition rules, so every generated instance has a plan. The
same seed always yields the same scenario.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg := scenario.GenConfig{}
		cfg.Seed, _ = cmd.Flags().GetInt64("seed")
		cfg.Docks, _ = cmd.Flags().GetInt("docks")
		cfg.Robots, _ = cmd.Flags().GetInt("robots")
		cfg.Containers, _ = cmd.Flags().GetInt("containers")
		cfg.Piles, _ = cmd.Flags().GetInt("piles")
		cfg.WalkSteps, _ = cmd.Flags().GetInt("walk")
		cfg.GoalContainers, _ = cmd.Flags().GetInt("goals")
		cfg.ExclusiveDocks, _ = cmd.Flags().GetBool("exclusive")

		p, err := scenario.Generate(cfg)
		if err != nil {
			fail(err)
		}

		out, _ := cmd.Flags().GetString("out")
		if out != "" {
			if err := scenario.Save(out, p); err != nil {
				fail(err)
			}
			fmt.Printf("wrote %s\n", out)
			return
		}
		doc, err := yaml.Marshal(scenario.FromProblem(p))
		if err != nil {
			fail(err)
		}
		os.Stdout.Write(doc)
	},
}

func init() {
	rootCmd.AddCommand(genCmd)
	genCmd.Flags().Int64("seed", 1, "Random seed")
	genCmd.Flags().Int("docks", 5, "Number of docks")
	genCmd.Flags().Int("robots", 2, "Number of robots")
	genCmd.Flags().Int("containers", 6, "Number of containers")
	genCmd.Flags().Int("piles", 4, "Number of piles")
	genCmd.Flags().Int("walk", 40, "Random walk length behind the goal")
	genCmd.Flags().Int("goals", 0, "Goal literal count, 0 for every walked container")
	genCmd.Flags().Bool("exclusive", false, "At most one robot per dock")
	genCmd.Flags().String("out", "", "Write the scenario YAML here instead of stdout")
}
