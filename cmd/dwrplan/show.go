package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/elektrokombinacija/dwr-research/internal/render"
)

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Print a scenario's initial state and goal",
	Run: func(cmd *cobra.Command, args []string) {
		p, err := problemFrom(cmd)
		if err != nil {
			fail(err)
		}
		fmt.Println(render.State(p, p.Init))
		fmt.Println("goal:", p.Goal.Describe(p.World))
	},
}

func init() {
	rootCmd.AddCommand(showCmd)
	addProblemFlags(showCmd)
}
