package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/elektrokombinacija/dwr-research/internal/render"
	"github.com/elektrokombinacija/dwr-research/internal/scenario"
)

var scenariosCmd = &cobra.Command{
	Use:   "scenarios",
	Short: "List the built-in scenarios",
	Run: func(cmd *cobra.Command, args []string) {
		rows := make([][]string, 0, len(scenario.Names()))
		for _, name := range scenario.Names() {
			p, err := scenario.Load(name)
			if err != nil {
				fail(err)
			}
			w := p.World
			rows = append(rows, []string{
				name,
				fmt.Sprintf("%d", len(w.Docks)),
				fmt.Sprintf("%d", len(w.Robots)),
				fmt.Sprintf("%d", len(w.Containers)),
				fmt.Sprintf("%d", len(w.Piles)),
				fmt.Sprintf("%d", len(p.Goal.Literals)),
			})
		}
		fmt.Println(render.Table(
			[]string{"scenario", "docks", "robots", "containers", "piles", "goals"}, rows))
	},
}

func init() {
	rootCmd.AddCommand(scenariosCmd)
}
