package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/elektrokombinacija/dwr-research/internal/pddl"
)

var pddlCmd = &cobra.Command{
	Use:   "pddl",
	Short: "Export a scenario for external planners",
	Long: `Pddl compiles a scenario into classical STRIPS: weight totals and
load slots become one-hot predicate families, with pickup and putdown
schemas generated for every weight level the scenario can reach. The output
is a domain.pddl and problem.pddl pair.`,
	Run: func(cmd *cobra.Command, args []string) {
		p, err := problemFrom(cmd)
		if err != nil {
			fail(err)
		}
		out, _ := cmd.Flags().GetString("out")
		if err := pddl.Write(out, p); err != nil {
			fail(err)
		}
		fmt.Printf("wrote %s and %s\n",
			filepath.Join(out, "domain.pddl"), filepath.Join(out, "problem.pddl"))
	},
}

func init() {
	rootCmd.AddCommand(pddlCmd)
	addProblemFlags(pddlCmd)
	pddlCmd.Flags().String("out", ".", "Output directory")
}
