package main

import (
	_ "embed"
	"fmt"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"
)

//go:embed docs.md
var guide string

var docsCmd = &cobra.Command{
	Use:   "docs",
	Short: "Show the user guide",
	Run: func(cmd *cobra.Command, args []string) {
		r, err := glamour.NewTermRenderer(
			glamour.WithAutoStyle(),
			glamour.WithWordWrap(100),
		)
		if err != nil {
			fmt.Print(guide)
			return
		}
		out, err := r.Render(guide)
		if err != nil {
			fmt.Print(guide)
			return
		}
		fmt.Print(out)
	},
}

func init() {
	rootCmd.AddCommand(docsCmd)
}
