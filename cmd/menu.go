package cmd

import (
	"github.com/spf13/cobra"
	"github.com/theirongolddev/rockpile/internal/console"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Interactive numbered menu (the default)",
	RunE:  runMenu,
}

func init() {
	rootCmd.AddCommand(menuCmd)
}

func runMenu(cmd *cobra.Command, _ []string) error {
	s, cleanup := newSession(console.NewHuhPrompter())
	defer cleanup()

	return s.Run(cmd.Context())
}
