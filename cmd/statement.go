package cmd

import (
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"github.com/theirongolddev/rockpile/internal/cli"
	"github.com/theirongolddev/rockpile/internal/store"
)

var flagRawMarkdown bool

var statementCmd = &cobra.Command{
	Use:   "statement [CYCLE_ID]",
	Short: "Show a recorded cycle as a statement (latest by default)",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runStatement,
}

func init() {
	statementCmd.Flags().BoolVar(&flagRawMarkdown, "raw", false, "Print the markdown source")
	rootCmd.AddCommand(statementCmd)
}

func runStatement(_ *cobra.Command, args []string) error {
	h, err := requireHistory()
	if err != nil {
		return err
	}
	defer h.Close()

	var c store.CycleSummary
	if len(args) == 1 {
		c, err = h.Get(args[0])
	} else {
		c, err = h.Latest()
	}
	if err != nil {
		return err
	}

	lines, err := h.Lines(c.ID)
	if err != nil {
		return err
	}

	md := cli.StatementMarkdown(c, lines)
	if flagRawMarkdown {
		fmt.Print(md)
		return nil
	}

	style := "dark"
	if !isatty.IsTerminal(os.Stdout.Fd()) {
		style = "notty"
	}
	out, err := cli.RenderMarkdown(md, style, 80)
	if err != nil {
		return err
	}
	fmt.Print(out)
	return nil
}
