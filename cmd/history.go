package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/theirongolddev/rockpile/internal/cli"
)

var flagHistoryLimit int

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recorded monthly cycles",
	Args:  cobra.NoArgs,
	RunE:  runHistory,
}

var historyRmCmd = &cobra.Command{
	Use:   "rm CYCLE_ID",
	Short: "Delete a recorded cycle (id or unique prefix)",
	Args:  cobra.ExactArgs(1),
	RunE:  runHistoryRm,
}

func init() {
	historyCmd.Flags().IntVarP(&flagHistoryLimit, "limit", "n", 10, "Number of cycles to show")
	historyCmd.AddCommand(historyRmCmd)
	rootCmd.AddCommand(historyCmd)
}

func runHistory(_ *cobra.Command, _ []string) error {
	h, err := requireHistory()
	if err != nil {
		return err
	}
	defer h.Close()

	cycles, err := h.Recent(flagHistoryLimit)
	if err != nil {
		return err
	}
	if len(cycles) == 0 {
		fmt.Println("\n  No cycles recorded yet. Run `rockpile cycle` first.")
		return nil
	}

	total, err := h.Count()
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Print(cli.RenderTable(cli.HistoryTable(cycles)))
	fmt.Printf("  %s of %s cycles shown\n\n",
		cli.FormatNumber(int64(len(cycles))),
		cli.FormatNumber(int64(total)),
	)
	return nil
}

func runHistoryRm(_ *cobra.Command, args []string) error {
	h, err := requireHistory()
	if err != nil {
		return err
	}
	defer h.Close()

	c, err := h.Get(args[0])
	if err != nil {
		return err
	}
	if err := h.Delete(c.ID); err != nil {
		return err
	}
	fmt.Printf("Deleted cycle %s.\n", cli.ShortID(c.ID))
	return nil
}
