package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/theirongolddev/rockpile/internal/cli"
)

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Show balance, members and expenses",
	Args:  cobra.NoArgs,
	RunE:  runShow,
}

func init() {
	rootCmd.AddCommand(showCmd)
}

func runShow(_ *cobra.Command, _ []string) error {
	f, err := loadFund()
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Println(cli.RenderTitle("ROCKPILE  " + cli.FormatMoney(f.Balance) + " in the pot"))
	fmt.Println()

	if len(f.Members) == 0 {
		fmt.Println(cli.Muted("  No members yet. Add one with `rockpile member add NAME INCOME`."))
	} else {
		fmt.Print(cli.RenderTable(cli.MemberTable(f)))
	}
	fmt.Println()

	if len(f.Expenses) == 0 {
		fmt.Println(cli.Muted("  No expenses yet. Add one with `rockpile expense add DESCRIPTION AMOUNT`."))
	} else {
		fmt.Print(cli.RenderTable(cli.ExpenseTable(f)))
	}
	fmt.Println()

	if net := f.TotalIncome() - f.TotalExpenses(); net < 0 {
		fmt.Println(cli.Warn(fmt.Sprintf("  Expenses exceed income by %s per month.", cli.FormatMoney(-net))))
		fmt.Println()
	}
	return nil
}
