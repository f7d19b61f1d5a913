package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/theirongolddev/rockpile/internal/cli"
	"github.com/theirongolddev/rockpile/internal/money"
)

var expenseCmd = &cobra.Command{
	Use:   "expense",
	Short: "Manage shared expenses",
}

var expenseAddCmd = &cobra.Command{
	Use:     "add DESCRIPTION AMOUNT",
	Short:   "Add a recurring monthly expense in dollars",
	Example: "  rockpile expense add Rent 1500",
	Args:    cobra.ExactArgs(2),
	RunE:    runExpenseAdd,
}

var expenseListCmd = &cobra.Command{
	Use:   "list",
	Short: "List expenses",
	Args:  cobra.NoArgs,
	RunE:  runExpenseList,
}

func init() {
	expenseCmd.AddCommand(expenseAddCmd, expenseListCmd)
	rootCmd.AddCommand(expenseCmd)
}

func runExpenseAdd(_ *cobra.Command, args []string) error {
	amount, err := money.ParseDollars(args[1])
	if err != nil {
		return fmt.Errorf("amount: %w", err)
	}

	f, err := loadFund()
	if err != nil {
		return err
	}
	if _, err := f.AddExpense(args[0], amount); err != nil {
		return err
	}
	if err := saveFund(f); err != nil {
		return err
	}

	fmt.Println("Expense added successfully!")
	return nil
}

func runExpenseList(_ *cobra.Command, _ []string) error {
	f, err := loadFund()
	if err != nil {
		return err
	}
	if len(f.Expenses) == 0 {
		fmt.Println("\n  No expenses.")
		return nil
	}

	fmt.Println()
	fmt.Print(cli.RenderTable(cli.ExpenseTable(f)))
	return nil
}
