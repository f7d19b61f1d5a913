package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/theirongolddev/rockpile/internal/cli"
	"github.com/theirongolddev/rockpile/internal/money"
)

var memberCmd = &cobra.Command{
	Use:   "member",
	Short: "Manage fund members",
}

var memberAddCmd = &cobra.Command{
	Use:     "add NAME INCOME",
	Short:   "Add a member with a monthly income in dollars",
	Example: "  rockpile member add Alice 1000\n  rockpile member add \"Bob Smith\" 750.50",
	Args:    cobra.ExactArgs(2),
	RunE:    runMemberAdd,
}

var memberListCmd = &cobra.Command{
	Use:   "list",
	Short: "List members",
	Args:  cobra.NoArgs,
	RunE:  runMemberList,
}

func init() {
	memberCmd.AddCommand(memberAddCmd, memberListCmd)
	rootCmd.AddCommand(memberCmd)
}

func runMemberAdd(_ *cobra.Command, args []string) error {
	income, err := money.ParseDollars(args[1])
	if err != nil {
		return fmt.Errorf("income: %w", err)
	}

	f, err := loadFund()
	if err != nil {
		return err
	}
	if _, err := f.AddMember(args[0], income); err != nil {
		return err
	}
	if err := saveFund(f); err != nil {
		return err
	}

	fmt.Println("Member added successfully!")
	return nil
}

func runMemberList(_ *cobra.Command, _ []string) error {
	f, err := loadFund()
	if err != nil {
		return err
	}
	if len(f.Members) == 0 {
		fmt.Println("\n  No members.")
		return nil
	}

	fmt.Println()
	fmt.Print(cli.RenderTable(cli.MemberTable(f)))
	return nil
}
