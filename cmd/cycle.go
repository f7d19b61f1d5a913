package cmd

import (
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/theirongolddev/rockpile/internal/cli"
	"github.com/theirongolddev/rockpile/internal/settle"
)

var flagDryRun bool

var cycleCmd = &cobra.Command{
	Use:   "cycle",
	Short: "Run one monthly cycle: collect income, pay expenses, redistribute",
	Args:  cobra.NoArgs,
	RunE:  runCycle,
}

func init() {
	cycleCmd.Flags().BoolVar(&flagDryRun, "dry-run", false, "Print the cycle without saving or recording it")
	rootCmd.AddCommand(cycleCmd)
}

func runCycle(_ *cobra.Command, _ []string) error {
	f, err := loadFund()
	if err != nil {
		return err
	}

	report := settle.RunMonthlyCycle(&f)

	fmt.Println("\n--- Starting Monthly Cycle ---")
	for _, line := range report.Lines() {
		fmt.Println(cli.RenderCycleLine(line))
	}
	fmt.Println("--- End of Monthly Cycle ---")
	fmt.Println()

	if flagDryRun {
		fmt.Println(cli.Muted("  Dry run: fund file not changed."))
		return nil
	}

	if err := saveFund(f); err != nil {
		return err
	}

	if h := openHistory(); h != nil {
		defer h.Close()
		id, err := h.Record(report, time.Now())
		if err != nil {
			log.WithError(err).Warn("could not record cycle history")
			return nil
		}
		if !flagQuiet {
			fmt.Println(cli.Muted("  Recorded cycle " + cli.ShortID(id)))
		}
	}
	return nil
}
