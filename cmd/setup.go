package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
	"github.com/theirongolddev/rockpile/internal/config"
	"github.com/theirongolddev/rockpile/internal/money"
	"github.com/theirongolddev/rockpile/internal/tui/theme"
)

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "Interactive configuration wizard",
	Args:  cobra.NoArgs,
	RunE:  runSetup,
}

func init() {
	rootCmd.AddCommand(setupCmd)
}

func runSetup(_ *cobra.Command, _ []string) error {
	next := cfg

	themeOpts := make([]huh.Option[string], len(theme.All))
	for i, t := range theme.All {
		themeOpts[i] = huh.NewOption(t.Name, t.Name)
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewNote().
				Title("Welcome to rockpile!").
				Description("Saved to "+config.Path()+"\nRun `rockpile setup` anytime to reconfigure."),
			huh.NewInput().
				Title("Fund file").
				Description("Where the fund is saved and loaded").
				Value(&next.General.FundFile).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return errors.New("fund file cannot be empty")
					}
					return nil
				}),
			huh.NewInput().
				Title("Currency").
				Description("ISO code used for tables and statements").
				Value(&next.General.Currency).
				Validate(func(s string) error {
					if !money.KnownCurrency(s) {
						return fmt.Errorf("unknown currency %q", s)
					}
					return nil
				}),
		),
		huh.NewGroup(
			huh.NewConfirm().
				Title("Record cycle history?").
				Description("Keeps every monthly cycle in " + config.HistoryDB(cfg)).
				Value(&next.History.Enabled),
			huh.NewSelect[string]().
				Title("Color theme").
				Options(themeOpts...).
				Value(&next.Appearance.Theme),
		),
	).WithTheme(huh.ThemeCharm())

	if err := form.Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			fmt.Println("  Setup cancelled, nothing saved.")
			return nil
		}
		return err
	}

	next.General.FundFile = strings.TrimSpace(next.General.FundFile)
	next.General.Currency = money.NormalizeCurrency(next.General.Currency)

	if err := config.Save(next); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}

	fmt.Println()
	fmt.Printf("  Saved to %s\n", config.Path())
	fmt.Println()
	return nil
}
