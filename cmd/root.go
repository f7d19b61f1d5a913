// Package cmd implements the rockpile CLI commands.
package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/theirongolddev/rockpile/internal/cli"
	"github.com/theirongolddev/rockpile/internal/config"
	"github.com/theirongolddev/rockpile/internal/console"
	"github.com/theirongolddev/rockpile/internal/model"
	"github.com/theirongolddev/rockpile/internal/store"
)

var (
	flagFile      string
	flagQuiet     bool
	flagVerbose   bool
	flagNoHistory bool

	// cfg is loaded once in the persistent pre-run.
	cfg = config.DefaultConfig()
)

var rootCmd = &cobra.Command{
	Use:   "rockpile",
	Short: "Shared fund tracker",
	Long: "Track a shared pot of money: members pay in a monthly income, shared\n" +
		"expenses are paid from the pot, and what is left is split evenly.",
	SilenceUsage:      true,
	PersistentPreRunE: setup,
	RunE:              runMenu,
}

// Execute is the main entry point called from main.go.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagFile, "file", "f", "", "Fund file (default from config, then fund.json)")
	rootCmd.PersistentFlags().BoolVarP(&flagQuiet, "quiet", "q", false, "Suppress progress output")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Debug logging on stderr")
	rootCmd.PersistentFlags().BoolVar(&flagNoHistory, "no-history", false, "Do not record cycles in the history database")
}

func setup(_ *cobra.Command, _ []string) error {
	_ = godotenv.Load()

	if err := configureLogging(); err != nil {
		return err
	}

	loaded, err := config.Load()
	if err != nil {
		return err
	}
	cfg = loaded
	cli.SetCurrency(cfg.General.Currency)
	return nil
}

// configureLogging sends diagnostics to stderr at warn level unless
// --verbose or ROCKPILE_LOG_LEVEL says otherwise.
func configureLogging() error {
	log.SetOutput(os.Stderr)
	if flagVerbose {
		log.SetLevel(log.DebugLevel)
		return nil
	}

	level := os.Getenv("ROCKPILE_LOG_LEVEL")
	if level == "" {
		log.SetLevel(log.WarnLevel)
		return nil
	}
	l, err := log.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("ROCKPILE_LOG_LEVEL: %w", err)
	}
	log.SetLevel(l)
	return nil
}

// fundPath resolves the fund file: --file, then env and config.
func fundPath() string {
	if flagFile != "" {
		return flagFile
	}
	return config.FundFile(cfg)
}

// loadFund is the shared fund loading path used by the one-shot commands.
// A missing file yields an empty fund.
func loadFund() (model.Fund, error) {
	path := fundPath()
	f, err := store.LoadFundOrNew(path)
	if err != nil {
		return model.Fund{}, err
	}
	log.WithField("path", path).Debugf("loaded fund with %d members", len(f.Members))
	return f, nil
}

func saveFund(f model.Fund) error {
	path := fundPath()
	if err := store.SaveFund(path, f); err != nil {
		return err
	}
	if !flagQuiet {
		fmt.Fprintf(os.Stderr, "  Saved %s\n", path)
	}
	return nil
}

// openHistory returns nil when history is disabled or unavailable.
// Callers must Close a non-nil result.
func openHistory() *store.History {
	if flagNoHistory || !cfg.History.Enabled {
		return nil
	}
	h, err := store.OpenHistory(config.HistoryDB(cfg))
	if err != nil {
		log.WithError(err).Warn("cycle history unavailable")
		return nil
	}
	return h
}

// requireHistory opens the history database for commands that only read it.
func requireHistory() (*store.History, error) {
	if !cfg.History.Enabled {
		return nil, fmt.Errorf("cycle history is disabled in %s", config.Path())
	}
	return store.OpenHistory(config.HistoryDB(cfg))
}

// newSession builds a console session over the fund file, with history
// attached when available. The returned func releases the history database.
func newSession(p console.Prompter) (*console.Session, func()) {
	s := console.NewSession(fundPath(), p, os.Stdout)

	f, err := store.LoadFundOrNew(s.Path)
	if err != nil {
		log.WithError(err).WithField("path", s.Path).Warn("starting with an empty fund")
	} else {
		s.Fund = f
	}

	cleanup := func() {}
	if h := openHistory(); h != nil {
		s.History = h
		cleanup = func() { _ = h.Close() }
	}
	return s, cleanup
}
