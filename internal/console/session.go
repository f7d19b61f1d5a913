// Package console runs the interactive fund menu.
//
// A Session owns one fund value and exposes each menu entry as a handler,
// so the same actions can be driven by the numbered menu, by cobra
// commands, or by the dashboard.
package console

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/theirongolddev/rockpile/internal/model"
	"github.com/theirongolddev/rockpile/internal/money"
	"github.com/theirongolddev/rockpile/internal/settle"
	"github.com/theirongolddev/rockpile/internal/store"
)

// Recorder stores a finished cycle. *store.History satisfies it.
type Recorder interface {
	Record(r settle.Report, at time.Time) (string, error)
}

// Session is one interactive run over a fund.
type Session struct {
	Fund    model.Fund
	Path    string    // fund file used by Save and Load
	History Recorder  // optional
	Out     io.Writer // user-facing output
	Prompt  Prompter

	now func() time.Time
}

// NewSession returns a session over an empty fund.
func NewSession(path string, p Prompter, out io.Writer) *Session {
	return &Session{
		Fund:   model.NewFund(),
		Path:   path,
		Out:    out,
		Prompt: p,
		now:    time.Now,
	}
}

func (s *Session) println(a ...any) {
	fmt.Fprintln(s.Out, a...)
}

// ViewState prints the balance, members and expenses.
func (s *Session) ViewState() {
	s.println("\n--- Fund State ---")
	s.println(settle.TotalLine(s.Fund.Balance))
	s.println("\nMembers:")
	for _, m := range s.Fund.Members {
		fmt.Fprintf(s.Out, "%s with income %s\n", m.Name, m.MonthlyIncome.Dollars())
	}
	s.println("\nExpenses:")
	for _, e := range s.Fund.Expenses {
		fmt.Fprintf(s.Out, "%s: %s\n", e.Description, e.Amount.Dollars())
	}
}

// AddMember prompts for a name and an income and appends the member.
// Validation failures are reported to the user and return nil; only
// prompter errors are returned.
func (s *Session) AddMember() error {
	name, err := s.Prompt.Text("Enter a member's name:")
	if err != nil {
		return err
	}

	if err := s.Fund.CheckMemberName(name); err != nil {
		s.report(err)
		return nil
	}

	income, err := s.Prompt.Amount(fmt.Sprintf("Enter %s's income in dollars: ", strings.TrimSpace(name)))
	if err != nil {
		return err
	}

	m, err := s.Fund.AddMember(name, income)
	if err != nil {
		s.report(err)
		return nil
	}
	log.WithField("member", m.Name).Debug("member added")
	s.println("Member added successfully!")
	return nil
}

// AddExpense prompts for a description and an amount and appends the expense.
func (s *Session) AddExpense() error {
	desc, err := s.Prompt.Text("Enter expense description:")
	if err != nil {
		return err
	}
	if strings.TrimSpace(desc) == "" {
		s.report(model.ErrEmptyDescription)
		return nil
	}

	amount, err := s.Prompt.Amount("Enter expense amount in dollars: ")
	if err != nil {
		return err
	}

	e, err := s.Fund.AddExpense(desc, amount)
	if err != nil {
		s.report(err)
		return nil
	}
	log.WithField("expense", e.Description).Debug("expense added")
	s.println("Expense added successfully!")
	return nil
}

// RunCycle runs one monthly cycle on the session's fund and prints it.
// The cycle is recorded to History when one is set; a recording failure
// is logged and does not undo the cycle.
func (s *Session) RunCycle() settle.Report {
	s.println("\n--- Starting Monthly Cycle ---")
	r := settle.RunMonthlyCycle(&s.Fund)
	for _, line := range r.Text() {
		s.println(line)
	}
	s.println("--- End of Monthly Cycle ---")
	s.println()

	if s.History != nil {
		now := time.Now
		if s.now != nil {
			now = s.now
		}
		id, err := s.History.Record(r, now())
		if err != nil {
			log.WithError(err).Warn("could not record cycle history")
		} else {
			log.WithField("cycle", id).Debug("cycle recorded")
		}
	}
	return r
}

// Save writes the fund to the session's file.
func (s *Session) Save() error {
	if err := store.SaveFund(s.Path, s.Fund); err != nil {
		log.WithError(err).WithField("path", s.Path).Error("saving fund")
		s.println("Failed to save the fund to file.")
		return err
	}
	s.println("Fund saved to file successfully!")
	return nil
}

// Load replaces the fund with the contents of the session's file.
// On any failure the current fund is kept unchanged.
func (s *Session) Load() error {
	f, err := store.LoadFund(s.Path)
	if err != nil {
		log.WithError(err).WithField("path", s.Path).Error("loading fund")
		s.println("Failed to load the fund from file.")
		return err
	}
	s.Fund = f
	s.println("Fund loaded successfully!")
	return nil
}

// report prints the user-facing message for a validation error.
func (s *Session) report(err error) {
	switch {
	case errors.Is(err, model.ErrEmptyName):
		s.println("Name cannot be empty.")
	case errors.Is(err, model.ErrDuplicateMember):
		s.println("This name already exists. Please enter a unique name.")
	case errors.Is(err, model.ErrEmptyDescription):
		s.println("Description cannot be empty.")
	case errors.Is(err, model.ErrAmountTooLarge):
		s.println("That amount would take the fund past " + money.MaxAmount.Dollars() + ".")
	default:
		s.println(err.Error())
	}
}

// Run shows the menu until the user exits, the prompter is aborted, or
// ctx is cancelled.
func (s *Session) Run(ctx context.Context) error {
	items := s.menu()
	labels := make([]string, len(items))
	for i, it := range items {
		labels[i] = it.label
	}

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		choice, err := s.Prompt.Choose(MenuTitle, labels)
		if errors.Is(err, ErrAborted) {
			s.println("Exiting the program. Goodbye!")
			return nil
		}
		if err != nil {
			return fmt.Errorf("reading menu choice: %w", err)
		}

		if choice < 1 || choice > len(items) {
			s.println("Invalid choice. Please try again.")
			continue
		}

		it := items[choice-1]
		if it.exit {
			s.println("Exiting the program. Goodbye!")
			return nil
		}
		if err := it.run(); err != nil {
			if errors.Is(err, ErrAborted) {
				s.println("Exiting the program. Goodbye!")
				return nil
			}
			return err
		}
	}
}

// MenuTitle heads the numbered menu.
const MenuTitle = "--- RockPile Fund Management ---"

type menuItem struct {
	label string
	run   func() error
	exit  bool
}

func (s *Session) menu() []menuItem {
	return []menuItem{
		{label: "View Fund State", run: func() error { s.ViewState(); return nil }},
		{label: "Add a Member", run: s.AddMember},
		{label: "Add an Expense", run: s.AddExpense},
		{label: "Run Monthly Cycle", run: func() error { s.RunCycle(); return nil }},
		// Save and Load failures are reported to the user; the menu keeps going.
		{label: "Save Fund to File", run: func() error { _ = s.Save(); return nil }},
		{label: "Load Fund from File", run: func() error { _ = s.Load(); return nil }},
		{label: "Exit", exit: true},
	}
}
