package tui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/theirongolddev/rockpile/internal/cli"
	"github.com/theirongolddev/rockpile/internal/tui/components"
	"github.com/theirongolddev/rockpile/internal/tui/theme"
)

func (a App) renderMembersTab(cw int) string {
	f := a.session.Fund
	if len(f.Members) == 0 {
		return components.ContentCard("Members", emptyNote("No members. Add one with `rockpile member add`."), cw)
	}
	title := "Members · " + cli.FormatMoney(f.TotalIncome()) + " per month"
	return components.ContentCard(title, a.members.View(), cw)
}

func (a App) renderExpensesTab(cw int) string {
	f := a.session.Fund
	if len(f.Expenses) == 0 {
		return components.ContentCard("Expenses", emptyNote("No expenses. Add one with `rockpile expense add`."), cw)
	}
	title := "Expenses · " + cli.FormatMoney(f.TotalExpenses()) + " per month"
	return components.ContentCard(title, a.expenses.View(), cw)
}

func (a App) renderHistoryTab(cw int) string {
	t := theme.Active

	if a.history == nil {
		return components.ContentCard("History", emptyNote("Cycle history is disabled."), cw)
	}
	if a.historyErr != nil {
		warn := lipgloss.NewStyle().Foreground(t.Warning).Background(t.Surface)
		return components.ContentCard("History", warn.Render("Could not read history: "+a.historyErr.Error()), cw)
	}
	if len(a.cycles) == 0 {
		return components.ContentCard("History", emptyNote("No cycles recorded yet."), cw)
	}

	// Closing balances, oldest first.
	values := make([]float64, len(a.cycles))
	for i, c := range a.cycles {
		values[len(a.cycles)-1-i] = float64(c.Closing)
	}
	label := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface).Render("Closing balance ")
	trend := label + components.Sparkline(values, t.Accent)

	return components.ContentCard("History", trend+"\n\n"+a.past.View(), cw)
}

func emptyNote(s string) string {
	t := theme.Active
	return lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface).Render(s)
}
