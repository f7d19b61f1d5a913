package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/theirongolddev/rockpile/internal/cli"
	"github.com/theirongolddev/rockpile/internal/money"
	"github.com/theirongolddev/rockpile/internal/settle"
	"github.com/theirongolddev/rockpile/internal/tui/components"
	"github.com/theirongolddev/rockpile/internal/tui/theme"
)

func (a App) renderOverviewTab(cw int) string {
	t := theme.Active
	f := a.session.Fund

	income := f.TotalIncome()
	expenses := f.TotalExpenses()
	net := income - expenses
	netColor := t.Income
	if net < 0 {
		netColor = t.Danger
	}

	perMember := "no members"
	if n := len(f.Members); n > 0 {
		perMember = "≈ " + cli.FormatMoney(net/money.Cents(n)) + " each"
	}

	metrics := components.MetricCardRow([]components.Metric{
		{Label: "Balance", Value: cli.FormatMoney(f.Balance), Color: t.AccentBright},
		{Label: "Monthly income", Value: cli.FormatMoney(income), Color: t.Income,
			Note: strconv.Itoa(len(f.Members)) + " members"},
		{Label: "Monthly expenses", Value: cli.FormatMoney(expenses), Color: t.Expense,
			Note: strconv.Itoa(len(f.Expenses)) + " expenses"},
		{Label: "Net per cycle", Value: cli.FormatMoney(net), Color: netColor, Note: perMember},
	}, cw)

	widths := components.LayoutRow(cw, 2)
	coverage := components.ContentCard("Expense coverage", a.renderCoverage(widths[0]), widths[0])
	last := components.ContentCard("Last cycle", a.renderLastCycle(widths[1]), widths[1])

	return metrics + "\n" + components.CardRow([]string{coverage, last})
}

// renderCoverage shows each expense as a share of total monthly income.
func (a App) renderCoverage(outer int) string {
	t := theme.Active
	f := a.session.Fund
	muted := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)

	if len(f.Expenses) == 0 {
		return muted.Render("No expenses.")
	}
	income := f.TotalIncome()
	if income == 0 {
		return muted.Render("No income to cover " + cli.FormatMoney(f.TotalExpenses()) + " of expenses.")
	}

	inner := components.CardInnerWidth(outer)
	labelW := inner / 3
	barW := inner - labelW - 7
	if barW < 4 {
		barW = 4
	}

	var b strings.Builder
	for i, e := range f.Expenses {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(components.CoverageBar(e.Description, float64(e.Amount)/float64(income), labelW, barW))
	}
	b.WriteString("\n")
	b.WriteString(components.CoverageBar("Total", float64(f.TotalExpenses())/float64(income), labelW, barW))
	return b.String()
}

func (a App) renderLastCycle(outer int) string {
	t := theme.Active
	muted := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)

	if a.lastReport == nil {
		if len(a.cycles) > 0 {
			c := a.cycles[0]
			return muted.Render(fmt.Sprintf("Last recorded %s, closing %s.\nPress c to run a cycle.",
				cli.FormatAge(c.RanAt), cli.FormatMoney(c.Closing)))
		}
		return muted.Render("No cycle run yet. Press c to run one.")
	}

	inner := components.CardInnerWidth(outer)
	var lines []string
	for _, l := range a.lastReport.Lines() {
		lines = append(lines, lineStyle(l.Kind).Render(truncStr(l.Text, inner)))
	}
	return strings.Join(lines, "\n")
}

func lineStyle(kind string) lipgloss.Style {
	t := theme.Active
	s := lipgloss.NewStyle().Background(t.Surface)
	switch kind {
	case settle.KindContribution:
		return s.Foreground(t.Income)
	case settle.KindPaid:
		return s.Foreground(t.Expense)
	case settle.KindUnpaid, settle.KindNoMembers:
		return s.Foreground(t.Warning)
	case settle.KindDistribution:
		return s.Foreground(t.Share)
	default:
		return s.Foreground(t.TextPrimary).Bold(true)
	}
}

func truncStr(s string, limit int) string {
	r := []rune(s)
	if limit <= 1 || len(r) <= limit {
		return s
	}
	return string(r[:limit-1]) + "…"
}
