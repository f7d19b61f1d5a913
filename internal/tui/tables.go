package tui

import (
	"strconv"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
	"github.com/theirongolddev/rockpile/internal/cli"
	"github.com/theirongolddev/rockpile/internal/tui/components"
	"github.com/theirongolddev/rockpile/internal/tui/theme"
)

func newTable() table.Model {
	t := theme.Active

	styles := table.DefaultStyles()
	styles.Header = styles.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(t.Border).
		BorderBottom(true).
		Foreground(t.Accent).
		Bold(true)
	styles.Cell = styles.Cell.Foreground(t.TextPrimary)
	styles.Selected = styles.Selected.
		Foreground(t.AccentBright).
		Background(t.SurfaceHover).
		Bold(false)

	return table.New(
		table.WithFocused(true),
		table.WithStyles(styles),
	)
}

// tableHeight is the number of rows a tab table can show.
func (a App) tableHeight() int {
	h := a.height - 8 // tab bar, card border and title, status bar
	if h < minContentHeight {
		h = minContentHeight
	}
	return h
}

// rebuildTables refreshes every table from the session fund and history.
func (a *App) rebuildTables() {
	inner := components.CardInnerWidth(a.contentWidth())
	if inner < 30 {
		inner = 30
	}
	h := a.tableHeight()

	amountW := 16
	nameW := inner - 3 - amountW - 3*2 // cells are padded one column each side

	a.members.SetColumns([]table.Column{
		{Title: "#", Width: 3},
		{Title: "Name", Width: nameW},
		{Title: "Monthly Income", Width: amountW},
	})
	var rows []table.Row
	for i, m := range a.session.Fund.Members {
		rows = append(rows, table.Row{strconv.Itoa(i + 1), m.Name, cli.FormatMoney(m.MonthlyIncome)})
	}
	a.members.SetRows(rows)
	a.members.SetHeight(h)
	a.members.SetWidth(inner)

	a.expenses.SetColumns([]table.Column{
		{Title: "#", Width: 3},
		{Title: "Description", Width: nameW},
		{Title: "Amount", Width: amountW},
	})
	rows = nil
	for i, e := range a.session.Fund.Expenses {
		rows = append(rows, table.Row{strconv.Itoa(i + 1), e.Description, cli.FormatMoney(e.Amount)})
	}
	a.expenses.SetRows(rows)
	a.expenses.SetHeight(h)
	a.expenses.SetWidth(inner)

	colW := (inner - 10 - 14 - 7 - 7*2) / 4
	if colW < 10 {
		colW = 10
	}
	a.past.SetColumns([]table.Column{
		{Title: "ID", Width: 10},
		{Title: "Ran", Width: 14},
		{Title: "Income", Width: colW},
		{Title: "Paid", Width: colW},
		{Title: "Skipped", Width: 7},
		{Title: "Share", Width: colW},
		{Title: "Closing", Width: colW},
	})
	rows = nil
	for _, c := range a.cycles {
		rows = append(rows, table.Row{
			cli.ShortID(c.ID),
			cli.FormatAge(c.RanAt),
			cli.FormatMoney(c.TotalIncome),
			cli.FormatMoney(c.TotalPaid),
			strconv.Itoa(c.SkippedCount),
			cli.FormatMoney(c.Share),
			cli.FormatMoney(c.Closing),
		})
	}
	a.past.SetRows(rows)
	a.past.SetHeight(h - 2) // sparkline row
	a.past.SetWidth(inner)

	a.members.SetCursor(clampCursor(a.members.Cursor(), len(a.session.Fund.Members)))
	a.expenses.SetCursor(clampCursor(a.expenses.Cursor(), len(a.session.Fund.Expenses)))
	a.past.SetCursor(clampCursor(a.past.Cursor(), len(a.cycles)))
}

func clampCursor(c, n int) int {
	if c >= n {
		c = n - 1
	}
	if c < 0 {
		c = 0
	}
	return c
}
