package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/theirongolddev/rockpile/internal/settle"
	"github.com/theirongolddev/rockpile/internal/store"
)

// StatementMarkdown builds a markdown statement for one recorded cycle.
func StatementMarkdown(c store.CycleSummary, lines []store.CycleLine) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Cycle %s\n\n", ShortID(c.ID))
	fmt.Fprintf(&b, "Ran %s (%s).\n\n", c.RanAt.Local().Format("2006-01-02 15:04"), FormatAge(c.RanAt))

	b.WriteString("| | Amount |\n|---|---:|\n")
	fmt.Fprintf(&b, "| Opening balance | %s |\n", FormatMoney(c.Opening))
	fmt.Fprintf(&b, "| Income collected | %s |\n", FormatMoney(c.TotalIncome))
	fmt.Fprintf(&b, "| Expenses paid | %s |\n", FormatMoney(c.TotalPaid))
	if c.MemberCount > 0 {
		fmt.Fprintf(&b, "| Share per member (%d) | %s |\n", c.MemberCount, FormatMoney(c.Share))
	}
	fmt.Fprintf(&b, "| Closing balance | %s |\n\n", FormatMoney(c.Closing))

	if c.SkippedCount > 0 {
		fmt.Fprintf(&b, "> %d expense(s) could not be paid this cycle.\n\n", c.SkippedCount)
	}

	sections := []struct {
		title string
		kinds []string
	}{
		{"Contributions", []string{settle.KindContribution}},
		{"Expenses", []string{settle.KindPaid, settle.KindUnpaid}},
		{"Distribution", []string{settle.KindDistribution, settle.KindNoMembers}},
	}
	for _, s := range sections {
		var items []string
		for _, l := range lines {
			for _, k := range s.kinds {
				if l.Kind == k {
					items = append(items, l.Text)
				}
			}
		}
		if len(items) == 0 {
			continue
		}
		fmt.Fprintf(&b, "## %s\n\n", s.title)
		for _, it := range items {
			fmt.Fprintf(&b, "- %s\n", it)
		}
		b.WriteString("\n")
	}

	fmt.Fprintf(&b, "**%s**\n", settle.TotalLine(c.Closing))
	return b.String()
}

// RenderMarkdown renders markdown for the terminal with the given glamour
// style ("dark", "light", "notty", ...).
func RenderMarkdown(md, style string, width int) (string, error) {
	if width <= 0 {
		width = 80
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(style),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return "", fmt.Errorf("creating markdown renderer: %w", err)
	}
	out, err := r.Render(md)
	if err != nil {
		return "", fmt.Errorf("rendering markdown: %w", err)
	}
	return out, nil
}
