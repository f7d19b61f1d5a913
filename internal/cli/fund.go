package cli

import (
	"strconv"

	"github.com/theirongolddev/rockpile/internal/model"
	"github.com/theirongolddev/rockpile/internal/store"
)

// MemberTable lists members with their monthly income and a total row.
func MemberTable(f model.Fund) Table {
	t := Table{
		Title:   "Members",
		Headers: []string{"Name", "Monthly Income"},
	}
	for _, m := range f.Members {
		t.Rows = append(t.Rows, []string{m.Name, FormatMoney(m.MonthlyIncome)})
	}
	if len(f.Members) > 0 {
		t.Rows = append(t.Rows, []string{"---"})
		t.Rows = append(t.Rows, []string{"Total", FormatMoney(f.TotalIncome())})
	}
	return t
}

// ExpenseTable lists expenses with their amounts and a total row.
func ExpenseTable(f model.Fund) Table {
	t := Table{
		Title:   "Expenses",
		Headers: []string{"Description", "Amount"},
	}
	for _, e := range f.Expenses {
		t.Rows = append(t.Rows, []string{e.Description, FormatMoney(e.Amount)})
	}
	if len(f.Expenses) > 0 {
		t.Rows = append(t.Rows, []string{"---"})
		t.Rows = append(t.Rows, []string{"Total", FormatMoney(f.TotalExpenses())})
	}
	return t
}

// HistoryTable lists recorded cycles, newest first.
func HistoryTable(cycles []store.CycleSummary) Table {
	t := Table{
		Title:   "Cycle History",
		Headers: []string{"ID", "Ran", "Income", "Paid", "Skipped", "Share", "Closing"},
	}
	for _, c := range cycles {
		t.Rows = append(t.Rows, []string{
			ShortID(c.ID),
			FormatAge(c.RanAt),
			FormatMoney(c.TotalIncome),
			FormatMoney(c.TotalPaid),
			strconv.Itoa(c.SkippedCount),
			FormatMoney(c.Share),
			FormatMoney(c.Closing),
		})
	}
	return t
}
