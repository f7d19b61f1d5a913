package settle

import (
	"fmt"

	"github.com/theirongolddev/rockpile/internal/money"
)

// Line kinds, in the order they appear in a report.
const (
	KindContribution = "contribution"
	KindPaid         = "paid"
	KindUnpaid       = "insufficient"
	KindDistribution = "distribution"
	KindNoMembers    = "no_members"
	KindTotal        = "total"
)

// Report describes one monthly cycle.
type Report struct {
	Opening       money.Cents
	AfterIncome   money.Cents
	AfterExpenses money.Cents
	Closing       money.Cents

	Contributions []Contribution
	Payments      []Payment
	Distribution  Distribution
}

// Line is one printable event of a cycle.
type Line struct {
	Kind    string
	Subject string // member name or expense description
	Amount  money.Cents
	Text    string
}

// TotalIncome is the sum of all contributions.
func (r Report) TotalIncome() money.Cents {
	var total money.Cents
	for _, c := range r.Contributions {
		total += c.Amount
	}
	return total
}

// TotalPaid is the sum of all paid expenses.
func (r Report) TotalPaid() money.Cents {
	var total money.Cents
	for _, p := range r.Payments {
		if p.Paid {
			total += p.Amount
		}
	}
	return total
}

// Unpaid returns the expenses that were skipped for lack of funds.
func (r Report) Unpaid() []Payment {
	var out []Payment
	for _, p := range r.Payments {
		if !p.Paid {
			out = append(out, p)
		}
	}
	return out
}

// Lines returns the cycle's events in order, ending with the closing total.
func (r Report) Lines() []Line {
	lines := make([]Line, 0, len(r.Contributions)+len(r.Payments)+len(r.Distribution.Members)+2)

	for _, c := range r.Contributions {
		lines = append(lines, Line{
			Kind:    KindContribution,
			Subject: c.Member,
			Amount:  c.Amount,
			Text:    fmt.Sprintf("%s contributed %s.", c.Member, c.Amount.Dollars()),
		})
	}

	for _, p := range r.Payments {
		if p.Paid {
			lines = append(lines, Line{
				Kind:    KindPaid,
				Subject: p.Description,
				Amount:  p.Amount,
				Text:    fmt.Sprintf("Paid %s for %s.", p.Amount.Dollars(), p.Description),
			})
			continue
		}
		lines = append(lines, Line{
			Kind:    KindUnpaid,
			Subject: p.Description,
			Amount:  p.Amount,
			Text:    fmt.Sprintf("Insufficient funds to pay %s for %s.", p.Amount.Dollars(), p.Description),
		})
	}

	if r.Distribution.Skipped() {
		lines = append(lines, Line{Kind: KindNoMembers, Text: "No members to redistribute funds."})
	} else {
		for _, name := range r.Distribution.Members {
			lines = append(lines, Line{
				Kind:    KindDistribution,
				Subject: name,
				Amount:  r.Distribution.Share,
				Text:    fmt.Sprintf("%s received a distribution of %s.", name, r.Distribution.Share.Dollars()),
			})
		}
	}

	lines = append(lines, Line{
		Kind:   KindTotal,
		Amount: r.Closing,
		Text:   TotalLine(r.Closing),
	})
	return lines
}

// Text returns just the printable text of Lines.
func (r Report) Text() []string {
	lines := r.Lines()
	out := make([]string, len(lines))
	for i, l := range lines {
		out[i] = l.Text
	}
	return out
}

// TotalLine is the balance line shown after a cycle and in the fund state view.
func TotalLine(balance money.Cents) string {
	return "Total funds in the pot: " + balance.Dollars()
}
