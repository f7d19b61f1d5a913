// Package settle implements the monthly settlement cycle of a fund:
// collect member incomes, pay expenses, and split what is left evenly.
//
// Every step mutates the fund it is given and returns what it did, so a
// caller can render, record or inspect the cycle afterwards.
package settle

import (
	"github.com/theirongolddev/rockpile/internal/model"
	"github.com/theirongolddev/rockpile/internal/money"
)

// Contribution is one member's income added to the balance.
type Contribution struct {
	Member string
	Amount money.Cents
}

// Payment is one expense considered during a cycle.
// Paid is false when the balance could not cover Amount.
type Payment struct {
	Description string
	Amount      money.Cents
	Paid        bool
}

// Distribution is the outcome of splitting the balance among members.
type Distribution struct {
	Members   []string
	Share     money.Cents // per member
	Remainder money.Cents // kept in the fund
}

// Skipped reports whether there were no members to split among.
func (d Distribution) Skipped() bool {
	return len(d.Members) == 0
}

// CollectIncome adds every member's monthly income to the balance, in list order.
func CollectIncome(f *model.Fund) []Contribution {
	out := make([]Contribution, 0, len(f.Members))
	for _, m := range f.Members {
		f.Balance += m.MonthlyIncome
		out = append(out, Contribution{Member: m.Name, Amount: m.MonthlyIncome})
	}
	return out
}

// PayExpenses pays each expense the balance can cover, in list order.
// An expense that cannot be covered is skipped for this cycle only; it is
// neither retried nor carried over, and later expenses are still attempted.
func PayExpenses(f *model.Fund) []Payment {
	out := make([]Payment, 0, len(f.Expenses))
	for _, e := range f.Expenses {
		p := Payment{Description: e.Description, Amount: e.Amount}
		if f.Balance >= e.Amount {
			f.Balance -= e.Amount
			p.Paid = true
		}
		out = append(out, p)
	}
	return out
}

// Redistribute splits the balance evenly among members. Each member gets
// balance/n and the balance keeps balance%n. With no members the fund is
// left as is.
func Redistribute(f *model.Fund) Distribution {
	n := money.Cents(len(f.Members))
	if n == 0 {
		return Distribution{Remainder: f.Balance}
	}

	d := Distribution{
		Members:   make([]string, 0, len(f.Members)),
		Share:     f.Balance / n,
		Remainder: f.Balance % n,
	}
	for _, m := range f.Members {
		d.Members = append(d.Members, m.Name)
	}
	f.Balance = d.Remainder
	return d
}

// RunMonthlyCycle applies one full cycle to f and reports what happened.
// Steps are applied one after the other with no rollback.
func RunMonthlyCycle(f *model.Fund) Report {
	r := Report{Opening: f.Balance}
	r.Contributions = CollectIncome(f)
	r.AfterIncome = f.Balance
	r.Payments = PayExpenses(f)
	r.AfterExpenses = f.Balance
	r.Distribution = Redistribute(f)
	r.Closing = f.Balance
	return r
}
