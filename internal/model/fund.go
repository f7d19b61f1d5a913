package model

import (
	"fmt"
	"strings"

	"github.com/theirongolddev/rockpile/internal/money"
)

// Member is a participant who contributes a fixed income to the fund every cycle.
type Member struct {
	Name          string      `json:"name"`
	MonthlyIncome money.Cents `json:"monthly_income"`
}

// Expense is a shared cost the fund tries to pay every cycle.
type Expense struct {
	Description string      `json:"description"`
	Amount      money.Cents `json:"amount"`
}

// Fund is the shared pool: its balance plus the ordered members and expenses.
type Fund struct {
	Balance  money.Cents `json:"balance"`
	Members  []Member    `json:"members"`
	Expenses []Expense   `json:"expenses"`
}

// NewFund returns an empty fund with non-nil member and expense lists,
// so it serializes as [] rather than null.
func NewFund() Fund {
	return Fund{
		Members:  []Member{},
		Expenses: []Expense{},
	}
}

// HasMember reports whether a member with exactly this name exists.
func (f *Fund) HasMember(name string) bool {
	for _, m := range f.Members {
		if m.Name == name {
			return true
		}
	}
	return false
}

// AddMember appends a member after trimming and validating the name.
// The member list is left untouched on error.
func (f *Fund) AddMember(name string, income money.Cents) (Member, error) {
	name = strings.TrimSpace(name)
	if err := f.CheckMemberName(name); err != nil {
		return Member{}, err
	}
	if err := checkAmount(income, f.TotalIncome()); err != nil {
		return Member{}, err
	}

	m := Member{Name: name, MonthlyIncome: income}
	f.Members = append(f.Members, m)
	return m, nil
}

// CheckMemberName reports whether name, once trimmed, could be added as a
// new member.
func (f *Fund) CheckMemberName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrEmptyName
	}
	if f.HasMember(name) {
		return ErrDuplicateMember
	}
	return nil
}

// AddExpense appends an expense after trimming and validating the description.
func (f *Fund) AddExpense(description string, amount money.Cents) (Expense, error) {
	description = strings.TrimSpace(description)
	if description == "" {
		return Expense{}, ErrEmptyDescription
	}
	if err := checkAmount(amount, f.TotalExpenses()); err != nil {
		return Expense{}, err
	}

	e := Expense{Description: description, Amount: amount}
	f.Expenses = append(f.Expenses, e)
	return e, nil
}

// TotalIncome is the sum of all member incomes, i.e. what one cycle collects.
func (f *Fund) TotalIncome() money.Cents {
	var total money.Cents
	for _, m := range f.Members {
		total += m.MonthlyIncome
	}
	return total
}

// TotalExpenses is the sum of all expense amounts.
func (f *Fund) TotalExpenses() money.Cents {
	var total money.Cents
	for _, e := range f.Expenses {
		total += e.Amount
	}
	return total
}

// Normalize replaces nil lists with empty ones. Used after decoding a file
// that omits "members" or "expenses".
func (f *Fund) Normalize() {
	if f.Members == nil {
		f.Members = []Member{}
	}
	if f.Expenses == nil {
		f.Expenses = []Expense{}
	}
}

// Validate checks a decoded fund against the limits AddMember and
// AddExpense enforce, so a running cycle cannot overflow.
func (f *Fund) Validate() error {
	if err := checkAmount(f.Balance, 0); err != nil {
		return fmt.Errorf("balance: %w", err)
	}
	var income, expenses money.Cents
	for _, m := range f.Members {
		if err := checkAmount(m.MonthlyIncome, income); err != nil {
			return fmt.Errorf("member %q: %w", m.Name, err)
		}
		income += m.MonthlyIncome
	}
	for _, e := range f.Expenses {
		if err := checkAmount(e.Amount, expenses); err != nil {
			return fmt.Errorf("expense %q: %w", e.Description, err)
		}
		expenses += e.Amount
	}
	return nil
}

// checkAmount accepts amount if it is non-negative and adding it to total
// stays within money.MaxAmount.
func checkAmount(amount, total money.Cents) error {
	if amount < 0 {
		return ErrNegativeAmount
	}
	if amount > money.MaxAmount || total > money.MaxAmount-amount {
		return ErrAmountTooLarge
	}
	return nil
}
