package model

import (
	"errors"
	"testing"

	"github.com/theirongolddev/rockpile/internal/money"
)

func TestAddMember(t *testing.T) {
	f := NewFund()

	m, err := f.AddMember("  Alice ", 100000)
	if err != nil {
		t.Fatalf("AddMember: %v", err)
	}
	if m.Name != "Alice" {
		t.Errorf("Name = %q, want Alice (trimmed)", m.Name)
	}
	if len(f.Members) != 1 || f.Members[0].MonthlyIncome != 100000 {
		t.Fatalf("Members = %+v, want one member with income 100000", f.Members)
	}
}

func TestAddMember_DuplicateLeavesListUntouched(t *testing.T) {
	f := NewFund()
	if _, err := f.AddMember("A", 100); err != nil {
		t.Fatal(err)
	}
	if _, err := f.AddMember("B", 200); err != nil {
		t.Fatal(err)
	}

	_, err := f.AddMember("A", 999)
	if !errors.Is(err, ErrDuplicateMember) {
		t.Fatalf("err = %v, want ErrDuplicateMember", err)
	}
	if len(f.Members) != 2 {
		t.Fatalf("len(Members) = %d, want 2", len(f.Members))
	}
	if f.Members[0].MonthlyIncome != 100 {
		t.Errorf("existing member income = %d, want 100", f.Members[0].MonthlyIncome)
	}
}

func TestAddMember_Rejects(t *testing.T) {
	f := NewFund()
	if _, err := f.AddMember("   ", 100); !errors.Is(err, ErrEmptyName) {
		t.Errorf("blank name err = %v, want ErrEmptyName", err)
	}
	if _, err := f.AddMember("A", -1); !errors.Is(err, ErrNegativeAmount) {
		t.Errorf("negative income err = %v, want ErrNegativeAmount", err)
	}
	if len(f.Members) != 0 {
		t.Errorf("len(Members) = %d, want 0", len(f.Members))
	}
}

func TestAddExpense(t *testing.T) {
	f := NewFund()
	if _, err := f.AddExpense("Rent", 150000); err != nil {
		t.Fatal(err)
	}
	if _, err := f.AddExpense("", 10); !errors.Is(err, ErrEmptyDescription) {
		t.Errorf("blank description err = %v, want ErrEmptyDescription", err)
	}
	if _, err := f.AddExpense("Bad", -10); !errors.Is(err, ErrNegativeAmount) {
		t.Errorf("negative amount err = %v, want ErrNegativeAmount", err)
	}
	if len(f.Expenses) != 1 || f.Expenses[0].Description != "Rent" {
		t.Fatalf("Expenses = %+v, want only Rent", f.Expenses)
	}
}

func TestTotals(t *testing.T) {
	f := NewFund()
	_, _ = f.AddMember("A", 100000)
	_, _ = f.AddMember("B", 75000)
	_, _ = f.AddExpense("Rent", 150000)
	_, _ = f.AddExpense("Power", 2500)

	if got := f.TotalIncome(); got != 175000 {
		t.Errorf("TotalIncome = %d, want 175000", got)
	}
	if got := f.TotalExpenses(); got != 152500 {
		t.Errorf("TotalExpenses = %d, want 152500", got)
	}
}

func TestAddMember_TotalIncomeBounded(t *testing.T) {
	f := NewFund()
	if _, err := f.AddMember("A", money.MaxAmount); err != nil {
		t.Fatalf("AddMember(MaxAmount): %v", err)
	}
	if _, err := f.AddMember("B", 1); !errors.Is(err, ErrAmountTooLarge) {
		t.Errorf("second member err = %v, want ErrAmountTooLarge", err)
	}
	if _, err := f.AddMember("C", money.MaxAmount+1); !errors.Is(err, ErrAmountTooLarge) {
		t.Errorf("oversized income err = %v, want ErrAmountTooLarge", err)
	}
	if len(f.Members) != 1 {
		t.Errorf("len(Members) = %d, want 1", len(f.Members))
	}
}

func TestAddExpense_TotalBounded(t *testing.T) {
	f := NewFund()
	if _, err := f.AddExpense("Big", money.MaxAmount-5); err != nil {
		t.Fatal(err)
	}
	if _, err := f.AddExpense("Small", 6); !errors.Is(err, ErrAmountTooLarge) {
		t.Errorf("err = %v, want ErrAmountTooLarge", err)
	}
	if _, err := f.AddExpense("Small", 5); err != nil {
		t.Errorf("AddExpense at the limit: %v", err)
	}
}

func TestValidate(t *testing.T) {
	ok := Fund{Balance: 10, Members: []Member{{"A", 100}}, Expenses: []Expense{{"Rent", 50}}}
	if err := ok.Validate(); err != nil {
		t.Errorf("Validate(ok) = %v", err)
	}

	cases := map[string]Fund{
		"negative balance": {Balance: -1},
		"huge balance":     {Balance: money.MaxAmount + 1},
		"negative income":  {Members: []Member{{"A", -1}}},
		"income overflow":  {Members: []Member{{"A", money.MaxAmount}, {"B", money.MaxAmount}}},
		"expense overflow": {Expenses: []Expense{{"x", money.MaxAmount}, {"y", 1}}},
	}
	for name, f := range cases {
		if err := f.Validate(); err == nil {
			t.Errorf("%s: Validate = nil, want error", name)
		}
	}
}

func TestErrNegativeAmount_SharedWithMoney(t *testing.T) {
	_, err := money.ParseDollars("-3")
	if !errors.Is(err, ErrNegativeAmount) {
		t.Errorf("ParseDollars(-3) err = %v, want model.ErrNegativeAmount", err)
	}
}

func TestNormalize(t *testing.T) {
	var f Fund
	f.Normalize()
	if f.Members == nil || f.Expenses == nil {
		t.Fatal("Normalize left a nil list")
	}
}

func TestCheckMemberName(t *testing.T) {
	f := NewFund()
	if _, err := f.AddMember("Alice", 100); err != nil {
		t.Fatal(err)
	}

	if err := f.CheckMemberName("  Bob "); err != nil {
		t.Errorf("CheckMemberName(Bob) = %v, want nil", err)
	}
	if err := f.CheckMemberName(" Alice"); !errors.Is(err, ErrDuplicateMember) {
		t.Errorf("CheckMemberName(Alice) = %v, want ErrDuplicateMember", err)
	}
	if err := f.CheckMemberName("   "); !errors.Is(err, ErrEmptyName) {
		t.Errorf("CheckMemberName(blank) = %v, want ErrEmptyName", err)
	}
	if len(f.Members) != 1 {
		t.Errorf("members = %d, want 1", len(f.Members))
	}
}
