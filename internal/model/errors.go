// Package model defines the fund domain types and their validation rules.
package model

import (
	"errors"

	"github.com/theirongolddev/rockpile/internal/money"
)

var (
	// ErrEmptyName is returned when a member name is blank.
	ErrEmptyName = errors.New("name cannot be empty")

	// ErrDuplicateMember is returned when a member with the same name exists.
	ErrDuplicateMember = errors.New("this name already exists")

	// ErrEmptyDescription is returned when an expense description is blank.
	ErrEmptyDescription = errors.New("description cannot be empty")

	// ErrNegativeAmount is returned for incomes or expense amounts below zero.
	ErrNegativeAmount = money.ErrNegativeAmount

	// ErrAmountTooLarge is returned when an amount, or the total it would
	// bring the fund's incomes or expenses to, exceeds money.MaxAmount.
	ErrAmountTooLarge = money.ErrAmountTooLarge
)
