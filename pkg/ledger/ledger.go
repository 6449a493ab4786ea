// Package ledger holds the transaction and category domain types.
package ledger

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/finpet/finpet-api/pkg/mission"
)

// Type is the transaction direction. Values match the stored typeId.
type Type int

const (
	Expense Type = 1
	Income  Type = 2
)

// OtherCategory is the fallback category name used when none matches.
const OtherCategory = "Other"

// ParseType accepts "expense"/"income" as well as "1"/"2".
func ParseType(s string) (Type, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "expense", "1":
		return Expense, nil
	case "income", "2":
		return Income, nil
	}
	return 0, fmt.Errorf("unknown transaction type %q", s)
}

// Valid reports whether t is a known type.
func (t Type) Valid() bool { return t == Expense || t == Income }

func (t Type) String() string {
	switch t {
	case Expense:
		return "expense"
	case Income:
		return "income"
	default:
		return "unknown"
	}
}

// Signed returns amount with the sign it has on the user's balance.
func (t Type) Signed(amount decimal.Decimal) decimal.Decimal {
	if t == Expense {
		return amount.Neg()
	}
	return amount
}

// Category groups transactions. Global categories have an empty UserID.
type Category struct {
	ID     string `json:"id"`
	UserID string `json:"userId,omitempty"`
	Name   string `json:"name"`
	Type   Type   `json:"typeId"`
	Icon   string `json:"icon,omitempty"`
}

// IsGlobal reports whether the category is shared by all users.
func (c *Category) IsGlobal() bool { return c.UserID == "" }

// VisibleTo reports whether userID may book transactions against c.
func (c *Category) VisibleTo(userID string) bool {
	return c.IsGlobal() || c.UserID == userID
}

// Transaction is a single expense or income entry.
type Transaction struct {
	ID           string          `json:"id"`
	UserID       string          `json:"userId"`
	Amount       decimal.Decimal `json:"amount"`
	Type         Type            `json:"typeId"`
	CategoryID   string          `json:"categoryId"`
	CategoryName string          `json:"categoryName,omitempty"`
	Date         time.Time       `json:"date"`
	Note         string          `json:"note,omitempty"`
	CreatedAt    time.Time       `json:"createdAt"`
}

// CreateResult is returned after recording a transaction. NewBalance is
// nil when the balance update did not go through.
type CreateResult struct {
	Transaction      *Transaction        `json:"transaction"`
	NewBalance       *decimal.Decimal    `json:"newBalance,omitempty"`
	MissionCompleted *mission.Completion `json:"missionCompleted,omitempty"`
}

// MonthlyTotals are income and expense sums for one calendar month.
type MonthlyTotals struct {
	Income  decimal.Decimal `json:"monthlyIncome"`
	Expense decimal.Decimal `json:"monthlyExpense"`
}

// ListFilter restricts ListTransactions. Zero values mean no restriction.
type ListFilter struct {
	Start *time.Time
	End   *time.Time
	Type  Type
	Limit int
}

// BalanceDrift is a user whose stored balance disagrees with the sum of their
// transactions.
type BalanceDrift struct {
	UserID   string          `json:"userId"`
	Stored   decimal.Decimal `json:"stored"`
	Computed decimal.Decimal `json:"computed"`
}

// Delta is the correction that brings Stored to Computed.
func (d BalanceDrift) Delta() decimal.Decimal {
	return d.Computed.Sub(d.Stored)
}
