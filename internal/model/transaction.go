// Package model defines the core data structures for the roast engine.
package model

import (
	"crypto/sha256"
	"fmt"
	"time"
)

// DateLayout is the wire format for transaction dates.
const DateLayout = "2006-01-02"

// Transaction is a single statement line. Negative amounts are outflows.
type Transaction struct {
	Date        time.Time `json:"date"`
	Description string    `json:"description"`
	Amount      float64   `json:"amount"`
}

// IsOutflow reports whether the transaction is an expense.
func (t Transaction) IsOutflow() bool {
	return t.Amount < 0
}

// IsInflow reports whether the transaction adds money to the account.
func (t Transaction) IsInflow() bool {
	return t.Amount > 0
}

// Magnitude returns the absolute amount.
func (t Transaction) Magnitude() float64 {
	if t.Amount < 0 {
		return -t.Amount
	}
	return t.Amount
}

// Day returns the transaction date truncated to a UTC calendar day.
func (t Transaction) Day() time.Time {
	return CalendarDay(t.Date)
}

// GenerateHash creates a hash for duplicate detection across statement files.
func (t Transaction) GenerateHash() string {
	data := fmt.Sprintf("%s:%.2f:%s",
		t.Date.Format(DateLayout),
		t.Amount,
		t.Description)
	hash := sha256.Sum256([]byte(data))
	return fmt.Sprintf("%x", hash)
}

// CalendarDay drops the clock and location from t, keeping its calendar date.
func CalendarDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// CategorizedTransaction is a transaction paired with the label assigned to it.
type CategorizedTransaction struct {
	Category Category `json:"category"`
	Transaction
}
