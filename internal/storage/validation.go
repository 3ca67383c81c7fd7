package storage

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Veraticus/statement-roast/internal/model"
)

// Validation errors.
var (
	ErrNilContext     = errors.New("context cannot be nil")
	ErrEmptyString    = errors.New("string parameter cannot be empty")
	ErrNilParameter   = errors.New("parameter cannot be nil")
	ErrInvalidSummary = errors.New("invalid monthly summary")
)

// validateContext ensures the context is not nil.
func validateContext(ctx context.Context) error {
	if ctx == nil {
		return ErrNilContext
	}
	return nil
}

// validateString ensures a string parameter is not empty.
func validateString(s string, paramName string) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("%w: %s", ErrEmptyString, paramName)
	}
	return nil
}

func validateMonth(month string) error {
	if _, err := time.Parse(model.MonthLayout, month); err != nil {
		return fmt.Errorf("%w: month %q is not YYYY-MM", ErrInvalidSummary, month)
	}
	return nil
}

// validateSummary checks the invariants a stored summary must hold.
func validateSummary(s *model.MonthlySummary) error {
	if s == nil {
		return fmt.Errorf("%w: summary", ErrNilParameter)
	}
	if strings.TrimSpace(s.SessionID) == "" {
		return fmt.Errorf("%w: missing session ID", ErrInvalidSummary)
	}
	if err := validateMonth(s.Month); err != nil {
		return err
	}
	if !s.TopCategory.IsValid() {
		return fmt.Errorf("%w: unknown top category %q", ErrInvalidSummary, s.TopCategory)
	}
	if s.TotalSpent < 0 {
		return fmt.Errorf("%w: total spent cannot be negative", ErrInvalidSummary)
	}
	if s.TransactionCount < 0 {
		return fmt.Errorf("%w: transaction count cannot be negative", ErrInvalidSummary)
	}
	for _, id := range s.AwardsWon {
		if !id.IsValid() {
			return fmt.Errorf("%w: unknown award %q", ErrInvalidSummary, id)
		}
	}
	for c := range s.CategoryTotals {
		if !c.IsValid() {
			return fmt.Errorf("%w: unknown category %q", ErrInvalidSummary, c)
		}
	}
	return nil
}
