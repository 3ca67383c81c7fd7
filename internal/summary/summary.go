// Package summary aggregates a categorized statement into the monthly
// record that is persisted between sessions.
package summary

import (
	"github.com/Veraticus/statement-roast/internal/model"
)

// Build aggregates categorized transactions for one month. TotalSpent and
// CategoryTotals sum outflow magnitudes; TopCategory is the category with the
// most outflows, ties going to the earlier category in canonical order.
func Build(sessionID, month string, txns []model.CategorizedTransaction, awardsWon []model.AwardID) model.MonthlySummary {
	totals := make(map[model.Category]float64, len(model.AllCategories()))
	counts := make(map[model.Category]int)
	for _, c := range model.AllCategories() {
		totals[c] = 0
	}

	var spent float64
	for _, txn := range txns {
		if !txn.IsOutflow() {
			continue
		}
		spent += txn.Magnitude()
		totals[txn.Category] += txn.Magnitude()
		counts[txn.Category]++
	}

	top := model.CategoryOther
	best := 0
	for _, c := range model.AllCategories() {
		if counts[c] > best {
			best = counts[c]
			top = c
		}
	}

	won := make([]model.AwardID, len(awardsWon))
	copy(won, awardsWon)

	return model.MonthlySummary{
		SessionID:        sessionID,
		Month:            month,
		TotalSpent:       spent,
		TopCategory:      top,
		AwardsWon:        won,
		TransactionCount: len(txns),
		CategoryTotals:   totals,
	}
}

// StatementMonth picks the "YYYY-MM" holding the most transactions, preferring
// the later month on ties. It returns "" for an empty statement.
func StatementMonth(txns []model.Transaction) string {
	counts := make(map[string]int)
	for _, txn := range txns {
		counts[txn.Date.Format(model.MonthLayout)]++
	}

	var month string
	best := 0
	for m, n := range counts {
		if n > best || (n == best && m > month) {
			best = n
			month = m
		}
	}
	return month
}
