// Package engine ties categorization, award evaluation and ranking together
// for one statement, and persists the monthly outcome.
package engine

import (
	"github.com/Veraticus/statement-roast/internal/awards"
	"github.com/Veraticus/statement-roast/internal/classification"
	"github.com/Veraticus/statement-roast/internal/model"
	"github.com/Veraticus/statement-roast/internal/summary"
)

// Report is the outcome of analyzing one statement.
type Report struct {
	Month       string                         `json:"month"`
	Categorized []model.CategorizedTransaction `json:"categorized"`
	Awards      []model.Award                  `json:"awards"`
}

// Analyzer runs the pure analysis pipeline with a fixed categorizer.
type Analyzer struct {
	categorizer *classification.Categorizer
}

// NewAnalyzer creates an analyzer. A nil categorizer uses the default rules.
func NewAnalyzer(c *classification.Categorizer) *Analyzer {
	if c == nil {
		c = classification.Default()
	}
	return &Analyzer{categorizer: c}
}

// Analyze categorizes txns, evaluates every award and ranks the winners.
func (a *Analyzer) Analyze(txns []model.Transaction) Report {
	categorized := a.categorizer.CategorizeAll(txns)
	return Report{
		Month:       summary.StatementMonth(txns),
		Categorized: categorized,
		Awards:      awards.Rank(awards.Evaluate(categorized)),
	}
}

// Analyze runs the default analyzer.
func Analyze(txns []model.Transaction) Report {
	return NewAnalyzer(nil).Analyze(txns)
}

// Top returns the n highest ranked awards; n <= 0 returns all of them.
func (r Report) Top(n int) []model.Award {
	return awards.Top(r.Awards, n)
}

// Summary aggregates the report for persistence. Every won award is kept,
// not only the ones displayed.
func (r Report) Summary(sessionID string) model.MonthlySummary {
	return summary.Build(sessionID, r.Month, r.Categorized, awards.IDs(r.Awards))
}

// CategoryCounts returns how many transactions fell into each category.
func (r Report) CategoryCounts() map[model.Category]int {
	counts := make(map[model.Category]int, len(model.AllCategories()))
	for _, t := range r.Categorized {
		counts[t.Category]++
	}
	return counts
}
