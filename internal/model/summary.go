package model

import "time"

// MonthLayout is the format of MonthlySummary.Month.
const MonthLayout = "2006-01"

// MonthlySummary is the persisted aggregate for one session and month.
// CategoryTotals always carries every category, zero or not.
type MonthlySummary struct {
	UpdatedAt        time.Time            `json:"updated_at"`
	CategoryTotals   map[Category]float64 `json:"category_totals"`
	SessionID        string               `json:"session_id"`
	Month            string               `json:"month"`
	TopCategory      Category             `json:"top_category"`
	AwardsWon        []AwardID            `json:"awards_won"`
	TotalSpent       float64              `json:"total_spent"`
	TransactionCount int                  `json:"transaction_count"`
}

// HasAward reports whether id was won in this month.
func (s MonthlySummary) HasAward(id AwardID) bool {
	for _, won := range s.AwardsWon {
		if won == id {
			return true
		}
	}
	return false
}
