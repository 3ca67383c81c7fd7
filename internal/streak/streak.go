// Package streak finds awards won in consecutive calendar months.
package streak

import (
	"fmt"
	"sort"
	"time"

	"github.com/Veraticus/statement-roast/internal/model"
)

// minStreak is the shortest run worth reporting.
const minStreak = 2

// NextMonth returns the "YYYY-MM" month following month.
func NextMonth(month string) (string, error) {
	t, err := time.Parse(model.MonthLayout, month)
	if err != nil {
		return "", fmt.Errorf("invalid month %q: %w", month, err)
	}
	return t.AddDate(0, 1, 0).Format(model.MonthLayout), nil
}

// follows reports whether next is exactly one calendar month after prev.
func follows(prev, next string) bool {
	want, err := NextMonth(prev)
	if err != nil {
		return false
	}
	return want == next
}

// FindCurrent returns the streaks still alive in history, which must be
// ordered by ascending month. For every award ever won it walks backward from
// the latest month while the award keeps appearing in contiguous months.
// Only runs of at least two months are returned, longest first.
func FindCurrent(history []model.MonthlySummary) []model.Streak {
	if len(history) < minStreak {
		return nil
	}

	var ids []model.AwardID
	seen := make(map[model.AwardID]bool)
	for _, month := range history {
		for _, id := range month.AwardsWon {
			if !seen[id] {
				seen[id] = true
				ids = append(ids, id)
			}
		}
	}

	latest := len(history) - 1
	var streaks []model.Streak
	for _, id := range ids {
		count := 0
		for i := latest; i >= 0; i-- {
			if !history[i].HasAward(id) {
				break
			}
			if i < latest && !follows(history[i].Month, history[i+1].Month) {
				break
			}
			count++
		}
		if count >= minStreak {
			streaks = append(streaks, model.Streak{AwardID: id, Count: count})
		}
	}

	sort.SliceStable(streaks, func(i, j int) bool {
		return streaks[i].Count > streaks[j].Count
	})
	return streaks
}
