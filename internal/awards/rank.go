package awards

import (
	"sort"

	"github.com/Veraticus/statement-roast/internal/model"
)

// Rank returns a copy of awards sorted by descending TriggerValue. Awards
// with equal values keep their relative order.
func Rank(awards []model.Award) []model.Award {
	ranked := make([]model.Award, len(awards))
	copy(ranked, awards)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].TriggerValue > ranked[j].TriggerValue
	})
	return ranked
}

// Top returns the first n ranked awards, or all of them when n <= 0.
func Top(ranked []model.Award, n int) []model.Award {
	if n <= 0 || n >= len(ranked) {
		return ranked
	}
	return ranked[:n]
}

// IDs returns the ids of awards in order.
func IDs(awards []model.Award) []model.AwardID {
	ids := make([]model.AwardID, len(awards))
	for i, a := range awards {
		ids[i] = a.ID
	}
	return ids
}
