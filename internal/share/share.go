// Package share renders a plain-text award card for pasting into chats and
// social posts.
package share

import (
	"fmt"
	"strings"
	"time"

	"github.com/Veraticus/statement-roast/internal/awards"
	"github.com/Veraticus/statement-roast/internal/model"
)

// DefaultLimit is how many awards a card shows when no limit is given.
const DefaultLimit = 4

// Hashtag closes every card.
const Hashtag = "#RoastMiEstadoDeCuenta"

// Format builds the share card for month ("YYYY-MM") from ranked awards and
// the session's current streaks. Only the longest streak is shown.
func Format(month string, ranked []model.Award, streaks []model.Streak, limit int) string {
	if limit <= 0 {
		limit = DefaultLimit
	}

	var b strings.Builder
	b.WriteString(header(month))
	b.WriteString("\n\n")

	shown := awards.Top(ranked, limit)
	if len(shown) == 0 {
		b.WriteString("Sin premios este mes. Sospechosamente responsable.\n")
	}
	for _, a := range shown {
		fmt.Fprintf(&b, "%s %s\n", a.Emoji, a.Title)
	}

	if best, ok := longest(streaks); ok {
		badge := awards.Describe(best.AwardID)
		fmt.Fprintf(&b, "\n🔥 %s x%d meses seguidos\n", badge.Title, best.Count)
	}

	b.WriteString("\n")
	b.WriteString(Hashtag)
	return b.String()
}

func header(month string) string {
	t, err := time.Parse(model.MonthLayout, month)
	if err != nil {
		return "Mis premios del mes"
	}
	return fmt.Sprintf("Mis premios de %s %d", awards.MonthName(t.Month()), t.Year())
}

// longest returns the streak with the highest count, the earliest on ties.
func longest(streaks []model.Streak) (model.Streak, bool) {
	var best model.Streak
	found := false
	for _, s := range streaks {
		if !found || s.Count > best.Count {
			best = s
			found = true
		}
	}
	return best, found
}
