package awards

import (
	"fmt"
	"math"
	"time"

	"github.com/Veraticus/statement-roast/internal/model"
)

// survivorFloor is the balance under which a pre-payday checkpoint counts.
const survivorFloor = 50.0

// isCheckpoint reports whether day is one of the days right before a payday.
func isCheckpoint(day time.Time) bool {
	switch day.Day() {
	case 13, 14, 28, 29:
		return true
	}
	return false
}

// LowPoint is the lowest pre-payday balance found by SimulateBalance.
type LowPoint struct {
	Date    time.Time
	Balance float64
}

// SimulateBalance walks every calendar day between the first and last
// transaction, accumulating each day's net amount onto a running balance
// that starts at zero. It returns the lowest balance under the floor seen on
// a checkpoint day, preferring the earliest on ties. Sums are kept in cents so
// the result does not depend on input order.
func SimulateBalance(txns []model.CategorizedTransaction) (LowPoint, bool) {
	if len(txns) == 0 {
		return LowPoint{}, false
	}

	net := make(map[string]int64, len(txns))
	first, last := txns[0].Day(), txns[0].Day()
	for _, txn := range txns {
		day := txn.Day()
		net[day.Format(model.DateLayout)] += toCents(txn.Amount)
		if day.Before(first) {
			first = day
		}
		if day.After(last) {
			last = day
		}
	}

	floor := toCents(survivorFloor)
	var running int64
	var low LowPoint
	var lowCents int64
	found := false

	for day := first; !day.After(last); day = day.AddDate(0, 0, 1) {
		running += net[day.Format(model.DateLayout)]
		if !isCheckpoint(day) || running >= floor {
			continue
		}
		if !found || running < lowCents {
			found = true
			lowCents = running
			low = LowPoint{Date: day, Balance: float64(running) / 100}
		}
	}

	return low, found
}

func toCents(v float64) int64 {
	return int64(math.Round(v * 100))
}

func detectSobrevivienteExtremo(txns []model.CategorizedTransaction) (model.Award, bool) {
	low, ok := SimulateBalance(txns)
	if !ok {
		return model.Award{}, false
	}

	strength := math.Max(0, survivorFloor-low.Balance)
	roast := fmt.Sprintf(
		"El %s, a nada de la quincena, tu saldo llegó a %s. Sobreviviste a puro aire y fe.",
		FormatDate(low.Date), FormatMoney(low.Balance))
	return newAward(model.AwardSobrevivienteExtremo, roast, strength), true
}
