package awards

import (
	"fmt"
	"time"

	"github.com/Veraticus/statement-roast/internal/model"
)

// Trigger thresholds.
const (
	minConvenienceVisits  = 2
	minRideshareSpend     = 200.0
	minCentralBankOutflow = 1000.0
	minCentralBankInflows = 3
	centralBankWindowDays = 2
	minCashWithdrawals    = 4
	minDeliveriesWithGym  = 5
	minPaydayPurchase     = 500.0
)

func detectIndiceGodin(txns []model.CategorizedTransaction) (model.Award, bool) {
	visits := outflows(txns, model.CategoryConvenienceStore)
	if len(visits) < minConvenienceVisits {
		return model.Award{}, false
	}

	roast := fmt.Sprintf(
		"Fuiste %d veces a la tiendita y dejaste %s en antojitos. El cajero del OXXO ya te saluda por tu nombre.",
		len(visits), FormatMoney(totalMagnitude(visits)))
	return newAward(model.AwardIndiceGodin, roast, float64(len(visits))), true
}

func detectAccionistaUber(txns []model.CategorizedTransaction) (model.Award, bool) {
	rides := outflows(txns, model.CategoryRideshare)
	total := totalMagnitude(rides)
	if total < minRideshareSpend {
		return model.Award{}, false
	}

	roast := fmt.Sprintf(
		"Gastaste %s en %d viajes. Con eso ya deberías tener voto en la junta de accionistas.",
		FormatMoney(total), len(rides))
	return newAward(model.AwardAccionistaUber, roast, total), true
}

// detectBancoCentral scans large weekend outflows in input order and stops at
// the first one followed by a cluster of incoming transfers.
func detectBancoCentral(txns []model.CategorizedTransaction) (model.Award, bool) {
	var inflows []model.CategorizedTransaction
	for _, txn := range txns {
		if txn.Category == model.CategorySPEITransfer && txn.IsInflow() {
			inflows = append(inflows, txn)
		}
	}
	if len(inflows) < minCentralBankInflows {
		return model.Award{}, false
	}

	for _, out := range txns {
		if !out.IsOutflow() || out.Magnitude() <= minCentralBankOutflow {
			continue
		}
		day := out.Day()
		if wd := day.Weekday(); wd != time.Friday && wd != time.Saturday {
			continue
		}

		windowEnd := day.AddDate(0, 0, centralBankWindowDays)
		var count int
		var received float64
		for _, in := range inflows {
			d := in.Day()
			if !d.Before(day) && !d.After(windowEnd) {
				count++
				received += in.Amount
			}
		}
		if count < minCentralBankInflows {
			continue
		}

		roast := fmt.Sprintf(
			"El %s %s soltaste %s en %s y en los dos días siguientes te cayeron %d transferencias por %s. Tú no gastas, tú haces política monetaria.",
			weekdayName(day.Weekday()), FormatDate(day), FormatMoney(out.Magnitude()),
			out.Description, count, FormatMoney(received))
		return newAward(model.AwardBancoCentral, roast, out.Magnitude()), true
	}

	return model.Award{}, false
}

func detectHoyoNegroEfectivo(txns []model.CategorizedTransaction) (model.Award, bool) {
	withdrawals := outflows(txns, model.CategoryCashWithdrawal)
	if len(withdrawals) < minCashWithdrawals {
		return model.Award{}, false
	}

	roast := fmt.Sprintf(
		"Sacaste efectivo %d veces, %s en total, y nadie sabe a dónde se fue. Ni tú.",
		len(withdrawals), FormatMoney(totalMagnitude(withdrawals)))
	return newAward(model.AwardHoyoNegroEfectivo, roast, float64(len(withdrawals))), true
}

func detectSocioHonorarioSmartfit(txns []model.CategorizedTransaction) (model.Award, bool) {
	var gym *model.CategorizedTransaction
	for i := range txns {
		if txns[i].Category == model.CategorySubscriptionGym {
			gym = &txns[i]
			break
		}
	}
	if gym == nil {
		return model.Award{}, false
	}

	deliveries := outflows(txns, model.CategoryFoodDelivery)
	if len(deliveries) < minDeliveriesWithGym {
		return model.Award{}, false
	}

	roast := fmt.Sprintf(
		"Pagaste %s (%s) y aun así pediste comida a domicilio %d veces por %s. El único músculo que entrenas es el pulgar.",
		gym.Description, FormatMoney(gym.Magnitude()), len(deliveries),
		FormatMoney(totalMagnitude(deliveries)))
	return newAward(model.AwardSocioHonorarioSmartfit, roast, float64(len(deliveries))), true
}

func isPayday(t time.Time) bool {
	switch t.Day() {
	case 15, 30, 31:
		return true
	}
	return false
}

func detectSindromeMeLoMerezco(txns []model.CategorizedTransaction) (model.Award, bool) {
	var biggest *model.CategorizedTransaction
	for i := range txns {
		txn := &txns[i]
		if txn.Category != model.CategoryEcommerce || !txn.IsOutflow() {
			continue
		}
		if txn.Magnitude() <= minPaydayPurchase || !isPayday(txn.Date) {
			continue
		}
		if biggest == nil || txn.Magnitude() > biggest.Magnitude() {
			biggest = txn
		}
	}
	if biggest == nil {
		return model.Award{}, false
	}

	roast := fmt.Sprintf(
		"El %s cayó la quincena y en ese mismo instante te regalaste %s en %s. Te lo merecías, ¿verdad?",
		FormatDate(biggest.Date), FormatMoney(biggest.Magnitude()), biggest.Description)
	return newAward(model.AwardSindromeMeLoMerezco, roast, biggest.Magnitude()), true
}

func detectMartirComisiones(txns []model.CategorizedTransaction) (model.Award, bool) {
	fees := outflows(txns, model.CategoryBankFee)
	if len(fees) == 0 {
		return model.Award{}, false
	}

	total := totalMagnitude(fees)
	roast := fmt.Sprintf(
		"El banco te cobró %s en %d comisiones. Prácticamente ya eres su patrocinador oficial.",
		FormatMoney(total), len(fees))
	return newAward(model.AwardMartirComisiones, roast, total), true
}
