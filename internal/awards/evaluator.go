package awards

import "github.com/Veraticus/statement-roast/internal/model"

// Detector inspects a whole statement period and reports at most one award.
type Detector struct {
	Detect func(txns []model.CategorizedTransaction) (model.Award, bool)
	ID     model.AwardID
}

// Detectors returns the fixed battery of detectors in evaluation order.
func Detectors() []Detector {
	return []Detector{
		{ID: model.AwardIndiceGodin, Detect: detectIndiceGodin},
		{ID: model.AwardAccionistaUber, Detect: detectAccionistaUber},
		{ID: model.AwardBancoCentral, Detect: detectBancoCentral},
		{ID: model.AwardHoyoNegroEfectivo, Detect: detectHoyoNegroEfectivo},
		{ID: model.AwardSocioHonorarioSmartfit, Detect: detectSocioHonorarioSmartfit},
		{ID: model.AwardSindromeMeLoMerezco, Detect: detectSindromeMeLoMerezco},
		{ID: model.AwardMartirComisiones, Detect: detectMartirComisiones},
		{ID: model.AwardSobrevivienteExtremo, Detect: detectSobrevivienteExtremo},
	}
}

// Evaluate runs every detector over txns and returns the triggered awards
// in detector order. The result is not ranked.
func Evaluate(txns []model.CategorizedTransaction) []model.Award {
	awards := make([]model.Award, 0, len(allDetectors))
	for _, d := range allDetectors {
		if award, ok := d.Detect(txns); ok {
			awards = append(awards, award)
		}
	}
	return awards
}

var allDetectors = Detectors()

// outflows returns the expenses in category c, keeping input order.
func outflows(txns []model.CategorizedTransaction, c model.Category) []model.CategorizedTransaction {
	var out []model.CategorizedTransaction
	for _, txn := range txns {
		if txn.Category == c && txn.IsOutflow() {
			out = append(out, txn)
		}
	}
	return out
}

func totalMagnitude(txns []model.CategorizedTransaction) float64 {
	var total float64
	for _, txn := range txns {
		total += txn.Magnitude()
	}
	return total
}
