package model

import "fmt"

// AwardID identifies one of the fixed behavioral awards.
type AwardID string

// Award identifiers. These values are persisted and must stay stable.
const (
	AwardIndiceGodin            AwardID = "indice_godin"
	AwardAccionistaUber         AwardID = "accionista_uber"
	AwardBancoCentral           AwardID = "banco_central"
	AwardHoyoNegroEfectivo      AwardID = "hoyo_negro_efectivo"
	AwardSocioHonorarioSmartfit AwardID = "socio_honorario_smartfit"
	AwardSindromeMeLoMerezco    AwardID = "sindrome_me_lo_merezco"
	AwardMartirComisiones       AwardID = "martir_comisiones"
	AwardSobrevivienteExtremo   AwardID = "sobreviviente_extremo"
)

var allAwardIDs = []AwardID{
	AwardIndiceGodin,
	AwardAccionistaUber,
	AwardBancoCentral,
	AwardHoyoNegroEfectivo,
	AwardSocioHonorarioSmartfit,
	AwardSindromeMeLoMerezco,
	AwardMartirComisiones,
	AwardSobrevivienteExtremo,
}

// AllAwardIDs returns every award id in evaluation order.
func AllAwardIDs() []AwardID {
	out := make([]AwardID, len(allAwardIDs))
	copy(out, allAwardIDs)
	return out
}

// IsValid reports whether id belongs to the closed award set.
func (id AwardID) IsValid() bool {
	for _, known := range allAwardIDs {
		if id == known {
			return true
		}
	}
	return false
}

// ParseAwardID converts a stored id back to an AwardID.
func ParseAwardID(s string) (AwardID, error) {
	id := AwardID(s)
	if !id.IsValid() {
		return "", fmt.Errorf("unknown award %q", s)
	}
	return id, nil
}

func (id AwardID) String() string {
	return string(id)
}

// Award is a badge earned for one statement period. It is recomputed on
// every evaluation; only the ID is ever persisted.
type Award struct {
	ID           AwardID `json:"id"`
	Title        string  `json:"title"`
	Emoji        string  `json:"emoji"`
	Roast        string  `json:"roast"`
	TriggerValue float64 `json:"trigger_value"`
}

// Streak is an award won in consecutive calendar months up to the latest one.
type Streak struct {
	AwardID AwardID `json:"award_id"`
	Count   int     `json:"count"`
}
