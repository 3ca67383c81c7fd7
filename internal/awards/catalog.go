// Package awards evaluates a statement period for notable spending behaviors
// and ranks the resulting badges.
package awards

import "github.com/Veraticus/statement-roast/internal/model"

// Badge is the fixed presentation data of an award.
type Badge struct {
	Title string
	Emoji string
}

var catalog = map[model.AwardID]Badge{
	model.AwardIndiceGodin:            {Title: "Índice Godín", Emoji: "🏪"},
	model.AwardAccionistaUber:         {Title: "Accionista de Uber", Emoji: "🚗"},
	model.AwardBancoCentral:           {Title: "Banco Central", Emoji: "🏦"},
	model.AwardHoyoNegroEfectivo:      {Title: "Hoyo Negro del Efectivo", Emoji: "🕳️"},
	model.AwardSocioHonorarioSmartfit: {Title: "Socio Honorario de Smartfit", Emoji: "🏋️"},
	model.AwardSindromeMeLoMerezco:    {Title: "Síndrome del Me Lo Merezco", Emoji: "🛍️"},
	model.AwardMartirComisiones:       {Title: "Mártir de las Comisiones", Emoji: "💸"},
	model.AwardSobrevivienteExtremo:   {Title: "Sobreviviente Extremo", Emoji: "🧟"},
}

// Describe returns the badge for id. Unknown ids get the raw id as title.
func Describe(id model.AwardID) Badge {
	if b, ok := catalog[id]; ok {
		return b
	}
	return Badge{Title: string(id), Emoji: "🏅"}
}

func newAward(id model.AwardID, roast string, triggerValue float64) model.Award {
	badge := Describe(id)
	return model.Award{
		ID:           id,
		Title:        badge.Title,
		Emoji:        badge.Emoji,
		Roast:        roast,
		TriggerValue: triggerValue,
	}
}
