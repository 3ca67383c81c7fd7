package cli

import (
	"fmt"
	"io"
	"sort"
	"strings"
	"time"

	"github.com/Veraticus/statement-roast/internal/awards"
	"github.com/Veraticus/statement-roast/internal/engine"
	"github.com/Veraticus/statement-roast/internal/model"
	"github.com/charmbracelet/lipgloss"
)

var categoryLabels = map[model.Category]string{
	model.CategoryConvenienceStore: "Tiendita",
	model.CategoryRideshare:        "Viajes en app",
	model.CategoryFoodDelivery:     "Comida a domicilio",
	model.CategoryRestaurantCafe:   "Restaurantes y cafés",
	model.CategorySupermarket:      "Súper",
	model.CategoryCashWithdrawal:   "Retiros de efectivo",
	model.CategorySubscriptionGym:  "Suscripciones y gym",
	model.CategoryEcommerce:        "Compras en línea",
	model.CategoryPharmacyHealth:   "Farmacia y salud",
	model.CategorySPEITransfer:     "Transferencias SPEI",
	model.CategoryBankFee:          "Comisiones",
	model.CategoryGasTransport:     "Gasolina y transporte",
	model.CategoryEducation:        "Educación",
	model.CategoryOther:            "Otros",
}

// CategoryLabel returns the display name of c.
func CategoryLabel(c model.Category) string {
	if label, ok := categoryLabels[c]; ok {
		return label
	}
	return string(c)
}

// MonthTitle renders "2025-06" as "junio 2025"; bad input is returned as is.
func MonthTitle(month string) string {
	t, err := time.Parse(model.MonthLayout, month)
	if err != nil {
		return month
	}
	return fmt.Sprintf("%s %d", awards.MonthName(t.Month()), t.Year())
}

// RenderReport writes the award boxes, optional streak callouts and the
// spending breakdown for one statement. top limits the awards shown.
func RenderReport(w io.Writer, report engine.Report, top int, streaks []model.Streak) error {
	var b strings.Builder

	b.WriteString(FormatTitle("Tus premios de " + MonthTitle(report.Month)))
	b.WriteString("\n")

	shown := report.Top(top)
	if len(shown) == 0 {
		b.WriteString(FormatInfo("Ningún premio este mes. O eres muy ordenado o no nos diste el estado de cuenta correcto."))
		b.WriteString("\n")
	}
	for i, a := range shown {
		title := BoldStyle.Render(fmt.Sprintf("#%d %s %s", i+1, a.Emoji, a.Title))
		b.WriteString(AwardBoxStyle.Render(lipgloss.JoinVertical(lipgloss.Left, title, a.Roast)))
		b.WriteString("\n")
	}
	if hidden := len(report.Awards) - len(shown); hidden > 0 {
		b.WriteString(SubtleStyle.Render(fmt.Sprintf("...y %d premio(s) más que te ahorramos.", hidden)))
		b.WriteString("\n")
	}

	if len(streaks) > 0 {
		b.WriteString("\n")
		b.WriteString(streakLines(streaks))
	}

	b.WriteString("\n")
	b.WriteString(breakdown(report))

	_, err := io.WriteString(w, b.String())
	return err
}

type categoryRow struct {
	category model.Category
	spent    float64
	count    int
}

// breakdown renders outflow totals per category, largest first.
func breakdown(report engine.Report) string {
	rows := make(map[model.Category]*categoryRow)
	var total float64
	for _, t := range report.Categorized {
		if !t.IsOutflow() {
			continue
		}
		row, ok := rows[t.Category]
		if !ok {
			row = &categoryRow{category: t.Category}
			rows[t.Category] = row
		}
		row.spent += t.Magnitude()
		row.count++
		total += t.Magnitude()
	}
	if len(rows) == 0 {
		return SubtleStyle.Render("Sin gastos en este periodo.") + "\n"
	}

	ordered := make([]categoryRow, 0, len(rows))
	for _, c := range model.AllCategories() {
		if row, ok := rows[c]; ok {
			ordered = append(ordered, *row)
		}
	}
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].spent > ordered[j].spent
	})

	var b strings.Builder
	b.WriteString(ChartIcon + " " + BoldStyle.Render("¿A dónde se fue tu dinero?") + "\n")
	b.WriteString(TableHeaderStyle.Render(fmt.Sprintf("%-24s %12s %6s %6s", "Categoría", "Gastado", "Movs", "%")))
	b.WriteString("\n")
	for _, row := range ordered {
		pct := 0.0
		if total > 0 {
			pct = row.spent / total * 100
		}
		b.WriteString(TableCellStyle.Render(fmt.Sprintf("%-24s %12s %6d %5.1f%%",
			CategoryLabel(row.category), awards.FormatMoney(row.spent), row.count, pct)))
		b.WriteString("\n")
	}
	b.WriteString(BoldStyle.Render(fmt.Sprintf("%-24s %12s", "Total", awards.FormatMoney(total))))
	b.WriteString("\n")
	return b.String()
}

func streakLines(streaks []model.Streak) string {
	var b strings.Builder
	for _, s := range streaks {
		badge := awards.Describe(s.AwardID)
		b.WriteString(WarningStyle.Render(fmt.Sprintf("%s %s %s x%d meses seguidos", FireIcon, badge.Emoji, badge.Title, s.Count)))
		b.WriteString("\n")
	}
	return b.String()
}

// RenderStreaks writes the session's current streaks.
func RenderStreaks(w io.Writer, streaks []model.Streak) error {
	var b strings.Builder
	b.WriteString(FormatTitle("Rachas activas"))
	b.WriteString("\n")
	if len(streaks) == 0 {
		b.WriteString(FormatInfo("Sin rachas por ahora. Vuelve el próximo mes."))
		b.WriteString("\n")
	} else {
		b.WriteString(streakLines(streaks))
	}
	_, err := io.WriteString(w, b.String())
	return err
}

// RenderHistory writes one line per stored month, oldest first.
func RenderHistory(w io.Writer, history []model.MonthlySummary) error {
	var b strings.Builder
	b.WriteString(FormatTitle("Historial"))
	b.WriteString("\n")
	if len(history) == 0 {
		b.WriteString(FormatInfo("Todavía no hay meses guardados para esta sesión."))
		b.WriteString("\n")
		_, err := io.WriteString(w, b.String())
		return err
	}

	b.WriteString(TableHeaderStyle.Render(fmt.Sprintf("%-16s %12s %6s  %-22s %s", "Mes", "Gastado", "Movs", "Top", "Premios")))
	b.WriteString("\n")
	for _, h := range history {
		var emojis []string
		for _, id := range h.AwardsWon {
			emojis = append(emojis, awards.Describe(id).Emoji)
		}
		b.WriteString(TableCellStyle.Render(fmt.Sprintf("%-16s %12s %6d  %-22s %s",
			MonthTitle(h.Month), awards.FormatMoney(h.TotalSpent), h.TransactionCount,
			CategoryLabel(h.TopCategory), strings.Join(emojis, " "))))
		b.WriteString("\n")
	}
	_, err := io.WriteString(w, b.String())
	return err
}
