package cli

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/Veraticus/statement-roast/internal/engine"
	"github.com/Veraticus/statement-roast/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(d int) time.Time {
	return time.Date(2025, time.June, d, 0, 0, 0, 0, time.UTC)
}

func sampleReport() engine.Report {
	return engine.Analyze([]model.Transaction{
		{Date: day(1), Amount: -80, Description: "OXXO"},
		{Date: day(2), Amount: -60, Description: "OXXO"},
		{Date: day(3), Amount: -250, Description: "UBER TRIP"},
		{Date: day(15), Amount: 15000, Description: "NOMINA"},
	})
}

func TestRenderReport(t *testing.T) {
	var buf bytes.Buffer
	streaks := []model.Streak{{AwardID: model.AwardIndiceGodin, Count: 3}}

	require.NoError(t, RenderReport(&buf, sampleReport(), 1, streaks))
	out := buf.String()

	assert.Contains(t, out, "junio 2025")
	assert.Contains(t, out, "#1")
	assert.NotContains(t, out, "#2", "only the top award is shown")
	assert.Contains(t, out, "premio(s) más")
	assert.Contains(t, out, "x3 meses seguidos")
	assert.Contains(t, out, "Tiendita")
	assert.Contains(t, out, "Viajes en app")
	assert.Contains(t, out, "$390")
}

func TestRenderReport_NoAwards(t *testing.T) {
	var buf bytes.Buffer
	report := engine.Analyze([]model.Transaction{{Date: day(1), Amount: 100, Description: "DEPOSITO"}})

	require.NoError(t, RenderReport(&buf, report, 4, nil))
	assert.Contains(t, buf.String(), "Ningún premio")
	assert.Contains(t, buf.String(), "Sin gastos")
}

func TestRenderHistory(t *testing.T) {
	var buf bytes.Buffer
	history := []model.MonthlySummary{
		{Month: "2025-05", TotalSpent: 1234, TransactionCount: 10, TopCategory: model.CategoryRideshare,
			AwardsWon: []model.AwardID{model.AwardAccionistaUber}},
		{Month: "2025-06", TotalSpent: 99, TransactionCount: 2, TopCategory: model.CategoryOther},
	}

	require.NoError(t, RenderHistory(&buf, history))
	out := buf.String()
	assert.Contains(t, out, "mayo 2025")
	assert.Contains(t, out, "$1,234")
	assert.Contains(t, out, "🚗")
	assert.Less(t, strings.Index(out, "mayo"), strings.Index(out, "junio"))

	buf.Reset()
	require.NoError(t, RenderHistory(&buf, nil))
	assert.Contains(t, buf.String(), "Todavía no hay meses")
}

func TestRenderStreaks(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, RenderStreaks(&buf, []model.Streak{{AwardID: model.AwardBancoCentral, Count: 2}}))
	assert.Contains(t, buf.String(), "Banco Central x2 meses seguidos")

	buf.Reset()
	require.NoError(t, RenderStreaks(&buf, nil))
	assert.Contains(t, buf.String(), "Sin rachas")
}

func TestLabels(t *testing.T) {
	for _, c := range model.AllCategories() {
		assert.NotEqual(t, string(c), CategoryLabel(c), "missing label for %s", c)
	}
	assert.Equal(t, "junio 2025", MonthTitle("2025-06"))
	assert.Equal(t, "nope", MonthTitle("nope"))
}

func TestProgress(t *testing.T) {
	var buf bytes.Buffer
	p := NewProgress(&buf, 3)
	p.Done()
	p.Done()
	p.Done()
	p.Finish()
	assert.NotEmpty(t, buf.String())

	silent := NewProgress(&buf, 1)
	silent.Done()
	silent.Finish()

	var nilProgress *Progress
	nilProgress.Done()
}
