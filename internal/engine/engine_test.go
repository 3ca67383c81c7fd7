package engine

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/Veraticus/statement-roast/internal/classification"
	"github.com/Veraticus/statement-roast/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func txn(t *testing.T, day string, amount float64, desc string) model.Transaction {
	t.Helper()
	d, err := time.Parse(model.DateLayout, day)
	require.NoError(t, err)
	return model.Transaction{Date: d, Amount: amount, Description: desc}
}

func TestAnalyze_OxxoExample(t *testing.T) {
	report := Analyze([]model.Transaction{
		txn(t, "2025-06-02", -150, "OXXO TIENDA 123"),
		txn(t, "2025-06-10", -90, "OXXO GAS STATION"),
	})

	require.Len(t, report.Categorized, 2)
	assert.Equal(t, model.CategoryConvenienceStore, report.Categorized[0].Category)
	assert.Equal(t, model.CategoryGasTransport, report.Categorized[1].Category)
	assert.Equal(t, "2025-06", report.Month)

	for _, a := range report.Awards {
		assert.NotEqual(t, model.AwardIndiceGodin, a.ID, "one convenience store visit is not enough")
	}
}

func TestAnalyze_CashWithdrawals(t *testing.T) {
	var txns []model.Transaction
	for i := 1; i <= 4; i++ {
		txns = append(txns, txn(t, fmt.Sprintf("2025-06-%02d", i*5), -500, "RETIRO CAJERO ATM"))
	}

	report := Analyze(txns)

	var found *model.Award
	for i := range report.Awards {
		if report.Awards[i].ID == model.AwardHoyoNegroEfectivo {
			found = &report.Awards[i]
		}
	}
	require.NotNil(t, found)
	assert.InDelta(t, 4.0, found.TriggerValue, 0.001)
	assert.Contains(t, found.Roast, "4")
	assert.Contains(t, found.Roast, "$2,000")
}

func TestAnalyze_AwardsAreRanked(t *testing.T) {
	txns := []model.Transaction{
		txn(t, "2025-06-01", -80, "OXXO"),
		txn(t, "2025-06-02", -60, "OXXO"),
		txn(t, "2025-06-03", -45, "OXXO"),
	}
	for i := 1; i <= 4; i++ {
		txns = append(txns, txn(t, fmt.Sprintf("2025-06-%02d", 10+i), -500, "RETIRO CAJERO"))
	}

	report := Analyze(txns)
	require.GreaterOrEqual(t, len(report.Awards), 2)
	for i := 1; i < len(report.Awards); i++ {
		assert.GreaterOrEqual(t, report.Awards[i-1].TriggerValue, report.Awards[i].TriggerValue)
	}
	assert.Len(t, report.Top(1), 1)
	assert.Equal(t, report.Awards, report.Top(0))
}

func TestAnalyze_Empty(t *testing.T) {
	report := Analyze(nil)
	assert.Empty(t, report.Categorized)
	assert.Empty(t, report.Awards)
	assert.Empty(t, report.Month)
}

func TestAnalyzer_CustomRules(t *testing.T) {
	c, err := classification.NewCategorizer([]classification.Rule{
		{Category: model.CategoryEducation, Keywords: []string{"platzi"}},
	})
	require.NoError(t, err)

	report := NewAnalyzer(c).Analyze([]model.Transaction{
		txn(t, "2025-06-01", -299, "PLATZI SUSCRIPCION"),
		txn(t, "2025-06-02", -80, "OXXO"),
	})
	assert.Equal(t, model.CategoryEducation, report.Categorized[0].Category)
	assert.Equal(t, model.CategoryOther, report.Categorized[1].Category)
}

func TestReport_Summary(t *testing.T) {
	report := Analyze([]model.Transaction{
		txn(t, "2025-06-01", -80, "OXXO"),
		txn(t, "2025-06-02", -60, "OXXO"),
		txn(t, "2025-06-03", -120, "UBER TRIP"),
		txn(t, "2025-06-15", 15000, "NOMINA"),
	})

	s := report.Summary("me")
	assert.Equal(t, "me", s.SessionID)
	assert.Equal(t, "2025-06", s.Month)
	assert.Equal(t, 4, s.TransactionCount)
	assert.InDelta(t, 260.0, s.TotalSpent, 0.001)
	assert.Equal(t, model.CategoryConvenienceStore, s.TopCategory)
	assert.InDelta(t, 140.0, s.CategoryTotals[model.CategoryConvenienceStore], 0.001)
	assert.True(t, s.HasAward(model.AwardIndiceGodin))
	assert.Len(t, s.AwardsWon, len(report.Awards))

	counts := report.CategoryCounts()
	assert.Equal(t, 2, counts[model.CategoryConvenienceStore])
	assert.Equal(t, 1, counts[model.CategoryRideshare])
}

func TestAnalyze_DoesNotMutateInput(t *testing.T) {
	txns := []model.Transaction{
		txn(t, "2025-06-01", -80, "  OXXO  "),
		txn(t, "2025-06-01", -60, "OXXO"),
	}
	before := make([]model.Transaction, len(txns))
	copy(before, txns)

	_ = Analyze(txns)
	assert.Equal(t, before, txns)
	assert.True(t, strings.HasPrefix(txns[0].Description, "  "))
}
