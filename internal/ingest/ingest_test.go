package ingest

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/Veraticus/statement-roast/internal/common"
	"github.com/Veraticus/statement-roast/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubExtractor struct {
	err   error
	got   string
	txns  []model.Transaction
	calls int
}

func (s *stubExtractor) Extract(_ context.Context, text string) ([]model.Transaction, error) {
	s.calls++
	s.got = text
	return s.txns, s.err
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestLoad_DispatchesByExtension(t *testing.T) {
	ctx := context.Background()

	csvPath := writeFile(t, "junio.CSV", "date,description,amount\n2025-06-05,OXXO,-80\n")
	txns, err := Load(ctx, csvPath, nil)
	require.NoError(t, err)
	require.Len(t, txns, 1)
	assert.Equal(t, "OXXO", txns[0].Description)

	jsonPath := writeFile(t, "junio.json", `[{"date":"2025-06-05","amount":-80,"description":"OXXO"}]`)
	txns, err = Load(ctx, jsonPath, nil)
	require.NoError(t, err)
	require.Len(t, txns, 1)
	assert.Equal(t, day(2025, time.June, 5), txns[0].Date)

	ofxPath := writeFile(t, "junio.qfx", sampleDebitOFX)
	txns, err = Load(ctx, ofxPath, nil)
	require.NoError(t, err)
	assert.Len(t, txns, 3)
}

func TestLoad_TextUsesExtractor(t *testing.T) {
	path := writeFile(t, "estado.txt", "05/06 OXXO -80.00")
	ext := &stubExtractor{txns: []model.Transaction{{Date: day(2025, 6, 5), Description: "OXXO", Amount: -80}}}

	txns, err := Load(context.Background(), path, ext)
	require.NoError(t, err)
	assert.Len(t, txns, 1)
	assert.Equal(t, 1, ext.calls)
	assert.Equal(t, "05/06 OXXO -80.00", ext.got)

	_, err = Load(context.Background(), path, nil)
	assert.ErrorIs(t, err, ErrUnsupportedFormat)

	failing := &stubExtractor{err: errors.New("boom")}
	_, err = Load(context.Background(), path, failing)
	assert.ErrorContains(t, err, "boom")
}

func TestLoad_Errors(t *testing.T) {
	ctx := context.Background()

	_, err := Load(ctx, writeFile(t, "estado.pdf", "%PDF"), nil)
	assert.ErrorIs(t, err, ErrUnsupportedFormat)

	_, err = Load(ctx, filepath.Join(t.TempDir(), "missing.csv"), nil)
	assert.Error(t, err)

	_, err = Load(ctx, writeFile(t, "vacio.csv", "date,description,amount\n"), nil)
	assert.ErrorIs(t, err, common.ErrNoTransactions)
	var userErr *common.UserError
	require.ErrorAs(t, err, &userErr)
	assert.Contains(t, userErr.UserMessage, "no transactions found")
}

func TestParseJSON(t *testing.T) {
	txns, err := ParseJSON(strings.NewReader(`[
		{"date":"2025-06-05","amount":-80,"description":"OXXO"},
		{"date":"2025-06-15","amount":15000,"description":"NOMINA"}
	]`))
	require.NoError(t, err)
	require.Len(t, txns, 2)
	assert.InDelta(t, 15000.0, txns[1].Amount, 0.001)

	_, err = ParseJSON(strings.NewReader(`[{"date":"ayer","amount":-1,"description":"x"}]`))
	assert.ErrorIs(t, err, ErrInvalidDate)

	_, err = ParseJSON(strings.NewReader(`{"date":"2025-06-05"}`))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	_, err := Validate("x", []model.Transaction{{Description: "sin fecha", Amount: -1}})
	assert.ErrorIs(t, err, ErrInvalidDate)

	_, err = Validate("x", nil)
	assert.ErrorIs(t, err, common.ErrNoTransactions)

	ok := []model.Transaction{{Date: day(2025, 6, 1), Amount: -1}}
	got, err := Validate("x", ok)
	require.NoError(t, err)
	assert.Equal(t, ok, got)
}

func TestDedupe(t *testing.T) {
	a := model.Transaction{Date: day(2025, 6, 5), Description: "OXXO", Amount: -80}
	b := model.Transaction{Date: day(2025, 6, 5), Description: "OXXO", Amount: -81}
	c := model.Transaction{Date: day(2025, 6, 6), Description: "OXXO", Amount: -80}

	got := Dedupe([]model.Transaction{a, b, a, c, b})
	assert.Equal(t, []model.Transaction{a, b, c}, got)
}
