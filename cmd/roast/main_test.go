package main

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Veraticus/statement-roast/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const juneCSV = `fecha,descripcion,monto
2025-06-02,OXXO TIENDA 123,-150
2025-06-04,OXXO REFORMA,-75
2025-06-05,RETIRO CAJERO ATM,-500
2025-06-08,RETIRO CAJERO ATM,-500
2025-06-11,RETIRO CAJERO ATM,-500
2025-06-12,RETIRO CAJERO ATM,-500
2025-06-15,NOMINA ACME,15000
`

func writeStatement(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&bytes.Buffer{})
	rootCmd.SetArgs(args)
	err := rootCmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestCommands_EndToEnd(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	dbPath := filepath.Join(dir, "roast.db")
	statement := writeStatement(t, dir, "junio.csv", juneCSV)

	out, err := execute(t, "analyze", "--db", dbPath, "--session", "e2e", statement)
	require.NoError(t, err)
	assert.Contains(t, out, "junio 2025")
	assert.Contains(t, out, "Hoyo Negro del Efectivo")

	out, err = execute(t, "history", "--db", dbPath, "--session", "e2e", "--json")
	require.NoError(t, err)
	var history []model.MonthlySummary
	require.NoError(t, json.Unmarshal([]byte(out), &history))
	require.Len(t, history, 1)
	assert.Equal(t, "2025-06", history[0].Month)
	assert.True(t, history[0].HasAward(model.AwardHoyoNegroEfectivo))
	assert.True(t, history[0].HasAward(model.AwardIndiceGodin))

	out, err = execute(t, "share", "--db", dbPath, "--session", "e2e")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "Mis premios de junio 2025"))

	out, err = execute(t, "categorize", "UBER EATS PEDIDO", "SMARTFIT POLANCO")
	require.NoError(t, err)
	assert.Contains(t, out, "food_delivery")
	assert.Contains(t, out, "subscription_gym")

	out, err = execute(t, "analyze", "--db", dbPath, "--session", "e2e", "--no-save", "--json", statement)
	require.NoError(t, err)
	var results []statementResult
	require.NoError(t, json.Unmarshal([]byte(out), &results))
	require.Len(t, results, 1)
	assert.Equal(t, statement, results[0].File)
	assert.Equal(t, "2025-06", results[0].Report.Month)
	assert.Len(t, results[0].Report.Categorized, 7)
}

func TestLoadStatements_PreservesOrder(t *testing.T) {
	dir := t.TempDir()
	a := writeStatement(t, dir, "a.json", `[{"date":"2025-05-01","amount":-1,"description":"A"}]`)
	b := writeStatement(t, dir, "b.json", `[{"date":"2025-06-01","amount":-2,"description":"B"},{"date":"2025-06-02","amount":-3,"description":"B2"}]`)

	statements, err := loadStatements(context.Background(), []string{a, b}, nil, &bytes.Buffer{})
	require.NoError(t, err)
	require.Len(t, statements, 2)
	assert.Len(t, statements[0], 1)
	assert.Len(t, statements[1], 2)

	_, err = loadStatements(context.Background(), []string{a, filepath.Join(dir, "missing.csv")}, nil, &bytes.Buffer{})
	assert.Error(t, err)
}

func TestStoredAwards(t *testing.T) {
	got := storedAwards([]model.AwardID{model.AwardBancoCentral, model.AwardIndiceGodin})
	require.Len(t, got, 2)
	assert.Equal(t, "Banco Central", got[0].Title)
	assert.Equal(t, "🏪", got[1].Emoji)
}

func TestBaseNames(t *testing.T) {
	assert.Equal(t, []string{"a.csv", "b.ofx"}, baseNames([]string{"/tmp/x/a.csv", "b.ofx"}))
}
