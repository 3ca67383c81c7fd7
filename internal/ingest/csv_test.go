package ingest

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCSV(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		wantErr     error
		wantAmounts []float64
		wantDescs   []string
	}{
		{
			name: "signed amount column",
			input: "date,description,amount\n" +
				"2025-06-05,OXXO SUC 123,-80\n" +
				"2025-06-15,NOMINA,15000\n",
			wantAmounts: []float64{-80, 15000},
			wantDescs:   []string{"OXXO SUC 123", "NOMINA"},
		},
		{
			name: "spanish headers with semicolons",
			input: "Fecha;Concepto;Importe\n" +
				"05/06/2025;UBER TRIP;-145.50\n",
			wantAmounts: []float64{-145.5},
			wantDescs:   []string{"UBER TRIP"},
		},
		{
			name: "cargo and abono columns",
			input: "fecha,descripción,cargo,abono\n" +
				"2025-06-01,COMISION ANUALIDAD,\"$1,200.00\",\n" +
				"2025-06-02,DEPOSITO SPEI,,\"5,000\"\n",
			wantAmounts: []float64{-1200, 5000},
			wantDescs:   []string{"COMISION ANUALIDAD", "DEPOSITO SPEI"},
		},
		{
			name: "parentheses and blank rows",
			input: "date,description,amount\n" +
				"\n" +
				"2025-06-05,RAPPI,(230.00)\n" +
				",,\n",
			wantAmounts: []float64{-230},
			wantDescs:   []string{"RAPPI"},
		},
		{
			name:        "header only",
			input:       "date,description,amount\n",
			wantAmounts: nil,
		},
		{
			name:    "missing amount column",
			input:   "date,description\n2025-06-05,OXXO\n",
			wantErr: ErrMissingColumn,
		},
		{
			name:    "bad date",
			input:   "date,description,amount\n2025-13-45,OXXO,-80\n",
			wantErr: ErrInvalidDate,
		},
		{
			name:    "bad amount",
			input:   "date,description,amount\n2025-06-05,OXXO,ochenta\n",
			wantErr: ErrInvalidAmount,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			txns, err := ParseCSV(strings.NewReader(tt.input))
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			require.Len(t, txns, len(tt.wantAmounts))
			for i, tx := range txns {
				assert.InDelta(t, tt.wantAmounts[i], tx.Amount, 0.001)
				assert.Equal(t, tt.wantDescs[i], tx.Description)
			}
		})
	}
}

func TestParseDate(t *testing.T) {
	want := time.Date(2025, 6, 5, 0, 0, 0, 0, time.UTC)
	for _, in := range []string{"2025-06-05", "05/06/2025", "5/6/2025", " 2025-06-05 "} {
		got, err := ParseDate(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := ParseDate("June 5")
	assert.ErrorIs(t, err, ErrInvalidDate)
}

func TestParseAmount(t *testing.T) {
	tests := []struct {
		in   string
		want float64
	}{
		{"-80", -80},
		{"$1,234.56", 1234.56},
		{"(99.90)", -99.9},
		{"-$2,000.00", -2000},
		{"500 MXN", 500},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseAmount(tt.in)
			require.NoError(t, err)
			assert.InDelta(t, tt.want, got, 0.001)
		})
	}

	for _, bad := range []string{"", "$", "abc"} {
		_, err := ParseAmount(bad)
		assert.ErrorIs(t, err, ErrInvalidAmount, bad)
	}
}
