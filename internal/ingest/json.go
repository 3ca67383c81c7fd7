package ingest

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/Veraticus/statement-roast/internal/model"
)

// Row is the wire shape of one transaction in JSON statements and in
// LLM extraction output.
type Row struct {
	Date        string  `json:"date"`
	Description string  `json:"description"`
	Amount      float64 `json:"amount"`
}

// Transaction converts the row, validating its date.
func (r Row) Transaction() (model.Transaction, error) {
	date, err := ParseDate(r.Date)
	if err != nil {
		return model.Transaction{}, err
	}
	return model.Transaction{
		Date:        date,
		Description: r.Description,
		Amount:      r.Amount,
	}, nil
}

// ParseJSON reads an array of {date, amount, description} objects.
func ParseJSON(r io.Reader) ([]model.Transaction, error) {
	var rows []Row
	if err := json.NewDecoder(r).Decode(&rows); err != nil {
		return nil, fmt.Errorf("failed to decode JSON statement: %w", err)
	}
	return RowsToTransactions(rows)
}

// RowsToTransactions converts rows in order, stopping at the first bad one.
func RowsToTransactions(rows []Row) ([]model.Transaction, error) {
	txns := make([]model.Transaction, 0, len(rows))
	for i, row := range rows {
		tx, err := row.Transaction()
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+1, err)
		}
		txns = append(txns, tx)
	}
	return txns, nil
}
