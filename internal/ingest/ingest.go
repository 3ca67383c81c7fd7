// Package ingest turns bank statement files into transactions.
package ingest

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/Veraticus/statement-roast/internal/common"
	"github.com/Veraticus/statement-roast/internal/model"
)

// Parsing errors.
var (
	ErrInvalidDate       = errors.New("invalid date")
	ErrInvalidAmount     = errors.New("invalid amount")
	ErrUnsupportedFormat = errors.New("unsupported statement format")
	ErrMissingColumn     = errors.New("missing required column")
)

// Extractor pulls transactions out of unstructured statement text.
type Extractor interface {
	Extract(ctx context.Context, text string) ([]model.Transaction, error)
}

// Load reads the statement at path and parses it according to its extension.
// Plain text statements require an extractor.
func Load(ctx context.Context, path string, extractor Extractor) ([]model.Transaction, error) {
	f, err := os.Open(path) //nolint:gosec // user-provided statement path
	if err != nil {
		return nil, fmt.Errorf("failed to open statement: %w", err)
	}
	defer func() { _ = f.Close() }()

	var txns []model.Transaction
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".csv":
		txns, err = ParseCSV(f)
	case ".ofx", ".qfx":
		txns, err = ParseOFX(ctx, f)
	case ".json":
		txns, err = ParseJSON(f)
	case ".txt":
		if extractor == nil {
			return nil, fmt.Errorf("%w: %s needs an LLM extractor", ErrUnsupportedFormat, filepath.Base(path))
		}
		var raw []byte
		raw, err = io.ReadAll(f)
		if err != nil {
			return nil, fmt.Errorf("failed to read statement: %w", err)
		}
		txns, err = extractor.Extract(ctx, string(raw))
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filepath.Base(path), err)
	}

	slog.Debug("Loaded statement", "path", path, "transactions", len(txns))

	return Validate(filepath.Base(path), txns)
}

// Validate rejects transactions without a date and reports an empty
// statement as a user error.
func Validate(source string, txns []model.Transaction) ([]model.Transaction, error) {
	for i, t := range txns {
		if t.Date.IsZero() {
			return nil, fmt.Errorf("%s row %d: %w: missing date", source, i+1, ErrInvalidDate)
		}
	}
	if len(txns) == 0 {
		return nil, common.NoTransactionsError(source)
	}
	return txns, nil
}

// Dedupe drops transactions that appear more than once across statements,
// keeping the first occurrence.
func Dedupe(txns []model.Transaction) []model.Transaction {
	seen := make(map[string]bool, len(txns))
	out := make([]model.Transaction, 0, len(txns))
	for _, t := range txns {
		hash := t.GenerateHash()
		if seen[hash] {
			continue
		}
		seen[hash] = true
		out = append(out, t)
	}
	return out
}
