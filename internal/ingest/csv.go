package ingest

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/Veraticus/statement-roast/internal/model"
)

var dateLayouts = []string{
	model.DateLayout,
	"02/01/2006",
	"2/1/2006",
}

var (
	dateHeaders        = []string{"date", "fecha", "fecha operacion", "fecha de operacion"}
	descriptionHeaders = []string{"description", "descripcion", "descripción", "concepto"}
	amountHeaders      = []string{"amount", "monto", "importe"}
	debitHeaders       = []string{"cargo", "cargos", "retiro", "debit"}
	creditHeaders      = []string{"abono", "abonos", "deposito", "depósito", "credit"}
)

type csvColumns struct {
	date        int
	description int
	amount      int
	debit       int
	credit      int
}

// ParseCSV reads a statement export with a header row. Amounts come either
// from a single signed column or from a cargo/abono pair.
func ParseCSV(r io.Reader) ([]model.Transaction, error) {
	br := bufio.NewReader(r)
	delim, err := sniffDelimiter(br)
	if err != nil {
		return nil, err
	}

	reader := csv.NewReader(br)
	reader.Comma = delim
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV header: %w", err)
	}

	cols, err := mapColumns(header)
	if err != nil {
		return nil, err
	}

	var txns []model.Transaction
	line := 1
	for {
		record, readErr := reader.Read()
		if errors.Is(readErr, io.EOF) {
			break
		}
		line++
		if readErr != nil {
			return nil, fmt.Errorf("line %d: %w", line, readErr)
		}
		if blankRecord(record) {
			continue
		}

		tx, rowErr := cols.transaction(record)
		if rowErr != nil {
			return nil, fmt.Errorf("line %d: %w", line, rowErr)
		}
		txns = append(txns, tx)
	}

	return txns, nil
}

// sniffDelimiter picks ';' when the header line has more of them than commas.
func sniffDelimiter(br *bufio.Reader) (rune, error) {
	peek, err := br.Peek(4096)
	if err != nil && !errors.Is(err, io.EOF) && !errors.Is(err, bufio.ErrBufferFull) {
		return 0, fmt.Errorf("failed to read CSV: %w", err)
	}
	first := string(peek)
	if i := strings.IndexByte(first, '\n'); i >= 0 {
		first = first[:i]
	}
	if strings.Count(first, ";") > strings.Count(first, ",") {
		return ';', nil
	}
	return ',', nil
}

func mapColumns(header []string) (csvColumns, error) {
	cols := csvColumns{date: -1, description: -1, amount: -1, debit: -1, credit: -1}
	for i, h := range header {
		name := strings.ToLower(strings.TrimSpace(strings.TrimPrefix(h, "\ufeff")))
		switch {
		case cols.date < 0 && contains(dateHeaders, name):
			cols.date = i
		case cols.description < 0 && contains(descriptionHeaders, name):
			cols.description = i
		case cols.amount < 0 && contains(amountHeaders, name):
			cols.amount = i
		case cols.debit < 0 && contains(debitHeaders, name):
			cols.debit = i
		case cols.credit < 0 && contains(creditHeaders, name):
			cols.credit = i
		}
	}

	if cols.date < 0 {
		return cols, fmt.Errorf("%w: date", ErrMissingColumn)
	}
	if cols.description < 0 {
		return cols, fmt.Errorf("%w: description", ErrMissingColumn)
	}
	if cols.amount < 0 && (cols.debit < 0 || cols.credit < 0) {
		return cols, fmt.Errorf("%w: amount (or cargo and abono)", ErrMissingColumn)
	}
	return cols, nil
}

func (c csvColumns) transaction(record []string) (model.Transaction, error) {
	date, err := ParseDate(field(record, c.date))
	if err != nil {
		return model.Transaction{}, err
	}

	var amount float64
	if c.amount >= 0 {
		amount, err = ParseAmount(field(record, c.amount))
		if err != nil {
			return model.Transaction{}, err
		}
	} else {
		debit, debitErr := parseOptionalAmount(field(record, c.debit))
		if debitErr != nil {
			return model.Transaction{}, debitErr
		}
		credit, creditErr := parseOptionalAmount(field(record, c.credit))
		if creditErr != nil {
			return model.Transaction{}, creditErr
		}
		amount = credit - abs(debit)
	}

	return model.Transaction{
		Date:        date,
		Description: strings.TrimSpace(field(record, c.description)),
		Amount:      amount,
	}, nil
}

// ParseDate accepts ISO dates and the day-first layouts Mexican banks export.
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
}

// ParseAmount reads a money value such as "-1,234.50", "$80" or "(80.00)".
func ParseAmount(s string) (float64, error) {
	raw := s
	s = strings.TrimSpace(s)
	negative := false
	if strings.HasPrefix(s, "(") && strings.HasSuffix(s, ")") {
		negative = true
		s = strings.TrimSuffix(strings.TrimPrefix(s, "("), ")")
	}
	s = strings.NewReplacer("$", "", ",", "", " ", "", "MXN", "", "mxn", "").Replace(s)
	if s == "" {
		return 0, fmt.Errorf("%w: %q", ErrInvalidAmount, raw)
	}

	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidAmount, raw)
	}
	if negative {
		v = -abs(v)
	}
	return v, nil
}

func parseOptionalAmount(s string) (float64, error) {
	if strings.TrimSpace(s) == "" {
		return 0, nil
	}
	return ParseAmount(s)
}

func field(record []string, i int) string {
	if i < 0 || i >= len(record) {
		return ""
	}
	return record[i]
}

func blankRecord(record []string) bool {
	for _, f := range record {
		if strings.TrimSpace(f) != "" {
			return false
		}
	}
	return true
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
