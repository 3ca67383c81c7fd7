package ingest

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"regexp"
	"strings"

	"github.com/Veraticus/statement-roast/internal/model"
	"github.com/aclindsa/ofxgo"
)

var (
	// Matches both <SEVERITY>Info</SEVERITY> and the SGML form <SEVERITY>Info.
	severityRegex = regexp.MustCompile(`(?i)<SEVERITY>(INFO|WARN|ERROR)\b`)
	// Opening tags at the end of a line that lost their closing bracket.
	unclosedTagRegex = regexp.MustCompile(`(?m)^(\s*<[A-Z][A-Z0-9._]*[A-Z0-9])$`)
)

// genericNames are NAME values that say nothing about the merchant.
var genericNames = map[string]bool{
	"DEBIT":              true,
	"CREDIT":             true,
	"PURCHASE":           true,
	"PAYMENT":            true,
	"POS TRANSACTION":    true,
	"CARD PURCHASE":      true,
	"COMPRA":             true,
	"CARGO":              true,
	"ABONO":              true,
	"COMPRA CON TARJETA": true,
}

// preprocessOFX fixes formatting problems common in bank-exported SGML.
func preprocessOFX(content string) string {
	content = strings.TrimLeft(content, " \t\r\n")
	content = severityRegex.ReplaceAllStringFunc(content, strings.ToUpper)
	return unclosedTagRegex.ReplaceAllString(content, "$1>")
}

// ParseOFX reads bank and credit card statements from an OFX/QFX file.
// Amounts keep their sign so debits stay outflows.
func ParseOFX(ctx context.Context, r io.Reader) ([]model.Transaction, error) {
	content, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read OFX file: %w", err)
	}

	resp, err := ofxgo.ParseResponse(strings.NewReader(preprocessOFX(string(content))))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to parse OFX file: %w", ErrUnsupportedFormat, err)
	}

	var txns []model.Transaction
	var bankStmts, ccStmts int

	for _, msg := range resp.Bank {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		stmt, ok := msg.(*ofxgo.StatementResponse)
		if !ok || stmt.BankTranList == nil {
			continue
		}
		bankStmts++
		txns = appendOFX(txns, stmt.BankTranList.Transactions)
	}

	for _, msg := range resp.CreditCard {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		stmt, ok := msg.(*ofxgo.CCStatementResponse)
		if !ok || stmt.BankTranList == nil {
			continue
		}
		ccStmts++
		txns = appendOFX(txns, stmt.BankTranList.Transactions)
	}

	slog.Info("Parsed OFX file",
		"total_transactions", len(txns),
		"bank_statements", bankStmts,
		"cc_statements", ccStmts)

	return txns, nil
}

func appendOFX(txns []model.Transaction, list []ofxgo.Transaction) []model.Transaction {
	for _, ofxTx := range list {
		amount, _ := ofxTx.TrnAmt.Float64()
		txns = append(txns, model.Transaction{
			Date:        model.CalendarDay(ofxTx.DtPosted.Time),
			Description: ofxDescription(ofxTx),
			Amount:      amount,
		})
	}
	return txns
}

// ofxDescription prefers PAYEE, then NAME, adding MEMO when NAME is generic.
func ofxDescription(tx ofxgo.Transaction) string {
	if tx.Payee != nil && tx.Payee.Name != "" {
		return strings.TrimSpace(string(tx.Payee.Name))
	}

	name := strings.TrimSpace(string(tx.Name))
	memo := strings.TrimSpace(string(tx.Memo))
	if memo != "" && (name == "" || genericNames[strings.ToUpper(name)]) {
		if name == "" {
			return memo
		}
		return name + " " + memo
	}
	return name
}
