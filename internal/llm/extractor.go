package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/Veraticus/statement-roast/internal/common"
	"github.com/Veraticus/statement-roast/internal/ingest"
	"github.com/Veraticus/statement-roast/internal/model"
)

const extractionSystemPrompt = `You read Mexican bank statements and list every transaction in them.
Respond ONLY with a JSON array, no prose. Each element must be:
{"date": "YYYY-MM-DD", "amount": number, "description": "merchant or concept as printed"}
Charges, purchases, withdrawals and fees are negative. Deposits, refunds and transfers received are positive.
Skip balances, subtotals and interest summaries. If the statement omits the year, infer it from the statement period.
If there are no transactions, respond with [].`

// Extractor turns unstructured statement text into transactions.
type Extractor struct {
	client  Client
	limiter *rateLimiter
	logger  *slog.Logger
	retry   common.RetryOptions
}

var _ ingest.Extractor = (*Extractor)(nil)

// NewExtractor creates an extractor for the configured provider.
func NewExtractor(cfg Config, logger *slog.Logger) (*Extractor, error) {
	client, err := NewClient(cfg)
	if err != nil {
		return nil, err
	}
	return newExtractorWithClient(client, cfg, logger), nil
}

func newExtractorWithClient(client Client, cfg Config, logger *slog.Logger) *Extractor {
	if logger == nil {
		logger = slog.Default()
	}

	attempts := cfg.MaxRetries
	if attempts <= 0 {
		attempts = 3
	}
	delay := cfg.RetryDelay
	if delay <= 0 {
		delay = time.Second
	}

	return &Extractor{
		client:  client,
		limiter: newRateLimiter(cfg.RateLimit),
		logger:  logger,
		retry: common.RetryOptions{
			MaxAttempts:  attempts,
			InitialDelay: delay,
			MaxDelay:     30 * delay,
			Multiplier:   2.0,
		},
	}
}

// Extract asks the model for the statement's transactions. Blank text
// yields no transactions without a request.
func (e *Extractor) Extract(ctx context.Context, text string) ([]model.Transaction, error) {
	if strings.TrimSpace(text) == "" {
		return nil, nil
	}

	var reply string
	err := common.WithRetry(ctx, func() error {
		if err := e.limiter.wait(ctx); err != nil {
			return &common.RetryableError{Err: err, Retryable: false}
		}
		var callErr error
		reply, callErr = e.client.Complete(ctx, extractionSystemPrompt, "Statement text:\n\n"+text)
		return callErr
	}, e.retry)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", common.ErrExtractionFailed, err)
	}

	txns, err := parseRows(reply)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", common.ErrExtractionFailed, err)
	}

	e.logger.Info("Extracted transactions from statement text", "count", len(txns))
	return txns, nil
}

// parseRows decodes the model reply into transactions.
func parseRows(reply string) ([]model.Transaction, error) {
	content := cleanMarkdownWrapper(reply)

	var rows []ingest.Row
	if err := json.Unmarshal([]byte(content), &rows); err != nil {
		return nil, fmt.Errorf("failed to parse JSON response: %w", err)
	}
	return ingest.RowsToTransactions(rows)
}

// cleanMarkdownWrapper strips code fences and any prose around the JSON array.
func cleanMarkdownWrapper(content string) string {
	content = strings.TrimSpace(content)
	if strings.HasPrefix(content, "```") {
		content = strings.TrimPrefix(content, "```json")
		content = strings.TrimPrefix(content, "```JSON")
		content = strings.TrimPrefix(content, "```")
		content = strings.TrimSuffix(strings.TrimSpace(content), "```")
		content = strings.TrimSpace(content)
	}

	start := strings.IndexByte(content, '[')
	end := strings.LastIndexByte(content, ']')
	if start >= 0 && end > start {
		return content[start : end+1]
	}
	return content
}
