package engine

import (
	"context"
	"fmt"

	"github.com/Veraticus/statement-roast/internal/common"
	"github.com/Veraticus/statement-roast/internal/model"
	"github.com/Veraticus/statement-roast/internal/streak"
)

// SummaryStore persists monthly summaries per session.
type SummaryStore interface {
	SaveSummary(ctx context.Context, summary *model.MonthlySummary) error
	GetHistory(ctx context.Context, sessionID string) ([]model.MonthlySummary, error)
}

// Service analyzes statements and keeps the session history current.
type Service struct {
	store    SummaryStore
	analyzer *Analyzer
}

// NewService creates a service. A nil analyzer uses the default rules.
func NewService(store SummaryStore, analyzer *Analyzer) *Service {
	if analyzer == nil {
		analyzer = NewAnalyzer(nil)
	}
	return &Service{store: store, analyzer: analyzer}
}

// Process analyzes txns and upserts the month's summary for sessionID.
func (s *Service) Process(ctx context.Context, sessionID string, txns []model.Transaction) (Report, error) {
	if len(txns) == 0 {
		return Report{}, common.NoTransactionsError(sessionID)
	}

	report := s.analyzer.Analyze(txns)
	sum := report.Summary(sessionID)
	if err := s.store.SaveSummary(ctx, &sum); err != nil {
		return report, fmt.Errorf("failed to save summary for %s: %w", report.Month, err)
	}

	common.LogInfo("Saved monthly summary", common.Fields{
		"session":      sessionID,
		"month":        report.Month,
		"awards":       len(report.Awards),
		"transactions": len(txns),
	})
	return report, nil
}

// Streaks returns the session's current award streaks.
func (s *Service) Streaks(ctx context.Context, sessionID string) ([]model.Streak, error) {
	history, err := s.store.GetHistory(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to load history: %w", err)
	}
	return streak.FindCurrent(history), nil
}

// History returns the session's stored months in ascending order.
func (s *Service) History(ctx context.Context, sessionID string) ([]model.MonthlySummary, error) {
	history, err := s.store.GetHistory(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to load history: %w", err)
	}
	return history, nil
}
