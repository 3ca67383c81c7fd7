package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/Veraticus/statement-roast/internal/common"
	"github.com/Veraticus/statement-roast/internal/model"
)

// SaveSummary upserts the summary for its (session, month) pair. A repeated
// save replaces the previous row entirely.
func (s *SQLiteStorage) SaveSummary(ctx context.Context, summary *model.MonthlySummary) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateSummary(summary); err != nil {
		return err
	}

	awardsJSON, err := json.Marshal(awardStrings(summary.AwardsWon))
	if err != nil {
		return fmt.Errorf("failed to marshal awards: %w", err)
	}
	totalsJSON, err := json.Marshal(completeTotals(summary.CategoryTotals))
	if err != nil {
		return fmt.Errorf("failed to marshal category totals: %w", err)
	}

	updatedAt := summary.UpdatedAt
	if updatedAt.IsZero() {
		updatedAt = time.Now().UTC()
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO monthly_summaries (
			session_id, month, total_spent, top_category, awards_won,
			transaction_count, category_totals, updated_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(session_id, month) DO UPDATE SET
			total_spent = excluded.total_spent,
			top_category = excluded.top_category,
			awards_won = excluded.awards_won,
			transaction_count = excluded.transaction_count,
			category_totals = excluded.category_totals,
			updated_at = excluded.updated_at
	`,
		summary.SessionID, summary.Month, summary.TotalSpent, string(summary.TopCategory),
		string(awardsJSON), summary.TransactionCount, string(totalsJSON), updatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save summary for %s/%s: %w", summary.SessionID, summary.Month, err)
	}
	return nil
}

// GetSummary returns one month of a session, or common.ErrNotFound.
func (s *SQLiteStorage) GetSummary(ctx context.Context, sessionID, month string) (*model.MonthlySummary, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateString(sessionID, "sessionID"); err != nil {
		return nil, err
	}
	if err := validateMonth(month); err != nil {
		return nil, err
	}

	row := s.db.QueryRowContext(ctx, `
		SELECT session_id, month, total_spent, top_category, awards_won,
		       transaction_count, category_totals, updated_at
		FROM monthly_summaries
		WHERE session_id = ? AND month = ?
	`, sessionID, month)

	summary, err := scanSummary(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, common.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return summary, nil
}

// GetHistory returns every stored month of a session in ascending order.
func (s *SQLiteStorage) GetHistory(ctx context.Context, sessionID string) ([]model.MonthlySummary, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateString(sessionID, "sessionID"); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT session_id, month, total_spent, top_category, awards_won,
		       transaction_count, category_totals, updated_at
		FROM monthly_summaries
		WHERE session_id = ?
		ORDER BY month ASC
	`, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to query history: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var history []model.MonthlySummary
	for rows.Next() {
		summary, scanErr := scanSummary(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		history = append(history, *summary)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate history: %w", err)
	}
	return history, nil
}

// DeleteSummary removes one month of a session.
func (s *SQLiteStorage) DeleteSummary(ctx context.Context, sessionID, month string) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateString(sessionID, "sessionID"); err != nil {
		return err
	}

	result, err := s.db.ExecContext(ctx,
		`DELETE FROM monthly_summaries WHERE session_id = ? AND month = ?`, sessionID, month)
	if err != nil {
		return fmt.Errorf("failed to delete summary: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check deleted rows: %w", err)
	}
	if affected == 0 {
		return common.ErrNotFound
	}
	return nil
}

// ListSessions returns the distinct session ids with stored history.
func (s *SQLiteStorage) ListSessions(ctx context.Context) ([]string, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT DISTINCT session_id FROM monthly_summaries ORDER BY session_id`)
	if err != nil {
		return nil, fmt.Errorf("failed to query sessions: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var sessions []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan session: %w", err)
		}
		sessions = append(sessions, id)
	}
	return sessions, rows.Err()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanSummary(row scanner) (*model.MonthlySummary, error) {
	var (
		summary    model.MonthlySummary
		top        string
		awardsJSON string
		totalsJSON string
	)
	err := row.Scan(&summary.SessionID, &summary.Month, &summary.TotalSpent, &top,
		&awardsJSON, &summary.TransactionCount, &totalsJSON, &summary.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to scan summary: %w", err)
	}

	category, err := model.ParseCategory(top)
	if err != nil {
		return nil, fmt.Errorf("summary %s/%s: %w", summary.SessionID, summary.Month, err)
	}
	summary.TopCategory = category

	var awardIDs []string
	if err := json.Unmarshal([]byte(awardsJSON), &awardIDs); err != nil {
		return nil, fmt.Errorf("failed to decode awards: %w", err)
	}
	summary.AwardsWon = make([]model.AwardID, 0, len(awardIDs))
	for _, raw := range awardIDs {
		id, parseErr := model.ParseAwardID(raw)
		if parseErr != nil {
			return nil, fmt.Errorf("summary %s/%s: %w", summary.SessionID, summary.Month, parseErr)
		}
		summary.AwardsWon = append(summary.AwardsWon, id)
	}

	var totals map[model.Category]float64
	if err := json.Unmarshal([]byte(totalsJSON), &totals); err != nil {
		return nil, fmt.Errorf("failed to decode category totals: %w", err)
	}
	summary.CategoryTotals = completeTotals(totals)

	return &summary, nil
}

// completeTotals returns a copy of totals holding every category key.
func completeTotals(totals map[model.Category]float64) map[model.Category]float64 {
	out := make(map[model.Category]float64, len(model.AllCategories()))
	for _, c := range model.AllCategories() {
		out[c] = totals[c]
	}
	return out
}

func awardStrings(ids []model.AwardID) []string {
	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = string(id)
	}
	return out
}
