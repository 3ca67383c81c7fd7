package engine

import (
	"context"
	"errors"
	"testing"

	"github.com/Veraticus/statement-roast/internal/common"
	"github.com/Veraticus/statement-roast/internal/model"
	"github.com/Veraticus/statement-roast/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingStore struct{ err error }

func (f failingStore) SaveSummary(context.Context, *model.MonthlySummary) error { return f.err }

func (f failingStore) GetHistory(context.Context, string) ([]model.MonthlySummary, error) {
	return nil, f.err
}

func TestService_ProcessPersistsSummary(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svc := NewService(db, nil)
	ctx := context.Background()

	report, err := svc.Process(ctx, "me", []model.Transaction{
		txn(t, "2025-06-01", -80, "OXXO"),
		txn(t, "2025-06-02", -60, "OXXO"),
	})
	require.NoError(t, err)
	assert.Equal(t, "2025-06", report.Month)

	stored, err := db.GetSummary(ctx, "me", "2025-06")
	require.NoError(t, err)
	assert.True(t, stored.HasAward(model.AwardIndiceGodin))
	assert.Equal(t, 2, stored.TransactionCount)

	// Reprocessing the same month replaces the row.
	_, err = svc.Process(ctx, "me", []model.Transaction{txn(t, "2025-06-20", -10, "PAPELERIA")})
	require.NoError(t, err)
	history, err := svc.History(ctx, "me")
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Empty(t, history[0].AwardsWon)
}

func TestService_ProcessEmpty(t *testing.T) {
	svc := NewService(testutil.SetupTestDB(t), nil)

	_, err := svc.Process(context.Background(), "me", nil)
	assert.ErrorIs(t, err, common.ErrNoTransactions)
}

func TestService_Streaks(t *testing.T) {
	db := testutil.SetupTestDB(t,
		testutil.Summary("me", "2025-04", model.AwardAccionistaUber),
		testutil.Summary("me", "2025-05", model.AwardAccionistaUber),
		testutil.Summary("me", "2025-06", model.AwardAccionistaUber),
	)
	svc := NewService(db, nil)

	streaks, err := svc.Streaks(context.Background(), "me")
	require.NoError(t, err)
	assert.Equal(t, []model.Streak{{AwardID: model.AwardAccionistaUber, Count: 3}}, streaks)

	none, err := svc.Streaks(context.Background(), "someone-else")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestService_StoreErrors(t *testing.T) {
	boom := errors.New("disk full")
	svc := NewService(failingStore{err: boom}, nil)
	ctx := context.Background()

	report, err := svc.Process(ctx, "me", []model.Transaction{txn(t, "2025-06-01", -80, "OXXO")})
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, "2025-06", report.Month, "the analysis is still returned")

	_, err = svc.Streaks(ctx, "me")
	assert.ErrorIs(t, err, boom)

	_, err = svc.History(ctx, "me")
	assert.ErrorIs(t, err, boom)
}
