package file_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finla-app/finla/internal/category"
	"github.com/finla-app/finla/internal/date"
	"github.com/finla-app/finla/internal/snapshot"
	"github.com/finla-app/finla/internal/store/file"
)

func TestLoadEmptyDirectory(t *testing.T) {
	s, err := file.New(t.TempDir(), 3)
	require.NoError(t, err)

	snap, err := s.Load(context.Background())
	require.NoError(t, err)

	assert.Empty(t, snap.Accounts)
	assert.Empty(t, snap.Transactions)
	assert.Empty(t, snap.Goals)
	assert.Equal(t, 3, snap.Stats.FreezeTokens)
	assert.Equal(t, 1, snap.Stats.Level)
}

func TestSaveLoadRoundtrip(t *testing.T) {
	dir := t.TempDir()

	s, err := file.New(dir, 3)
	require.NoError(t, err)

	acctID := uuid.New()
	goalID := uuid.New()
	origID := uuid.New()

	snap := snapshot.New(3)
	snap.Version = 7
	snap.Accounts = []*snapshot.Account{{
		ID:         acctID,
		Name:       "sbi",
		BankName:   "State Bank",
		UPIApps:    []string{"gpay", "phonepe"},
		MinBalance: 50000,
		Balance:    120000,
	}}
	snap.Goals = []*snapshot.Goal{{
		ID:           goalID,
		Name:         "trip",
		TargetAmount: 500000,
		TargetDate:   date.MustParse("2025-12-31"),
		CreatedDate:  date.MustParse("2025-07-01"),
		Accumulated:  20000,
		Status:       snapshot.GoalActive,
	}}
	snap.Transactions = []*snapshot.Transaction{
		{
			ID:          origID,
			AccountID:   acctID,
			Amount:      100000,
			Category:    category.Others,
			Description: "opening balance",
			Date:        date.MustParse("2025-07-01"),
		},
		{
			ID:            uuid.New(),
			AccountID:     acctID,
			Amount:        20000,
			Category:      category.Others,
			Description:   "trip fund",
			Date:          date.MustParse("2025-07-05"),
			PaymentMethod: "upi",
			GoalID:        &goalID,
		},
		{
			ID:           uuid.New(),
			AccountID:    acctID,
			Amount:       -100000,
			Category:     category.Others,
			Description:  "reversal of: opening balance",
			Date:         date.MustParse("2025-07-06"),
			CorrectionOf: &origID,
		},
	}
	snap.Stats = snapshot.UserStats{
		Streak:            4,
		LongestStreak:     9,
		LastLogged:        date.MustParse("2025-07-06"),
		Karma:             230,
		Level:             3,
		Achievements:      []string{"first_transaction"},
		FreezeTokens:      2,
		TotalTransactions: 12,
		CategoriesUsed:    []string{"food", "others"},
		TotalKarmaEarned:  230,
	}

	require.NoError(t, s.Save(context.Background(), snap))

	loaded, err := s.Load(context.Background())
	require.NoError(t, err)

	assert.Equal(t, snap.Version, loaded.Version)
	assert.Equal(t, snap.Accounts, loaded.Accounts)
	assert.Equal(t, snap.Goals, loaded.Goals)
	assert.Equal(t, snap.Transactions, loaded.Transactions)
	assert.Equal(t, snap.Stats, loaded.Stats)
}

func TestSaveFreshSnapshotReloads(t *testing.T) {
	s, err := file.New(t.TempDir(), 3)
	require.NoError(t, err)

	// Nothing logged yet: stats carry a zero LastLogged date.
	snap := snapshot.New(3)
	require.NoError(t, s.Save(context.Background(), snap))

	loaded, err := s.Load(context.Background())
	require.NoError(t, err)

	assert.True(t, loaded.Stats.LastLogged.IsZero())
	assert.Equal(t, 3, loaded.Stats.FreezeTokens)
}

func TestSaveOverwritesPrevious(t *testing.T) {
	dir := t.TempDir()

	s, err := file.New(dir, 3)
	require.NoError(t, err)

	snap := snapshot.New(3)
	acct := &snapshot.Account{ID: uuid.New(), Name: "sbi"}
	snap.Accounts = []*snapshot.Account{acct}

	require.NoError(t, s.Save(context.Background(), snap))

	acct.Balance = 42
	snap.Version = 1
	require.NoError(t, s.Save(context.Background(), snap))

	loaded, err := s.Load(context.Background())
	require.NoError(t, err)

	require.Len(t, loaded.Accounts, 1)
	assert.Equal(t, int64(42), loaded.Accounts[0].Balance)
	assert.Equal(t, int64(1), loaded.Version)

	// No stray temp files left behind.
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	for _, e := range entries {
		assert.NotContains(t, e.Name(), ".tmp-")
	}
}

func TestLoadCorruptTransactionLog(t *testing.T) {
	dir := t.TempDir()

	s, err := file.New(dir, 3)
	require.NoError(t, err)

	csv := "id,account_id,date,amount,category,description,payment_method,goal_id,correction_of\n" +
		"not-a-uuid,also-bad,2025-07-01,100,others,x,,,\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "transactions.csv"), []byte(csv), 0o644))

	_, err = s.Load(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "row 2")
}
