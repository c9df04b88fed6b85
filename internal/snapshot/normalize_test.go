package snapshot_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finla-app/finla/internal/category"
	"github.com/finla-app/finla/internal/date"
	"github.com/finla-app/finla/internal/snapshot"
)

func TestNormalizeRepairsStats(t *testing.T) {
	snap := snapshot.New(3)
	snap.Stats.Streak = -4
	snap.Stats.Karma = -100
	snap.Stats.FreezeTokens = -1
	snap.Stats.Level = 0
	snap.Stats.Achievements = nil

	repairs := snap.Normalize()

	assert.NotEmpty(t, repairs)
	assert.Equal(t, 0, snap.Stats.Streak)
	assert.Equal(t, int64(0), snap.Stats.Karma)
	assert.Equal(t, 0, snap.Stats.FreezeTokens)
	assert.Equal(t, 1, snap.Stats.Level)
	assert.NotNil(t, snap.Stats.Achievements)
}

func TestNormalizeRepairsUnknownCategory(t *testing.T) {
	acct := uuid.New()

	snap := snapshot.New(3)
	snap.Accounts = append(snap.Accounts, &snapshot.Account{ID: acct, Name: "sbi"})
	snap.Transactions = append(snap.Transactions, &snapshot.Transaction{
		ID:        uuid.New(),
		AccountID: acct,
		Amount:    -500,
		Category:  "groceries",
		Date:      date.MustParse("2025-07-01"),
	})

	snap.Normalize()

	assert.Equal(t, category.Others, snap.Transactions[0].Category)
}

func TestNormalizeRecomputesBalances(t *testing.T) {
	acct := uuid.New()

	snap := snapshot.New(3)
	snap.Accounts = append(snap.Accounts, &snapshot.Account{ID: acct, Name: "sbi", Balance: 99999})
	snap.Transactions = append(snap.Transactions,
		&snapshot.Transaction{ID: uuid.New(), AccountID: acct, Amount: 100000, Category: category.Others, Date: date.MustParse("2025-07-01")},
		&snapshot.Transaction{ID: uuid.New(), AccountID: acct, Amount: -20000, Category: category.Food, Date: date.MustParse("2025-07-02")},
	)

	repairs := snap.Normalize()

	require.NotEmpty(t, repairs)
	assert.Equal(t, int64(80000), snap.Accounts[0].Balance)
}

func TestNormalizeCapsAchievedGoal(t *testing.T) {
	snap := snapshot.New(3)
	snap.Goals = append(snap.Goals, &snapshot.Goal{
		ID:           uuid.New(),
		Name:         "phone",
		TargetAmount: 500000,
		Accumulated:  530000,
		Status:       snapshot.GoalAchieved,
	})

	snap.Normalize()

	assert.Equal(t, int64(500000), snap.Goals[0].Accumulated)
}

func TestNormalizeCleanIsNoOp(t *testing.T) {
	snap := snapshot.New(3)

	assert.Empty(t, snap.Normalize())
}

func TestCloneIsDeep(t *testing.T) {
	acct := uuid.New()

	snap := snapshot.New(3)
	snap.Accounts = append(snap.Accounts, &snapshot.Account{ID: acct, Name: "sbi", Balance: 1000})
	snap.Transactions = append(snap.Transactions, &snapshot.Transaction{
		ID: uuid.New(), AccountID: acct, Amount: 1000, Category: category.Others, Date: date.MustParse("2025-07-01"),
	})
	snap.Stats.Achievements = []string{"first_transaction"}

	clone := snap.Clone()
	clone.Accounts[0].Balance = 0
	clone.Transactions[0].Amount = 0
	clone.Stats.Achievements[0] = "mutated"

	assert.Equal(t, int64(1000), snap.Accounts[0].Balance)
	assert.Equal(t, int64(1000), snap.Transactions[0].Amount)
	assert.Equal(t, "first_transaction", snap.Stats.Achievements[0])
}
