package gamification_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finla-app/finla/internal/category"
	"github.com/finla-app/finla/internal/snapshot"
)

func TestAwardKarma(t *testing.T) {
	type testCase struct {
		name       string
		stats      snapshot.UserStats
		cat        category.Category
		amount     int64
		wantEarned int64
	}

	tests := []testCase{
		{
			// 5 logged + 8 mindful + 12 new category
			name:       "SmallSpendNewCategory",
			stats:      snapshot.UserStats{},
			cat:        category.Food,
			amount:     -5000,
			wantEarned: 25,
		},
		{
			// 5 logged + 12 new category, above the mindful limit
			name:       "LargeSpendNewCategory",
			stats:      snapshot.UserStats{},
			cat:        category.Shopping,
			amount:     -500000,
			wantEarned: 17,
		},
		{
			// 5 logged + 8 mindful, category already seen
			name:       "KnownCategory",
			stats:      snapshot.UserStats{CategoriesUsed: []string{"food"}},
			cat:        category.Food,
			amount:     -5000,
			wantEarned: 13,
		},
		{
			// Income amounts qualify as mindful by absolute value.
			name:       "IncomeAbsolute",
			stats:      snapshot.UserStats{CategoriesUsed: []string{"others"}},
			cat:        category.Others,
			amount:     9000,
			wantEarned: 13,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newEngine()
			stats := tt.stats

			before := stats.TotalTransactions
			res := e.AwardKarma(&stats, tt.cat, tt.amount)

			assert.Equal(t, tt.wantEarned, res.Earned)
			assert.Equal(t, tt.wantEarned, stats.Karma)
			assert.Equal(t, tt.wantEarned, stats.TotalKarmaEarned)
			assert.Equal(t, before+1, stats.TotalTransactions)
			assert.True(t, stats.HasUsedCategory(tt.cat))
		})
	}
}

func TestLevel(t *testing.T) {
	e := newEngine()

	type testCase struct {
		karma int64
		want  int
	}

	tests := []testCase{
		{0, 1},
		{99, 1},
		{100, 2},
		{299, 2},
		{300, 3},
		{600, 4},
		{1000, 5},
		{1500, 6},
		{1999, 6},
		{2000, 7},
		{2500, 8},
		{1500 + 500*100, 20}, // capped
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, e.Level(tt.karma), "karma %d", tt.karma)
	}
}

func TestLevelMonotonic(t *testing.T) {
	e := newEngine()

	prev := 0
	for karma := int64(0); karma <= 20000; karma += 37 {
		lvl := e.Level(karma)
		assert.GreaterOrEqual(t, lvl, prev, "karma %d", karma)
		prev = lvl
	}
}

func TestUnlockIdempotent(t *testing.T) {
	e := newEngine()

	stats := snapshot.UserStats{TotalTransactions: 1, Achievements: []string{}}

	first := e.Unlock(&stats, 0)
	require.Len(t, first, 1)
	assert.Equal(t, "first_transaction", first[0].ID)
	assert.Equal(t, int64(50), stats.Karma)

	// Unchanged metrics unlock nothing further.
	again := e.Unlock(&stats, 0)
	assert.Empty(t, again)
	assert.Equal(t, int64(50), stats.Karma)
	assert.Equal(t, []string{"first_transaction"}, stats.Achievements)
}

func TestUnlockMultipleAtOnce(t *testing.T) {
	e := newEngine()

	stats := snapshot.UserStats{
		Streak:            5,
		TotalTransactions: 1,
		Achievements:      []string{},
	}

	unlocked := e.Unlock(&stats, 1)

	ids := make([]string, 0, len(unlocked))
	for _, a := range unlocked {
		ids = append(ids, a.ID)
	}

	assert.ElementsMatch(t, []string{"first_transaction", "streak_5", "goal_achiever"}, ids)
	// 50 + 100 + 300 points
	assert.Equal(t, int64(450), stats.Karma)
}

func TestUnlockKarmaThresholdUsesLifetimeTotal(t *testing.T) {
	e := newEngine()

	stats := snapshot.UserStats{
		Karma:            0, // spent or reset
		TotalKarmaEarned: 1200,
		Achievements:     []string{},
	}

	unlocked := e.Unlock(&stats, 0)

	require.Len(t, unlocked, 1)
	assert.Equal(t, "karma_1000", unlocked[0].ID)
}
