package gamification_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/finla-app/finla/internal/config"
	"github.com/finla-app/finla/internal/date"
	"github.com/finla-app/finla/internal/gamification"
	"github.com/finla-app/finla/internal/snapshot"
)

func testConfig() config.Gamification {
	return config.Gamification{
		InitialFreezeTokens: 3,
		Karma: config.KarmaWeights{
			TransactionLogged: 5,
			MindfulSpending:   8,
			CategoryDiversity: 12,
			StreakBonus:       20,
			MindfulLimitPaise: 10000,
			MaxEventKarma:     100,
		},
		LevelThresholds: []int64{0, 100, 300, 600, 1000, 1500},
		LevelStep:       500,
		MaxLevel:        20,
		StreakBonusFrom: 5,
	}
}

func newEngine() *gamification.Engine {
	return gamification.New(testConfig(), gamification.DefaultAchievements(), nil)
}

func TestAdvanceStreak(t *testing.T) {
	today := date.MustParse("2025-07-10")

	type testCase struct {
		name       string
		stats      snapshot.UserStats
		wantStreak int
		wantState  gamification.State
		wantReset  bool
		wantFrozen bool
		wantTokens int
	}

	tests := []testCase{
		{
			name:       "FirstLogEver",
			stats:      snapshot.UserStats{FreezeTokens: 3},
			wantStreak: 1,
			wantState:  gamification.StateActive,
			wantTokens: 3,
		},
		{
			name:       "ConsecutiveDay",
			stats:      snapshot.UserStats{Streak: 4, LastLogged: today.Add(-1), FreezeTokens: 3},
			wantStreak: 5,
			wantState:  gamification.StateActive,
			wantTokens: 3,
		},
		{
			name:       "OneMissedDayWithToken",
			stats:      snapshot.UserStats{Streak: 7, LastLogged: today.Add(-2), FreezeTokens: 2},
			wantStreak: 7,
			wantState:  gamification.StateFrozen,
			wantFrozen: true,
			wantTokens: 1,
		},
		{
			name:       "OneMissedDayNoToken",
			stats:      snapshot.UserStats{Streak: 7, LastLogged: today.Add(-2), FreezeTokens: 0},
			wantStreak: 1,
			wantState:  gamification.StateActive,
			wantReset:  true,
			wantTokens: 0,
		},
		{
			name:       "TwoMissedDaysTokenNotSpent",
			stats:      snapshot.UserStats{Streak: 7, LastLogged: today.Add(-3), FreezeTokens: 3},
			wantStreak: 1,
			wantState:  gamification.StateActive,
			wantReset:  true,
			wantTokens: 3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newEngine()
			stats := tt.stats

			res := e.AdvanceStreak(&stats, today)

			assert.True(t, res.Advanced)
			assert.Equal(t, tt.wantStreak, res.Streak)
			assert.Equal(t, tt.wantStreak, stats.Streak)
			assert.Equal(t, tt.wantState, res.State)
			assert.Equal(t, tt.wantReset, res.Reset)
			assert.Equal(t, tt.wantFrozen, res.FreezeConsumed)
			assert.Equal(t, tt.wantTokens, stats.FreezeTokens)
			assert.Equal(t, today, stats.LastLogged)
		})
	}
}

func TestAdvanceStreakSameDayIdempotent(t *testing.T) {
	e := newEngine()
	today := date.MustParse("2025-07-10")

	stats := snapshot.UserStats{Streak: 3, LastLogged: today, FreezeTokens: 3}

	for i := 0; i < 5; i++ {
		res := e.AdvanceStreak(&stats, today)

		assert.False(t, res.Advanced)
		assert.Equal(t, 3, stats.Streak)
		assert.Equal(t, 3, stats.FreezeTokens)
	}
}

func TestAdvanceStreakKeepsLongest(t *testing.T) {
	e := newEngine()
	today := date.MustParse("2025-07-10")

	stats := snapshot.UserStats{Streak: 9, LongestStreak: 9, LastLogged: today.Add(-5)}

	res := e.AdvanceStreak(&stats, today)

	assert.True(t, res.Reset)
	assert.Equal(t, 1, stats.Streak)
	assert.Equal(t, 9, stats.LongestStreak)
}

func TestAdvanceStreakBonusKarma(t *testing.T) {
	e := newEngine()
	today := date.MustParse("2025-07-10")

	// Crossing into day 5 earns the streak bonus.
	stats := snapshot.UserStats{Streak: 4, LastLogged: today.Add(-1)}
	res := e.AdvanceStreak(&stats, today)

	assert.Equal(t, int64(20), res.KarmaDelta)
	assert.Equal(t, int64(20), stats.Karma)

	// Day 4 does not.
	stats = snapshot.UserStats{Streak: 3, LastLogged: today.Add(-1)}
	res = e.AdvanceStreak(&stats, today)

	assert.Zero(t, res.KarmaDelta)
}

func TestStatus(t *testing.T) {
	e := newEngine()
	today := date.MustParse("2025-07-10")

	type testCase struct {
		name  string
		stats snapshot.UserStats
		want  gamification.State
	}

	tests := []testCase{
		{name: "NeverLogged", stats: snapshot.UserStats{}, want: gamification.StateBroken},
		{name: "LoggedToday", stats: snapshot.UserStats{Streak: 2, LastLogged: today}, want: gamification.StateActive},
		{name: "LoggedYesterday", stats: snapshot.UserStats{Streak: 2, LastLogged: today.Add(-1)}, want: gamification.StateAtRisk},
		{name: "GapOfTwo", stats: snapshot.UserStats{Streak: 2, LastLogged: today.Add(-2)}, want: gamification.StateBroken},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stats := tt.stats
			assert.Equal(t, tt.want, e.Status(&stats, today))
		})
	}
}
