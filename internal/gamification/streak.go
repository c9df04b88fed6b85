package gamification

import (
	"github.com/finla-app/finla/internal/date"
	"github.com/finla-app/finla/internal/snapshot"
)

// State is the streak state of the user.
type State string

const (
	// StateActive means the streak is alive: the last log was today or
	// yesterday.
	StateActive State = "active"
	// StateAtRisk is informational: the last log was yesterday and there
	// is no log yet today.
	StateAtRisk State = "at_risk"
	// StateBroken means a gap of two or more days passed with no freeze
	// applied. Streak is 0 only in this state.
	StateBroken State = "broken"
	// StateFrozen means a freeze token bridged exactly one missed day.
	StateFrozen State = "frozen"
)

// StreakResult reports the outcome of one day-advance evaluation.
type StreakResult struct {
	// Advanced is true only for the first qualifying log of a calendar
	// day; repeated logs on the same day leave the streak untouched.
	Advanced bool `json:"advanced"`
	// Reset is true when the gap could not be bridged and a fresh run
	// started at streak 1.
	Reset bool `json:"reset"`
	// FreezeConsumed is true when a token bridged exactly one missed day.
	FreezeConsumed bool  `json:"freezeConsumed"`
	State          State `json:"state"`
	Streak         int   `json:"streak"`
	KarmaDelta     int64 `json:"karmaDelta"`
}

// Status reports the informational streak state without logging anything.
func (e *Engine) Status(stats *snapshot.UserStats, today date.Date) State {
	switch {
	case stats.LastLogged.IsZero(), stats.Streak == 0:
		return StateBroken
	case stats.LastLogged == today:
		return StateActive
	case stats.LastLogged.DaysUntil(today) == 1:
		return StateAtRisk
	default:
		return StateBroken
	}
}

// AdvanceStreak evaluates the day-gap policy for a log on the given day
// and mutates stats accordingly. It is evaluated once per calendar day:
// a second log on the same day is a no-op.
func (e *Engine) AdvanceStreak(stats *snapshot.UserStats, today date.Date) StreakResult {
	if stats.LastLogged == today {
		return StreakResult{State: StateActive, Streak: stats.Streak}
	}

	res := StreakResult{Advanced: true, State: StateActive}

	switch gap := stats.LastLogged.DaysUntil(today); {
	case stats.LastLogged.IsZero():
		// First log ever.
		stats.Streak = 1
	case gap == 1:
		stats.Streak++
	case gap == 2 && stats.FreezeTokens > 0:
		// Exactly one missed day and a token available: the token
		// bridges the gap and the streak survives unchanged.
		stats.FreezeTokens--
		res.FreezeConsumed = true
		res.State = StateFrozen
	default:
		// Wider gap, or no token left. The streak breaks and a fresh
		// run starts immediately at 1.
		stats.Streak = 1
		res.Reset = true
	}

	stats.LastLogged = today
	if stats.Streak > stats.LongestStreak {
		stats.LongestStreak = stats.Streak
	}

	if stats.Streak >= e.cfg.StreakBonusFrom {
		res.KarmaDelta = e.addKarma(stats, e.cfg.Karma.StreakBonus)
	}

	res.Streak = stats.Streak

	return res
}
