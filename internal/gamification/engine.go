// Package gamification owns the behavioral-incentive state: streaks,
// karma, achievements and levels. The engine is pure computation over
// UserStats; it never blocks and never fails a normal update.
package gamification

import (
	"log/slog"

	"github.com/finla-app/finla/internal/category"
	"github.com/finla-app/finla/internal/config"
	"github.com/finla-app/finla/internal/snapshot"
)

type Engine struct {
	cfg          config.Gamification
	achievements []Achievement
	log          *slog.Logger
}

func New(cfg config.Gamification, achievements []Achievement, log *slog.Logger) *Engine {
	if log == nil {
		log = slog.Default()
	}

	return &Engine{cfg: cfg, achievements: achievements, log: log}
}

// KarmaResult reports the karma awarded for one accepted transaction.
type KarmaResult struct {
	Earned   int64 `json:"earned"`
	NewLevel int   `json:"newLevel"`
}

// AwardKarma applies the karma policy table for one accepted transaction
// and mutates stats. The per-event award is capped so the configured
// weights stay in a bounded range.
func (e *Engine) AwardKarma(stats *snapshot.UserStats, cat category.Category, amountPaise int64) KarmaResult {
	w := e.cfg.Karma

	abs := amountPaise
	if abs < 0 {
		abs = -abs
	}

	earned := w.TransactionLogged

	if abs <= w.MindfulLimitPaise {
		earned += w.MindfulSpending
	}

	if !stats.HasUsedCategory(cat) {
		earned += w.CategoryDiversity
		stats.CategoriesUsed = append(stats.CategoriesUsed, string(cat))
	}

	if earned > w.MaxEventKarma {
		earned = w.MaxEventKarma
	}

	stats.TotalTransactions++
	e.addKarma(stats, earned)

	return KarmaResult{Earned: earned, NewLevel: stats.Level}
}

// Unlock checks every achievement threshold against the current metrics
// and unlocks any that are newly crossed. Unlocking is idempotent: an
// already-held achievement is never granted twice, so the unlocked set
// only grows. goalsAchieved is supplied by the caller because goal state
// lives outside UserStats.
func (e *Engine) Unlock(stats *snapshot.UserStats, goalsAchieved int) []Achievement {
	var unlocked []Achievement

	for _, a := range e.achievements {
		if stats.HasAchievement(a.ID) {
			continue
		}

		if e.metric(stats, a.Metric, goalsAchieved) < a.Threshold {
			continue
		}

		stats.Achievements = append(stats.Achievements, a.ID)
		e.addKarma(stats, a.Points)
		unlocked = append(unlocked, a)

		e.log.Info("achievement unlocked", "id", a.ID, "points", a.Points)
	}

	return unlocked
}

func (e *Engine) metric(stats *snapshot.UserStats, m Metric, goalsAchieved int) int64 {
	switch m {
	case MetricStreak:
		return int64(stats.Streak)
	case MetricTransactions:
		return int64(stats.TotalTransactions)
	case MetricKarma:
		return stats.TotalKarmaEarned
	case MetricCategories:
		return int64(len(stats.CategoriesUsed))
	case MetricGoals:
		return int64(goalsAchieved)
	default:
		return 0
	}
}

// addKarma credits karma and keeps level in sync. Karma never decreases
// here; delta is clamped at zero.
func (e *Engine) addKarma(stats *snapshot.UserStats, delta int64) int64 {
	if delta <= 0 {
		return 0
	}

	stats.Karma += delta
	stats.TotalKarmaEarned += delta

	if lvl := e.Level(stats.Karma); lvl > stats.Level {
		stats.Level = lvl
	}

	return delta
}

// Level is the deterministic step function from cumulative karma to
// level. It is non-decreasing in karma and capped at MaxLevel.
func (e *Engine) Level(karma int64) int {
	thresholds := e.cfg.LevelThresholds
	if len(thresholds) == 0 {
		return 1
	}

	level := 1

	for i, floor := range thresholds {
		if karma >= floor {
			level = i + 1
		}
	}

	if level == len(thresholds) && e.cfg.LevelStep > 0 {
		level += int((karma - thresholds[len(thresholds)-1]) / e.cfg.LevelStep)
	}

	if e.cfg.MaxLevel > 0 && level > e.cfg.MaxLevel {
		level = e.cfg.MaxLevel
	}

	return level
}
