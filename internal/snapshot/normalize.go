package snapshot

import (
	"fmt"

	"github.com/finla-app/finla/internal/category"
)

// Repair describes one consistency repair applied to a loaded snapshot.
// Repairs are warnings, not errors: the repaired state is used in memory
// and only replaces the stored copy on the next successful save.
type Repair struct {
	Field  string
	Detail string
}

func (r Repair) String() string { return fmt.Sprintf("%s: %s", r.Field, r.Detail) }

// Normalize repairs malformed persisted state to safe defaults and
// re-derives every balance from the transaction log. It returns the list
// of repairs applied.
func (s *Snapshot) Normalize() []Repair {
	var repairs []Repair

	if s.Stats.Streak < 0 {
		repairs = append(repairs, Repair{"stats.streak", fmt.Sprintf("negative streak %d reset to 0", s.Stats.Streak)})
		s.Stats.Streak = 0
	}

	if s.Stats.LongestStreak < s.Stats.Streak {
		repairs = append(repairs, Repair{"stats.longestStreak", "raised to current streak"})
		s.Stats.LongestStreak = s.Stats.Streak
	}

	if s.Stats.Karma < 0 {
		repairs = append(repairs, Repair{"stats.karma", fmt.Sprintf("negative karma %d reset to 0", s.Stats.Karma)})
		s.Stats.Karma = 0
	}

	if s.Stats.FreezeTokens < 0 {
		repairs = append(repairs, Repair{"stats.freezeTokens", "negative token count reset to 0"})
		s.Stats.FreezeTokens = 0
	}

	if s.Stats.Level < 1 {
		repairs = append(repairs, Repair{"stats.level", "level below 1 reset to 1"})
		s.Stats.Level = 1
	}

	if s.Stats.Achievements == nil {
		s.Stats.Achievements = []string{}
	}

	for _, t := range s.Transactions {
		if !t.Category.Valid() {
			repairs = append(repairs, Repair{"transaction.category", fmt.Sprintf("unknown category %q on %s reset to others", t.Category, t.ID)})
			t.Category = category.Others
		}
	}

	for _, g := range s.Goals {
		switch g.Status {
		case GoalActive, GoalAchieved, GoalAbandoned:
		default:
			repairs = append(repairs, Repair{"goal.status", fmt.Sprintf("unknown status %q on %s reset to active", g.Status, g.ID)})
			g.Status = GoalActive
		}

		if g.Status == GoalAchieved && g.Accumulated > g.TargetAmount {
			repairs = append(repairs, Repair{"goal.accumulatedAmount", fmt.Sprintf("goal %s settled above target, capped", g.ID)})
			g.Accumulated = g.TargetAmount
		}
	}

	repairs = append(repairs, s.RecomputeBalances()...)

	return repairs
}

// RecomputeBalances re-derives each account balance as the sum of its
// signed transaction amounts and reports any stored balance that drifted.
func (s *Snapshot) RecomputeBalances() []Repair {
	var repairs []Repair

	sums := make(map[string]int64, len(s.Accounts))
	for _, t := range s.Transactions {
		sums[t.AccountID.String()] += t.Amount
	}

	for _, a := range s.Accounts {
		derived := sums[a.ID.String()]
		if a.Balance != derived {
			repairs = append(repairs, Repair{
				Field:  "account.balance",
				Detail: fmt.Sprintf("account %s stored balance %d differs from derived %d", a.ID, a.Balance, derived),
			})
			a.Balance = derived
		}
	}

	return repairs
}
