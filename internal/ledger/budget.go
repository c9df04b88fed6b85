package ledger

import (
	"github.com/finla-app/finla/internal/category"
	"github.com/finla-app/finla/internal/snapshot"
)

// BudgetSummary is the 50/30/20 rollup for one month. Shares are
// percentages of the month's attributed total and sum to 100 whenever the
// total is non-zero.
type BudgetSummary struct {
	Month      string                      `json:"month"`
	Spent      map[category.Bucket]int64   `json:"spent"`
	Shares     map[category.Bucket]float64 `json:"shares"`
	Total      int64                       `json:"total"`
	Health     string                      `json:"health"`
	ByCategory map[category.Category]int64 `json:"byCategory"`
}

// targetShares is the 50/30/20 split the health grade measures against.
var targetShares = map[category.Bucket]float64{
	category.Needs:   50,
	category.Wants:   30,
	category.Savings: 20,
}

// MonthlyBudget rolls the month's activity into budget buckets. Expenses
// are attributed by their category's bucket; goal deposits are attributed
// to savings.
func (e *Engine) MonthlyBudget(snap *snapshot.Snapshot, monthKey string) BudgetSummary {
	sum := BudgetSummary{
		Month:      monthKey,
		Spent:      map[category.Bucket]int64{category.Needs: 0, category.Wants: 0, category.Savings: 0},
		Shares:     map[category.Bucket]float64{category.Needs: 0, category.Wants: 0, category.Savings: 0},
		ByCategory: map[category.Category]int64{},
	}

	for _, t := range snap.Transactions {
		if t.Date.MonthKey() != monthKey {
			continue
		}

		switch {
		case t.Amount < 0:
			sum.Spent[category.BucketFor(t.Category)] += -t.Amount
			sum.ByCategory[t.Category] += -t.Amount
		case t.GoalID != nil:
			sum.Spent[category.Savings] += t.Amount
		}
	}

	sum.Total = sum.Spent[category.Needs] + sum.Spent[category.Wants] + sum.Spent[category.Savings]
	if sum.Total == 0 {
		sum.Health = "unknown"
		return sum
	}

	// Hand the rounding remainder to the largest share so the three
	// percentages always total exactly 100.
	var largest category.Bucket

	remaining := 100.0

	for _, b := range []category.Bucket{category.Needs, category.Wants, category.Savings} {
		share := float64(sum.Spent[b]) / float64(sum.Total) * 100
		sum.Shares[b] = share
		remaining -= share

		if largest == "" || sum.Spent[b] > sum.Spent[largest] {
			largest = b
		}
	}

	sum.Shares[largest] += remaining
	sum.Health = gradeHealth(sum.Shares)

	return sum
}

// gradeHealth compares actual bucket shares against the 50/30/20 targets.
func gradeHealth(shares map[category.Bucket]float64) string {
	needs := shares[category.Needs] / targetShares[category.Needs]
	wants := shares[category.Wants] / targetShares[category.Wants]

	switch {
	case needs <= 0.8 && wants <= 0.8:
		return "excellent"
	case needs <= 1.0 && wants <= 1.0:
		return "good"
	case needs <= 1.2 || wants <= 1.2:
		return "fair"
	default:
		return "poor"
	}
}
