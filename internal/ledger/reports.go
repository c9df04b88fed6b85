package ledger

import (
	"sort"

	"github.com/finla-app/finla/internal/category"
	"github.com/finla-app/finla/internal/date"
	"github.com/finla-app/finla/internal/snapshot"
)

// The report queries are read-only views derived from the transaction log
// on demand. They are never persisted separately, so they cannot drift
// from the log.

// DayTotal is one day's aggregate activity.
type DayTotal struct {
	Date    date.Date `json:"date"`
	Income  int64     `json:"income"`
	Expense int64     `json:"expense"`
}

// DailyTotals aggregates the log by calendar day over [from, to],
// inclusive, sorted by date.
func DailyTotals(snap *snapshot.Snapshot, from, to date.Date) []DayTotal {
	byDay := map[date.Date]*DayTotal{}

	for _, t := range snap.Transactions {
		if t.Date.Before(from) || t.Date.After(to) {
			continue
		}

		d, ok := byDay[t.Date]
		if !ok {
			d = &DayTotal{Date: t.Date}
			byDay[t.Date] = d
		}

		if t.Amount >= 0 {
			d.Income += t.Amount
		} else {
			d.Expense += -t.Amount
		}
	}

	out := make([]DayTotal, 0, len(byDay))
	for _, d := range byDay {
		out = append(out, *d)
	}

	sort.Slice(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date) })

	return out
}

// CategoryTotal is one category's aggregate expense.
type CategoryTotal struct {
	Category category.Category `json:"category"`
	Spent    int64             `json:"spent"`
}

// CategoryTotals aggregates expenses by category, largest first. An empty
// monthKey aggregates the whole log.
func CategoryTotals(snap *snapshot.Snapshot, monthKey string) []CategoryTotal {
	byCat := map[category.Category]int64{}

	for _, t := range snap.Transactions {
		if t.Amount >= 0 {
			continue
		}

		if monthKey != "" && t.Date.MonthKey() != monthKey {
			continue
		}

		byCat[t.Category] += -t.Amount
	}

	out := make([]CategoryTotal, 0, len(byCat))
	for c, spent := range byCat {
		out = append(out, CategoryTotal{Category: c, Spent: spent})
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].Spent != out[j].Spent {
			return out[i].Spent > out[j].Spent
		}

		return out[i].Category < out[j].Category
	})

	return out
}

// Insights summarizes spending behavior over a trailing window.
type Insights struct {
	PeriodDays   int               `json:"periodDays"`
	TotalSpent   int64             `json:"totalSpent"`
	DailyAverage int64             `json:"dailyAverage"`
	TopCategory  category.Category `json:"topCategory,omitempty"`
	Trend        string            `json:"trend"`
}

// SpendingInsights computes totals, daily average, top category and a
// week-over-week trend for the window ending at today.
func SpendingInsights(snap *snapshot.Snapshot, today date.Date, days int) Insights {
	if days <= 0 {
		days = 30
	}

	ins := Insights{PeriodDays: days, Trend: "insufficient_data"}
	from := today.Add(-(days - 1))

	byDay := map[date.Date]int64{}
	byCat := map[category.Category]int64{}

	for _, t := range snap.Transactions {
		if t.Amount >= 0 || t.Date.Before(from) || t.Date.After(today) {
			continue
		}

		spent := -t.Amount
		ins.TotalSpent += spent
		byDay[t.Date] += spent
		byCat[t.Category] += spent
	}

	if ins.TotalSpent == 0 {
		return ins
	}

	ins.DailyAverage = ins.TotalSpent / int64(days)

	var top category.Category
	for c, spent := range byCat {
		if top == "" || spent > byCat[top] || (spent == byCat[top] && c < top) {
			top = c
		}
	}

	ins.TopCategory = top
	ins.Trend = trend(byDay, today)

	return ins
}

// trend compares the last 7 days with the 7 before. Within ±10% the trend
// counts as stable.
func trend(byDay map[date.Date]int64, today date.Date) string {
	var recent, previous int64

	for i := 0; i < 7; i++ {
		recent += byDay[today.Add(-i)]
		previous += byDay[today.Add(-(i + 7))]
	}

	if previous == 0 {
		return "insufficient_data"
	}

	switch r, p := float64(recent), float64(previous); {
	case r > p*1.1:
		return "increasing"
	case r < p*0.9:
		return "decreasing"
	default:
		return "stable"
	}
}

// RecentTransactions returns the newest n transactions, newest first.
// Ties on date keep log order.
func RecentTransactions(snap *snapshot.Snapshot, n int) []*snapshot.Transaction {
	txs := append([]*snapshot.Transaction(nil), snap.Transactions...)

	sort.SliceStable(txs, func(i, j int) bool { return txs[j].Date.Before(txs[i].Date) })

	if n > 0 && len(txs) > n {
		txs = txs[:n]
	}

	return txs
}
