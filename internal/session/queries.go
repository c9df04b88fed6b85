package session

import (
	"context"

	"github.com/finla-app/finla/internal/date"
	"github.com/finla-app/finla/internal/gamification"
	"github.com/finla-app/finla/internal/ledger"
	"github.com/finla-app/finla/internal/snapshot"
)

// The query surface is read-only and computed on demand from the working
// snapshot. Results are taken from a deep copy so callers cannot reach
// into engine-owned state.

// Overview is the dashboard view.
type Overview struct {
	Accounts     []*snapshot.Account     `json:"accounts"`
	TotalBalance int64                   `json:"totalBalance"`
	Stats        snapshot.UserStats      `json:"stats"`
	StreakState  gamification.State      `json:"streakState"`
	Budget       ledger.BudgetSummary    `json:"budget"`
	Recent       []*snapshot.Transaction `json:"recent"`
	Goals        []*snapshot.Goal        `json:"goals"`
}

func (s *Service) Overview(ctx context.Context) (*Overview, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap, err := s.current(ctx)
	if err != nil {
		return nil, err
	}

	view := snap.Clone()
	today := s.now()

	var total int64
	for _, a := range view.Accounts {
		total += a.Balance
	}

	return &Overview{
		Accounts:     view.Accounts,
		TotalBalance: total,
		Stats:        view.Stats,
		StreakState:  s.game.Status(&view.Stats, today),
		Budget:       s.ledger.MonthlyBudget(view, today.MonthKey()),
		Recent:       ledger.RecentTransactions(view, 5),
		Goals:        view.Goals,
	}, nil
}

// Transactions returns the full log, newest first.
func (s *Service) Transactions(ctx context.Context) ([]*snapshot.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap, err := s.current(ctx)
	if err != nil {
		return nil, err
	}

	return ledger.RecentTransactions(snap.Clone(), 0), nil
}

// Budget returns the 50/30/20 rollup for a month ("2025-07"); empty means
// the current month.
func (s *Service) Budget(ctx context.Context, monthKey string) (ledger.BudgetSummary, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap, err := s.current(ctx)
	if err != nil {
		return ledger.BudgetSummary{}, err
	}

	if monthKey == "" {
		monthKey = s.now().MonthKey()
	}

	return s.ledger.MonthlyBudget(snap, monthKey), nil
}

// DailyTotals aggregates activity by day over [from, to].
func (s *Service) DailyTotals(ctx context.Context, from, to date.Date) ([]ledger.DayTotal, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap, err := s.current(ctx)
	if err != nil {
		return nil, err
	}

	return ledger.DailyTotals(snap, from, to), nil
}

// CategoryTotals aggregates expenses by category for a month; empty means
// all time.
func (s *Service) CategoryTotals(ctx context.Context, monthKey string) ([]ledger.CategoryTotal, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap, err := s.current(ctx)
	if err != nil {
		return nil, err
	}

	return ledger.CategoryTotals(snap, monthKey), nil
}

// Insights summarizes spending over the trailing window.
func (s *Service) Insights(ctx context.Context, days int) (ledger.Insights, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap, err := s.current(ctx)
	if err != nil {
		return ledger.Insights{}, err
	}

	return ledger.SpendingInsights(snap, s.now(), days), nil
}
