package session

import (
	"context"

	"github.com/google/uuid"

	"github.com/finla-app/finla/internal/ledger"
	"github.com/finla-app/finla/internal/snapshot"
)

// RegisterAccount registers a bank account, recording any opening balance
// as the account's first transaction.
func (s *Service) RegisterAccount(ctx context.Context, p ledger.AccountParams) (*snapshot.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap, err := s.current(ctx)
	if err != nil {
		return nil, err
	}

	if p.Date.IsZero() {
		p.Date = s.now()
	}

	acct, err := s.ledger.RegisterAccount(snap, p)
	if err != nil {
		return nil, err
	}

	if err := s.persist(ctx); err != nil {
		return acct, err
	}

	return acct, nil
}

// RemoveAccount removes an account with no recorded transactions.
func (s *Service) RemoveAccount(ctx context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap, err := s.current(ctx)
	if err != nil {
		return err
	}

	if err := s.ledger.RemoveAccount(snap, id); err != nil {
		return err
	}

	return s.persist(ctx)
}

// CreateGoal registers a savings goal.
func (s *Service) CreateGoal(ctx context.Context, p ledger.GoalParams) (*snapshot.Goal, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap, err := s.current(ctx)
	if err != nil {
		return nil, err
	}

	if p.CreatedDate.IsZero() {
		p.CreatedDate = s.now()
	}

	goal, err := s.ledger.CreateGoal(snap, p)
	if err != nil {
		return nil, err
	}

	if err := s.persist(ctx); err != nil {
		return goal, err
	}

	return goal, nil
}

// AbandonGoal marks a goal abandoned.
func (s *Service) AbandonGoal(ctx context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap, err := s.current(ctx)
	if err != nil {
		return err
	}

	if err := s.ledger.AbandonGoal(snap, id); err != nil {
		return err
	}

	return s.persist(ctx)
}
