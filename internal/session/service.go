// Package session orchestrates the full pipeline for each externally
// triggered operation: load snapshot, classify, apply to the ledger,
// advance gamification, persist. A process-wide mutex serializes the
// whole read-modify-write cycle; the engines themselves never lock.
package session

import (
	"context"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"github.com/finla-app/finla/internal/category"
	"github.com/finla-app/finla/internal/date"
	"github.com/finla-app/finla/internal/gamification"
	"github.com/finla-app/finla/internal/ledger"
	"github.com/finla-app/finla/internal/snapshot"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=session

// Repository is the persistence adapter. Load returns the full snapshot;
// Save must write it back atomically.
type Repository interface {
	Load(ctx context.Context) (*snapshot.Snapshot, error)
	Save(ctx context.Context, snap *snapshot.Snapshot) error
}

type Service struct {
	repo       Repository
	classifier *category.Classifier
	ledger     *ledger.Engine
	game       *gamification.Engine
	log        *slog.Logger

	mu    sync.Mutex
	snap  *snapshot.Snapshot
	dirty bool

	// now is swapped in tests to pin the calendar day.
	now func() date.Date
}

func NewService(repo Repository, classifier *category.Classifier, le *ledger.Engine, ge *gamification.Engine, log *slog.Logger) *Service {
	if log == nil {
		log = slog.Default()
	}

	return &Service{
		repo:       repo,
		classifier: classifier,
		ledger:     le,
		game:       ge,
		log:        log,
		now:        date.Today,
	}
}

// current returns the working snapshot, loading and repairing it on first
// use. Caller holds s.mu.
func (s *Service) current(ctx context.Context) (*snapshot.Snapshot, error) {
	if s.snap != nil {
		return s.snap, nil
	}

	snap, err := s.repo.Load(ctx)
	if err != nil {
		return nil, &PersistenceError{Op: "load", Err: err}
	}

	for _, r := range snap.Normalize() {
		s.log.Warn("snapshot repaired", "field", r.Field, "detail", r.Detail)
	}

	s.snap = snap

	return s.snap, nil
}

// persist writes the working snapshot back. On failure the mutated state
// stays in memory, marked dirty, so an accepted operation is never lost;
// the caller is told the write did not complete and can retry.
func (s *Service) persist(ctx context.Context) error {
	if err := s.repo.Save(ctx, s.snap); err != nil {
		s.dirty = true
		return &PersistenceError{Op: "save", Err: err}
	}

	s.dirty = false

	return nil
}

// Flush retries a failed save. It is a no-op when nothing is pending.
func (s *Service) Flush(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.dirty || s.snap == nil {
		return nil
	}

	return s.persist(ctx)
}

// Dirty reports whether an accepted mutation is still awaiting a durable
// write.
func (s *Service) Dirty() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.dirty
}

// TransactionParams is the raw submission for one transaction. Category
// is optional; when empty the classifier assigns one from the
// description.
type TransactionParams struct {
	AccountID     uuid.UUID
	Amount        int64
	Category      category.Category
	Description   string
	Date          date.Date
	PaymentMethod string
	GoalID        *uuid.UUID
}

// TransactionResult is the outcome of one accepted transaction, including
// the gamification movement it caused.
type TransactionResult struct {
	Transaction  *snapshot.Transaction      `json:"transaction"`
	NewBalance   int64                      `json:"newBalance"`
	Budget       ledger.BudgetSummary       `json:"budget"`
	Alert        *ledger.BalanceAlert       `json:"alert,omitempty"`
	GoalAchieved *snapshot.Goal             `json:"goalAchieved,omitempty"`
	Streak       gamification.StreakResult  `json:"streak"`
	Karma        gamification.KarmaResult   `json:"karma"`
	Unlocked     []gamification.Achievement `json:"unlocked,omitempty"`
	Stats        snapshot.UserStats         `json:"stats"`
}

// AddTransaction runs the full pipeline for a single submission.
func (s *Service) AddTransaction(ctx context.Context, p TransactionParams) (*TransactionResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap, err := s.current(ctx)
	if err != nil {
		return nil, err
	}

	res, err := s.apply(snap, p, true)
	if err != nil {
		return nil, err
	}

	if err := s.persist(ctx); err != nil {
		return res, err
	}

	return res, nil
}

// apply classifies and applies one transaction and advances gamification.
// awardKarma is false for bulk-import rows past the first, which collapse
// to a single logging event per calendar day.
func (s *Service) apply(snap *snapshot.Snapshot, p TransactionParams, awardKarma bool) (*TransactionResult, error) {
	cat := p.Category
	if cat == "" {
		cat = s.classifier.Classify(p.Description)
	}

	day := p.Date
	if day.IsZero() {
		day = s.now()
	}

	applied, err := s.ledger.Apply(snap, ledger.ApplyParams{
		AccountID:     p.AccountID,
		Amount:        p.Amount,
		Category:      cat,
		Description:   p.Description,
		Date:          day,
		PaymentMethod: p.PaymentMethod,
		GoalID:        p.GoalID,
	})
	if err != nil {
		return nil, err
	}

	res := &TransactionResult{
		Transaction:  applied.Transaction,
		NewBalance:   applied.NewBalance,
		Budget:       applied.Budget,
		Alert:        applied.Alert,
		GoalAchieved: applied.GoalAchieved,
	}

	if res.Alert != nil {
		s.log.Warn("low balance",
			"account", res.Alert.AccountName,
			"balance", res.Alert.Balance,
			"severity", res.Alert.Severity)
	}

	// The streak keys on the day the user logs, not the transaction's
	// own (possibly historical) date.
	res.Streak = s.game.AdvanceStreak(&snap.Stats, s.now())

	if awardKarma {
		res.Karma = s.game.AwardKarma(&snap.Stats, cat, p.Amount)
	} else {
		// Collapsed rows still count toward milestone metrics.
		snap.Stats.TotalTransactions++
	}

	res.Unlocked = s.game.Unlock(&snap.Stats, ledger.GoalsAchieved(snap))
	res.Stats = snap.Stats

	return res, nil
}

// CorrectTransaction replaces a recorded transaction through a
// compensating reversal plus a replacement entry. Corrections are
// bookkeeping: they award no karma and do not advance the streak.
func (s *Service) CorrectTransaction(ctx context.Context, txID uuid.UUID, p TransactionParams) (*ledger.CorrectionResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap, err := s.current(ctx)
	if err != nil {
		return nil, err
	}

	cat := p.Category
	if cat == "" {
		cat = s.classifier.Classify(p.Description)
	}

	day := p.Date
	if day.IsZero() {
		day = s.now()
	}

	res, err := s.ledger.Correct(snap, txID, ledger.ApplyParams{
		AccountID:     p.AccountID,
		Amount:        p.Amount,
		Category:      cat,
		Description:   p.Description,
		Date:          day,
		PaymentMethod: p.PaymentMethod,
		GoalID:        p.GoalID,
	})
	if err != nil {
		return nil, err
	}

	if err := s.persist(ctx); err != nil {
		return res, err
	}

	return res, nil
}
