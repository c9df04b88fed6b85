// Package snapshot defines the persisted aggregate the engines operate on:
// accounts, the transaction log, goals and gamification stats, loaded as a
// whole at session start and written back after each accepted operation.
package snapshot

import (
	"github.com/google/uuid"

	"github.com/finla-app/finla/internal/category"
	"github.com/finla-app/finla/internal/date"
)

// Account is a registered bank account. Balance is derived state: it must
// equal the sum of the account's signed transaction amounts at all times.
type Account struct {
	ID         uuid.UUID `json:"id"`
	Name       string    `json:"name"`
	BankName   string    `json:"bankName"`
	UPIApps    []string  `json:"upiApps"`
	MinBalance int64     `json:"minBalance"`
	Balance    int64     `json:"balance"`
}

// Transaction is one entry of the append-only log. Amounts are signed
// paise: positive is income, negative is expense. Entries are never
// mutated in place; corrections append compensating entries that point
// back at the original through CorrectionOf.
type Transaction struct {
	ID            uuid.UUID         `json:"id"`
	AccountID     uuid.UUID         `json:"accountId"`
	Amount        int64             `json:"amount"`
	Category      category.Category `json:"category"`
	Description   string            `json:"description"`
	Date          date.Date         `json:"date"`
	PaymentMethod string            `json:"paymentMethod"`
	GoalID        *uuid.UUID        `json:"goalId,omitempty"`
	CorrectionOf  *uuid.UUID        `json:"correctionOf,omitempty"`
}

// GoalStatus is the lifecycle state of a savings goal.
type GoalStatus string

const (
	GoalActive    GoalStatus = "active"
	GoalAchieved  GoalStatus = "achieved"
	GoalAbandoned GoalStatus = "abandoned"
)

// Goal is a savings target funded by tagged deposit transactions.
type Goal struct {
	ID           uuid.UUID  `json:"id"`
	Name         string     `json:"name"`
	TargetAmount int64      `json:"targetAmount"`
	TargetDate   date.Date  `json:"targetDate"`
	CreatedDate  date.Date  `json:"createdDate"`
	Accumulated  int64      `json:"accumulatedAmount"`
	Status       GoalStatus `json:"status"`
}

// UserStats is the single gamification record.
type UserStats struct {
	Streak            int       `json:"streak"`
	LongestStreak     int       `json:"longestStreak"`
	LastLogged        date.Date `json:"lastLoggedDate"`
	Karma             int64     `json:"karma"`
	Level             int       `json:"level"`
	Achievements      []string  `json:"achievements"`
	FreezeTokens      int       `json:"freezeTokens"`
	TotalTransactions int       `json:"totalTransactions"`
	CategoriesUsed    []string  `json:"categoriesUsed"`
	TotalKarmaEarned  int64     `json:"totalKarmaEarned"`
}

// HasAchievement reports whether the achievement is already unlocked.
func (s *UserStats) HasAchievement(id string) bool {
	for _, a := range s.Achievements {
		if a == id {
			return true
		}
	}

	return false
}

// HasUsedCategory reports whether a category already appears in the
// diversity set.
func (s *UserStats) HasUsedCategory(c category.Category) bool {
	for _, used := range s.CategoriesUsed {
		if used == string(c) {
			return true
		}
	}

	return false
}

// Snapshot is the full in-memory state at a point in time. Version counts
// accepted mutations since load and lets the stores detect stale writes.
type Snapshot struct {
	Version      int64          `json:"version"`
	Accounts     []*Account     `json:"accounts"`
	Transactions []*Transaction `json:"transactions"`
	Goals        []*Goal        `json:"goals"`
	Stats        UserStats      `json:"stats"`
}

// New returns an empty snapshot with the given number of starting freeze
// tokens.
func New(freezeTokens int) *Snapshot {
	return &Snapshot{
		Stats: UserStats{
			Level:        1,
			FreezeTokens: freezeTokens,
			Achievements: []string{},
		},
	}
}

// Account returns the account with the given id, or nil.
func (s *Snapshot) Account(id uuid.UUID) *Account {
	for _, a := range s.Accounts {
		if a.ID == id {
			return a
		}
	}

	return nil
}

// Goal returns the goal with the given id, or nil.
func (s *Snapshot) Goal(id uuid.UUID) *Goal {
	for _, g := range s.Goals {
		if g.ID == id {
			return g
		}
	}

	return nil
}

// Transaction returns the transaction with the given id, or nil.
func (s *Snapshot) Transaction(id uuid.UUID) *Transaction {
	for _, t := range s.Transactions {
		if t.ID == id {
			return t
		}
	}

	return nil
}

// Clone returns a deep copy of the snapshot.
func (s *Snapshot) Clone() *Snapshot {
	out := &Snapshot{
		Version: s.Version,
		Stats:   s.Stats,
	}

	out.Stats.Achievements = append([]string(nil), s.Stats.Achievements...)
	out.Stats.CategoriesUsed = append([]string(nil), s.Stats.CategoriesUsed...)

	out.Accounts = make([]*Account, len(s.Accounts))
	for i, a := range s.Accounts {
		c := *a
		c.UPIApps = append([]string(nil), a.UPIApps...)
		out.Accounts[i] = &c
	}

	out.Transactions = make([]*Transaction, len(s.Transactions))
	for i, t := range s.Transactions {
		c := *t
		out.Transactions[i] = &c
	}

	out.Goals = make([]*Goal, len(s.Goals))
	for i, g := range s.Goals {
		c := *g
		out.Goals[i] = &c
	}

	return out
}
