// Package ledger owns account balances, the monthly 50/30/20 budget
// rollup and savings goals. The engine mutates an in-memory snapshot and
// performs no I/O; persistence and locking belong to the caller.
package ledger

import (
	"log/slog"

	"github.com/google/uuid"

	"github.com/finla-app/finla/internal/category"
	"github.com/finla-app/finla/internal/date"
	"github.com/finla-app/finla/internal/snapshot"
)

type Engine struct {
	lowBalance int64
	log        *slog.Logger
}

// New builds an engine. lowBalancePaise is the advisory threshold for
// accounts that do not declare their own minimum balance.
func New(lowBalancePaise int64, log *slog.Logger) *Engine {
	if log == nil {
		log = slog.Default()
	}

	return &Engine{lowBalance: lowBalancePaise, log: log}
}

// ApplyParams describes one transaction to apply. Amount is signed paise:
// positive income, negative expense.
type ApplyParams struct {
	AccountID     uuid.UUID
	Amount        int64
	Category      category.Category
	Description   string
	Date          date.Date
	PaymentMethod string
	GoalID        *uuid.UUID
	CorrectionOf  *uuid.UUID
}

// BalanceAlert is the advisory emitted when a balance drops below its
// threshold. It is a signal for the notification layer, never an error.
type BalanceAlert struct {
	AccountID   uuid.UUID `json:"accountId"`
	AccountName string    `json:"accountName"`
	Balance     int64     `json:"balance"`
	MinBalance  int64     `json:"minBalance"`
	Severity    string    `json:"severity"`
}

// ApplyResult reports the state after one accepted transaction.
type ApplyResult struct {
	Transaction  *snapshot.Transaction
	NewBalance   int64
	Budget       BudgetSummary
	Alert        *BalanceAlert
	GoalAchieved *snapshot.Goal
}

// validate checks ApplyParams against the snapshot without mutating
// anything. It returns the resolved account and optional goal.
func (e *Engine) validate(snap *snapshot.Snapshot, p ApplyParams) (*snapshot.Account, *snapshot.Goal, error) {
	if p.Amount == 0 {
		return nil, nil, invalid("amount", "must be non-zero")
	}

	if p.Date.IsZero() {
		return nil, nil, invalid("date", "must be a valid calendar date")
	}

	if !p.Category.Valid() {
		return nil, nil, invalid("category", "unknown category %q", p.Category)
	}

	acct := snap.Account(p.AccountID)
	if acct == nil {
		return nil, nil, invalid("accountId", "unknown account %s", p.AccountID)
	}

	var goal *snapshot.Goal

	if p.GoalID != nil {
		goal = snap.Goal(*p.GoalID)
		if goal == nil {
			return nil, nil, invalid("goalId", "unknown goal %s", p.GoalID)
		}

		if p.Amount <= 0 {
			return nil, nil, invalid("amount", "goal deposits must be positive")
		}

		if goal.Status == snapshot.GoalAbandoned {
			return nil, nil, invalid("goalId", "goal %s is abandoned", goal.ID)
		}
	}

	return acct, goal, nil
}

// Apply validates and applies one transaction: appends it to the log,
// moves the account balance and recomputes the month's budget rollup.
// On a ValidationError nothing is mutated.
func (e *Engine) Apply(snap *snapshot.Snapshot, p ApplyParams) (*ApplyResult, error) {
	acct, goal, err := e.validate(snap, p)
	if err != nil {
		return nil, err
	}

	tx := &snapshot.Transaction{
		ID:            uuid.New(),
		AccountID:     p.AccountID,
		Amount:        p.Amount,
		Category:      p.Category,
		Description:   p.Description,
		Date:          p.Date,
		PaymentMethod: p.PaymentMethod,
		GoalID:        p.GoalID,
		CorrectionOf:  p.CorrectionOf,
	}

	snap.Transactions = append(snap.Transactions, tx)
	acct.Balance += p.Amount
	snap.Version++

	res := &ApplyResult{
		Transaction: tx,
		NewBalance:  acct.Balance,
		Budget:      e.MonthlyBudget(snap, p.Date.MonthKey()),
	}

	res.Alert = e.checkBalance(acct)

	// Deposits to an already-achieved goal stay on the ledger but no
	// longer move the goal: achieved is one-way and further deposits are
	// a no-op, not an error.
	if goal != nil && goal.Status == snapshot.GoalActive {
		goal.Accumulated += p.Amount
		if goal.Accumulated >= goal.TargetAmount {
			goal.Accumulated = goal.TargetAmount
			goal.Status = snapshot.GoalAchieved
			res.GoalAchieved = goal

			e.log.Info("goal achieved", "goal", goal.Name, "target", goal.TargetAmount)
		}
	}

	return res, nil
}

func (e *Engine) checkBalance(acct *snapshot.Account) *BalanceAlert {
	threshold := acct.MinBalance
	if threshold == 0 {
		threshold = e.lowBalance
	}

	if acct.Balance >= threshold {
		return nil
	}

	severity := "warning"
	if acct.Balance < 0 {
		severity = "critical"
	}

	return &BalanceAlert{
		AccountID:   acct.ID,
		AccountName: acct.Name,
		Balance:     acct.Balance,
		MinBalance:  threshold,
		Severity:    severity,
	}
}

// CorrectionResult reports the audit pair appended by a correction.
type CorrectionResult struct {
	Reversal    *snapshot.Transaction `json:"reversal"`
	Replacement *snapshot.Transaction `json:"replacement"`
	NewBalance  int64                 `json:"newBalance"`
}

// Correct replaces a recorded transaction without mutating history: it
// appends a compensating reversal of the original and then a replacement
// entry, both pointing back at the corrected id.
func (e *Engine) Correct(snap *snapshot.Snapshot, txID uuid.UUID, p ApplyParams) (*CorrectionResult, error) {
	orig := snap.Transaction(txID)
	if orig == nil {
		return nil, ErrTransactionNotFound
	}

	if orig.CorrectionOf != nil {
		return nil, invalid("transactionId", "cannot correct a correction entry")
	}

	// Validate the replacement before touching the log so a rejected
	// correction leaves no half-applied reversal behind.
	if _, _, err := e.validate(snap, p); err != nil {
		return nil, err
	}

	reversal, err := e.Apply(snap, ApplyParams{
		AccountID:     orig.AccountID,
		Amount:        -orig.Amount,
		Category:      orig.Category,
		Description:   "reversal: " + orig.Description,
		Date:          p.Date,
		PaymentMethod: orig.PaymentMethod,
		CorrectionOf:  &orig.ID,
	})
	if err != nil {
		return nil, err
	}

	replacement, err := e.Apply(snap, ApplyParams{
		AccountID:     p.AccountID,
		Amount:        p.Amount,
		Category:      p.Category,
		Description:   p.Description,
		Date:          p.Date,
		PaymentMethod: p.PaymentMethod,
		GoalID:        p.GoalID,
		CorrectionOf:  &orig.ID,
	})
	if err != nil {
		return nil, err
	}

	return &CorrectionResult{
		Reversal:    reversal.Transaction,
		Replacement: replacement.Transaction,
		NewBalance:  replacement.NewBalance,
	}, nil
}

// AccountParams describes a new bank account registration.
type AccountParams struct {
	Name           string
	BankName       string
	UPIApps        []string
	MinBalance     int64
	OpeningBalance int64
	Date           date.Date
}

// RegisterAccount creates an account. A non-zero opening balance is
// recorded as an ordinary income transaction so the balance invariant
// holds from the first entry.
func (e *Engine) RegisterAccount(snap *snapshot.Snapshot, p AccountParams) (*snapshot.Account, error) {
	if p.Name == "" {
		return nil, invalid("name", "must not be empty")
	}

	for _, a := range snap.Accounts {
		if a.Name == p.Name {
			return nil, invalid("name", "account %q already exists", p.Name)
		}
	}

	acct := &snapshot.Account{
		ID:         uuid.New(),
		Name:       p.Name,
		BankName:   p.BankName,
		UPIApps:    p.UPIApps,
		MinBalance: p.MinBalance,
	}

	snap.Accounts = append(snap.Accounts, acct)
	snap.Version++

	if p.OpeningBalance != 0 {
		if _, err := e.Apply(snap, ApplyParams{
			AccountID:   acct.ID,
			Amount:      p.OpeningBalance,
			Category:    category.Others,
			Description: "opening balance",
			Date:        p.Date,
		}); err != nil {
			return nil, err
		}
	}

	return acct, nil
}

// RemoveAccount deletes an account. Removal is rejected while any
// transaction still references the account.
func (e *Engine) RemoveAccount(snap *snapshot.Snapshot, id uuid.UUID) error {
	acct := snap.Account(id)
	if acct == nil {
		return ErrAccountNotFound
	}

	for _, t := range snap.Transactions {
		if t.AccountID == id {
			return invalid("accountId", "account %q still has recorded transactions", acct.Name)
		}
	}

	for i, a := range snap.Accounts {
		if a.ID == id {
			snap.Accounts = append(snap.Accounts[:i], snap.Accounts[i+1:]...)
			break
		}
	}

	snap.Version++

	return nil
}

// GoalParams describes a new savings goal.
type GoalParams struct {
	Name         string
	TargetAmount int64
	TargetDate   date.Date
	CreatedDate  date.Date
}

// CreateGoal registers a goal. The target date must be strictly after the
// creation date.
func (e *Engine) CreateGoal(snap *snapshot.Snapshot, p GoalParams) (*snapshot.Goal, error) {
	if p.Name == "" {
		return nil, invalid("name", "must not be empty")
	}

	if p.TargetAmount <= 0 {
		return nil, invalid("targetAmount", "must be positive")
	}

	if !p.TargetDate.After(p.CreatedDate) {
		return nil, invalid("targetDate", "must be after creation date")
	}

	goal := &snapshot.Goal{
		ID:           uuid.New(),
		Name:         p.Name,
		TargetAmount: p.TargetAmount,
		TargetDate:   p.TargetDate,
		CreatedDate:  p.CreatedDate,
		Status:       snapshot.GoalActive,
	}

	snap.Goals = append(snap.Goals, goal)
	snap.Version++

	return goal, nil
}

// AbandonGoal marks an active goal abandoned. Achieved goals stay
// achieved.
func (e *Engine) AbandonGoal(snap *snapshot.Snapshot, id uuid.UUID) error {
	goal := snap.Goal(id)
	if goal == nil {
		return ErrGoalNotFound
	}

	if goal.Status == snapshot.GoalAchieved {
		return invalid("goalId", "goal %q is already achieved", goal.Name)
	}

	goal.Status = snapshot.GoalAbandoned
	snap.Version++

	return nil
}

// GoalsAchieved counts achieved goals, the metric behind the goal
// achievement badge.
func GoalsAchieved(snap *snapshot.Snapshot) int {
	n := 0

	for _, g := range snap.Goals {
		if g.Status == snapshot.GoalAchieved {
			n++
		}
	}

	return n
}
