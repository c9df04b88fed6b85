// Package postgres implements the snapshot repository over Postgres.
// Save rewrites the mutable tables and appends new log entries inside a
// single transaction, so a snapshot is either fully written or not at
// all.
package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/finla-app/finla/internal/category"
	"github.com/finla-app/finla/internal/date"
	"github.com/finla-app/finla/internal/snapshot"
)

type Store struct {
	db *sql.DB

	freezeTokens int
}

// Open connects, pings and returns a store. freezeTokens seeds a
// brand-new snapshot when the database is empty.
func Open(connStr string, freezeTokens int) (*Store, error) {
	db, err := sql.Open("pgx", connStr)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("pinging database: %w", err)
	}

	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	return &Store{db: db, freezeTokens: freezeTokens}, nil
}

func (s *Store) Close() error { return s.db.Close() }

func (s *Store) Load(ctx context.Context) (*snapshot.Snapshot, error) {
	snap := snapshot.New(s.freezeTokens)

	if err := s.loadAccounts(ctx, snap); err != nil {
		return nil, err
	}

	if err := s.loadTransactions(ctx, snap); err != nil {
		return nil, err
	}

	if err := s.loadGoals(ctx, snap); err != nil {
		return nil, err
	}

	if err := s.loadStats(ctx, snap); err != nil {
		return nil, err
	}

	return snap, nil
}

func (s *Store) loadAccounts(ctx context.Context, snap *snapshot.Snapshot) error {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, bank_name, upi_apps, min_balance, balance
		FROM accounts
		ORDER BY name
	`)
	if err != nil {
		return fmt.Errorf("loading accounts: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			a    snapshot.Account
			apps []byte
		)

		if err := rows.Scan(&a.ID, &a.Name, &a.BankName, &apps, &a.MinBalance, &a.Balance); err != nil {
			return fmt.Errorf("scanning account: %w", err)
		}

		if len(apps) > 0 {
			if err := json.Unmarshal(apps, &a.UPIApps); err != nil {
				return fmt.Errorf("decoding upi apps: %w", err)
			}
		}

		snap.Accounts = append(snap.Accounts, &a)
	}

	return rows.Err()
}

func (s *Store) loadTransactions(ctx context.Context, snap *snapshot.Snapshot) error {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, account_id, amount, category, description, date,
		       payment_method, goal_id, correction_of
		FROM transactions
		ORDER BY seq
	`)
	if err != nil {
		return fmt.Errorf("loading transactions: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			t   snapshot.Transaction
			cat string
			day time.Time
		)

		if err := rows.Scan(
			&t.ID, &t.AccountID, &t.Amount, &cat, &t.Description, &day,
			&t.PaymentMethod, &t.GoalID, &t.CorrectionOf,
		); err != nil {
			return fmt.Errorf("scanning transaction: %w", err)
		}

		t.Category = category.Category(cat)
		t.Date = date.New(day.Date())

		snap.Transactions = append(snap.Transactions, &t)
	}

	return rows.Err()
}

func (s *Store) loadGoals(ctx context.Context, snap *snapshot.Snapshot) error {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, target_amount, target_date, created_date,
		       accumulated_amount, status
		FROM goals
		ORDER BY created_date
	`)
	if err != nil {
		return fmt.Errorf("loading goals: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			g               snapshot.Goal
			status          string
			target, created time.Time
		)

		if err := rows.Scan(&g.ID, &g.Name, &g.TargetAmount, &target, &created, &g.Accumulated, &status); err != nil {
			return fmt.Errorf("scanning goal: %w", err)
		}

		g.TargetDate = date.New(target.Date())
		g.CreatedDate = date.New(created.Date())
		g.Status = snapshot.GoalStatus(status)

		snap.Goals = append(snap.Goals, &g)
	}

	return rows.Err()
}

func (s *Store) loadStats(ctx context.Context, snap *snapshot.Snapshot) error {
	var (
		stats        = &snap.Stats
		lastLogged   sql.NullTime
		achievements []byte
		categories   []byte
	)

	err := s.db.QueryRowContext(ctx, `
		SELECT version, streak, longest_streak, last_logged, karma, level,
		       achievements, freeze_tokens, total_transactions,
		       categories_used, total_karma_earned
		FROM user_stats
		WHERE id = 1
	`).Scan(
		&snap.Version, &stats.Streak, &stats.LongestStreak, &lastLogged,
		&stats.Karma, &stats.Level, &achievements, &stats.FreezeTokens,
		&stats.TotalTransactions, &categories, &stats.TotalKarmaEarned,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil
		}

		return fmt.Errorf("loading user stats: %w", err)
	}

	if lastLogged.Valid {
		stats.LastLogged = date.New(lastLogged.Time.Date())
	}

	if len(achievements) > 0 {
		if err := json.Unmarshal(achievements, &stats.Achievements); err != nil {
			return fmt.Errorf("decoding achievements: %w", err)
		}
	}

	if len(categories) > 0 {
		if err := json.Unmarshal(categories, &stats.CategoriesUsed); err != nil {
			return fmt.Errorf("decoding categories used: %w", err)
		}
	}

	return nil
}
