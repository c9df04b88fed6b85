package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/finla-app/finla/internal/snapshot"
)

func (s *Store) Save(ctx context.Context, snap *snapshot.Snapshot) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin save: %w", err)
	}
	defer tx.Rollback()

	if err := saveAccounts(ctx, tx, snap); err != nil {
		return err
	}

	if err := saveTransactions(ctx, tx, snap); err != nil {
		return err
	}

	if err := saveGoals(ctx, tx, snap); err != nil {
		return err
	}

	if err := saveStats(ctx, tx, snap); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit save: %w", err)
	}

	return nil
}

func saveAccounts(ctx context.Context, tx *sql.Tx, snap *snapshot.Snapshot) error {
	// Accounts are few; rewriting the table keeps removals simple.
	if _, err := tx.ExecContext(ctx, `DELETE FROM accounts`); err != nil {
		return fmt.Errorf("clearing accounts: %w", err)
	}

	for _, a := range snap.Accounts {
		apps, err := json.Marshal(a.UPIApps)
		if err != nil {
			return fmt.Errorf("encoding upi apps: %w", err)
		}

		if _, err := tx.ExecContext(ctx, `
			INSERT INTO accounts (id, name, bank_name, upi_apps, min_balance, balance)
			VALUES ($1, $2, $3, $4, $5, $6)
		`, a.ID, a.Name, a.BankName, apps, a.MinBalance, a.Balance); err != nil {
			return fmt.Errorf("saving account %s: %w", a.Name, err)
		}
	}

	return nil
}

func saveTransactions(ctx context.Context, tx *sql.Tx, snap *snapshot.Snapshot) error {
	// The log is append-only: existing rows never change, so conflicts
	// on id are rows already persisted by an earlier save.
	for _, t := range snap.Transactions {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO transactions
				(id, account_id, amount, category, description, date,
				 payment_method, goal_id, correction_of)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
			ON CONFLICT (id) DO NOTHING
		`,
			t.ID, t.AccountID, t.Amount, string(t.Category), t.Description,
			t.Date.Time(), t.PaymentMethod, t.GoalID, t.CorrectionOf,
		); err != nil {
			return fmt.Errorf("saving transaction %s: %w", t.ID, err)
		}
	}

	return nil
}

func saveGoals(ctx context.Context, tx *sql.Tx, snap *snapshot.Snapshot) error {
	if _, err := tx.ExecContext(ctx, `DELETE FROM goals`); err != nil {
		return fmt.Errorf("clearing goals: %w", err)
	}

	for _, g := range snap.Goals {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO goals
				(id, name, target_amount, target_date, created_date,
				 accumulated_amount, status)
			VALUES ($1, $2, $3, $4, $5, $6, $7)
		`,
			g.ID, g.Name, g.TargetAmount, g.TargetDate.Time(),
			g.CreatedDate.Time(), g.Accumulated, string(g.Status),
		); err != nil {
			return fmt.Errorf("saving goal %s: %w", g.Name, err)
		}
	}

	return nil
}

func saveStats(ctx context.Context, tx *sql.Tx, snap *snapshot.Snapshot) error {
	stats := snap.Stats

	achievements, err := json.Marshal(stats.Achievements)
	if err != nil {
		return fmt.Errorf("encoding achievements: %w", err)
	}

	categories, err := json.Marshal(stats.CategoriesUsed)
	if err != nil {
		return fmt.Errorf("encoding categories used: %w", err)
	}

	var lastLogged any
	if !stats.LastLogged.IsZero() {
		lastLogged = stats.LastLogged.Time()
	}

	if _, err := tx.ExecContext(ctx, `
		INSERT INTO user_stats
			(id, version, streak, longest_streak, last_logged, karma, level,
			 achievements, freeze_tokens, total_transactions,
			 categories_used, total_karma_earned)
		VALUES (1, $1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		ON CONFLICT (id) DO UPDATE SET
			version = EXCLUDED.version,
			streak = EXCLUDED.streak,
			longest_streak = EXCLUDED.longest_streak,
			last_logged = EXCLUDED.last_logged,
			karma = EXCLUDED.karma,
			level = EXCLUDED.level,
			achievements = EXCLUDED.achievements,
			freeze_tokens = EXCLUDED.freeze_tokens,
			total_transactions = EXCLUDED.total_transactions,
			categories_used = EXCLUDED.categories_used,
			total_karma_earned = EXCLUDED.total_karma_earned
	`,
		snap.Version, stats.Streak, stats.LongestStreak, lastLogged,
		stats.Karma, stats.Level, achievements, stats.FreezeTokens,
		stats.TotalTransactions, categories, stats.TotalKarmaEarned,
	); err != nil {
		return fmt.Errorf("saving user stats: %w", err)
	}

	return nil
}
