package postgres

import (
	"context"
	"fmt"
)

var schema = []string{
	`CREATE TABLE IF NOT EXISTS accounts (
		id UUID PRIMARY KEY,
		name TEXT NOT NULL UNIQUE,
		bank_name TEXT NOT NULL DEFAULT '',
		upi_apps JSONB NOT NULL DEFAULT '[]',
		min_balance BIGINT NOT NULL DEFAULT 0,
		balance BIGINT NOT NULL DEFAULT 0
	)`,
	`CREATE TABLE IF NOT EXISTS transactions (
		seq BIGSERIAL,
		id UUID PRIMARY KEY,
		account_id UUID NOT NULL,
		amount BIGINT NOT NULL,
		category TEXT NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		date DATE NOT NULL,
		payment_method TEXT NOT NULL DEFAULT '',
		goal_id UUID,
		correction_of UUID
	)`,
	`CREATE TABLE IF NOT EXISTS goals (
		id UUID PRIMARY KEY,
		name TEXT NOT NULL,
		target_amount BIGINT NOT NULL,
		target_date DATE NOT NULL,
		created_date DATE NOT NULL,
		accumulated_amount BIGINT NOT NULL DEFAULT 0,
		status TEXT NOT NULL DEFAULT 'active'
	)`,
	`CREATE TABLE IF NOT EXISTS user_stats (
		id SMALLINT PRIMARY KEY,
		version BIGINT NOT NULL DEFAULT 0,
		streak INT NOT NULL DEFAULT 0,
		longest_streak INT NOT NULL DEFAULT 0,
		last_logged DATE,
		karma BIGINT NOT NULL DEFAULT 0,
		level INT NOT NULL DEFAULT 1,
		achievements JSONB NOT NULL DEFAULT '[]',
		freeze_tokens INT NOT NULL DEFAULT 0,
		total_transactions INT NOT NULL DEFAULT 0,
		categories_used JSONB NOT NULL DEFAULT '[]',
		total_karma_earned BIGINT NOT NULL DEFAULT 0
	)`,
}

// Migrate creates the tables when they do not exist yet.
func (s *Store) Migrate(ctx context.Context) error {
	for _, stmt := range schema {
		if _, err := s.db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("migrating schema: %w", err)
		}
	}

	return nil
}
