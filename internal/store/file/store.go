// Package file implements the snapshot repository over a plain data
// directory: accounts, goals and stats as JSON, the transaction log as
// CSV. Writes go through a temp file and rename so a crash mid-save
// never leaves a torn file behind.
package file

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/finla-app/finla/internal/snapshot"
)

const (
	accountsFile     = "accounts.json"
	goalsFile        = "goals.json"
	statsFile        = "stats.json"
	transactionsFile = "transactions.csv"
)

type Store struct {
	dir string

	// freezeTokens seeds a brand-new snapshot when no data exists yet.
	freezeTokens int
}

func New(dir string, freezeTokens int) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}

	return &Store{dir: dir, freezeTokens: freezeTokens}, nil
}

// statsRecord is the on-disk shape of the stats file. The snapshot
// version rides along with the stats record.
type statsRecord struct {
	Version int64 `json:"version"`
	snapshot.UserStats
}

func (s *Store) Load(_ context.Context) (*snapshot.Snapshot, error) {
	snap := snapshot.New(s.freezeTokens)

	if err := s.readJSON(accountsFile, &snap.Accounts); err != nil {
		return nil, err
	}

	if err := s.readJSON(goalsFile, &snap.Goals); err != nil {
		return nil, err
	}

	var stats statsRecord

	stats.UserStats = snap.Stats

	if err := s.readJSON(statsFile, &stats); err != nil {
		return nil, err
	}

	snap.Stats = stats.UserStats
	snap.Version = stats.Version

	txs, err := readTransactions(filepath.Join(s.dir, transactionsFile))
	if err != nil {
		return nil, err
	}

	snap.Transactions = txs

	return snap, nil
}

func (s *Store) Save(_ context.Context, snap *snapshot.Snapshot) error {
	if err := s.writeJSON(accountsFile, snap.Accounts); err != nil {
		return err
	}

	if err := s.writeJSON(goalsFile, snap.Goals); err != nil {
		return err
	}

	if err := s.writeJSON(statsFile, statsRecord{Version: snap.Version, UserStats: snap.Stats}); err != nil {
		return err
	}

	return writeTransactions(filepath.Join(s.dir, transactionsFile), snap.Transactions)
}

// readJSON decodes a data file into v. A missing file is not an error:
// the zero value stands for an empty store.
func (s *Store) readJSON(name string, v any) error {
	data, err := os.ReadFile(filepath.Join(s.dir, name))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}

		return fmt.Errorf("read %s: %w", name, err)
	}

	if len(data) == 0 {
		return nil
	}

	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("decode %s: %w", name, err)
	}

	return nil
}

func (s *Store) writeJSON(name string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encode %s: %w", name, err)
	}

	return atomicWrite(filepath.Join(s.dir, name), data)
}

// atomicWrite writes via a temp file in the same directory and renames
// it over the target.
func atomicWrite(path string, data []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}

	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)

		return fmt.Errorf("write %s: %w", path, err)
	}

	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("close %s: %w", path, err)
	}

	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("rename %s: %w", path, err)
	}

	return nil
}
