package file

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/google/uuid"

	"github.com/finla-app/finla/internal/category"
	"github.com/finla-app/finla/internal/date"
	"github.com/finla-app/finla/internal/snapshot"
)

var txHeader = []string{
	"id", "account_id", "date", "amount", "category",
	"description", "payment_method", "goal_id", "correction_of",
}

func readTransactions(path string) ([]*snapshot.Transaction, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}

		return nil, fmt.Errorf("open transaction log: %w", err)
	}
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read transaction log: %w", err)
	}

	if len(records) <= 1 {
		return nil, nil
	}

	txs := make([]*snapshot.Transaction, 0, len(records)-1)

	for i, rec := range records[1:] {
		tx, err := decodeRecord(rec)
		if err != nil {
			return nil, fmt.Errorf("transaction log row %d: %w", i+2, err)
		}

		txs = append(txs, tx)
	}

	return txs, nil
}

func decodeRecord(rec []string) (*snapshot.Transaction, error) {
	if len(rec) != len(txHeader) {
		return nil, fmt.Errorf("want %d fields, got %d", len(txHeader), len(rec))
	}

	id, err := uuid.Parse(rec[0])
	if err != nil {
		return nil, fmt.Errorf("id: %w", err)
	}

	accountID, err := uuid.Parse(rec[1])
	if err != nil {
		return nil, fmt.Errorf("account_id: %w", err)
	}

	day, err := date.Parse(rec[2])
	if err != nil {
		return nil, err
	}

	amount, err := strconv.ParseInt(rec[3], 10, 64)
	if err != nil {
		return nil, fmt.Errorf("amount: %w", err)
	}

	tx := &snapshot.Transaction{
		ID:            id,
		AccountID:     accountID,
		Date:          day,
		Amount:        amount,
		Category:      category.Category(rec[4]),
		Description:   rec[5],
		PaymentMethod: rec[6],
	}

	if rec[7] != "" {
		goalID, err := uuid.Parse(rec[7])
		if err != nil {
			return nil, fmt.Errorf("goal_id: %w", err)
		}

		tx.GoalID = &goalID
	}

	if rec[8] != "" {
		correctionOf, err := uuid.Parse(rec[8])
		if err != nil {
			return nil, fmt.Errorf("correction_of: %w", err)
		}

		tx.CorrectionOf = &correctionOf
	}

	return tx, nil
}

func writeTransactions(path string, txs []*snapshot.Transaction) error {
	var buf bytes.Buffer

	w := csv.NewWriter(&buf)

	if err := w.Write(txHeader); err != nil {
		return fmt.Errorf("write transaction log header: %w", err)
	}

	for _, tx := range txs {
		rec := []string{
			tx.ID.String(),
			tx.AccountID.String(),
			tx.Date.String(),
			strconv.FormatInt(tx.Amount, 10),
			string(tx.Category),
			tx.Description,
			tx.PaymentMethod,
			"",
			"",
		}

		if tx.GoalID != nil {
			rec[7] = tx.GoalID.String()
		}

		if tx.CorrectionOf != nil {
			rec[8] = tx.CorrectionOf.String()
		}

		if err := w.Write(rec); err != nil {
			return fmt.Errorf("write transaction log row: %w", err)
		}
	}

	w.Flush()

	if err := w.Error(); err != nil {
		return fmt.Errorf("flush transaction log: %w", err)
	}

	return atomicWrite(path, buf.Bytes())
}
