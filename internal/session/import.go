package session

import (
	"context"
)

// RowResult is the per-row outcome of a bulk import. Accepted rows stay
// committed even when later rows fail; the batch is never all-or-nothing.
type RowResult struct {
	Row      int    `json:"row"`
	Accepted bool   `json:"accepted"`
	Reason   string `json:"reason,omitempty"`
}

// ImportResult summarizes one bulk import.
type ImportResult struct {
	Accepted int         `json:"accepted"`
	Rejected int         `json:"rejected"`
	Rows     []RowResult `json:"rows"`
}

// ImportBatch applies a sequence of independent single-transaction
// applications within one locked session. Streak and logging karma are
// collapsed to at most one increment for the calendar day: the first
// accepted row advances the streak and earns the logging karma, the rest
// only extend the ledger.
func (s *Service) ImportBatch(ctx context.Context, rows []TransactionParams) (*ImportResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap, err := s.current(ctx)
	if err != nil {
		return nil, err
	}

	res := &ImportResult{Rows: make([]RowResult, 0, len(rows))}
	first := true

	for i, row := range rows {
		if _, err := s.apply(snap, row, first); err != nil {
			res.Rejected++
			res.Rows = append(res.Rows, RowResult{Row: i + 1, Reason: err.Error()})

			continue
		}

		first = false
		res.Accepted++
		res.Rows = append(res.Rows, RowResult{Row: i + 1, Accepted: true})
	}

	s.log.Info("bulk import applied", "accepted", res.Accepted, "rejected", res.Rejected)

	if res.Accepted == 0 {
		return res, nil
	}

	if err := s.persist(ctx); err != nil {
		return res, err
	}

	return res, nil
}
