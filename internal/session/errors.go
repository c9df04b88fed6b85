package session

import "fmt"

// PersistenceError means the backing store failed. For saves the accepted
// mutation is retained in memory and the caller may retry via Flush; the
// engine never silently drops an accepted transaction.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("persistence %s failed: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error { return e.Err }
