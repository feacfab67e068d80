// Package db holds small database/sql helpers shared by the persistence
// layer.
package db

import "database/sql"

// WithTx executes fn within a transaction: Begin, Rollback on error,
// Commit on success. The shown-progress store relies on this so each
// record batch is applied atomically.
func WithTx(db *sql.DB, fn func(tx *sql.Tx) error) error {
	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback() //nolint:errcheck // rollback on error is intentional

	if err := fn(tx); err != nil {
		return err
	}
	return tx.Commit()
}
