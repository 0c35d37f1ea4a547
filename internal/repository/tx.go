package repository

import (
	"context"
	"database/sql"
	"fmt"
)

// WithTx runs fn inside a transaction.  The transaction is committed when
// fn returns nil and rolled back when it returns an error or panics; in
// every case the *sql.Tx is released before WithTx returns.
func WithTx(ctx context.Context, db *sql.DB, fn func(tx *sql.Tx) error) (err error) {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
		if err != nil {
			_ = tx.Rollback()
			return
		}
		if cerr := tx.Commit(); cerr != nil {
			err = fmt.Errorf("commit tx: %w", cerr)
		}
	}()
	err = fn(tx)
	return err
}
