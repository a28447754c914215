// Package dbpkg provides helpers to make db initialization and testing easier.
package dbpkg

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/go-petr/balance-ledger/db/migration"
)

// Setup sets up connection with database.
func Setup(driver, source string) (*sql.DB, error) {
	db, err := sql.Open(driver, source)
	if err != nil {
		return nil, err
	}

	if err = db.Ping(); err != nil {
		return nil, err
	}

	return db, nil
}

// ExecTx runs fn inside a single transaction.
//
// The transaction is committed only if fn returns nil, otherwise every write made
// through tx is rolled back.
func ExecTx(ctx context.Context, db *sql.DB, fn func(tx *sql.Tx) error) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}

	if err := fn(tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil && !errors.Is(rbErr, sql.ErrTxDone) {
			return fmt.Errorf("tx err: %w, rb err: %v", err, rbErr)
		}

		return err
	}

	return tx.Commit()
}

// migrationLockID serializes concurrent migrations of one database.
const migrationLockID = 7_240_001

// Migrate applies the embedded schema. It is safe to run repeatedly and concurrently.
func Migrate(ctx context.Context, db *sql.DB) error {
	return withMigrationLock(ctx, db, migration.Up)
}

// MigrateDown drops everything Migrate created.
func MigrateDown(ctx context.Context, db *sql.DB) error {
	return withMigrationLock(ctx, db, migration.Down)
}

func withMigrationLock(ctx context.Context, db *sql.DB, script string) error {
	conn, err := db.Conn(ctx)
	if err != nil {
		return err
	}
	defer conn.Close()

	if _, err := conn.ExecContext(ctx, "SELECT pg_advisory_lock($1)", migrationLockID); err != nil {
		return fmt.Errorf("acquire migration lock: %w", err)
	}

	_, err = conn.ExecContext(ctx, script)

	if _, unlockErr := conn.ExecContext(ctx, "SELECT pg_advisory_unlock($1)", migrationLockID); unlockErr != nil && err == nil {
		err = fmt.Errorf("release migration lock: %w", unlockErr)
	}

	return err
}
