package testutil

import (
	"context"
	"database/sql"
	"fmt"
	"sync/atomic"

	"github.com/mbaumgart/recap/internal/db"
)

// FailOnNthExecUoW runs transactions like the real unit of work but returns
// Err from the Nth write statement inside the transaction. Reads pass through
// untouched. Used to drive the rollback path of multi-write operations such
// as promoting a place alternative.
//
// Writes are counted from 1, across the whole transaction.
type FailOnNthExecUoW struct {
	DB     *sql.DB
	FailOn int32
	Err    error
}

func (u *FailOnNthExecUoW) WithinTx(ctx context.Context, fn func(ctx context.Context, tx db.DBTX) error) error {
	tx, err := u.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}

	if fnErr := fn(ctx, &nthWriteFailer{DBTX: tx, failOn: u.FailOn, err: u.Err}); fnErr != nil {
		_ = tx.Rollback()
		return fnErr
	}
	return tx.Commit()
}

type nthWriteFailer struct {
	db.DBTX
	writes atomic.Int32
	failOn int32
	err    error
}

func (f *nthWriteFailer) ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	if f.writes.Add(1) == f.failOn {
		return nil, f.err
	}
	return f.DBTX.ExecContext(ctx, query, args...)
}
