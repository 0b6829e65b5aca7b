package sqlite

import (
	"context"
	"database/sql"

	"todo-list/internal/errors"
)

// Execer is satisfied by both *sql.DB and *sql.Tx so write helpers can run
// inside or outside a transaction.
type Execer interface {
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
}

// ExecuteWithLastInsertID executes an insert and returns the generated row ID
func ExecuteWithLastInsertID(ctx context.Context, execer Execer, operation string, query string, args ...interface{}) (int64, error) {
	result, err := execer.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, errors.NewWriteError(operation, err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, errors.NewWriteError(operation, err)
	}

	return id, nil
}

// Execute runs a write statement. Zero rows affected is not an error: updates
// and deletes against rows that no longer exist are valid no-ops here.
func Execute(ctx context.Context, execer Execer, operation string, query string, args ...interface{}) error {
	if _, err := execer.ExecContext(ctx, query, args...); err != nil {
		return errors.NewWriteError(operation, err)
	}
	return nil
}

// QueryMultiple executes a query that returns multiple rows and scans them
func QueryMultiple[T any](ctx context.Context, db *sql.DB, operation string, query string, scanFunc func(Rows) ([]*T, error), args ...interface{}) ([]*T, error) {
	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, errors.NewQueryError(operation, err)
	}
	defer rows.Close()

	results, err := scanFunc(rows)
	if err != nil {
		return nil, errors.NewQueryError(operation, err)
	}

	return results, nil
}
