package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"todo-list/internal/errors"
	"todo-list/internal/repository/sqlite/migrations"

	_ "modernc.org/sqlite"
)

// Repository defines the interface for task store operations
type Repository interface {
	// Create operations
	CreateTask(ctx context.Context, task *Task) error

	// Read operations
	ListActiveTasks(ctx context.Context) ([]*Task, error)
	ListFinishedTasks(ctx context.Context) ([]*Task, error)

	// Update operations
	UpdateTaskFinished(ctx context.Context, id int64, finished bool) error
	FlushFinishedFlags(ctx context.Context, tasks []*Task) error

	// Delete operations
	DeleteFinishedTasks(ctx context.Context) error

	// Utility
	Close() error
}

// SQLiteRepository implements the Repository interface
type SQLiteRepository struct {
	db *sql.DB
}

// New opens (creating if absent) the backing database file and brings the
// schema up to date. An unreachable file yields a StoreUnavailable error; a
// failed migration yields a Schema error. Both are recoverable by the caller.
func New(dbPath string) (*SQLiteRepository, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, errors.NewStoreUnavailableError(dbPath, err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, errors.NewStoreUnavailableError(dbPath, err)
	}

	if err := migrations.RunMigrations(db); err != nil {
		db.Close()
		return nil, errors.NewSchemaError("run migrations", err)
	}

	return &SQLiteRepository{db: db}, nil
}

// Close closes the database connection
func (r *SQLiteRepository) Close() error {
	return r.db.Close()
}

// CreateTask appends a task row and back-fills its generated ID
func (r *SQLiteRepository) CreateTask(ctx context.Context, task *Task) error {
	query := `
	INSERT INTO tasks (name, finished, added_at)
	VALUES (?, ?, ?)`

	id, err := ExecuteWithLastInsertID(ctx, r.db, "insert task", query, task.Name, task.Finished, task.AddedAt)
	if err != nil {
		return err
	}

	task.ID = id
	return nil
}

// ListActiveTasks retrieves all tasks not yet marked finished, in insertion order
func (r *SQLiteRepository) ListActiveTasks(ctx context.Context) ([]*Task, error) {
	query := `
	SELECT id, name, finished, added_at
	FROM tasks
	WHERE finished = 0
	ORDER BY id ASC`

	return QueryMultiple(ctx, r.db, "list active tasks", query, ScanTasks)
}

// ListFinishedTasks retrieves all tasks marked finished, in insertion order
func (r *SQLiteRepository) ListFinishedTasks(ctx context.Context) ([]*Task, error) {
	query := `
	SELECT id, name, finished, added_at
	FROM tasks
	WHERE finished = 1
	ORDER BY id ASC`

	return QueryMultiple(ctx, r.db, "list finished tasks", query, ScanTasks)
}

// UpdateTaskFinished sets the finished flag for the task with the given ID.
// A missing row is a no-op, not an error.
func (r *SQLiteRepository) UpdateTaskFinished(ctx context.Context, id int64, finished bool) error {
	query := `UPDATE tasks SET finished = ? WHERE id = ?`
	return Execute(ctx, r.db, "update finished flag", query, finished, id)
}

// FlushFinishedFlags writes the finished flag of every given task in a single
// transaction. Either every flag lands or none do, so a mid-sequence failure
// cannot leave the store half synchronized.
func (r *SQLiteRepository) FlushFinishedFlags(ctx context.Context, tasks []*Task) error {
	if len(tasks) == 0 {
		return nil
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return errors.NewWriteError("begin flag flush", err)
	}

	query := `UPDATE tasks SET finished = ? WHERE id = ?`
	for _, task := range tasks {
		if err := Execute(ctx, tx, fmt.Sprintf("flush flag for task %d", task.ID), query, task.Finished, task.ID); err != nil {
			tx.Rollback()
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return errors.NewWriteError("commit flag flush", err)
	}
	return nil
}

// DeleteFinishedTasks removes every row flagged finished. Idempotent.
func (r *SQLiteRepository) DeleteFinishedTasks(ctx context.Context) error {
	query := `DELETE FROM tasks WHERE finished = 1`
	return Execute(ctx, r.db, "delete finished tasks", query)
}
