package sqlite

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "todo-list/internal/errors"
)

func TestExecuteWithLastInsertID(t *testing.T) {
	repo := setupTestDB(t)

	id, err := ExecuteWithLastInsertID(context.Background(), repo.db, "insert task",
		`INSERT INTO tasks (name, finished, added_at) VALUES (?, ?, ?)`, "helper", false, int64(100))
	require.NoError(t, err)
	assert.Greater(t, id, int64(0))

	t.Run("statement failure maps to write error", func(t *testing.T) {
		_, err := ExecuteWithLastInsertID(context.Background(), repo.db, "insert task",
			`INSERT INTO no_such_table (name) VALUES (?)`, "helper")
		require.Error(t, err)
		assert.True(t, apperrors.IsErrorType(err, apperrors.ErrorTypeWrite))
	})
}

func TestExecute(t *testing.T) {
	repo := setupTestDB(t)

	t.Run("zero rows affected is not an error", func(t *testing.T) {
		err := Execute(context.Background(), repo.db, "update finished flag",
			`UPDATE tasks SET finished = 1 WHERE id = ?`, int64(12345))
		assert.NoError(t, err)
	})

	t.Run("statement failure maps to write error", func(t *testing.T) {
		err := Execute(context.Background(), repo.db, "update finished flag",
			`UPDATE no_such_table SET finished = 1`)
		require.Error(t, err)
		assert.True(t, apperrors.IsErrorType(err, apperrors.ErrorTypeWrite))
	})
}

func TestQueryMultiple(t *testing.T) {
	repo := setupTestDB(t)

	task := &Task{Name: "queryable", AddedAt: 100}
	require.NoError(t, repo.CreateTask(context.Background(), task))

	t.Run("scans matching rows", func(t *testing.T) {
		tasks, err := QueryMultiple(context.Background(), repo.db, "list active tasks",
			`SELECT id, name, finished, added_at FROM tasks WHERE finished = 0`, ScanTasks)
		require.NoError(t, err)
		assert.Len(t, tasks, 1)
	})

	t.Run("query failure maps to query error", func(t *testing.T) {
		_, err := QueryMultiple(context.Background(), repo.db, "list active tasks",
			`SELECT nope FROM no_such_table`, ScanTasks)
		require.Error(t, err)
		assert.True(t, apperrors.IsErrorType(err, apperrors.ErrorTypeQuery))
	})
}
