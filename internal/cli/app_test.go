package cli

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"todo-list/internal/logging"
	"todo-list/internal/repository/sqlite"
	"todo-list/internal/tasklist"
)

func newTestApp(t *testing.T) (*App, *bytes.Buffer) {
	dbPath := filepath.Join(t.TempDir(), "todo.db")
	repo, err := sqlite.New(dbPath)
	require.NoError(t, err)
	t.Cleanup(func() { repo.Close() })

	out := &bytes.Buffer{}
	manager := tasklist.NewManager(repo, logging.NewNop())
	return NewApp(manager, out), out
}

func TestAddCommand(t *testing.T) {
	app, out := newTestApp(t)

	err := app.Run(context.Background(), []string{"add", "buy", "milk"})
	require.NoError(t, err)
	assert.Contains(t, out.String(), "Added task: buy milk")

	out.Reset()
	err = app.Run(context.Background(), []string{"list"})
	require.NoError(t, err)
	assert.Contains(t, out.String(), "1. [ ] buy milk")
}

func TestAddCommand_RejectsEmptyName(t *testing.T) {
	app, _ := newTestApp(t)

	err := app.Run(context.Background(), []string{"add", "   "})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to add task")
}

func TestListCommand_Empty(t *testing.T) {
	app, out := newTestApp(t)

	err := app.Run(context.Background(), []string{"list"})
	require.NoError(t, err)
	assert.Contains(t, out.String(), "No active tasks")
}

func TestListCommand_All(t *testing.T) {
	app, out := newTestApp(t)

	require.NoError(t, app.Run(context.Background(), []string{"add", "chore"}))
	require.NoError(t, app.Run(context.Background(), []string{"done", "1"}))

	out.Reset()
	err := app.Run(context.Background(), []string{"list", "--all"})
	require.NoError(t, err)
	assert.Contains(t, out.String(), "No active tasks")
	assert.Contains(t, out.String(), "Finished tasks:")
	assert.Contains(t, out.String(), "1. chore")
}

func TestDoneCommand(t *testing.T) {
	app, out := newTestApp(t)

	for _, name := range []string{"A", "B", "C"} {
		require.NoError(t, app.Run(context.Background(), []string{"add", name}))
	}

	out.Reset()
	err := app.Run(context.Background(), []string{"done", "2"})
	require.NoError(t, err)

	output := out.String()
	assert.Contains(t, output, "Moved 1 task(s) to the finished history")
	assert.Contains(t, output, "1. [ ] A")
	assert.Contains(t, output, "2. [ ] C")
	assert.Contains(t, output, "1. B")
}

func TestDoneCommand_DuplicateNumbersCountOnce(t *testing.T) {
	app, out := newTestApp(t)

	require.NoError(t, app.Run(context.Background(), []string{"add", "only"}))

	out.Reset()
	err := app.Run(context.Background(), []string{"done", "1", "1"})
	require.NoError(t, err)
	assert.Contains(t, out.String(), "Moved 1 task(s)")
	assert.Contains(t, out.String(), "No active tasks")
}

func TestDoneCommand_InvalidNumber(t *testing.T) {
	app, _ := newTestApp(t)

	require.NoError(t, app.Run(context.Background(), []string{"add", "single"}))

	tests := []struct {
		name string
		args []string
	}{
		{"not a number", []string{"done", "x"}},
		{"zero", []string{"done", "0"}},
		{"out of range", []string{"done", "5"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := app.Run(context.Background(), tt.args)
			require.Error(t, err)
			assert.Contains(t, err.Error(), "failed to mark task done")
		})
	}
}

func TestDoneCommand_NoArguments(t *testing.T) {
	app, _ := newTestApp(t)

	err := app.Run(context.Background(), []string{"done"})
	assert.Error(t, err)
}

func TestClearCommand(t *testing.T) {
	app, out := newTestApp(t)

	require.NoError(t, app.Run(context.Background(), []string{"add", "finish me"}))
	require.NoError(t, app.Run(context.Background(), []string{"done", "1"}))

	out.Reset()
	err := app.Run(context.Background(), []string{"clear"})
	require.NoError(t, err)
	assert.Contains(t, out.String(), "Finished task history cleared")

	out.Reset()
	require.NoError(t, app.Run(context.Background(), []string{"list", "--all"}))
	assert.Contains(t, out.String(), "(none)")
}

func TestClearCommand_EmptyHistory(t *testing.T) {
	app, out := newTestApp(t)

	err := app.Run(context.Background(), []string{"clear"})
	require.NoError(t, err)
	assert.Contains(t, out.String(), "Finished task history cleared")
}

func TestMemoryOnlyWarning(t *testing.T) {
	out := &bytes.Buffer{}
	manager := tasklist.NewManager(nil, logging.NewNop())
	app := NewApp(manager, out)

	err := app.Run(context.Background(), []string{"list"})
	require.NoError(t, err)
	assert.Contains(t, out.String(), "Warning: the task database could not be opened")
}
