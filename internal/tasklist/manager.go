package tasklist

import (
	"context"
	"strings"
	"time"

	"go.uber.org/zap"

	"todo-list/internal/domain"
	"todo-list/internal/repository/sqlite"
)

// Manager owns the in-memory active and finished task lists and keeps them
// reconciled with the task store. All mutation goes through its methods; the
// presentation layer renders whatever the accessors return.
//
// Store failures are never fatal. The in-memory lists stay authoritative for
// the rest of the session and every failure is logged, so the worst outcome of
// a broken store is data loss at restart, not a crash.
type Manager struct {
	repo   sqlite.Repository // nil when the session is memory-only
	mapper *domain.Mapper
	logger *zap.Logger
	now    func() time.Time

	active   []domain.Task
	finished []domain.Task
}

// NewManager creates a Manager backed by the given repository. A nil
// repository degrades the whole session to memory-only, which is how a store
// that could not be opened at startup is handled.
func NewManager(repo sqlite.Repository, logger *zap.Logger) *Manager {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Manager{
		repo:   repo,
		mapper: domain.NewMapper(),
		logger: logger,
		now:    time.Now,
	}
}

// MemoryOnly reports whether the session has no backing store.
func (m *Manager) MemoryOnly() bool {
	return m.repo == nil
}

// Initialize loads both lists from the store. It is called once at startup and
// is, besides DeleteSelected, the only point where the finished list is
// refreshed from storage. ok is false when the session is memory-only or a
// load failed; the caller surfaces that to the user once.
func (m *Manager) Initialize(ctx context.Context) (active, finished []domain.Task, ok bool) {
	if m.repo == nil {
		m.logger.Warn("no task store available, session is memory-only")
		return m.Active(), m.Finished(), false
	}

	ok = true

	dbActive, err := m.repo.ListActiveTasks(ctx)
	if err != nil {
		m.logger.Error("failed to load active tasks", zap.Error(err))
		ok = false
	} else {
		m.active = m.mapper.Task.FromDatabaseSlice(dbActive)
	}

	dbFinished, err := m.repo.ListFinishedTasks(ctx)
	if err != nil {
		m.logger.Error("failed to load finished tasks", zap.Error(err))
		ok = false
	} else {
		m.finished = m.mapper.Task.FromDatabaseSlice(dbFinished)
	}

	return m.Active(), m.Finished(), ok
}

// Add appends a new active task. Empty or whitespace-only names are a silent
// no-op and issue no store write. The in-memory append happens before the
// persistence attempt and is kept even when the insert fails.
func (m *Manager) Add(ctx context.Context, name string) bool {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return false
	}

	task := domain.NewTask(trimmed, m.now())
	m.active = append(m.active, task)

	if m.repo == nil {
		return true
	}

	dbTask := m.mapper.Task.ToDatabase(task)
	if err := m.repo.CreateTask(ctx, &dbTask); err != nil {
		m.logger.Error("failed to persist new task", zap.String("name", trimmed), zap.Error(err))
		return true
	}
	m.active[len(m.active)-1].ID = dbTask.ID

	return true
}

// Toggle flips the finished flag of the active task at the given position.
// Purely in-memory; flags reach the store in the next DeleteSelected. Callers
// must pass an index they are currently rendering; out of range panics.
func (m *Manager) Toggle(index int) {
	m.active[index].Finished = !m.active[index].Finished
}

// DeleteSelected flushes every active task's flag to the store, drops the
// finished ones from the active list (order of survivors preserved) and
// reloads the finished list wholesale from storage, so finished rows written
// by earlier sessions surface too.
func (m *Manager) DeleteSelected(ctx context.Context) (active, finished []domain.Task) {
	if m.repo != nil {
		dbTasks := make([]*sqlite.Task, len(m.active))
		for i := range m.active {
			dbTask := m.mapper.Task.ToDatabase(m.active[i])
			dbTasks[i] = &dbTask
		}
		if err := m.repo.FlushFinishedFlags(ctx, dbTasks); err != nil {
			m.logger.Error("failed to flush finished flags", zap.Error(err))
		}
	}

	removed := m.partitionActive()

	if !m.reloadFinished(ctx) {
		// Degraded sessions still move finished tasks to the history view.
		m.finished = append(m.finished, removed...)
	}

	return m.Active(), m.Finished()
}

// partitionActive removes finished tasks from the active list, keeping the
// relative order of survivors, and returns the removed tasks in order.
func (m *Manager) partitionActive() []domain.Task {
	var removed []domain.Task
	survivors := m.active[:0]
	for _, task := range m.active {
		if task.Finished {
			removed = append(removed, task)
		} else {
			survivors = append(survivors, task)
		}
	}
	m.active = survivors
	return removed
}

// reloadFinished replaces the finished list with a fresh query result.
// Returns false when there is no store or the query failed.
func (m *Manager) reloadFinished(ctx context.Context) bool {
	if m.repo == nil {
		return false
	}

	dbFinished, err := m.repo.ListFinishedTasks(ctx)
	if err != nil {
		m.logger.Error("failed to reload finished tasks", zap.Error(err))
		return false
	}

	m.finished = m.mapper.Task.FromDatabaseSlice(dbFinished)
	return true
}

// ClearFinishedHistory empties the finished list in memory first, then deletes
// the finished rows from the store. A failed delete is logged and not rolled
// back; the rows resurface at the next Initialize.
func (m *Manager) ClearFinishedHistory(ctx context.Context) {
	m.finished = nil

	if m.repo == nil {
		return
	}

	if err := m.repo.DeleteFinishedTasks(ctx); err != nil {
		m.logger.Error("failed to clear finished history", zap.Error(err))
	}
}

// Active returns a copy of the active task list.
func (m *Manager) Active() []domain.Task {
	return copyTasks(m.active)
}

// Finished returns a copy of the finished task list.
func (m *Manager) Finished() []domain.Task {
	return copyTasks(m.finished)
}

func copyTasks(tasks []domain.Task) []domain.Task {
	if tasks == nil {
		return nil
	}
	out := make([]domain.Task, len(tasks))
	copy(out, tasks)
	return out
}
