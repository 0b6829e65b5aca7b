package domain

import "time"

// Task represents a to-do item in the domain model.
// This is a pure domain model without database-specific concerns.
type Task struct {
	ID       int64
	Name     string
	Finished bool
	AddedAt  time.Time
}

// NewTask creates a new active Task with the given name and creation time.
func NewTask(name string, addedAt time.Time) Task {
	return Task{
		Name:    name,
		AddedAt: addedAt,
	}
}

// IsValid checks if the task has valid data.
func (t Task) IsValid() bool {
	return t.Name != ""
}

// String returns the task name for display purposes.
func (t Task) String() string {
	return t.Name
}
