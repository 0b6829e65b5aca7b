package cli

import (
	"context"
	"fmt"
	"io"

	"todo-list/internal/domain"
	"todo-list/internal/tasklist"
)

// App represents the command-line presentation adapter. It translates manager
// state into printed rows and user arguments into manager operations.
type App struct {
	manager *tasklist.Manager
	out     io.Writer
}

// NewApp creates a new CLI application instance with dependency injection
func NewApp(manager *tasklist.Manager, out io.Writer) *App {
	return &App{
		manager: manager,
		out:     out,
	}
}

// Run executes the root command with the given arguments
func (a *App) Run(ctx context.Context, args []string) error {
	root := NewRootCommand(a)
	return root.Execute(ctx, args)
}

// initialize loads the manager state and surfaces the memory-only warning once
func (a *App) initialize(ctx context.Context) (active, finished []domain.Task) {
	active, finished, ok := a.manager.Initialize(ctx)
	if !ok {
		fmt.Fprintln(a.out, "Warning: the task database could not be opened; changes this session will not be saved.")
	}
	return active, finished
}

// printActive prints the active list as numbered checkbox rows
func (a *App) printActive(tasks []domain.Task) {
	if len(tasks) == 0 {
		fmt.Fprintln(a.out, "No active tasks")
		return
	}
	for i, task := range tasks {
		box := " "
		if task.Finished {
			box = "x"
		}
		fmt.Fprintf(a.out, "%d. [%s] %s\n", i+1, box, task.Name)
	}
}

// printFinished prints the finished history section
func (a *App) printFinished(tasks []domain.Task) {
	fmt.Fprintln(a.out, "Finished tasks:")
	if len(tasks) == 0 {
		fmt.Fprintln(a.out, "  (none)")
		return
	}
	for i, task := range tasks {
		fmt.Fprintf(a.out, "  %d. %s\n", i+1, task.Name)
	}
}
