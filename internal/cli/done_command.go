package cli

import (
	"context"
	"fmt"
	"strconv"

	"todo-list/internal/errors"
)

// DoneCommand handles the done command: it toggles the given task numbers and
// runs the flush-partition-reload sequence, the same composition a GUI frame
// performs when checkboxes are ticked and the delete button is pressed.
type DoneCommand struct {
	app          *App
	errorHandler *ErrorHandler
}

// NewDoneCommand creates a new done command handler
func NewDoneCommand(app *App) *DoneCommand {
	return &DoneCommand{
		app:          app,
		errorHandler: NewErrorHandler(),
	}
}

// Execute runs the done command
func (c *DoneCommand) Execute(ctx context.Context, args []string) error {
	if len(args) < 1 {
		return errors.NewValidationError("usage: todo done <number>...", nil)
	}

	active, _ := c.app.initialize(ctx)

	// The manager's Toggle contract requires in-range indices, so every
	// argument is checked against the just-rendered list first. Duplicates
	// are dropped so a repeated number cannot toggle a task back off.
	seen := make(map[int]bool)
	indices := make([]int, 0, len(args))
	for _, arg := range args {
		n, err := strconv.Atoi(arg)
		if err != nil || n < 1 || n > len(active) {
			return c.errorHandler.Handle("mark task done",
				errors.NewValidationError(fmt.Sprintf("no task numbered %q", arg), err))
		}
		if !seen[n-1] {
			seen[n-1] = true
			indices = append(indices, n-1)
		}
	}

	for _, index := range indices {
		c.app.manager.Toggle(index)
	}

	remaining, finished := c.app.manager.DeleteSelected(ctx)

	fmt.Fprintf(c.app.out, "Moved %d task(s) to the finished history\n", len(indices))
	c.app.printActive(remaining)
	fmt.Fprintln(c.app.out)
	c.app.printFinished(finished)

	return nil
}
