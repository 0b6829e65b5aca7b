package cli

import (
	"context"
	"fmt"
	"strings"

	"todo-list/internal/validation"
)

// AddCommand handles the add command
type AddCommand struct {
	app          *App
	validator    *validation.TaskValidator
	errorHandler *ErrorHandler
}

// NewAddCommand creates a new add command handler
func NewAddCommand(app *App) *AddCommand {
	return &AddCommand{
		app:          app,
		validator:    validation.NewTaskValidator(),
		errorHandler: NewErrorHandler(),
	}
}

// Execute runs the add command
func (c *AddCommand) Execute(ctx context.Context, args []string) error {
	name := strings.Join(args, " ")

	// The input buffer constraint lives here at the edge; the manager itself
	// only rejects empty names.
	cleaned, err := c.validator.GetValidTaskName(name)
	if err != nil {
		return c.errorHandler.Handle("add task", err)
	}

	c.app.initialize(ctx)

	if !c.app.manager.Add(ctx, cleaned) {
		fmt.Fprintln(c.app.out, "Nothing to add")
		return nil
	}

	fmt.Fprintf(c.app.out, "Added task: %s\n", cleaned)
	return nil
}
