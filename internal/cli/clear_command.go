package cli

import (
	"context"
	"fmt"
)

// ClearCommand handles the clear command
type ClearCommand struct {
	app *App
}

// NewClearCommand creates a new clear command handler
func NewClearCommand(app *App) *ClearCommand {
	return &ClearCommand{app: app}
}

// Execute runs the clear command
func (c *ClearCommand) Execute(ctx context.Context) error {
	c.app.initialize(ctx)
	c.app.manager.ClearFinishedHistory(ctx)

	fmt.Fprintln(c.app.out, "Finished task history cleared")
	return nil
}
