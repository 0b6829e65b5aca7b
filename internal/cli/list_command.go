package cli

import (
	"context"
	"fmt"
)

// ListCommand handles the list command
type ListCommand struct {
	app *App
}

// NewListCommand creates a new list command handler
func NewListCommand(app *App) *ListCommand {
	return &ListCommand{app: app}
}

// Execute runs the list command
func (c *ListCommand) Execute(ctx context.Context, showAll bool) error {
	active, finished := c.app.initialize(ctx)

	c.app.printActive(active)

	if showAll {
		fmt.Fprintln(c.app.out)
		c.app.printFinished(finished)
	}

	return nil
}
