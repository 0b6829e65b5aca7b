package cli

import (
	"context"

	"github.com/spf13/cobra"
)

// RootCommand represents the base command when called without any subcommands
type RootCommand struct {
	cmd *cobra.Command
	app *App
}

// NewRootCommand creates the root cobra command and wires up the subcommands
func NewRootCommand(app *App) *RootCommand {
	root := &RootCommand{app: app}

	root.cmd = &cobra.Command{
		Use:   "todo",
		Short: "A command-line to-do list",
		Long: `todo keeps a list of tasks in a local SQLite database.

EXAMPLES:
  todo add "buy milk"          # Add a new task
  todo list                    # Show active tasks
  todo list --all              # Show active and finished tasks
  todo done 1 3                # Mark tasks 1 and 3 finished and archive them
  todo clear                   # Delete the finished task history

CONFIGURATION:
  TODO_DB_DIR                  Database directory (default: ~/.todo)
  TODO_DB_FILENAME             Database filename (default: todo.db)
  TODO_APP_TIMEOUT             Command timeout (default: 30s)
  TODO_DEBUG                   Enable debug logging when set

If the database cannot be opened the session continues in memory only and a
warning is printed once.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.addSubcommands()

	return root
}

// Execute runs the root command
func (r *RootCommand) Execute(ctx context.Context, args []string) error {
	r.cmd.SetArgs(args)
	return r.cmd.ExecuteContext(ctx)
}

// addSubcommands registers all subcommands
func (r *RootCommand) addSubcommands() {
	r.cmd.AddCommand(newListCobraCommand(r.app))
	r.cmd.AddCommand(newAddCobraCommand(r.app))
	r.cmd.AddCommand(newDoneCobraCommand(r.app))
	r.cmd.AddCommand(newClearCobraCommand(r.app))
}

func newListCobraCommand(app *App) *cobra.Command {
	var showAll bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Show active tasks",
		RunE: func(cmd *cobra.Command, args []string) error {
			return NewListCommand(app).Execute(cmd.Context(), showAll)
		},
	}
	cmd.Flags().BoolVar(&showAll, "all", false, "also show finished tasks")

	return cmd
}

func newAddCobraCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "add <name>",
		Short: "Add a new task",
		RunE: func(cmd *cobra.Command, args []string) error {
			return NewAddCommand(app).Execute(cmd.Context(), args)
		},
	}
}

func newDoneCobraCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "done <number>...",
		Short: "Mark tasks finished and move them to the history",
		RunE: func(cmd *cobra.Command, args []string) error {
			return NewDoneCommand(app).Execute(cmd.Context(), args)
		},
	}
}

func newClearCobraCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Delete the finished task history",
		RunE: func(cmd *cobra.Command, args []string) error {
			return NewClearCommand(app).Execute(cmd.Context())
		},
	}
}
