package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/andy/reconnect/internal/app"
)

var appInstance *app.App

// NewRootCmd builds a fresh command tree. The shell builds one per line so
// flag values never leak from one line to the next.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "reconnect",
		Short: "An address book for real estate agents",
		Long: `REconnect keeps track of clients, properties, deals and events.

By default, running reconnect without arguments launches the interactive TUI.
Use subcommands for CLI operations, or "reconnect shell" for a command prompt.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return launchTUI(cmd, args)
		},
	}

	root.AddCommand(newClientsCmd())
	root.AddCommand(newPropertiesCmd())
	root.AddCommand(newDealsCmd())
	root.AddCommand(newEventsCmd())
	root.AddCommand(newClearCmd())
	root.AddCommand(newShellCmd())
	root.AddCommand(newTUICmd())
	return root
}

// Execute runs the root command
func Execute(ctx context.Context) error {
	return NewRootCmd().ExecuteContext(ctx)
}

// SetApp sets the app instance for commands to use
func SetApp(a *app.App) {
	appInstance = a
}

func contextOf(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
