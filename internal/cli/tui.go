package cli

import (
	"github.com/spf13/cobra"

	"github.com/andy/reconnect/internal/tui"
)

func newTUICmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Launch the terminal UI",
		Long:  `Browse and filter clients, properties, deals and events in a terminal UI.`,
		Args:  cobra.NoArgs,
		RunE:  launchTUI,
	}
}

func launchTUI(cmd *cobra.Command, args []string) error {
	return tui.Run(appInstance.Model)
}
