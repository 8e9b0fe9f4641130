package cli

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/andy/reconnect/internal/command"
)

func newClearCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Delete ALL data: clients, properties, deals and events",
		Long: `Delete every client, property, deal and event.

Examples:
  reconnect clear        # asks for confirmation
  reconnect clear --yes  # no questions asked`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			yes, _ := cmd.Flags().GetBool("yes")
			if !yes && !confirm(cmd, "This will delete ALL clients, properties, deals and events. Continue?") {
				fmt.Fprintln(cmd.OutOrStdout(), "Cancelled.")
				return nil
			}
			return run(cmd, command.ClearAll{}, true)
		},
	}
	cmd.Flags().BoolP("yes", "y", false, "Skip the confirmation prompt")
	return cmd
}

// confirm asks a yes/no question. The shell swaps in a readline prompt.
var confirm = func(cmd *cobra.Command, message string) bool {
	return confirmPrompt(cmd.InOrStdin(), cmd.OutOrStdout(), message)
}

func confirmPrompt(in io.Reader, out io.Writer, message string) bool {
	fmt.Fprintf(out, "%s [y/N] ", message)
	reader := bufio.NewReader(in)
	input, err := reader.ReadString('\n')
	if err != nil && input == "" {
		return false
	}
	input = strings.TrimSpace(strings.ToLower(input))
	return input == "y" || input == "yes"
}
