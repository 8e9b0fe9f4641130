package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/andy/reconnect/internal/command"
)

// run executes c, reports the outcome and, for mutating commands, saves
// the address book.
func run(cmd *cobra.Command, c command.Command, mutates bool) error {
	res, err := appInstance.Execute(c)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "✓ %s\n", res.Feedback)
	for _, o := range res.Cascade {
		if o.Err != nil {
			fmt.Fprintf(out, "  ! could not update %s [%s]: %v\n", o.Kind, o.Reference, o.Err)
			continue
		}
		fmt.Fprintf(out, "  ↳ updated %s [%s]\n", o.Kind, o.Reference)
	}

	if mutates {
		if err := appInstance.Save(contextOf(cmd)); err != nil {
			return err
		}
	}
	return nil
}
