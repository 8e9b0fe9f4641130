package cli

import (
	"github.com/spf13/cobra"

	"github.com/andy/reconnect/internal/command"
	"github.com/andy/reconnect/internal/domain"
)

func newEventsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "events",
		Aliases: []string{"event"},
		Short:   "Manage meetings, viewings and signings",
	}
	cmd.AddCommand(newEventsListCmd(), newEventsFindCmd(), newEventsAddCmd(), newEventsEditCmd(), newEventsDeleteCmd())
	return cmd
}

func newEventsListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all events",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := run(cmd, command.ListEvents{}, false); err != nil {
				return err
			}
			printEvents(cmd.OutOrStdout(), appInstance.Model.FilteredEvents())
			return nil
		},
	}
}

func newEventsFindCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "find [keyword]...",
		Short: "Show events whose heading, property or client matches a keyword",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := run(cmd, command.FindEvents{Keywords: args}, false); err != nil {
				return err
			}
			printEvents(cmd.OutOrStdout(), appInstance.Model.FilteredEvents())
			return nil
		},
	}
}

func newEventsAddCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add [heading]",
		Short: "Schedule a MEETING, VIEWING, SIGNING or OTHERS event",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				c   command.AddEvent
				err error
			)
			if c.Heading, err = domain.ParseHeading(args[0]); err != nil {
				return err
			}
			if c.DateTime, err = domain.ParseDateTime(optionalString(cmd, "at")); err != nil {
				return err
			}
			if c.PropertyIndex, err = indexFlag(cmd, "property"); err != nil {
				return err
			}
			if c.ClientIndex, err = indexFlag(cmd, "client"); err != nil {
				return err
			}
			if c.Note, err = domain.NewNote(optionalString(cmd, "note")); err != nil {
				return err
			}
			return run(cmd, c, true)
		},
	}
	cmd.Flags().String("at", "", `Date and time, "YYYY-MM-DD HH:MM" (required)`)
	cmd.Flags().String("property", "", "Index of the property (required)")
	cmd.Flags().String("client", "", "Index of the client (required)")
	cmd.Flags().String("note", "", "Note")
	for _, f := range []string{"at", "property", "client"} {
		cmd.MarkFlagRequired(f)
	}
	return cmd
}

func newEventsEditCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "edit [index]",
		Short: "Edit the event at the given index",
		Long:  `Edit an event. Pass an empty --note to remove it.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			idx, err := indexArg(args)
			if err != nil {
				return err
			}
			var d command.EditEventDescriptor
			if d.Heading, err = editField(cmd, "heading", false, domain.ParseHeading); err != nil {
				return err
			}
			if d.DateTime, err = editField(cmd, "at", false, domain.ParseDateTime); err != nil {
				return err
			}
			if d.Property, err = indexField(cmd, "property"); err != nil {
				return err
			}
			if d.Client, err = indexField(cmd, "client"); err != nil {
				return err
			}
			if d.Note, err = editField(cmd, "note", true, domain.NewNote); err != nil {
				return err
			}
			return run(cmd, command.EditEvent{Index: idx, Descriptor: d}, true)
		},
	}
	cmd.Flags().String("heading", "", "New heading")
	cmd.Flags().String("at", "", `New date and time, "YYYY-MM-DD HH:MM"`)
	cmd.Flags().String("property", "", "Index of the new property")
	cmd.Flags().String("client", "", "Index of the new client")
	cmd.Flags().String("note", "", "New note (empty to remove)")
	return cmd
}

func newEventsDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete [index]",
		Short: "Delete the event at the given index",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			idx, err := indexArg(args)
			if err != nil {
				return err
			}
			return run(cmd, command.DeleteEvent{Index: idx}, true)
		},
	}
}
