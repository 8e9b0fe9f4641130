package cli

import (
	"github.com/spf13/cobra"

	"github.com/andy/reconnect/internal/command"
	"github.com/andy/reconnect/internal/domain"
)

func newClientsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "clients",
		Short: "Manage clients",
		Long:  `List, find, add, edit, and delete clients. Indexes refer to the last shown list.`,
	}
	cmd.AddCommand(newClientsListCmd(), newClientsFindCmd(), newClientsAddCmd(), newClientsEditCmd(), newClientsDeleteCmd())
	return cmd
}

func newClientsListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all clients",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := run(cmd, command.ListClients{}, false); err != nil {
				return err
			}
			printClients(cmd.OutOrStdout(), appInstance.Model.FilteredClients())
			return nil
		},
	}
}

func newClientsFindCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "find [keyword]...",
		Short: "Show clients whose name contains any of the keywords",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := run(cmd, command.FindClients{Keywords: args}, false); err != nil {
				return err
			}
			printClients(cmd.OutOrStdout(), appInstance.Model.FilteredClients())
			return nil
		},
	}
}

func newClientsAddCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add [name]",
		Short: "Add a new client",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name, err := domain.NewClientName(args[0])
			if err != nil {
				return err
			}
			phoneRaw, _ := cmd.Flags().GetString("phone")
			phone, err := domain.NewPhone(phoneRaw)
			if err != nil {
				return err
			}
			var email domain.Email
			if v := optionalString(cmd, "email"); v != "" {
				if email, err = domain.NewEmail(v); err != nil {
					return err
				}
			}
			var address domain.Address
			if v := optionalString(cmd, "address"); v != "" {
				if address, err = domain.NewAddress(v); err != nil {
					return err
				}
			}

			client, err := domain.NewClient(name, phone, email, address)
			if err != nil {
				return err
			}
			return run(cmd, command.AddClient{Client: client}, true)
		},
	}
	cmd.Flags().String("phone", "", "Phone number (required)")
	cmd.MarkFlagRequired("phone")
	cmd.Flags().String("email", "", "Email address")
	cmd.Flags().String("address", "", "Home address")
	return cmd
}

func newClientsEditCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "edit [index]",
		Short: "Edit the client at the given index",
		Long:  `Edit a client. Pass an empty --email or --address to remove it.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			idx, err := indexArg(args)
			if err != nil {
				return err
			}
			var d command.EditClientDescriptor
			if d.Name, err = editField(cmd, "name", false, domain.NewClientName); err != nil {
				return err
			}
			if d.Phone, err = editField(cmd, "phone", false, domain.NewPhone); err != nil {
				return err
			}
			if d.Email, err = editField(cmd, "email", true, domain.NewEmail); err != nil {
				return err
			}
			if d.Address, err = editField(cmd, "address", true, domain.NewAddress); err != nil {
				return err
			}
			return run(cmd, command.EditClient{Index: idx, Descriptor: d}, true)
		},
	}
	cmd.Flags().String("name", "", "New name")
	cmd.Flags().String("phone", "", "New phone number")
	cmd.Flags().String("email", "", "New email (empty to remove)")
	cmd.Flags().String("address", "", "New address (empty to remove)")
	return cmd
}

func newClientsDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete [index]",
		Short: "Delete the client at the given index",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			idx, err := indexArg(args)
			if err != nil {
				return err
			}
			return run(cmd, command.DeleteClient{Index: idx}, true)
		},
	}
}
