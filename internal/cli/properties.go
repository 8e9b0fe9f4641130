package cli

import (
	"github.com/spf13/cobra"

	"github.com/andy/reconnect/internal/command"
	"github.com/andy/reconnect/internal/domain"
)

func newPropertiesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "properties",
		Aliases: []string{"property"},
		Short:   "Manage property listings",
		Long: `List, find, add, edit, and delete properties.

Renaming a property also updates the deals and events that refer to it.`,
	}
	cmd.AddCommand(newPropertiesListCmd(), newPropertiesFindCmd(), newPropertiesAddCmd(),
		newPropertiesEditCmd(), newPropertiesDeleteCmd())
	return cmd
}

func newPropertiesListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all properties",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := run(cmd, command.ListProperties{}, false); err != nil {
				return err
			}
			printProperties(cmd.OutOrStdout(), appInstance.Model.FilteredProperties())
			return nil
		},
	}
}

func newPropertiesFindCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "find [keyword]...",
		Short: "Show properties whose name or owner contains any of the keywords",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := run(cmd, command.FindProperties{Keywords: args}, false); err != nil {
				return err
			}
			printProperties(cmd.OutOrStdout(), appInstance.Model.FilteredProperties())
			return nil
		},
	}
}

func newPropertiesAddCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add [name]",
		Short: "Add a property owned by the client at --owner",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				c   command.AddProperty
				err error
			)
			if c.Name, err = domain.NewPropertyName(args[0]); err != nil {
				return err
			}
			if c.Address, err = domain.NewAddress(optionalString(cmd, "address")); err != nil {
				return err
			}
			if c.Price, err = domain.ParsePrice(optionalString(cmd, "price")); err != nil {
				return err
			}
			if c.Size, err = domain.ParseSize(optionalString(cmd, "size")); err != nil {
				return err
			}
			if c.Description, err = domain.NewDescription(optionalString(cmd, "description")); err != nil {
				return err
			}
			if c.OwnerIndex, err = indexFlag(cmd, "owner"); err != nil {
				return err
			}
			return run(cmd, c, true)
		},
	}
	cmd.Flags().String("address", "", "Street address (required)")
	cmd.Flags().String("price", "", "Asking price in S$ thousands (required)")
	cmd.Flags().String("owner", "", "Index of the owning client (required)")
	cmd.Flags().String("size", "", "Floor area in square feet")
	cmd.Flags().String("description", "", "Short description")
	cmd.MarkFlagRequired("address")
	cmd.MarkFlagRequired("price")
	cmd.MarkFlagRequired("owner")
	return cmd
}

func newPropertiesEditCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "edit [index]",
		Short: "Edit the property at the given index",
		Long: `Edit a property. Pass an empty --size or --description to remove it.

When the name changes, deals and events currently shown that refer to the
old name are moved to the new one.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			idx, err := indexArg(args)
			if err != nil {
				return err
			}
			var d command.EditPropertyDescriptor
			if d.Name, err = editField(cmd, "name", false, domain.NewPropertyName); err != nil {
				return err
			}
			if d.Address, err = editField(cmd, "address", false, domain.NewAddress); err != nil {
				return err
			}
			if d.Price, err = editField(cmd, "price", false, domain.ParsePrice); err != nil {
				return err
			}
			if d.Size, err = editField(cmd, "size", true, domain.ParseSize); err != nil {
				return err
			}
			if d.Description, err = editField(cmd, "description", true, domain.NewDescription); err != nil {
				return err
			}
			if d.Owner, err = indexField(cmd, "owner"); err != nil {
				return err
			}
			return run(cmd, command.EditProperty{Index: idx, Descriptor: d}, true)
		},
	}
	cmd.Flags().String("name", "", "New name")
	cmd.Flags().String("address", "", "New address")
	cmd.Flags().String("price", "", "New price in S$ thousands")
	cmd.Flags().String("size", "", "New size (empty to remove)")
	cmd.Flags().String("description", "", "New description (empty to remove)")
	cmd.Flags().String("owner", "", "Index of the new owning client")
	return cmd
}

func newPropertiesDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete [index]",
		Short: "Delete the property at the given index",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			idx, err := indexArg(args)
			if err != nil {
				return err
			}
			return run(cmd, command.DeleteProperty{Index: idx}, true)
		},
	}
}
