package cli

import (
	"github.com/spf13/cobra"

	"github.com/andy/reconnect/internal/command"
	"github.com/andy/reconnect/internal/domain"
)

func newDealsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "deals",
		Aliases: []string{"deal"},
		Short:   "Manage deals between clients",
	}
	cmd.AddCommand(newDealsListCmd(), newDealsFindCmd(), newDealsAddCmd(), newDealsUpdateCmd(), newDealsDeleteCmd())
	return cmd
}

func newDealsListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all deals",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := run(cmd, command.ListDeals{}, false); err != nil {
				return err
			}
			printDeals(cmd.OutOrStdout(), appInstance.Model.FilteredDeals())
			return nil
		},
	}
}

func newDealsFindCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "find [keyword]...",
		Short: "Show deals whose property, buyer, seller or status matches a keyword",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := run(cmd, command.FindDeals{Keywords: args}, false); err != nil {
				return err
			}
			printDeals(cmd.OutOrStdout(), appInstance.Model.FilteredDeals())
			return nil
		},
	}
}

func newDealsAddCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Record a deal for a property between a buyer and a seller",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				c   command.AddDeal
				err error
			)
			if c.PropertyIndex, err = indexFlag(cmd, "property"); err != nil {
				return err
			}
			if c.BuyerIndex, err = indexFlag(cmd, "buyer"); err != nil {
				return err
			}
			if c.SellerIndex, err = indexFlag(cmd, "seller"); err != nil {
				return err
			}
			if c.Price, err = domain.ParsePrice(optionalString(cmd, "price")); err != nil {
				return err
			}
			if c.Status, err = domain.ParseDealStatus(optionalString(cmd, "status")); err != nil {
				return err
			}
			return run(cmd, c, true)
		},
	}
	cmd.Flags().String("property", "", "Index of the property (required)")
	cmd.Flags().String("buyer", "", "Index of the buying client (required)")
	cmd.Flags().String("seller", "", "Index of the selling client (required)")
	cmd.Flags().String("price", "", "Agreed price in S$ thousands (required)")
	cmd.Flags().String("status", string(domain.DealStatusOpen), "OPEN, PENDING or CLOSED")
	for _, f := range []string{"property", "buyer", "seller", "price"} {
		cmd.MarkFlagRequired(f)
	}
	return cmd
}

func newDealsUpdateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update [index]",
		Short: "Update the deal at the given index",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			idx, err := indexArg(args)
			if err != nil {
				return err
			}
			var d command.UpdateDealDescriptor
			if d.Property, err = indexField(cmd, "property"); err != nil {
				return err
			}
			if d.Buyer, err = indexField(cmd, "buyer"); err != nil {
				return err
			}
			if d.Seller, err = indexField(cmd, "seller"); err != nil {
				return err
			}
			if d.Price, err = editField(cmd, "price", false, domain.ParsePrice); err != nil {
				return err
			}
			if d.Status, err = editField(cmd, "status", false, domain.ParseDealStatus); err != nil {
				return err
			}
			return run(cmd, command.UpdateDeal{Index: idx, Descriptor: d}, true)
		},
	}
	cmd.Flags().String("property", "", "Index of the new property")
	cmd.Flags().String("buyer", "", "Index of the new buyer")
	cmd.Flags().String("seller", "", "Index of the new seller")
	cmd.Flags().String("price", "", "New price in S$ thousands")
	cmd.Flags().String("status", "", "New status: OPEN, PENDING or CLOSED")
	return cmd
}

func newDealsDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete [index]",
		Short: "Delete the deal at the given index",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			idx, err := indexArg(args)
			if err != nil {
				return err
			}
			return run(cmd, command.DeleteDeal{Index: idx}, true)
		},
	}
}
