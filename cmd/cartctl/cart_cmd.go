package main

import (
	"fmt"
	"io"
	"slices"

	"github.com/nikolayk812/sessioncart/internal/cart"
	"github.com/nikolayk812/sessioncart/internal/domain"
	"github.com/spf13/cobra"
)

func newAddCmd(a *app) *cobra.Command {
	var quantity int

	cmd := &cobra.Command{
		Use:   "add PRODUCT_ID",
		Short: "Add a product, a product already in the cart keeps its quantity",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			var c *cart.Cart
			sess, err := a.withCart(ctx, func(cc *cart.Cart) error {
				c = cc
				return cc.Add(ctx, domain.ProductID(args[0]), quantity)
			})
			if err != nil {
				return err
			}

			return printQuantities(cmd.OutOrStdout(), sess.Key(), c.Quantities())
		},
	}

	cmd.Flags().IntVarP(&quantity, "quantity", "q", cart.DefaultQuantity, "quantity")

	return cmd
}

func newUpdateCmd(a *app) *cobra.Command {
	var quantity int

	cmd := &cobra.Command{
		Use:   "update PRODUCT_ID",
		Short: "Set the quantity of a product",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			var quantities domain.Quantities
			sess, err := a.withCart(ctx, func(c *cart.Cart) error {
				var err error
				quantities, err = c.Update(ctx, domain.ProductID(args[0]), quantity)
				return err
			})
			if err != nil {
				return err
			}

			return printQuantities(cmd.OutOrStdout(), sess.Key(), quantities)
		},
	}

	cmd.Flags().IntVarP(&quantity, "quantity", "q", 0, "quantity")
	_ = cmd.MarkFlagRequired("quantity")

	return cmd
}

func newDeleteCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "delete PRODUCT_ID",
		Short: "Remove a product from the cart",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			var c *cart.Cart
			sess, err := a.withCart(ctx, func(cc *cart.Cart) error {
				c = cc
				return cc.Delete(ctx, domain.ProductID(args[0]))
			})
			if err != nil {
				return err
			}

			return printQuantities(cmd.OutOrStdout(), sess.Key(), c.Quantities())
		},
	}
}

func newShowCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the cart with catalog prices and total",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			out := cmd.OutOrStdout()

			var (
				c        *cart.Cart
				products []domain.Product
			)
			sess, err := a.withCart(ctx, func(cc *cart.Cart) error {
				c = cc

				var err error
				products, err = cc.Products(ctx)
				return err
			})
			if err != nil {
				return err
			}

			total, err := c.TotalPrice(ctx)
			if err != nil {
				return err
			}

			if err := printQuantities(out, sess.Key(), c.Quantities()); err != nil {
				return err
			}

			for _, p := range products {
				price := p.UnitPrice()
				_, err := fmt.Fprintf(out, "%s\t%s\t%d x %s %s\n", p.ID, p.Name, c.Quantities()[p.ID], price.Amount, price.Currency)
				if err != nil {
					return err
				}
			}

			_, err = fmt.Fprintf(out, "items: %d\ntotal: %s\n", c.Len(), total)
			return err
		},
	}
}

func printQuantities(w io.Writer, sessionKey string, quantities domain.Quantities) error {
	if _, err := fmt.Fprintf(w, "session: %s\n", sessionKey); err != nil {
		return err
	}

	ids := quantities.ProductIDs()
	slices.Sort(ids)

	for _, id := range ids {
		if _, err := fmt.Fprintf(w, "%s: %d\n", id, quantities[id]); err != nil {
			return err
		}
	}

	return nil
}
