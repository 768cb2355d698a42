package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/nikolayk812/sessioncart/internal/domain"
	"github.com/nikolayk812/sessioncart/internal/repository"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
	"golang.org/x/text/currency"
)

func newProductsCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "products",
		Short: "Manage the product catalog",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "import FILE",
		Short: "Upsert products from a JSON array",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("os.Open: %w", err)
			}
			defer f.Close()

			products, err := readProducts(f)
			if err != nil {
				return fmt.Errorf("readProducts: %w", err)
			}

			if err := repository.NewProduct(a.pool).SaveProducts(cmd.Context(), products); err != nil {
				return fmt.Errorf("SaveProducts: %w", err)
			}

			a.logger.Info().Int("count", len(products)).Str("file", args[0]).Msg("products imported")

			return nil
		},
	})

	return cmd
}

func newProfilesCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profiles",
		Short: "Manage user profiles",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "create USER_ID",
		Short: "Create a profile so the user's cart can be mirrored",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := repository.NewProfile(a.pool).CreateProfile(cmd.Context(), args[0]); err != nil {
				return fmt.Errorf("CreateProfile: %w", err)
			}

			a.logger.Info().Str("user_id", args[0]).Msg("profile created")

			return nil
		},
	})

	return cmd
}

func newSessionsCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sessions",
		Short: "Manage stored sessions",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "purge",
		Short: "Delete expired sessions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			n, err := repository.NewSession(a.pool).DeleteExpired(cmd.Context())
			if err != nil {
				return fmt.Errorf("DeleteExpired: %w", err)
			}

			a.logger.Info().Int64("deleted", n).Msg("expired sessions purged")

			return nil
		},
	})

	return cmd
}

type productRecord struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"`
	SalePrice decimal.Decimal `json:"sale_price"`
	Currency  string          `json:"currency"`
	IsSale    bool            `json:"is_sale"`
}

func readProducts(r io.Reader) ([]domain.Product, error) {
	var records []productRecord
	if err := json.NewDecoder(r).Decode(&records); err != nil {
		return nil, fmt.Errorf("json.Decode: %w", err)
	}

	products := make([]domain.Product, 0, len(records))
	for i, rec := range records {
		if rec.ID == "" {
			return nil, fmt.Errorf("record[%d]: id is empty", i)
		}

		unit, err := currency.ParseISO(rec.Currency)
		if err != nil {
			return nil, fmt.Errorf("record[%d]: currency[%s] is not valid: %w", i, rec.Currency, err)
		}

		products = append(products, domain.Product{
			ID:        domain.ProductID(rec.ID),
			Name:      rec.Name,
			Price:     domain.Money{Amount: rec.Price, Currency: unit},
			SalePrice: domain.Money{Amount: rec.SalePrice, Currency: unit},
			IsSale:    rec.IsSale,
		})
	}

	return products, nil
}
