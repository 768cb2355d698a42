package repository_test

import (
	"context"
	"fmt"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/nikolayk812/sessioncart/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"golang.org/x/text/currency"
)

func startPostgres(ctx context.Context) (*postgres.PostgresContainer, string, error) {
	postgresContainer, err := postgres.Run(ctx, "postgres:17.6-alpine3.22",
		postgres.BasicWaitStrategies(),
		postgres.WithInitScripts(
			"../migrations/01_products.up.sql",
			"../migrations/02_profiles.up.sql",
			"../migrations/03_sessions.up.sql"),
	)
	if err != nil {
		return nil, "", fmt.Errorf("postgres.Run: %w", err)
	}

	connStr, err := postgresContainer.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		return nil, "", fmt.Errorf("pc.ConnectionString: %w", err)
	}

	return postgresContainer, connStr, nil
}

func randomProduct() domain.Product {
	unit := randomCurrency()

	return domain.Product{
		ID:        domain.ProductID(gofakeit.UUID()),
		Name:      gofakeit.ProductName(),
		Price:     domain.Money{Amount: decimal.NewFromFloat(gofakeit.Price(10, 100)).Round(2), Currency: unit},
		SalePrice: domain.Money{Amount: decimal.NewFromFloat(gofakeit.Price(1, 10)).Round(2), Currency: unit},
		IsSale:    gofakeit.Bool(),
	}
}

func randomCurrency() currency.Unit {
	var (
		result currency.Unit
		err    error
	)

	for {
		// tag is not a recognized currency
		result, err = currency.ParseISO(gofakeit.CurrencyShort())
		if err == nil {
			break
		}
	}

	return result
}
