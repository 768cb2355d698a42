package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/nikolayk812/sessioncart/internal/db"
	"github.com/nikolayk812/sessioncart/internal/domain"
	"github.com/nikolayk812/sessioncart/internal/port"
	"golang.org/x/text/currency"
)

type productRepository struct {
	q    *db.Queries
	pool *pgxpool.Pool
}

func NewProduct(pool *pgxpool.Pool) port.ProductRepository {
	return &productRepository{
		q:    db.New(pool),
		pool: pool,
	}
}

func NewProductWithTx(tx pgx.Tx) port.ProductRepository {
	return &productRepository{
		q:    db.New(tx),
		pool: nil, // use provided transaction instead
	}
}

func (r *productRepository) GetProducts(ctx context.Context, ids []domain.ProductID) ([]domain.Product, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	keys := make([]string, 0, len(ids))
	for _, id := range ids {
		keys = append(keys, id.String())
	}

	rows, err := r.q.GetProducts(ctx, keys)
	if err != nil {
		return nil, fmt.Errorf("q.GetProducts: %w", err)
	}

	products, err := mapProductRowsToDomain(rows)
	if err != nil {
		return nil, fmt.Errorf("mapProductRowsToDomain: %w", err)
	}

	return products, nil
}

func (r *productRepository) GetProduct(ctx context.Context, id domain.ProductID) (domain.Product, error) {
	if id == "" {
		return domain.Product{}, fmt.Errorf("productID is empty")
	}

	row, err := r.q.GetProduct(ctx, id.String())
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.Product{}, fmt.Errorf("product[%s]: %w", id, port.ErrProductNotFound)
	}
	if err != nil {
		return domain.Product{}, fmt.Errorf("q.GetProduct: %w", err)
	}

	product, err := mapProductRowToDomain(row)
	if err != nil {
		return domain.Product{}, fmt.Errorf("mapProductRowToDomain: %w", err)
	}

	return product, nil
}

// SaveProducts upserts all products in one transaction.
func (r *productRepository) SaveProducts(ctx context.Context, products []domain.Product) error {
	for _, p := range products {
		if p.ID == "" {
			return fmt.Errorf("productID is empty")
		}
	}

	_, err := withTx(ctx, r.pool, r.q, func(q *db.Queries) (struct{}, error) {
		for _, p := range products {
			err := q.UpsertProduct(ctx, db.UpsertProductParams{
				ID:              p.ID.String(),
				Name:            p.Name,
				PriceAmount:     p.Price.Amount,
				SalePriceAmount: p.SalePrice.Amount,
				PriceCurrency:   p.Price.Currency.String(),
				IsSale:          p.IsSale,
			})
			if err != nil {
				return struct{}{}, fmt.Errorf("q.UpsertProduct[%s]: %w", p.ID, err)
			}
		}

		return struct{}{}, nil
	})
	if err != nil {
		return fmt.Errorf("withTx: %w", err)
	}

	return nil
}

func mapProductRowToDomain(row db.Product) (domain.Product, error) {
	parsedCurrency, err := currency.ParseISO(row.PriceCurrency)
	if err != nil {
		return domain.Product{}, fmt.Errorf("currency[%s] is not valid: %w", row.PriceCurrency, err)
	}

	return domain.Product{
		ID:        domain.ProductID(row.ID),
		Name:      row.Name,
		Price:     domain.Money{Amount: row.PriceAmount, Currency: parsedCurrency},
		SalePrice: domain.Money{Amount: row.SalePriceAmount, Currency: parsedCurrency},
		IsSale:    row.IsSale,
		UpdatedAt: row.UpdatedAt,
	}, nil
}

func mapProductRowsToDomain(rows []db.Product) ([]domain.Product, error) {
	var products []domain.Product

	for _, row := range rows {
		product, err := mapProductRowToDomain(row)
		if err != nil {
			return nil, fmt.Errorf("mapProductRowToDomain: %w", err)
		}

		products = append(products, product)
	}

	return products, nil
}
