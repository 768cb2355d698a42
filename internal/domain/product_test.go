package domain_test

import (
	"testing"

	"github.com/nikolayk812/sessioncart/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"golang.org/x/text/currency"
)

func TestProductUnitPrice(t *testing.T) {
	regular := domain.Money{Amount: decimal.NewFromInt(20), Currency: currency.EUR}
	sale := domain.Money{Amount: decimal.NewFromInt(15), Currency: currency.EUR}

	tests := []struct {
		name    string
		product domain.Product
		want    decimal.Decimal
	}{
		{
			name:    "not on sale: regular price",
			product: domain.Product{ID: "p1", Price: regular, SalePrice: sale},
			want:    decimal.NewFromInt(20),
		},
		{
			name:    "on sale: sale price",
			product: domain.Product{ID: "p1", Price: regular, SalePrice: sale, IsSale: true},
			want:    decimal.NewFromInt(15),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.product.UnitPrice().Amount
			assert.True(t, tt.want.Equal(got), "want %s, got %s", tt.want, got)
		})
	}
}

func TestProductRef(t *testing.T) {
	var refs = []domain.ProductRef{
		domain.ProductID("42"),
		domain.Product{ID: "42", Name: "lamp"},
	}

	for _, ref := range refs {
		assert.Equal(t, domain.ProductID("42"), ref.ProductID())
	}
}

func TestMoneyTimes(t *testing.T) {
	m := domain.Money{Amount: decimal.RequireFromString("2.50"), Currency: currency.USD}

	assert.True(t, decimal.RequireFromString("7.5").Equal(m.Times(3)))
	assert.True(t, decimal.Zero.Equal(m.Times(0)))
}
