package port

import (
	"context"
	"errors"

	"github.com/nikolayk812/sessioncart/internal/domain"
)

var (
	ErrProfileNotFound = errors.New("profile not found")
	ErrProductNotFound = errors.New("product not found")
)

// ProfileSync mirrors a cart onto the owner's profile.
type ProfileSync interface {
	SaveOldCart(ctx context.Context, userID string, quantities domain.Quantities) error
}

type ProfileRepository interface {
	ProfileSync
	CreateProfile(ctx context.Context, userID string) error
	GetOldCart(ctx context.Context, userID string) (domain.Quantities, error)
}

// ProductCatalog returns the products among ids that exist, in catalog order.
type ProductCatalog interface {
	GetProducts(ctx context.Context, ids []domain.ProductID) ([]domain.Product, error)
}

type ProductRepository interface {
	ProductCatalog
	GetProduct(ctx context.Context, id domain.ProductID) (domain.Product, error)
	SaveProducts(ctx context.Context, products []domain.Product) error
}
