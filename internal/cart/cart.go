// Package cart keeps a visitor's product quantities in their session and
// mirrors every change onto the signed-in user's profile.
package cart

import (
	"context"
	"fmt"

	"github.com/nikolayk812/sessioncart/internal/domain"
	"github.com/nikolayk812/sessioncart/internal/port"
	"github.com/nikolayk812/sessioncart/internal/session"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

const (
	SessionKey = "cart"

	DefaultQuantity = 1
)

// Cart is bound to one session and one user for the span of a request.
// It is not safe for concurrent use.
type Cart struct {
	session    *session.Session
	user       domain.User
	quantities domain.Quantities

	profiles port.ProfileSync
	catalog  port.ProductCatalog

	logger zerolog.Logger
}

type Option func(*Cart)

func WithLogger(logger zerolog.Logger) Option {
	return func(c *Cart) {
		c.logger = logger
	}
}

func New(sess *session.Session, user domain.User, profiles port.ProfileSync, catalog port.ProductCatalog, opts ...Option) (*Cart, error) {
	if sess == nil {
		return nil, fmt.Errorf("session is nil")
	}
	if profiles == nil {
		return nil, fmt.Errorf("profiles is nil")
	}
	if catalog == nil {
		return nil, fmt.Errorf("catalog is nil")
	}

	quantities, ok, err := session.Load[domain.Quantities](sess, SessionKey)
	if err != nil {
		return nil, fmt.Errorf("session.Load: %w", err)
	}
	if !ok || quantities == nil {
		quantities = make(domain.Quantities)
		sess.Set(SessionKey, quantities)
	}

	c := &Cart{
		session:    sess,
		user:       user,
		quantities: quantities,
		profiles:   profiles,
		catalog:    catalog,
		logger:     zerolog.Nop(),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c, nil
}

// Add puts ref in the cart with quantity. A product already in the cart
// keeps its quantity; use Update to change it.
func (c *Cart) Add(ctx context.Context, ref domain.ProductRef, quantity int) error {
	id := ref.ProductID()

	if _, ok := c.quantities[id]; !ok {
		c.quantities[id] = quantity
	}

	c.logger.Debug().
		Str("product_id", id.String()).
		Int("quantity", c.quantities[id]).
		Msg("cart add")

	return c.save(ctx)
}

// Update sets the quantity of ref, present or not, and returns the live mapping.
func (c *Cart) Update(ctx context.Context, ref domain.ProductRef, quantity int) (domain.Quantities, error) {
	id := ref.ProductID()
	c.quantities[id] = quantity

	c.logger.Debug().
		Str("product_id", id.String()).
		Int("quantity", quantity).
		Msg("cart update")

	if err := c.save(ctx); err != nil {
		return nil, err
	}

	return c.quantities, nil
}

func (c *Cart) Delete(ctx context.Context, ref domain.ProductRef) error {
	id := ref.ProductID()
	delete(c.quantities, id)

	c.logger.Debug().
		Str("product_id", id.String()).
		Msg("cart delete")

	return c.save(ctx)
}

// Len is the number of distinct products, not the sum of quantities.
func (c *Cart) Len() int {
	return len(c.quantities)
}

// Products returns the catalog entries for the cart's ids in catalog order.
// Ids the catalog does not know are left out.
func (c *Cart) Products(ctx context.Context) ([]domain.Product, error) {
	products, err := c.catalog.GetProducts(ctx, c.quantities.ProductIDs())
	if err != nil {
		return nil, fmt.Errorf("catalog.GetProducts: %w", err)
	}

	return products, nil
}

// Quantities returns the mapping held in the session. Changes made to it
// are seen by the cart but are not saved until the next mutation.
func (c *Cart) Quantities() domain.Quantities {
	return c.quantities
}

func (c *Cart) TotalPrice(ctx context.Context) (decimal.Decimal, error) {
	products, err := c.Products(ctx)
	if err != nil {
		return decimal.Zero, err
	}

	total := decimal.Zero
	for _, p := range products {
		total = total.Add(p.UnitPrice().Times(c.quantities[p.ID]))
	}

	return total, nil
}

func (c *Cart) save(ctx context.Context) error {
	c.session.MarkModified()

	if !c.user.IsAuthenticated() {
		return nil
	}

	if err := c.profiles.SaveOldCart(ctx, c.user.ID, c.quantities); err != nil {
		return fmt.Errorf("profiles.SaveOldCart: %w", err)
	}

	return nil
}
