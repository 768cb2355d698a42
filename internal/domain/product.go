package domain

import "time"

type ProductID string

// ProductRef is either a ProductID or a Product. Cart operations accept
// both and normalize to the id.
type ProductRef interface {
	ProductID() ProductID
	productRef()
}

func (id ProductID) ProductID() ProductID { return id }
func (ProductID) productRef() {}

func (id ProductID) String() string { return string(id) }

type Product struct {
	ID        ProductID
	Name      string
	Price     Money
	SalePrice Money
	IsSale    bool

	UpdatedAt time.Time
}

func (p Product) ProductID() ProductID { return p.ID }
func (Product) productRef() {}

// UnitPrice is the price a cart is charged for one unit.
func (p Product) UnitPrice() Money {
	if p.IsSale {
		return p.SalePrice
	}
	return p.Price
}
