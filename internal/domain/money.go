package domain

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
)

type Money struct {
	Amount   decimal.Decimal
	Currency currency.Unit
}

// Times returns the amount multiplied by a cart quantity.
func (m Money) Times(quantity int) decimal.Decimal {
	return m.Amount.Mul(decimal.NewFromInt(int64(quantity)))
}
