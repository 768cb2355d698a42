package cart_test

import (
	"context"
	"maps"
	"slices"

	"github.com/nikolayk812/sessioncart/internal/domain"
	"github.com/nikolayk812/sessioncart/internal/port"
)

type profileSave struct {
	userID     string
	quantities domain.Quantities
}

type fakeProfiles struct {
	saves []profileSave
	err   error
}

func (f *fakeProfiles) SaveOldCart(_ context.Context, userID string, quantities domain.Quantities) error {
	if f.err != nil {
		return f.err
	}

	f.saves = append(f.saves, profileSave{userID: userID, quantities: maps.Clone(quantities)})
	return nil
}

func (f *fakeProfiles) last() profileSave {
	return f.saves[len(f.saves)-1]
}

type fakeCatalog struct {
	products map[domain.ProductID]domain.Product
	err      error

	requested []domain.ProductID
}

func newFakeCatalog(products ...domain.Product) *fakeCatalog {
	f := &fakeCatalog{products: make(map[domain.ProductID]domain.Product)}
	for _, p := range products {
		f.products[p.ID] = p
	}
	return f
}

func (f *fakeCatalog) GetProducts(_ context.Context, ids []domain.ProductID) ([]domain.Product, error) {
	if f.err != nil {
		return nil, f.err
	}

	f.requested = ids

	var result []domain.Product
	for _, id := range ids {
		if p, ok := f.products[id]; ok {
			result = append(result, p)
		}
	}

	slices.SortFunc(result, func(a, b domain.Product) int {
		switch {
		case a.ID < b.ID:
			return -1
		case a.ID > b.ID:
			return 1
		}
		return 0
	})

	return result, nil
}

var (
	_ port.ProfileSync    = (*fakeProfiles)(nil)
	_ port.ProductCatalog = (*fakeCatalog)(nil)
)
