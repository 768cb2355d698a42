package domain

// Quantities maps a product to the quantity held in a cart.
// A missing key means zero.
type Quantities map[ProductID]int

// ProductIDs returns the key set in no particular order.
func (q Quantities) ProductIDs() []ProductID {
	ids := make([]ProductID, 0, len(q))
	for id := range q {
		ids = append(ids, id)
	}

	return ids
}

type User struct {
	ID string
}

func (u User) IsAuthenticated() bool {
	return u.ID != ""
}
