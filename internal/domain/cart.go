package domain

import (
	"encoding/json"
	"fmt"
)

// CartLine is one entry of the cart. Name and Price are captured from the
// menu row at add-time and never re-fetched.
type CartLine struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Price    int    `json:"price"`
	Quantity int    `json:"quantity"`
}

// Cart maps item id to its line. A line whose quantity has reached zero is
// pruned during the sync pass; a persisted cart never contains one.
type Cart map[string]*CartLine

func NewCart() Cart {
	return make(Cart)
}

// Total is the sum of price times quantity over all lines, in whole
// currency units.
func (c Cart) Total() int {
	total := 0
	for _, line := range c {
		total += line.Price * line.Quantity
	}
	return total
}

func (c Cart) IsEmpty() bool {
	return len(c) == 0
}

func (c Cart) Clone() Cart {
	clone := make(Cart, len(c))
	for id, line := range c {
		copied := *line
		clone[id] = &copied
	}
	return clone
}

// Serialize encodes the cart for persistence. The encoding round-trips:
// Deserialize(Serialize(c)) reconstructs an equal cart.
func (c Cart) Serialize() (string, error) {
	data, err := json.Marshal(c)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// DeserializeCart decodes a persisted cart. The persisted value is
// untrusted: a line that is null or carries a non-positive quantity fails
// the whole decode so callers fall back to an empty cart.
func DeserializeCart(data string) (Cart, error) {
	cart := NewCart()
	if err := json.Unmarshal([]byte(data), &cart); err != nil {
		return nil, err
	}
	for id, line := range cart {
		if line == nil {
			return nil, fmt.Errorf("cart line %q is null", id)
		}
		if line.Quantity < 1 {
			return nil, fmt.Errorf("cart line %q has quantity %d", id, line.Quantity)
		}
	}
	return cart, nil
}
