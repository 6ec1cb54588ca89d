package cart

import (
	"sort"

	"github.com/soundline/storefront/internal/transport"
)

// Cart mirrors a to-be-submitted order on the client side: a quantity map
// keyed by product id. It is a plain serializable value; all operations
// return a new Cart and never mutate the receiver. The server never treats
// it as authoritative — order creation reads the request body, not the
// stored cart.
type Cart struct {
	Items map[uint]int `json:"items"`
}

func New() Cart {
	return Cart{Items: map[uint]int{}}
}

func (c Cart) clone() Cart {
	out := Cart{Items: make(map[uint]int, len(c.Items))}
	for id, qty := range c.Items {
		out.Items[id] = qty
	}
	return out
}

// Add increases the quantity for a product. Non-positive deltas are ignored.
func (c Cart) Add(productID uint, qty int) Cart {
	if qty <= 0 {
		return c.clone()
	}
	out := c.clone()
	out.Items[productID] += qty
	return out
}

// SetQuantity pins a product's quantity; zero or below removes the line.
func (c Cart) SetQuantity(productID uint, qty int) Cart {
	out := c.clone()
	if qty <= 0 {
		delete(out.Items, productID)
		return out
	}
	out.Items[productID] = qty
	return out
}

func (c Cart) Remove(productID uint) Cart {
	out := c.clone()
	delete(out.Items, productID)
	return out
}

// Count is the total number of units across all lines.
func (c Cart) Count() int {
	n := 0
	for _, qty := range c.Items {
		n += qty
	}
	return n
}

func (c Cart) IsEmpty() bool {
	return len(c.Items) == 0
}

// Lines returns the cart contents in stable product-id order.
func (c Cart) Lines() []transport.CreateOrderItem {
	out := make([]transport.CreateOrderItem, 0, len(c.Items))
	for id, qty := range c.Items {
		out = append(out, transport.CreateOrderItem{ProductID: id, Quantity: qty})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ProductID < out[j].ProductID })
	return out
}
