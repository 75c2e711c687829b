// Package entity contains the core business objects of the storefront.
package entity

import (
	"math"

	"github.com/google/uuid"
)

// CartItem is one product-plus-quantity line within a cart. The product fields
// are a snapshot taken at add time; price is denormalized onto the line so
// totals survive later catalog changes.
type CartItem struct {
	ID        string    `json:"id"`         // Line identifier: a local uuid for guest lines, the server's id for remote lines.
	ProductID int64     `json:"product_id"` // Backend product reference.
	Name      string    `json:"name"`       // Product name at add time.
	Price     float64   `json:"price"`      // Unit price at add time.
	Image     string    `json:"image"`      // Product image path for rendering.
	Quantity  int       `json:"qty"`        // Always >= 1; a line dropped to 0 is removed, not retained.
}

// LineTotal returns price x quantity rounded to two decimal places.
func (i *CartItem) LineTotal() float64 {
	return roundPrice(i.Price * float64(i.Quantity))
}

// CartTotals is the derived summary of a cart, recomputed on demand and never cached.
type CartTotals struct {
	ItemCount  int     `json:"item_count"`  // Sum of line quantities.
	TotalPrice float64 `json:"total_price"` // Sum of line totals; no separate tax line.
}

// Cart is an ordered sequence of line items. The same shape backs both the
// guest cart (browser-local analogue) and the cached copy of the remote cart.
type Cart struct {
	Items []*CartItem `json:"items"`
}

// AddItem merges the quantity into an existing line for the same product, or
// appends a new line. Quantities below 1 are rejected.
func (c *Cart) AddItem(product Product, quantity int) bool {
	if quantity < 1 {
		return false
	}

	for _, item := range c.Items {
		if item.ProductID == product.ID {
			item.Quantity += quantity

			return true
		}
	}

	c.Items = append(c.Items, &CartItem{
		ID:        uuid.NewString(),
		ProductID: product.ID,
		Name:      product.Name,
		Price:     product.Price,
		Image:     product.Image,
		Quantity:  quantity,
	})

	return true
}

// UpdateQuantity overwrites a line's quantity. Values below 1 leave the line
// unchanged; a missing line reports false.
func (c *Cart) UpdateQuantity(itemID string, quantity int) bool {
	if quantity < 1 {
		return false
	}

	for _, item := range c.Items {
		if item.ID == itemID {
			item.Quantity = quantity

			return true
		}
	}

	return false
}

// RemoveItem filters the line out; reports whether it was present.
func (c *Cart) RemoveItem(itemID string) bool {
	for i, item := range c.Items {
		if item.ID == itemID {
			c.Items = append(c.Items[:i], c.Items[i+1:]...)

			return true
		}
	}

	return false
}

// Clear empties the cart.
func (c *Cart) Clear() {
	c.Items = nil
}

// IsEmpty reports whether the cart holds no lines.
func (c *Cart) IsEmpty() bool {
	return c == nil || len(c.Items) == 0
}

// Totals derives the item count and total price from the current lines.
func (c *Cart) Totals() CartTotals {
	totals := CartTotals{}
	if c == nil {
		return totals
	}

	var sum float64
	for _, item := range c.Items {
		totals.ItemCount += item.Quantity
		sum += item.Price * float64(item.Quantity)
	}
	totals.TotalPrice = roundPrice(sum)

	return totals
}

// Clone returns a deep copy so cached snapshots cannot be mutated by callers.
func (c *Cart) Clone() *Cart {
	if c == nil {
		return nil
	}

	clone := &Cart{Items: make([]*CartItem, len(c.Items))}
	for i, item := range c.Items {
		copied := *item
		clone.Items[i] = &copied
	}

	return clone
}

func roundPrice(v float64) float64 {
	return math.Round(v*100) / 100
}
