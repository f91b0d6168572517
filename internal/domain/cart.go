package domain

import "github.com/pkg/errors"

// CartItem is one line of a cart. Name, price, image and vendor are a
// snapshot taken when the product was first added; the line does not
// follow later catalog changes.
type CartItem struct {
	ProductID  string `json:"product_id"`
	Name       string `json:"name"`
	Price      int64  `json:"price"`
	Image      string `json:"image,omitempty"`
	VendorName string `json:"vendor_name"`
	Quantity   int64  `json:"quantity"`
}

// Cart holds the line items of a single shopping session. At most one
// line exists per product id, and lines keep their insertion order
// across quantity updates. Cart is not safe for concurrent use; a
// session owns exactly one cart.
type Cart struct {
	items []CartItem
}

func NewCart() *Cart {
	return &Cart{}
}

// Add merges quantity into the existing line for the product, or appends
// a new line snapshotting the product's current name, price, image and
// vendor. Quantity must be positive.
func (c *Cart) Add(p *Product, quantity int64) error {
	if quantity <= 0 {
		return errors.Wrapf(ErrInvalidQuantity, "add %d of product %s", quantity, p.ID)
	}
	for i := range c.items {
		if c.items[i].ProductID == p.ID {
			c.items[i].Quantity += quantity
			return nil
		}
	}
	c.items = append(c.items, CartItem{
		ProductID:  p.ID,
		Name:       p.Name,
		Price:      p.Price,
		Image:      p.Image,
		VendorName: p.VendorName,
		Quantity:   quantity,
	})
	return nil
}

// SetQuantity sets the line for productID to exactly quantity. Zero
// removes the line (a no-op when the product is not in the cart). A
// positive quantity for a product that is not in the cart is rejected
// with ErrItemNotFound rather than silently ignored; adding goes
// through Add. Negative quantities are always rejected.
func (c *Cart) SetQuantity(productID string, quantity int64) error {
	if quantity < 0 {
		return errors.Wrapf(ErrInvalidQuantity, "set product %s to %d", productID, quantity)
	}
	for i := range c.items {
		if c.items[i].ProductID != productID {
			continue
		}
		if quantity == 0 {
			c.items = append(c.items[:i], c.items[i+1:]...)
		} else {
			c.items[i].Quantity = quantity
		}
		return nil
	}
	if quantity == 0 {
		return nil
	}
	return errors.Wrapf(ErrItemNotFound, "product %s", productID)
}

// Remove drops the line for productID, if present.
func (c *Cart) Remove(productID string) {
	_ = c.SetQuantity(productID, 0)
}

// Clear empties the cart unconditionally.
func (c *Cart) Clear() {
	c.items = nil
}

// ItemCount is the sum of all line quantities, not the number of lines.
// This is the figure the cart badge shows.
func (c *Cart) ItemCount() int64 {
	var n int64
	for _, item := range c.items {
		n += item.Quantity
	}
	return n
}

// Lines returns the current line items in insertion order. The returned
// slice is a copy; mutating it does not touch the cart.
func (c *Cart) Lines() []CartItem {
	lines := make([]CartItem, len(c.items))
	copy(lines, c.items)
	return lines
}

func (c *Cart) IsEmpty() bool {
	return len(c.items) == 0
}
