package entity

// CartItem is a product snapshot with the quantity being bought
type CartItem struct {
	Product  Product `json:"product"`
	Quantity int     `json:"quantity"`
}

// LineTotal returns price x quantity for the line
func (i CartItem) LineTotal() Cents {
	return i.Product.Price.Mul(i.Quantity)
}

// CartSummary holds the derived totals of a cart
type CartSummary struct {
	Subtotal  Cents `json:"subtotal"`
	Tax       Cents `json:"tax"`
	Total     Cents `json:"total"`
	ItemCount int   `json:"itemCount"`
}

// Cart is the ordered, session-local collection of cart items.
// At most one item exists per product id; quantities are always >= 1.
// Cart is not safe for concurrent use.
type Cart struct {
	items []CartItem
}

// NewCart creates an empty cart
func NewCart() *Cart {
	return &Cart{}
}

// Add increments the quantity of an existing line or appends a new one.
func (c *Cart) Add(product Product) {
	for i := range c.items {
		if c.items[i].Product.ID == product.ID {
			c.items[i].Quantity++
			return
		}
	}
	c.items = append(c.items, CartItem{Product: product, Quantity: 1})
}

// SetQuantity sets the quantity of a line; quantity <= 0 removes it.
func (c *Cart) SetQuantity(productID string, quantity int) {
	if quantity <= 0 {
		c.Remove(productID)
		return
	}
	for i := range c.items {
		if c.items[i].Product.ID == productID {
			c.items[i].Quantity = quantity
			return
		}
	}
}

// Remove deletes the line for productID, if present.
func (c *Cart) Remove(productID string) {
	for i := range c.items {
		if c.items[i].Product.ID == productID {
			c.items = append(c.items[:i], c.items[i+1:]...)
			return
		}
	}
}

// Clear empties the cart
func (c *Cart) Clear() {
	c.items = nil
}

// Items returns a copy of the cart lines in insertion order
func (c *Cart) Items() []CartItem {
	out := make([]CartItem, len(c.items))
	copy(out, c.items)
	return out
}

// Len returns the number of distinct lines
func (c *Cart) Len() int {
	return len(c.items)
}

// IsEmpty reports whether the cart has no lines
func (c *Cart) IsEmpty() bool {
	return len(c.items) == 0
}
