package domain

// CartLine is one product in a cart. Name, price, image and category are
// snapshotted from the catalog at the time of add, so a cart remains
// renderable even if the catalog entry changes later.
type CartLine struct {
	ProductID int64  `json:"id"`
	Name      string `json:"name"`
	Price     int64  `json:"price"` // minor currency units
	Image     string `json:"image"`
	Category  string `json:"category"`
	Quantity  int    `json:"quantity"`
}

// Cart is an ordered sequence of lines. Order is insertion order and is
// user-visible. At most one line per product ID.
type Cart []CartLine

// Find returns the index of the line for productID, or -1.
func (c Cart) Find(productID int64) int {
	for i := range c {
		if c[i].ProductID == productID {
			return i
		}
	}
	return -1
}

// Subtotal is the sum of price×quantity over all lines.
func (c Cart) Subtotal() int64 {
	var total int64
	for _, line := range c {
		total += line.Price * int64(line.Quantity)
	}
	return total
}

// Count is the total quantity across all lines.
func (c Cart) Count() int {
	count := 0
	for _, line := range c {
		count += line.Quantity
	}
	return count
}

// Clone returns an independent copy of the cart.
func (c Cart) Clone() Cart {
	if c == nil {
		return nil
	}
	out := make(Cart, len(c))
	copy(out, c)
	return out
}
