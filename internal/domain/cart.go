package domain

// CartLine is one entry in a cart. Two lines are the same line when both the
// product id and the selected size match; an empty size is its own bucket.
type CartLine struct {
	Product  Product `json:"product"`
	Quantity int     `json:"quantity"`
	Size     Size    `json:"size,omitempty"`
}

// UnitPriceCents is the price of one item of this line.
func (l CartLine) UnitPriceCents() int64 {
	return l.Product.ResolvePrice(l.Size)
}

// TotalCents is unit price times quantity.
func (l CartLine) TotalCents() int64 {
	return l.UnitPriceCents() * int64(l.Quantity)
}

func (l CartLine) matches(productID string, size Size) bool {
	return l.Product.ID == productID && l.Size == size
}

// MaxLineQuantity caps the quantity of a single cart line.
const MaxLineQuantity = 99

// Cart is an ordered set of lines. Every line held has 1 <= Quantity <= MaxLineQuantity.
// The zero value is an empty cart ready to use.
type Cart struct {
	Lines []CartLine `json:"lines"`
}

// Add puts quantity items of product in the given size into the cart, merging
// into an existing line with the same identity. A nil product is ignored. A
// merge that would take the line past MaxLineQuantity fails and changes nothing.
func (c *Cart) Add(product *Product, quantity int, size Size) error {
	if product == nil {
		return nil
	}
	if quantity < 1 || quantity > MaxLineQuantity {
		return ErrInvalidQuantity
	}
	if i := c.index(product.ID, size); i >= 0 {
		if c.Lines[i].Quantity > MaxLineQuantity-quantity {
			return ErrInvalidQuantity
		}
		c.Lines[i].Quantity += quantity
		return nil
	}
	c.Lines = append(c.Lines, CartLine{Product: *product, Quantity: quantity, Size: size})
	return nil
}

// UpdateQuantity sets the quantity of the matching line. Zero removes the line.
// Updating a line that is not in the cart changes nothing.
func (c *Cart) UpdateQuantity(productID string, quantity int, size Size) error {
	if quantity < 0 || quantity > MaxLineQuantity {
		return ErrInvalidQuantity
	}
	if quantity == 0 {
		c.Remove(productID, size)
		return nil
	}
	if i := c.index(productID, size); i >= 0 {
		c.Lines[i].Quantity = quantity
	}
	return nil
}

// Remove deletes the matching line if present.
func (c *Cart) Remove(productID string, size Size) {
	i := c.index(productID, size)
	if i < 0 {
		return
	}
	c.Lines = append(c.Lines[:i], c.Lines[i+1:]...)
}

// Clear empties the cart.
func (c *Cart) Clear() {
	c.Lines = nil
}

// TotalItemCount sums quantities across lines.
func (c *Cart) TotalItemCount() int {
	n := 0
	for _, l := range c.Lines {
		n += l.Quantity
	}
	return n
}

// TotalPrice sums price times quantity across lines, in cents.
func (c *Cart) TotalPrice() int64 {
	var total int64
	for _, l := range c.Lines {
		total += l.TotalCents()
	}
	return total
}

// Snapshot returns a copy of the lines that later cart mutations do not affect.
func (c *Cart) Snapshot() []CartLine {
	out := make([]CartLine, len(c.Lines))
	copy(out, c.Lines)
	return out
}

// IsEmpty reports whether the cart has no lines.
func (c *Cart) IsEmpty() bool {
	return len(c.Lines) == 0
}

func (c *Cart) index(productID string, size Size) int {
	for i, l := range c.Lines {
		if l.matches(productID, size) {
			return i
		}
	}
	return -1
}
