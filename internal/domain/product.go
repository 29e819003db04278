package domain

import "strings"

// Size is a bottle size a product can be sold in.
type Size string

const (
	Size15ml  Size = "15ml"
	Size35ml  Size = "35ml"
	Size100ml Size = "100ml"
)

// DefaultSize is preselected on the product detail view.
const DefaultSize = Size35ml

// Sizes lists every size in display order.
var Sizes = []Size{Size15ml, Size35ml, Size100ml}

// ParseSize accepts "15ml", "15ML", " 35ml " and returns false for anything else.
// An empty string parses to the empty Size, meaning "no size selected".
func ParseSize(s string) (Size, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return "", true
	}
	for _, size := range Sizes {
		if string(size) == s {
			return size, true
		}
	}
	return "", false
}

type Product struct {
	ID          string         `json:"id"`
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Category    Category       `json:"category"`
	PriceCents  int64          `json:"priceCents"`
	SizePrices  map[Size]int64 `json:"sizePrices,omitempty"`
	ImageURL    string         `json:"image,omitempty"`
	Notes       []string       `json:"notes,omitempty"`
}

// Variant is one size/price combination of a product.
type Variant struct {
	Size       Size  `json:"size"`
	PriceCents int64 `json:"priceCents"`
	Available  bool  `json:"available"`
}

// ResolvePrice returns the price for size, falling back to the base price.
// A zero size price counts as missing. The result is 0 only when the product
// has neither.
func (p Product) ResolvePrice(size Size) int64 {
	if size != "" {
		if price, ok := p.SizePrices[size]; ok && price > 0 {
			return price
		}
	}
	if p.PriceCents > 0 {
		return p.PriceCents
	}
	return 0
}

// HasSize reports whether the product carries an explicit price for size.
func (p Product) HasSize(size Size) bool {
	price, ok := p.SizePrices[size]
	return ok && price > 0
}

// Variants lists every size with its resolved price. Sizes without an explicit
// price are reported unavailable so clients can disable them.
func (p Product) Variants() []Variant {
	out := make([]Variant, 0, len(Sizes))
	for _, size := range Sizes {
		out = append(out, Variant{
			Size:       size,
			PriceCents: p.ResolvePrice(size),
			Available:  p.HasSize(size),
		})
	}
	return out
}
