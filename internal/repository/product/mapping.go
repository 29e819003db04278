package product

import (
	"math"
	"strconv"
	"strings"

	"perfume-storefront/internal/domain"
)

// rawProduct mirrors a products row. Every column may be NULL in the store,
// so fields are pointers until toDomain applies defaults.
type rawProduct struct {
	ID          string
	Name        *string
	Description *string
	Price       *string
	Price15ml   *string
	Price35ml   *string
	Price100ml  *string
	Category    *string
	Notes       []string
	ImageURL    *string
}

func (r rawProduct) toDomain() domain.Product {
	category, ok := domain.ParseCategory(deref(r.Category))
	if !ok {
		category = domain.DefaultCategory
	}

	p := domain.Product{
		ID:          strings.TrimSpace(r.ID),
		Name:        strings.TrimSpace(deref(r.Name)),
		Description: deref(r.Description),
		Category:    category,
		PriceCents:  parseCents(deref(r.Price)),
		ImageURL:    strings.TrimSpace(deref(r.ImageURL)),
		Notes:       r.Notes,
	}

	sizes := map[domain.Size]*string{
		domain.Size15ml:  r.Price15ml,
		domain.Size35ml:  r.Price35ml,
		domain.Size100ml: r.Price100ml,
	}
	for size, raw := range sizes {
		if raw == nil {
			continue
		}
		if cents := parseCents(*raw); cents > 0 {
			if p.SizePrices == nil {
				p.SizePrices = make(map[domain.Size]int64, len(sizes))
			}
			p.SizePrices[size] = cents
		}
	}
	return p
}

// parseCents turns a decimal price such as "189" or "64.90" into cents.
// Unparseable or negative values become 0.
func parseCents(s string) int64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || f < 0 || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return int64(math.Round(f * 100))
}

// parseID accepts numeric ids given as strings ("7", " 7 ").
func parseID(id string) (int64, bool) {
	n, err := strconv.ParseInt(strings.TrimSpace(id), 10, 64)
	if err != nil || n <= 0 {
		return 0, false
	}
	return n, true
}

func sizePriceArg(p domain.Product, size domain.Size) *int64 {
	cents, ok := p.SizePrices[size]
	if !ok || cents <= 0 {
		return nil
	}
	return &cents
}

func nullIfEmpty(s string) *string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	return &s
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
