package product

import (
	"strings"

	"perfume-storefront/internal/domain"
)

// FilterByCategory returns products unchanged when category is nil, otherwise
// only the products tagged with it.
func FilterByCategory(products []domain.Product, category *domain.Category) []domain.Product {
	if category == nil {
		return products
	}
	out := make([]domain.Product, 0, len(products))
	for _, p := range products {
		if p.Category == *category {
			out = append(out, p)
		}
	}
	return out
}

// Search matches query case-insensitively against product names. An empty
// query means no active search and yields no results.
func Search(products []domain.Product, query string) []domain.Product {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return []domain.Product{}
	}
	out := make([]domain.Product, 0)
	for _, p := range products {
		if strings.Contains(strings.ToLower(p.Name), q) {
			out = append(out, p)
		}
	}
	return out
}

// MatchFeatured resolves each target name to a catalog product. Every target
// tries, in order: exact name, the part before a dash or en dash, then
// substring containment either way. Within a stage the first product in
// catalog order wins. Targets with no match are skipped.
func MatchFeatured(products []domain.Product, targetNames []string) []domain.Product {
	out := make([]domain.Product, 0, len(targetNames))
	for _, target := range targetNames {
		if p, ok := matchOne(products, target); ok {
			out = append(out, p)
		}
	}
	return out
}

func matchOne(products []domain.Product, target string) (domain.Product, bool) {
	t := normalizeName(target)
	if t == "" {
		return domain.Product{}, false
	}

	for _, p := range products {
		if normalizeName(p.Name) == t {
			return p, true
		}
	}

	if tBase := beforeDash(t); tBase != "" {
		for _, p := range products {
			if beforeDash(normalizeName(p.Name)) == tBase {
				return p, true
			}
		}
	}

	for _, p := range products {
		name := normalizeName(p.Name)
		if name == "" {
			continue
		}
		if strings.Contains(name, t) || strings.Contains(t, name) {
			return p, true
		}
	}
	return domain.Product{}, false
}

func normalizeName(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// beforeDash returns the text before the first "-" or "–", trimmed.
func beforeDash(s string) string {
	if i := strings.IndexAny(s, "-–"); i >= 0 {
		s = s[:i]
	}
	return strings.TrimSpace(s)
}
