package domain

import "strings"

// Category is the scent family a product belongs to.
type Category string

const (
	CategoryFloral   Category = "floral"
	CategoryWoody    Category = "woody"
	CategoryCitrus   Category = "citrus"
	CategoryOriental Category = "oriental"
)

// DefaultCategory is used for rows whose category is missing or unknown.
const DefaultCategory = CategoryFloral

// CategoryInfo describes a category for the "explore by category" listing.
type CategoryInfo struct {
	Key          Category `json:"key"`
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	ProductCount int      `json:"productCount"`
}

var categories = []CategoryInfo{
	{Key: CategoryFloral, Name: "Floral", Description: "Delicate & romantic"},
	{Key: CategoryWoody, Name: "Woody", Description: "Warm & earthy"},
	{Key: CategoryCitrus, Name: "Citrus", Description: "Fresh & energizing"},
	{Key: CategoryOriental, Name: "Oriental", Description: "Exotic & sensual"},
}

// Categories returns the fixed category list in display order.
func Categories() []CategoryInfo {
	out := make([]CategoryInfo, len(categories))
	copy(out, categories)
	return out
}

// ParseCategory matches a category tag case-insensitively.
func ParseCategory(s string) (Category, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	for _, c := range categories {
		if string(c.Key) == s {
			return c.Key, true
		}
	}
	return "", false
}
