package category

import (
	"context"

	"perfume-storefront/internal/domain"
)

// ProductLister is the slice of the catalog service the category listing needs.
type ProductLister interface {
	List(ctx context.Context) ([]domain.Product, error)
}

type Service struct {
	products ProductLister
}

func New(products ProductLister) *Service {
	return &Service{products: products}
}

// List returns the four scent families in display order with the number of
// catalog products in each.
func (s *Service) List(ctx context.Context) ([]domain.CategoryInfo, error) {
	products, err := s.products.List(ctx)
	if err != nil {
		return nil, err
	}
	counts := make(map[domain.Category]int, 4)
	for _, p := range products {
		counts[p.Category]++
	}
	out := domain.Categories()
	for i := range out {
		out[i].ProductCount = counts[out[i].Key]
	}
	return out, nil
}
