package cache

import (
	"context"
	"errors"

	"perfume-storefront/internal/domain"
)

// CatalogCache holds the full product list between store reads.
type CatalogCache interface {
	GetProducts(ctx context.Context) ([]domain.Product, error)
	SetProducts(ctx context.Context, products []domain.Product) error
	Invalidate(ctx context.Context) error
}

var ErrCacheMiss = errors.New("cache miss")
