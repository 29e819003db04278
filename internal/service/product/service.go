package product

import (
	"context"
	"errors"
	"io"
	"log"
	"strings"

	"perfume-storefront/internal/cache"
	"perfume-storefront/internal/domain"
	productrepo "perfume-storefront/internal/repository/product"
)

type Service struct {
	repo     productrepo.Repository
	cache    cache.CatalogCache
	logger   *log.Logger
	featured []string
}

// New builds the catalog service. catalogCache may be nil, in which case every
// List goes to the store.
func New(repo productrepo.Repository, catalogCache cache.CatalogCache, logger *log.Logger, featured []string) *Service {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Service{repo: repo, cache: catalogCache, logger: logger, featured: featured}
}

// List returns the whole catalog, newest first.
func (s *Service) List(ctx context.Context) ([]domain.Product, error) {
	if s.cache != nil {
		products, err := s.cache.GetProducts(ctx)
		if err == nil {
			return products, nil
		}
		if !errors.Is(err, cache.ErrCacheMiss) {
			s.logger.Printf("product service: cache get error=%v", err)
		}
	}

	products, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.SetProducts(ctx, products); err != nil {
			s.logger.Printf("product service: cache set error=%v", err)
		}
	}
	return products, nil
}

func (s *Service) Get(ctx context.Context, id string) (*domain.Product, error) {
	return s.repo.GetByID(ctx, id)
}

// BrowseInput narrows the catalog listing. A nil Category keeps every family;
// an empty Query skips the name search.
type BrowseInput struct {
	Category *domain.Category
	Query    string
}

func (s *Service) Browse(ctx context.Context, in BrowseInput) ([]domain.Product, error) {
	products, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	products = FilterByCategory(products, in.Category)
	if strings.TrimSpace(in.Query) != "" {
		products = Search(products, in.Query)
	}
	return products, nil
}

// SearchByName is the search box: an empty query returns nothing.
func (s *Service) SearchByName(ctx context.Context, query string) ([]domain.Product, error) {
	products, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	return Search(products, query), nil
}

// Featured resolves the configured featured names against the catalog.
func (s *Service) Featured(ctx context.Context) ([]domain.Product, error) {
	products, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	return MatchFeatured(products, s.featured), nil
}

// Quote is the price of a product in one size.
type Quote struct {
	Product    domain.Product `json:"product"`
	Size       domain.Size    `json:"size"`
	PriceCents int64          `json:"priceCents"`
	Available  bool           `json:"available"`
}

func (s *Service) Price(ctx context.Context, id string, size domain.Size) (*Quote, error) {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if size == "" {
		size = domain.DefaultSize
	}
	return &Quote{
		Product:    *p,
		Size:       size,
		PriceCents: p.ResolvePrice(size),
		Available:  p.HasSize(size),
	}, nil
}

// Upsert writes a product and drops the cached catalog.
func (s *Service) Upsert(ctx context.Context, p domain.Product) (*domain.Product, error) {
	out, err := s.repo.Upsert(ctx, p)
	if err != nil {
		return nil, err
	}
	if s.cache != nil {
		if err := s.cache.Invalidate(ctx); err != nil {
			s.logger.Printf("product service: cache invalidate error=%v", err)
		}
	}
	return out, nil
}
