package cart

import (
	"context"

	"perfume-storefront/internal/domain"
)

// Store keeps one cart per browsing session. Get returns an empty cart, not
// an error, for a session that has none yet.
type Store interface {
	Get(ctx context.Context, sessionID string) (*domain.Cart, error)
	Save(ctx context.Context, sessionID string, cart *domain.Cart) error
	Delete(ctx context.Context, sessionID string) error
}
