package newsletter

import (
	"context"

	"perfume-storefront/internal/domain"
)

type Repository interface {
	Create(ctx context.Context, email string) (*domain.Subscriber, error)
	GetByEmail(ctx context.Context, email string) (*domain.Subscriber, error)
}
