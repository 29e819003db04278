package newsletter

import (
	"context"
	"errors"
	"io"
	"log"
	"strings"

	"perfume-storefront/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const uniqueViolation = "23505"

type postgresRepo struct {
	pool   *pgxpool.Pool
	logger *log.Logger
}

// NewPostgres returns a Repository backed by Postgres.
func NewPostgres(pool *pgxpool.Pool, logger *log.Logger) Repository {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &postgresRepo{pool: pool, logger: logger}
}

// Create appends an active subscriber. A duplicate email yields
// domain.ErrAlreadySubscribed.
func (r *postgresRepo) Create(ctx context.Context, email string) (*domain.Subscriber, error) {
	const q = `
INSERT INTO newsletter_subscribers (email, active)
VALUES ($1, TRUE)
RETURNING id::text, email, active, created_at
`
	var s domain.Subscriber
	err := r.pool.QueryRow(ctx, q, strings.ToLower(email)).Scan(&s.ID, &s.Email, &s.Active, &s.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			r.logger.Printf("newsletter repo: create email=%s already subscribed", email)
			return nil, domain.ErrAlreadySubscribed
		}
		r.logger.Printf("newsletter repo: create email=%s error=%v", email, err)
		return nil, err
	}
	r.logger.Printf("newsletter repo: created id=%s", s.ID)
	return &s, nil
}

func (r *postgresRepo) GetByEmail(ctx context.Context, email string) (*domain.Subscriber, error) {
	const q = `
SELECT id::text, email, active, created_at
FROM newsletter_subscribers
WHERE lower(email) = lower($1)
LIMIT 1
`
	var s domain.Subscriber
	if err := r.pool.QueryRow(ctx, q, email).Scan(&s.ID, &s.Email, &s.Active, &s.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &s, nil
}
