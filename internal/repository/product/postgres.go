package product

import (
	"context"
	"errors"
	"io"
	"log"

	"perfume-storefront/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const selectColumns = `
SELECT id::text, name, description, price::text, price_15ml::text, price_35ml::text, price_100ml::text, category, notes, image_url
FROM products
`

type postgresRepo struct {
	pool   *pgxpool.Pool
	logger *log.Logger
}

func NewPostgres(pool *pgxpool.Pool, logger *log.Logger) Repository {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &postgresRepo{pool: pool, logger: logger}
}

func (r *postgresRepo) List(ctx context.Context) ([]domain.Product, error) {
	rows, err := r.pool.Query(ctx, selectColumns+`ORDER BY id DESC`)
	if err != nil {
		r.logger.Printf("product repo: list error=%v", err)
		return nil, err
	}
	defer rows.Close()

	var result []domain.Product
	for rows.Next() {
		raw, err := scanRaw(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, raw.toDomain())
	}
	if err := rows.Err(); err != nil {
		r.logger.Printf("product repo: list rows error=%v", err)
		return nil, err
	}
	r.logger.Printf("product repo: list count=%d", len(result))
	return result, nil
}

func (r *postgresRepo) GetByID(ctx context.Context, id string) (*domain.Product, error) {
	numericID, ok := parseID(id)
	if !ok {
		r.logger.Printf("product repo: get id=%q not numeric", id)
		return nil, domain.ErrNotFound
	}

	raw, err := scanRaw(r.pool.QueryRow(ctx, selectColumns+`WHERE id = $1`, numericID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			r.logger.Printf("product repo: get id=%d not found", numericID)
			return nil, domain.ErrNotFound
		}
		r.logger.Printf("product repo: get id=%d error=%v", numericID, err)
		return nil, err
	}
	p := raw.toDomain()
	return &p, nil
}

// Upsert inserts a product or updates the existing one with the same
// case-insensitive name. Prices are written from cents.
func (r *postgresRepo) Upsert(ctx context.Context, product domain.Product) (*domain.Product, error) {
	const q = `
INSERT INTO products (name, description, price, price_15ml, price_35ml, price_100ml, category, notes, image_url)
VALUES ($1, $2, $3::bigint / 100.0, $4::bigint / 100.0, $5::bigint / 100.0, $6::bigint / 100.0, $7, $8, $9)
ON CONFLICT ((lower(name))) DO UPDATE SET
    description = EXCLUDED.description,
    price = EXCLUDED.price,
    price_15ml = EXCLUDED.price_15ml,
    price_35ml = EXCLUDED.price_35ml,
    price_100ml = EXCLUDED.price_100ml,
    category = EXCLUDED.category,
    notes = EXCLUDED.notes,
    image_url = EXCLUDED.image_url
RETURNING id::text
`
	category := product.Category
	if category == "" {
		category = domain.DefaultCategory
	}

	var id string
	err := r.pool.QueryRow(ctx, q,
		product.Name,
		product.Description,
		product.PriceCents,
		sizePriceArg(product, domain.Size15ml),
		sizePriceArg(product, domain.Size35ml),
		sizePriceArg(product, domain.Size100ml),
		string(category),
		product.Notes,
		nullIfEmpty(product.ImageURL),
	).Scan(&id)
	if err != nil {
		r.logger.Printf("product repo: upsert name=%q error=%v", product.Name, err)
		return nil, err
	}

	out := product
	out.ID = id
	out.Category = category
	r.logger.Printf("product repo: upserted name=%q id=%s", out.Name, out.ID)
	return &out, nil
}

func scanRaw(row pgx.Row) (rawProduct, error) {
	var raw rawProduct
	err := row.Scan(
		&raw.ID,
		&raw.Name,
		&raw.Description,
		&raw.Price,
		&raw.Price15ml,
		&raw.Price35ml,
		&raw.Price100ml,
		&raw.Category,
		&raw.Notes,
		&raw.ImageURL,
	)
	return raw, err
}
