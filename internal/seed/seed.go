package seed

import (
	"context"
	"fmt"
	"io"
	"log"

	"perfume-storefront/internal/domain"
)

type ProductWriter interface {
	Upsert(ctx context.Context, product domain.Product) (*domain.Product, error)
}

// Products is the demo catalog. Base prices are the 35ml bottle.
func Products() []domain.Product {
	return []domain.Product{
		{
			Name:        "Rose Éternelle",
			Description: "A timeless bouquet of fresh roses with subtle vanilla undertones. Perfect for romantic evenings.",
			Category:    domain.CategoryFloral,
			PriceCents:  18900,
			SizePrices:  map[domain.Size]int64{domain.Size15ml: 6500, domain.Size35ml: 18900, domain.Size100ml: 25900},
			Notes:       []string{"Rose", "Jasmine", "Vanilla"},
		},
		{
			Name:        "Lavande Noir",
			Description: "Dark lavender meets mysterious musk in this sophisticated evening fragrance.",
			Category:    domain.CategoryFloral,
			PriceCents:  16500,
			SizePrices:  map[domain.Size]int64{domain.Size15ml: 5900, domain.Size35ml: 16500},
			Notes:       []string{"Lavender", "Musk", "Amber"},
		},
		{
			Name:        "Citrus Lumière",
			Description: "Bright citrus notes with woody base create an energizing daytime scent.",
			Category:    domain.CategoryCitrus,
			PriceCents:  14900,
			Notes:       []string{"Bergamot", "Lemon", "Cedar"},
		},
		{
			Name:        "Bois Mystique",
			Description: "Deep woody notes with exotic oud create a powerful, masculine fragrance.",
			Category:    domain.CategoryWoody,
			PriceCents:  19900,
			SizePrices:  map[domain.Size]int64{domain.Size35ml: 19900, domain.Size100ml: 27900},
			Notes:       []string{"Sandalwood", "Oud", "Leather"},
		},
		{
			Name:        "Jardin Secret",
			Description: "A secret garden captured in a bottle. Fresh, delicate, and unforgettable.",
			Category:    domain.CategoryFloral,
			PriceCents:  17500,
			Notes:       []string{"Peony", "Gardenia", "White Tea"},
		},
		{
			Name:        "Ambre Soleil",
			Description: "Warm amber and sweet honey create a sensual oriental masterpiece.",
			Category:    domain.CategoryOriental,
			PriceCents:  18500,
			SizePrices:  map[domain.Size]int64{domain.Size15ml: 6200, domain.Size35ml: 18500},
			Notes:       []string{"Amber", "Patchouli", "Honey"},
		},
	}
}

// Apply upserts the demo catalog. It is idempotent: products are matched by name.
func Apply(ctx context.Context, w ProductWriter, logger *log.Logger) (int, error) {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	n := 0
	for _, p := range Products() {
		saved, err := w.Upsert(ctx, p)
		if err != nil {
			return n, fmt.Errorf("upsert product %s: %w", p.Name, err)
		}
		logger.Printf("seeded product id=%s name=%q", saved.ID, saved.Name)
		n++
	}
	return n, nil
}
