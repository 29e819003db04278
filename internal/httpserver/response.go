package httpserver

import (
	"errors"
	"net/http"

	"perfume-storefront/internal/domain"
	checkoutsvc "perfume-storefront/internal/service/checkout"
	newslettersvc "perfume-storefront/internal/service/newsletter"

	"github.com/gin-gonic/gin"
)

type productView struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Category    domain.Category `json:"category"`
	Price       float64         `json:"price"`
	PriceCents  int64           `json:"priceCents"`
	Image       string          `json:"image,omitempty"`
	Notes       []string        `json:"notes"`
	Variants    []variantView   `json:"variants"`
}

type variantView struct {
	Size       domain.Size `json:"size"`
	Price      float64     `json:"price"`
	PriceCents int64       `json:"priceCents"`
	Available  bool        `json:"available"`
}

type cartView struct {
	Lines      []cartLineView `json:"lines"`
	TotalItems int            `json:"totalItems"`
	Total      float64        `json:"total"`
	TotalCents int64          `json:"totalCents"`
}

type cartLineView struct {
	ProductID      string      `json:"productId"`
	Name           string      `json:"name"`
	Image          string      `json:"image,omitempty"`
	Size           domain.Size `json:"size,omitempty"`
	Quantity       int         `json:"quantity"`
	UnitPrice      float64     `json:"unitPrice"`
	UnitPriceCents int64       `json:"unitPriceCents"`
	TotalCents     int64       `json:"totalCents"`
}

type priceView struct {
	ProductID  string      `json:"productId"`
	Size       domain.Size `json:"size"`
	Price      float64     `json:"price"`
	PriceCents int64       `json:"priceCents"`
	Display    string      `json:"display"`
	Available  bool        `json:"available"`
}

func euros(cents int64) float64 {
	return float64(cents) / 100
}

func toProductView(p domain.Product) productView {
	variants := p.Variants()
	vv := make([]variantView, 0, len(variants))
	for _, v := range variants {
		vv = append(vv, variantView{
			Size:       v.Size,
			Price:      euros(v.PriceCents),
			PriceCents: v.PriceCents,
			Available:  v.Available,
		})
	}
	notes := p.Notes
	if notes == nil {
		notes = []string{}
	}
	return productView{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Category:    p.Category,
		Price:       euros(p.PriceCents),
		PriceCents:  p.PriceCents,
		Image:       p.ImageURL,
		Notes:       notes,
		Variants:    vv,
	}
}

func toProductViews(products []domain.Product) []productView {
	out := make([]productView, 0, len(products))
	for _, p := range products {
		out = append(out, toProductView(p))
	}
	return out
}

func toCartView(c *domain.Cart) cartView {
	lines := make([]cartLineView, 0, len(c.Lines))
	for _, l := range c.Lines {
		unit := l.UnitPriceCents()
		lines = append(lines, cartLineView{
			ProductID:      l.Product.ID,
			Name:           l.Product.Name,
			Image:          l.Product.ImageURL,
			Size:           l.Size,
			Quantity:       l.Quantity,
			UnitPrice:      euros(unit),
			UnitPriceCents: unit,
			TotalCents:     l.TotalCents(),
		})
	}
	total := c.TotalPrice()
	return cartView{
		Lines:      lines,
		TotalItems: c.TotalItemCount(),
		Total:      euros(total),
		TotalCents: total,
	}
}

func errorBody(msg string) gin.H {
	return gin.H{"error": msg}
}

// writeError maps service errors to status codes. Anything unrecognised is a
// store or broker failure and is logged.
func (h *handlers) writeError(c *gin.Context, err error) {
	var verr *checkoutsvc.ValidationError
	switch {
	case errors.Is(err, domain.ErrNotFound):
		c.JSON(http.StatusNotFound, errorBody("not found"))
	case errors.As(err, &verr):
		c.JSON(http.StatusBadRequest, gin.H{"error": verr.Error(), "fields": verr.Fields})
	case errors.Is(err, domain.ErrInvalidQuantity),
		errors.Is(err, domain.ErrInvalidSize),
		errors.Is(err, domain.ErrEmptyCart),
		errors.Is(err, domain.ErrInvalidInput),
		errors.Is(err, newslettersvc.ErrInvalidEmail):
		c.JSON(http.StatusBadRequest, errorBody(err.Error()))
	default:
		h.logger.Printf("http: %s %s error=%v", c.Request.Method, c.Request.URL.Path, err)
		c.JSON(http.StatusInternalServerError, errorBody("internal error"))
	}
}
