package httpserver

import (
	"errors"
	"io"
	"net/http"
	"strings"

	"perfume-storefront/internal/domain"
	checkoutsvc "perfume-storefront/internal/service/checkout"
	productsvc "perfume-storefront/internal/service/product"

	"github.com/gin-gonic/gin"
)

func (h *handlers) listCategories(c *gin.Context) {
	categories, err := h.deps.CategorySvc.List(c.Request.Context())
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"results": categories})
}

// listProducts serves the catalog. "category" narrows to one scent family
// ("all" or empty keeps every family) and "q" searches names.
func (h *handlers) listProducts(c *gin.Context) {
	var in productsvc.BrowseInput
	if raw := strings.TrimSpace(c.Query("category")); raw != "" && !strings.EqualFold(raw, "all") {
		category, ok := domain.ParseCategory(raw)
		if !ok {
			c.JSON(http.StatusBadRequest, errorBody("unknown category"))
			return
		}
		in.Category = &category
	}
	in.Query = c.Query("q")

	products, err := h.deps.ProductSvc.Browse(c.Request.Context(), in)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": len(products), "results": toProductViews(products)})
}

// searchProducts backs the search box: an empty query finds nothing.
func (h *handlers) searchProducts(c *gin.Context) {
	products, err := h.deps.ProductSvc.SearchByName(c.Request.Context(), c.Query("q"))
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": len(products), "results": toProductViews(products)})
}

func (h *handlers) featuredProducts(c *gin.Context) {
	products, err := h.deps.ProductSvc.Featured(c.Request.Context())
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": len(products), "results": toProductViews(products)})
}

func (h *handlers) getProduct(c *gin.Context) {
	p, err := h.deps.ProductSvc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, toProductView(*p))
}

func (h *handlers) productPrice(c *gin.Context) {
	size, ok := domain.ParseSize(c.Query("size"))
	if !ok {
		h.writeError(c, domain.ErrInvalidSize)
		return
	}
	q, err := h.deps.ProductSvc.Price(c.Request.Context(), c.Param("id"), size)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, priceView{
		ProductID:  q.Product.ID,
		Size:       q.Size,
		Price:      euros(q.PriceCents),
		PriceCents: q.PriceCents,
		Display:    checkoutsvc.FormatEuros(q.PriceCents),
		Available:  q.Available,
	})
}

type inquiryRequest struct {
	Size     string `json:"size"`
	Quantity int    `json:"quantity"`
}

func (h *handlers) productInquiry(c *gin.Context) {
	var req inquiryRequest
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
			c.JSON(http.StatusBadRequest, errorBody("invalid body"))
			return
		}
	}
	res, err := h.deps.CheckoutSvc.Inquiry(c.Request.Context(), checkoutsvc.InquiryInput{
		ProductID: c.Param("id"),
		Size:      req.Size,
		Quantity:  req.Quantity,
	})
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}
