package httpserver

import (
	"context"
	"errors"
	"io"
	"log"
	"strings"
	"time"

	"perfume-storefront/internal/domain"
	cartsvc "perfume-storefront/internal/service/cart"
	checkoutsvc "perfume-storefront/internal/service/checkout"
	newslettersvc "perfume-storefront/internal/service/newsletter"
	productsvc "perfume-storefront/internal/service/product"
	sessionsvc "perfume-storefront/internal/service/session"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
)

type productService interface {
	Browse(ctx context.Context, in productsvc.BrowseInput) ([]domain.Product, error)
	SearchByName(ctx context.Context, query string) ([]domain.Product, error)
	Featured(ctx context.Context) ([]domain.Product, error)
	Get(ctx context.Context, id string) (*domain.Product, error)
	Price(ctx context.Context, id string, size domain.Size) (*productsvc.Quote, error)
}

type categoryService interface {
	List(ctx context.Context) ([]domain.CategoryInfo, error)
}

type sessionService interface {
	Issue(ctx context.Context) (*sessionsvc.Session, error)
	Lookup(ctx context.Context, token string) (string, error)
}

type cartService interface {
	Get(ctx context.Context, sessionID string) (*domain.Cart, error)
	Add(ctx context.Context, sessionID string, in cartsvc.LineInput) (*domain.Cart, error)
	UpdateQuantity(ctx context.Context, sessionID string, in cartsvc.LineInput) (*domain.Cart, error)
	Remove(ctx context.Context, sessionID string, in cartsvc.LineInput) (*domain.Cart, error)
	Update(ctx context.Context, sessionID string, in cartsvc.UpdateInput) (*domain.Cart, error)
	Clear(ctx context.Context, sessionID string) error
}

type checkoutService interface {
	Submit(ctx context.Context, sessionID string, customer domain.Customer) (*checkoutsvc.Result, error)
	Inquiry(ctx context.Context, in checkoutsvc.InquiryInput) (*checkoutsvc.InquiryResult, error)
}

type newsletterService interface {
	Subscribe(ctx context.Context, email string) (*newslettersvc.Result, error)
}

// Deps carries the services the handlers call into.
type Deps struct {
	ProductSvc     productService
	CategorySvc    categoryService
	SessionSvc     sessionService
	CartSvc        cartService
	CheckoutSvc    checkoutService
	NewsletterSvc  newsletterService
	Redis          *redis.Client
	AllowedOrigins []string
}

func (d Deps) validate() error {
	var missing []string
	if d.ProductSvc == nil {
		missing = append(missing, "product")
	}
	if d.CategorySvc == nil {
		missing = append(missing, "category")
	}
	if d.SessionSvc == nil {
		missing = append(missing, "session")
	}
	if d.CartSvc == nil {
		missing = append(missing, "cart")
	}
	if d.CheckoutSvc == nil {
		missing = append(missing, "checkout")
	}
	if d.NewsletterSvc == nil {
		missing = append(missing, "newsletter")
	}
	if len(missing) > 0 {
		return errors.New("missing services: " + strings.Join(missing, ", "))
	}
	return nil
}

// buildRouter wires routes for the API.
func buildRouter(logger *log.Logger, db *pgxpool.Pool, deps Deps) (*gin.Engine, error) {
	if err := deps.validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}

	if gin.Mode() != gin.TestMode {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.LoggerWithWriter(logger.Writer()), gin.Recovery(), corsMiddleware(deps.AllowedOrigins))

	router.GET("/healthz", healthHandler)
	router.GET("/readyz", readyHandler(db, deps.Redis))

	h := &handlers{deps: deps, logger: logger}

	router.POST("/sessions", h.createSession)
	router.GET("/categories", h.listCategories)

	products := router.Group("/products")
	products.GET("", h.listProducts)
	products.GET("/featured", h.featuredProducts)
	products.GET("/search", h.searchProducts)
	products.GET("/:id", h.getProduct)
	products.GET("/:id/price", h.productPrice)
	products.POST("/:id/inquiry", h.productInquiry)

	router.POST("/newsletter", h.subscribe)

	shopper := router.Group("", sessionMiddleware(deps.SessionSvc))
	shopper.GET("/cart", h.getCart)
	shopper.POST("/cart", h.updateCart)
	shopper.DELETE("/cart", h.clearCart)
	shopper.POST("/cart/lines", h.addLine)
	shopper.PATCH("/cart/lines", h.changeLineQuantity)
	shopper.DELETE("/cart/lines", h.removeLine)
	shopper.POST("/checkout", h.checkout)

	return router, nil
}

func corsMiddleware(origins []string) gin.HandlerFunc {
	cfg := cors.Config{
		AllowMethods:  []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Authorization", sessionHeader},
		ExposeHeaders: []string{"Content-Length"},
		MaxAge:        12 * time.Hour,
	}
	allowAll := len(origins) == 0
	for _, o := range origins {
		if o == "*" {
			allowAll = true
		}
	}
	if allowAll {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = origins
	}
	return cors.New(cfg)
}

type handlers struct {
	deps   Deps
	logger *log.Logger
}
