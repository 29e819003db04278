package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"perfume-storefront/internal/cache"
	"perfume-storefront/internal/config"
	"perfume-storefront/internal/db"
	"perfume-storefront/internal/httpserver"
	"perfume-storefront/internal/messaging"
	cartrepo "perfume-storefront/internal/repository/cart"
	newsletterrepo "perfume-storefront/internal/repository/newsletter"
	productrepo "perfume-storefront/internal/repository/product"
	cartsvc "perfume-storefront/internal/service/cart"
	categorysvc "perfume-storefront/internal/service/category"
	checkoutsvc "perfume-storefront/internal/service/checkout"
	newslettersvc "perfume-storefront/internal/service/newsletter"
	productsvc "perfume-storefront/internal/service/product"
	sessionsvc "perfume-storefront/internal/service/session"

	"github.com/redis/go-redis/v9"
)

func main() {
	cfg := config.FromEnv()
	logger := log.New(os.Stdout, "[api] ", log.LstdFlags|log.LUTC|log.Lshortfile)

	ctx, stop := context.WithCancel(context.Background())
	defer stop()

	dbpool, err := db.Connect(ctx, cfg.DBConnString)
	if err != nil {
		logger.Fatalf("connect to db: %v", err)
	}
	defer dbpool.Close()

	var (
		rdb          *redis.Client
		catalogCache cache.CatalogCache
		cartStore    cartrepo.Store = cartrepo.NewMemoryStore()
	)
	if cfg.RedisAddr != "" {
		rdb, err = db.ConnectRedis(ctx, cfg.RedisAddr)
		if err != nil {
			logger.Fatalf("connect to redis: %v", err)
		}
		defer rdb.Close()
		catalogCache = cache.NewRedisCache(rdb, cfg.CatalogCacheTTL)
		cartStore = cartrepo.NewRedisStore(rdb, cfg.CartTTL)
		logger.Printf("redis enabled addr=%s", cfg.RedisAddr)
	} else {
		logger.Printf("redis not configured, carts kept in memory")
	}

	var publisher checkoutsvc.Publisher
	if len(cfg.KafkaBrokers) > 0 {
		orderPublisher := messaging.NewOrderPublisher(cfg.KafkaBrokers, cfg.OrderTopic, logger)
		defer orderPublisher.Close()
		publisher = orderPublisher
		logger.Printf("order events enabled topic=%s", cfg.OrderTopic)
	}

	productRepo := productrepo.NewPostgres(dbpool, logger)
	productService := productsvc.New(productRepo, catalogCache, logger, cfg.FeaturedProducts)
	categoryService := categorysvc.New(productService)
	sessionService := sessionsvc.New(cfg.CartTTL, logger)
	cartService := cartsvc.New(cartStore, productRepo, logger)
	checkoutService := checkoutsvc.New(cartService, productRepo, publisher, cfg.ShopPhone, logger)
	newsletterService := newslettersvc.New(newsletterrepo.NewPostgres(dbpool, logger), logger)

	go sessionService.RunSweeper(ctx, time.Hour)

	srv, err := httpserver.New(cfg.HTTPAddr, logger, dbpool, httpserver.Deps{
		ProductSvc:     productService,
		CategorySvc:    categoryService,
		SessionSvc:     sessionService,
		CartSvc:        cartService,
		CheckoutSvc:    checkoutService,
		NewsletterSvc:  newsletterService,
		Redis:          rdb,
		AllowedOrigins: cfg.AllowedOrigins,
	})
	if err != nil {
		logger.Fatalf("init server: %v", err)
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.Printf("starting http server on %s", cfg.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	stopCh := make(chan os.Signal, 1)
	signal.Notify(stopCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-stopCh:
		logger.Printf("received signal %s, shutting down", sig)
	case err := <-serverErr:
		logger.Printf("server error: %v", err)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Printf("graceful shutdown failed: %v", err)
	} else {
		logger.Printf("server stopped")
	}
}
