package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"perfume-storefront/internal/cache"
	"perfume-storefront/internal/config"
	"perfume-storefront/internal/db"
	"perfume-storefront/internal/importer"
	productrepo "perfume-storefront/internal/repository/product"
	productsvc "perfume-storefront/internal/service/product"
)

func main() {
	var filePath string
	flag.StringVar(&filePath, "file", "", "Path to product CSV file")
	flag.Parse()

	if filePath == "" {
		flag.Usage()
		os.Exit(2)
	}

	cfg := config.FromEnv()
	ctx := context.Background()

	pool, err := db.Connect(ctx, cfg.DBConnString)
	if err != nil {
		log.Fatalf("connect db: %v", err)
	}
	defer pool.Close()

	// Writes go through the catalog service so a running API drops its
	// cached product list.
	var catalogCache cache.CatalogCache
	if cfg.RedisAddr != "" {
		rdb, err := db.ConnectRedis(ctx, cfg.RedisAddr)
		if err != nil {
			log.Fatalf("connect redis: %v", err)
		}
		defer rdb.Close()
		catalogCache = cache.NewRedisCache(rdb, cfg.CatalogCacheTTL)
	}
	products := productsvc.New(productrepo.NewPostgres(pool, nil), catalogCache, nil, nil)

	f, err := os.Open(filePath)
	if err != nil {
		log.Fatalf("open file: %v", err)
	}
	defer f.Close()

	start := time.Now()
	count, err := importer.NewCSVImporter(f, products).Run(ctx)
	if err != nil {
		log.Fatalf("import failed after %d products: %v", count, err)
	}

	fmt.Printf("Imported %d products in %s\n", count, time.Since(start).Truncate(time.Millisecond))
}
