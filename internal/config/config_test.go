package config

import (
	"testing"
	"time"
)

func TestFromEnv_Defaults(t *testing.T) {
	for _, k := range []string{"HTTP_ADDR", "REDIS_ADDR", "KAFKA_BROKERS", "CART_TTL_SECONDS", "FEATURED_PRODUCTS"} {
		t.Setenv(k, "")
	}
	cfg := FromEnv()
	if cfg.HTTPAddr != ":8080" {
		t.Fatalf("expected default addr, got %q", cfg.HTTPAddr)
	}
	if cfg.RedisAddr != "" {
		t.Fatalf("expected no redis by default, got %q", cfg.RedisAddr)
	}
	if len(cfg.KafkaBrokers) != 0 {
		t.Fatalf("expected no brokers by default, got %v", cfg.KafkaBrokers)
	}
	if cfg.CartTTL != 7*24*time.Hour {
		t.Fatalf("unexpected cart ttl %s", cfg.CartTTL)
	}
	if len(cfg.FeaturedProducts) != 3 {
		t.Fatalf("expected 3 featured names, got %v", cfg.FeaturedProducts)
	}
}

func TestFromEnv_Overrides(t *testing.T) {
	t.Setenv("HTTP_ADDR", ":9090")
	t.Setenv("KAFKA_BROKERS", "k1:9092, k2:9092,,")
	t.Setenv("SHUTDOWN_TIMEOUT_SECONDS", "3")
	t.Setenv("CATALOG_CACHE_TTL_SECONDS", "not-a-number")

	cfg := FromEnv()
	if cfg.HTTPAddr != ":9090" {
		t.Fatalf("expected override, got %q", cfg.HTTPAddr)
	}
	if len(cfg.KafkaBrokers) != 2 || cfg.KafkaBrokers[1] != "k2:9092" {
		t.Fatalf("unexpected brokers %v", cfg.KafkaBrokers)
	}
	if cfg.ShutdownTimeout != 3*time.Second {
		t.Fatalf("unexpected shutdown timeout %s", cfg.ShutdownTimeout)
	}
	if cfg.CatalogCacheTTL != 5*time.Minute {
		t.Fatalf("expected fallback ttl on bad value, got %s", cfg.CatalogCacheTTL)
	}
}
