package main

import (
	"context"
	"log"

	"github.com/redis/go-redis/v9"
	"github.com/garv2214/Toolkit/internal/cart"
	"github.com/garv2214/Toolkit/internal/catalog"
	"github.com/garv2214/Toolkit/internal/config"
	"github.com/garv2214/Toolkit/internal/domain"
	"github.com/garv2214/Toolkit/internal/storage"
)

// Wiring boundary: builds the engine from configuration and logs the
// catalog summary. Presentation layers embed the packages directly.
func main() {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	store, err := openStore(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to open %s store: %v", cfg.Backend, err)
	}
	log.Printf("Persistence backend: %s", cfg.Backend)

	cat, err := loadCatalog(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to load catalog: %v", err)
	}

	cartStore := cart.NewStore(store)
	cartStore.Subscribe(func(c domain.Cart) {
		log.Printf("Cart updated: %d items", c.Count())
	})

	count, err := cartStore.Count(ctx)
	if err != nil {
		log.Fatalf("Failed to read cart: %v", err)
	}

	stats := cat.Stats()
	log.Printf("Toolkit store data loaded")
	log.Printf("Total products: %d", stats.TotalProducts)
	log.Printf("Categories: %d", stats.TotalCategories)
	log.Printf("Inventory: %d units", stats.TotalInventory)
	log.Printf("Average rating: %.1f", stats.AverageRating)
	log.Printf("Price range: %d - %d", stats.PriceRange.Min, stats.PriceRange.Max)
	log.Printf("In stock: %d, low stock: %d", stats.InStockCount, stats.LowStockCount)
	log.Printf("Cart: %d items", count)
}

func openStore(ctx context.Context, cfg config.Config) (storage.Store, error) {
	switch cfg.Backend {
	case "redis":
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		if err := client.Ping(ctx).Err(); err != nil {
			return nil, err
		}
		return storage.NewBreaker("redis", storage.NewRedis(client)), nil

	case "mongo":
		db, err := storage.ConnectMongo(ctx, cfg.MongoURI, cfg.MongoDatabase)
		if err != nil {
			return nil, err
		}
		return storage.NewBreaker("mongo", storage.NewMongo(db)), nil

	case "sqlite":
		st, err := storage.NewSQLite(cfg.SQLitePath)
		if err != nil {
			return nil, err
		}
		if err := st.RunMigrations(cfg.StorageMigrations); err != nil {
			return nil, err
		}
		return st, nil

	default:
		return storage.NewMemory(), nil
	}
}

func loadCatalog(ctx context.Context, cfg config.Config) (*catalog.Catalog, error) {
	if cfg.CatalogDBPath == "" {
		return catalog.Seed(), nil
	}

	repo, err := catalog.NewRepository(cfg.CatalogDBPath)
	if err != nil {
		return nil, err
	}
	if err := repo.RunMigrations(cfg.CatalogMigrations); err != nil {
		return nil, err
	}
	return repo.Load(ctx)
}
