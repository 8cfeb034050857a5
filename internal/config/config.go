// Package config reads the storefront configuration from the
// environment.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config selects the persistence backend and catalog feed.
type Config struct {
	// Backend picks the blob store: memory, redis, sqlite or mongo.
	Backend string `env:"STORE_BACKEND" envDefault:"memory"`

	RedisAddr     string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPassword string `env:"REDIS_PASSWORD"`
	RedisDB       int    `env:"REDIS_DB" envDefault:"0"`

	MongoURI      string `env:"MONGO_URI" envDefault:"mongodb://localhost:27017"`
	MongoDatabase string `env:"MONGO_DB_NAME" envDefault:"storefrontdb"`

	SQLitePath        string `env:"SQLITE_PATH" envDefault:"storefront.db"`
	StorageMigrations string `env:"STORAGE_MIGRATIONS_PATH" envDefault:"internal/storage/migrations"`

	// CatalogDBPath switches the feed from the built-in seed to a
	// SQLite database when set.
	CatalogDBPath     string `env:"CATALOG_DB_PATH"`
	CatalogMigrations string `env:"CATALOG_MIGRATIONS_PATH" envDefault:"internal/catalog/migrations"`
}

// Load parses the configuration from the environment.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config: %w", err)
	}
	return cfg, nil
}
