package catalog

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/sqlite"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/garv2214/Toolkit/internal/domain"
	"golang.org/x/sync/singleflight"
	_ "modernc.org/sqlite"
)

// Repository loads the product feed from SQLite. The feed is read once
// and cached; concurrent first loads are collapsed with singleflight so
// the database is only hit by one of them.
type Repository struct {
	db  *sql.DB
	sfg singleflight.Group

	mu     sync.RWMutex
	cached *Catalog
}

// NewRepository opens the catalog database at dbPath. Use ":memory:"
// for tests.
func NewRepository(dbPath string) (*Repository, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &Repository{db: db}, nil
}

// RunMigrations applies the catalog schema and seed migrations under
// migrationsPath.
func (r *Repository) RunMigrations(migrationsPath string) error {
	driver, err := sqlite.WithInstance(r.db, &sqlite.Config{})
	if err != nil {
		return fmt.Errorf("could not create migration driver: %w", err)
	}

	m, err := migrate.NewWithDatabaseInstance(
		fmt.Sprintf("file://%s", migrationsPath),
		"sqlite",
		driver,
	)
	if err != nil {
		return fmt.Errorf("could not create migrate instance: %w", err)
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("could not run migrations: %w", err)
	}

	return nil
}

// Load returns the catalog, reading the feed on first use.
func (r *Repository) Load(ctx context.Context) (*Catalog, error) {
	r.mu.RLock()
	cached := r.cached
	r.mu.RUnlock()
	if cached != nil {
		return cached, nil
	}

	v, err, _ := r.sfg.Do("catalog", func() (interface{}, error) {
		products, err := r.loadProducts(ctx)
		if err != nil {
			return nil, err
		}
		categories, err := r.loadCategories(ctx)
		if err != nil {
			return nil, err
		}

		c := New(products, categories)
		r.mu.Lock()
		r.cached = c
		r.mu.Unlock()
		return c, nil
	})
	if err != nil {
		return nil, err
	}

	return v.(*Catalog), nil
}

func (r *Repository) loadProducts(ctx context.Context) ([]domain.Product, error) {
	query := `
		SELECT id, name, category, price, image, description, stock, rating, tags
		FROM products
		ORDER BY id
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query products: %w", err)
	}
	defer rows.Close()

	var products []domain.Product
	for rows.Next() {
		var p domain.Product
		var tags string
		err := rows.Scan(
			&p.ID,
			&p.Name,
			&p.Category,
			&p.Price,
			&p.Image,
			&p.Description,
			&p.Stock,
			&p.Rating,
			&tags,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan product: %w", err)
		}
		p.Tags = splitTags(tags)
		products = append(products, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration error: %w", err)
	}

	return products, nil
}

func (r *Repository) loadCategories(ctx context.Context) ([]domain.Category, error) {
	query := `
		SELECT key, name, icon, description
		FROM categories
		ORDER BY position
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query categories: %w", err)
	}
	defer rows.Close()

	var categories []domain.Category
	for rows.Next() {
		var c domain.Category
		if err := rows.Scan(&c.Key, &c.Name, &c.Icon, &c.Description); err != nil {
			return nil, fmt.Errorf("failed to scan category: %w", err)
		}
		categories = append(categories, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration error: %w", err)
	}

	return categories, nil
}

func (r *Repository) Close() error {
	return r.db.Close()
}

// Tags are stored comma-joined in a single column.
func splitTags(tags string) []string {
	if tags == "" {
		return nil
	}
	return strings.Split(tags, ",")
}
