// Package testutil builds throwaway databases for repository tests.
package testutil

import (
	"testing"

	migration "SmartCart-Backend/cmd/database/migrate"
	"SmartCart-Backend/entities"

	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewTestDB opens a migrated in-memory SQLite database with foreign keys
// enforced. It is held on a single connection so every query sees the same
// memory database.
func NewTestDB(t testing.TB) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, db.Exec("PRAGMA foreign_keys = ON").Error)
	require.NoError(t, migration.Migrate(db))
	return db
}

func SeedUser(t testing.TB, db *gorm.DB, email string) *entities.User {
	t.Helper()

	user := &entities.User{
		Email:    email,
		Password: "x",
		Metadata: map[string]string{},
	}
	require.NoError(t, db.Create(user).Error)
	require.NoError(t, db.Create(&entities.Profile{ID: user.ID}).Error)
	return user
}

type ProductOption func(*entities.Product)

func WithDescription(d string) ProductOption {
	return func(p *entities.Product) { p.Description = &d }
}

func WithBarcode(b string) ProductOption {
	return func(p *entities.Product) { p.Barcode = &b }
}

func WithImage(ref string) ProductOption {
	return func(p *entities.Product) { p.ImageURL = &ref }
}

func SeedProduct(t testing.TB, db *gorm.DB, name, category, price string, opts ...ProductOption) *entities.Product {
	t.Helper()

	product := &entities.Product{
		Name:     name,
		Category: category,
		Price:    decimal.RequireFromString(price),
		Stock:    10,
	}
	for _, opt := range opts {
		opt(product)
	}
	require.NoError(t, db.Create(product).Error)
	return product
}
