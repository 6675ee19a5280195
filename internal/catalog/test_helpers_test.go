package catalog

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/stitchline/stitchline-backend/pkg/db/models"
)

func setupCatalogTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	conn, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{})
	require.NoError(t, err)

	ddl := []string{`
CREATE TABLE IF NOT EXISTS categories (
  id TEXT PRIMARY KEY,
  name TEXT NOT NULL UNIQUE,
  description TEXT,
  image_url TEXT,
  is_active INTEGER NOT NULL DEFAULT 1
);`, `
CREATE TABLE IF NOT EXISTS subcategories (
  id TEXT PRIMARY KEY,
  name TEXT NOT NULL,
  description TEXT,
  category_id TEXT NOT NULL,
  is_active INTEGER NOT NULL DEFAULT 1
);`, `
CREATE TABLE IF NOT EXISTS sizes (
  id TEXT PRIMARY KEY,
  name TEXT NOT NULL UNIQUE,
  is_active INTEGER NOT NULL DEFAULT 1
);`, `
CREATE TABLE IF NOT EXISTS fabrics (
  id TEXT PRIMARY KEY,
  name TEXT NOT NULL UNIQUE,
  description TEXT,
  is_active INTEGER NOT NULL DEFAULT 1
);`, `
CREATE TABLE IF NOT EXISTS products (
  id TEXT PRIMARY KEY,
  name TEXT NOT NULL,
  description TEXT,
  category_id TEXT NOT NULL,
  subcategory_id TEXT,
  fabric_id TEXT,
  image_url TEXT,
  is_active INTEGER NOT NULL DEFAULT 1,
  is_promotion INTEGER NOT NULL DEFAULT 0,
  is_new INTEGER NOT NULL DEFAULT 0,
  created_at DATETIME,
  updated_at DATETIME
);`, `
CREATE TABLE IF NOT EXISTS product_variants (
  id TEXT PRIMARY KEY,
  product_id TEXT NOT NULL,
  size_id TEXT NOT NULL,
  price TEXT NOT NULL,
  is_active INTEGER NOT NULL DEFAULT 1,
  UNIQUE (product_id, size_id)
);`, `
CREATE TABLE IF NOT EXISTS product_images (
  id TEXT PRIMARY KEY,
  product_id TEXT NOT NULL,
  url TEXT NOT NULL,
  alt_text TEXT NOT NULL DEFAULT '',
  position INTEGER NOT NULL DEFAULT 0
);`}
	for _, stmt := range ddl {
		require.NoError(t, conn.Exec(stmt).Error)
	}
	return conn
}

func newCatalogService(t *testing.T) (Service, *gorm.DB) {
	t.Helper()
	conn := setupCatalogTestDB(t)
	svc, err := NewService(ServiceParams{
		Products: NewRepository(conn),
		Taxonomy: NewTaxonomyRepository(conn),
	})
	require.NoError(t, err)
	return svc, conn
}

func mustSeedCategory(t *testing.T, conn *gorm.DB) *models.Category {
	t.Helper()
	row := &models.Category{ID: uuid.New(), Name: "Category " + uuid.NewString(), IsActive: true}
	require.NoError(t, conn.Create(row).Error)
	return row
}

func mustSeedSize(t *testing.T, conn *gorm.DB, name string) *models.Size {
	t.Helper()
	row := &models.Size{ID: uuid.New(), Name: name + " " + uuid.NewString(), IsActive: true}
	require.NoError(t, conn.Create(row).Error)
	return row
}

func mustSeedProduct(t *testing.T, conn *gorm.DB, categoryID uuid.UUID, active bool) *models.Product {
	t.Helper()
	row := &models.Product{
		ID:         uuid.New(),
		Name:       "Product " + uuid.NewString(),
		CategoryID: categoryID,
		IsActive:   active,
	}
	require.NoError(t, conn.Create(row).Error)
	return row
}

func mustSeedVariant(t *testing.T, conn *gorm.DB, productID, sizeID uuid.UUID, price string, active bool) *models.ProductVariant {
	t.Helper()
	row := &models.ProductVariant{
		ID:        uuid.New(),
		ProductID: productID,
		SizeID:    sizeID,
		Price:     decimal.RequireFromString(price),
		IsActive:  active,
	}
	require.NoError(t, conn.Create(row).Error)
	return row
}
