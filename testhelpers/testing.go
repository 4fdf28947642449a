package testhelpers

import (
	"context"
	"path/filepath"
	"testing"

	"avtoelon/internal/models"
	"avtoelon/pkg/database"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// NewTestDB opens a fresh SQLite file in a temp dir with the schema in place.
// The database is closed when the test ends.
func NewTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	path := filepath.Join(t.TempDir(), "data", "test.db")
	db, err := database.NewDB(path, zap.NewNop())
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	t.Cleanup(func() {
		_ = database.Close(db)
	})

	if err := database.EnsureSchema(context.Background(), db); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}
	return db
}

// InsertCategory creates a category row for testing
func InsertCategory(t *testing.T, db *gorm.DB, name, imageURL string) int64 {
	t.Helper()

	category := &models.Category{Name: name, ImageURL: imageURL}
	if err := db.Create(category).Error; err != nil {
		t.Fatalf("Failed to create test category: %v", err)
	}
	return category.ID
}

// InsertCarAd creates a car ad under categoryID for testing
func InsertCarAd(t *testing.T, db *gorm.DB, categoryID int64, name string) *models.CarAd {
	t.Helper()

	car := &models.CarAd{
		CategoryID:     categoryID,
		Name:           name,
		Price:          18000,
		Year:           2018,
		Mileage:        90000,
		Color:          "Qora",
		PaintCondition: "Original",
		EngineSize:     1.6,
	}
	if err := db.Create(car).Error; err != nil {
		t.Fatalf("Failed to create test car ad: %v", err)
	}
	return car
}

// InsertCarImage attaches an image to carID for testing
func InsertCarImage(t *testing.T, db *gorm.DB, carID int64, imageURL string, sortOrder int) int64 {
	t.Helper()

	image := &models.CarImage{CarID: carID, ImageURL: imageURL, SortOrder: sortOrder}
	if err := db.Create(image).Error; err != nil {
		t.Fatalf("Failed to create test car image: %v", err)
	}
	return image.ID
}

// CountRows returns the number of rows in table
func CountRows(t *testing.T, db *gorm.DB, table string) int64 {
	t.Helper()

	var count int64
	if err := db.Table(table).Count(&count).Error; err != nil {
		t.Fatalf("Failed to count %s: %v", table, err)
	}
	return count
}
