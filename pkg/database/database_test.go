package database_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"avtoelon/pkg/database"
	"avtoelon/testhelpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestNewDB_CreatesDirectoryAndFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "avtoelon.db")

	db, err := database.NewDB(path, zap.NewNop())
	require.NoError(t, err)
	defer database.Close(db)

	require.NoError(t, database.EnsureSchema(context.Background(), db))

	_, err = os.Stat(path)
	assert.NoError(t, err)
}

func TestNewDB_EmptyPath(t *testing.T) {
	db, err := database.NewDB("", zap.NewNop())
	assert.Error(t, err)
	assert.Nil(t, db)
}

func TestNewDB_Pragmas(t *testing.T) {
	db := testhelpers.NewTestDB(t)

	var foreignKeys int
	require.NoError(t, db.Raw("PRAGMA foreign_keys").Scan(&foreignKeys).Error)
	assert.Equal(t, 1, foreignKeys)

	var journalMode string
	require.NoError(t, db.Raw("PRAGMA journal_mode").Scan(&journalMode).Error)
	assert.Equal(t, "wal", journalMode)
}

func TestEnsureSchema_Idempotent(t *testing.T) {
	db := testhelpers.NewTestDB(t)
	categoryID := testhelpers.InsertCategory(t, db, "Sedan", "https://example.com/sedan.jpg")

	require.NoError(t, database.EnsureSchema(context.Background(), db))
	require.NoError(t, database.EnsureSchema(context.Background(), db))

	assert.Equal(t, int64(1), testhelpers.CountRows(t, db, "categories"))
	var name string
	require.NoError(t, db.Raw("SELECT name FROM categories WHERE id = ?", categoryID).Scan(&name).Error)
	assert.Equal(t, "Sedan", name)
}

func TestSeedIfEmpty_SeedsOnce(t *testing.T) {
	db := testhelpers.NewTestDB(t)
	ctx := context.Background()

	seeded, err := database.SeedIfEmpty(ctx, db)
	require.NoError(t, err)
	assert.True(t, seeded)

	assert.Equal(t, int64(1), testhelpers.CountRows(t, db, "categories"))
	assert.Equal(t, int64(1), testhelpers.CountRows(t, db, "car_ads"))
	assert.Equal(t, int64(2), testhelpers.CountRows(t, db, "car_images"))

	var urls []string
	require.NoError(t, db.Raw("SELECT image_url FROM car_images ORDER BY sort_order ASC, id ASC").Scan(&urls).Error)
	assert.Equal(t, database.SeedImageURLs, urls)

	seeded, err = database.SeedIfEmpty(ctx, db)
	require.NoError(t, err)
	assert.False(t, seeded)
	assert.Equal(t, int64(1), testhelpers.CountRows(t, db, "categories"))
	assert.Equal(t, int64(2), testhelpers.CountRows(t, db, "car_images"))
}

func TestSeedIfEmpty_SkipsWhenCategoriesExist(t *testing.T) {
	db := testhelpers.NewTestDB(t)
	testhelpers.InsertCategory(t, db, "SUV", "https://example.com/suv.jpg")

	seeded, err := database.SeedIfEmpty(context.Background(), db)
	require.NoError(t, err)
	assert.False(t, seeded)
	assert.Equal(t, int64(0), testhelpers.CountRows(t, db, "car_ads"))
}

func TestForeignKeys_CascadeDelete(t *testing.T) {
	db := testhelpers.NewTestDB(t)
	categoryID := testhelpers.InsertCategory(t, db, "Sedan", "https://example.com/sedan.jpg")
	otherID := testhelpers.InsertCategory(t, db, "SUV", "https://example.com/suv.jpg")
	car := testhelpers.InsertCarAd(t, db, categoryID, "Chevrolet Malibu")
	testhelpers.InsertCarImage(t, db, car.ID, "https://example.com/1.jpg", 0)
	testhelpers.InsertCarImage(t, db, car.ID, "https://example.com/2.jpg", 1)
	other := testhelpers.InsertCarAd(t, db, otherID, "Chevrolet Tahoe")
	testhelpers.InsertCarImage(t, db, other.ID, "https://example.com/3.jpg", 0)

	require.NoError(t, db.Exec("DELETE FROM categories WHERE id = ?", categoryID).Error)

	assert.Equal(t, int64(1), testhelpers.CountRows(t, db, "car_ads"))
	assert.Equal(t, int64(1), testhelpers.CountRows(t, db, "car_images"))
}

func TestForeignKeys_RejectOrphans(t *testing.T) {
	db := testhelpers.NewTestDB(t)

	err := db.Exec(`INSERT INTO car_ads
		(category_id, name, price, year, mileage, color, paint_condition, engine_size)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		999, "Ghost", 1.0, 2000, 1, "Oq", "Original", 1.0).Error
	assert.Error(t, err)

	err = db.Exec(`INSERT INTO car_images (car_id, image_url, sort_order) VALUES (?, ?, ?)`,
		999, "https://example.com/ghost.jpg", 0).Error
	assert.Error(t, err)
}
