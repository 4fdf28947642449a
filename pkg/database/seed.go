package database

import (
	"context"
	"fmt"

	"gorm.io/gorm"
)

const (
	seedCategoryName  = "Sedan"
	seedCategoryImage = "https://images.unsplash.com/photo-1552519507-da3b142c6e3d"
)

// SeedImageURLs are the gallery of the default car ad, in sort order.
var SeedImageURLs = []string{
	"https://images.unsplash.com/photo-1549399542-7e3f8b79c341",
	"https://images.unsplash.com/photo-1492144534655-ae79c964c9d7",
}

// SeedIfEmpty inserts one default category, one car ad under it and two
// images, but only when the categories table has no rows. It reports
// whether anything was inserted.
func SeedIfEmpty(ctx context.Context, db *gorm.DB) (bool, error) {
	seeded := false
	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Table("categories").Count(&count).Error; err != nil {
			return fmt.Errorf("count categories: %w", err)
		}
		if count > 0 {
			return nil
		}

		var categoryID int64
		if err := tx.Raw(
			`INSERT INTO categories (name, image_url) VALUES (?, ?) RETURNING id`,
			seedCategoryName, seedCategoryImage,
		).Scan(&categoryID).Error; err != nil {
			return fmt.Errorf("seed category: %w", err)
		}

		var carID int64
		if err := tx.Raw(
			`INSERT INTO car_ads
			 (category_id, name, price, year, mileage, color, paint_condition, engine_size)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?) RETURNING id`,
			categoryID, "Toyota Camry", 24500.0, 2020, 62000, "Oq", "Original", 2.5,
		).Scan(&carID).Error; err != nil {
			return fmt.Errorf("seed car ad: %w", err)
		}

		for i, url := range SeedImageURLs {
			if err := tx.Exec(
				`INSERT INTO car_images (car_id, image_url, sort_order) VALUES (?, ?, ?)`,
				carID, url, i,
			).Error; err != nil {
				return fmt.Errorf("seed car image: %w", err)
			}
		}

		seeded = true
		return nil
	})
	return seeded, err
}
