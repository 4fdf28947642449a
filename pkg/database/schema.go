package database

import (
	"context"
	"fmt"

	"gorm.io/gorm"
)

var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS categories (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL,
		image_url TEXT NOT NULL,
		created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE TABLE IF NOT EXISTS car_ads (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		category_id INTEGER NOT NULL,
		name TEXT NOT NULL,
		price REAL NOT NULL,
		year INTEGER NOT NULL,
		mileage INTEGER NOT NULL,
		color TEXT NOT NULL,
		paint_condition TEXT NOT NULL,
		engine_size REAL NOT NULL,
		created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
		FOREIGN KEY (category_id) REFERENCES categories(id) ON DELETE CASCADE
	)`,
	`CREATE TABLE IF NOT EXISTS car_images (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		car_id INTEGER NOT NULL,
		image_url TEXT NOT NULL,
		sort_order INTEGER NOT NULL DEFAULT 0,
		FOREIGN KEY (car_id) REFERENCES car_ads(id) ON DELETE CASCADE
	)`,
	`CREATE INDEX IF NOT EXISTS idx_car_ads_category_id ON car_ads(category_id)`,
	`CREATE INDEX IF NOT EXISTS idx_car_images_car_sort ON car_images(car_id, sort_order)`,
}

// EnsureSchema creates the tables if they do not exist. Safe on every start.
func EnsureSchema(ctx context.Context, db *gorm.DB) error {
	for _, stmt := range schemaStatements {
		if err := db.WithContext(ctx).Exec(stmt).Error; err != nil {
			return fmt.Errorf("ensure schema: %w", err)
		}
	}
	return nil
}
