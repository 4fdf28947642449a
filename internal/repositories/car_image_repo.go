package repositories

import (
	"context"

	"avtoelon/internal/models"

	"gorm.io/gorm"
)

type CarImageRepository interface {
	ListURLsByCarID(ctx context.Context, carID int64) ([]string, error)
}

type carImageRepo struct {
	db *gorm.DB
}

func NewCarImageRepo(db *gorm.DB) CarImageRepository {
	return &carImageRepo{db: db}
}

// ListURLsByCarID returns the gallery of a car in display order.
func (r *carImageRepo) ListURLsByCarID(ctx context.Context, carID int64) ([]string, error) {
	urls := make([]string, 0)
	err := r.db.WithContext(ctx).
		Model(&models.CarImage{}).
		Where("car_id = ?", carID).
		Order("sort_order ASC").
		Order("id ASC").
		Pluck("image_url", &urls).Error
	if err != nil {
		return nil, err
	}
	return urls, nil
}
