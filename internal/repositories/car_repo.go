package repositories

import (
	"context"

	"avtoelon/internal/models"

	"gorm.io/gorm"
)

type CarRepository interface {
	List(ctx context.Context) ([]*models.CarListItem, error)
	GetByID(ctx context.Context, id int64) (*models.CarDetail, error)
}

type carRepo struct {
	db *gorm.DB
}

func NewCarRepo(db *gorm.DB) CarRepository {
	return &carRepo{db: db}
}

// The primary image is the first one by (sort_order, id), so ties on
// sort_order cannot duplicate a car in the listing. Cars whose category
// row is missing are dropped by the inner join.
const listCarsQuery = `
	SELECT
		ca.id,
		ca.category_id,
		c.name AS category_name,
		ci.image_url AS image,
		ca.name,
		ca.price,
		ca.year,
		ca.mileage,
		ca.color
	FROM car_ads ca
	INNER JOIN categories c ON c.id = ca.category_id
	LEFT JOIN car_images ci ON ci.id = (
		SELECT id
		FROM car_images
		WHERE car_id = ca.id
		ORDER BY sort_order ASC, id ASC
		LIMIT 1
	)
	ORDER BY ca.id DESC
`

const getCarQuery = `
	SELECT id, name, year, color, paint_condition, mileage, engine_size
	FROM car_ads
	WHERE id = ?
`

func (r *carRepo) List(ctx context.Context) ([]*models.CarListItem, error) {
	cars := make([]*models.CarListItem, 0)
	if err := r.db.WithContext(ctx).Raw(listCarsQuery).Scan(&cars).Error; err != nil {
		return nil, err
	}
	return cars, nil
}

// GetByID returns the car without its images, or gorm.ErrRecordNotFound.
func (r *carRepo) GetByID(ctx context.Context, id int64) (*models.CarDetail, error) {
	var cars []*models.CarDetail
	if err := r.db.WithContext(ctx).Raw(getCarQuery, id).Scan(&cars).Error; err != nil {
		return nil, err
	}
	if len(cars) == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return cars[0], nil
}
