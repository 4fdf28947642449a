package repositories

import (
	"context"

	"avtoelon/internal/models"

	"gorm.io/gorm"
)

type CategoryRepository interface {
	Create(ctx context.Context, category *models.Category) error
	GetByID(ctx context.Context, id int64) (*models.Category, error)
	List(ctx context.Context) ([]*models.Category, error)
}

type categoryRepo struct {
	db *gorm.DB
}

func NewCategoryRepo(db *gorm.DB) CategoryRepository {
	return &categoryRepo{db: db}
}

// Create inserts the category and sets its assigned ID.
func (r *categoryRepo) Create(ctx context.Context, category *models.Category) error {
	return r.db.WithContext(ctx).Create(category).Error
}

func (r *categoryRepo) GetByID(ctx context.Context, id int64) (*models.Category, error) {
	category := &models.Category{}
	err := r.db.WithContext(ctx).
		Select("id", "name", "image_url").
		Where("id = ?", id).
		Take(category).Error
	if err != nil {
		return nil, err
	}
	return category, nil
}

// List returns every category, newest first.
func (r *categoryRepo) List(ctx context.Context) ([]*models.Category, error) {
	categories := make([]*models.Category, 0)
	err := r.db.WithContext(ctx).
		Select("id", "name", "image_url").
		Order("id DESC").
		Find(&categories).Error
	if err != nil {
		return nil, err
	}
	return categories, nil
}
