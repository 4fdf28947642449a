package services

import (
	"context"
	"fmt"

	"avtoelon/internal/caching"
	"avtoelon/internal/common"
	"avtoelon/internal/models"
	"avtoelon/internal/repositories"

	"go.uber.org/zap"
)

type CategoryService interface {
	List(ctx context.Context) ([]*models.Category, error)
	Create(ctx context.Context, name, imageURL string) (*models.Category, error)
}

type categoryService struct {
	categoryRepo repositories.CategoryRepository
	cache        caching.CatalogCache
	logger       *zap.Logger
}

func NewCategoryService(categoryRepo repositories.CategoryRepository, cache caching.CatalogCache, logger *zap.Logger) CategoryService {
	return &categoryService{
		categoryRepo: categoryRepo,
		cache:        cache,
		logger:       logger.Named("category_service"),
	}
}

func (s *categoryService) List(ctx context.Context) ([]*models.Category, error) {
	gen, genErr := s.cache.Generation(ctx)
	if genErr != nil {
		s.logger.Warn("catalog cache unavailable", zap.Error(genErr))
	} else {
		cached, err := s.cache.GetCategories(ctx, gen)
		if err != nil {
			s.logger.Warn("category cache read failed", zap.Error(err))
		} else if cached != nil {
			return cached, nil
		}
	}

	categories, err := s.categoryRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}

	if genErr == nil {
		if err := s.cache.SetCategories(ctx, gen, categories); err != nil {
			s.logger.Warn("category cache write failed", zap.Error(err))
		}
	}
	return categories, nil
}

// Create stores a category with trimmed fields and returns the stored row.
func (s *categoryService) Create(ctx context.Context, name, imageURL string) (*models.Category, error) {
	if !common.RequiredStrings(&name, &imageURL) {
		return nil, common.NewValidationError("name and image_url are required")
	}

	category := &models.Category{Name: name, ImageURL: imageURL}
	if err := s.categoryRepo.Create(ctx, category); err != nil {
		return nil, fmt.Errorf("create category: %w", err)
	}

	if err := s.cache.Invalidate(ctx); err != nil {
		s.logger.Warn("catalog cache invalidation failed", zap.Error(err))
	}

	created, err := s.categoryRepo.GetByID(ctx, category.ID)
	if err != nil {
		return nil, fmt.Errorf("reload category %d: %w", category.ID, err)
	}

	s.logger.Info("category created", zap.Int64("category_id", created.ID), zap.String("name", created.Name))
	return created, nil
}
