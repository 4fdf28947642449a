package services

import (
	"context"
	"errors"
	"fmt"

	"avtoelon/internal/caching"
	"avtoelon/internal/common"
	"avtoelon/internal/models"
	"avtoelon/internal/repositories"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type CarService interface {
	List(ctx context.Context) ([]*models.CarListItem, error)
	GetDetail(ctx context.Context, id int64) (*models.CarDetail, error)
}

type carService struct {
	carRepo   repositories.CarRepository
	imageRepo repositories.CarImageRepository
	cache     caching.CatalogCache
	logger    *zap.Logger
}

func NewCarService(carRepo repositories.CarRepository, imageRepo repositories.CarImageRepository, cache caching.CatalogCache, logger *zap.Logger) CarService {
	return &carService{
		carRepo:   carRepo,
		imageRepo: imageRepo,
		cache:     cache,
		logger:    logger.Named("car_service"),
	}
}

func (s *carService) List(ctx context.Context) ([]*models.CarListItem, error) {
	gen, genErr := s.cache.Generation(ctx)
	if genErr != nil {
		s.logger.Warn("catalog cache unavailable", zap.Error(genErr))
	} else {
		cached, err := s.cache.GetCars(ctx, gen)
		if err != nil {
			s.logger.Warn("car list cache read failed", zap.Error(err))
		} else if cached != nil {
			return cached, nil
		}
	}

	cars, err := s.carRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list cars: %w", err)
	}

	if genErr == nil {
		if err := s.cache.SetCars(ctx, gen, cars); err != nil {
			s.logger.Warn("car list cache write failed", zap.Error(err))
		}
	}
	return cars, nil
}

// GetDetail returns the car with its gallery. Unknown ids wrap common.ErrNotFound.
func (s *carService) GetDetail(ctx context.Context, id int64) (*models.CarDetail, error) {
	cached, err := s.cache.GetCarDetail(ctx, id)
	if err != nil {
		s.logger.Warn("car detail cache read failed", zap.Int64("car_id", id), zap.Error(err))
	} else if cached != nil {
		return cached, nil
	}

	car, err := s.carRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, common.NotFound("car ad")
		}
		return nil, fmt.Errorf("get car %d: %w", id, err)
	}

	images, err := s.imageRepo.ListURLsByCarID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("list images of car %d: %w", id, err)
	}
	if images == nil {
		images = []string{}
	}
	car.Images = images

	if err := s.cache.SetCarDetail(ctx, car); err != nil {
		s.logger.Warn("car detail cache write failed", zap.Int64("car_id", id), zap.Error(err))
	}
	return car, nil
}
