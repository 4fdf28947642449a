package services

import (
	"context"

	"avtoelon/internal/models"

	"github.com/stretchr/testify/mock"
)

type MockCategoryRepository struct {
	mock.Mock
}

func (m *MockCategoryRepository) Create(ctx context.Context, category *models.Category) error {
	args := m.Called(ctx, category)
	return args.Error(0)
}

func (m *MockCategoryRepository) GetByID(ctx context.Context, id int64) (*models.Category, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Category), args.Error(1)
}

func (m *MockCategoryRepository) List(ctx context.Context) ([]*models.Category, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Category), args.Error(1)
}

type MockCarRepository struct {
	mock.Mock
}

func (m *MockCarRepository) List(ctx context.Context) ([]*models.CarListItem, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.CarListItem), args.Error(1)
}

func (m *MockCarRepository) GetByID(ctx context.Context, id int64) (*models.CarDetail, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.CarDetail), args.Error(1)
}

type MockCarImageRepository struct {
	mock.Mock
}

func (m *MockCarImageRepository) ListURLsByCarID(ctx context.Context, carID int64) ([]string, error) {
	args := m.Called(ctx, carID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

type MockCatalogCache struct {
	mock.Mock
}

func (m *MockCatalogCache) Generation(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockCatalogCache) GetCategories(ctx context.Context, gen int64) ([]*models.Category, error) {
	args := m.Called(ctx, gen)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Category), args.Error(1)
}

func (m *MockCatalogCache) SetCategories(ctx context.Context, gen int64, categories []*models.Category) error {
	args := m.Called(ctx, gen, categories)
	return args.Error(0)
}

func (m *MockCatalogCache) GetCars(ctx context.Context, gen int64) ([]*models.CarListItem, error) {
	args := m.Called(ctx, gen)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.CarListItem), args.Error(1)
}

func (m *MockCatalogCache) SetCars(ctx context.Context, gen int64, cars []*models.CarListItem) error {
	args := m.Called(ctx, gen, cars)
	return args.Error(0)
}

func (m *MockCatalogCache) GetCarDetail(ctx context.Context, id int64) (*models.CarDetail, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.CarDetail), args.Error(1)
}

func (m *MockCatalogCache) SetCarDetail(ctx context.Context, car *models.CarDetail) error {
	args := m.Called(ctx, car)
	return args.Error(0)
}

func (m *MockCatalogCache) Invalidate(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockCatalogCache) Ping(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockCatalogCache) Close() error {
	args := m.Called()
	return args.Error(0)
}
