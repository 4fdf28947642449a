package caching

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"avtoelon/internal/models"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const keyPrefix = "avtoelon:"

// generationKey is bumped by Invalidate. List payloads are stored under the
// generation read before their database load, so a list loaded before a
// write can only land under a generation nobody reads any more.
const generationKey = keyPrefix + "gen"

func categoriesKey(gen int64) string {
	return fmt.Sprintf("%scategories:%d", keyPrefix, gen)
}

func carsKey(gen int64) string {
	return fmt.Sprintf("%scars:%d", keyPrefix, gen)
}

func carDetailKey(id int64) string {
	return fmt.Sprintf("%scar:%d", keyPrefix, id)
}

// CatalogCache holds rendered read payloads. A miss is reported as a nil
// value with a nil error.
type CatalogCache interface {
	// Generation returns the current list generation. Callers read it
	// before loading from the database and pass it to Get/Set.
	Generation(ctx context.Context) (int64, error)

	GetCategories(ctx context.Context, gen int64) ([]*models.Category, error)
	SetCategories(ctx context.Context, gen int64, categories []*models.Category) error

	GetCars(ctx context.Context, gen int64) ([]*models.CarListItem, error)
	SetCars(ctx context.Context, gen int64, cars []*models.CarListItem) error

	GetCarDetail(ctx context.Context, id int64) (*models.CarDetail, error)
	SetCarDetail(ctx context.Context, car *models.CarDetail) error

	// Invalidate moves to a new generation, orphaning every stored list.
	Invalidate(ctx context.Context) error

	Ping(ctx context.Context) error
	Close() error
}

type redisCatalogCache struct {
	client *redis.Client
	ttl    time.Duration
	logger *zap.Logger
}

// NewRedisCatalogCache connects to Redis. An unreachable server is logged,
// not returned: the service keeps working from the database.
func NewRedisCatalogCache(addr, password string, db int, ttl time.Duration, logger *zap.Logger) CatalogCache {
	parsedAddr := addr
	if strings.HasPrefix(addr, "redis://") || strings.HasPrefix(addr, "rediss://") {
		parsedAddr = strings.TrimPrefix(strings.TrimPrefix(addr, "redis://"), "rediss://")
	}

	client := redis.NewClient(&redis.Options{
		Addr:        parsedAddr,
		Password:    password,
		DB:          db,
		DialTimeout: 2 * time.Second,
	})

	logger = logger.Named("cache")
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		logger.Warn("redis ping failed on initialization", zap.String("addr", parsedAddr), zap.Error(err))
	} else {
		logger.Info("redis connection established", zap.String("addr", parsedAddr))
	}

	return &redisCatalogCache{client: client, ttl: ttl, logger: logger}
}

func (r *redisCatalogCache) get(ctx context.Context, key string, dest interface{}) (bool, error) {
	data, err := r.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return false, nil
		}
		return false, err
	}
	if err := json.Unmarshal(data, dest); err != nil {
		return false, err
	}
	return true, nil
}

func (r *redisCatalogCache) set(ctx context.Context, key string, value interface{}) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return r.client.Set(ctx, key, data, r.ttl).Err()
}

func (r *redisCatalogCache) Generation(ctx context.Context) (int64, error) {
	gen, err := r.client.Get(ctx, generationKey).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	return gen, err
}

func (r *redisCatalogCache) GetCategories(ctx context.Context, gen int64) ([]*models.Category, error) {
	var categories []*models.Category
	hit, err := r.get(ctx, categoriesKey(gen), &categories)
	if err != nil || !hit {
		return nil, err
	}
	return categories, nil
}

func (r *redisCatalogCache) SetCategories(ctx context.Context, gen int64, categories []*models.Category) error {
	return r.set(ctx, categoriesKey(gen), categories)
}

func (r *redisCatalogCache) GetCars(ctx context.Context, gen int64) ([]*models.CarListItem, error) {
	var cars []*models.CarListItem
	hit, err := r.get(ctx, carsKey(gen), &cars)
	if err != nil || !hit {
		return nil, err
	}
	return cars, nil
}

func (r *redisCatalogCache) SetCars(ctx context.Context, gen int64, cars []*models.CarListItem) error {
	return r.set(ctx, carsKey(gen), cars)
}

func (r *redisCatalogCache) GetCarDetail(ctx context.Context, id int64) (*models.CarDetail, error) {
	var car models.CarDetail
	hit, err := r.get(ctx, carDetailKey(id), &car)
	if err != nil || !hit {
		return nil, err
	}
	if car.Images == nil {
		car.Images = []string{}
	}
	return &car, nil
}

func (r *redisCatalogCache) SetCarDetail(ctx context.Context, car *models.CarDetail) error {
	return r.set(ctx, carDetailKey(car.ID), car)
}

func (r *redisCatalogCache) Invalidate(ctx context.Context) error {
	return r.client.Incr(ctx, generationKey).Err()
}

func (r *redisCatalogCache) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}

func (r *redisCatalogCache) Close() error {
	return r.client.Close()
}

type noopCatalogCache struct{}

// NewNoopCatalogCache returns a cache that never hits.
func NewNoopCatalogCache() CatalogCache {
	return noopCatalogCache{}
}

func (noopCatalogCache) Generation(context.Context) (int64, error) { return 0, nil }
func (noopCatalogCache) GetCategories(context.Context, int64) ([]*models.Category, error) {
	return nil, nil
}
func (noopCatalogCache) SetCategories(context.Context, int64, []*models.Category) error { return nil }
func (noopCatalogCache) GetCars(context.Context, int64) ([]*models.CarListItem, error) {
	return nil, nil
}
func (noopCatalogCache) SetCars(context.Context, int64, []*models.CarListItem) error { return nil }
func (noopCatalogCache) GetCarDetail(context.Context, int64) (*models.CarDetail, error) {
	return nil, nil
}
func (noopCatalogCache) SetCarDetail(context.Context, *models.CarDetail) error { return nil }
func (noopCatalogCache) Invalidate(context.Context) error                     { return nil }
func (noopCatalogCache) Ping(context.Context) error                           { return nil }
func (noopCatalogCache) Close() error                                         { return nil }
