package server

import (
	"net/http"

	"avtoelon/internal/caching"
	"avtoelon/internal/config"
	"avtoelon/internal/docs"
	"avtoelon/internal/handlers"
	"avtoelon/internal/middleware"
	"avtoelon/internal/repositories"
	"avtoelon/internal/services"

	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const version = "1.0.0"

// New wires repositories, services and handlers into an echo instance and
// publishes the API document served under /docs.
func New(cfg *config.Config, logger *zap.Logger, db *gorm.DB, cache caching.CatalogCache) (*echo.Echo, error) {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = handlers.NewHTTPErrorHandler(logger)

	e.Use(middleware.RequestID())
	e.Use(middleware.RequestLogger(logger))
	e.Use(echoMiddleware.Recover())
	e.Use(echoMiddleware.CORS())
	e.Use(middleware.VersionHeader(middleware.APIVersion))

	categoryRepo := repositories.NewCategoryRepo(db)
	carRepo := repositories.NewCarRepo(db)
	carImageRepo := repositories.NewCarImageRepo(db)

	categoryService := services.NewCategoryService(categoryRepo, cache, logger)
	carService := services.NewCarService(carRepo, carImageRepo, cache, logger)

	routes := handlers.Routes(handlers.Handlers{
		Health:     handlers.NewHealthHandlers(db, cache, logger),
		Categories: handlers.NewCategoryHandlers(categoryService),
		Cars:       handlers.NewCarHandlers(carService),
	})
	handlers.Register(e, routes)

	doc, err := docs.Build(docs.Info{
		Title:       "Avtoelon API",
		Description: "Car classifieds: categories, car ads and their photo galleries.",
		Version:     version,
	}, handlers.Operations(routes))
	if err != nil {
		return nil, err
	}
	if err := docs.Publish(doc); err != nil {
		return nil, err
	}

	redirect := func(c echo.Context) error {
		return c.Redirect(http.StatusMovedPermanently, "/docs/index.html")
	}
	e.GET("/docs", redirect)
	e.GET("/docs/", redirect)
	e.GET("/docs/*", echoSwagger.WrapHandler)

	logger.Info("server configured",
		zap.Int("routes", len(routes)),
		zap.String("env", cfg.Server.Env),
		zap.Bool("cache", cfg.CacheEnabled()),
	)
	return e, nil
}
