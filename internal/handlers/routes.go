package handlers

import (
	"net/http"

	"avtoelon/internal/docs"
	"avtoelon/internal/models"

	"github.com/labstack/echo/v4"
)

// Route binds an echo handler to its documentation. The same table
// registers the router and generates /docs.
type Route struct {
	docs.Operation
	Handler echo.HandlerFunc
}

// Handlers groups the endpoint handlers served by the API.
type Handlers struct {
	Health     *HealthHandlers
	Categories *CategoryHandlers
	Cars       *CarHandlers
}

// Routes returns the route table.
func Routes(h Handlers) []Route {
	errorResponse := func(code int) docs.Response {
		return docs.Response{Code: code, Body: models.ErrorMessage{}}
	}

	return []Route{
		{
			Operation: docs.Operation{
				ID:      "healthCheck",
				Method:  http.MethodGet,
				Path:    "/health",
				Summary: "Liveness check",
				Tag:     "health",
				Responses: []docs.Response{
					{Code: http.StatusOK, Body: models.HealthStatus{}},
				},
			},
			Handler: h.Health.HealthCheck,
		},
		{
			Operation: docs.Operation{
				ID:          "readinessCheck",
				Method:      http.MethodGet,
				Path:        "/health/ready",
				Summary:     "Readiness check",
				Description: "Reports whether the database is reachable, plus the cache state.",
				Tag:         "health",
				Responses: []docs.Response{
					{Code: http.StatusOK, Body: models.HealthStatus{}},
					{Code: http.StatusServiceUnavailable, Body: models.HealthStatus{}},
				},
			},
			Handler: h.Health.ReadinessCheck,
		},
		{
			Operation: docs.Operation{
				ID:          "listCategories",
				Method:      http.MethodGet,
				Path:        "/categories",
				Summary:     "List categories",
				Description: "Returns every category, newest first.",
				Tag:         "categories",
				Responses: []docs.Response{
					{Code: http.StatusOK, Body: []models.Category{}},
					errorResponse(http.StatusInternalServerError),
				},
			},
			Handler: h.Categories.ListCategories,
		},
		{
			Operation: docs.Operation{
				ID:          "createCategory",
				Method:      http.MethodPost,
				Path:        "/categories",
				Summary:     "Create a category",
				Description: "Both fields are required and are stored trimmed.",
				Tag:         "categories",
				Body:        models.CreateCategoryRequest{},
				Responses: []docs.Response{
					{Code: http.StatusCreated, Body: models.Category{}},
					errorResponse(http.StatusBadRequest),
					errorResponse(http.StatusInternalServerError),
				},
			},
			Handler: h.Categories.CreateCategory,
		},
		{
			Operation: docs.Operation{
				ID:          "listCars",
				Method:      http.MethodGet,
				Path:        "/cars",
				Summary:     "List car ads",
				Description: "Returns every car ad with its category name and primary image, newest first.",
				Tag:         "cars",
				Responses: []docs.Response{
					{Code: http.StatusOK, Body: []models.CarListItem{}},
					errorResponse(http.StatusInternalServerError),
				},
			},
			Handler: h.Cars.ListCars,
		},
		{
			Operation: docs.Operation{
				ID:          "getCar",
				Method:      http.MethodGet,
				Path:        "/cars/:id",
				Summary:     "Get a car ad",
				Description: "Returns the car ad with its images in display order.",
				Tag:         "cars",
				Params: []docs.Param{
					{Name: "id", In: "path", Type: "integer", Format: "int64", Description: "Car ad ID"},
				},
				Responses: []docs.Response{
					{Code: http.StatusOK, Body: models.CarDetail{}},
					errorResponse(http.StatusBadRequest),
					errorResponse(http.StatusNotFound),
					errorResponse(http.StatusInternalServerError),
				},
			},
			Handler: h.Cars.GetCar,
		},
	}
}

// Register adds every route to e.
func Register(e *echo.Echo, routes []Route) {
	for _, r := range routes {
		e.Add(r.Method, r.Path, r.Handler).Name = r.ID
	}
}

// Operations extracts the documentation half of the table.
func Operations(routes []Route) []docs.Operation {
	ops := make([]docs.Operation, 0, len(routes))
	for _, r := range routes {
		ops = append(ops, r.Operation)
	}
	return ops
}
