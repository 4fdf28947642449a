package handlers

import (
	"errors"
	"net/http"

	"avtoelon/internal/common"
	"avtoelon/internal/services"

	"github.com/labstack/echo/v4"
)

// CarHandlers handles car ad HTTP requests
type CarHandlers struct {
	carService services.CarService
}

// NewCarHandlers creates a new car handlers instance
func NewCarHandlers(carService services.CarService) *CarHandlers {
	return &CarHandlers{carService: carService}
}

func (h *CarHandlers) ListCars(c echo.Context) error {
	cars, err := h.carService.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, cars)
}

func (h *CarHandlers) GetCar(c echo.Context) error {
	id, err := common.ParseID(c.Param("id"), "id")
	if errors.Is(err, common.ErrNotFound) {
		return common.NotFound("car ad")
	}
	if err != nil {
		return err
	}

	car, err := h.carService.GetDetail(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, car)
}
