package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"avtoelon/internal/common"
	"avtoelon/internal/models"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

const internalErrorMessage = "internal server error"

// NewHTTPErrorHandler maps handler errors to a status code and a
// {"message": ...} body. Causes of 5xx responses are logged, never sent.
func NewHTTPErrorHandler(logger *zap.Logger) echo.HTTPErrorHandler {
	logger = logger.Named("errors")
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, message := classify(err)
		if code >= http.StatusInternalServerError {
			logger.Error("request failed",
				zap.String("method", c.Request().Method),
				zap.String("uri", c.Request().RequestURI),
				zap.String("request_id", c.Response().Header().Get(echo.HeaderXRequestID)),
				zap.Error(err),
			)
			message = internalErrorMessage
		}

		var sendErr error
		if c.Request().Method == http.MethodHead {
			sendErr = c.NoContent(code)
		} else {
			sendErr = c.JSON(code, models.ErrorMessage{Message: message})
		}
		if sendErr != nil {
			logger.Error("failed to write error response", zap.Error(sendErr))
		}
	}
}

func classify(err error) (int, string) {
	if ve, ok := common.IsValidationError(err); ok {
		return http.StatusBadRequest, ve.Message
	}
	if errors.Is(err, common.ErrNotFound) {
		return http.StatusNotFound, err.Error()
	}

	var he *echo.HTTPError
	if errors.As(err, &he) {
		if he.Internal != nil {
			if inner, ok := he.Internal.(*echo.HTTPError); ok {
				he = inner
			}
		}
		switch m := he.Message.(type) {
		case string:
			return he.Code, m
		case nil:
			return he.Code, http.StatusText(he.Code)
		default:
			return he.Code, fmt.Sprint(m)
		}
	}
	return http.StatusInternalServerError, internalErrorMessage
}
