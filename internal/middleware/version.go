package middleware

import (
	"github.com/labstack/echo/v4"
)

// APIVersion is the version advertised in the X-API-Version header.
const APIVersion = "v1"

// VersionHeader stamps every response with X-API-Version.
func VersionHeader(version string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			c.Response().Header().Set("X-API-Version", version)
			return next(c)
		}
	}
}
