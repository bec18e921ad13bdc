package middleware

import (
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/redhatinsights/inventory-search-backend/pkg/config"
)

// AddRequestId propagates the platform request id into the echo context,
// minting one when the edge did not send it.
func AddRequestId(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		reqId := c.Request().Header.Get(config.HeaderRequestId)
		if reqId == "" {
			reqId = uuid.NewString()
			c.Request().Header.Set(config.HeaderRequestId, reqId)
		}
		c.Set(config.HeaderRequestId, reqId)
		c.Response().Header().Set(config.HeaderRequestId, reqId)
		return next(c)
	}
}
