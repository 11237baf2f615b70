package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// Health is a simple handler that reports the service is up
// Used for health check and root endpoints
func Health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"message": "Server is running",
	})
}
