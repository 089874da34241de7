package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// Health reports liveness for load balancers and monitoring.
func Health(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{"status": "ok"})
}

// Welcome greets unauthenticated visitors of the API root.
func Welcome(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{
		"message": "Welcome to the Staff Management API! This API is designed to help you manage your staff members. Please use the documentation provided to learn more about the available endpoints and how to use them.",
	})
}
