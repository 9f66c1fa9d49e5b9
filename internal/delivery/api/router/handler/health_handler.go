package handler

import (
	"bizhub/internal/delivery/api/response"

	"github.com/labstack/echo/v4"
)

// HealthCheck handles liveness probes.
func HealthCheck(c echo.Context) error {
	return response.OK(c, map[string]string{"status": "ok"})
}
