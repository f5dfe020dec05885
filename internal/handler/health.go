package handler // declare the package name; contains HTTP handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/example-api/internal/model"
)

// Health is the legacy plain-text health check used by load balancers and
// callers that expect a text body.  It returns "ok" with a 200 status.
func Health(c echo.Context) error {
	return c.String(http.StatusOK, model.StatusOK)
}

// APIHealth is the versioned health check.  It always reports the same
// fixed JSON object.
func APIHealth(c echo.Context) error {
	return c.JSON(http.StatusOK, model.HealthStatus{
		Status:  model.StatusOK,
		Service: model.ServiceName,
	})
}
