package middleware

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/example-api/internal/metrics"
)

// Metrics records method, matched route and final status of every request.
// Requests that matched no route are labelled as not found so raw paths never
// become label values.  Install it outermost so panics turned into 500s by
// Recover are counted too.
func Metrics(m *metrics.Metrics) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)

			// Inner middleware may already have written the error response.
			status := c.Response().Status
			var he *echo.HTTPError
			if err != nil && !c.Response().Committed {
				status = http.StatusInternalServerError
				if errors.As(err, &he) {
					status = he.Code
				}
			}
			route := c.Path()
			if errors.Is(err, echo.ErrNotFound) {
				route = metrics.RouteNotFound
			}
			m.Observe(c.Request().Method, route, status, time.Since(start))
			return err
		}
	}
}
