package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"github.com/iliyamo/example-api/internal/config"
)

// AllMethods is the method list advertised on preflight responses.
var AllMethods = []string{
	http.MethodGet,
	http.MethodHead,
	http.MethodPut,
	http.MethodPatch,
	http.MethodPost,
	http.MethodDelete,
	http.MethodOptions,
}

// CORS applies the cross-origin policy: the given origins, credentialed
// requests allowed, every method and every request header allowed.
// Requested headers are reflected on preflight because AllowHeaders is left
// empty.  With the wildcard origin the caller's Origin is reflected, since
// browsers reject "*" on credentialed responses.
func CORS(origins []string) echo.MiddlewareFunc {
	return echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins:     origins,
		AllowMethods:     AllMethods,
		AllowCredentials: true,

		UnsafeWildcardOriginWithAllowCredentials: hasWildcard(origins),
	})
}

func hasWildcard(origins []string) bool {
	for _, o := range origins {
		if o == config.WildcardOrigin {
			return true
		}
	}
	return false
}
