package middleware

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"
)

// CORSConfig controls the cross-origin headers emitted by CORS.
type CORSConfig struct {
	AllowOrigins  []string
	AllowMethods  []string
	AllowHeaders  []string
	ExposeHeaders []string
	MaxAge        int // seconds a preflight result may be cached
}

// CORS emits cross-origin headers and short-circuits preflight requests.
// Requests from origins outside AllowOrigins pass through untouched.
func CORS(cfg CORSConfig) echo.MiddlewareFunc {
	allowMethods := strings.Join(cfg.AllowMethods, ", ")
	allowHeaders := strings.Join(cfg.AllowHeaders, ", ")
	exposeHeaders := strings.Join(cfg.ExposeHeaders, ", ")

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			origin := c.Request().Header.Get(echo.HeaderOrigin)
			if !originAllowed(cfg.AllowOrigins, origin) {
				return next(c)
			}

			h := c.Response().Header()
			switch {
			case origin != "":
				h.Set(echo.HeaderAccessControlAllowOrigin, origin)
			case allowsAnyOrigin(cfg.AllowOrigins):
				h.Set(echo.HeaderAccessControlAllowOrigin, "*")
			}
			if allowMethods != "" {
				h.Set(echo.HeaderAccessControlAllowMethods, allowMethods)
			}
			if allowHeaders != "" {
				h.Set(echo.HeaderAccessControlAllowHeaders, allowHeaders)
			}
			if exposeHeaders != "" {
				h.Set(echo.HeaderAccessControlExposeHeaders, exposeHeaders)
			}

			if c.Request().Method == http.MethodOptions {
				if cfg.MaxAge > 0 {
					h.Set(echo.HeaderAccessControlMaxAge, strconv.Itoa(cfg.MaxAge))
				}
				return c.NoContent(http.StatusNoContent)
			}
			return next(c)
		}
	}
}

func originAllowed(allowed []string, origin string) bool {
	if len(allowed) == 0 {
		return true
	}
	for _, o := range allowed {
		if o == "*" || o == origin {
			return true
		}
	}
	return false
}

func allowsAnyOrigin(allowed []string) bool {
	return len(allowed) > 0 && allowed[0] == "*"
}
