package middleware

import (
	"log"
	"time"

	"github.com/labstack/echo/v4"
)

// RequestLogging writes one access log line per request, tagged with the
// request id assigned upstream.
func RequestLogging() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)

			rid, _ := c.Get(ContextKeyRequestID).(string)
			req := c.Request()
			log.Printf("%s %s %d %s rid=%s remote=%s",
				req.Method,
				req.RequestURI,
				c.Response().Status,
				time.Since(start),
				rid,
				c.RealIP(),
			)
			return err
		}
	}
}
