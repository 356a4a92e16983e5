package middleware

import (
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// HeaderXRequestID is the request id header honored and emitted.
const HeaderXRequestID = "X-Request-ID"

// ContextKeyRequestID is the echo context key the request id is stored under.
const ContextKeyRequestID = "request_id"

// RequestID ensures every request carries a request id, generating one when
// the client did not send it. The id is echoed back on the response.
func RequestID() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			rid := c.Request().Header.Get(HeaderXRequestID)
			if rid == "" {
				rid = uuid.NewString()
			}
			c.Set(ContextKeyRequestID, rid)
			c.Response().Header().Set(HeaderXRequestID, rid)
			return next(c)
		}
	}
}
