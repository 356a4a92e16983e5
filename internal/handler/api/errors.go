package api

import (
	"errors"

	"TrendPulse/internal/domain/models"
	xhttp "TrendPulse/pkg/http"

	"github.com/labstack/echo/v4"
)

// DomainErrorResponse maps domain error types onto HTTP responses.
// Validation failures become 400, missing trends 404, everything else 500.
func DomainErrorResponse(c echo.Context, err error) error {
	var (
		ve *models.ValidationError
		nf *models.NotFoundError
	)
	switch {
	case errors.As(err, &ve):
		return xhttp.AppErrorResponse(c, xhttp.FieldError(ve.Field, ve.Error()).WithError(ve))
	case errors.As(err, &nf):
		return xhttp.AppErrorResponse(c, xhttp.NotFoundError(nf.Error()).WithError(nf))
	default:
		return xhttp.AppErrorResponse(c, xhttp.InternalError("internal error").WithError(err))
	}
}
