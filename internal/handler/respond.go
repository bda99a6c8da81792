package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"gym-service/internal/storedproc"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/spf13/cast"
)

// ResourceStore is what a handler needs from the storage layer. The concrete
// implementation is resource.Store; tests substitute a fake.
type ResourceStore interface {
	List(ctx context.Context) ([]storedproc.Record, error)
	Get(ctx context.Context, id int64) (storedproc.Record, error)
	Create(ctx context.Context, params ...any) (storedproc.Record, error)
	Update(ctx context.Context, id int64, params ...any) (storedproc.Record, error)
	Delete(ctx context.Context, id int64) error
}

// writeDBError maps a classified database error to the HTTP contract:
// validation 400, not-found 404, everything else 500. Not-found keeps the
// original API's "message" key; all other errors use "error".
func writeDBError(c echo.Context, err error) error {
	var dbErr *storedproc.Error
	if errors.As(err, &dbErr) {
		switch dbErr.Kind {
		case storedproc.KindValidation:
			return c.JSON(http.StatusBadRequest, echo.Map{"error": dbErr.Message})
		case storedproc.KindNotFound:
			return c.JSON(http.StatusNotFound, echo.Map{"message": dbErr.Message})
		default:
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": dbErr.Message})
		}
	}
	return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
}

// parseID reads the :id route parameter
func parseID(c echo.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// parsePrecio coerces a price sent as a JSON number or numeric string into a
// decimal without an intermediate float rounding step.
func parsePrecio(raw any) (decimal.Decimal, bool) {
	s, err := cast.ToStringE(raw)
	if err != nil {
		return decimal.Decimal{}, false
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Decimal{}, false
	}
	return d, true
}
