package logger

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// HeaderRequestID is the header the request-id middleware mirrors the
// correlation id into.
const HeaderRequestID = "X-Request-ID"

// FromContext returns the request-scoped logger installed by the request-id
// middleware. When none is installed it falls back to the global logger,
// tagged with whatever request id can still be recovered.
func FromContext(c echo.Context) *zap.Logger {
	if log, ok := c.Get("logger").(*zap.Logger); ok {
		return log
	}

	requestID, ok := c.Get("request_id").(string)
	if !ok {
		requestID = c.Request().Header.Get(HeaderRequestID)
		if requestID == "" {
			requestID = "unknown"
		}
	}
	return GetLogger().With(zap.String("request_id", requestID))
}
