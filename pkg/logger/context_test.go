package logger

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestContext() echo.Context {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	return echo.New().NewContext(req, httptest.NewRecorder())
}

func TestFromContext_ReturnsInstalledLogger(t *testing.T) {
	c := newTestContext()
	installed := zap.NewNop()
	c.Set("logger", installed)

	require.Same(t, installed, FromContext(c))
}

func TestFromContext_FallsBackToRequestID(t *testing.T) {
	c := newTestContext()
	c.Set("request_id", "abc-123")

	require.NotNil(t, FromContext(c))
}

func TestFromContext_FallsBackToHeader(t *testing.T) {
	c := newTestContext()
	c.Request().Header.Set(HeaderRequestID, "hdr-456")

	require.NotNil(t, FromContext(c))
}
