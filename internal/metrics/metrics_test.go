package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

func TestMiddlewareCountsTranslatedStatus(t *testing.T) {
	m := New()

	e := echo.New()
	e.Use(m.Middleware())
	e.GET("/api/cliente/:ruc", func(c echo.Context) error {
		return echo.NewHTTPError(http.StatusNotFound, "missing")
	})
	e.GET("/metrics", echo.WrapHandler(m.Handler()))

	req := httptest.NewRequest(http.MethodGet, "/api/cliente/20123456789", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	require.Equal(t, http.StatusNotFound, rec.Code)

	count := testutil.ToFloat64(m.requests.WithLabelValues(http.MethodGet, "/api/cliente/:ruc", "404"))
	require.Equal(t, float64(1), count, "request must be counted by route template and status")

	m.Hit()
	m.Miss()
	m.Miss()
	require.Equal(t, float64(1), testutil.ToFloat64(m.cacheHits))
	require.Equal(t, float64(2), testutil.ToFloat64(m.cacheMisses))

	req = httptest.NewRequest(http.MethodGet, "/metrics", nil)
	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
	require.True(t, strings.Contains(rec.Body.String(), "clientes_cache_misses_total 2"))
}
