package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"go.uber.org/zap"

	"github.com/johnquangdev/transcript-archive/pkg/metrics"
)

func TestMetrics_RecordsRouteTemplate(t *testing.T) {
	m := metrics.NewNop()
	e := echo.New()
	e.Use(Metrics(m), RequestLogger(zap.NewNop()))
	e.GET("/v1/files/:id", func(c echo.Context) error {
		return c.NoContent(http.StatusNoContent)
	})
	e.GET("/boom", func(c echo.Context) error {
		return echo.NewHTTPError(http.StatusTeapot, "short and stout")
	})

	for _, path := range []string{"/v1/files/1", "/v1/files/2", "/boom"} {
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	}

	if got := testutil.ToFloat64(m.HTTPRequests.WithLabelValues("GET", "/v1/files/:id", "204")); got != 2 {
		t.Errorf("requests for /v1/files/:id = %v, want 2", got)
	}
	if got := testutil.ToFloat64(m.HTTPRequests.WithLabelValues("GET", "/boom", "418")); got != 1 {
		t.Errorf("requests for /boom = %v, want 1", got)
	}
}
