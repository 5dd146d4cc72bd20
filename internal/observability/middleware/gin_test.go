package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/KasumiMercury/production-autoschedule/internal/observability/metrics"
)

func newRouter(t *testing.T, resolved *string) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	httpMetrics, err := metrics.NewHTTPMetrics()
	if err != nil {
		t.Fatalf("NewHTTPMetrics() unexpected error: %v", err)
	}

	r := gin.New()
	r.Use(Gin(GinConfig{
		SkipPaths:  []string{"/health"},
		Module:     "test",
		TracerName: "test",
		JobNameResolver: func(c *gin.Context) string {
			*resolved = c.FullPath()
			return *resolved
		},
		HTTPMetrics: httpMetrics,
	}))
	r.Use(PanicRecoveryGin())
	r.GET("/health", func(c *gin.Context) { c.Status(http.StatusOK) })
	r.GET("/items/:id", func(c *gin.Context) { c.Status(http.StatusNoContent) })
	r.GET("/panic", func(*gin.Context) { panic("boom") })
	return r
}

func TestGin_RequestID(t *testing.T) {
	tests := []struct {
		name      string
		header    string
		wantExact bool
	}{
		{name: "propagates incoming id", header: "req-123", wantExact: true},
		{name: "generates id", header: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var resolved string
			r := newRouter(t, &resolved)

			req := httptest.NewRequest(http.MethodGet, "/items/42", nil)
			if tt.header != "" {
				req.Header.Set(RequestIDHeader, tt.header)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			got := w.Header().Get(RequestIDHeader)
			if got == "" {
				t.Fatal("response has no request id")
			}
			if tt.wantExact && got != tt.header {
				t.Errorf("request id = %q, want %q", got, tt.header)
			}
			if resolved != "/items/:id" {
				t.Errorf("job name = %q, want /items/:id", resolved)
			}
		})
	}
}

func TestGin_SkipPaths(t *testing.T) {
	var resolved string
	r := newRouter(t, &resolved)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

	if w.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", w.Code)
	}
	if w.Header().Get(RequestIDHeader) != "" {
		t.Error("skipped path got a request id")
	}
	if resolved != "" {
		t.Errorf("job name resolved for skipped path: %q", resolved)
	}
}

func TestPanicRecoveryGin(t *testing.T) {
	var resolved string
	r := newRouter(t, &resolved)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/panic", nil))

	if w.Code != http.StatusInternalServerError {
		t.Errorf("status = %d, want 500", w.Code)
	}
}
