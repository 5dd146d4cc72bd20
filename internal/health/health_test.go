package health

import (
	"context"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	_ "github.com/lib/pq"
	"github.com/redis/go-redis/v9"
)

func TestChecker_Check(t *testing.T) {
	unreachableDB, err := sql.Open("postgres", "postgres://u:p@127.0.0.1:1/db?sslmode=disable&connect_timeout=1")
	if err != nil {
		t.Fatalf("sql.Open() unexpected error: %v", err)
	}
	defer unreachableDB.Close()

	unreachableRedis := redis.NewClient(&redis.Options{Addr: "127.0.0.1:1", MaxRetries: -1})
	defer unreachableRedis.Close()

	tests := []struct {
		name       string
		checker    *Checker
		wantStatus Status
		wantChecks []string
	}{
		{
			name:       "no dependencies",
			checker:    NewChecker(nil, nil, "v1"),
			wantStatus: StatusHealthy,
		},
		{
			name:       "unreachable postgres",
			checker:    NewChecker(nil, unreachableDB, "v1"),
			wantStatus: StatusUnhealthy,
			wantChecks: []string{"postgres"},
		},
		{
			name:       "unreachable redis and postgres",
			checker:    NewChecker(unreachableRedis, unreachableDB, "v1"),
			wantStatus: StatusUnhealthy,
			wantChecks: []string{"redis", "postgres"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status := tt.checker.Check(context.Background())

			if status.Status != tt.wantStatus {
				t.Errorf("Status = %s, want %s", status.Status, tt.wantStatus)
			}
			if status.Version != "v1" {
				t.Errorf("Version = %q, want v1", status.Version)
			}
			for _, name := range tt.wantChecks {
				check, ok := status.Checks[name]
				if !ok {
					t.Errorf("missing check %q", name)
					continue
				}
				if check.Error == "" {
					t.Errorf("check %q has no error", name)
				}
			}
		})
	}
}

func TestChecker_Handlers(t *testing.T) {
	gin.SetMode(gin.TestMode)

	unreachableDB, err := sql.Open("postgres", "postgres://u:p@127.0.0.1:1/db?sslmode=disable&connect_timeout=1")
	if err != nil {
		t.Fatalf("sql.Open() unexpected error: %v", err)
	}
	defer unreachableDB.Close()

	r := gin.New()
	healthy := NewChecker(nil, nil, "v1")
	unhealthy := NewChecker(nil, unreachableDB, "v1")
	r.GET("/live", unhealthy.LiveHandler())
	r.GET("/ready", healthy.ReadyHandler())
	r.GET("/not-ready", unhealthy.ReadyHandler())

	tests := []struct {
		path string
		want int
	}{
		{"/live", http.StatusOK},
		{"/ready", http.StatusOK},
		{"/not-ready", http.StatusServiceUnavailable},
	}

	for _, tt := range tests {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, tt.path, nil))

		if w.Code != tt.want {
			t.Errorf("GET %s = %d, want %d", tt.path, w.Code, tt.want)
		}
		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Errorf("GET %s body is not JSON: %v", tt.path, err)
		}
	}
}
