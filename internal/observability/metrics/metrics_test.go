package metrics

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.opentelemetry.io/otel"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"

	"github.com/KasumiMercury/production-autoschedule/internal/domain"
)

func setupReader(t *testing.T) *sdkmetric.ManualReader {
	t.Helper()

	reader := sdkmetric.NewManualReader()
	provider := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))

	previous := otel.GetMeterProvider()
	otel.SetMeterProvider(provider)
	t.Cleanup(func() {
		otel.SetMeterProvider(previous)
		_ = provider.Shutdown(context.Background())
	})
	return reader
}

func collectSums(t *testing.T, reader *sdkmetric.ManualReader) map[string]int64 {
	t.Helper()

	var rm metricdata.ResourceMetrics
	if err := reader.Collect(context.Background(), &rm); err != nil {
		t.Fatalf("Collect() unexpected error: %v", err)
	}

	sums := make(map[string]int64)
	for _, scope := range rm.ScopeMetrics {
		for _, m := range scope.Metrics {
			sum, ok := m.Data.(metricdata.Sum[int64])
			if !ok {
				continue
			}
			for _, dp := range sum.DataPoints {
				sums[m.Name] += dp.Value
			}
		}
	}
	return sums
}

func TestScheduleMetrics_RecordPreview(t *testing.T) {
	reader := setupReader(t)

	m, err := NewScheduleMetrics()
	if err != nil {
		t.Fatalf("NewScheduleMetrics() unexpected error: %v", err)
	}

	ctx := context.Background()
	m.RecordPreview(ctx, domain.Summary{CreateCount: 2, UpdateCount: 1, SkippedTaskCount: 1, ConflictCount: 3}, time.Second, nil)
	m.RecordPreview(ctx, domain.Summary{CreateCount: 5}, time.Second, errors.New("boom"))
	m.RecordApply(ctx, time.Second, nil)

	sums := collectSums(t, reader)

	tests := []struct {
		name string
		want int64
	}{
		{"autoschedule_runs_total", 3},
		{"autoschedule_tasks_classified_total", 4},
		{"autoschedule_conflicts_total", 3},
	}
	for _, tt := range tests {
		if sums[tt.name] != tt.want {
			t.Errorf("%s = %d, want %d", tt.name, sums[tt.name], tt.want)
		}
	}
}

func TestHTTPMetrics_RecordRequest(t *testing.T) {
	reader := setupReader(t)

	m, err := NewHTTPMetrics()
	if err != nil {
		t.Fatalf("NewHTTPMetrics() unexpected error: %v", err)
	}

	m.RecordRequest(context.Background(), "POST", "/api/v1/projects/:projectId/auto-schedule/preview", 200, 20*time.Millisecond)
	m.RecordRequest(context.Background(), "POST", "/api/v1/projects/:projectId/auto-schedule/apply", 404, 5*time.Millisecond)

	if got := collectSums(t, reader)["http_server_requests_total"]; got != 2 {
		t.Errorf("http_server_requests_total = %d, want 2", got)
	}
}
