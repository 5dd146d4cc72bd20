//go:build !gcloud

package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"go.opentelemetry.io/otel/trace"
)

func decode(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("log line is not JSON: %v (%s)", err, buf.String())
	}
	return entry
}

func TestHandler_ServiceAndModule(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&buf, Config{
		Service:       ServiceInfo{Name: "autoschedule", Version: "v1.2.3"},
		Environment:   EnvDev,
		DefaultModule: Module("production-autoschedule"),
	})

	logger.InfoContext(context.Background(), "hello", slog.Int("count", 2))
	entry := decode(t, &buf)

	if entry["msg"] != "hello" {
		t.Errorf("msg = %v, want hello", entry["msg"])
	}
	if entry["module"] != "production-autoschedule" {
		t.Errorf("module = %v, want production-autoschedule", entry["module"])
	}
	if entry["env"] != "dev" {
		t.Errorf("env = %v, want dev", entry["env"])
	}
	service, _ := entry["service"].(map[string]any)
	if service["version"] != "v1.2.3" {
		t.Errorf("service.version = %v, want v1.2.3", service["version"])
	}
}

func TestHandler_ModuleOverrideAndTrace(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&buf, Config{DefaultModule: Module("default")})

	traceID, _ := trace.TraceIDFromHex("4bf92f3577b34da6a3ce929d0e0e4736")
	spanID, _ := trace.SpanIDFromHex("00f067aa0ba902b7")
	ctx := trace.ContextWithSpanContext(context.Background(), trace.NewSpanContext(trace.SpanContextConfig{
		TraceID:    traceID,
		SpanID:     spanID,
		TraceFlags: trace.FlagsSampled,
	}))
	ctx = WithModule(ctx, Module("apply"))

	logger.InfoContext(ctx, "applied")
	entry := decode(t, &buf)

	if entry["module"] != "apply" {
		t.Errorf("module = %v, want apply", entry["module"])
	}
	if entry["trace_id"] != traceID.String() {
		t.Errorf("trace_id = %v, want %s", entry["trace_id"], traceID)
	}
	if entry["span_id"] != spanID.String() {
		t.Errorf("span_id = %v, want %s", entry["span_id"], spanID)
	}
}

func TestHandler_Level(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&buf, Config{Level: slog.LevelWarn})

	logger.Info("dropped")
	if buf.Len() != 0 {
		t.Errorf("info line written at warn level: %s", buf.String())
	}
}
