//go:build gcloud

package logging

import (
	"context"
	"fmt"
	"log/slog"

	"go.opentelemetry.io/otel/trace"
)

// gcpTraceAttrs links the record to Cloud Trace.
func gcpTraceAttrs(ctx context.Context, projectID string) []slog.Attr {
	sc := trace.SpanContextFromContext(ctx)
	if projectID == "" || !sc.IsValid() {
		return nil
	}

	return []slog.Attr{
		slog.String("logging.googleapis.com/trace", fmt.Sprintf("projects/%s/traces/%s", projectID, sc.TraceID())),
		slog.String("logging.googleapis.com/spanId", sc.SpanID().String()),
		slog.Bool("logging.googleapis.com/trace_sampled", sc.IsSampled()),
	}
}

// replaceAttr renames the level and message keys to the ones Cloud Logging reads.
func replaceAttr(groups []string, a slog.Attr) slog.Attr {
	if len(groups) > 0 {
		return a
	}
	switch a.Key {
	case slog.LevelKey:
		return slog.String("severity", a.Value.String())
	case slog.MessageKey:
		return slog.Attr{Key: "message", Value: a.Value}
	}
	return a
}
