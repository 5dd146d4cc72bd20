package eventqueue

import (
	"context"
	"log/slog"
	"math"
	"time"

	"github.com/KasumiMercury/production-autoschedule/internal/domain"
)

const (
	EventTypeScheduleApplied = "schedule.applied"

	eventTypeHeader   = "event_type"
	defaultMaxRetries = 3
)

type TasksRequest struct {
	Task Task `json:"task"`
}

type Task struct {
	Name        string      `json:"name,omitempty"`
	HTTPRequest HTTPRequest `json:"httpRequest"`
}

type HTTPRequest struct {
	Body    string            `json:"body"`
	Headers map[string]string `json:"headers,omitempty"`
}

type TasksResponse struct {
	Name       string `json:"name"`
	CreateTime string `json:"createTime"`
}

// taskID is stable per preview so that a redelivered apply event is
// deduplicated by the queue.
func taskID(event *domain.ScheduleAppliedEvent) string {
	return "schedule-applied-" + event.PreviewID
}

func eventHeaders() map[string]string {
	return map[string]string{
		"Content-Type":  "application/json",
		eventTypeHeader: EventTypeScheduleApplied,
	}
}

func backoff(attempt int) time.Duration {
	return time.Duration(math.Pow(2, float64(attempt-1))) * 100 * time.Millisecond
}

// withRetry calls fn up to maxRetries times with exponential backoff.
func withRetry(ctx context.Context, maxRetries int, previewID string, fn func() error) error {
	var lastErr error
	for attempt := 0; attempt < maxRetries; attempt++ {
		if attempt > 0 {
			wait := backoff(attempt)
			slog.DebugContext(ctx, "retrying schedule event publish",
				slog.String("preview_id", previewID),
				slog.Int("attempt", attempt+1),
				slog.Duration("backoff", wait),
			)
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(wait):
			}
		}

		err := fn()
		if err == nil {
			return nil
		}
		lastErr = err
	}

	slog.ErrorContext(ctx, "all retries exhausted for schedule event publish",
		slog.String("preview_id", previewID),
		slog.Int("max_retries", maxRetries),
		slog.String("error", lastErr.Error()),
	)
	return lastErr
}
