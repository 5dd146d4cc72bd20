//go:build !gcloud

package eventqueue

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/KasumiMercury/production-autoschedule/internal/domain"
)

// HTTPTasksPublisher posts schedule events to a Cloud Tasks compatible HTTP
// emulator.
type HTTPTasksPublisher struct {
	baseURL    string
	queueName  string
	httpClient *http.Client
	maxRetries int
}

var _ domain.ScheduleEventPublisher = (*HTTPTasksPublisher)(nil)

func NewHTTPTasksPublisher(baseURL, queueName string, maxRetries int) *HTTPTasksPublisher {
	if maxRetries <= 0 {
		maxRetries = defaultMaxRetries
	}
	return &HTTPTasksPublisher{
		baseURL:   baseURL,
		queueName: queueName,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		maxRetries: maxRetries,
	}
}

func (p *HTTPTasksPublisher) PublishScheduleApplied(ctx context.Context, event *domain.ScheduleAppliedEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal schedule event: %w", err)
	}

	reqBody, err := json.Marshal(TasksRequest{
		Task: Task{
			Name: taskID(event),
			HTTPRequest: HTTPRequest{
				Body:    base64.StdEncoding.EncodeToString(payload),
				Headers: eventHeaders(),
			},
		},
	})
	if err != nil {
		return fmt.Errorf("failed to marshal tasks request: %w", err)
	}

	url := p.queueURL()
	err = withRetry(ctx, p.maxRetries, event.PreviewID, func() error {
		return p.doRequest(ctx, url, reqBody, event.PreviewID)
	})
	if err != nil {
		return fmt.Errorf("failed to publish schedule event after %d retries: %w", p.maxRetries, err)
	}
	return nil
}

func (p *HTTPTasksPublisher) queueURL() string {
	if p.queueName != "" && p.queueName != "default" {
		return fmt.Sprintf("%s/tasks/%s", p.baseURL, p.queueName)
	}
	return fmt.Sprintf("%s/tasks", p.baseURL)
}

func (p *HTTPTasksPublisher) doRequest(ctx context.Context, url string, reqBody []byte, previewID string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(reqBody))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := p.httpClient.Do(req)
	if err != nil {
		slog.WarnContext(ctx, "failed to send schedule event",
			slog.String("preview_id", previewID),
			slog.String("error", err.Error()),
		)
		return fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	// 409 means the task for this preview already exists.
	if resp.StatusCode == http.StatusConflict {
		slog.InfoContext(ctx, "schedule event already queued",
			slog.String("preview_id", previewID),
		)
		return nil
	}

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		slog.WarnContext(ctx, "unexpected status code from task queue",
			slog.String("preview_id", previewID),
			slog.Int("status_code", resp.StatusCode),
		)
		return fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	var tasksResp TasksResponse
	if err := json.NewDecoder(resp.Body).Decode(&tasksResp); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}

	slog.InfoContext(ctx, "schedule event queued",
		slog.String("task_name", tasksResp.Name),
		slog.String("preview_id", previewID),
	)
	return nil
}
