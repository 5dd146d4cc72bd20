//go:build gcloud

package eventqueue

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	cloudtasks "cloud.google.com/go/cloudtasks/apiv2"
	taskspb "cloud.google.com/go/cloudtasks/apiv2/cloudtaskspb"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/timestamppb"

	"github.com/KasumiMercury/production-autoschedule/internal/domain"
)

type CloudTasksConfig struct {
	ProjectID  string
	LocationID string
	QueueID    string
	TargetURL  string
	MaxRetries int
}

type CloudTasksPublisher struct {
	client     *cloudtasks.Client
	queuePath  string
	targetURL  string
	maxRetries int
}

var _ domain.ScheduleEventPublisher = (*CloudTasksPublisher)(nil)

func NewCloudTasksPublisher(ctx context.Context, cfg CloudTasksConfig) (*CloudTasksPublisher, error) {
	client, err := cloudtasks.NewClient(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create cloud tasks client: %w", err)
	}

	maxRetries := cfg.MaxRetries
	if maxRetries <= 0 {
		maxRetries = defaultMaxRetries
	}

	return &CloudTasksPublisher{
		client:     client,
		queuePath:  fmt.Sprintf("projects/%s/locations/%s/queues/%s", cfg.ProjectID, cfg.LocationID, cfg.QueueID),
		targetURL:  cfg.TargetURL,
		maxRetries: maxRetries,
	}, nil
}

func (p *CloudTasksPublisher) PublishScheduleApplied(ctx context.Context, event *domain.ScheduleAppliedEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal schedule event: %w", err)
	}

	req := &taskspb.CreateTaskRequest{
		Parent: p.queuePath,
		Task: &taskspb.Task{
			Name: p.queuePath + "/tasks/" + taskID(event),
			MessageType: &taskspb.Task_HttpRequest{
				HttpRequest: &taskspb.HttpRequest{
					HttpMethod: taskspb.HttpMethod_POST,
					Url:        p.targetURL,
					Headers:    eventHeaders(),
					Body:       payload,
				},
			},
			ScheduleTime: timestamppb.New(event.AppliedAt),
		},
	}

	err = withRetry(ctx, p.maxRetries, event.PreviewID, func() error {
		return p.createTask(ctx, req, event.PreviewID)
	})
	if err != nil {
		return fmt.Errorf("failed to publish schedule event after %d retries: %w", p.maxRetries, err)
	}
	return nil
}

func (p *CloudTasksPublisher) createTask(ctx context.Context, req *taskspb.CreateTaskRequest, previewID string) error {
	created, err := p.client.CreateTask(ctx, req)
	if err != nil {
		if status.Code(err) == codes.AlreadyExists {
			slog.InfoContext(ctx, "schedule event already queued",
				slog.String("preview_id", previewID),
			)
			return nil
		}

		slog.WarnContext(ctx, "failed to create cloud task",
			slog.String("preview_id", previewID),
			slog.String("error", err.Error()),
		)
		return fmt.Errorf("failed to create cloud task: %w", err)
	}

	slog.InfoContext(ctx, "schedule event queued",
		slog.String("task_name", created.Name),
		slog.String("preview_id", previewID),
	)
	return nil
}

func (p *CloudTasksPublisher) Close() error {
	return p.client.Close()
}
