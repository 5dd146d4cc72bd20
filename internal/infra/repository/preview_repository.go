package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/KasumiMercury/production-autoschedule/internal/domain"
)

const (
	previewKeyPrefix = "autoschedule:preview:"

	defaultPreviewTTL = 30 * time.Minute
)

// previewRecord wraps the stored preview so the payload can evolve.
type previewRecord struct {
	Version  int                   `json:"version"`
	Preview  *domain.PreviewResult `json:"preview"`
	StoredAt time.Time             `json:"stored_at"`
}

const previewRecordVersion = 1

type previewRepository struct {
	client *redis.Client
}

func NewPreviewRepository(client *redis.Client) domain.PreviewRepository {
	return &previewRepository{
		client: client,
	}
}

func (r *previewRepository) SavePreview(ctx context.Context, preview *domain.PreviewResult, ttl time.Duration) error {
	if preview == nil || preview.ID == "" {
		return ErrInvalidPreviewData
	}
	if ttl <= 0 {
		ttl = defaultPreviewTTL
	}

	data, err := json.Marshal(previewRecord{
		Version:  previewRecordVersion,
		Preview:  preview,
		StoredAt: time.Now().UTC(),
	})
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidPreviewData, err)
	}

	return r.client.Set(ctx, previewKeyPrefix+preview.ID, data, ttl).Err()
}

func (r *previewRepository) GetPreview(ctx context.Context, previewID string) (*domain.PreviewResult, error) {
	data, err := r.client.Get(ctx, previewKeyPrefix+previewID).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, domain.ErrPreviewNotFound
		}
		return nil, err
	}

	var record previewRecord
	if err := json.Unmarshal(data, &record); err != nil {
		return nil, ErrInvalidPreviewData
	}
	if record.Version != previewRecordVersion || record.Preview == nil {
		return nil, ErrInvalidPreviewData
	}

	return record.Preview, nil
}

func (r *previewRepository) DeletePreview(ctx context.Context, previewID string) error {
	return r.client.Del(ctx, previewKeyPrefix+previewID).Err()
}
