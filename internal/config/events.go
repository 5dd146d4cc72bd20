package config

import "os"

const (
	eventQueueURLEnv        = "EVENT_QUEUE_URL"
	eventQueueNameEnv       = "EVENT_QUEUE_NAME"
	eventQueueMaxRetriesEnv = "EVENT_QUEUE_MAX_RETRIES"

	defaultEventQueueName       = "schedule-events"
	defaultEventQueueMaxRetries = 3
)

// EventQueueConfig configures delivery of schedule-applied events.
type EventQueueConfig struct {
	URL       string
	QueueName string

	GCloudProjectID  string
	GCloudLocationID string
	GCloudQueueID    string
	GCloudTargetURL  string

	MaxRetries int
}

func LoadEventQueueConfig() EventQueueConfig {
	queueName := os.Getenv(eventQueueNameEnv)
	if queueName == "" {
		queueName = defaultEventQueueName
	}

	return EventQueueConfig{
		URL:       os.Getenv(eventQueueURLEnv),
		QueueName: queueName,

		GCloudProjectID:  os.Getenv("GCLOUD_PROJECT_ID"),
		GCloudLocationID: os.Getenv("GCLOUD_LOCATION_ID"),
		GCloudQueueID:    os.Getenv("GCLOUD_QUEUE_ID"),
		GCloudTargetURL:  os.Getenv("GCLOUD_TARGET_URL"),

		MaxRetries: positiveInt(eventQueueMaxRetriesEnv, defaultEventQueueMaxRetries),
	}
}
