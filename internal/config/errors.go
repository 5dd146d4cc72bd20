package config

import "errors"

var (
	ErrRedisAddrMissing     = errors.New("REDIS_ADDR is required")
	ErrInvalidRedisDB       = errors.New("REDIS_DB must be a valid integer")
	ErrDatabaseURLMissing   = errors.New("DATABASE_URL is required")
	ErrInvalidTimezone      = errors.New("SCHEDULE_TIMEZONE must be a valid IANA time zone")
	ErrInvalidCursorPolicy  = errors.New("SCHEDULE_CURSOR_POLICY must be chained or independent")
	ErrInvalidWorkday       = errors.New("SCHEDULE_WORKDAY_START and SCHEDULE_WORKDAY_END must form a non-empty HH:MM window")
	ErrInvalidEventQueueURL = errors.New("EVENT_QUEUE_URL must be an absolute URL")
)
