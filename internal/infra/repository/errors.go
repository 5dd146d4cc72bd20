package repository

import "errors"

var (
	ErrRedisConnection    = errors.New("redis connection error")
	ErrInvalidPreviewData = errors.New("invalid preview data")
	ErrInvalidSlot        = errors.New("invalid work interval")
)
