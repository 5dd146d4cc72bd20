//go:build !gcloud

package config

import (
	"fmt"
	"net/url"
)

// Validate accepts an empty URL, which disables event publishing.
func (c *EventQueueConfig) Validate() error {
	if c.URL == "" {
		return nil
	}

	u, err := url.Parse(c.URL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("%w: %q", ErrInvalidEventQueueURL, c.URL)
	}
	return nil
}
