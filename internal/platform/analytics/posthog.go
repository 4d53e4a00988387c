// Package analytics wraps the PostHog client so callers need not care whether it was configured.
package analytics

import (
	"log/slog"

	"github.com/posthog/posthog-go"
)

const posthogEndpoint = "https://eu.i.posthog.com"

// Client enqueues product analytics events. The zero value is a no-op client.
type Client struct {
	posthogClient posthog.Client
	logger        *slog.Logger
}

// NewClient returns a client for apiKey, or a disabled client when apiKey is empty.
func NewClient(apiKey string, logger *slog.Logger) *Client {
	if apiKey == "" {
		logger.Warn("Posthog API key is empty, not initializing posthog client.")
		return &Client{}
	}
	phClient, err := posthog.NewWithConfig(apiKey, posthog.Config{Endpoint: posthogEndpoint})
	if err != nil {
		logger.Error("Failed to initialize posthog client", slog.String("error", err.Error()))
		return &Client{}
	}
	logger.Info("Posthog client initialized")
	return &Client{posthogClient: phClient, logger: logger}
}

// IsInitialized reports whether events are actually sent.
func (c *Client) IsInitialized() bool {
	return c != nil && c.posthogClient != nil
}

// Enqueue queues an event for distinctID. It never blocks on the network.
func (c *Client) Enqueue(distinctID string, event string, properties map[string]any) {
	if !c.IsInitialized() {
		return
	}
	c.logger.Debug("Enqueueing event", slog.String("distinct_id", distinctID), slog.String("event", event))
	err := c.posthogClient.Enqueue(posthog.Capture{
		DistinctId: distinctID,
		Event:      event,
		Properties: properties,
	})
	if err != nil {
		c.logger.Warn("Failed to enqueue posthog event", slog.String("event", event), slog.String("error", err.Error()))
	}
}

// Close flushes pending events.
func (c *Client) Close() {
	if !c.IsInitialized() {
		return
	}
	c.posthogClient.Close()
}
