// posthog_client.go wraps the posthog client so callers can use it whether or not analytics is configured.
package utils

import (
	"fmt"
	"log/slog"

	"github.com/posthog/posthog-go"
)

// UsageTracker forwards usage events to PostHog. A tracker built without an
// API key drops every event.
type UsageTracker struct {
	posthogClient posthog.Client
	logger        *slog.Logger
}

func NewUsageTracker(apiKey, endpoint string, logger *slog.Logger) (*UsageTracker, error) {
	if apiKey == "" {
		logger.Info("POSTHOG_API_KEY not set, usage analytics disabled")
		return &UsageTracker{}, nil
	}
	client, err := posthog.NewWithConfig(apiKey, posthog.Config{Endpoint: endpoint})
	if err != nil {
		return nil, fmt.Errorf("failed to create posthog client: %w", err)
	}
	logger.Info("Usage analytics enabled", slog.String("endpoint", endpoint))
	return &UsageTracker{posthogClient: client, logger: logger}, nil
}

func (w *UsageTracker) Enabled() bool {
	return w != nil && w.posthogClient != nil
}

func (w *UsageTracker) Enqueue(distinctID string, event string, properties map[string]any) {
	if !w.Enabled() {
		return
	}
	err := w.posthogClient.Enqueue(posthog.Capture{
		DistinctId: distinctID,
		Event:      event,
		Properties: properties,
	})
	if err != nil {
		w.logger.Debug("Dropped usage event", slog.String("event", event), slog.String("error", err.Error()))
	}
}

// Close flushes queued events.
func (w *UsageTracker) Close() {
	if !w.Enabled() {
		return
	}
	if err := w.posthogClient.Close(); err != nil {
		w.logger.Warn("Failed to flush usage events", slog.String("error", err.Error()))
	}
}
