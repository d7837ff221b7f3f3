// Package audit provides the AuditRecorder implementations: PostHog for production and
// slog for local runs.
package audit

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SscSPs/jewel_ledger/internal/core/domain"
	portssvc "github.com/SscSPs/jewel_ledger/internal/core/ports/services"
	"github.com/SscSPs/jewel_ledger/internal/middleware"
	"github.com/posthog/posthog-go"
)

// PosthogRecorder sends audit events to PostHog. Enqueue is non-blocking; the client
// batches and flushes in the background.
type PosthogRecorder struct {
	client posthog.Client
}

var _ portssvc.AuditRecorder = (*PosthogRecorder)(nil)

// NewPosthogRecorder creates a recorder. It returns an error when the client cannot be built.
func NewPosthogRecorder(apiKey, endpoint string) (*PosthogRecorder, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("posthog api key is empty")
	}
	client, err := posthog.NewWithConfig(apiKey, posthog.Config{Endpoint: endpoint})
	if err != nil {
		return nil, fmt.Errorf("creating posthog client: %w", err)
	}
	return &PosthogRecorder{client: client}, nil
}

// newPosthogRecorderWithClient is used by tests to inject a fake client.
func newPosthogRecorderWithClient(client posthog.Client) *PosthogRecorder {
	return &PosthogRecorder{client: client}
}

// Record enqueues the event under the actor's distinct id.
func (r *PosthogRecorder) Record(ctx context.Context, event domain.AuditEvent) error {
	props := posthog.NewProperties().
		Set("org", event.Org).
		Set("shop", event.Shop).
		Set("description", event.Description).
		Set("severity", string(event.Severity))
	for k, v := range event.Metadata {
		props.Set(k, v)
	}

	distinctID := event.Actor
	if distinctID == "" {
		distinctID = "system"
	}

	if err := r.client.Enqueue(posthog.Capture{
		DistinctId: distinctID,
		Event:      event.Action,
		Properties: props,
	}); err != nil {
		middleware.GetLoggerFromCtx(ctx).Warn("Failed to enqueue audit event", slog.String("action", event.Action), slog.String("error", err.Error()))
		return err
	}
	return nil
}

// Close flushes pending events.
func (r *PosthogRecorder) Close() error {
	return r.client.Close()
}
