package audit

import (
	"context"
	"log/slog"

	"github.com/SscSPs/jewel_ledger/internal/core/domain"
	portssvc "github.com/SscSPs/jewel_ledger/internal/core/ports/services"
	"github.com/SscSPs/jewel_ledger/internal/middleware"
)

// LogRecorder writes audit events to the request logger.
type LogRecorder struct{}

var _ portssvc.AuditRecorder = LogRecorder{}

func (LogRecorder) Record(ctx context.Context, event domain.AuditEvent) error {
	level := slog.LevelInfo
	switch event.Severity {
	case domain.SeverityWarning:
		level = slog.LevelWarn
	case domain.SeverityCritical:
		level = slog.LevelError
	}

	middleware.GetLoggerFromCtx(ctx).LogAttrs(ctx, level, "audit",
		slog.String("action", event.Action),
		slog.String("actor", event.Actor),
		slog.String("org", event.Org),
		slog.String("shop", event.Shop),
		slog.String("description", event.Description),
		slog.Any("metadata", event.Metadata),
	)
	return nil
}

// Multi fans an event out to several recorders and returns the first error.
type Multi []portssvc.AuditRecorder

func (m Multi) Record(ctx context.Context, event domain.AuditEvent) error {
	var firstErr error
	for _, r := range m {
		if err := r.Record(ctx, event); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
