package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/SscSPs/jewel_ledger/internal/core/domain"
	portssvc "github.com/SscSPs/jewel_ledger/internal/core/ports/services"
	"github.com/SscSPs/jewel_ledger/internal/middleware"
)

// BaseService provides common functionality for all services
type BaseService struct {
	Audit portssvc.AuditRecorder
	Clock func() time.Time
}

// GetLogger gets the logger from context or returns a default one
func (s *BaseService) GetLogger(ctx context.Context) *slog.Logger {
	return middleware.GetLoggerFromCtx(ctx)
}

// LogError logs an error with consistent formatting
func (s *BaseService) LogError(ctx context.Context, err error, msg string, keyvals ...any) {
	logger := s.GetLogger(ctx)
	args := make([]any, 0, len(keyvals)+2)
	args = append(args, slog.String("error", err.Error()))
	args = append(args, keyvals...)
	logger.Error(msg, args...)
}

// LogInfo logs an info message with consistent formatting
func (s *BaseService) LogInfo(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Info(msg, keyvals...)
}

// LogDebug logs a debug message with consistent formatting
func (s *BaseService) LogDebug(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Debug(msg, keyvals...)
}

// Now returns the current time in UTC, or the injected clock's time.
func (s *BaseService) Now() time.Time {
	if s.Clock != nil {
		return s.Clock().UTC()
	}
	return time.Now().UTC()
}

// Emit hands an event to the audit sink after a successful commit.
// Failures are logged and never returned.
func (s *BaseService) Emit(ctx context.Context, event domain.AuditEvent) {
	if s.Audit == nil {
		return
	}
	if event.Org == "" {
		event.Org = middleware.GetOrgIDFromCtx(ctx)
	}
	if event.Severity == "" {
		event.Severity = domain.SeverityInfo
	}
	if err := s.Audit.Record(ctx, event); err != nil {
		s.GetLogger(ctx).Warn("Audit event dropped",
			slog.String("action", event.Action),
			slog.String("shop_id", event.Shop),
			slog.String("error", err.Error()))
	}
}
