package ports

import (
	"context"

	"github.com/bookhaven/bookstore-api/internal/core/domain"
)

// AuditRecorder accepts audit events for asynchronous persistence.
// Record must be safe for concurrent use and must not block request handling
// beyond the recorder's internal buffering.
type AuditRecorder interface {
	Record(event domain.AuditEvent)
}

// AuditRepository persists audit events.
type AuditRepository interface {
	Insert(ctx context.Context, event *domain.AuditEvent) error
}
