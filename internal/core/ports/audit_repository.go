package ports

import (
	"context"

	"github.com/academix/school-system/internal/core/domain"
)

// AuditRepository persists audit trail entries.
type AuditRepository interface {
	Insert(ctx context.Context, e *domain.AuditEntry) error
}

// AuditSink accepts audit entries for asynchronous persistence. Record never
// blocks; entries may be dropped under backpressure.
type AuditSink interface {
	Record(e domain.AuditEntry)
}
