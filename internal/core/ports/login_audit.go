package ports

import (
	"context"

	"github.com/imagehealth/clinic-dashboard/internal/core/domain"
)

// LoginAttemptRepository persists the login audit trail.
type LoginAttemptRepository interface {
	Insert(ctx context.Context, attempt *domain.LoginAttempt) error
}

// LoginRecorder accepts attempts for asynchronous auditing. Record must not
// block the login request.
type LoginRecorder interface {
	Record(attempt domain.LoginAttempt)
}

// LoginAuditService writes a single attempt to the audit trail.
type LoginAuditService interface {
	Process(ctx context.Context, attempt domain.LoginAttempt) error
}
