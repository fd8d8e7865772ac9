package ports

import (
	"context"

	"github.com/imagehealth/clinic-dashboard/internal/core/domain"
)

// SessionStore keeps server-side sessions keyed by an opaque session id.
type SessionStore interface {
	Create(ctx context.Context, identity domain.Identity) (string, error)
	// Get returns domain.ErrSessionNotFound for unknown or expired ids.
	Get(ctx context.Context, id string) (*domain.Identity, error)
	Delete(ctx context.Context, id string) error
}
