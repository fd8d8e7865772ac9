package ports

import (
	"context"
	"time"

	"github.com/imagehealth/clinic-dashboard/internal/core/domain"
)

// UserRepository defines persistence for staff accounts and their clinics.
type UserRepository interface {
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	// ClinicName resolves a clinic id to its display name. An unknown id
	// returns an empty name and no error.
	ClinicName(ctx context.Context, clinicID string) (string, error)
	RecordLogin(ctx context.Context, username, ip string, at time.Time) error
}

// ClinicRepository maintains the clinic directory used to resolve names.
type ClinicRepository interface {
	UpsertClinic(ctx context.Context, clinic domain.Clinic) error
}
