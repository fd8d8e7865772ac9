package ports

import (
	"context"

	"github.com/imagehealth/clinic-dashboard/internal/core/domain"
)

// DatasetRepository provides the dashboard's sample records.
type DatasetRepository interface {
	Dataset(ctx context.Context) (*domain.Dataset, error)
}

// DashboardService exposes the dashboard data scoped to a viewer.
type DashboardService interface {
	Dataset(ctx context.Context, viewer domain.Identity) (*domain.Dataset, error)
	// SearchPatients matches query case-insensitively against patient id,
	// name and phone. An empty query returns every patient.
	SearchPatients(ctx context.Context, query string) ([]domain.Patient, error)
}
