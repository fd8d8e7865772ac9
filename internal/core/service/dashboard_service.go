package service

import (
	"context"
	"strings"

	"github.com/rs/zerolog"

	"github.com/imagehealth/clinic-dashboard/internal/core/domain"
	"github.com/imagehealth/clinic-dashboard/internal/core/ports"
)

type DashboardService struct {
	repo   ports.DatasetRepository
	logger zerolog.Logger
}

func NewDashboardService(repo ports.DatasetRepository, logger zerolog.Logger) *DashboardService {
	return &DashboardService{repo: repo, logger: logger}
}

// Dataset returns the dashboard data with the tables viewer may not see
// removed.
func (s *DashboardService) Dataset(ctx context.Context, viewer domain.Identity) (*domain.Dataset, error) {
	ds, err := s.repo.Dataset(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to load dataset")
		return nil, err
	}
	scoped := ds.For(viewer)
	return &scoped, nil
}

func (s *DashboardService) SearchPatients(ctx context.Context, query string) ([]domain.Patient, error) {
	ds, err := s.repo.Dataset(ctx)
	if err != nil {
		return nil, err
	}

	q := strings.ToLower(strings.TrimSpace(query))
	matched := make([]domain.Patient, 0, len(ds.Patients))
	for _, p := range ds.Patients {
		if q == "" ||
			strings.Contains(strings.ToLower(p.ID), q) ||
			strings.Contains(strings.ToLower(p.Name), q) ||
			strings.Contains(strings.ToLower(p.Phone), q) {
			matched = append(matched, p)
		}
	}
	return matched, nil
}
