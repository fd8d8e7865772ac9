package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/imagehealth/clinic-dashboard/internal/core/domain"
	"github.com/imagehealth/clinic-dashboard/internal/core/ports"
)

// SeedReport summarises a seeding run.
type SeedReport struct {
	Clinics  int
	Created  int
	Existing int
}

// SeedService populates the clinic directory and staff accounts. Running it
// twice is harmless: clinics are upserted and existing accounts are skipped.
type SeedService struct {
	clinics ports.ClinicRepository
	auth    ports.AuthService
	log     zerolog.Logger
}

func NewSeedService(clinics ports.ClinicRepository, auth ports.AuthService, log zerolog.Logger) *SeedService {
	return &SeedService{clinics: clinics, auth: auth, log: log}
}

func (s *SeedService) Seed(ctx context.Context, clinics []domain.Clinic, accounts []ports.RegisterInput) (SeedReport, error) {
	var report SeedReport

	for _, c := range clinics {
		if err := s.clinics.UpsertClinic(ctx, c); err != nil {
			return report, fmt.Errorf("seed clinic %s: %w", c.ID, err)
		}
		report.Clinics++
	}

	for _, in := range accounts {
		_, err := s.auth.Register(ctx, in)
		switch {
		case errors.Is(err, domain.ErrUserExists):
			report.Existing++
			s.log.Debug().Str("username", in.Username).Msg("account already exists")
		case err != nil:
			return report, fmt.Errorf("seed account %s: %w", in.Username, err)
		default:
			report.Created++
			s.log.Info().Str("username", in.Username).Str("role", in.Role).Msg("account created")
		}
	}

	return report, nil
}
