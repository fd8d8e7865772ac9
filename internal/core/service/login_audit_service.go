package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/imagehealth/clinic-dashboard/internal/core/domain"
	"github.com/imagehealth/clinic-dashboard/internal/core/ports"
)

type loginAuditService struct {
	repo ports.LoginAttemptRepository
	log  zerolog.Logger
}

// NewLoginAuditService returns a LoginAuditService backed by repo.
func NewLoginAuditService(repo ports.LoginAttemptRepository, log zerolog.Logger) ports.LoginAuditService {
	return &loginAuditService{repo: repo, log: log}
}

func (s *loginAuditService) Process(ctx context.Context, attempt domain.LoginAttempt) error {
	if err := s.repo.Insert(ctx, &attempt); err != nil {
		return fmt.Errorf("audit login attempt: %w", err)
	}

	ev := s.log.Debug()
	if !attempt.Success {
		ev = s.log.Warn()
	}
	ev.Str("username", attempt.Username).
		Str("ip", attempt.IP).
		Bool("success", attempt.Success).
		Msg("login attempt recorded")
	return nil
}
