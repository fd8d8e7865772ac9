package service

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/imagehealth/clinic-dashboard/internal/core/domain"
	"github.com/imagehealth/clinic-dashboard/internal/core/ports"
)

const (
	maxUsernameLen = 50
	maxPasswordLen = 100
)

// AuthService implements staff login and account registration.
type AuthService struct {
	repo      ports.UserRepository
	recorder  ports.LoginRecorder
	jwtSecret string
	tokenTTL  time.Duration
	log       zerolog.Logger
}

// NewAuthService wires the repository and audit recorder. A nil recorder
// disables auditing.
func NewAuthService(repo ports.UserRepository, recorder ports.LoginRecorder, jwtSecret string, tokenTTL time.Duration, log zerolog.Logger) *AuthService {
	if tokenTTL <= 0 {
		tokenTTL = 24 * time.Hour
	}
	return &AuthService{repo: repo, recorder: recorder, jwtSecret: jwtSecret, tokenTTL: tokenTTL, log: log}
}

func (s *AuthService) Register(ctx context.Context, in ports.RegisterInput) (*domain.User, error) {
	if in.Username == "" || in.Password == "" {
		return nil, domain.ErrMissingCredentials
	}
	if !domain.ValidRole(in.Role) {
		return nil, domain.ErrInvalidRole
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	user := &domain.User{
		Username:     in.Username,
		FullName:     in.FullName,
		Email:        in.Email,
		PasswordHash: string(hash),
		Role:         in.Role,
		ClinicID:     in.ClinicID,
		Active:       true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	return s.repo.Create(ctx, user)
}

// Login checks the credentials and returns a signed token together with the
// session identity. Unknown, inactive and mismatching accounts all yield
// domain.ErrInvalidCredentials.
func (s *AuthService) Login(ctx context.Context, in ports.LoginInput) (*ports.LoginResult, error) {
	res, err := s.login(ctx, in)
	s.audit(in, err)
	return res, err
}

func (s *AuthService) login(ctx context.Context, in ports.LoginInput) (*ports.LoginResult, error) {
	if in.Username == "" || in.Password == "" {
		return nil, domain.ErrMissingCredentials
	}
	if len(in.Username) > maxUsernameLen || len(in.Password) > maxPasswordLen {
		return nil, domain.ErrInvalidCredentialsFormat
	}

	user, err := s.repo.FindByUsername(ctx, in.Username)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}
	if !user.Active {
		return nil, domain.ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)) != nil {
		return nil, domain.ErrInvalidCredentials
	}

	clinicName := ""
	if user.ClinicID != "" {
		clinicName, err = s.repo.ClinicName(ctx, user.ClinicID)
		if err != nil {
			s.log.Warn().Err(err).Str("clinic_id", user.ClinicID).Msg("clinic lookup failed")
		}
	}
	identity := domain.NewIdentity(user, clinicName)

	now := time.Now().UTC()
	if err := s.repo.RecordLogin(ctx, user.Username, in.IP, now); err != nil {
		s.log.Warn().Err(err).Str("username", user.Username).Msg("failed to record last login")
	}

	token, err := s.generateToken(identity, now)
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("username", user.Username).Str("role", user.Role).Msg("login successful")
	return &ports.LoginResult{Token: token, Identity: identity, IssuedAt: now}, nil
}

func (s *AuthService) audit(in ports.LoginInput, err error) {
	if s.recorder == nil {
		return
	}
	attempt := domain.LoginAttempt{
		ID:        uuid.NewString(),
		Username:  in.Username,
		IP:        in.IP,
		UserAgent: in.UserAgent,
		Success:   err == nil,
		At:        time.Now().UTC(),
	}
	if err != nil {
		attempt.Reason = err.Error()
	}
	s.recorder.Record(attempt)
}

func (s *AuthService) generateToken(id domain.Identity, now time.Time) (string, error) {
	claims := jwt.MapClaims{
		"username":    id.Username,
		"full_name":   id.FullName,
		"role":        id.Role,
		"clinic_id":   id.ClinicID,
		"clinic_name": id.ClinicName,
		"has_emoc":    id.HasEmoc,
		"iat":         now.Unix(),
		"exp":         now.Add(s.tokenTTL).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.jwtSecret))
}
