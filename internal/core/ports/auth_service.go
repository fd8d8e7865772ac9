package ports

import (
	"context"
	"time"

	"github.com/imagehealth/clinic-dashboard/internal/core/domain"
)

// LoginInput carries the credentials and request metadata of a login.
type LoginInput struct {
	Username  string
	Password  string
	IP        string
	UserAgent string
}

// LoginResult is returned on a successful login.
type LoginResult struct {
	Token    string
	Identity domain.Identity
	IssuedAt time.Time
}

// RegisterInput describes a new staff account.
type RegisterInput struct {
	Username string
	Password string
	FullName string
	Email    string
	Role     string
	ClinicID string
}

type AuthService interface {
	Login(ctx context.Context, input LoginInput) (*LoginResult, error)
	Register(ctx context.Context, input RegisterInput) (*domain.User, error)
}
