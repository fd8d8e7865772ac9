// Package fixtures ships the sample dashboard data and the demo accounts
// used by the seeder. Both are embedded YAML documents.
package fixtures

import (
	"context"
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/imagehealth/clinic-dashboard/internal/core/domain"
	"github.com/imagehealth/clinic-dashboard/internal/core/ports"
)

var (
	//go:embed sample.yaml
	sampleYAML []byte

	//go:embed accounts.yaml
	accountsYAML []byte
)

// Accounts is the demo directory: clinics plus the staff accounts bound to them.
type Accounts struct {
	Clinics  []domain.Clinic `yaml:"clinics"`
	Accounts []Account       `yaml:"accounts"`
}

// Account is a demo login. Password is plain text and only used for seeding.
type Account struct {
	Username string `yaml:"username"`
	Password string `yaml:"password"`
	FullName string `yaml:"full_name"`
	Email    string `yaml:"email"`
	Role     string `yaml:"role"`
	ClinicID string `yaml:"clinic_id"`
}

// Register converts the account into the input of AuthService.Register.
func (a Account) Register() ports.RegisterInput {
	return ports.RegisterInput{
		Username: a.Username,
		Password: a.Password,
		FullName: a.FullName,
		Email:    a.Email,
		Role:     a.Role,
		ClinicID: a.ClinicID,
	}
}

// ParseDataset decodes a dataset document.
func ParseDataset(raw []byte) (domain.Dataset, error) {
	var ds domain.Dataset
	if err := yaml.Unmarshal(raw, &ds); err != nil {
		return domain.Dataset{}, fmt.Errorf("decode dataset: %w", err)
	}
	return ds, nil
}

// SampleDataset returns the embedded sample dataset.
func SampleDataset() (domain.Dataset, error) {
	return ParseDataset(sampleYAML)
}

// DemoAccounts returns the embedded demo directory.
func DemoAccounts() (Accounts, error) {
	var a Accounts
	if err := yaml.Unmarshal(accountsYAML, &a); err != nil {
		return Accounts{}, fmt.Errorf("decode accounts: %w", err)
	}
	for _, acc := range a.Accounts {
		if !domain.ValidRole(acc.Role) {
			return Accounts{}, fmt.Errorf("account %q: %w", acc.Username, domain.ErrInvalidRole)
		}
	}
	return a, nil
}

// Repository serves a fixed dataset. It implements ports.DatasetRepository.
type Repository struct {
	ds domain.Dataset
}

// NewRepository decodes the embedded sample once.
func NewRepository() (*Repository, error) {
	ds, err := SampleDataset()
	if err != nil {
		return nil, err
	}
	return &Repository{ds: ds}, nil
}

// NewRepositoryFrom serves ds as is.
func NewRepositoryFrom(ds domain.Dataset) *Repository {
	return &Repository{ds: ds}
}

// Dataset returns a copy of the fixed dataset.
func (r *Repository) Dataset(_ context.Context) (*domain.Dataset, error) {
	ds := r.ds
	return &ds, nil
}
