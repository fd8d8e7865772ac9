package domain

import "time"

const (
	RoleAdmin     = "admin"
	RoleManager   = "manager"
	RoleEmocStaff = "emoc_staff"
	RoleCounselor = "counselor"
)

// AllClinics is shown for accounts that are not bound to a single clinic.
const AllClinics = "All Clinics"

// ValidRole reports whether role is one of the known account roles.
func ValidRole(role string) bool {
	switch role {
	case RoleAdmin, RoleManager, RoleEmocStaff, RoleCounselor:
		return true
	}
	return false
}

// User models a staff account stored in the user repository.
type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	FullName     string    `json:"full_name"`
	Email        string    `json:"email,omitempty"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
	ClinicID     string    `json:"clinic_id,omitempty"`
	Active       bool      `json:"active"`
	LastLoginAt  time.Time `json:"last_login_at,omitempty"`
	LastLoginIP  string    `json:"last_login_ip,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Clinic is a physical clinic an account can be bound to.
type Clinic struct {
	ID       string `json:"id" yaml:"id"`
	Name     string `json:"name" yaml:"name"`
	Location string `json:"location" yaml:"location"`
	Phone    string `json:"phone" yaml:"phone"`
}
