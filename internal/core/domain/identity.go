package domain

import "fmt"

// Capability is a named permission gating parts of the dashboard.
type Capability string

const (
	CapabilityEMOC  Capability = "emoc"
	CapabilityAdmin Capability = "admin"
)

// Identity is the authenticated user's display and authorization attributes
// for the current session. It is the payload stored under the "user" key on
// the client and returned by POST /login.
type Identity struct {
	Username   string `json:"username"`
	FullName   string `json:"full_name"`
	Role       string `json:"role"`
	ClinicID   string `json:"clinic_id,omitempty"`
	ClinicName string `json:"clinic_name"`
	HasEmoc    bool   `json:"has_emoc"`
}

// NewIdentity derives the session identity for an account.
func NewIdentity(u *User, clinicName string) Identity {
	if clinicName == "" {
		clinicName = AllClinics
	}
	return Identity{
		Username:   u.Username,
		FullName:   u.FullName,
		Role:       u.Role,
		ClinicID:   u.ClinicID,
		ClinicName: clinicName,
		HasEmoc:    RoleHasEmoc(u.Role),
	}
}

// RoleHasEmoc reports whether accounts with role may see EMOC cases.
func RoleHasEmoc(role string) bool {
	return role == RoleAdmin || role == RoleManager || role == RoleEmocStaff
}

// Can reports whether the identity grants capability c.
func (i Identity) Can(c Capability) bool {
	switch c {
	case CapabilityEMOC:
		return i.HasEmoc
	case CapabilityAdmin:
		return i.Role == RoleAdmin
	}
	return false
}

// DisplayName is the header label, e.g. "System Administrator (admin)".
func (i Identity) DisplayName() string {
	return fmt.Sprintf("%s (%s)", i.FullName, i.Role)
}

// Valid reports whether the identity carries a username. An identity without
// one is treated as absent.
func (i Identity) Valid() bool {
	return i.Username != ""
}
