package domain

import "testing"

func TestNewIdentity_EmocRoles(t *testing.T) {
	cases := map[string]bool{
		RoleAdmin:     true,
		RoleManager:   true,
		RoleEmocStaff: true,
		RoleCounselor: false,
	}
	for role, want := range cases {
		id := NewIdentity(&User{Username: "u", FullName: "U", Role: role}, "Nasirabad Clinic")
		if id.HasEmoc != want {
			t.Fatalf("role %s: expected has_emoc=%v, got %v", role, want, id.HasEmoc)
		}
		if id.Can(CapabilityEMOC) != want {
			t.Fatalf("role %s: Can(emoc) disagrees with has_emoc", role)
		}
	}
}

func TestNewIdentity_DefaultsClinicName(t *testing.T) {
	id := NewIdentity(&User{Username: "admin", FullName: "System Administrator", Role: RoleAdmin}, "")
	if id.ClinicName != AllClinics {
		t.Fatalf("expected %q, got %q", AllClinics, id.ClinicName)
	}
	if got := id.DisplayName(); got != "System Administrator (admin)" {
		t.Fatalf("unexpected display name %q", got)
	}
}

func TestIdentity_AdminCapability(t *testing.T) {
	admin := Identity{Username: "admin", Role: RoleAdmin}
	manager := Identity{Username: "m", Role: RoleManager, HasEmoc: true}

	if !admin.Can(CapabilityAdmin) {
		t.Fatalf("admin should have admin capability")
	}
	if manager.Can(CapabilityAdmin) {
		t.Fatalf("manager should not have admin capability")
	}
	if manager.Can(Capability("billing")) {
		t.Fatalf("unknown capability must be denied")
	}
}

func TestDataset_ForStripsGatedTables(t *testing.T) {
	ds := Dataset{
		Patients:  []Patient{{ID: "P001"}},
		EmocCases: []EmocCase{{ID: "EMOC001"}},
		Staff:     []StaffMember{{Username: "admin"}},
		Clinics:   []ClinicSummary{{Name: "Nasirabad Clinic"}},
	}

	counselor := ds.For(Identity{Username: "c", Role: RoleCounselor})
	if counselor.EmocCases != nil || counselor.Staff != nil || counselor.Clinics != nil {
		t.Fatalf("counselor should not receive gated tables: %+v", counselor)
	}
	if len(counselor.Patients) != 1 {
		t.Fatalf("patients must be kept")
	}

	admin := ds.For(Identity{Username: "a", Role: RoleAdmin, HasEmoc: true})
	if len(admin.EmocCases) != 1 || len(admin.Staff) != 1 || len(admin.Clinics) != 1 {
		t.Fatalf("admin should receive every table: %+v", admin)
	}
}
