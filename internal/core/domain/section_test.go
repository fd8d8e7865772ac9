package domain

import "testing"

func TestParseSection(t *testing.T) {
	for _, s := range Sections {
		got, ok := ParseSection(string(s))
		if !ok || got != s {
			t.Fatalf("ParseSection(%q) = %q, %v", s, got, ok)
		}
	}
	if _, ok := ParseSection("reports"); ok {
		t.Fatalf("unknown section must not parse")
	}
}

func TestSection_PanelID(t *testing.T) {
	if got := SectionPatients.PanelID(); got != "patients-section" {
		t.Fatalf("unexpected panel id %q", got)
	}
}

func TestSection_VisibleTo(t *testing.T) {
	counselor := Identity{Username: "c", Role: RoleCounselor}
	emoc := Identity{Username: "e", Role: RoleEmocStaff, HasEmoc: true}

	if SectionEmoc.VisibleTo(counselor) {
		t.Fatalf("emoc section must be hidden from counselor")
	}
	if !SectionEmoc.VisibleTo(emoc) {
		t.Fatalf("emoc section must be visible to emoc staff")
	}
	if SectionUsers.VisibleTo(emoc) || SectionClinics.VisibleTo(emoc) {
		t.Fatalf("admin sections must be hidden from emoc staff")
	}
	if !SectionBilling.VisibleTo(counselor) {
		t.Fatalf("ungated section must be visible")
	}
}
