package domain

// Section is one mutually-exclusive panel of the dashboard.
type Section string

const (
	SectionOverview Section = "overview"
	SectionPatients Section = "patients"
	SectionEmoc     Section = "emoc"
	SectionBilling  Section = "billing"
	SectionUsers    Section = "users"
	SectionClinics  Section = "clinics"
)

// DefaultSection is active after every page load.
const DefaultSection = SectionOverview

// Sections lists every dashboard section in navigation order.
var Sections = []Section{
	SectionOverview,
	SectionPatients,
	SectionEmoc,
	SectionBilling,
	SectionUsers,
	SectionClinics,
}

var sectionTitles = map[Section]string{
	SectionOverview: "Overview",
	SectionPatients: "Patients",
	SectionEmoc:     "EMOC Cases",
	SectionBilling:  "Billing",
	SectionUsers:    "Users",
	SectionClinics:  "Clinics",
}

// ParseSection converts a nav "section" attribute into a Section.
func ParseSection(s string) (Section, bool) {
	sec := Section(s)
	_, ok := sectionTitles[sec]
	return sec, ok
}

// PanelID is the identifier of the content panel for the section.
func (s Section) PanelID() string {
	return string(s) + "-section"
}

func (s Section) Title() string {
	if t, ok := sectionTitles[s]; ok {
		return t
	}
	return string(s)
}

// Capability returns the capability required to see the section, if any.
func (s Section) Capability() (Capability, bool) {
	switch s {
	case SectionEmoc:
		return CapabilityEMOC, true
	case SectionUsers, SectionClinics:
		return CapabilityAdmin, true
	}
	return "", false
}

// VisibleTo reports whether the identity may navigate to the section.
func (s Section) VisibleTo(id Identity) bool {
	c, gated := s.Capability()
	return !gated || id.Can(c)
}
