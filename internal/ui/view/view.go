// Package view is the binding layer between dashboard logic and whatever
// surface draws it. Controllers talk to the interfaces here; Page and
// LoginPage are in-memory models that the HTML templates, the terminal client
// and the tests read back.
package view

// Routes used as navigation targets.
const (
	RouteLogin     = "/login"
	RouteDashboard = "/dashboard"
	RouteLogout    = "/logout"
)

// Marker classes tagging capability-gated elements.
const (
	MarkerEmocOnly  = "emoc-only"
	MarkerAdminOnly = "admin-only"
)

// Text element ids.
const (
	TextUserInfo          = "user-info"
	TextClinicName        = "clinic-name"
	TextTotalPatients     = "total-patients"
	TextTodayAppointments = "today-appointments"
	TextEmocCases         = "emoc-cases"
	TextMonthlyRevenue    = "monthly-revenue"
)

// Table body ids.
const (
	TableActivity = "activity-list"
	TablePatients = "patients-table-body"
	TableEmoc     = "emoc-table-body"
	TableBilling  = "billing-table-body"
	TableUsers    = "users-table-body"
	TableClinics  = "clinics-table-body"
)

// Event targets.
const (
	TargetNav           = "nav"
	TargetPatientSearch = "patient-search"
	TargetLogout        = "logout-btn"
	TargetLoginForm     = "loginForm"
)

// LabelSignIn is the idle label of the login submit control.
const LabelSignIn = "Sign In"

// Sections is the part of a surface the navigator drives.
type Sections interface {
	// NavItems returns the section attribute of every nav control in
	// document order. Several controls may share a section.
	NavItems() []string
	// Panels returns the id of every content panel in document order.
	Panels() []string
	SetNavActive(section string, active bool)
	SetPanelActive(id string, active bool)
}

// Dashboard is everything the dashboard controller needs from a surface.
type Dashboard interface {
	Sections
	SetText(id, text string)
	// SetVisible shows or hides every element tagged with marker.
	SetVisible(marker string, visible bool)
	RenderRows(table string, rows []Row)
	Rows(table string) []Row
	SetRowVisible(table string, index int, visible bool)
	Navigate(route string)
}

// LoginForm is the login screen as seen by the login flow.
type LoginForm interface {
	ShowError(msg string)
	HideError()
	SetSubmitEnabled(enabled bool)
	SetLabel(label string)
	SetLoading(loading bool)
	SetShake(shaking bool)
	Navigate(route string)
}
