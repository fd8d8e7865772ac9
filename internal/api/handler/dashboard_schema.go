package handler

import (
	"github.com/imagehealth/clinic-dashboard/internal/core/domain"
	"github.com/imagehealth/clinic-dashboard/internal/ui/view"
)

// --- Server-rendered page (dashboard.html) ---

type dashboardPageData struct {
	UserInfo     string
	ClinicName   string
	LogoutPrompt string
	Query        string
	Nav          []navItemData
	Panels       []panelData
}

type navItemData struct {
	Section string
	Title   string
	Active  bool
}

type panelData struct {
	ID      string
	Section string
	Title   string
	Active  bool
	Search  bool
	Stats   []statData
	Table   *tableData
}

type statData struct {
	ID    string
	Label string
	Value string
}

type tableData struct {
	ID      string
	Headers []string
	Rows    []view.Row
}

// --- JSON API (/api/v1) ---

type patientsResponse struct {
	Query    string           `json:"query"`
	Count    int              `json:"count"`
	Patients []domain.Patient `json:"patients"`
}

type emocResponse struct {
	Cases []domain.EmocCase `json:"cases"`
}

type usersResponse struct {
	Users []domain.StaffMember `json:"users"`
}

type clinicsResponse struct {
	Clinics []domain.ClinicSummary `json:"clinics"`
}
