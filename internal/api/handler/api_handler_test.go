package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/imagehealth/clinic-dashboard/internal/core/domain"
	"github.com/imagehealth/clinic-dashboard/internal/core/service"
	"github.com/imagehealth/clinic-dashboard/internal/infrastructure/fixtures"
)

func newAPIHandler(t *testing.T) *APIHandler {
	t.Helper()
	repo, err := fixtures.NewRepository()
	if err != nil {
		t.Fatalf("fixtures: %v", err)
	}
	return NewAPIHandler(service.NewDashboardService(repo, zerolog.Nop()))
}

func apiContext(target string, id *domain.Identity) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if id != nil {
		c.Set("username", id.Username)
		c.Set("full_name", id.FullName)
		c.Set("role", id.Role)
		c.Set("clinic_id", id.ClinicID)
		c.Set("clinic_name", id.ClinicName)
		c.Set("has_emoc", id.HasEmoc)
	}
	return c, rec
}

func TestAPIHandler_Me(t *testing.T) {
	h := newAPIHandler(t)
	c, rec := apiContext("/api/v1/me", &counselorIdentity)
	if err := h.Me(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	var got domain.Identity
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if got != counselorIdentity {
		t.Fatalf("unexpected identity: %+v", got)
	}
}

func TestAPIHandler_MissingClaims(t *testing.T) {
	h := newAPIHandler(t)
	c, _ := apiContext("/api/v1/me", nil)
	err := h.Me(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %v", err)
	}
}

func TestAPIHandler_DashboardScopedToViewer(t *testing.T) {
	h := newAPIHandler(t)
	c, rec := apiContext("/api/v1/dashboard", &counselorIdentity)
	if err := h.Dashboard(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	var ds domain.Dataset
	if err := json.Unmarshal(rec.Body.Bytes(), &ds); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(ds.Patients) != 3 {
		t.Fatalf("expected 3 patients, got %d", len(ds.Patients))
	}
	if len(ds.EmocCases) != 0 || len(ds.Staff) != 0 || len(ds.Clinics) != 0 {
		t.Fatalf("counselor must not receive gated tables: %+v", ds)
	}
}

func TestAPIHandler_Patients(t *testing.T) {
	h := newAPIHandler(t)
	c, rec := apiContext("/api/v1/patients?q=0169", &adminIdentity)
	if err := h.Patients(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	var resp patientsResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp.Count != 0 || resp.Query != "0169" {
		t.Fatalf("unexpected response: %+v", resp)
	}

	c, rec = apiContext("/api/v1/patients?q=RASHIDA", &adminIdentity)
	if err := h.Patients(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp.Count != 1 || resp.Patients[0].ID != "P003" {
		t.Fatalf("unexpected response: %+v", resp)
	}
}

func TestAPIHandler_AdminTables(t *testing.T) {
	h := newAPIHandler(t)

	c, rec := apiContext("/api/v1/users", &adminIdentity)
	if err := h.Users(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	var users usersResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &users); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(users.Users) != 3 {
		t.Fatalf("expected 3 staff, got %d", len(users.Users))
	}

	c, rec = apiContext("/api/v1/clinics", &adminIdentity)
	if err := h.Clinics(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	var clinics clinicsResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &clinics); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(clinics.Clinics) != 2 {
		t.Fatalf("expected 2 clinics, got %d", len(clinics.Clinics))
	}

	c, rec = apiContext("/api/v1/emoc", &adminIdentity)
	if err := h.Emoc(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	var emoc emocResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &emoc); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(emoc.Cases) != 3 {
		t.Fatalf("expected 3 cases, got %d", len(emoc.Cases))
	}
}
