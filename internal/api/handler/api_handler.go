package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/imagehealth/clinic-dashboard/internal/core/ports"
)

// APIHandler serves the dashboard data as JSON to bearer-token clients.
type APIHandler struct {
	dashboard ports.DashboardService
}

func NewAPIHandler(dashboard ports.DashboardService) *APIHandler {
	return &APIHandler{dashboard: dashboard}
}

// Me returns the identity carried by the token.
//
// @Summary      Current identity
// @Tags         api
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  domain.Identity
// @Failure      401  {object}  errorResponse
// @Router       /api/v1/me [get]
func (h *APIHandler) Me(c echo.Context) error {
	id, err := ctxIdentity(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, id)
}

// Dashboard returns every record the caller may see.
//
// @Summary      Dashboard dataset
// @Tags         api
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  domain.Dataset
// @Failure      401  {object}  errorResponse
// @Router       /api/v1/dashboard [get]
func (h *APIHandler) Dashboard(c echo.Context) error {
	id, err := ctxIdentity(c)
	if err != nil {
		return err
	}
	ds, err := h.dashboard.Dataset(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, ds)
}

// Patients searches patients by id, name or phone.
//
// @Summary      Search patients
// @Tags         api
// @Produce      json
// @Security     BearerAuth
// @Param        q    query     string  false  "Search term"
// @Success      200  {object}  patientsResponse
// @Failure      401  {object}  errorResponse
// @Router       /api/v1/patients [get]
func (h *APIHandler) Patients(c echo.Context) error {
	q := c.QueryParam("q")
	patients, err := h.dashboard.SearchPatients(c.Request().Context(), q)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, patientsResponse{Query: q, Count: len(patients), Patients: patients})
}

// Emoc lists EMOC cases. Requires EMOC access.
//
// @Summary      EMOC cases
// @Tags         api
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  emocResponse
// @Failure      403  {object}  errorResponse
// @Router       /api/v1/emoc [get]
func (h *APIHandler) Emoc(c echo.Context) error {
	id, err := ctxIdentity(c)
	if err != nil {
		return err
	}
	ds, err := h.dashboard.Dataset(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, emocResponse{Cases: ds.EmocCases})
}

// Users lists staff accounts. Admin only.
//
// @Summary      Staff accounts
// @Tags         api
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  usersResponse
// @Failure      403  {object}  errorResponse
// @Router       /api/v1/users [get]
func (h *APIHandler) Users(c echo.Context) error {
	id, err := ctxIdentity(c)
	if err != nil {
		return err
	}
	ds, err := h.dashboard.Dataset(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, usersResponse{Users: ds.Staff})
}

// Clinics lists clinics. Admin only.
//
// @Summary      Clinics
// @Tags         api
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  clinicsResponse
// @Failure      403  {object}  errorResponse
// @Router       /api/v1/clinics [get]
func (h *APIHandler) Clinics(c echo.Context) error {
	id, err := ctxIdentity(c)
	if err != nil {
		return err
	}
	ds, err := h.dashboard.Dataset(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, clinicsResponse{Clinics: ds.Clinics})
}
