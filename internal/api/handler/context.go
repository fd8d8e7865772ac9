package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/imagehealth/clinic-dashboard/internal/core/domain"
)

// ctxIdentity rebuilds the identity from the claims injected by the Auth
// middleware. A missing username means the middleware did not run.
func ctxIdentity(c echo.Context) (domain.Identity, error) {
	id := domain.Identity{}
	id.Username, _ = c.Get("username").(string)
	if id.Username == "" {
		return domain.Identity{}, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}

	id.FullName, _ = c.Get("full_name").(string)
	id.Role, _ = c.Get("role").(string)
	id.ClinicID, _ = c.Get("clinic_id").(string)
	id.ClinicName, _ = c.Get("clinic_name").(string)
	id.HasEmoc, _ = c.Get("has_emoc").(bool)
	return id, nil
}
