package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/imagehealth/clinic-dashboard/internal/core/domain"
)

// RBAC enforces role-based access control.
func RBAC(allowedRoles ...string) echo.MiddlewareFunc {
	allowed := make(map[string]struct{}, len(allowedRoles))
	for _, r := range allowedRoles {
		allowed[r] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, _ := c.Get("role").(string)
			if _, ok := allowed[role]; !ok {
				return c.JSON(http.StatusForbidden, map[string]string{"detail": "forbidden"})
			}
			return next(c)
		}
	}
}

// RequireCapability admits callers whose claims grant capability.
func RequireCapability(capability domain.Capability) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			id := domain.Identity{}
			id.Role, _ = c.Get("role").(string)
			id.HasEmoc, _ = c.Get("has_emoc").(bool)
			if !id.Can(capability) {
				return c.JSON(http.StatusForbidden, map[string]string{"detail": "forbidden"})
			}
			return next(c)
		}
	}
}
