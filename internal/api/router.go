package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	_ "github.com/imagehealth/clinic-dashboard/docs"
	"github.com/imagehealth/clinic-dashboard/internal/api/handler"
	"github.com/imagehealth/clinic-dashboard/internal/api/middleware"
	"github.com/imagehealth/clinic-dashboard/internal/core/domain"
	"github.com/imagehealth/clinic-dashboard/internal/core/ports"
	"github.com/imagehealth/clinic-dashboard/internal/infrastructure/http/handlers"
)

// Deps are the services the router wires into handlers.
type Deps struct {
	Auth      ports.AuthService
	Sessions  ports.SessionStore
	Dashboard ports.DashboardService

	JWTSecret string
	Cookie    handler.CookieConfig
	Service   handlers.ServiceInfo

	// Readiness defaults to a probe with no dependencies.
	Readiness *handlers.HealthDependenciesHandler
	// Registry receives the HTTP request metrics. A fresh registry is
	// created when nil.
	Registry *prometheus.Registry

	Log zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(d Deps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = NewHTTPErrorHandler(d.Log)
	e.Validator = handler.NewValidator()
	e.Renderer = handler.NewRenderer()

	registry := d.Registry
	if registry == nil {
		registry = prometheus.NewRegistry()
	}

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(requestLogger(d.Log))
	e.Use(echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
		Namespace:  "clinic",
		Registerer: registry,
	}))

	// --- Dependencies ---
	authHandler := handler.NewAuthHandler(d.Auth, d.Sessions, d.Cookie, d.Log)
	dashboardHandler := handler.NewDashboardHandler(d.Sessions, d.Dashboard, d.Cookie.Name, d.Log)
	apiHandler := handler.NewAPIHandler(d.Dashboard)

	// --- Pages ---
	e.GET("/", authHandler.LoginPage)
	e.GET("/login", authHandler.LoginPage)
	e.POST("/login", authHandler.Login)
	e.GET("/logout", authHandler.Logout)
	e.GET("/dashboard", dashboardHandler.Show)

	// --- JSON API (bearer token) ---
	v1 := e.Group("/api/v1", middleware.Auth(d.JWTSecret))
	v1.GET("/me", apiHandler.Me)
	v1.GET("/dashboard", apiHandler.Dashboard)
	v1.GET("/patients", apiHandler.Patients)
	v1.GET("/emoc", apiHandler.Emoc, middleware.RequireCapability(domain.CapabilityEMOC))
	v1.GET("/users", apiHandler.Users, middleware.RBAC(domain.RoleAdmin))
	v1.GET("/clinics", apiHandler.Clinics, middleware.RBAC(domain.RoleAdmin))

	// --- Health probes (no auth required) ---
	healthHandler := handlers.NewHealthHandler(d.Service)
	readiness := d.Readiness
	if readiness == nil {
		readiness = handlers.NewReadinessHandler(nil)
	}
	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readiness.Readiness)

	// --- Observability ---
	e.GET("/metrics", echoprometheus.NewHandlerWithConfig(echoprometheus.HandlerConfig{
		Gatherer: prometheus.Gatherers{prometheus.DefaultGatherer, registry},
	}))
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e
}

func requestLogger(log zerolog.Logger) echo.MiddlewareFunc {
	return echomiddleware.RequestLoggerWithConfig(echomiddleware.RequestLoggerConfig{
		LogURI:       true,
		LogMethod:    true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogRemoteIP:  true,
		LogError:     true,
		HandleError:  true,
		LogValuesFunc: func(c echo.Context, v echomiddleware.RequestLoggerValues) error {
			ev := log.Info()
			if v.Error != nil {
				ev = log.Warn().Err(v.Error)
			}
			ev.Str("method", v.Method).
				Str("uri", v.URI).
				Int("status", v.Status).
				Dur("latency", v.Latency).
				Str("request_id", v.RequestID).
				Str("remote_ip", v.RemoteIP).
				Msg("request")
			return nil
		},
	})
}
