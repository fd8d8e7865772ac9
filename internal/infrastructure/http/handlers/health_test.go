package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
)

func TestLiveness(t *testing.T) {
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/health", nil), rec)

	h := NewHealthHandler(ServiceInfo{Name: "IMAGE EHR", Version: "1.0.0", Environment: "development"})
	if err := h.Liveness(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var body livenessResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.Status != "healthy" || body.Service != "IMAGE EHR" || body.Environment != "development" {
		t.Fatalf("unexpected body: %+v", body)
	}
}

func TestReadiness(t *testing.T) {
	tests := []struct {
		name     string
		redisErr error
		wantCode int
		want     string
	}{
		{"all up", nil, http.StatusOK, "ok"},
		{"redis down", errors.New("connection refused"), http.StatusServiceUnavailable, "degraded"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewReadinessHandler(map[string]Check{
				"mongodb": func(context.Context) error { return nil },
				"redis":   func(context.Context) error { return tt.redisErr },
			})

			e := echo.New()
			rec := httptest.NewRecorder()
			c := e.NewContext(httptest.NewRequest(http.MethodGet, "/health/ready", nil), rec)

			if err := h.Readiness(c); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if rec.Code != tt.wantCode {
				t.Fatalf("expected %d, got %d", tt.wantCode, rec.Code)
			}

			var body readinessResponse
			if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
				t.Fatalf("decode: %v", err)
			}
			if body.Status != tt.want {
				t.Fatalf("expected status %q, got %q", tt.want, body.Status)
			}
			if body.Dependencies["mongodb"].Status != "ok" {
				t.Fatalf("mongodb should be ok: %+v", body.Dependencies)
			}
			if tt.redisErr != nil && body.Dependencies["redis"].Error != tt.redisErr.Error() {
				t.Fatalf("expected redis error to be reported: %+v", body.Dependencies)
			}
		})
	}
}
