package handler

import (
	"time"

	"github.com/imagehealth/clinic-dashboard/internal/core/domain"
)

type loginRequest struct {
	Username string `json:"username" form:"username" validate:"required,max=50"`
	Password string `json:"password" form:"password" validate:"required,max=100"`
}

type loginResponse struct {
	Message   string          `json:"message"`
	User      domain.Identity `json:"user"`
	Token     string          `json:"token"`
	Timestamp time.Time       `json:"timestamp"`
}

// errorResponse is the canonical error envelope: {"detail": "<message>"}.
type errorResponse struct {
	Detail string `json:"detail"`
}

// demoAccount is listed on the login page.
type demoAccount struct {
	Key      int
	Label    string
	Username string
	Password string
}

var demoAccounts = []demoAccount{
	{Key: 1, Label: "Admin", Username: "admin", Password: "admin123"},
	{Key: 2, Label: "Manager", Username: "manager_cl1", Password: "manager123"},
	{Key: 3, Label: "EMOC Staff", Username: "emoc_cl1", Password: "emoc123"},
	{Key: 4, Label: "Counselor", Username: "counselor_cl1", Password: "outdoor123"},
}

// loginPageData feeds login.html.
type loginPageData struct {
	Title        string
	Label        string
	Username     string
	Error        string
	DemoAccounts []demoAccount
}
