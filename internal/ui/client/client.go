// Package client talks to the dashboard server over HTTP.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/imagehealth/clinic-dashboard/internal/core/domain"
	"github.com/imagehealth/clinic-dashboard/internal/ui/login"
)

// ErrUnauthorized is returned by APIClient when the token is missing,
// expired or rejected.
var ErrUnauthorized = errors.New("client: unauthorized")

const defaultTimeout = 10 * time.Second

type Client struct {
	baseURL string
	http    *http.Client
}

// New returns a client for the server at baseURL. A non-positive timeout
// uses the default.
func New(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

// WithHTTPClient replaces the underlying http.Client.
func (c *Client) WithHTTPClient(hc *http.Client) *Client {
	c.http = hc
	return c
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginResponse struct {
	Message string           `json:"message"`
	User    *domain.Identity `json:"user"`
	Token   string           `json:"token"`
}

type errorBody struct {
	Detail string `json:"detail"`
}

// Authenticate posts credentials to /login. A non-2xx response with a JSON
// body becomes *login.RejectedError; network and decoding failures are
// returned as is.
func (c *Client) Authenticate(ctx context.Context, creds login.Credentials) (*login.Result, error) {
	body, err := json.Marshal(loginRequest{Username: creds.Username, Password: creds.Password})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/login", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("post login: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read login response: %w", err)
	}

	if !ok(resp.StatusCode) {
		var eb errorBody
		if err := json.Unmarshal(raw, &eb); err != nil {
			return nil, fmt.Errorf("decode login error: %w", err)
		}
		return nil, &login.RejectedError{Status: resp.StatusCode, Detail: eb.Detail}
	}

	var lr loginResponse
	if err := json.Unmarshal(raw, &lr); err != nil {
		return nil, fmt.Errorf("decode login response: %w", err)
	}
	if lr.User == nil {
		return nil, errors.New("decode login response: missing user")
	}
	return &login.Result{Identity: *lr.User, Token: lr.Token}, nil
}

// Dashboard fetches the dataset visible to the token's owner.
func (c *Client) Dashboard(ctx context.Context, token string) (*domain.Dataset, error) {
	var ds domain.Dataset
	if err := c.getJSON(ctx, "/api/v1/dashboard", token, &ds); err != nil {
		return nil, err
	}
	return &ds, nil
}

// SearchPatients runs the server-side patient search.
func (c *Client) SearchPatients(ctx context.Context, token, query string) ([]domain.Patient, error) {
	var out struct {
		Patients []domain.Patient `json:"patients"`
	}
	if err := c.getJSON(ctx, "/api/v1/patients?q="+url.QueryEscape(query), token, &out); err != nil {
		return nil, err
	}
	return out.Patients, nil
}

// Me returns the identity behind token.
func (c *Client) Me(ctx context.Context, token string) (*domain.Identity, error) {
	var id domain.Identity
	if err := c.getJSON(ctx, "/api/v1/me", token, &id); err != nil {
		return nil, err
	}
	return &id, nil
}

func (c *Client) getJSON(ctx context.Context, path, token string, out any) error {
	if token == "" {
		return ErrUnauthorized
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("get %s: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		return ErrUnauthorized
	}
	if !ok(resp.StatusCode) {
		var eb errorBody
		_ = json.NewDecoder(resp.Body).Decode(&eb)
		return fmt.Errorf("get %s: status %d: %s", path, resp.StatusCode, eb.Detail)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s: %w", path, err)
	}
	return nil
}

func ok(status int) bool {
	return status >= 200 && status < 300
}
