// Package remote implements the thin client for the optional hub backend.
// Every failure mode — transport error, non-2xx status, malformed body — is
// reported as ErrUnavailable so callers can degrade to their local path.
package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"golang.org/x/oauth2"

	"wellnesshub/internal/domain"
)

// ErrUnavailable indicates the backend could not serve the request. It is
// never a domain error; the local mirror stays authoritative.
var ErrUnavailable = errors.New("backend unavailable")

// TokenFunc supplies the current bearer token, or "" when signed out.
type TokenFunc func() string

// Client talks to the backend's REST API.
type Client struct {
	base    string
	tokenFn TokenFunc
	timeout time.Duration
}

// New creates a client for the backend at base (e.g. "http://localhost:5000").
func New(base string, tokenFn TokenFunc) *Client {
	return &Client{base: base, tokenFn: tokenFn, timeout: 10 * time.Second}
}

// LoginResponse is the backend's answer to a successful login.
type LoginResponse struct {
	Token string      `json:"token"`
	User  domain.User `json:"user"`
}

// Login authenticates against POST /api/login.
func (c *Client) Login(ctx context.Context, username, password string) (*LoginResponse, error) {
	var out LoginResponse
	err := c.do(ctx, http.MethodPost, "/api/login",
		map[string]string{"username": username, "password": password}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// Register creates an account via POST /api/register.
func (c *Client) Register(ctx context.Context, username, email, password, role string) error {
	return c.do(ctx, http.MethodPost, "/api/register",
		map[string]string{"username": username, "email": email, "password": password, "role": role}, nil)
}

// ListIssues fetches the server's issue list.
func (c *Client) ListIssues(ctx context.Context) ([]domain.Issue, error) {
	var out struct {
		Issues []domain.Issue `json:"issues"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/issues", nil, &out); err != nil {
		return nil, err
	}
	return out.Issues, nil
}

// CreateIssue submits a report and returns the persisted issue.
func (c *Client) CreateIssue(ctx context.Context, title, details string) (*domain.Issue, error) {
	var out struct {
		Issue domain.Issue `json:"issue"`
	}
	err := c.do(ctx, http.MethodPost, "/api/issues",
		map[string]string{"title": title, "details": details}, &out)
	if err != nil {
		return nil, err
	}
	return &out.Issue, nil
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			return fmt.Errorf("%w: encode request: %v", ErrUnavailable, err)
		}
	}

	req, err := http.NewRequestWithContext(ctx, method, c.base+path, &buf)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient(ctx).Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("%w: status %d", ErrUnavailable, resp.StatusCode)
	}
	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("%w: decode response: %v", ErrUnavailable, err)
		}
	}
	return nil
}

// httpClient returns a client that attaches the Authorization: Bearer header
// when a token is held.
func (c *Client) httpClient(ctx context.Context) *http.Client {
	if c.tokenFn != nil {
		if t := c.tokenFn(); t != "" {
			cl := oauth2.NewClient(ctx, oauth2.StaticTokenSource(&oauth2.Token{AccessToken: t}))
			cl.Timeout = c.timeout
			return cl
		}
	}
	return &http.Client{Timeout: c.timeout}
}
