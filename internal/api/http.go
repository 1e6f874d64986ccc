package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/aturkov/jobpilot/internal/models"
	"github.com/aturkov/jobpilot/internal/token"
)

// HTTPClient is the JSON-over-HTTP implementation of Client.
//
// Every authenticated call reads the current bearer token from the token
// store; the store stays the single owner of that state. When the server
// answers 401/403, the registered auth-failure callback fires once for that
// call so the session store can invalidate itself.
type HTTPClient struct {
	baseURL       string
	httpClient    *http.Client
	tokens        token.Store
	onAuthFailure func()
}

// NewHTTPClient builds an HTTPClient against baseURL (no trailing slash)
// with the given per-request timeout.
func NewHTTPClient(baseURL string, timeout time.Duration, tokens token.Store) *HTTPClient {
	return &HTTPClient{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
		tokens:     tokens,
	}
}

// OnAuthFailure registers fn to be called whenever an authenticated request
// is rejected with ErrUnauthorized.
func (c *HTTPClient) OnAuthFailure(fn func()) {
	c.onAuthFailure = fn
}

func (c *HTTPClient) Close() error {
	c.httpClient.CloseIdleConnections()
	return nil
}

// newRequest builds a JSON request with the common headers set.
func (c *HTTPClient) newRequest(ctx context.Context, method, path string, body any) (*http.Request, error) {
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			return nil, fmt.Errorf("encoding request body: %w", err)
		}
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, &buf)
	if err != nil {
		return nil, err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-Id", uuid.NewString())
	return req, nil
}

// errorPayload matches the loose error shapes the API answers with.
type errorPayload struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}

// send executes req and decodes a success body into out (when out is
// non-nil). Non-2xx responses become *Error; transport failures become
// ErrUnavailable. authed marks requests that carried a bearer token, so
// rejections can be reported to the auth-failure callback.
func (c *HTTPClient) send(req *http.Request, out any, authed bool) error {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &Error{Status: resp.StatusCode}
		var payload errorPayload
		if body, readErr := io.ReadAll(io.LimitReader(resp.Body, 1<<16)); readErr == nil {
			if json.Unmarshal(body, &payload) == nil {
				if payload.Message != "" {
					apiErr.Message = payload.Message
				} else {
					apiErr.Message = payload.Error
				}
			}
		}
		if authed && errors.Is(apiErr, ErrUnauthorized) && c.onAuthFailure != nil {
			c.onAuthFailure()
		}
		return apiErr
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("decoding response: %w", err)
		}
	}
	return nil
}

// do issues an authenticated JSON request.
func (c *HTTPClient) do(ctx context.Context, method, path string, body any, out any) error {
	req, err := c.newRequest(ctx, method, path, body)
	if err != nil {
		return err
	}

	tok, err := c.tokens.Load()
	if err != nil {
		return fmt.Errorf("loading token: %w", err)
	}
	if tok != "" {
		req.Header.Set("Authorization", "Bearer "+tok)
	}
	return c.send(req, out, true)
}

// doAnon issues an unauthenticated JSON request (login, register).
func (c *HTTPClient) doAnon(ctx context.Context, method, path string, body any, out any) error {
	req, err := c.newRequest(ctx, method, path, body)
	if err != nil {
		return err
	}
	return c.send(req, out, false)
}

func (c *HTTPClient) Login(ctx context.Context, email, password string) (*models.AuthResponse, error) {
	body := map[string]string{"email": email, "password": password}
	var resp models.AuthResponse
	if err := c.doAnon(ctx, http.MethodPost, "/api/auth/login", body, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *HTTPClient) Register(ctx context.Context, req RegisterRequest) (*models.AuthResponse, error) {
	var resp models.AuthResponse
	if err := c.doAnon(ctx, http.MethodPost, "/api/auth/register", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *HTTPClient) Profile(ctx context.Context) (*models.User, error) {
	var user models.User
	if err := c.do(ctx, http.MethodGet, "/api/auth/profile", nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (c *HTTPClient) UpdateProfile(ctx context.Context, update models.ProfileUpdate) (*models.User, error) {
	var user models.User
	if err := c.do(ctx, http.MethodPut, "/api/auth/profile", update, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (c *HTTPClient) ListResumes(ctx context.Context) (*models.ResumeList, error) {
	var list models.ResumeList
	if err := c.do(ctx, http.MethodGet, "/api/resume", nil, &list); err != nil {
		return nil, err
	}
	return &list, nil
}

func (c *HTTPClient) DeleteResume(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/resume/"+id, nil, nil)
}

func (c *HTTPClient) AnalyzeResume(ctx context.Context, id string) error {
	body := map[string]string{"resume_id": id}
	return c.do(ctx, http.MethodPost, "/api/resume/analyze", body, nil)
}

func (c *HTTPClient) ListApplications(ctx context.Context) (*models.ApplicationList, error) {
	var list models.ApplicationList
	if err := c.do(ctx, http.MethodGet, "/api/job-application", nil, &list); err != nil {
		return nil, err
	}
	return &list, nil
}

func (c *HTTPClient) CreateApplication(ctx context.Context, req models.ApplicationRequest) error {
	return c.do(ctx, http.MethodPost, "/api/job-application", req, nil)
}

func (c *HTTPClient) UpdateApplication(ctx context.Context, id string, update models.ApplicationUpdate) error {
	return c.do(ctx, http.MethodPut, "/api/job-application/"+id, update, nil)
}

func (c *HTTPClient) DeleteApplication(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/job-application/"+id, nil, nil)
}

func (c *HTTPClient) GenerateCoverLetter(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodPost, "/api/job-application/"+id+"/cover-letter", nil, nil)
}

func (c *HTTPClient) DashboardOverview(ctx context.Context) (*models.DashboardOverview, error) {
	var overview models.DashboardOverview
	if err := c.do(ctx, http.MethodGet, "/api/dashboard/overview", nil, &overview); err != nil {
		return nil, err
	}
	return &overview, nil
}
