package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/edyapups/Beneburg-Archived/internal/client/models"
)

const (
	usersPath = "/users"
	mePath    = "/getMe"
)

// HTTPClient talks to the directory REST backend. It keeps no per-call
// state, so one instance may serve concurrent callers.
type HTTPClient struct {
	baseURL    string
	httpClient *http.Client
	tokens     TokenSource
}

// Option customizes an HTTPClient.
type Option func(*HTTPClient)

// WithHTTPClient replaces the underlying *http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *HTTPClient) {
		c.httpClient = hc
	}
}

// NewHTTPClient builds a client rooted at baseURL, e.g. "http://localhost:8080/api".
// tokens may be nil, in which case requests carry no Authorization header.
func NewHTTPClient(baseURL string, tokens TokenSource, opts ...Option) *HTTPClient {
	c := &HTTPClient{
		baseURL:    baseURL,
		httpClient: &http.Client{},
		tokens:     tokens,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// ListUsers fetches every user in backend order.
func (c *HTTPClient) ListUsers(ctx context.Context) ([]models.User, error) {
	var users []models.User
	if err := c.do(ctx, http.MethodGet, usersPath, nil, &users); err != nil {
		return nil, err
	}
	return users, nil
}

// GetUser fetches a single user by ID.
func (c *HTTPClient) GetUser(ctx context.Context, id string) (*models.User, error) {
	path, err := userPath(id)
	if err != nil {
		return nil, err
	}
	var user models.User
	if err := c.do(ctx, http.MethodGet, path, nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// GetCurrentUser fetches the user the bearer token belongs to.
func (c *HTTPClient) GetCurrentUser(ctx context.Context) (*models.User, error) {
	var user models.User
	if err := c.do(ctx, http.MethodGet, mePath, nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// CreateUser posts the full record and returns the stored copy with its
// backend-assigned ID.
func (c *HTTPClient) CreateUser(ctx context.Context, user models.User) (*models.User, error) {
	var created models.User
	if err := c.do(ctx, http.MethodPost, usersPath, user, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// UpdateUser puts the full record to the path derived from user.ID.
func (c *HTTPClient) UpdateUser(ctx context.Context, user models.User) (*models.User, error) {
	path, err := userPath(user.ID)
	if err != nil {
		return nil, err
	}
	var updated models.User
	if err := c.do(ctx, http.MethodPut, path, user, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// userPath escapes id into a single path segment. Empty and dot segments
// are refused: they would address the collection or a parent route.
func userPath(id string) (string, error) {
	switch id {
	case "", ".", "..":
		return "", fmt.Errorf("%w: %q", ErrInvalidID, id)
	}
	return usersPath + "/" + url.PathEscape(id), nil
}

// do performs a single request attempt. A non-nil body is sent as JSON;
// out receives the decoded 2xx response.
func (c *HTTPClient) do(ctx context.Context, method, path string, body, out any) error {
	// Plain concatenation: url.JoinPath would clean the path.
	endpoint := strings.TrimSuffix(c.baseURL, "/") + path

	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode %s %s request: %w", method, path, err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reqBody)
	if err != nil {
		return fmt.Errorf("create %s %s request: %w", method, path, err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if err := c.setAuthHeader(ctx, req); err != nil {
		return err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %s %s: %w", ErrNetwork, method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return &StatusError{
			Method:     method,
			Path:       path,
			StatusCode: resp.StatusCode,
			Body:       strings.TrimSpace(string(snippet)),
		}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: %s %s: %w", ErrDecode, method, path, err)
	}
	return nil
}

// setAuthHeader reads the token fresh for every request.
func (c *HTTPClient) setAuthHeader(ctx context.Context, req *http.Request) error {
	if c.tokens == nil {
		return nil
	}
	token, err := c.tokens.Token(ctx)
	if err != nil {
		return fmt.Errorf("read token: %w", err)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	return nil
}
