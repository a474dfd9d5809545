package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// Directory defines the remote operations the console depends on. It is
// implemented by *Client and can be swapped in tests.
type Directory interface {
	Login(ctx context.Context, creds Credentials) (*LoginResponse, error)
	ListUsers(ctx context.Context, sortBy, order string) ([]User, error)
	SearchUsers(ctx context.Context, query string) ([]User, error)
	GetUser(ctx context.Context, id int) (*User, error)
	CreateUser(ctx context.Context, user NewUser) (*User, error)
	UpdateUser(ctx context.Context, id int, patch UserPatch) (*User, error)
}

// Ensure Client implements Directory at compile time.
var _ Directory = (*Client)(nil)

// Client talks to the user directory HTTP API.
type Client struct {
	baseURL   *url.URL
	http      *http.Client
	userAgent string
}

const (
	defaultBaseURL   = "https://dummyjson.com"
	defaultUserAgent = "roster/0.1"
	requestTimeout   = 10 * time.Second
)

// NewClient builds a Client for the given base URL. An empty value uses the
// default public endpoint.
func NewClient(baseURL string) (*Client, error) {
	base, err := parseBaseURL(baseURL)
	if err != nil {
		return nil, err
	}
	return &Client{
		baseURL: base,
		http: &http.Client{
			Timeout: requestTimeout,
		},
		userAgent: defaultUserAgent,
	}, nil
}

// Login authenticates the given credentials and returns the session profile
// plus token pair.
func (c *Client) Login(ctx context.Context, creds Credentials) (*LoginResponse, error) {
	if c == nil {
		return nil, fmt.Errorf("client is nil")
	}
	var payload LoginResponse
	rel := &url.URL{Path: "/auth/login"}
	if err := c.doURL(ctx, http.MethodPost, rel, creds, &payload); err != nil {
		return nil, err
	}
	return &payload, nil
}

// ListUsers retrieves the user list sorted server-side. Empty sortBy/order
// fall back to firstName ascending.
func (c *Client) ListUsers(ctx context.Context, sortBy, order string) ([]User, error) {
	if c == nil {
		return nil, fmt.Errorf("client is nil")
	}
	if strings.TrimSpace(sortBy) == "" {
		sortBy = "firstName"
	}
	if strings.TrimSpace(order) == "" {
		order = "asc"
	}
	values := url.Values{}
	values.Set("sortBy", sortBy)
	values.Set("order", order)
	rel := &url.URL{Path: "/users", RawQuery: values.Encode()}
	var payload UserListResponse
	if err := c.doURL(ctx, http.MethodGet, rel, nil, &payload); err != nil {
		return nil, err
	}
	return payload.Users, nil
}

// SearchUsers retrieves users matching the query. The query must be non-empty;
// callers are expected to route blank queries to ListUsers instead.
func (c *Client) SearchUsers(ctx context.Context, query string) ([]User, error) {
	if c == nil {
		return nil, fmt.Errorf("client is nil")
	}
	if strings.TrimSpace(query) == "" {
		return nil, fmt.Errorf("search query required")
	}
	values := url.Values{}
	values.Set("q", query)
	rel := &url.URL{Path: "/users/search", RawQuery: values.Encode()}
	var payload UserListResponse
	if err := c.doURL(ctx, http.MethodGet, rel, nil, &payload); err != nil {
		return nil, err
	}
	return payload.Users, nil
}

// GetUser retrieves a single user record by id.
func (c *Client) GetUser(ctx context.Context, id int) (*User, error) {
	if c == nil {
		return nil, fmt.Errorf("client is nil")
	}
	if id <= 0 {
		return nil, fmt.Errorf("user id required")
	}
	var payload User
	rel := &url.URL{Path: "/users/" + strconv.Itoa(id)}
	if err := c.doURL(ctx, http.MethodGet, rel, nil, &payload); err != nil {
		return nil, err
	}
	return &payload, nil
}

// CreateUser submits a new record and returns it with the server-assigned id.
func (c *Client) CreateUser(ctx context.Context, user NewUser) (*User, error) {
	if c == nil {
		return nil, fmt.Errorf("client is nil")
	}
	var payload User
	rel := &url.URL{Path: "/users/add"}
	if err := c.doURL(ctx, http.MethodPost, rel, user, &payload); err != nil {
		return nil, err
	}
	return &payload, nil
}

// UpdateUser submits a partial update and returns the updated record.
func (c *Client) UpdateUser(ctx context.Context, id int, patch UserPatch) (*User, error) {
	if c == nil {
		return nil, fmt.Errorf("client is nil")
	}
	if id <= 0 {
		return nil, fmt.Errorf("user id required")
	}
	var payload User
	rel := &url.URL{Path: "/users/" + strconv.Itoa(id)}
	if err := c.doURL(ctx, http.MethodPut, rel, patch, &payload); err != nil {
		return nil, err
	}
	return &payload, nil
}

func (c *Client) doURL(ctx context.Context, method string, rel *url.URL, body, dest any) error {
	reqURL := c.baseURL.ResolveReference(rel)

	var reqBody *bytes.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reqBody = bytes.NewReader(encoded)
	} else {
		reqBody = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, reqURL.String(), reqBody)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("execute request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode >= 400 {
		apiErr := &Error{Status: resp.StatusCode}
		var envelope struct {
			Message string `json:"message"`
		}
		if decodeErr := json.NewDecoder(resp.Body).Decode(&envelope); decodeErr == nil {
			apiErr.Message = envelope.Message
		}
		return fmt.Errorf("api %s: %w", rel.Path, apiErr)
	}
	if dest == nil {
		return nil
	}
	decoder := json.NewDecoder(resp.Body)
	if err := decoder.Decode(dest); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func parseBaseURL(baseURL string) (*url.URL, error) {
	trimmed := strings.TrimSpace(baseURL)
	if trimmed == "" {
		trimmed = defaultBaseURL
	}
	if !strings.Contains(trimmed, "://") {
		trimmed = "https://" + trimmed
	}
	u, err := url.Parse(trimmed)
	if err != nil {
		return nil, fmt.Errorf("parse base_url %q: %w", baseURL, err)
	}
	u.Path = ""
	u.RawQuery = ""
	u.Fragment = ""
	return u, nil
}
