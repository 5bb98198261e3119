package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sort"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const defaultTimeout = 10 * time.Second

// Session is the authenticated state for one login. It is passed explicitly
// to every call that needs authorization; the client itself holds no token
// state, so sessions for different users can share one Client.
type Session struct {
	// Token is the bearer token exactly as issued by the login endpoint,
	// including the "Bearer " prefix.
	Token    string
	Identity Identity
}

// Authenticated reports whether the session carries a token.
func (s *Session) Authenticated() bool {
	return s != nil && s.Token != ""
}

// NewSession builds a Session from a login token, decoding the identity
// claims from the token payload. The signature is not verified; the server
// remains the authority on token validity.
func NewSession(token string) (*Session, error) {
	raw := strings.TrimPrefix(token, "Bearer ")
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(raw, claims); err != nil {
		return nil, fmt.Errorf("decoding token: %w", err)
	}

	s := &Session{Token: token}
	if id, ok := claims["id"].(float64); ok {
		s.Identity.ID = uint(id)
	}
	if name, ok := claims["name"].(string); ok {
		s.Identity.Name = name
	}
	if avatar, ok := claims["avatar"].(string); ok {
		s.Identity.Avatar = avatar
	}
	return s, nil
}

// APIError is a failed response body decoded into its error map, for example
// {"nopost": "Post not found"} or a field-keyed validation map.
type APIError struct {
	StatusCode int
	Fields     map[string]string
}

func (e *APIError) Error() string {
	if len(e.Fields) == 0 {
		return fmt.Sprintf("api error: status %d", e.StatusCode)
	}
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+e.Fields[k])
	}
	return fmt.Sprintf("api error: status %d: %s", e.StatusCode, strings.Join(parts, "; "))
}

// Client is a DevConnect API client bound to one base URL.
type Client struct {
	baseURL string
	httpc   *http.Client
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpc = hc }
}

// New builds a Client for the given base URL, for example
// "http://localhost:5000".
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpc:   &http.Client{Timeout: defaultTimeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// do issues one request. session may be nil for public endpoints. A non-2xx
// response is returned as *APIError with the decoded error map.
func (c *Client) do(ctx context.Context, session *Session, method, path string, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encoding request: %w", err)
		}
		reader = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("building request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if session.Authenticated() {
		req.Header.Set("Authorization", session.Token)
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("reading response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		apiErr := &APIError{StatusCode: resp.StatusCode}
		_ = json.Unmarshal(data, &apiErr.Fields)
		return apiErr
	}

	if out != nil && len(data) > 0 {
		if err := json.Unmarshal(data, out); err != nil {
			return fmt.Errorf("decoding response: %w", err)
		}
	}
	return nil
}
