// Package client is a Go client for the portfolio API. Credentials are
// injected through a CredentialProvider; the client keeps no token state of
// its own.
package client

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	fastshot "github.com/opus-domini/fast-shot"
)

const DefaultTimeout = 30 * time.Second

// CredentialProvider returns the bearer token for the next request. An empty
// token sends no Authorization header.
type CredentialProvider interface {
	Token(ctx context.Context) (string, error)
}

// StaticToken is a fixed token.
type StaticToken string

func (t StaticToken) Token(context.Context) (string, error) {
	return string(t), nil
}

// CredentialFunc adapts a function to CredentialProvider.
type CredentialFunc func(ctx context.Context) (string, error)

func (f CredentialFunc) Token(ctx context.Context) (string, error) {
	return f(ctx)
}

type noCredentials struct{}

func (noCredentials) Token(context.Context) (string, error) { return "", nil }

// FieldError is one failed validation rule reported by the API.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// APIError is a non-2xx response from the API.
type APIError struct {
	Status  int          `json:"-"`
	Message string       `json:"message"`
	Errors  []FieldError `json:"errors,omitempty"`
}

func (e *APIError) Error() string {
	if len(e.Errors) == 0 {
		return fmt.Sprintf("api: %d %s", e.Status, e.Message)
	}
	fields := make([]string, 0, len(e.Errors))
	for _, f := range e.Errors {
		fields = append(fields, f.Field+": "+f.Message)
	}
	return fmt.Sprintf("api: %d %s (%s)", e.Status, e.Message, strings.Join(fields, "; "))
}

// StatusOf returns the HTTP status carried by err, or 0.
func StatusOf(err error) int {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Status
	}
	return 0
}

type Client struct {
	http  fastshot.ClientHttpMethods
	creds CredentialProvider
}

type Option func(*options)

type options struct {
	creds   CredentialProvider
	timeout time.Duration
}

func WithCredentials(p CredentialProvider) Option {
	return func(o *options) { o.creds = p }
}

func WithTimeout(d time.Duration) Option {
	return func(o *options) { o.timeout = d }
}

// New builds a client for baseURL, the server root without the /api prefix.
func New(baseURL string, opts ...Option) *Client {
	o := options{creds: noCredentials{}, timeout: DefaultTimeout}
	for _, opt := range opts {
		opt(&o)
	}

	httpClient := fastshot.NewClient(strings.TrimRight(baseURL, "/")).
		Config().SetTimeout(o.timeout).
		Header().Add("Accept", "application/json").
		Build()

	return &Client{http: httpClient, creds: o.creds}
}

// send attaches context and credentials, executes the request and decodes a
// 2xx body into out when out is non-nil.
func (c *Client) send(ctx context.Context, req *fastshot.RequestBuilder, out any) error {
	token, err := c.creds.Token(ctx)
	if err != nil {
		return fmt.Errorf("credentials: %w", err)
	}
	req = req.Context().Set(ctx)
	if token != "" {
		req = req.Header().Add("Authorization", "Bearer "+token)
	}

	resp, err := req.Send()
	if err != nil {
		return fmt.Errorf("send request: %w", err)
	}
	defer resp.Body().Close()

	if resp.Status().IsError() {
		return decodeError(resp)
	}
	if out == nil {
		return nil
	}
	if err := resp.Body().AsJSON(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func decodeError(resp *fastshot.Response) error {
	apiErr := &APIError{Status: resp.Status().Code()}
	if err := resp.Body().AsJSON(apiErr); err != nil || apiErr.Message == "" {
		apiErr.Message = http.StatusText(apiErr.Status)
	}
	return apiErr
}

// HealthStatus mirrors the /api/health body.
type HealthStatus struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	Service   string    `json:"service"`
	Version   string    `json:"version"`
	Store     string    `json:"store"`
}

func (c *Client) Health(ctx context.Context) (*HealthStatus, error) {
	var out HealthStatus
	if err := c.send(ctx, c.http.GET("/api/health"), &out); err != nil {
		return nil, err
	}
	return &out, nil
}
