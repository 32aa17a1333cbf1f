package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/VGoku/e-commerce-platform1/internal/config"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmailNotConfirmed  = errors.New("email not confirmed")
	ErrNotFound           = errors.New("not found")
)

// APIError is a non-2xx response from the hosted service that does not
// map onto one of the sentinel errors above.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("backend: %s (status %d)", e.Message, e.Status)
}

// Client talks to the hosted backend-as-a-service: auth endpoints,
// REST table CRUD, and object storage. It holds no application state
// beyond the session-change listeners.
type Client struct {
	baseURL      string
	anonKey      string
	avatarBucket string
	http         *http.Client

	listeners *listenerSet
}

func New(cfg config.BackendConfig) *Client {
	return &Client{
		baseURL:      cfg.URL,
		anonKey:      cfg.AnonKey,
		avatarBucket: cfg.AvatarBucket,
		http:         &http.Client{Timeout: cfg.Timeout},
		listeners:    newListenerSet(),
	}
}

// Ping checks that the hosted service is reachable.
func (c *Client) Ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/auth/v1/health", nil)
	if err != nil {
		return fmt.Errorf("build health request: %w", err)
	}
	req.Header.Set("apikey", c.anonKey)

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("backend health: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		return &APIError{Status: resp.StatusCode, Message: "health check failed"}
	}
	return nil
}

// do sends one request and decodes the JSON response into out (when out
// is non-nil). Remote failures are terminal; nothing is retried.
func (c *Client) do(ctx context.Context, method, path, token string, body, out any) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("apikey", c.anonKey)
	req.Header.Set("Content-Type", "application/json")
	if token == "" {
		token = c.anonKey
	}
	req.Header.Set("Authorization", "Bearer "+token)
	if method == http.MethodPost || method == http.MethodPatch {
		req.Header.Set("Prefer", "return=representation")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		return c.decodeError(resp)
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func (c *Client) decodeError(resp *http.Response) error {
	var payload struct {
		Error            string `json:"error"`
		ErrorCode        string `json:"error_code"`
		ErrorDescription string `json:"error_description"`
		Message          string `json:"message"`
		Msg              string `json:"msg"`
	}
	data, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
	_ = json.Unmarshal(data, &payload)

	switch payload.ErrorCode {
	case "invalid_credentials":
		return ErrInvalidCredentials
	case "email_not_confirmed":
		return ErrEmailNotConfirmed
	}
	switch payload.ErrorDescription {
	case "Invalid login credentials":
		return ErrInvalidCredentials
	case "Email not confirmed":
		return ErrEmailNotConfirmed
	}
	if resp.StatusCode == http.StatusNotFound {
		return ErrNotFound
	}

	msg := payload.Message
	if msg == "" {
		msg = payload.Msg
	}
	if msg == "" {
		msg = payload.ErrorDescription
	}
	if msg == "" {
		msg = http.StatusText(resp.StatusCode)
	}
	return &APIError{Status: resp.StatusCode, Message: msg}
}
