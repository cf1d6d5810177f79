package authapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const (
	confirmEmailPath = "/api/auth/confirm-email"
	resendPath       = "/api/auth/resend-verification"
)

// Client talks to the TaxWise backend auth API. Error responses carry a JSON
// body of the same shape as success responses, so non-2xx statuses are still
// decoded and surfaced as results rather than transport errors.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

func New(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

type ConfirmEmailResult struct {
	Success bool
	Message string
	Error   string
	Session json.RawMessage
	User    *VerifiedUser
}

type VerifiedUser struct {
	ID             string `json:"id"`
	Email          string `json:"email"`
	EmailConfirmed bool   `json:"email_confirmed"`
}

type ResendResult struct {
	Success bool
	Message string
	Error   string
}

type confirmEmailWire struct {
	Success *bool           `json:"success"`
	Message string          `json:"message"`
	Error   string          `json:"error"`
	Session json.RawMessage `json:"session"`
	User    *VerifiedUser   `json:"user"`
}

type resendWire struct {
	Success *bool  `json:"success"`
	Message string `json:"message"`
	Error   string `json:"error"`
}

func (c *Client) ConfirmEmail(ctx context.Context, tokenHash, verificationType string) (*ConfirmEmailResult, error) {
	body := map[string]string{
		"token_hash": tokenHash,
		"type":       verificationType,
	}
	var wire confirmEmailWire
	if err := c.postJSON(ctx, confirmEmailPath, body, &wire); err != nil {
		return nil, err
	}
	if wire.Success == nil {
		return nil, fmt.Errorf("confirm-email: malformed response, missing success field")
	}
	return &ConfirmEmailResult{
		Success: *wire.Success,
		Message: wire.Message,
		Error:   wire.Error,
		Session: wire.Session,
		User:    wire.User,
	}, nil
}

func (c *Client) ResendVerification(ctx context.Context, email string) (*ResendResult, error) {
	body := map[string]string{"email": email}
	var wire resendWire
	if err := c.postJSON(ctx, resendPath, body, &wire); err != nil {
		return nil, err
	}
	if wire.Success == nil {
		return nil, fmt.Errorf("resend-verification: malformed response, missing success field")
	}
	return &ResendResult{
		Success: *wire.Success,
		Message: wire.Message,
		Error:   wire.Error,
	}, nil
}

func (c *Client) postJSON(ctx context.Context, path string, body interface{}, out interface{}) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()
	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("decode %s response failed: %s: %w", path, resp.Status, err)
	}
	return nil
}
