package sms

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Config holds SMS gateway settings. The gateway is a Semaphore-style HTTP
// API: POST form-encoded message, JSON response with a message id.
type Config struct {
	BaseURL    string
	APIKey     string
	SenderName string
}

type Client struct {
	cfg        Config
	httpClient *http.Client
}

func NewClient(cfg Config) *Client {
	return &Client{
		cfg: cfg,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// APIError represents a gateway error response.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("sms gateway error [%d]: %s", e.StatusCode, e.Message)
}

type sendResponse struct {
	MessageID string `json:"message_id"`
	Status    string `json:"status"`
	Message   string `json:"message"`
}

// Send delivers one SMS and returns the gateway's message reference.
func (c *Client) Send(ctx context.Context, number, message string) (string, error) {
	form := url.Values{}
	form.Set("apikey", c.cfg.APIKey)
	form.Set("number", number)
	form.Set("message", message)
	if c.cfg.SenderName != "" {
		form.Set("sendername", c.cfg.SenderName)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		strings.TrimRight(c.cfg.BaseURL, "/")+"/messages", strings.NewReader(form.Encode()))
	if err != nil {
		return "", fmt.Errorf("build sms request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("X-Request-ID", uuid.NewString())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("send sms: %w", err)
	}
	defer resp.Body.Close()

	var body sendResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return "", fmt.Errorf("decode sms response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", &APIError{StatusCode: resp.StatusCode, Message: body.Message}
	}

	return body.MessageID, nil
}
