// Package template talks to the external template collaborator and renders
// fetched templates by substituting {{variable}} placeholders.
package template

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// Template is the rendering source fetched from the collaborator.
type Template struct {
	Subject     string   `json:"subject"`
	HTMLContent string   `json:"html_content"`
	TextContent string   `json:"text_content"`
	Variables   []string `json:"variables,omitempty"`
}

// Fallback is the minimal built-in template used when the collaborator is
// unreachable or does not know the code. Delivery still attempts best-effort.
func Fallback() Template {
	return Template{
		Subject:     "Notification",
		HTMLContent: "<p>{{message}}</p>",
		TextContent: "{{message}}",
	}
}

// Client fetches templates from the template service.
type Client struct {
	baseURL string
	client  *http.Client
}

// NewClient creates a template client for the given base URL.
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: timeout},
	}
}

// fetchResponse is the collaborator's response envelope.
type fetchResponse struct {
	Success bool     `json:"success"`
	Data    Template `json:"data"`
	Error   string   `json:"error,omitempty"`
	Message string   `json:"message,omitempty"`
}

// FetchByCode retrieves a template by its code. Errors are non-fatal for the
// caller, which is expected to fall back to Fallback().
func (c *Client) FetchByCode(ctx context.Context, code string) (Template, error) {
	url := fmt.Sprintf("%s/templates/code/%s", c.baseURL, code)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return Template{}, fmt.Errorf("build template request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return Template{}, fmt.Errorf("fetch template %s: %w", code, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Template{}, fmt.Errorf("fetch template %s: unexpected status %s", code, resp.Status)
	}

	var body fetchResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return Template{}, fmt.Errorf("decode template response: %w", err)
	}

	if !body.Success {
		return Template{}, fmt.Errorf("template %s not found: %s", code, body.Error)
	}

	return body.Data, nil
}
