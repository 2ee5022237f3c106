// Copyright (C) 2026 ClawdNet Project
//
// This file is part of clawdnet-go.
//
// clawdnet-go is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// clawdnet-go is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with clawdnet-go.  If not, see <https://www.gnu.org/licenses/>.

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

	"go.uber.org/zap"

	clawdnet "github.com/clawdnet/clawdnet-go"
	"github.com/clawdnet/clawdnet-go/pkg/types"
)

// DefaultBaseURL is the production ClawdNet directory endpoint
const DefaultBaseURL = "https://api.clawdnet.dev"

// maxErrorSnippet caps how much of a non-JSON error body is carried
// into an APIError message
const maxErrorSnippet = 200

// Client is an authenticated HTTP client for the ClawdNet directory API
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	logger     *zap.Logger
	userAgent  string
}

// NewClient creates a new directory client.
// If baseURL is empty, DefaultBaseURL is used.
// If httpClient is nil, http.DefaultClient is used.
func NewClient(baseURL, apiKey string, httpClient *http.Client) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	return &Client{
		baseURL:    baseURL,
		apiKey:     apiKey,
		httpClient: httpClient,
		userAgent:  "clawdnet-go/" + clawdnet.Version,
	}
}

// SetLogger sets a logger for request/response tracing at debug level.
// Log lines never include the API key or webhook secrets.
func (c *Client) SetLogger(logger *zap.Logger) {
	c.logger = logger
}

// BaseURL returns the configured directory endpoint
func (c *Client) BaseURL() string {
	return c.baseURL
}

// newRequest builds an authenticated JSON request against the directory
func (c *Client) newRequest(ctx context.Context, method, path string, query url.Values, body interface{}) (*http.Request, error) {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encoding request body: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		return nil, fmt.Errorf("creating %s request: %w", method, err)
	}

	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	return req, nil
}

// send executes a request and decodes the JSON response into out.
// Non-2xx responses are surfaced as *types.APIError.
func (c *Client) send(req *http.Request, out interface{}) error {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("HTTP request failed: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("reading response body: %w", err)
	}

	if c.logger != nil {
		c.logger.Debug("directory request",
			zap.String("method", req.Method),
			zap.String("path", req.URL.Path),
			zap.Int("status", resp.StatusCode),
		)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		apiErr := &types.APIError{StatusCode: resp.StatusCode}
		var errBody struct {
			Error string `json:"error"`
		}
		if err := json.Unmarshal(data, &errBody); err == nil && errBody.Error != "" {
			apiErr.Message = errBody.Error
		} else if snippet := strings.TrimSpace(string(data)); snippet != "" {
			// Non-JSON error bodies (gateway error pages and the like)
			// are surfaced as a snippet rather than discarded
			if len(snippet) > maxErrorSnippet {
				snippet = snippet[:maxErrorSnippet]
			}
			apiErr.Message = snippet
		}
		return apiErr
	}

	if out != nil && len(data) > 0 {
		if err := json.Unmarshal(data, out); err != nil {
			return fmt.Errorf("decoding response body: %w", err)
		}
	}

	return nil
}

// do builds and executes a request in one step
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out interface{}) error {
	req, err := c.newRequest(ctx, method, path, query, body)
	if err != nil {
		return err
	}
	return c.send(req, out)
}
