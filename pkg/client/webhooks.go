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
	"context"
	"fmt"
	"net/url"

	"github.com/clawdnet/clawdnet-go/pkg/types"
)

// CreateWebhook registers a webhook endpoint. The returned Webhook
// carries the signing secret; the directory never returns it again, so
// store it at this point.
func (c *Client) CreateWebhook(ctx context.Context, req *types.WebhookCreateRequest) (*types.Webhook, error) {
	if req == nil {
		return nil, fmt.Errorf("request cannot be nil")
	}
	if req.URL == "" {
		return nil, fmt.Errorf("webhook URL cannot be empty")
	}
	if len(req.Events) == 0 {
		return nil, fmt.Errorf("webhook must subscribe to at least one event type")
	}

	var hook types.Webhook
	if err := c.do(ctx, "POST", "/v1/webhooks", nil, req, &hook); err != nil {
		return nil, fmt.Errorf("creating webhook: %w", err)
	}
	return &hook, nil
}

// GetWebhook fetches a single webhook by ID
func (c *Client) GetWebhook(ctx context.Context, webhookID string) (*types.Webhook, error) {
	if webhookID == "" {
		return nil, fmt.Errorf("webhook ID cannot be empty")
	}

	var hook types.Webhook
	path := "/v1/webhooks/" + url.PathEscape(webhookID)
	if err := c.do(ctx, "GET", path, nil, nil, &hook); err != nil {
		return nil, fmt.Errorf("fetching webhook: %w", err)
	}
	return &hook, nil
}

// ListWebhooks lists all webhooks registered by the caller
func (c *Client) ListWebhooks(ctx context.Context) ([]types.Webhook, error) {
	var result struct {
		Webhooks []types.Webhook `json:"webhooks"`
	}
	if err := c.do(ctx, "GET", "/v1/webhooks", nil, nil, &result); err != nil {
		return nil, fmt.Errorf("listing webhooks: %w", err)
	}
	return result.Webhooks, nil
}

// UpdateWebhook modifies a webhook. Nil fields in req are left
// unchanged.
func (c *Client) UpdateWebhook(ctx context.Context, webhookID string, req *types.WebhookUpdateRequest) (*types.Webhook, error) {
	if webhookID == "" {
		return nil, fmt.Errorf("webhook ID cannot be empty")
	}
	if req == nil {
		return nil, fmt.Errorf("request cannot be nil")
	}

	var hook types.Webhook
	path := "/v1/webhooks/" + url.PathEscape(webhookID)
	if err := c.do(ctx, "PATCH", path, nil, req, &hook); err != nil {
		return nil, fmt.Errorf("updating webhook: %w", err)
	}
	return &hook, nil
}

// DeleteWebhook removes a webhook. Deliveries stop immediately.
func (c *Client) DeleteWebhook(ctx context.Context, webhookID string) error {
	if webhookID == "" {
		return fmt.Errorf("webhook ID cannot be empty")
	}

	path := "/v1/webhooks/" + url.PathEscape(webhookID)
	if err := c.do(ctx, "DELETE", path, nil, nil, nil); err != nil {
		return fmt.Errorf("deleting webhook: %w", err)
	}
	return nil
}
