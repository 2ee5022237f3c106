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
	"strconv"

	"github.com/clawdnet/clawdnet-go/pkg/types"
)

// RegisterAgent registers a new agent in the directory
func (c *Client) RegisterAgent(ctx context.Context, reg *types.AgentRegistration) (*types.Agent, error) {
	if reg == nil {
		return nil, fmt.Errorf("registration cannot be nil")
	}
	if err := reg.Validate(); err != nil {
		return nil, err
	}

	var agent types.Agent
	if err := c.do(ctx, "POST", "/v1/agents", nil, reg, &agent); err != nil {
		return nil, fmt.Errorf("registering agent: %w", err)
	}
	return &agent, nil
}

// Heartbeat records a liveness heartbeat for an agent
func (c *Client) Heartbeat(ctx context.Context, agentID string) (*types.HeartbeatResult, error) {
	if agentID == "" {
		return nil, fmt.Errorf("agent ID cannot be empty")
	}

	var result types.HeartbeatResult
	path := "/v1/agents/" + url.PathEscape(agentID) + "/heartbeat"
	if err := c.do(ctx, "POST", path, nil, nil, &result); err != nil {
		return nil, fmt.Errorf("recording heartbeat: %w", err)
	}
	return &result, nil
}

// GetAgent fetches a single agent by ID
func (c *Client) GetAgent(ctx context.Context, agentID string) (*types.Agent, error) {
	if agentID == "" {
		return nil, fmt.Errorf("agent ID cannot be empty")
	}

	var agent types.Agent
	path := "/v1/agents/" + url.PathEscape(agentID)
	if err := c.do(ctx, "GET", path, nil, nil, &agent); err != nil {
		return nil, fmt.Errorf("fetching agent: %w", err)
	}
	return &agent, nil
}

// ListAgents lists directory agents. opts may be nil for an unfiltered
// first page.
func (c *Client) ListAgents(ctx context.Context, opts *types.ListAgentsOptions) (*types.AgentPage, error) {
	query := url.Values{}
	if opts != nil {
		if opts.Capability != "" {
			query.Set("capability", opts.Capability)
		}
		if opts.Status != "" {
			query.Set("status", string(opts.Status))
		}
		if opts.Limit > 0 {
			query.Set("limit", strconv.Itoa(opts.Limit))
		}
		if opts.Cursor != "" {
			query.Set("cursor", opts.Cursor)
		}
	}

	var page types.AgentPage
	if err := c.do(ctx, "GET", "/v1/agents", query, nil, &page); err != nil {
		return nil, fmt.Errorf("listing agents: %w", err)
	}
	return &page, nil
}

// ListCapabilities lists the capability tags known to the directory
func (c *Client) ListCapabilities(ctx context.Context) ([]types.Capability, error) {
	var result struct {
		Capabilities []types.Capability `json:"capabilities"`
	}
	if err := c.do(ctx, "GET", "/v1/capabilities", nil, nil, &result); err != nil {
		return nil, fmt.Errorf("listing capabilities: %w", err)
	}
	return result.Capabilities, nil
}
