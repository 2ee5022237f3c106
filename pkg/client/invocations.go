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

	"github.com/google/uuid"

	"github.com/clawdnet/clawdnet-go/pkg/types"
)

// InvokeSkill invokes a skill on a remote agent through the directory.
// input may be any JSON-serializable value or nil.
//
// Each call carries a client-generated Idempotency-Key header, so a
// request repeated after an ambiguous network failure is charged at
// most once by the directory.
func (c *Client) InvokeSkill(ctx context.Context, agentID, skill string, input interface{}) (*types.Invocation, error) {
	if agentID == "" {
		return nil, fmt.Errorf("agent ID cannot be empty")
	}
	if skill == "" {
		return nil, fmt.Errorf("skill cannot be empty")
	}

	body := struct {
		Input interface{} `json:"input,omitempty"`
	}{Input: input}

	path := "/v1/agents/" + url.PathEscape(agentID) + "/skills/" + url.PathEscape(skill) + "/invoke"
	req, err := c.newRequest(ctx, "POST", path, nil, body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Idempotency-Key", uuid.NewString())

	var invocation types.Invocation
	if err := c.send(req, &invocation); err != nil {
		return nil, fmt.Errorf("invoking skill: %w", err)
	}
	return &invocation, nil
}

// GetInvocation fetches a single invocation by ID
func (c *Client) GetInvocation(ctx context.Context, invocationID string) (*types.Invocation, error) {
	if invocationID == "" {
		return nil, fmt.Errorf("invocation ID cannot be empty")
	}

	var invocation types.Invocation
	path := "/v1/invocations/" + url.PathEscape(invocationID)
	if err := c.do(ctx, "GET", path, nil, nil, &invocation); err != nil {
		return nil, fmt.Errorf("fetching invocation: %w", err)
	}
	return &invocation, nil
}

// ListTransactions lists billing transactions. opts may be nil for an
// unfiltered first page.
func (c *Client) ListTransactions(ctx context.Context, opts *types.ListTransactionsOptions) (*types.TransactionPage, error) {
	query := url.Values{}
	if opts != nil {
		if opts.AgentID != "" {
			query.Set("agent_id", opts.AgentID)
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

	var page types.TransactionPage
	if err := c.do(ctx, "GET", "/v1/transactions", query, nil, &page); err != nil {
		return nil, fmt.Errorf("listing transactions: %w", err)
	}
	return &page, nil
}
