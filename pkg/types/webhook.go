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

package types

import (
	"encoding/json"
	"time"
)

// WebhookEventType identifies the category of a webhook event
type WebhookEventType string

const (
	// WebhookEventInvocation fires when an invocation changes lifecycle state
	WebhookEventInvocation WebhookEventType = "invocation"

	// WebhookEventReview fires when an agent receives a new review
	WebhookEventReview WebhookEventType = "review"

	// WebhookEventTransaction fires when a transaction is recorded or settles
	WebhookEventTransaction WebhookEventType = "transaction"

	// WebhookEventStatusChange fires when an agent's liveness status changes
	WebhookEventStatusChange WebhookEventType = "status_change"
)

// Webhook represents a registered webhook endpoint
type Webhook struct {
	// ID is the directory-assigned webhook identifier
	ID string `json:"id"`

	// URL is the endpoint the directory delivers events to
	URL string `json:"url"`

	// Events lists the event categories this webhook subscribes to
	Events []WebhookEventType `json:"events"`

	// Secret is the shared signing secret. It is returned only in the
	// response to webhook creation and is never retrievable afterwards.
	Secret string `json:"secret,omitempty"`

	// Active reports whether the directory currently delivers to this webhook
	Active bool `json:"active"`

	// CreatedAt is when the webhook was registered
	CreatedAt time.Time `json:"created_at"`
}

// WebhookCreateRequest is the request body for registering a webhook
type WebhookCreateRequest struct {
	// URL is the endpoint the directory should deliver events to
	URL string `json:"url"`

	// Events lists the event categories to subscribe to
	Events []WebhookEventType `json:"events"`
}

// WebhookUpdateRequest is the request body for updating a webhook.
// Nil fields are left unchanged.
type WebhookUpdateRequest struct {
	// URL replaces the delivery endpoint when non-nil
	URL *string `json:"url,omitempty"`

	// Events replaces the subscription list when non-nil
	Events []WebhookEventType `json:"events,omitempty"`

	// Active enables or disables delivery when non-nil
	Active *bool `json:"active,omitempty"`
}

// WebhookEvent is the envelope the directory posts to webhook endpoints.
// It must be parsed only after the delivery's signature has verified.
type WebhookEvent struct {
	// ID is the unique event identifier, stable across redeliveries
	ID string `json:"id"`

	// Type is the event category
	Type WebhookEventType `json:"type"`

	// CreatedAt is when the event occurred
	CreatedAt time.Time `json:"created_at"`

	// Data is the event payload; its shape depends on Type
	Data json.RawMessage `json:"data"`
}
