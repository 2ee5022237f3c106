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

// Package client provides a typed HTTP client for the ClawdNet
// directory API.
//
// Every operation is a single authenticated request/response: the
// client adds bearer-token authentication and JSON encoding, maps
// non-2xx responses to *types.APIError, and decodes success bodies
// into the types package. There is no retry, backoff, or connection
// pooling beyond what net/http provides.
//
// # Basic Usage
//
//	c := client.NewClient("", os.Getenv("CLAWDNET_API_KEY"), nil)
//
//	ctx := context.Background()
//	agent, err := c.RegisterAgent(ctx, types.NewRegistrationBuilder(
//	    "summarizer", "https://agent.example.com",
//	).WithCapabilities("nlp").Build())
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// Keep the registration alive
//	hb, err := c.Heartbeat(ctx, agent.ID)
//
// # Invoking Skills
//
//	inv, err := c.InvokeSkill(ctx, "agt_123", "summarize", map[string]any{
//	    "text": "...",
//	})
//
// Invocations carry a client-generated Idempotency-Key header so that
// retrying after an ambiguous network failure cannot double-charge.
//
// # Error Handling
//
//	agent, err := c.GetAgent(ctx, "agt_missing")
//	if err != nil {
//	    var apiErr *types.APIError
//	    if errors.As(err, &apiErr) && apiErr.IsNotFound() {
//	        // Agent was deregistered
//	    }
//	}
//
// # Custom HTTP Client
//
//	httpClient := &http.Client{Timeout: 30 * time.Second}
//	c := client.NewClient("", apiKey, httpClient)
//
// # Webhooks
//
// CreateWebhook returns the signing secret exactly once. Pair it with
// the webhook package to verify inbound deliveries.
//
// # Thread Safety
//
// Client is safe for concurrent use by multiple goroutines once
// constructed. SetLogger must be called before the client is shared.
package client
