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

// Package webhook verifies signatures on webhook deliveries from the
// ClawdNet directory.
//
// Every delivery carries a Clawdnet-Signature header of the form
//
//	t=1700000000,v1=909034ad1e37b4d1208f241a46e21394379560ce...
//
// where t is the delivery's Unix timestamp and v1 is the lowercase hex
// HMAC-SHA256 of "<t>.<body>" keyed by the webhook's signing secret.
// The secret is returned once, in the response to webhook creation.
//
// # Verifying a Delivery
//
//	func handler(w http.ResponseWriter, r *http.Request) {
//	    body, err := io.ReadAll(r.Body)
//	    if err != nil {
//	        http.Error(w, "reading body", http.StatusBadRequest)
//	        return
//	    }
//
//	    if !webhook.VerifySignature(body, r.Header.Get(webhook.SignatureHeader), secret) {
//	        http.Error(w, "Unauthorized", http.StatusUnauthorized)
//	        return
//	    }
//
//	    // Parse the event only after verification
//	    var event types.WebhookEvent
//	    if err := json.Unmarshal(body, &event); err != nil {
//	        http.Error(w, "bad payload", http.StatusBadRequest)
//	        return
//	    }
//	    // Process event...
//	}
//
// # Using the Middleware
//
//	mw := webhook.NewMiddleware(secret)
//	http.Handle("/webhooks", mw.Wrap(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
//	    event, _ := webhook.EventFromContext(r.Context())
//	    log.Printf("event %s (%s)", event.ID, event.Type)
//	})))
//
// # Replay Protection
//
// A signature older (or newer) than the tolerance window is rejected
// even when cryptographically valid, bounding how long a captured
// delivery can be replayed. The default window is 300 seconds; adjust
// it with Verifier.SetTolerance.
//
// # Exact-Byte Requirement
//
// The signature covers the body bytes exactly as sent. Any framework
// middleware that re-serializes, trims, or otherwise transforms the
// body before verification will cause false rejections. Capture the
// raw body first; the Middleware in this package does this for you and
// restores the body for downstream handlers.
//
// # Failure Semantics
//
// Verify returns false for every failure: missing or malformed header
// fields, a non-numeric timestamp, a timestamp outside the tolerance
// window, or a digest mismatch. It never panics and never reports
// which check failed, so a rejected sender learns nothing about why.
// Do not log or echo the expected digest; that would hand an attacker
// a forging oracle.
//
// # Timing Safety
//
// Digest comparison uses crypto/hmac.Equal, a length-checked
// constant-time comparison. Comparison time does not depend on where
// the digests first differ.
//
// # Thread Safety
//
// Verifier and Middleware are stateless after construction and safe
// for concurrent use from any number of goroutines.
package webhook
