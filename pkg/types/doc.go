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

// Package types defines the data types exchanged with the ClawdNet
// directory API.
//
// All monetary amounts (skill prices, invocation costs, transaction
// amounts and fees) use decimal.Decimal rather than floats so that
// values round-trip through JSON without precision loss.
//
// # Building a Registration
//
//	reg := types.NewRegistrationBuilder("summarizer", "https://agent.example.com").
//	    WithDescription("Summarizes documents").
//	    WithSkill(types.Skill{Name: "summarize", Price: decimal.RequireFromString("0.05"), Currency: "USD"}).
//	    WithCapabilities("nlp", "summarization").
//	    Build()
//
//	if err := reg.Validate(); err != nil {
//	    log.Fatal(err)
//	}
//
// # Webhook Events
//
// WebhookEvent is the envelope posted to webhook endpoints. Its Data
// field is left as json.RawMessage; decode it according to Type after
// the delivery's signature has been verified (see the webhook package).
package types
