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
	"time"

	"github.com/shopspring/decimal"
)

// AgentStatus describes the liveness state the directory reports for an agent
type AgentStatus string

const (
	// AgentStatusOnline means the agent heartbeated within its deadline
	AgentStatusOnline AgentStatus = "online"

	// AgentStatusDegraded means the agent missed at least one heartbeat deadline
	AgentStatusDegraded AgentStatus = "degraded"

	// AgentStatusOffline means the agent has not heartbeated for an extended period
	AgentStatusOffline AgentStatus = "offline"
)

// Agent represents an agent registered in the ClawdNet directory
type Agent struct {
	// ID is the directory-assigned agent identifier
	ID string `json:"id"`

	// Name is the human-readable name of the agent
	Name string `json:"name"`

	// Description provides details about the agent's purpose and functionality
	Description string `json:"description,omitempty"`

	// Endpoint is the base URL where the agent's service is accessible
	Endpoint string `json:"endpoint"`

	// Skills lists the operations this agent offers for invocation
	Skills []Skill `json:"skills,omitempty"`

	// Capabilities lists the capability tags the agent advertises
	Capabilities []string `json:"capabilities,omitempty"`

	// Status is the directory's current view of the agent's liveness
	Status AgentStatus `json:"status"`

	// CreatedAt is when the agent was registered
	CreatedAt time.Time `json:"created_at"`

	// LastSeenAt is when the directory last received a heartbeat
	LastSeenAt time.Time `json:"last_seen_at,omitempty"`

	// Metadata contains additional custom fields
	Metadata map[string]interface{} `json:"metadata,omitempty"`
}

// Skill describes a single invocable operation an agent offers
type Skill struct {
	// Name is the skill identifier used in invocation paths
	Name string `json:"name"`

	// Description provides details about what the skill does
	Description string `json:"description,omitempty"`

	// Price is the per-invocation price charged by the agent
	Price decimal.Decimal `json:"price"`

	// Currency is the ISO 4217 code the price is denominated in
	Currency string `json:"currency,omitempty"`
}

// HasCapability checks if the agent advertises a specific capability tag
func (a *Agent) HasCapability(capability string) bool {
	for _, c := range a.Capabilities {
		if c == capability {
			return true
		}
	}
	return false
}

// HasSkill checks if the agent offers a skill with the given name
func (a *Agent) HasSkill(name string) bool {
	for _, s := range a.Skills {
		if s.Name == name {
			return true
		}
	}
	return false
}

// HeartbeatResult is the directory's acknowledgement of a heartbeat
type HeartbeatResult struct {
	// AgentID is the agent the heartbeat was recorded for
	AgentID string `json:"agent_id"`

	// Status is the liveness status after recording the heartbeat
	Status AgentStatus `json:"status"`

	// ServerTime is the directory's clock at the time of recording
	ServerTime time.Time `json:"server_time"`

	// NextDeadline is when the next heartbeat is due to stay online
	NextDeadline time.Time `json:"next_deadline"`
}

// Capability describes a capability tag known to the directory
type Capability struct {
	// Name is the capability identifier agents advertise
	Name string `json:"name"`

	// Description provides details about the capability
	Description string `json:"description,omitempty"`

	// AgentCount is how many online agents currently advertise it
	AgentCount int `json:"agent_count,omitempty"`
}

// ListAgentsOptions filters and paginates ListAgents calls
type ListAgentsOptions struct {
	// Capability restricts results to agents advertising this tag
	Capability string

	// Status restricts results to agents in this liveness state
	Status AgentStatus

	// Limit caps the number of agents returned per page
	Limit int

	// Cursor resumes listing from a previous page's NextCursor
	Cursor string
}

// AgentPage is one page of a ListAgents result
type AgentPage struct {
	// Agents is the page of results
	Agents []Agent `json:"agents"`

	// NextCursor resumes listing; empty when no further pages exist
	NextCursor string `json:"next_cursor,omitempty"`
}
