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

// AgentRegistration is the request body for registering an agent
type AgentRegistration struct {
	// Name is the human-readable name of the agent
	Name string `json:"name"`

	// Description provides details about the agent's purpose and functionality
	Description string `json:"description,omitempty"`

	// Endpoint is the base URL where the agent's service is accessible
	Endpoint string `json:"endpoint"`

	// Skills lists the operations the agent offers for invocation
	Skills []Skill `json:"skills,omitempty"`

	// Capabilities lists the capability tags the agent advertises
	Capabilities []string `json:"capabilities,omitempty"`

	// Metadata contains additional custom fields
	Metadata map[string]interface{} `json:"metadata,omitempty"`
}

// Validate performs basic validation on the registration
func (r *AgentRegistration) Validate() error {
	if r.Name == "" {
		return ErrInvalidRegistration{"name is required"}
	}
	if r.Endpoint == "" {
		return ErrInvalidRegistration{"endpoint is required"}
	}
	for _, s := range r.Skills {
		if s.Name == "" {
			return ErrInvalidRegistration{"skill name is required"}
		}
	}
	return nil
}

// ErrInvalidRegistration is returned when an agent registration is invalid
type ErrInvalidRegistration struct {
	Message string
}

func (e ErrInvalidRegistration) Error() string {
	return "invalid agent registration: " + e.Message
}

// RegistrationBuilder helps construct agent registrations with a fluent API
type RegistrationBuilder struct {
	reg *AgentRegistration
}

// NewRegistrationBuilder creates a new RegistrationBuilder
func NewRegistrationBuilder(name, endpoint string) *RegistrationBuilder {
	return &RegistrationBuilder{
		reg: &AgentRegistration{
			Name:     name,
			Endpoint: endpoint,
		},
	}
}

// WithDescription adds a description to the registration
func (b *RegistrationBuilder) WithDescription(description string) *RegistrationBuilder {
	b.reg.Description = description
	return b
}

// WithSkill adds a skill to the registration
func (b *RegistrationBuilder) WithSkill(skill Skill) *RegistrationBuilder {
	b.reg.Skills = append(b.reg.Skills, skill)
	return b
}

// WithCapabilities adds capability tags to the registration
func (b *RegistrationBuilder) WithCapabilities(capabilities ...string) *RegistrationBuilder {
	b.reg.Capabilities = append(b.reg.Capabilities, capabilities...)
	return b
}

// WithMetadata adds custom metadata to the registration
func (b *RegistrationBuilder) WithMetadata(key string, value interface{}) *RegistrationBuilder {
	if b.reg.Metadata == nil {
		b.reg.Metadata = make(map[string]interface{})
	}
	b.reg.Metadata[key] = value
	return b
}

// Build returns the constructed registration
func (b *RegistrationBuilder) Build() *AgentRegistration {
	return b.reg
}
