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
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistrationBuilder(t *testing.T) {
	reg := NewRegistrationBuilder("summarizer", "https://agent.example.com").
		WithDescription("Summarizes documents").
		WithSkill(Skill{Name: "summarize", Price: decimal.RequireFromString("0.05"), Currency: "USD"}).
		WithCapabilities("nlp", "summarization").
		WithMetadata("team", "research").
		Build()

	assert.Equal(t, "summarizer", reg.Name)
	assert.Equal(t, "https://agent.example.com", reg.Endpoint)
	assert.Equal(t, "Summarizes documents", reg.Description)
	require.Len(t, reg.Skills, 1)
	assert.Equal(t, "summarize", reg.Skills[0].Name)
	assert.Equal(t, []string{"nlp", "summarization"}, reg.Capabilities)
	assert.Equal(t, "research", reg.Metadata["team"])

	assert.NoError(t, reg.Validate())
}

func TestRegistrationValidate(t *testing.T) {
	tests := []struct {
		name    string
		reg     AgentRegistration
		wantErr bool
	}{
		{"valid", AgentRegistration{Name: "a", Endpoint: "https://a.example.com"}, false},
		{"missing name", AgentRegistration{Endpoint: "https://a.example.com"}, true},
		{"missing endpoint", AgentRegistration{Name: "a"}, true},
		{"unnamed skill", AgentRegistration{Name: "a", Endpoint: "https://a.example.com", Skills: []Skill{{}}}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.reg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestAgentHasCapabilityAndSkill(t *testing.T) {
	agent := Agent{
		Capabilities: []string{"nlp", "vision"},
		Skills:       []Skill{{Name: "summarize"}},
	}

	assert.True(t, agent.HasCapability("nlp"))
	assert.False(t, agent.HasCapability("audio"))
	assert.True(t, agent.HasSkill("summarize"))
	assert.False(t, agent.HasSkill("translate"))
}

func TestTransactionNet(t *testing.T) {
	txn := Transaction{
		Amount: decimal.RequireFromString("1.00"),
		Fee:    decimal.RequireFromString("0.03"),
	}

	assert.Equal(t, "0.97", txn.Net().String())
}

func TestWebhookEventDecode(t *testing.T) {
	raw := `{
		"id": "evt_1",
		"type": "transaction",
		"created_at": "2026-01-15T12:00:00Z",
		"data": {"transaction_id": "txn_1"}
	}`

	var event WebhookEvent
	require.NoError(t, json.Unmarshal([]byte(raw), &event))

	assert.Equal(t, "evt_1", event.ID)
	assert.Equal(t, WebhookEventTransaction, event.Type)

	var data struct {
		TransactionID string `json:"transaction_id"`
	}
	require.NoError(t, json.Unmarshal(event.Data, &data))
	assert.Equal(t, "txn_1", data.TransactionID)
}

func TestAPIErrorMessage(t *testing.T) {
	withMessage := &APIError{StatusCode: 403, Message: "insufficient balance"}
	assert.Equal(t, "clawdnet: API error (status 403): insufficient balance", withMessage.Error())

	withoutMessage := &APIError{StatusCode: 500}
	assert.Equal(t, "clawdnet: API error (status 500)", withoutMessage.Error())
}

func TestSkillPriceRoundTrip(t *testing.T) {
	skill := Skill{Name: "summarize", Price: decimal.RequireFromString("0.05"), Currency: "USD"}

	data, err := json.Marshal(skill)
	require.NoError(t, err)

	var decoded Skill
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.True(t, skill.Price.Equal(decoded.Price))
}
