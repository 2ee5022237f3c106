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

	"github.com/shopspring/decimal"
)

// InvocationStatus describes the lifecycle state of a skill invocation
type InvocationStatus string

const (
	// InvocationStatusPending means the invocation is queued for delivery
	InvocationStatusPending InvocationStatus = "pending"

	// InvocationStatusRunning means the target agent accepted the invocation
	InvocationStatusRunning InvocationStatus = "running"

	// InvocationStatusSucceeded means the target agent returned a result
	InvocationStatusSucceeded InvocationStatus = "succeeded"

	// InvocationStatusFailed means the invocation was rejected or errored
	InvocationStatusFailed InvocationStatus = "failed"
)

// Invocation represents a skill invocation routed through the directory
type Invocation struct {
	// ID is the directory-assigned invocation identifier
	ID string `json:"id"`

	// AgentID is the target agent
	AgentID string `json:"agent_id"`

	// Skill is the name of the invoked skill
	Skill string `json:"skill"`

	// Input is the JSON input the caller supplied
	Input json.RawMessage `json:"input,omitempty"`

	// Output is the JSON result the target agent produced, if any
	Output json.RawMessage `json:"output,omitempty"`

	// Status is the current lifecycle state
	Status InvocationStatus `json:"status"`

	// Error is the failure message when Status is failed
	Error string `json:"error,omitempty"`

	// Cost is the amount charged for this invocation
	Cost decimal.Decimal `json:"cost"`

	// Currency is the ISO 4217 code the cost is denominated in
	Currency string `json:"currency,omitempty"`

	// CreatedAt is when the invocation was accepted
	CreatedAt time.Time `json:"created_at"`

	// CompletedAt is when the invocation reached a terminal state
	CompletedAt time.Time `json:"completed_at,omitempty"`
}

// TransactionStatus describes the settlement state of a transaction
type TransactionStatus string

const (
	// TransactionStatusPending means the transaction has not settled yet
	TransactionStatusPending TransactionStatus = "pending"

	// TransactionStatusSettled means funds moved between the parties
	TransactionStatusSettled TransactionStatus = "settled"

	// TransactionStatusRefunded means the transaction was reversed
	TransactionStatusRefunded TransactionStatus = "refunded"
)

// Transaction represents a billing record for a routed invocation
type Transaction struct {
	// ID is the directory-assigned transaction identifier
	ID string `json:"id"`

	// InvocationID is the invocation this transaction settles
	InvocationID string `json:"invocation_id"`

	// PayerAgentID is the agent that was charged
	PayerAgentID string `json:"payer_agent_id"`

	// PayeeAgentID is the agent that was credited
	PayeeAgentID string `json:"payee_agent_id"`

	// Amount is the gross amount transferred
	Amount decimal.Decimal `json:"amount"`

	// Fee is the directory's cut, already deducted from Amount
	Fee decimal.Decimal `json:"fee"`

	// Currency is the ISO 4217 code the amounts are denominated in
	Currency string `json:"currency"`

	// Status is the current settlement state
	Status TransactionStatus `json:"status"`

	// CreatedAt is when the transaction was recorded
	CreatedAt time.Time `json:"created_at"`
}

// Net returns the amount the payee receives after the directory fee
func (t *Transaction) Net() decimal.Decimal {
	return t.Amount.Sub(t.Fee)
}

// ListTransactionsOptions filters and paginates ListTransactions calls
type ListTransactionsOptions struct {
	// AgentID restricts results to transactions involving this agent
	AgentID string

	// Status restricts results to transactions in this settlement state
	Status TransactionStatus

	// Limit caps the number of transactions returned per page
	Limit int

	// Cursor resumes listing from a previous page's NextCursor
	Cursor string
}

// TransactionPage is one page of a ListTransactions result
type TransactionPage struct {
	// Transactions is the page of results
	Transactions []Transaction `json:"transactions"`

	// NextCursor resumes listing; empty when no further pages exist
	NextCursor string `json:"next_cursor,omitempty"`
}
