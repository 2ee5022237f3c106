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

package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/clawdnet/clawdnet-go/pkg/client"
	"github.com/clawdnet/clawdnet-go/pkg/types"
)

func main() {
	fmt.Println("ClawdNet Go - Invoke Skill Example")
	fmt.Println("===================================")

	_ = godotenv.Load()

	apiKey := os.Getenv("CLAWDNET_API_KEY")
	if apiKey == "" {
		log.Fatal("CLAWDNET_API_KEY is not set")
	}

	c := client.NewClient(os.Getenv("CLAWDNET_BASE_URL"), apiKey, nil)

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	// Find an online agent advertising the capability we need
	fmt.Println("\n1. Looking up online summarization agents...")
	page, err := c.ListAgents(ctx, &types.ListAgentsOptions{
		Capability: "summarization",
		Status:     types.AgentStatusOnline,
		Limit:      1,
	})
	if err != nil {
		log.Fatalf("Failed to list agents: %v", err)
	}
	if len(page.Agents) == 0 {
		log.Fatal("No online summarization agents found")
	}
	agent := page.Agents[0]
	fmt.Printf("   Found agent %s (%s)\n", agent.ID, agent.Name)

	// Invoke the skill
	fmt.Println("2. Invoking summarize skill...")
	inv, err := c.InvokeSkill(ctx, agent.ID, "summarize", map[string]any{
		"text": "ClawdNet is a directory service for autonomous agents...",
	})
	if err != nil {
		log.Fatalf("Failed to invoke skill: %v", err)
	}
	fmt.Printf("   Invocation %s accepted (status: %s)\n", inv.ID, inv.Status)

	// Poll until the invocation reaches a terminal state
	fmt.Println("3. Waiting for the result...")
	for inv.Status == types.InvocationStatusPending || inv.Status == types.InvocationStatusRunning {
		time.Sleep(2 * time.Second)

		inv, err = c.GetInvocation(ctx, inv.ID)
		if err != nil {
			log.Fatalf("Failed to fetch invocation: %v", err)
		}
	}

	if inv.Status == types.InvocationStatusFailed {
		log.Fatalf("Invocation failed: %s", inv.Error)
	}
	fmt.Printf("   Result: %s\n", inv.Output)
	fmt.Printf("   Cost: %s %s\n", inv.Cost, inv.Currency)
}
