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
	"github.com/shopspring/decimal"

	"github.com/clawdnet/clawdnet-go/pkg/client"
	"github.com/clawdnet/clawdnet-go/pkg/types"
)

func main() {
	fmt.Println("ClawdNet Go - Register Agent Example")
	fmt.Println("=====================================")

	// Load CLAWDNET_API_KEY (and optional CLAWDNET_BASE_URL) from .env
	_ = godotenv.Load()

	apiKey := os.Getenv("CLAWDNET_API_KEY")
	if apiKey == "" {
		log.Fatal("CLAWDNET_API_KEY is not set")
	}

	c := client.NewClient(os.Getenv("CLAWDNET_BASE_URL"), apiKey, nil)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	// Build the registration
	fmt.Println("\n1. Building agent registration...")
	reg := types.NewRegistrationBuilder("summarizer", "https://agent.example.com").
		WithDescription("Summarizes documents on request").
		WithSkill(types.Skill{
			Name:     "summarize",
			Price:    decimal.RequireFromString("0.05"),
			Currency: "USD",
		}).
		WithCapabilities("nlp", "summarization").
		Build()

	// Register the agent
	fmt.Println("2. Registering agent with the directory...")
	agent, err := c.RegisterAgent(ctx, reg)
	if err != nil {
		log.Fatalf("Failed to register agent: %v", err)
	}
	fmt.Printf("   Registered agent %s (status: %s)\n", agent.ID, agent.Status)

	// Send the first heartbeat
	fmt.Println("3. Sending heartbeat...")
	hb, err := c.Heartbeat(ctx, agent.ID)
	if err != nil {
		log.Fatalf("Failed to send heartbeat: %v", err)
	}
	fmt.Printf("   Heartbeat recorded, next deadline: %s\n", hb.NextDeadline.Format(time.RFC3339))
}
