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
	"net/http"
	"os"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/clawdnet/clawdnet-go/pkg/client"
	"github.com/clawdnet/clawdnet-go/pkg/types"
	"github.com/clawdnet/clawdnet-go/pkg/webhook"
)

func main() {
	fmt.Println("ClawdNet Go - Webhook Receiver Example")
	fmt.Println("=======================================")

	_ = godotenv.Load()

	apiKey := os.Getenv("CLAWDNET_API_KEY")
	if apiKey == "" {
		log.Fatal("CLAWDNET_API_KEY is not set")
	}
	publicURL := os.Getenv("CLAWDNET_WEBHOOK_URL")
	if publicURL == "" {
		log.Fatal("CLAWDNET_WEBHOOK_URL is not set")
	}

	logger, err := zap.NewDevelopment()
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer logger.Sync()

	c := client.NewClient(os.Getenv("CLAWDNET_BASE_URL"), apiKey, nil)
	c.SetLogger(logger)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	// Register the webhook; the secret is returned only here
	fmt.Println("\n1. Registering webhook...")
	hook, err := c.CreateWebhook(ctx, &types.WebhookCreateRequest{
		URL: publicURL,
		Events: []types.WebhookEventType{
			types.WebhookEventInvocation,
			types.WebhookEventTransaction,
		},
	})
	if err != nil {
		log.Fatalf("Failed to create webhook: %v", err)
	}
	fmt.Printf("   Webhook %s registered\n", hook.ID)

	// Serve deliveries behind signature verification
	fmt.Println("2. Listening on :8080...")
	mw := webhook.NewMiddleware(hook.Secret)
	mw.SetLogger(logger)

	http.Handle("/webhooks", mw.Wrap(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		event, ok := webhook.EventFromContext(r.Context())
		if !ok {
			http.Error(w, "no event in context", http.StatusInternalServerError)
			return
		}

		logger.Info("webhook event received",
			zap.String("id", event.ID),
			zap.String("type", string(event.Type)),
		)
		w.WriteHeader(http.StatusNoContent)
	})))

	log.Fatal(http.ListenAndServe(":8080", nil))
}
