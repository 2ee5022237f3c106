package webhook

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"go.uber.org/zap"

	"github.com/clawdnet/clawdnet-go/pkg/types"
)

type contextKey string

const eventKey contextKey = "webhook_event"

// ErrorHandler handles rejected deliveries
type ErrorHandler func(w http.ResponseWriter, r *http.Request, err error)

// Middleware provides HTTP middleware for webhook signature verification
type Middleware struct {
	verifier     *Verifier
	secret       string
	errorHandler ErrorHandler
	optional     bool
	logger       *zap.Logger
}

// NewMiddleware creates webhook verification middleware for the given
// signing secret
func NewMiddleware(secret string) *Middleware {
	return &Middleware{
		verifier:     NewVerifier(),
		secret:       secret,
		errorHandler: defaultErrorHandler,
		optional:     false,
	}
}

// NewMiddlewareWithVerifier creates middleware with a custom verifier
func NewMiddlewareWithVerifier(secret string, verifier *Verifier) *Middleware {
	return &Middleware{
		verifier:     verifier,
		secret:       secret,
		errorHandler: defaultErrorHandler,
		optional:     false,
	}
}

// SetErrorHandler sets a custom error handler
func (m *Middleware) SetErrorHandler(handler ErrorHandler) {
	m.errorHandler = handler
}

// SetOptional sets whether signature verification is optional.
// If true, requests without a signature header pass through unverified
// and carry no event in their context.
func (m *Middleware) SetOptional(optional bool) {
	m.optional = optional
}

// SetLogger sets a logger for rejected deliveries. Log lines never
// include signature or digest material.
func (m *Middleware) SetLogger(logger *zap.Logger) {
	m.logger = logger
}

// Wrap wraps an HTTP handler with signature verification.
//
// The request body is buffered so verification sees the exact bytes
// received, then restored for the next handler. On success the decoded
// event envelope is available via EventFromContext.
func (m *Middleware) Wrap(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get(SignatureHeader)
		if header == "" {
			if m.optional {
				next.ServeHTTP(w, r)
				return
			}
			m.reject(w, r, fmt.Errorf("missing %s header", SignatureHeader))
			return
		}

		// Buffer the body so verification sees the exact bytes received
		var body []byte
		if r.Body != nil {
			body, _ = io.ReadAll(r.Body)
			r.Body.Close()
		}
		r.Body = io.NopCloser(bytes.NewBuffer(body))

		if !m.verifier.Verify(body, header, m.secret) {
			m.reject(w, r, fmt.Errorf("invalid signature"))
			return
		}

		// Parse the envelope only after the signature verified
		var event types.WebhookEvent
		if err := json.Unmarshal(body, &event); err != nil {
			m.reject(w, r, fmt.Errorf("decoding event envelope: %w", err))
			return
		}

		ctx := context.WithValue(r.Context(), eventKey, &event)
		r = r.WithContext(ctx)

		next.ServeHTTP(w, r)
	})
}

func (m *Middleware) reject(w http.ResponseWriter, r *http.Request, err error) {
	if m.logger != nil {
		m.logger.Warn("webhook delivery rejected",
			zap.String("remote_addr", r.RemoteAddr),
			zap.Error(err),
		)
	}
	m.errorHandler(w, r, err)
}

// EventFromContext extracts the verified webhook event from a request
// context
func EventFromContext(ctx context.Context) (*types.WebhookEvent, bool) {
	event, ok := ctx.Value(eventKey).(*types.WebhookEvent)
	return event, ok
}

// defaultErrorHandler is the default error handler
func defaultErrorHandler(w http.ResponseWriter, r *http.Request, err error) {
	http.Error(w, fmt.Sprintf("Unauthorized: %s", err.Error()), http.StatusUnauthorized)
}
