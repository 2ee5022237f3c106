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

package webhook

import (
	"crypto/hmac"
	"strconv"
	"strings"
	"time"
)

const (
	// SignatureHeader is the HTTP header carrying the delivery signature
	SignatureHeader = "Clawdnet-Signature"

	// DefaultTolerance is the default replay window for signed timestamps
	DefaultTolerance = 300 * time.Second
)

// Verifier validates webhook delivery signatures.
//
// The zero Verifier is not usable; construct one with NewVerifier.
// A Verifier is stateless apart from its configuration and is safe for
// concurrent use.
type Verifier struct {
	tolerance time.Duration

	// now is the clock source, replaceable in tests
	now func() time.Time
}

// NewVerifier creates a Verifier with the default tolerance window
func NewVerifier() *Verifier {
	return &Verifier{
		tolerance: DefaultTolerance,
		now:       time.Now,
	}
}

// SetTolerance sets the maximum allowed skew between the signature's
// timestamp and the local clock. The boundary is inclusive: a timestamp
// exactly tolerance away still verifies.
//
// Signed timestamps have whole-second resolution, so the tolerance is
// applied at whole-second granularity and any sub-second component is
// truncated: a tolerance under one second accepts only timestamps
// matching the current second.
func (v *Verifier) SetTolerance(tolerance time.Duration) {
	v.tolerance = tolerance
}

// Verify reports whether header is a valid signature for payload under
// secret.
//
// The header format is "t=<unix-seconds>,v1=<hex-hmac-sha256>", fields
// in any order. The signed message is the timestamp text, a literal
// ".", and the payload bytes exactly as received. Verify never panics
// on malformed input: every failure (missing field, unparseable
// timestamp, timestamp outside the tolerance window, digest mismatch)
// collapses into false, so callers cannot distinguish failure causes.
func (v *Verifier) Verify(payload []byte, header, secret string) bool {
	timestamp, signature, ok := splitSignatureHeader(header)
	if !ok {
		return false
	}

	ts, err := strconv.ParseInt(timestamp, 10, 64)
	if err != nil {
		return false
	}

	// A skew of math.MinInt64 survives negation still negative; that
	// magnitude is out of any window
	skew := v.now().Unix() - ts
	if skew < 0 {
		skew = -skew
	}
	if skew < 0 || skew > int64(v.tolerance/time.Second) {
		return false
	}

	expected := computeDigest(secret, timestamp, payload)

	// hmac.Equal is constant-time and treats unequal lengths as unequal
	return hmac.Equal([]byte(expected), []byte(signature))
}

// VerifySignature validates a delivery signature with the default
// tolerance window and the real clock. See Verifier.Verify.
func VerifySignature(payload []byte, header, secret string) bool {
	return NewVerifier().Verify(payload, header, secret)
}

// splitSignatureHeader extracts the t and v1 fields from a signature
// header. Unknown fields are ignored; ok is false if either required
// field is absent.
func splitSignatureHeader(header string) (timestamp, signature string, ok bool) {
	var haveT, haveV1 bool
	for _, field := range strings.Split(header, ",") {
		if value, found := strings.CutPrefix(field, "t="); found && !haveT {
			timestamp = value
			haveT = true
			continue
		}
		if value, found := strings.CutPrefix(field, "v1="); found && !haveV1 {
			signature = value
			haveV1 = true
		}
	}
	if !haveT || !haveV1 {
		return "", "", false
	}
	return timestamp, signature, true
}
