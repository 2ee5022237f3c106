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
	"math"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testSecret  = "whsec_test"
	testPayload = `{"event":"invocation"}`

	// HMAC-SHA256(key="whsec_test", message="1700000000.{\"event\":\"invocation\"}")
	testDigest = "909034ad1e37b4d1208f241a46e21394379560ced0e65e0ae9d7108b804bb9b3"

	testHeader = "t=1700000000,v1=" + testDigest
)

// verifierAt returns a Verifier whose clock is pinned to the given Unix time
func verifierAt(unix int64) *Verifier {
	v := NewVerifier()
	v.now = func() time.Time { return time.Unix(unix, 0) }
	return v
}

func TestVerifyValidSignature(t *testing.T) {
	v := verifierAt(1700000000)

	assert.True(t, v.Verify([]byte(testPayload), testHeader, testSecret))
}

func TestVerifyFieldOrderIndependent(t *testing.T) {
	v := verifierAt(1700000000)

	header := "v1=" + testDigest + ",t=1700000000"
	assert.True(t, v.Verify([]byte(testPayload), header, testSecret))
}

func TestVerifyIgnoresUnknownFields(t *testing.T) {
	v := verifierAt(1700000000)

	header := "v0=deadbeef,t=1700000000,v1=" + testDigest
	assert.True(t, v.Verify([]byte(testPayload), header, testSecret))
}

func TestVerifyMutatedPayload(t *testing.T) {
	v := verifierAt(1700000000)

	// Flip a single byte of the signed payload
	mutated := []byte(testPayload)
	mutated[len(mutated)-2] = 'N'

	assert.False(t, v.Verify(mutated, testHeader, testSecret))
}

func TestVerifyWrongSecret(t *testing.T) {
	v := verifierAt(1700000000)

	assert.False(t, v.Verify([]byte(testPayload), testHeader, "whsec_other"))
}

func TestVerifyToleranceBoundary(t *testing.T) {
	// Exactly at the window passes, one second beyond fails, in both
	// directions
	assert.True(t, verifierAt(1700000300).Verify([]byte(testPayload), testHeader, testSecret))
	assert.False(t, verifierAt(1700000301).Verify([]byte(testPayload), testHeader, testSecret))
	assert.True(t, verifierAt(1699999700).Verify([]byte(testPayload), testHeader, testSecret))
	assert.False(t, verifierAt(1699999699).Verify([]byte(testPayload), testHeader, testSecret))
}

func TestVerifyExpiredWithValidDigest(t *testing.T) {
	// 400s after signing with the default 300s tolerance: the digest is
	// still cryptographically correct but the window has elapsed
	v := verifierAt(1700000400)

	assert.False(t, v.Verify([]byte(testPayload), testHeader, testSecret))
}

func TestVerifyCustomTolerance(t *testing.T) {
	v := verifierAt(1700000400)
	v.SetTolerance(600 * time.Second)

	assert.True(t, v.Verify([]byte(testPayload), testHeader, testSecret))
}

func TestVerifyMalformedHeaders(t *testing.T) {
	v := verifierAt(1700000000)
	payload := []byte(testPayload)

	tests := []struct {
		name   string
		header string
	}{
		{"empty", ""},
		{"missing v1", "t=1700000000"},
		{"missing t", "v1=" + testDigest},
		{"non-numeric timestamp", "t=yesterday,v1=" + testDigest},
		{"empty timestamp", "t=,v1=" + testDigest},
		{"no key=value structure", "garbage"},
		{"wrong delimiters", "t:1700000000;v1:" + testDigest},
		{"empty signature", "t=1700000000,v1="},
		{"truncated digest", "t=1700000000,v1=" + testDigest[:20]},
		{"overlong digest", "t=1700000000,v1=" + testDigest + "00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NotPanics(t, func() {
				assert.False(t, v.Verify(payload, tt.header, testSecret))
			})
		})
	}
}

func TestVerifyExtremeTimestampSkew(t *testing.T) {
	v := verifierAt(1700000000)
	payload := []byte(testPayload)

	// A timestamp 2^63 seconds in the past makes the skew subtraction
	// wrap to math.MinInt64, which negation cannot make positive; the
	// window check must still reject it even with a correct digest
	past := strconv.FormatInt(math.MinInt64+1700000000, 10)
	header := "t=" + past + ",v1=" + computeDigest(testSecret, past, payload)
	assert.False(t, v.Verify(payload, header, testSecret))

	// Same at the far-future extreme
	future := strconv.FormatInt(math.MaxInt64, 10)
	header = "t=" + future + ",v1=" + computeDigest(testSecret, future, payload)
	assert.False(t, v.Verify(payload, header, testSecret))
}

func TestVerifySubSecondTolerance(t *testing.T) {
	// Sub-second tolerances truncate to whole seconds: only timestamps
	// matching the current second verify
	v := verifierAt(1700000000)
	v.SetTolerance(500 * time.Millisecond)

	assert.True(t, v.Verify([]byte(testPayload), testHeader, testSecret))

	shifted := verifierAt(1700000001)
	shifted.SetTolerance(500 * time.Millisecond)
	assert.False(t, shifted.Verify([]byte(testPayload), testHeader, testSecret))
}

func TestVerifyTimestampTextNotNormalized(t *testing.T) {
	// "+1700000000" parses to the same integer but signs differently;
	// the digest must cover the timestamp text as received
	v := verifierAt(1700000000)

	header := "t=+1700000000,v1=" + testDigest
	assert.False(t, v.Verify([]byte(testPayload), header, testSecret))
}

func TestVerifyIdempotent(t *testing.T) {
	v := verifierAt(1700000000)

	for i := 0; i < 5; i++ {
		assert.True(t, v.Verify([]byte(testPayload), testHeader, testSecret))
	}
}

func TestVerifySignatureRealClock(t *testing.T) {
	payload := []byte(`{"event":"review"}`)
	header := Sign(payload, testSecret, time.Now())

	assert.True(t, VerifySignature(payload, header, testSecret))
}

func TestSignRoundTrip(t *testing.T) {
	at := time.Unix(1700000000, 0)
	header := Sign([]byte(testPayload), testSecret, at)

	require.Equal(t, testHeader, header)

	v := verifierAt(1700000000)
	assert.True(t, v.Verify([]byte(testPayload), header, testSecret))
}

func TestVerifyConcurrent(t *testing.T) {
	v := verifierAt(1700000000)
	payload := []byte(testPayload)

	done := make(chan bool, 20)
	for i := 0; i < 20; i++ {
		go func() {
			done <- v.Verify(payload, testHeader, testSecret)
		}()
	}
	for i := 0; i < 20; i++ {
		assert.True(t, <-done)
	}
}
