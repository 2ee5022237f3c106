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

import "fmt"

// APIError is returned when the directory responds with a non-2xx status.
// Message carries the "error" field of the response body when present.
type APIError struct {
	// StatusCode is the HTTP status the directory returned
	StatusCode int

	// Message is the directory's error description
	Message string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("clawdnet: API error (status %d)", e.StatusCode)
	}
	return fmt.Sprintf("clawdnet: API error (status %d): %s", e.StatusCode, e.Message)
}

// IsNotFound reports whether the error is a 404 from the directory
func (e *APIError) IsNotFound() bool {
	return e.StatusCode == 404
}
