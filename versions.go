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

// Package clawdnet provides version information for clawdnet-go and the
// ClawdNet directory API it targets.
package clawdnet

const (
	// Version is the current version of clawdnet-go
	Version = "1.0.0-dev"

	// APIVersion is the ClawdNet directory API version this library targets
	APIVersion = "v1"

	// MinAPIVersion is the minimum directory API version compatible with this library
	MinAPIVersion = "v1"
)

// VersionInfo contains detailed version information
type VersionInfo struct {
	SDKVersion    string
	APIVersion    string
	MinAPIVersion string
}

// GetVersionInfo returns detailed version information
func GetVersionInfo() VersionInfo {
	return VersionInfo{
		SDKVersion:    Version,
		APIVersion:    APIVersion,
		MinAPIVersion: MinAPIVersion,
	}
}
