// Copyright (c) 2025 Jeremy Hahn
// Copyright (c) 2025 Automate The Things, LLC
//
// This file is part of go-keygate.
//
// go-keygate is dual-licensed:
//
// 1. GNU Affero General Public License v3.0 (AGPL-3.0)
//    See LICENSE file or visit https://www.gnu.org/licenses/agpl-3.0.html
//
// 2. Commercial License
//    Contact licensing@automatethethings.com for commercial licensing options.

package types

// RatelimitType selects which ratelimit implementation the API applies to a
// key.
type RatelimitType string

const (
	// RatelimitFast is maintained per edge location. Quick, but users can
	// theoretically exceed the limit if their requests hit different
	// locations.
	RatelimitFast RatelimitType = "fast"

	// RatelimitConsistent routes all ratelimit operations through a single
	// service for consistent limits.
	RatelimitConsistent RatelimitType = "consistent"
)

// Ratelimit is a ratelimit imposed on an api key.
type Ratelimit struct {
	// Type is the ratelimit implementation to use.
	Type RatelimitType `json:"type"`

	// RefillRate is the rate at which the limit refills, per interval.
	RefillRate int `json:"refillRate"`

	// RefillInterval is the interval at which to refill, in milliseconds.
	RefillInterval int `json:"refillInterval"`

	// Limit is the total number of burstable requests.
	Limit int `json:"limit"`
}

// NewRatelimit creates a new ratelimit.
func NewRatelimit(ratelimitType RatelimitType, refillRate, refillInterval, limit int) Ratelimit {
	return Ratelimit{
		Type:           ratelimitType,
		RefillRate:     refillRate,
		RefillInterval: refillInterval,
		Limit:          limit,
	}
}

// RatelimitState is a snapshot of the ratelimit status for a key, returned
// with key verifications.
type RatelimitState struct {
	// Limit is the number of burstable requests allowed.
	Limit int `json:"limit"`

	// Remaining is the number of requests left in this burst window.
	Remaining int `json:"remaining"`

	// Reset is the unix timestamp in milliseconds when the next window
	// starts.
	Reset int64 `json:"reset"`
}
