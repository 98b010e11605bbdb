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

// GetVerificationsRequest is the request for a key's usage counters.
type GetVerificationsRequest struct {
	// KeyID is the id of the key to report on.
	KeyID string `json:"keyId"`

	// OwnerID aggregates usage across all keys with the given owner
	// instead of a single key.
	OwnerID *string `json:"ownerId,omitempty"`
}

// NewGetVerificationsRequest creates a new usage counters request.
func NewGetVerificationsRequest(keyID string) GetVerificationsRequest {
	return GetVerificationsRequest{KeyID: keyID}
}

// SetOwnerID aggregates usage across all keys with the given owner.
func (r GetVerificationsRequest) SetOwnerID(ownerID string) GetVerificationsRequest {
	r.OwnerID = &ownerID
	return r
}

// Verification is a bucketed usage counter.
type Verification struct {
	// Time is the unix timestamp in milliseconds of the bucket.
	Time int64 `json:"time"`

	// Success is the number of successful verifications in the bucket.
	Success int `json:"success"`

	// RateLimited is the number of ratelimited verifications in the bucket.
	RateLimited int `json:"rateLimited"`

	// UsageExceeded is the number of verifications rejected for exceeded
	// usage in the bucket.
	UsageExceeded int `json:"usageExceeded"`
}

// GetVerificationsResponse is the response to a usage counters request.
type GetVerificationsResponse struct {
	// Verifications is the series of usage buckets.
	Verifications []Verification `json:"verifications"`
}
