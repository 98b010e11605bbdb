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

// RefillInterval is the cadence at which a key's remaining verifications are
// refilled.
type RefillInterval string

const (
	// RefillDaily refills daily.
	RefillDaily RefillInterval = "daily"

	// RefillMonthly refills monthly.
	RefillMonthly RefillInterval = "monthly"
)

// Refill is the state of a key's automatic refills.
type Refill struct {
	// Amount is the number of verifications to refill.
	Amount int `json:"amount"`

	// Interval is the cadence at which to refill.
	Interval RefillInterval `json:"interval"`

	// LastRefilledAt is the unix timestamp in milliseconds when the key was
	// last refilled, if it has been. Set by the API, never sent.
	LastRefilledAt *int64 `json:"lastRefilledAt,omitempty"`
}

// NewRefill creates a new refill.
func NewRefill(amount int, interval RefillInterval) Refill {
	return Refill{Amount: amount, Interval: interval}
}
