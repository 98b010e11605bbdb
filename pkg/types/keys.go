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

// Package types contains the request and response models for every Keygate
// API operation, the tri-state UndefinedOr field used by partial updates, and
// the uniform Error shape all operations return. Mostly you will construct
// the structs suffixed with Request and receive the structs suffixed with
// Response.
package types

import "time"

// ApiKey is the full representation of an api key as returned by the API.
type ApiKey struct {
	// ID is the key id.
	ID string `json:"id"`

	// APIID is the id of the api this key belongs to.
	APIID string `json:"apiId"`

	// WorkspaceID is the id of the owning workspace.
	WorkspaceID string `json:"workspaceId"`

	// Start is the first few characters of the key, for display purposes.
	Start string `json:"start"`

	// OwnerID is the owner of the key, if one was assigned.
	OwnerID *string `json:"ownerId,omitempty"`

	// Meta is the dynamic metadata attached to the key.
	Meta map[string]any `json:"meta,omitempty"`

	// CreatedAt is the unix timestamp in milliseconds the key was created.
	CreatedAt int64 `json:"createdAt"`

	// Expires is the unix timestamp in milliseconds the key expires, if set.
	Expires *int64 `json:"expires,omitempty"`

	// Remaining is the number of verifications left, if limited.
	Remaining *int `json:"remaining,omitempty"`

	// Ratelimit is the ratelimit imposed on the key, if any.
	Ratelimit *Ratelimit `json:"ratelimit,omitempty"`

	// Refill is the automatic refill configuration, if any.
	Refill *Refill `json:"refill,omitempty"`

	// Enabled reports whether the key is enabled.
	Enabled *bool `json:"enabled,omitempty"`
}

// CreateKeyRequest is the request to create a new api key. Construct with
// NewCreateKeyRequest and chain the setters; every field except the api id
// is optional and omitted from the wire until set. Setters are
// order-independent and side-effect free; the last write to a field wins.
type CreateKeyRequest struct {
	// APIID is the id of the api to create the key for.
	APIID string `json:"apiId"`

	// OwnerID is the owner to attach to the key.
	OwnerID *string `json:"ownerId,omitempty"`

	// Name is a human readable name for the key.
	Name *string `json:"name,omitempty"`

	// Prefix is prepended to the generated key.
	Prefix *string `json:"prefix,omitempty"`

	// ByteLength is the length of the generated key in bytes.
	ByteLength *int `json:"byteLength,omitempty"`

	// Meta is dynamic metadata to attach to the key.
	Meta map[string]any `json:"meta,omitempty"`

	// Expires is the unix timestamp in milliseconds the key expires.
	Expires *int64 `json:"expires,omitempty"`

	// Remaining is the number of verifications the key is limited to.
	Remaining *int `json:"remaining,omitempty"`

	// Ratelimit is the ratelimit to impose on the key.
	Ratelimit *Ratelimit `json:"ratelimit,omitempty"`

	// Refill is the automatic refill configuration for the key.
	Refill *Refill `json:"refill,omitempty"`

	// Enabled sets whether the key starts out enabled.
	Enabled *bool `json:"enabled,omitempty"`
}

// NewCreateKeyRequest creates a new request for the given api id.
func NewCreateKeyRequest(apiID string) CreateKeyRequest {
	return CreateKeyRequest{APIID: apiID}
}

// SetOwnerID sets the owner for the new key.
func (r CreateKeyRequest) SetOwnerID(ownerID string) CreateKeyRequest {
	r.OwnerID = &ownerID
	return r
}

// SetName sets the name for the new key.
func (r CreateKeyRequest) SetName(name string) CreateKeyRequest {
	r.Name = &name
	return r
}

// SetPrefix sets the prefix for the new key.
func (r CreateKeyRequest) SetPrefix(prefix string) CreateKeyRequest {
	r.Prefix = &prefix
	return r
}

// SetByteLength sets the byte length of the new key.
func (r CreateKeyRequest) SetByteLength(n int) CreateKeyRequest {
	r.ByteLength = &n
	return r
}

// SetMeta sets the dynamic metadata for the new key.
func (r CreateKeyRequest) SetMeta(meta map[string]any) CreateKeyRequest {
	r.Meta = meta
	return r
}

// SetExpires sets the key to expire the given duration from now.
func (r CreateKeyRequest) SetExpires(d time.Duration) CreateKeyRequest {
	expires := time.Now().Add(d).UnixMilli()
	r.Expires = &expires
	return r
}

// SetRemaining limits the key to the given number of verifications.
func (r CreateKeyRequest) SetRemaining(remaining int) CreateKeyRequest {
	r.Remaining = &remaining
	return r
}

// SetRatelimit sets the ratelimit for the new key.
func (r CreateKeyRequest) SetRatelimit(ratelimit Ratelimit) CreateKeyRequest {
	r.Ratelimit = &ratelimit
	return r
}

// SetRefill sets the automatic refill configuration for the new key.
func (r CreateKeyRequest) SetRefill(refill Refill) CreateKeyRequest {
	r.Refill = &refill
	return r
}

// SetEnabled sets whether the new key starts out enabled.
func (r CreateKeyRequest) SetEnabled(enabled bool) CreateKeyRequest {
	r.Enabled = &enabled
	return r
}

// CreateKeyResponse is the response to a create key request.
type CreateKeyResponse struct {
	// Key is the newly minted api key. This is the only time it is ever
	// returned; store it.
	Key string `json:"key"`

	// KeyID is the id of the new key.
	KeyID string `json:"keyId"`
}

// VerifyKeyRequest is the request to verify an api key.
type VerifyKeyRequest struct {
	// Key is the api key to verify.
	Key string `json:"key"`

	// APIID is the id of the api the key should belong to.
	APIID string `json:"apiId"`
}

// NewVerifyKeyRequest creates a new verify key request.
func NewVerifyKeyRequest(key, apiID string) VerifyKeyRequest {
	return VerifyKeyRequest{Key: key, APIID: apiID}
}

// VerifyKeyResponse is the response to a verify key request.
type VerifyKeyResponse struct {
	// Valid reports whether the key is valid.
	Valid bool `json:"valid"`

	// OwnerID is the owner of the key, if one was assigned.
	OwnerID *string `json:"ownerId,omitempty"`

	// Meta is the dynamic metadata attached to the key.
	Meta map[string]any `json:"meta,omitempty"`

	// Expires is the unix timestamp in milliseconds the key expires, if set.
	Expires *int64 `json:"expires,omitempty"`

	// Remaining is the number of verifications left, if limited.
	Remaining *int `json:"remaining,omitempty"`

	// Ratelimit is the current ratelimit window state, if a ratelimit is
	// imposed.
	Ratelimit *RatelimitState `json:"ratelimit,omitempty"`

	// Enabled reports whether the key is enabled.
	Enabled *bool `json:"enabled,omitempty"`

	// Code is the error category explaining why the key is not valid.
	Code *ErrorCode `json:"code,omitempty"`
}

// RevokeKeyRequest is the request to permanently revoke an api key.
type RevokeKeyRequest struct {
	// KeyID is the id of the key to revoke.
	KeyID string `json:"keyId"`
}

// NewRevokeKeyRequest creates a new revoke key request.
func NewRevokeKeyRequest(keyID string) RevokeKeyRequest {
	return RevokeKeyRequest{KeyID: keyID}
}

// GetKeyRequest is the request to fetch an api key.
type GetKeyRequest struct {
	// KeyID is the id of the key to fetch.
	KeyID string `json:"keyId"`
}

// NewGetKeyRequest creates a new get key request.
func NewGetKeyRequest(keyID string) GetKeyRequest {
	return GetKeyRequest{KeyID: keyID}
}

// UpdateKeyRequest is a partial update of an existing api key. Each field is
// tri-state: undefined fields are omitted from the wire and left untouched by
// the API, null fields explicitly clear the property, and defined fields
// replace it. The setters take pointers so a nil argument clears the
// property; they never produce the undefined state.
type UpdateKeyRequest struct {
	// KeyID is the id of the key to update. Travels in the request path,
	// not the body.
	KeyID string `json:"-"`

	// Name is the human readable name for the key.
	Name UndefinedOr[string] `json:"name,omitzero"`

	// OwnerID is the owner of the key.
	OwnerID UndefinedOr[string] `json:"ownerId,omitzero"`

	// Meta is the dynamic metadata attached to the key.
	Meta UndefinedOr[map[string]any] `json:"meta,omitzero"`

	// Expires is the unix timestamp in milliseconds the key expires.
	Expires UndefinedOr[int64] `json:"expires,omitzero"`

	// Remaining is the number of verifications the key is limited to.
	Remaining UndefinedOr[int] `json:"remaining,omitzero"`

	// Ratelimit is the ratelimit imposed on the key.
	Ratelimit UndefinedOr[Ratelimit] `json:"ratelimit,omitzero"`

	// Refill is the automatic refill configuration for the key.
	Refill UndefinedOr[Refill] `json:"refill,omitzero"`

	// Enabled is whether the key is enabled.
	Enabled UndefinedOr[bool] `json:"enabled,omitzero"`
}

// NewUpdateKeyRequest creates a new update request for the given key id with
// every field undefined.
func NewUpdateKeyRequest(keyID string) UpdateKeyRequest {
	return UpdateKeyRequest{KeyID: keyID}
}

// SetName sets or clears the key's name.
func (r UpdateKeyRequest) SetName(name *string) UpdateKeyRequest {
	r.Name = FromPtr(name)
	return r
}

// SetOwnerID sets or clears the key's owner.
func (r UpdateKeyRequest) SetOwnerID(ownerID *string) UpdateKeyRequest {
	r.OwnerID = FromPtr(ownerID)
	return r
}

// SetMeta sets or clears the key's dynamic metadata.
func (r UpdateKeyRequest) SetMeta(meta *map[string]any) UpdateKeyRequest {
	r.Meta = FromPtr(meta)
	return r
}

// SetExpires sets the key to expire the given duration from now, or clears
// the expiry when d is nil.
func (r UpdateKeyRequest) SetExpires(d *time.Duration) UpdateKeyRequest {
	if d == nil {
		r.Expires = Null[int64]()
		return r
	}
	r.Expires = Defined(time.Now().Add(*d).UnixMilli())
	return r
}

// SetRemaining sets or clears the key's remaining verifications.
func (r UpdateKeyRequest) SetRemaining(remaining *int) UpdateKeyRequest {
	r.Remaining = FromPtr(remaining)
	return r
}

// SetRatelimit sets or clears the key's ratelimit.
func (r UpdateKeyRequest) SetRatelimit(ratelimit *Ratelimit) UpdateKeyRequest {
	r.Ratelimit = FromPtr(ratelimit)
	return r
}

// SetRefill sets or clears the key's automatic refill configuration.
func (r UpdateKeyRequest) SetRefill(refill *Refill) UpdateKeyRequest {
	r.Refill = FromPtr(refill)
	return r
}

// SetEnabled sets or clears whether the key is enabled.
func (r UpdateKeyRequest) SetEnabled(enabled *bool) UpdateKeyRequest {
	r.Enabled = FromPtr(enabled)
	return r
}

// UpdateOp is the arithmetic applied by an update remaining request.
type UpdateOp string

const (
	// UpdateOpIncrement adds the value to the remaining verifications.
	UpdateOpIncrement UpdateOp = "increment"

	// UpdateOpDecrement subtracts the value from the remaining verifications.
	UpdateOpDecrement UpdateOp = "decrement"

	// UpdateOpSet sets the remaining verifications to the value.
	UpdateOpSet UpdateOp = "set"
)

// UpdateRemainingRequest is the request to update the remaining verifications
// for a key.
type UpdateRemainingRequest struct {
	// KeyID is the id of the key to update.
	KeyID string `json:"keyId"`

	// Value is the operand for the update, or null to clear the limit.
	Value *int `json:"value"`

	// Op is the operation to perform.
	Op UpdateOp `json:"op"`
}

// NewUpdateRemainingRequest creates a new update remaining request.
func NewUpdateRemainingRequest(keyID string, value *int, op UpdateOp) UpdateRemainingRequest {
	return UpdateRemainingRequest{KeyID: keyID, Value: value, Op: op}
}

// UpdateRemainingResponse is the response to an update remaining request.
type UpdateRemainingResponse struct {
	// Remaining is the number of verifications left after the update.
	Remaining int `json:"remaining"`
}
