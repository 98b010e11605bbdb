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

// defaultListLimit is the page size used when listing keys without an
// explicit limit.
const defaultListLimit = 100

// GetApiRequest is the request to fetch information about an api.
type GetApiRequest struct {
	// APIID is the id of the api to fetch.
	APIID string `json:"apiId"`
}

// NewGetApiRequest creates a new get api request.
func NewGetApiRequest(apiID string) GetApiRequest {
	return GetApiRequest{APIID: apiID}
}

// GetApiResponse is the response to a get api request.
type GetApiResponse struct {
	// ID is the api id.
	ID string `json:"id"`

	// Name is the name of the api.
	Name string `json:"name"`

	// WorkspaceID is the id of the owning workspace.
	WorkspaceID string `json:"workspaceId"`
}

// DeleteApiRequest is the request to permanently delete an api and revoke
// all keys associated with it.
type DeleteApiRequest struct {
	// APIID is the id of the api to delete.
	APIID string `json:"apiId"`
}

// NewDeleteApiRequest creates a new delete api request.
func NewDeleteApiRequest(apiID string) DeleteApiRequest {
	return DeleteApiRequest{APIID: apiID}
}

// ListKeysRequest is the request for a paginated list of an api's keys.
type ListKeysRequest struct {
	// APIID is the id of the api whose keys to list.
	APIID string `json:"apiId"`

	// Limit is the maximum number of keys to return.
	Limit int `json:"limit"`

	// Offset is the pagination offset, if any.
	Offset *int `json:"offset,omitempty"`

	// OwnerID restricts the listing to keys with the given owner.
	OwnerID *string `json:"ownerId,omitempty"`
}

// NewListKeysRequest creates a new list keys request with the default limit
// of 100.
func NewListKeysRequest(apiID string) ListKeysRequest {
	return ListKeysRequest{APIID: apiID, Limit: defaultListLimit}
}

// SetLimit sets the maximum number of keys to return.
func (r ListKeysRequest) SetLimit(limit int) ListKeysRequest {
	r.Limit = limit
	return r
}

// SetOffset sets the pagination offset.
func (r ListKeysRequest) SetOffset(offset int) ListKeysRequest {
	r.Offset = &offset
	return r
}

// SetOwnerID restricts the listing to keys with the given owner.
func (r ListKeysRequest) SetOwnerID(ownerID string) ListKeysRequest {
	r.OwnerID = &ownerID
	return r
}

// ListKeysResponse is the response to a list keys request.
type ListKeysResponse struct {
	// Keys is the page of keys.
	Keys []ApiKey `json:"keys"`

	// Total is the total number of keys for the api.
	Total int `json:"total"`
}
