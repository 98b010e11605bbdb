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

// Package client provides the typed client for the Keygate key-management
// API. A Client groups operations by resource (keys, apis) and glues route
// compilation, the HTTP round trip, and response envelope decoding together
// per call.
//
// Every operation performs exactly one request/response cycle and returns
// either its typed response or a *types.Error; there are no retries and no
// caching at this layer. Operations are safe to call concurrently. Mutating
// the root key or base url concurrently with in-flight requests is the
// caller's responsibility to order.
package client

import (
	"context"

	"github.com/jeremyhahn/go-keygate/pkg/logging"
	"github.com/jeremyhahn/go-keygate/pkg/types"
)

// Client is the client used to make requests to the Keygate API.
type Client struct {
	// http is the internal service sending and receiving requests.
	http *httpService

	// keys handles key related operations.
	keys keyService

	// apis handles api related operations.
	apis apiService
}

// New creates a new client authenticating with the given root api key.
// Logging verbosity is taken from the KEYGATE_LOG environment variable.
func New(rootKey string) *Client {
	return NewWithBaseURL(rootKey, defaultBaseURL)
}

// NewWithBaseURL creates a new client that talks to a different base url
// than the production Keygate API, excluding the trailing slash. i.e.
// http://localhost:3000.
func NewWithBaseURL(rootKey, baseURL string) *Client {
	http := newHTTPService(rootKey, baseURL, logging.FromEnv())

	return &Client{
		http: http,
		keys: keyService{http: http},
		apis: apiService{http: http},
	}
}

// SetRootKey updates the root api key sent with requests.
func (c *Client) SetRootKey(key string) {
	c.http.setRootKey(key)
}

// SetBaseURL updates the base url requests are sent to.
func (c *Client) SetBaseURL(url string) {
	c.http.setBaseURL(url)
}

// CreateKey creates a new api key.
func (c *Client) CreateKey(ctx context.Context, req types.CreateKeyRequest) (types.CreateKeyResponse, error) {
	return c.keys.createKey(ctx, req)
}

// VerifyKey verifies an existing api key.
func (c *Client) VerifyKey(ctx context.Context, req types.VerifyKeyRequest) (types.VerifyKeyResponse, error) {
	return c.keys.verifyKey(ctx, req)
}

// RevokeKey permanently revokes an existing api key. Nothing is returned on
// success.
func (c *Client) RevokeKey(ctx context.Context, req types.RevokeKeyRequest) error {
	return c.keys.revokeKey(ctx, req)
}

// UpdateKey applies a partial update to an existing api key. Undefined
// fields are left untouched, null fields are cleared, defined fields are
// replaced. Nothing is returned on success.
func (c *Client) UpdateKey(ctx context.Context, req types.UpdateKeyRequest) error {
	return c.keys.updateKey(ctx, req)
}

// GetKey fetches the details of an api key.
func (c *Client) GetKey(ctx context.Context, req types.GetKeyRequest) (types.ApiKey, error) {
	return c.keys.getKey(ctx, req)
}

// UpdateRemaining updates the remaining verifications for a key.
func (c *Client) UpdateRemaining(ctx context.Context, req types.UpdateRemainingRequest) (types.UpdateRemainingResponse, error) {
	return c.keys.updateRemaining(ctx, req)
}

// GetVerifications fetches the usage counters for a key.
func (c *Client) GetVerifications(ctx context.Context, req types.GetVerificationsRequest) (types.GetVerificationsResponse, error) {
	return c.keys.getVerifications(ctx, req)
}

// GetAPI fetches information about an api.
func (c *Client) GetAPI(ctx context.Context, req types.GetApiRequest) (types.GetApiResponse, error) {
	return c.apis.getAPI(ctx, req)
}

// DeleteAPI permanently deletes an api and revokes all keys associated with
// it. Nothing is returned on success.
func (c *Client) DeleteAPI(ctx context.Context, req types.DeleteApiRequest) error {
	return c.apis.deleteAPI(ctx, req)
}

// ListKeys fetches a paginated list of an api's keys.
func (c *Client) ListKeys(ctx context.Context, req types.ListKeysRequest) (types.ListKeysResponse, error) {
	return c.apis.listKeys(ctx, req)
}
