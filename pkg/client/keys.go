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

package client

import (
	"context"

	"github.com/jeremyhahn/go-keygate/pkg/routes"
	"github.com/jeremyhahn/go-keygate/pkg/types"
)

// keyService handles key related operations: compile the route, fill in the
// parameters from the typed request, fetch, decode.
type keyService struct {
	http *httpService
}

// createKey creates a new api key.
func (s *keyService) createKey(ctx context.Context, req types.CreateKeyRequest) (types.CreateKeyResponse, error) {
	route := routes.CreateKey.Compile()

	resp, err := s.http.fetch(ctx, route, req)
	return parseResponse[types.CreateKeyResponse](s.http, resp, err)
}

// verifyKey verifies an existing api key.
func (s *keyService) verifyKey(ctx context.Context, req types.VerifyKeyRequest) (types.VerifyKeyResponse, error) {
	route := routes.VerifyKey.Compile()

	resp, err := s.http.fetch(ctx, route, req)
	return parseResponse[types.VerifyKeyResponse](s.http, resp, err)
}

// revokeKey permanently revokes an existing api key.
func (s *keyService) revokeKey(ctx context.Context, req types.RevokeKeyRequest) error {
	route := routes.RevokeKey.Compile().InsertPath(req.KeyID)

	resp, err := s.http.fetch(ctx, route, nil)
	return parseEmptyResponse(s.http, resp, err)
}

// updateKey applies a partial update to an existing api key.
func (s *keyService) updateKey(ctx context.Context, req types.UpdateKeyRequest) error {
	route := routes.UpdateKey.Compile().InsertPath(req.KeyID)

	resp, err := s.http.fetch(ctx, route, req)
	return parseEmptyResponse(s.http, resp, err)
}

// getKey fetches the details of an api key.
func (s *keyService) getKey(ctx context.Context, req types.GetKeyRequest) (types.ApiKey, error) {
	route := routes.GetKey.Compile()
	route.InsertQuery("keyId", req.KeyID)

	resp, err := s.http.fetch(ctx, route, nil)
	return parseResponse[types.ApiKey](s.http, resp, err)
}

// updateRemaining updates the remaining verifications for a key.
func (s *keyService) updateRemaining(ctx context.Context, req types.UpdateRemainingRequest) (types.UpdateRemainingResponse, error) {
	route := routes.UpdateRemaining.Compile()

	resp, err := s.http.fetch(ctx, route, req)
	return parseResponse[types.UpdateRemainingResponse](s.http, resp, err)
}

// getVerifications fetches the usage counters for a key.
func (s *keyService) getVerifications(ctx context.Context, req types.GetVerificationsRequest) (types.GetVerificationsResponse, error) {
	route := routes.GetVerifications.Compile()
	route.InsertQuery("keyId", req.KeyID)
	if req.OwnerID != nil {
		route.InsertQuery("ownerId", *req.OwnerID)
	}

	resp, err := s.http.fetch(ctx, route, nil)
	return parseResponse[types.GetVerificationsResponse](s.http, resp, err)
}
