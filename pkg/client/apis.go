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

// apiService handles api related operations.
type apiService struct {
	http *httpService
}

// getAPI fetches information about an api.
func (s *apiService) getAPI(ctx context.Context, req types.GetApiRequest) (types.GetApiResponse, error) {
	route := routes.GetAPI.Compile().InsertPath(req.APIID)

	resp, err := s.http.fetch(ctx, route, nil)
	return parseResponse[types.GetApiResponse](s.http, resp, err)
}

// deleteAPI permanently deletes an api and revokes all of its keys.
func (s *apiService) deleteAPI(ctx context.Context, req types.DeleteApiRequest) error {
	route := routes.DeleteAPI.Compile().InsertPath(req.APIID)

	resp, err := s.http.fetch(ctx, route, nil)
	return parseEmptyResponse(s.http, resp, err)
}

// listKeys fetches a paginated list of an api's keys.
func (s *apiService) listKeys(ctx context.Context, req types.ListKeysRequest) (types.ListKeysResponse, error) {
	route := routes.ListKeys.Compile().InsertPath(req.APIID)
	route.InsertQuery("limit", req.Limit)
	if req.Offset != nil {
		route.InsertQuery("offset", *req.Offset)
	}
	if req.OwnerID != nil {
		route.InsertQuery("ownerId", *req.OwnerID)
	}

	resp, err := s.http.fetch(ctx, route, nil)
	return parseResponse[types.ListKeysResponse](s.http, resp, err)
}
