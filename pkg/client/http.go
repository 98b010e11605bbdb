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
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/jeremyhahn/go-keygate/pkg/correlation"
	"github.com/jeremyhahn/go-keygate/pkg/logging"
	"github.com/jeremyhahn/go-keygate/pkg/metrics"
	"github.com/jeremyhahn/go-keygate/pkg/routes"
)

// defaultBaseURL is the Keygate API production base url.
const defaultBaseURL = "https://api.keygate.dev/v1"

// Version is the client library version, reported in the x-user-agent
// header.
const Version = "0.4.0"

// httpService performs the HTTP round trips for the client: it owns the base
// URL, the shared request headers, and the underlying http.Client. Exactly
// one round trip happens per fetch; retries, pooling, and timeouts are the
// http.Client's business.
type httpService struct {
	baseURL string
	headers http.Header
	client  *http.Client
	log     *logging.Logger
}

// newHTTPService creates a new http service with the standard header set.
func newHTTPService(rootKey, baseURL string, log *logging.Logger) *httpService {
	headers := make(http.Header, 3)
	headers.Set("Accept", "application/json")
	headers.Set("x-user-agent", fmt.Sprintf("Keygate Go SDK v%s", Version))
	headers.Set("Authorization", "Bearer "+rootKey)

	return &httpService{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		headers: headers,
		client:  &http.Client{},
		log:     log,
	}
}

// setRootKey replaces the root api key sent with requests. Not synchronized
// against in-flight requests; callers order configuration changes before
// dependent calls.
func (s *httpService) setRootKey(key string) {
	s.headers.Set("Authorization", "Bearer "+key)
}

// setBaseURL replaces the base url used for requests, excluding the trailing
// slash.
func (s *httpService) setBaseURL(url string) {
	s.baseURL = strings.TrimSuffix(url, "/")
}

// fetch sends a single request for the compiled route, with the payload as a
// JSON body when non-nil. The response body is left unread for the envelope
// decoder.
func (s *httpService) fetch(ctx context.Context, route *routes.CompiledRoute, payload any) (*http.Response, error) {
	endpoint := route.Endpoint()
	s.log.Infof("OUTGOING: %s %s", route.Method, endpoint)

	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal request body: %w", err)
		}
		s.log.Debugf("PAYLOAD : %s", data)
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, route.Method, s.baseURL+endpoint, body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header = s.headers.Clone()
	req.Header.Set(correlation.RequestIDHeader, correlation.GetOrGenerate(ctx))
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	start := time.Now()
	resp, err := s.client.Do(req)
	if err != nil {
		return nil, err
	}

	metrics.RecordRequest(route.Method, strconv.Itoa(resp.StatusCode), time.Since(start))
	return resp, nil
}
