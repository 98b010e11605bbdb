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
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"github.com/jeremyhahn/go-keygate/pkg/metrics"
	"github.com/jeremyhahn/go-keygate/pkg/types"
)

// errorDiscriminator is the envelope key that tags an API error payload. It
// doubles as the raw substring probe in the empty-body fallback.
const errorDiscriminator = "error"

// envelope is the wire-level wrapper every response decodes through: an
// error object under the discriminator key, or the untagged success payload
// beside it.
type envelope struct {
	Error *types.Error `json:"error"`
}

// readBody handles the front half of every decode: a failed transport call
// is wrapped immediately without touching the body, otherwise the body is
// read in full.
func (s *httpService) readBody(resp *http.Response, err error) ([]byte, error) {
	if err != nil {
		s.log.Errorf("HTTP request failed: %s", err)
		return nil, unknownError(err)
	}
	defer resp.Body.Close()

	text, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, unknownError(err)
	}

	s.log.Debugf("INCOMING: %s", text)
	return text, nil
}

// parseResponse decodes an API response carrying a payload. The tagged error
// shape takes priority; only when the discriminator is absent is the body
// decoded as T. Every failure collapses into *types.Error.
func parseResponse[T any](s *httpService, resp *http.Response, err error) (T, error) {
	var zero T

	text, readErr := s.readBody(resp, err)
	if readErr != nil {
		return zero, readErr
	}

	var env envelope
	if jsonErr := json.Unmarshal(text, &env); jsonErr == nil && env.Error != nil {
		metrics.RecordError(env.Error.Code.String())
		return zero, env.Error
	}

	var out T
	if jsonErr := json.Unmarshal(text, &out); jsonErr != nil {
		return zero, unknownError(jsonErr)
	}

	return out, nil
}

// parseEmptyResponse decodes an API response for operations with no success
// payload. An empty or trivial success body will not parse as the envelope,
// so a parse failure is only surfaced when the raw text carries the error
// discriminator; otherwise the call is treated as a success. A success body
// that merely mentions "error" in free text misclassifies here, which is the
// upstream behavior this client deliberately tracks.
func parseEmptyResponse(s *httpService, resp *http.Response, err error) error {
	text, readErr := s.readBody(resp, err)
	if readErr != nil {
		return readErr
	}

	var env envelope
	if jsonErr := json.Unmarshal(text, &env); jsonErr != nil {
		if strings.Contains(string(text), errorDiscriminator) {
			return unknownError(jsonErr)
		}
		return nil
	}

	if env.Error != nil {
		metrics.RecordError(env.Error.Code.String())
		return env.Error
	}

	return nil
}

// unknownError wraps a local failure (transport, body read, decode) into the
// uniform error shape.
func unknownError(err error) *types.Error {
	metrics.RecordError(types.ErrorCodeUnknown.String())
	return types.NewError(types.ErrorCodeUnknown, err.Error())
}
