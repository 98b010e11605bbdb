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

import (
	"encoding/json"
	"fmt"
)

// ErrorCode is an error category returned by the Keygate API. The set is
// closed on our side; codes the server introduces later decode to
// ErrorCodeUnknown rather than failing.
type ErrorCode string

const (
	// ErrorCodeNotFound indicates the resource was not found.
	ErrorCodeNotFound ErrorCode = "NOT_FOUND"

	// ErrorCodeForbidden indicates the request was forbidden.
	ErrorCodeForbidden ErrorCode = "FORBIDDEN"

	// ErrorCodeBadRequest indicates a malformed request payload.
	ErrorCodeBadRequest ErrorCode = "BAD_REQUEST"

	// ErrorCodeRatelimited indicates the caller is ratelimited.
	ErrorCodeRatelimited ErrorCode = "RATELIMITED"

	// ErrorCodeUnauthorized indicates the caller is not authorized.
	ErrorCodeUnauthorized ErrorCode = "UNAUTHORIZED"

	// ErrorCodeUsageExceeded indicates the key's usage limit was exceeded.
	ErrorCodeUsageExceeded ErrorCode = "USAGE_EXCEEDED"

	// ErrorCodeInternalServerError indicates the API failed internally.
	ErrorCodeInternalServerError ErrorCode = "INTERNAL_SERVER_ERROR"

	// ErrorCodeConflict indicates the request conflicts with existing state.
	ErrorCodeConflict ErrorCode = "CONFLICT"

	// ErrorCodeExpired indicates the key has expired.
	ErrorCodeExpired ErrorCode = "EXPIRED"

	// ErrorCodeDisabled indicates the key is disabled.
	ErrorCodeDisabled ErrorCode = "DISABLED"

	// ErrorCodeNotUnique indicates a uniqueness constraint was violated.
	ErrorCodeNotUnique ErrorCode = "NOT_UNIQUE"

	// ErrorCodeDeleteProtected indicates the resource is protected from deletion.
	ErrorCodeDeleteProtected ErrorCode = "DELETE_PROTECTED"

	// ErrorCodeTooManyRequests indicates too many requests in a window.
	ErrorCodeTooManyRequests ErrorCode = "TOO_MANY_REQUESTS"

	// ErrorCodeInvalidKeyType indicates the key type is not valid for the operation.
	ErrorCodeInvalidKeyType ErrorCode = "INVALID_KEY_TYPE"

	// ErrorCodeUnknown is reserved for unrecognized codes and local
	// transport or decode failures.
	ErrorCodeUnknown ErrorCode = "UNKNOWN"
)

// knownErrorCodes is the closed set of codes recognized by this client.
var knownErrorCodes = map[ErrorCode]struct{}{
	ErrorCodeNotFound:            {},
	ErrorCodeForbidden:           {},
	ErrorCodeBadRequest:          {},
	ErrorCodeRatelimited:         {},
	ErrorCodeUnauthorized:        {},
	ErrorCodeUsageExceeded:       {},
	ErrorCodeInternalServerError: {},
	ErrorCodeConflict:            {},
	ErrorCodeExpired:             {},
	ErrorCodeDisabled:            {},
	ErrorCodeNotUnique:           {},
	ErrorCodeDeleteProtected:     {},
	ErrorCodeTooManyRequests:     {},
	ErrorCodeInvalidKeyType:      {},
	ErrorCodeUnknown:             {},
}

// IsValid reports whether the code is one the client recognizes.
func (c ErrorCode) IsValid() bool {
	_, ok := knownErrorCodes[c]
	return ok
}

// String returns the wire form of the code.
func (c ErrorCode) String() string {
	return string(c)
}

// UnmarshalJSON decodes a wire code, mapping anything unrecognized to
// ErrorCodeUnknown for forward compatibility.
func (c *ErrorCode) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}

	code := ErrorCode(s)
	if !code.IsValid() {
		code = ErrorCodeUnknown
	}

	*c = code
	return nil
}

// Error is the uniform failure shape returned by every client operation.
// Transport failures, body read failures, JSON decode failures, and errors
// reported by the API all collapse into this one type.
type Error struct {
	// Code is the error category.
	Code ErrorCode `json:"code"`

	// Message is the human readable error message.
	Message string `json:"message"`
}

// NewError creates a new API error.
func NewError(code ErrorCode, message string) *Error {
	return &Error{Code: code, Message: message}
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}
