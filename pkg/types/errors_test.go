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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorCodeIsValid(t *testing.T) {
	tests := []struct {
		name  string
		code  ErrorCode
		valid bool
	}{
		{"NotFound", ErrorCodeNotFound, true},
		{"Forbidden", ErrorCodeForbidden, true},
		{"BadRequest", ErrorCodeBadRequest, true},
		{"Ratelimited", ErrorCodeRatelimited, true},
		{"Unauthorized", ErrorCodeUnauthorized, true},
		{"UsageExceeded", ErrorCodeUsageExceeded, true},
		{"InternalServerError", ErrorCodeInternalServerError, true},
		{"Conflict", ErrorCodeConflict, true},
		{"Expired", ErrorCodeExpired, true},
		{"Disabled", ErrorCodeDisabled, true},
		{"NotUnique", ErrorCodeNotUnique, true},
		{"DeleteProtected", ErrorCodeDeleteProtected, true},
		{"TooManyRequests", ErrorCodeTooManyRequests, true},
		{"InvalidKeyType", ErrorCodeInvalidKeyType, true},
		{"Unknown", ErrorCodeUnknown, true},
		{"Undocumented", ErrorCode("SOMETHING_NEW"), false},
		{"Empty", ErrorCode(""), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.valid, tt.code.IsValid())
		})
	}
}

func TestErrorCodeUnmarshal(t *testing.T) {
	tests := []struct {
		name string
		wire string
		want ErrorCode
	}{
		{"known code", `"NOT_FOUND"`, ErrorCodeNotFound},
		{"extended code", `"DELETE_PROTECTED"`, ErrorCodeDeleteProtected},
		{"undocumented code maps to unknown", `"KEY_MELTED"`, ErrorCodeUnknown},
		{"empty maps to unknown", `""`, ErrorCodeUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var code ErrorCode
			require.NoError(t, json.Unmarshal([]byte(tt.wire), &code))
			assert.Equal(t, tt.want, code)
		})
	}
}

func TestErrorCodeUnmarshalNonString(t *testing.T) {
	var code ErrorCode
	assert.Error(t, json.Unmarshal([]byte(`42`), &code))
}

func TestError(t *testing.T) {
	e := NewError(ErrorCodeNotFound, "key not found")

	assert.Equal(t, ErrorCodeNotFound, e.Code)
	assert.Equal(t, "key not found", e.Message)
	assert.Equal(t, "NOT_FOUND: key not found", e.Error())
}

func TestErrorUnmarshal(t *testing.T) {
	var e Error
	require.NoError(t, json.Unmarshal([]byte(`{"code":"FORBIDDEN","message":"nope"}`), &e))

	assert.Equal(t, ErrorCodeForbidden, e.Code)
	assert.Equal(t, "nope", e.Message)
}
