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

package correlation

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithRequestID(t *testing.T) {
	ctx := WithRequestID(context.Background(), "req-123")
	assert.Equal(t, "req-123", GetRequestID(ctx))
}

func TestWithRequestIDNilContext(t *testing.T) {
	ctx := WithRequestID(nil, "req-123")
	require.NotNil(t, ctx)
	assert.Equal(t, "req-123", GetRequestID(ctx))
}

func TestGetRequestID(t *testing.T) {
	tests := []struct {
		name string
		ctx  context.Context
		want string
	}{
		{"nil context", nil, ""},
		{"empty context", context.Background(), ""},
		{"with id", WithRequestID(context.Background(), "req-456"), "req-456"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, GetRequestID(tt.ctx))
		})
	}
}

func TestNewID(t *testing.T) {
	id := NewID()
	_, err := uuid.Parse(id)
	require.NoError(t, err)

	assert.NotEqual(t, id, NewID())
}

func TestGetOrGenerate(t *testing.T) {
	ctx := WithRequestID(context.Background(), "req-789")
	assert.Equal(t, "req-789", GetOrGenerate(ctx))

	generated := GetOrGenerate(context.Background())
	require.NotEmpty(t, generated)
	_, err := uuid.Parse(generated)
	assert.NoError(t, err)
}
