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

package routes

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCompile(t *testing.T) {
	r := New(http.MethodGet, "/apis/{}/keys")
	c := r.Compile()

	assert.Equal(t, http.MethodGet, c.Method)
	assert.Equal(t, "/apis/{}/keys", c.URI)
	assert.Empty(t, c.params)
}

func TestCompileIndependentInstances(t *testing.T) {
	a := ListKeys.Compile()
	b := ListKeys.Compile()

	a.InsertPath("api_123")
	a.InsertQuery("limit", 10)

	assert.Equal(t, "/apis/api_123/keys", a.URI)
	assert.Equal(t, "/apis/{}/keys", b.URI)
	assert.Equal(t, "?limit=10", a.BuildQuery())
	assert.Equal(t, "", b.BuildQuery())
}

func TestInsertPath(t *testing.T) {
	tests := []struct {
		name    string
		uri     string
		inserts []any
		want    string
	}{
		{
			name:    "single placeholder",
			uri:     "/keys/{}",
			inserts: []any{"key_123"},
			want:    "/keys/key_123",
		},
		{
			name:    "left to right",
			uri:     "/apis/{}/keys/{}",
			inserts: []any{"5", "1"},
			want:    "/apis/5/keys/1",
		},
		{
			name:    "fewer inserts than placeholders",
			uri:     "/apis/{}/keys/{}",
			inserts: []any{"5"},
			want:    "/apis/5/keys/{}",
		},
		{
			name:    "excess inserts are no-ops",
			uri:     "/keys/{}",
			inserts: []any{"a", "b", "c"},
			want:    "/keys/a",
		},
		{
			name:    "no placeholder",
			uri:     "/keys",
			inserts: []any{"a"},
			want:    "/keys",
		},
		{
			name:    "non string value",
			uri:     "/keys/{}",
			inserts: []any{42},
			want:    "/keys/42",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := New(http.MethodGet, tt.uri).Compile()
			for _, v := range tt.inserts {
				c.InsertPath(v)
			}
			assert.Equal(t, tt.want, c.URI)
		})
	}
}

func TestBuildQuery(t *testing.T) {
	tests := []struct {
		name   string
		params [][2]any
		want   string
	}{
		{
			name:   "empty",
			params: nil,
			want:   "",
		},
		{
			name:   "single param",
			params: [][2]any{{"limit", 100}},
			want:   "?limit=100",
		},
		{
			name:   "insertion order preserved",
			params: [][2]any{{"test", "value"}, {"js", "bad"}},
			want:   "?test=value&js=bad",
		},
		{
			name:   "duplicate keys preserved",
			params: [][2]any{{"id", "a"}, {"id", "b"}},
			want:   "?id=a&id=b",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := GetKey.Compile()
			for _, p := range tt.params {
				c.InsertQuery(p[0].(string), p[1])
			}
			assert.Equal(t, tt.want, c.BuildQuery())
		})
	}
}

func TestEndpoint(t *testing.T) {
	c := ListKeys.Compile().InsertPath("api_XYZ")
	c.InsertQuery("limit", 25).InsertQuery("ownerId", "jsmith")

	assert.Equal(t, "/apis/api_XYZ/keys?limit=25&ownerId=jsmith", c.Endpoint())
}

func TestChaining(t *testing.T) {
	c := New(http.MethodGet, "/apis/{}/keys/{}").
		Compile().
		InsertPath("5").
		InsertPath("1").
		InsertQuery("a", "b")

	assert.Equal(t, "/apis/5/keys/1?a=b", c.Endpoint())
}
