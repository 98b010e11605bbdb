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

// Package routes defines the static route table for the Keygate API and the
// compiler that expands a route template into a concrete request descriptor.
// Routes are defined once at startup and never mutated; every operation
// compiles a fresh CompiledRoute, fills in path and query parameters, and
// hands it to the http service.
package routes

import (
	"fmt"
	"net/http"
	"strings"
)

// placeholder is the positional path parameter token used in route templates.
const placeholder = "{}"

// Key routes.
var (
	CreateKey        = New(http.MethodPost, "/keys")
	VerifyKey        = New(http.MethodPost, "/keys/verify")
	RevokeKey        = New(http.MethodDelete, "/keys/{}")
	UpdateKey        = New(http.MethodPut, "/keys/{}")
	GetKey           = New(http.MethodGet, "/keys")
	UpdateRemaining  = New(http.MethodPost, "/keys/updateRemaining")
	GetVerifications = New(http.MethodGet, "/keys/verifications")
)

// Api routes.
var (
	GetAPI    = New(http.MethodGet, "/apis/{}")
	DeleteAPI = New(http.MethodDelete, "/apis/{}")
	ListKeys  = New(http.MethodGet, "/apis/{}/keys")
)

// Route is a static route descriptor: an HTTP method and a path template.
// Templates may contain "{}" placeholders that are filled in positionally
// when the route is compiled.
type Route struct {
	Method string
	URI    string
}

// New creates a new route descriptor.
func New(method, uri string) Route {
	return Route{Method: method, URI: uri}
}

// Compile expands the route into a fresh CompiledRoute with the unmodified
// path template and no query parameters. Each call returns an independent
// instance.
func (r Route) Compile() *CompiledRoute {
	return &CompiledRoute{Method: r.Method, URI: r.URI}
}

// queryParam is a single ordered query key/value pair.
type queryParam struct {
	name  string
	value string
}

// CompiledRoute is the per-call mutable expansion of a Route. It accumulates
// path substitutions and query parameters and is consumed by a single
// request, then discarded.
type CompiledRoute struct {
	Method string
	URI    string
	params []queryParam
}

// InsertPath replaces the first remaining "{}" placeholder in the path with
// the string form of v. Substitution is strictly left to right, one
// placeholder per call. Calls made after all placeholders are consumed are
// silent no-ops. Returns the same instance for chaining.
func (c *CompiledRoute) InsertPath(v any) *CompiledRoute {
	c.URI = strings.Replace(c.URI, placeholder, fmt.Sprint(v), 1)
	return c
}

// InsertQuery appends a query parameter. Pairs are not deduplicated; repeated
// names are preserved in insertion order and produce repeated keys on the
// wire. Returns the same instance for chaining.
func (c *CompiledRoute) InsertQuery(name string, v any) *CompiledRoute {
	c.params = append(c.params, queryParam{name: name, value: fmt.Sprint(v)})
	return c
}

// BuildQuery renders the accumulated query parameters as a wire query string,
// e.g. "?a=b&c=d", preserving insertion order. An empty parameter list yields
// an empty string with no bare "?".
func (c *CompiledRoute) BuildQuery() string {
	var query strings.Builder

	for _, p := range c.params {
		if query.Len() == 0 {
			query.WriteByte('?')
		} else {
			query.WriteByte('&')
		}
		query.WriteString(p.name)
		query.WriteByte('=')
		query.WriteString(p.value)
	}

	return query.String()
}

// Endpoint returns the resolved path plus the rendered query string.
func (c *CompiledRoute) Endpoint() string {
	return c.URI + c.BuildQuery()
}
