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
	"errors"
)

// ErrSerializeUndefined is returned when an undefined field reaches the JSON
// encoder. Fields holding an UndefinedOr must carry the "omitzero" tag so the
// encoder skips them before marshaling is ever attempted; hitting this error
// means a field was added without that tag.
var ErrSerializeUndefined = errors.New("undefined value must never be serialized")

type undefinedState uint8

const (
	stateUndefined undefinedState = iota
	stateNull
	stateValue
)

// UndefinedOr represents the potential absence of a value beyond nil. A field
// is either present with a value, present and explicitly null (cleared), or
// undefined and omitted from the wire entirely. Partial update requests use
// it to distinguish "clear this field" from "leave this field alone".
//
// The zero value is Undefined.
type UndefinedOr[T any] struct {
	value T
	state undefinedState
}

// Defined creates an UndefinedOr holding the given value.
func Defined[T any](v T) UndefinedOr[T] {
	return UndefinedOr[T]{value: v, state: stateValue}
}

// Null creates an UndefinedOr holding an explicit null.
func Null[T any]() UndefinedOr[T] {
	return UndefinedOr[T]{state: stateNull}
}

// Undefined creates an UndefinedOr in the undefined state.
func Undefined[T any]() UndefinedOr[T] {
	return UndefinedOr[T]{}
}

// FromPtr converts an ordinary optional value: a non-nil pointer becomes a
// defined value and nil becomes an explicit null. There is intentionally no
// path from an optional into the undefined state; undefined is only ever the
// type's own default before a setter runs.
func FromPtr[T any](p *T) UndefinedOr[T] {
	if p == nil {
		return Null[T]()
	}
	return Defined(*p)
}

// IsDefined reports whether a value is present.
func (u UndefinedOr[T]) IsDefined() bool {
	return u.state == stateValue
}

// IsNull reports whether the value is an explicit null.
func (u UndefinedOr[T]) IsNull() bool {
	return u.state == stateNull
}

// IsUndefined reports whether the value is undefined.
func (u UndefinedOr[T]) IsUndefined() bool {
	return u.state == stateUndefined
}

// Inner returns the inner value and true when a value is present.
func (u UndefinedOr[T]) Inner() (T, bool) {
	if u.state == stateValue {
		return u.value, true
	}
	var zero T
	return zero, false
}

// IsZero reports whether the field should be omitted from JSON output. Only
// the undefined state is omitted; an explicit null is emitted as literal
// null. Consulted by the encoder through the "omitzero" field tag.
func (u UndefinedOr[T]) IsZero() bool {
	return u.state == stateUndefined
}

// MarshalJSON encodes null and value states. An undefined field must have
// been skipped by the container's omitzero tag before reaching this point;
// if it was not, the encode fails loudly instead of silently emitting null.
func (u UndefinedOr[T]) MarshalJSON() ([]byte, error) {
	switch u.state {
	case stateNull:
		return []byte("null"), nil
	case stateValue:
		return json.Marshal(u.value)
	default:
		return nil, ErrSerializeUndefined
	}
}

// Ptr returns a pointer to v. Convenience for populating optional request
// fields from literals.
func Ptr[T any](v T) *T {
	return &v
}
