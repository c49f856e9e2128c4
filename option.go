// Copyright 2024 The variant authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//    http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package variant

import "fmt"

// Option represents an optional value: either Some, a present value of type
// T, or None, no value at all.
//
// It's a private interface, which can only be implemented by the values
// returned from the Some and None constructors.
type Option[T any] interface {
	fmt.Stringer

	// State returns the state of this Option, StateSome or StateNone.
	State() State

	// IsSome returns true, only if this Option carries a value.
	IsSome() bool

	// IsNone returns true, only if this Option carries no value.
	IsNone() bool

	// Unwrap returns the carried value on Some.
	// On None it panics with an *UnwrapError, whose message is the first
	// element of msg if any is provided, otherwise a fixed default.
	Unwrap(msg ...string) T

	// UnwrapOr returns the carried value on Some, ignoring def, and def
	// on None. It never panics.
	UnwrapOr(def T) T

	// IfSome calls fn with the carried value, only on Some.
	IfSome(fn func(val T))

	// IfNone calls fn, only on None.
	IfNone(fn func())

	privateImplementation()
}

// Some returns an Option carrying val.
// Any value is a valid payload, zero values included; Some(0), Some("") and
// Some(math.NaN()) are all present values.
func Some[T any](val T) Option[T] {
	return someOption[T]{val: val}
}

// None returns an Option carrying no value.
func None[T any]() Option[T] {
	return noneOption[T]{}
}

type someOption[T any] struct{ val T }
type noneOption[T any] struct{}

func (o someOption[T]) State() State { return StateSome }
func (o noneOption[T]) State() State { return StateNone }

func (o someOption[T]) IsSome() bool { return true }
func (o noneOption[T]) IsSome() bool { return false }

func (o someOption[T]) IsNone() bool { return false }
func (o noneOption[T]) IsNone() bool { return true }

func (o someOption[T]) Unwrap(msg ...string) T { return o.val }
func (o noneOption[T]) Unwrap(msg ...string) T {
	panic(newUnwrapError(StateNone, unwrapNoneMsg, msg))
}

func (o someOption[T]) UnwrapOr(def T) T { return o.val }
func (o noneOption[T]) UnwrapOr(def T) T { return def }

func (o someOption[T]) IfSome(fn func(val T)) { fn(o.val) }
func (o noneOption[T]) IfSome(fn func(val T)) {}

func (o someOption[T]) IfNone(fn func()) {}
func (o noneOption[T]) IfNone(fn func()) { fn() }

func (o someOption[T]) String() string { return fmt.Sprintf("some: %v", o.val) }
func (o noneOption[T]) String() string { return "none" }

func (o someOption[T]) privateImplementation() {}
func (o noneOption[T]) privateImplementation() {}
