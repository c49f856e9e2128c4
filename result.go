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

// Result represents the outcome of a fallible computation: either Ok, a
// success value of type T, or Err, an error value of type E.
//
// It's a private interface, which can only be implemented by the values
// returned from the Ok and Err constructors.
type Result[T, E any] interface {
	fmt.Stringer

	// State returns the state of this Result, StateOk or StateErr.
	State() State

	// IsOk returns true, only if this Result carries a success value.
	IsOk() bool

	// IsErr returns true, only if this Result carries an error value.
	IsErr() bool

	// Unwrap returns the success value on Ok.
	// On Err it panics with an *UnwrapError, whose message is the first
	// element of msg if any is provided, otherwise a fixed default.
	Unwrap(msg ...string) T

	// UnwrapOr returns the success value on Ok, ignoring def, and def
	// on Err. It never panics.
	UnwrapOr(def T) T

	// IfOk calls fn with the success value, only on Ok.
	IfOk(fn func(val T))

	// IfErr calls fn with the error value, only on Err.
	IfErr(fn func(err E))

	privateImplementation()
}

// Ok returns a Result carrying the success value val.
// The error type parameter E can't be inferred from the arguments, so it
// comes first: Ok[error](42) is a Result[int, error].
func Ok[E, T any](val T) Result[T, E] {
	return okResult[T, E]{val: val}
}

// Err returns a Result carrying the error value err.
// The success type parameter T can't be inferred from the arguments, so it
// comes first: Err[int](err) is a Result[int, error].
func Err[T, E any](err E) Result[T, E] {
	return errResult[T, E]{err: err}
}

type okResult[T, E any] struct{ val T }
type errResult[T, E any] struct{ err E }

func (r okResult[T, E]) State() State  { return StateOk }
func (r errResult[T, E]) State() State { return StateErr }

func (r okResult[T, E]) IsOk() bool  { return true }
func (r errResult[T, E]) IsOk() bool { return false }

func (r okResult[T, E]) IsErr() bool  { return false }
func (r errResult[T, E]) IsErr() bool { return true }

func (r okResult[T, E]) Unwrap(msg ...string) T { return r.val }
func (r errResult[T, E]) Unwrap(msg ...string) T {
	panic(newUnwrapError(StateErr, unwrapErrMsg, msg))
}

func (r okResult[T, E]) UnwrapOr(def T) T  { return r.val }
func (r errResult[T, E]) UnwrapOr(def T) T { return def }

func (r okResult[T, E]) IfOk(fn func(val T)) { fn(r.val) }
func (r errResult[T, E]) IfOk(fn func(val T)) {}

func (r okResult[T, E]) IfErr(fn func(err E)) {}
func (r errResult[T, E]) IfErr(fn func(err E)) { fn(r.err) }

func (r okResult[T, E]) String() string  { return fmt.Sprintf("ok: %v", r.val) }
func (r errResult[T, E]) String() string { return fmt.Sprintf("err: %v", r.err) }

func (r okResult[T, E]) privateImplementation()  {}
func (r errResult[T, E]) privateImplementation() {}
