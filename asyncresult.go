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

// AsyncResult represents the outcome of an asynchronous fallible
// computation: Ok or Err, exactly as in Result, plus Loading, a payload-free
// state for a computation that has not produced an outcome yet.
//
// AsyncResult is a static tag, not a future. It never resolves on its own;
// the caller awaits the underlying work and then constructs AsyncOk or
// AsyncErr, holding AsyncResultLoading until that point.
//
// It's a private interface, which can only be implemented by the values
// returned from the AsyncOk, AsyncErr, and AsyncResultLoading constructors.
type AsyncResult[T, E any] interface {
	fmt.Stringer

	// State returns the state of this AsyncResult, StateOk, StateErr, or
	// StateLoading.
	State() State

	// IsOk returns true, only if this AsyncResult carries a success value.
	IsOk() bool

	// IsErr returns true, only if this AsyncResult carries an error value.
	IsErr() bool

	// IsLoading returns true, only if this AsyncResult is still pending.
	IsLoading() bool

	// Unwrap returns the success value on Ok.
	// On Err or Loading it panics with an *UnwrapError, whose message is
	// the first element of msg if any is provided, otherwise a fixed
	// default naming the state.
	Unwrap(msg ...string) T

	// UnwrapOr returns the success value on Ok, ignoring def, and def
	// on Err or Loading. It never panics.
	UnwrapOr(def T) T

	// IfOk calls fn with the success value, only on Ok.
	IfOk(fn func(val T))

	// IfErr calls fn with the error value, only on Err.
	IfErr(fn func(err E))

	// IfLoading calls fn, only on Loading.
	IfLoading(fn func())

	privateImplementation()
}

// AsyncOk returns an AsyncResult carrying the success value val.
// The error type parameter E can't be inferred from the arguments, so it
// comes first: AsyncOk[error](42) is an AsyncResult[int, error].
func AsyncOk[E, T any](val T) AsyncResult[T, E] {
	return okAsyncResult[T, E]{val: val}
}

// AsyncErr returns an AsyncResult carrying the error value err.
// The success type parameter T can't be inferred from the arguments, so it
// comes first: AsyncErr[int](err) is an AsyncResult[int, error].
func AsyncErr[T, E any](err E) AsyncResult[T, E] {
	return errAsyncResult[T, E]{err: err}
}

// AsyncResultLoading returns an AsyncResult in the pending state.
func AsyncResultLoading[T, E any]() AsyncResult[T, E] {
	return loadingAsyncResult[T, E]{}
}

type okAsyncResult[T, E any] struct{ val T }
type errAsyncResult[T, E any] struct{ err E }
type loadingAsyncResult[T, E any] struct{}

func (r okAsyncResult[T, E]) State() State      { return StateOk }
func (r errAsyncResult[T, E]) State() State     { return StateErr }
func (r loadingAsyncResult[T, E]) State() State { return StateLoading }

func (r okAsyncResult[T, E]) IsOk() bool      { return true }
func (r errAsyncResult[T, E]) IsOk() bool     { return false }
func (r loadingAsyncResult[T, E]) IsOk() bool { return false }

func (r okAsyncResult[T, E]) IsErr() bool      { return false }
func (r errAsyncResult[T, E]) IsErr() bool     { return true }
func (r loadingAsyncResult[T, E]) IsErr() bool { return false }

func (r okAsyncResult[T, E]) IsLoading() bool      { return false }
func (r errAsyncResult[T, E]) IsLoading() bool     { return false }
func (r loadingAsyncResult[T, E]) IsLoading() bool { return true }

func (r okAsyncResult[T, E]) Unwrap(msg ...string) T { return r.val }
func (r errAsyncResult[T, E]) Unwrap(msg ...string) T {
	panic(newUnwrapError(StateErr, unwrapErrMsg, msg))
}
func (r loadingAsyncResult[T, E]) Unwrap(msg ...string) T {
	panic(newUnwrapError(StateLoading, unwrapLoadingMsg, msg))
}

func (r okAsyncResult[T, E]) UnwrapOr(def T) T      { return r.val }
func (r errAsyncResult[T, E]) UnwrapOr(def T) T     { return def }
func (r loadingAsyncResult[T, E]) UnwrapOr(def T) T { return def }

func (r okAsyncResult[T, E]) IfOk(fn func(val T)) { fn(r.val) }
func (r errAsyncResult[T, E]) IfOk(fn func(val T)) {}
func (r loadingAsyncResult[T, E]) IfOk(fn func(val T)) {}

func (r okAsyncResult[T, E]) IfErr(fn func(err E)) {}
func (r errAsyncResult[T, E]) IfErr(fn func(err E)) { fn(r.err) }
func (r loadingAsyncResult[T, E]) IfErr(fn func(err E)) {}

func (r okAsyncResult[T, E]) IfLoading(fn func()) {}
func (r errAsyncResult[T, E]) IfLoading(fn func()) {}
func (r loadingAsyncResult[T, E]) IfLoading(fn func()) { fn() }

func (r okAsyncResult[T, E]) String() string      { return fmt.Sprintf("ok: %v", r.val) }
func (r errAsyncResult[T, E]) String() string     { return fmt.Sprintf("err: %v", r.err) }
func (r loadingAsyncResult[T, E]) String() string { return "loading" }

func (r okAsyncResult[T, E]) privateImplementation()      {}
func (r errAsyncResult[T, E]) privateImplementation()     {}
func (r loadingAsyncResult[T, E]) privateImplementation() {}
