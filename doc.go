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

// Package variant provides small, immutable tagged-union value types.
//
// It models "may be absent", "may have failed", and "may still be loading"
// as explicit states instead of nil sentinels, boolean flags, or panics
// hidden behind helper functions.
//
// Three union families are provided, and each value is in exactly one of
// its family's states, at any time:
// Option: Some, a present value, or None, no value.
// Result: Ok, a success value, or Err, an error value.
// AsyncResult: Ok or Err, as in Result, plus Loading, a payload-free state
// for a computation that has not produced an outcome yet.
//
// Every value is created by one of the constructor functions, Some, None,
// Ok, Err, AsyncOk, AsyncErr, or AsyncResultLoading, and is fully formed and
// immutable from that point on. A value never transitions between states;
// callers discard the old value and construct a new one.
//
// Besides the accessor methods on each value, every family has a match
// function, MatchOption, MatchResult, and MatchAsyncResult, which takes one
// handler per state and dispatches to exactly one of them. Omitting a
// handler is a compile error, which is what makes the dispatch exhaustive.
//
// General Notes:-
//
// * AsyncResult is a static tag, not a future. It never awaits anything;
// the caller resolves the underlying asynchronous work and then constructs
// the matching terminal value, holding AsyncResultLoading until then.
//
// * Unwrap is the only accessor that can fail, and it fails by panicking
// with an *UnwrapError. UnwrapOr never fails, and its default argument is
// evaluated eagerly, like any Go argument.
//
// * The If* methods invoke their callback only on the matching state, and
// never recover; a panic from the callback propagates to the caller.
//
// * All values are safe for concurrent reads; there is nothing to mutate.
package variant
