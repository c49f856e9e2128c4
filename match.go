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

// MatchOption dispatches option to exactly one of the two handlers and
// returns that handler's result: onSome with the carried value on Some,
// onNone on None.
//
// Both handlers are positional parameters, so omitting one is a compile
// error; the dispatch is exhaustive by construction.
func MatchOption[T, R any](option Option[T], onSome func(val T) R, onNone func() R) R {
	switch o := option.(type) {
	case someOption[T]:
		return onSome(o.val)
	case noneOption[T]:
		return onNone()
	}
	// only forged Option values may result in reaching this
	return AssertUnreachable[R](option)
}

// MatchResult dispatches result to exactly one of the two handlers and
// returns that handler's result: onOk with the success value on Ok, onErr
// with the error value on Err.
func MatchResult[T, E, R any](result Result[T, E], onOk func(val T) R, onErr func(err E) R) R {
	switch r := result.(type) {
	case okResult[T, E]:
		return onOk(r.val)
	case errResult[T, E]:
		return onErr(r.err)
	}
	// only forged Result values may result in reaching this
	return AssertUnreachable[R](result)
}

// MatchAsyncResult dispatches result to exactly one of the three handlers
// and returns that handler's result: onLoading on Loading, onErr with the
// error value on Err, onOk with the success value on Ok.
//
// The loading state is checked first, then err, then ok.
func MatchAsyncResult[T, E, R any](
	result AsyncResult[T, E],
	onOk func(val T) R,
	onErr func(err E) R,
	onLoading func() R,
) R {
	switch r := result.(type) {
	case loadingAsyncResult[T, E]:
		return onLoading()
	case errAsyncResult[T, E]:
		return onErr(r.err)
	case okAsyncResult[T, E]:
		return onOk(r.val)
	}
	// only forged AsyncResult values may result in reaching this
	return AssertUnreachable[R](result)
}
