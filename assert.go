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

// AssertUnreachable always panics with an *InvariantViolation embedding a
// dump of v. It never returns; the return type exists so calls can sit in
// return position, keeping the enclosing match exhaustive in shape.
//
// It is called from the fallthrough branch of every match function, where
// every well-formed variant has already been handled, so reaching it means
// v was forged or corrupted.
func AssertUnreachable[R any](v any) R {
	panic(newInvariantViolation(v))
}
