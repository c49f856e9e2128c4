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

// default Unwrap failure messages, one per value-less state
const (
	unwrapNoneMsg    = "called Unwrap on a none value"
	unwrapErrMsg     = "called Unwrap on an err value"
	unwrapLoadingMsg = "called Unwrap on a loading value"
)

// UnwrapError is the panic value raised by the Unwrap methods when they are
// called on a variant that carries no usable value (none, err, or loading).
// It is never raised by any other function in this package.
type UnwrapError struct {
	state State
	msg   string
}

func (e *UnwrapError) Error() string {
	return e.msg
}

// State returns the state that was illegally unwrapped.
func (e *UnwrapError) State() State {
	return e.state
}

func newUnwrapError(state State, defaultMsg string, msg []string) *UnwrapError {
	if len(msg) != 0 {
		return &UnwrapError{state: state, msg: msg[0]}
	}
	return &UnwrapError{state: state, msg: defaultMsg}
}

// InvariantViolation is the panic value raised by AssertUnreachable when a
// union value matches no known variant of its family.
// The constructors only produce well-formed variants, so raising it means
// the value was forged or corrupted; it must propagate, never be swallowed.
type InvariantViolation struct {
	v any
}

func (e *InvariantViolation) Error() string {
	return fmt.Sprintf("invariant violation: value matches no known variant: %#v", e.v)
}

// V returns the value that matched no known variant.
func (e *InvariantViolation) V() any {
	return e.v
}

func newInvariantViolation(v any) *InvariantViolation {
	return &InvariantViolation{v: v}
}
