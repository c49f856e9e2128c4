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

// State identifies which variant a union value represents.
// It is fixed at construction time and never changes for a given value.
type State int

const (
	// the order here matters
	unknownState State = iota
	StateSome
	StateNone
	StateOk
	StateErr
	StateLoading
)

func (s State) String() string {
	switch s {
	case StateSome:
		return "some"
	case StateNone:
		return "none"
	case StateOk:
		return "ok"
	case StateErr:
		return "err"
	case StateLoading:
		return "loading"
	default:
		// only user-created State values may result in reaching this
		return "<unknown>"
	}
}
