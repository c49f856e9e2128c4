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

// ToOption converts a nullable pointer into an Option: a nil pointer maps
// to None, and any non-nil pointer maps to Some of the pointee.
//
// The nil pointer is the only absence sentinel recognized. Pointees that
// are zero values (0, "", false, NaN) are present values and map to Some;
// the nil check must not be broadened to them.
func ToOption[T any](val *T) Option[T] {
	if val == nil {
		return None[T]()
	}
	return Some(*val)
}

// Empty is a payload type carrying no information.
type Empty struct{}

// Unit is the Option used where a Result's or AsyncResult's success carries
// no meaningful value: "success, no value" is Ok(NewUnit()), rather than a
// dedicated void variant.
type Unit = Option[Empty]

// NewUnit returns the Unit value, the absent Option.
func NewUnit() Unit {
	return None[Empty]()
}
