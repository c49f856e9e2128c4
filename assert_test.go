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

package variant_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/variantkit/variant"
)

func TestAssertUnreachable_AlwaysPanics(t *testing.T) {
	tests := []struct {
		name string
		v    any
	}{
		{name: "nil", v: nil},
		{name: "int", v: 42},
		{name: "string", v: "boom"},
		{name: "struct", v: struct{ A int }{A: 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Panics(t, func() {
				variant.AssertUnreachable[int](tt.v)
			})
		})
	}
}

func TestAssertUnreachable_PanicValueDumpsOffender(t *testing.T) {
	defer func() {
		v := recover()
		require.NotNil(t, v)
		iv, ok := v.(*variant.InvariantViolation)
		require.True(t, ok)
		require.Equal(t, 42, iv.V())
		require.Contains(t, iv.Error(), "invariant violation")
		require.Contains(t, iv.Error(), "42")
	}()
	variant.AssertUnreachable[string](42)
}
