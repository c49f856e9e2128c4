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
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/variantkit/variant"
)

func TestOption_StatePredicates(t *testing.T) {
	tests := []struct {
		name      string
		option    variant.Option[int]
		wantSome  bool
		wantState variant.State
	}{
		{
			name:      "some",
			option:    variant.Some(42),
			wantSome:  true,
			wantState: variant.StateSome,
		}, {
			name:      "some of zero value",
			option:    variant.Some(0),
			wantSome:  true,
			wantState: variant.StateSome,
		}, {
			name:      "none",
			option:    variant.None[int](),
			wantSome:  false,
			wantState: variant.StateNone,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.wantSome, tt.option.IsSome())
			require.Equal(t, !tt.wantSome, tt.option.IsNone())
			require.Equal(t, tt.wantState, tt.option.State())
		})
	}
}

func TestOption_Unwrap_ReturnsCarriedValue(t *testing.T) {
	require.Equal(t, 42, variant.Some(42).Unwrap())
	require.Equal(t, 0, variant.Some(0).Unwrap())
	require.Equal(t, "", variant.Some("").Unwrap())
	require.Equal(t, false, variant.Some(false).Unwrap())
	require.True(t, math.IsNaN(variant.Some(math.NaN()).Unwrap()))
}

func TestOption_Unwrap_PanicsOnNone(t *testing.T) {
	require.PanicsWithError(t, "called Unwrap on a none value", func() {
		variant.None[int]().Unwrap()
	})
}

func TestOption_Unwrap_PanicsWithCustomMessage(t *testing.T) {
	require.PanicsWithError(t, "custom", func() {
		variant.None[int]().Unwrap("custom")
	})
}

func TestOption_Unwrap_PanicValueReportsState(t *testing.T) {
	defer func() {
		v := recover()
		require.NotNil(t, v)
		ue, ok := v.(*variant.UnwrapError)
		require.True(t, ok)
		require.Equal(t, variant.StateNone, ue.State())
		require.Equal(t, "called Unwrap on a none value", ue.Error())
	}()
	variant.None[string]().Unwrap()
}

func TestOption_UnwrapOr(t *testing.T) {
	require.Equal(t, 42, variant.Some(42).UnwrapOr(7))
	require.Equal(t, 0, variant.Some(0).UnwrapOr(7))
	require.Equal(t, 7, variant.None[int]().UnwrapOr(7))
}

func TestOption_IfSome(t *testing.T) {
	var got []int
	variant.Some(42).IfSome(func(val int) { got = append(got, val) })
	require.Equal(t, []int{42}, got)

	variant.None[int]().IfSome(func(val int) { got = append(got, val) })
	require.Equal(t, []int{42}, got)
}

func TestOption_IfNone(t *testing.T) {
	calls := 0
	variant.None[int]().IfNone(func() { calls++ })
	require.Equal(t, 1, calls)

	variant.Some(42).IfNone(func() { calls++ })
	require.Equal(t, 1, calls)
}

func TestOption_IfSome_CallbackPanicPropagates(t *testing.T) {
	require.PanicsWithValue(t, "boom", func() {
		variant.Some(42).IfSome(func(val int) { panic("boom") })
	})
}

func TestOption_String(t *testing.T) {
	require.Equal(t, "some: 42", variant.Some(42).String())
	require.Equal(t, "none", variant.None[int]().String())
}
