/*
 * Calc48 - An exact-arithmetic calculator value engine
 *
 * Copyright Calc48 Contributors
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *   http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package values

import (
	"math"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/calc48/calc48/settings"
)

func TestDoubleValueFollowsIEEESemantics(t *testing.T) {

	st := settings.Default()

	// division by zero produces an infinity, not an error
	result, err := NewDoubleValue(1).Div(st, NewDoubleValue(0))
	require.NoError(t, err)
	assert.True(t, math.IsInf(result.ToFloat64(), 1))

	result, err = NewDoubleValue(-1).Div(st, NewDoubleValue(0))
	require.NoError(t, err)
	assert.True(t, math.IsInf(result.ToFloat64(), -1))

	result, err = NewDoubleValue(0).Div(st, NewDoubleValue(0))
	require.NoError(t, err)
	assert.True(t, math.IsNaN(result.ToFloat64()))
}

func TestDoubleValueEqualTreatsNaNAsIdentical(t *testing.T) {

	nan := NewDoubleValue(math.NaN())

	assert.True(t, nan.Equal(NewDoubleValue(math.NaN())))
	assert.False(t, nan.Equal(NewDoubleValue(0)))
	assert.False(t, NewDoubleValue(0).Equal(nan))
	assert.True(t, NewDoubleValue(1.5).Equal(NewDoubleValue(1.5)))
}

func TestDoubleValueToBigIntTruncates(t *testing.T) {

	assert.Equal(t, big.NewInt(2), NewDoubleValue(2.9).ToBigInt())
	assert.Equal(t, big.NewInt(-2), NewDoubleValue(-2.9).ToBigInt())

	// non-finite values have no integer part
	assert.Equal(t, new(big.Int), NewDoubleValue(math.Inf(1)).ToBigInt())
	assert.Equal(t, new(big.Int), NewDoubleValue(math.NaN()).ToBigInt())
}

func TestDoubleValueDisplay(t *testing.T) {

	v := NewDoubleValue(1234.5)

	st := settings.Default()
	assert.Equal(t, "1,234.5", v.Display(st))
	assert.Equal(t, "1234.5", v.Entry())

	var formats []string
	for format := range v.DisplayFormats(st) {
		formats = append(formats, format)
	}
	assert.Equal(t, []string{"1234.5", "1,234.5", "1.2345e+03"}, formats)

	// non-finite values only have the canonical form
	formats = nil
	for format := range NewDoubleValue(math.Inf(1)).DisplayFormats(st) {
		formats = append(formats, format)
	}
	assert.Equal(t, []string{"+Inf"}, formats)
}

func TestDoubleValueMod(t *testing.T) {

	st := settings.Default()

	result, err := NewDoubleValue(7.5).Mod(st, NewDoubleValue(2))
	require.NoError(t, err)
	assert.Equal(t, NewDoubleValue(1.5), result)

	// IEEE: x mod 0 is NaN, not an error
	result, err = NewDoubleValue(1).Mod(st, NewDoubleValue(0))
	require.NoError(t, err)
	assert.True(t, math.IsNaN(result.ToFloat64()))
}

func TestParseDouble(t *testing.T) {

	st := settings.Default()

	v, ok := ParseDouble("1.5", st)
	require.True(t, ok)
	assert.Equal(t, NewDoubleValue(1.5), v)

	v, ok = ParseDouble(" -2.5e3 ", st)
	require.True(t, ok)
	assert.Equal(t, NewDoubleValue(-2500), v)

	for _, text := range []string{"", "abc", "1/2", "(1,2)"} {
		_, ok = ParseDouble(text, st)
		assert.False(t, ok, text)
	}
}
