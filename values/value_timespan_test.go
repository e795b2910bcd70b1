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
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/calc48/calc48/settings"
)

func TestTimeSpanValueDisplay(t *testing.T) {

	st := settings.Default()

	tests := []struct {
		span     time.Duration
		expected string
	}{
		{90 * time.Minute, "01:30:00"},
		{26 * time.Hour, "1.02:00:00"},
		{-90 * time.Second, "-00:01:30"},
		{1500 * time.Millisecond, "00:00:01.5"},
		{0, "00:00:00"},
		{49*time.Hour + 30*time.Minute + time.Second, "2.01:30:01"},
	}

	for _, test := range tests {
		assert.Equal(t,
			test.expected,
			NewTimeSpanValue(test.span).Display(st),
		)
	}

	// the Go form is canonical and lossless
	v := NewTimeSpanValue(90 * time.Minute)
	assert.Equal(t, "1h30m0s", v.String())
	assert.Equal(t, "1h30m0s", v.Entry())
}

func TestTimeSpanValueAddition(t *testing.T) {

	st := settings.Default()

	sum, err := NewTimeSpanValue(time.Hour).Plus(st, NewTimeSpanValue(30*time.Minute))
	require.NoError(t, err)
	assert.Equal(t, NewTimeSpanValue(90*time.Minute), sum)

	difference, err := NewTimeSpanValue(time.Hour).Minus(st, NewTimeSpanValue(90*time.Minute))
	require.NoError(t, err)
	assert.Equal(t, NewTimeSpanValue(-30*time.Minute), difference)

	var overflow *OverflowError
	_, err = NewTimeSpanValue(math.MaxInt64).Plus(st, NewTimeSpanValue(time.Second))
	require.ErrorAs(t, err, &overflow)

	_, err = NewTimeSpanValue(math.MinInt64).Negate(st)
	require.ErrorAs(t, err, &overflow)
}

func TestTimeSpanValueScaling(t *testing.T) {

	st := settings.Default()
	span := NewTimeSpanValue(90 * time.Minute)

	// scaling goes through the dispatcher's cross-family rules
	result, err := Multiply(span, NewIntValueFromInt64(2), st)
	require.NoError(t, err)
	assert.Equal(t, NewTimeSpanValue(3*time.Hour), result)

	result, err = Multiply(NewIntValueFromInt64(2), span, st)
	require.NoError(t, err)
	assert.Equal(t, NewTimeSpanValue(3*time.Hour), result)

	result, err = Multiply(span, NewDoubleValue(0.5), st)
	require.NoError(t, err)
	assert.Equal(t, NewTimeSpanValue(45*time.Minute), result)

	result, err = Divide(span, NewIntValueFromInt64(2), st)
	require.NoError(t, err)
	assert.Equal(t, NewTimeSpanValue(45*time.Minute), result)

	var divisionByZero *DivisionByZeroError
	_, err = Divide(span, NewIntValueFromInt64(0), st)
	require.ErrorAs(t, err, &divisionByZero)

	// a number divided by a time-span has no meaning
	var invalidOperands *InvalidOperandsError
	_, err = Divide(NewIntValueFromInt64(2), span, st)
	require.ErrorAs(t, err, &invalidOperands)

	// and neither has the product of two time-spans
	_, err = Multiply(span, span, st)
	require.ErrorAs(t, err, &invalidOperands)
}

func TestTimeSpanValueNeverPromotes(t *testing.T) {

	st := settings.Default()
	span := NewTimeSpanValue(time.Hour)

	var invalidOperands *InvalidOperandsError

	_, err := Add(span, NewIntValueFromInt64(1), st)
	require.ErrorAs(t, err, &invalidOperands)

	_, err = Power(span, span, st)
	require.ErrorAs(t, err, &invalidOperands)

	_, err = Modulus(span, span, st)
	require.ErrorAs(t, err, &invalidOperands)
}

func TestTimeSpanValueCompare(t *testing.T) {

	st := settings.Default()

	result, err := Compare(
		NewTimeSpanValue(time.Hour),
		NewTimeSpanValue(90*time.Minute),
		st,
	)
	require.NoError(t, err)
	assert.Equal(t, -1, result)

	result, err = Compare(
		NewTimeSpanValue(time.Hour),
		NewTimeSpanValue(time.Hour),
		st,
	)
	require.NoError(t, err)
	assert.Equal(t, 0, result)

	// time-spans do not order against numerics
	_, err = Compare(NewTimeSpanValue(time.Hour), NewIntValueFromInt64(3600), st)
	var invalidOperands *InvalidOperandsError
	require.ErrorAs(t, err, &invalidOperands)
}

func TestParseTimeSpan(t *testing.T) {

	st := settings.Default()

	tests := []struct {
		text     string
		expected time.Duration
		ok       bool
	}{
		{"90m", 90 * time.Minute, true},
		{"1h30m", 90 * time.Minute, true},
		{"1.5s", 1500 * time.Millisecond, true},
		{"01:30:00", 90 * time.Minute, true},
		{"1.02:00:00", 26 * time.Hour, true},
		{"-00:01:30", -90 * time.Second, true},
		{"+00:00:01.5", 1500 * time.Millisecond, true},
		{"00:99:00", 0, false},
		{"00:00:99", 0, false},
		{"1:2", 0, false},
		{"abc", 0, false},
		{"", 0, false},
	}

	for _, test := range tests {
		t.Run(test.text, func(t *testing.T) {
			actual, ok := ParseTimeSpan(test.text, st)
			require.Equal(t, test.ok, ok)
			if test.ok {
				assert.Equal(t, NewTimeSpanValue(test.expected), actual)
			}
		})
	}
}
