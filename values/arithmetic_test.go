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
	"fmt"
	"math"
	"math/big"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/calc48/calc48/settings"
)

// representatives are benign sample values, one per tag,
// chosen so that legal operand combinations never fail incidentally
// (no zero divisors, no overflowing exponents).
func representatives(t *testing.T) map[ValueType]Value {
	t.Helper()
	half, err := NewFractionValue(big.NewInt(1), big.NewInt(2))
	require.NoError(t, err)

	return map[ValueType]Value{
		ValueTypeBinary:   NewBinaryValue(2),
		ValueTypeInteger:  NewIntValueFromInt64(3),
		ValueTypeFraction: half,
		ValueTypeDouble:   NewDoubleValue(1.5),
		ValueTypeComplex:  NewComplexValue(1 + 1i),
		ValueTypeTimeSpan: NewTimeSpanValue(90 * time.Minute),
		ValueTypeDateTime: NewDateTimeValue(
			time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC),
		),
	}
}

func TestPromoteYieldsTheHigherRank(t *testing.T) {

	reps := representatives(t)

	ranked := []ValueType{
		ValueTypeBinary,
		ValueTypeInteger,
		ValueTypeFraction,
		ValueTypeDouble,
		ValueTypeComplex,
	}

	for i, leftType := range ranked {
		for j, rightType := range ranked {
			t.Run(fmt.Sprintf("%s_%s", leftType, rightType), func(t *testing.T) {
				left := reps[leftType].(NumberValue)
				right := reps[rightType].(NumberValue)

				a, b, err := Promote(left, right)
				require.NoError(t, err)

				expected := leftType
				if j > i {
					expected = rightType
				}
				assert.Equal(t, expected, a.Type())
				assert.Equal(t, expected, b.Type())

				// promotion is symmetric in the result tag
				c, d, err := Promote(right, left)
				require.NoError(t, err)
				assert.Equal(t, expected, c.Type())
				assert.Equal(t, expected, d.Type())
			})
		}
	}
}

func TestPromotionPreservesExactness(t *testing.T) {

	st := settings.Default()

	// binary + integer promotes to integer
	result, err := Add(NewBinaryValue(2), NewIntValueFromInt64(3), st)
	require.NoError(t, err)
	assert.Equal(t, NewIntValueFromInt64(5), result)

	// integer + fraction promotes to fraction, exactly
	half, err := NewFractionValue(big.NewInt(1), big.NewInt(2))
	require.NoError(t, err)
	result, err = Add(NewIntValueFromInt64(1), half, st)
	require.NoError(t, err)
	require.IsType(t, FractionValue{}, result)
	assert.Equal(t, "3/2", result.String())

	// fraction + double leaves exact territory
	result, err = Add(half, NewDoubleValue(0.25), st)
	require.NoError(t, err)
	assert.Equal(t, NewDoubleValue(0.75), result)

	// double + complex promotes to complex
	result, err = Add(NewDoubleValue(1), NewComplexValue(0+1i), st)
	require.NoError(t, err)
	assert.Equal(t, NewComplexValue(1+1i), result)

	// same-tag operands never change type on addition
	result, err = Add(NewBinaryValue(2), NewBinaryValue(3), st)
	require.NoError(t, err)
	assert.Equal(t, NewBinaryValue(5), result)
}

// legalCombination mirrors the operand legality rules:
// promoted numeric pairs, the date-time/time-span family,
// and time-span scaling. Everything else must be rejected.
func legalCombination(op Operation, left, right ValueType) bool {
	_, leftRanked := numericRank(left)
	_, rightRanked := numericRank(right)

	if leftRanked && rightRanked {
		if op == OperationMod &&
			(left == ValueTypeComplex || right == ValueTypeComplex) {
			return false
		}
		return true
	}

	bothSpans := left == ValueTypeTimeSpan && right == ValueTypeTimeSpan
	if bothSpans {
		return op == OperationPlus || op == OperationMinus
	}

	bothDates := left == ValueTypeDateTime && right == ValueTypeDateTime
	if bothDates {
		return op == OperationMinus
	}

	dateAndSpan := (left == ValueTypeDateTime && right == ValueTypeTimeSpan) ||
		(left == ValueTypeTimeSpan && right == ValueTypeDateTime)
	if dateAndSpan {
		return op == OperationPlus || op == OperationMinus
	}

	scalable := func(t ValueType) bool {
		_, ok := numericRank(t)
		return ok && t != ValueTypeComplex
	}
	if left == ValueTypeTimeSpan && scalable(right) {
		return op == OperationMul || op == OperationDiv
	}
	if scalable(left) && right == ValueTypeTimeSpan {
		return op == OperationMul
	}

	return false
}

func TestBinaryOperationLegalityIsExhaustive(t *testing.T) {

	st := settings.Default()
	reps := representatives(t)

	operations := map[Operation]func(x, y Value, st *settings.Settings) (Value, error){
		OperationPlus:  Add,
		OperationMinus: Subtract,
		OperationMul:   Multiply,
		OperationDiv:   Divide,
		OperationMod:   Modulus,
		OperationPow:   Power,
	}

	for op, apply := range operations {
		for _, leftType := range ValueTypes() {
			for _, rightType := range ValueTypes() {
				name := fmt.Sprintf("%s_%s_%s", op.Name(), leftType, rightType)
				t.Run(name, func(t *testing.T) {
					result, err := apply(reps[leftType], reps[rightType], st)

					if legalCombination(op, leftType, rightType) {
						require.NoError(t, err)
						require.NotNil(t, result)
					} else {
						var invalidOperands *InvalidOperandsError
						require.ErrorAs(t, err, &invalidOperands)
						assert.Equal(t, op, invalidOperands.Operation)

						// promoted operands report their promoted tags
						_, leftRanked := numericRank(leftType)
						_, rightRanked := numericRank(rightType)
						if !leftRanked || !rightRanked {
							assert.Equal(t, leftType, invalidOperands.LeftType)
							assert.Equal(t, rightType, invalidOperands.RightType)
						}
					}
				})
			}
		}
	}
}

func TestBinaryOperationRejectsNilOperands(t *testing.T) {

	st := settings.Default()

	var invalidOperands *InvalidOperandsError

	_, err := Add(nil, NewIntValueFromInt64(1), st)
	require.ErrorAs(t, err, &invalidOperands)
	assert.Equal(t, ValueTypeUnknown, invalidOperands.LeftType)

	_, err = Add(NewIntValueFromInt64(1), nil, st)
	require.ErrorAs(t, err, &invalidOperands)
	assert.Equal(t, ValueTypeUnknown, invalidOperands.RightType)

	_, err = Add(nil, nil, st)
	require.ErrorAs(t, err, &invalidOperands)
}

func TestInvert(t *testing.T) {

	st := settings.Default()

	// inversion changes the type of exact integers
	result, err := Invert(NewIntValueFromInt64(4), st)
	require.NoError(t, err)
	require.IsType(t, FractionValue{}, result)
	assert.Equal(t, "1/4", result.String())

	result, err = Invert(NewBinaryValue(4), st)
	require.NoError(t, err)
	require.IsType(t, FractionValue{}, result)

	half, err := NewFractionValue(big.NewInt(1), big.NewInt(2))
	require.NoError(t, err)
	result, err = Invert(half, st)
	require.NoError(t, err)
	assert.Equal(t, "2/1", result.String())

	result, err = Invert(NewDoubleValue(4), st)
	require.NoError(t, err)
	assert.Equal(t, NewDoubleValue(0.25), result)

	var invalidOperand *InvalidOperandError
	_, err = Invert(NewTimeSpanValue(time.Hour), st)
	require.ErrorAs(t, err, &invalidOperand)
}

func TestGcd(t *testing.T) {

	st := settings.Default()

	result, err := Gcd(NewIntValueFromInt64(12), NewIntValueFromInt64(18), st)
	require.NoError(t, err)
	assert.Equal(t, NewIntValueFromInt64(6), result)

	// binary operands stay binary when the result fits
	result, err = Gcd(NewBinaryValue(12), NewBinaryValue(18), st)
	require.NoError(t, err)
	assert.Equal(t, NewBinaryValue(6), result)

	// mixed binary and integer promotes to integer
	result, err = Gcd(NewBinaryValue(12), NewIntValueFromInt64(18), st)
	require.NoError(t, err)
	assert.Equal(t, NewIntValueFromInt64(6), result)

	half, err := NewFractionValue(big.NewInt(1), big.NewInt(2))
	require.NoError(t, err)
	threeQuarters, err := NewFractionValue(big.NewInt(3), big.NewInt(4))
	require.NoError(t, err)
	result, err = Gcd(half, threeQuarters, st)
	require.NoError(t, err)
	assert.Equal(t, "1/4", result.String())

	// inexact operands have no gcd
	var invalidOperands *InvalidOperandsError
	_, err = Gcd(NewDoubleValue(12), NewDoubleValue(18), st)
	require.ErrorAs(t, err, &invalidOperands)

	_, err = Gcd(NewIntValueFromInt64(12), NewTimeSpanValue(time.Hour), st)
	require.ErrorAs(t, err, &invalidOperands)
}

func TestCompareOrdersNilFirst(t *testing.T) {

	st := settings.Default()

	result, err := Compare(nil, nil, st)
	require.NoError(t, err)
	assert.Equal(t, 0, result)

	result, err = Compare(nil, NewIntValueFromInt64(0), st)
	require.NoError(t, err)
	assert.Equal(t, -1, result)

	result, err = Compare(NewIntValueFromInt64(0), nil, st)
	require.NoError(t, err)
	assert.Equal(t, 1, result)
}

func TestCompareAcrossNumericTags(t *testing.T) {

	st := settings.Default()

	fiveHalves, err := NewFractionValue(big.NewInt(5), big.NewInt(2))
	require.NoError(t, err)

	result, err := Compare(NewBinaryValue(2), fiveHalves, st)
	require.NoError(t, err)
	assert.Equal(t, -1, result)

	result, err = Compare(NewIntValueFromInt64(3), fiveHalves, st)
	require.NoError(t, err)
	assert.Equal(t, 1, result)

	result, err = Compare(NewDoubleValue(2.5), fiveHalves, st)
	require.NoError(t, err)
	assert.Equal(t, 0, result)
}

func TestCompareOrdersNaNBelowEverything(t *testing.T) {

	st := settings.Default()
	nan := NewDoubleValue(math.NaN())

	result, err := Compare(nan, NewDoubleValue(math.Inf(-1)), st)
	require.NoError(t, err)
	assert.Equal(t, -1, result)

	result, err = Compare(NewDoubleValue(math.Inf(-1)), nan, st)
	require.NoError(t, err)
	assert.Equal(t, 1, result)

	result, err = Compare(nan, nan, st)
	require.NoError(t, err)
	assert.Equal(t, 0, result)
}
