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
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/calc48/calc48/settings"
)

func TestBitwiseRequiresBinaryOperands(t *testing.T) {

	st := settings.Default()

	var invalidOperands *InvalidOperandsError

	_, err := And(NewBinaryValue(1), NewIntValueFromInt64(1), st)
	require.ErrorAs(t, err, &invalidOperands)
	assert.Equal(t, OperationBitwiseAnd, invalidOperands.Operation)

	_, err = Or(NewIntValueFromInt64(1), NewBinaryValue(1), st)
	require.ErrorAs(t, err, &invalidOperands)

	_, err = Xor(NewDoubleValue(1), NewDoubleValue(1), st)
	require.ErrorAs(t, err, &invalidOperands)

	var invalidOperand *InvalidOperandError
	_, err = Not(NewIntValueFromInt64(1), st)
	require.ErrorAs(t, err, &invalidOperand)
}

func TestBitwiseDispatch(t *testing.T) {

	st := settingsWithWordSize(t, 8)

	result, err := And(NewBinaryValue(0b1100), NewBinaryValue(0b1010), st)
	require.NoError(t, err)
	assert.Equal(t, NewBinaryValue(0b1000), result)

	result, err = Or(NewBinaryValue(0b1100), NewBinaryValue(0b1010), st)
	require.NoError(t, err)
	assert.Equal(t, NewBinaryValue(0b1110), result)

	result, err = Xor(NewBinaryValue(0b1100), NewBinaryValue(0b1010), st)
	require.NoError(t, err)
	assert.Equal(t, NewBinaryValue(0b0110), result)

	result, err = Not(NewBinaryValue(0), st)
	require.NoError(t, err)
	assert.Equal(t, NewBinaryValue(0xFF), result)
}

func TestShiftAcceptsAnyExactNumericAmount(t *testing.T) {

	st := settingsWithWordSize(t, 8)
	v := NewBinaryValue(1)

	// the amount may be any ranked numeric, truncated to an integer
	result, err := ShiftLeft(v, NewIntValueFromInt64(3), st)
	require.NoError(t, err)
	assert.Equal(t, NewBinaryValue(8), result)

	result, err = ShiftLeft(v, NewBinaryValue(3), st)
	require.NoError(t, err)
	assert.Equal(t, NewBinaryValue(8), result)

	threeHalves, err := NewFractionValue(big.NewInt(3), big.NewInt(2))
	require.NoError(t, err)
	result, err = ShiftLeft(v, threeHalves, st)
	require.NoError(t, err)
	assert.Equal(t, NewBinaryValue(2), result)

	result, err = ShiftRight(NewBinaryValue(8), NewDoubleValue(3), st)
	require.NoError(t, err)
	assert.Equal(t, NewBinaryValue(1), result)
}

func TestShiftAmountOutOfRange(t *testing.T) {

	st := settingsWithWordSize(t, 8)
	v := NewBinaryValue(1)

	var shiftRange *ShiftRangeError

	_, err := ShiftLeft(v, NewIntValueFromInt64(8), st)
	require.ErrorAs(t, err, &shiftRange)

	_, err = ShiftRight(v, NewIntValueFromInt64(-1), st)
	require.ErrorAs(t, err, &shiftRange)

	// amounts beyond the 32-bit range saturate in the report
	huge := NewIntValueFromBigInt(new(big.Int).Lsh(big.NewInt(1), 80))
	_, err = RotateLeft(v, huge, st)
	require.ErrorAs(t, err, &shiftRange)

	var invalidOperands *InvalidOperandsError
	_, err = ShiftLeft(v, NewComplexValue(1), st)
	require.NoError(t, err) // complex amounts truncate through the real part

	_, err = ShiftLeft(v, nil, st)
	require.ErrorAs(t, err, &invalidOperands)
}

func TestRotateDispatch(t *testing.T) {

	st := settingsWithWordSize(t, 8)

	result, err := RotateLeft(NewBinaryValue(0b10000001), NewIntValueFromInt64(1), st)
	require.NoError(t, err)
	assert.Equal(t, NewBinaryValue(0b00000011), result)

	result, err = RotateRight(NewBinaryValue(0b10000001), NewIntValueFromInt64(1), st)
	require.NoError(t, err)
	assert.Equal(t, NewBinaryValue(0b11000000), result)
}
