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

	"github.com/calc48/calc48/errors"
	"github.com/calc48/calc48/settings"
)

// The bitwise surface applies to binary words only:
// no other variant has a bit pattern at a configurable width.

func And(x, y Value, st *settings.Settings) (Value, error) {
	return bitwiseOp(OperationBitwiseAnd, x, y, st)
}

func Or(x, y Value, st *settings.Settings) (Value, error) {
	return bitwiseOp(OperationBitwiseOr, x, y, st)
}

func Xor(x, y Value, st *settings.Settings) (Value, error) {
	return bitwiseOp(OperationBitwiseXor, x, y, st)
}

func Not(x Value, st *settings.Settings) (Value, error) {
	st = orDefault(st)
	binary, ok := x.(BinaryValue)
	if !ok {
		return nil, &InvalidOperandError{
			Operation: OperationBitwiseNot,
			Type:      typeOf(x),
		}
	}
	return binary.BitwiseNot(st), nil
}

func ShiftLeft(x, amount Value, st *settings.Settings) (Value, error) {
	return shiftOp(OperationShiftLeft, x, amount, st)
}

func ShiftRight(x, amount Value, st *settings.Settings) (Value, error) {
	return shiftOp(OperationShiftRight, x, amount, st)
}

func RotateLeft(x, amount Value, st *settings.Settings) (Value, error) {
	return shiftOp(OperationRotateLeft, x, amount, st)
}

func RotateRight(x, amount Value, st *settings.Settings) (Value, error) {
	return shiftOp(OperationRotateRight, x, amount, st)
}

func bitwiseOp(op Operation, x, y Value, st *settings.Settings) (Value, error) {
	st = orDefault(st)
	xBinary, xOk := x.(BinaryValue)
	yBinary, yOk := y.(BinaryValue)
	if !xOk || !yOk {
		return nil, &InvalidOperandsError{
			Operation: op,
			LeftType:  typeOf(x),
			RightType: typeOf(y),
		}
	}

	switch op {
	case OperationBitwiseAnd:
		return xBinary.BitwiseAnd(st, yBinary)
	case OperationBitwiseOr:
		return xBinary.BitwiseOr(st, yBinary)
	case OperationBitwiseXor:
		return xBinary.BitwiseXor(st, yBinary)
	}

	panic(errors.NewUnreachableError())
}

func shiftOp(op Operation, x, amount Value, st *settings.Settings) (Value, error) {
	st = orDefault(st)
	binary, ok := x.(BinaryValue)
	if !ok {
		return nil, &InvalidOperandsError{
			Operation: op,
			LeftType:  typeOf(x),
			RightType: typeOf(amount),
		}
	}

	n, err := shiftAmount(op, amount, st)
	if err != nil {
		return nil, err
	}

	switch op {
	case OperationShiftLeft:
		return binary.ShiftLeft(st, n)
	case OperationShiftRight:
		return binary.ShiftRight(st, n)
	case OperationRotateLeft:
		return binary.RotateLeft(st, n)
	case OperationRotateRight:
		return binary.RotateRight(st, n)
	}

	panic(errors.NewUnreachableError())
}

func shiftAmount(op Operation, amount Value, st *settings.Settings) (int, error) {
	number, ok := amount.(NumberValue)
	if _, ranked := numericRank(typeOf(amount)); !ok || !ranked {
		return 0, &InvalidOperandsError{
			Operation: op,
			LeftType:  ValueTypeBinary,
			RightType: typeOf(amount),
		}
	}

	n := number.ToBigInt()
	if !n.IsInt64() || n.Int64() > math.MaxInt32 || n.Int64() < math.MinInt32 {
		// saturate: any such amount is outside [0, wordSize) anyway
		amount := math.MaxInt32
		if n.Sign() < 0 {
			amount = math.MinInt32
		}
		return 0, &ShiftRangeError{
			Amount:   amount,
			WordSize: wordSize(st),
		}
	}
	return int(n.Int64()), nil
}
