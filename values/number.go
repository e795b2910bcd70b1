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

	"github.com/calc48/calc48/errors"
	"github.com/calc48/calc48/settings"
)

// NumberValue is a value participating in arithmetic.
//
// Binary operations require an operand of the same tag: the dispatcher
// promotes both operands first, and a method receiving a foreign tag
// fails with InvalidOperandsError.
type NumberValue interface {
	Value
	ToFloat64() float64
	// ToBigInt returns the value truncated toward zero.
	// Binary values are always read as unsigned.
	ToBigInt() *big.Int
	Sign(st *settings.Settings) int
	Negate(st *settings.Settings) (NumberValue, error)
	Abs(st *settings.Settings) (NumberValue, error)
	Plus(st *settings.Settings, other NumberValue) (NumberValue, error)
	Minus(st *settings.Settings, other NumberValue) (NumberValue, error)
	Mul(st *settings.Settings, other NumberValue) (NumberValue, error)
	Div(st *settings.Settings, other NumberValue) (NumberValue, error)
	Mod(st *settings.Settings, other NumberValue) (NumberValue, error)
	Pow(st *settings.Settings, other NumberValue) (NumberValue, error)
}

// numericRank orders the promotion lattice.
//
// Binary < Integer < Fraction < Double < Complex.
// The exact types promote among each other losslessly;
// Double is reached only when a Double or Complex operand forces it.
// TimeSpan and DateTime have no rank: they never promote,
// and interoperate with numerics only through the cross-family table.
func numericRank(t ValueType) (int, bool) {
	switch t {
	case ValueTypeBinary:
		return 0, true
	case ValueTypeInteger:
		return 1, true
	case ValueTypeFraction:
		return 2, true
	case ValueTypeDouble:
		return 3, true
	case ValueTypeComplex:
		return 4, true
	}
	return 0, false
}

// Promote converts the lower-ranked of two numeric operands up,
// returning both with the same tag.
//
// The result tag is the maximum rank of the pair, so Promote(a, b)
// and Promote(b, a) always agree.
func Promote(a, b NumberValue) (NumberValue, NumberValue, error) {
	rankA, okA := numericRank(a.Type())
	rankB, okB := numericRank(b.Type())
	if !okA || !okB {
		return nil, nil, &InvalidOperandsError{
			Operation: OperationCompare,
			LeftType:  a.Type(),
			RightType: b.Type(),
		}
	}

	switch {
	case rankA < rankB:
		promoted, err := promoteTo(a, b.Type())
		if err != nil {
			return nil, nil, err
		}
		return promoted, b, nil

	case rankA > rankB:
		promoted, err := promoteTo(b, a.Type())
		if err != nil {
			return nil, nil, err
		}
		return a, promoted, nil

	default:
		return a, b, nil
	}
}

// promoteTo converts v up the lattice to the target tag.
// Only upward conversions exist; anything else is a programming error.
func promoteTo(v NumberValue, target ValueType) (NumberValue, error) {
	if v.Type() == target {
		return v, nil
	}

	switch target {
	case ValueTypeInteger:
		return NewIntValueFromBigInt(v.ToBigInt()), nil

	case ValueTypeFraction:
		switch typed := v.(type) {
		case BinaryValue:
			return NewFractionValueFromBigInt(typed.ToBigInt()), nil
		case IntValue:
			return NewFractionValueFromBigInt(typed.BigInt), nil
		}

	case ValueTypeDouble:
		return NewDoubleValue(v.ToFloat64()), nil

	case ValueTypeComplex:
		return NewComplexValue(complex(v.ToFloat64(), 0)), nil
	}

	panic(errors.NewUnreachableError())
}
