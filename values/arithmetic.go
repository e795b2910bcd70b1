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
	"github.com/calc48/calc48/errors"
	"github.com/calc48/calc48/settings"
)

// The dispatcher is the polymorphic entry point of the engine.
//
// Each binary operation first consults the cross-family rule table,
// then promotes numeric operands to a common tag and delegates to the
// variant's own operator. Operand combinations matching neither path
// fail with InvalidOperandsError naming the operation and both tags.

func Add(x, y Value, st *settings.Settings) (Value, error) {
	return binaryOp(OperationPlus, x, y, st)
}

func Subtract(x, y Value, st *settings.Settings) (Value, error) {
	return binaryOp(OperationMinus, x, y, st)
}

func Multiply(x, y Value, st *settings.Settings) (Value, error) {
	return binaryOp(OperationMul, x, y, st)
}

func Divide(x, y Value, st *settings.Settings) (Value, error) {
	return binaryOp(OperationDiv, x, y, st)
}

func Modulus(x, y Value, st *settings.Settings) (Value, error) {
	return binaryOp(OperationMod, x, y, st)
}

func Power(x, y Value, st *settings.Settings) (Value, error) {
	return binaryOp(OperationPow, x, y, st)
}

func Negate(x Value, st *settings.Settings) (Value, error) {
	return unaryOp(OperationNegate, x, st)
}

func Abs(x Value, st *settings.Settings) (Value, error) {
	return unaryOp(OperationAbs, x, st)
}

// Sign returns -1, 0, or 1.
func Sign(x Value, st *settings.Settings) (int, error) {
	st = orDefault(st)
	number, ok := x.(NumberValue)
	if !ok {
		return 0, &InvalidOperandError{
			Operation: OperationSign,
			Type:      typeOf(x),
		}
	}
	return number.Sign(st), nil
}

// Invert returns 1/x. For binary and integer operands the result is a
// fraction: inversion is a type-changing operation for them.
func Invert(x Value, st *settings.Settings) (Value, error) {
	st = orDefault(st)
	switch typed := x.(type) {
	case BinaryValue:
		return typed.Invert(st)
	case IntValue:
		return typed.Invert(st)
	case FractionValue:
		return typed.Invert(st)
	case DoubleValue:
		return typed.Invert(st)
	case ComplexValue:
		return typed.Invert(st)
	}
	return nil, &InvalidOperandError{
		Operation: OperationInvert,
		Type:      typeOf(x),
	}
}

// Gcd returns the greatest common divisor of two exact operands.
func Gcd(x, y Value, st *settings.Settings) (Value, error) {
	st = orDefault(st)
	xNumber, xOk := x.(NumberValue)
	yNumber, yOk := y.(NumberValue)
	if !xOk || !yOk {
		return nil, &InvalidOperandsError{
			Operation: OperationGcd,
			LeftType:  typeOf(x),
			RightType: typeOf(y),
		}
	}

	a, b, err := Promote(xNumber, yNumber)
	if err != nil {
		return nil, err
	}

	switch typedA := a.(type) {
	case BinaryValue:
		result := NewIntValueFromBigInt(typedA.ToBigInt()).
			Gcd(NewIntValueFromBigInt(b.(BinaryValue).ToBigInt()))
		if result.BigInt.IsUint64() {
			return NewBinaryValue(result.BigInt.Uint64()), nil
		}
		return result, nil
	case IntValue:
		return typedA.Gcd(b.(IntValue)), nil
	case FractionValue:
		return typedA.Gcd(b.(FractionValue))
	}

	return nil, &InvalidOperandsError{
		Operation: OperationGcd,
		LeftType:  x.Type(),
		RightType: y.Type(),
	}
}

func typeOf(v Value) ValueType {
	if v == nil {
		return ValueTypeUnknown
	}
	return v.Type()
}

func unaryOp(op Operation, x Value, st *settings.Settings) (Value, error) {
	st = orDefault(st)
	number, ok := x.(NumberValue)
	if !ok {
		return nil, &InvalidOperandError{
			Operation: op,
			Type:      typeOf(x),
		}
	}

	switch op {
	case OperationNegate:
		return number.Negate(st)
	case OperationAbs:
		return number.Abs(st)
	}

	panic(errors.NewUnreachableError())
}

func binaryOp(op Operation, x, y Value, st *settings.Settings) (Value, error) {
	st = orDefault(st)
	if x == nil || y == nil {
		return nil, &InvalidOperandsError{
			Operation: op,
			LeftType:  typeOf(x),
			RightType: typeOf(y),
		}
	}

	if rule, ok := crossFamilyRules[crossFamilyKey{op, x.Type(), y.Type()}]; ok {
		return rule(x, y, st)
	}

	xNumber, xOk := x.(NumberValue)
	yNumber, yOk := y.(NumberValue)
	if xOk && yOk {
		if x.Type() == y.Type() {
			return applyNumeric(op, xNumber, yNumber, st)
		}

		_, xRanked := numericRank(x.Type())
		_, yRanked := numericRank(y.Type())
		if xRanked && yRanked {
			a, b, err := Promote(xNumber, yNumber)
			if err != nil {
				return nil, err
			}
			return applyNumeric(op, a, b, st)
		}
	}

	return nil, &InvalidOperandsError{
		Operation: op,
		LeftType:  x.Type(),
		RightType: y.Type(),
	}
}

func applyNumeric(op Operation, a, b NumberValue, st *settings.Settings) (Value, error) {
	switch op {
	case OperationPlus:
		return a.Plus(st, b)
	case OperationMinus:
		return a.Minus(st, b)
	case OperationMul:
		return a.Mul(st, b)
	case OperationDiv:
		return a.Div(st, b)
	case OperationMod:
		return a.Mod(st, b)
	case OperationPow:
		return a.Pow(st, b)
	}

	panic(errors.NewUnreachableError())
}

// Cross-family rules

// crossFamilyRules enumerates the only legal operand combinations that
// cross value families. The table is keyed by (operation, left, right)
// so its contents can be tested exhaustively.
type crossFamilyKey struct {
	operation Operation
	left      ValueType
	right     ValueType
}

type crossFamilyRule func(x, y Value, st *settings.Settings) (Value, error)

var crossFamilyRules = map[crossFamilyKey]crossFamilyRule{}

func registerCrossFamilyRule(op Operation, left, right ValueType, rule crossFamilyRule) {
	key := crossFamilyKey{op, left, right}
	if _, ok := crossFamilyRules[key]; ok {
		panic(errors.NewUnreachableError())
	}
	crossFamilyRules[key] = rule
}

// scalableTypes are the numeric tags that may scale a time-span.
var scalableTypes = []ValueType{
	ValueTypeBinary,
	ValueTypeInteger,
	ValueTypeFraction,
	ValueTypeDouble,
}

func init() {
	registerCrossFamilyRule(
		OperationMinus, ValueTypeDateTime, ValueTypeDateTime,
		func(x, y Value, _ *settings.Settings) (Value, error) {
			return x.(DateTimeValue).Sub(y.(DateTimeValue)), nil
		},
	)
	registerCrossFamilyRule(
		OperationPlus, ValueTypeDateTime, ValueTypeTimeSpan,
		func(x, y Value, _ *settings.Settings) (Value, error) {
			return x.(DateTimeValue).AddSpan(y.(TimeSpanValue)), nil
		},
	)
	registerCrossFamilyRule(
		OperationMinus, ValueTypeDateTime, ValueTypeTimeSpan,
		func(x, y Value, _ *settings.Settings) (Value, error) {
			return x.(DateTimeValue).SubSpan(y.(TimeSpanValue)), nil
		},
	)
	registerCrossFamilyRule(
		OperationPlus, ValueTypeTimeSpan, ValueTypeDateTime,
		func(x, y Value, _ *settings.Settings) (Value, error) {
			return y.(DateTimeValue).AddSpan(x.(TimeSpanValue)), nil
		},
	)
	registerCrossFamilyRule(
		OperationMinus, ValueTypeTimeSpan, ValueTypeDateTime,
		func(x, y Value, _ *settings.Settings) (Value, error) {
			return y.(DateTimeValue).SubSpan(x.(TimeSpanValue)), nil
		},
	)

	for _, numericType := range scalableTypes {
		registerCrossFamilyRule(
			OperationMul, ValueTypeTimeSpan, numericType,
			func(x, y Value, _ *settings.Settings) (Value, error) {
				return x.(TimeSpanValue).ScaleMul(y.(NumberValue).ToFloat64())
			},
		)
		registerCrossFamilyRule(
			OperationMul, numericType, ValueTypeTimeSpan,
			func(x, y Value, _ *settings.Settings) (Value, error) {
				return y.(TimeSpanValue).ScaleMul(x.(NumberValue).ToFloat64())
			},
		)
		registerCrossFamilyRule(
			OperationDiv, ValueTypeTimeSpan, numericType,
			func(x, y Value, _ *settings.Settings) (Value, error) {
				return x.(TimeSpanValue).ScaleDiv(y.(NumberValue).ToFloat64())
			},
		)
	}
}
