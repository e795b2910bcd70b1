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
	"cmp"
	"math"

	"github.com/calc48/calc48/errors"
	"github.com/calc48/calc48/settings"
)

// Compare orders two values null-safely: nil compares less than any value
// and equal to nil. Numeric operands are promoted first. Complex values
// are never ordered, and neither is any other cross-family pair.
func Compare(x, y Value, st *settings.Settings) (int, error) {
	st = orDefault(st)

	if x == nil && y == nil {
		return 0, nil
	}
	if x == nil {
		return -1, nil
	}
	if y == nil {
		return 1, nil
	}

	if x.Type() == ValueTypeComplex || y.Type() == ValueTypeComplex {
		return 0, &InvalidOperandsError{
			Operation: OperationCompare,
			LeftType:  x.Type(),
			RightType: y.Type(),
		}
	}

	if x.Type() == ValueTypeDateTime && y.Type() == ValueTypeDateTime {
		return x.(DateTimeValue).Compare(y.(DateTimeValue)), nil
	}

	if x.Type() == ValueTypeTimeSpan && y.Type() == ValueTypeTimeSpan {
		return cmp.Compare(
			x.(TimeSpanValue),
			y.(TimeSpanValue),
		), nil
	}

	xNumber, xOk := x.(NumberValue)
	yNumber, yOk := y.(NumberValue)
	_, xRanked := numericRank(typeOf(x))
	_, yRanked := numericRank(typeOf(y))
	if xOk && yOk && xRanked && yRanked {
		a, b, err := Promote(xNumber, yNumber)
		if err != nil {
			return 0, err
		}
		return compareSameTag(a, b), nil
	}

	return 0, &InvalidOperandsError{
		Operation: OperationCompare,
		LeftType:  x.Type(),
		RightType: y.Type(),
	}
}

func compareSameTag(a, b NumberValue) int {
	switch typedA := a.(type) {
	case BinaryValue:
		// binary values order as unsigned words
		return cmp.Compare(typedA, b.(BinaryValue))
	case IntValue:
		return typedA.BigInt.Cmp(b.(IntValue).BigInt)
	case FractionValue:
		return typedA.Rat.Cmp(b.(FractionValue).Rat)
	case DoubleValue:
		return compareDouble(float64(typedA), float64(b.(DoubleValue)))
	}

	panic(errors.NewUnreachableError())
}

// compareDouble orders NaN below every other value and equal to itself.
func compareDouble(a, b float64) int {
	aNaN := math.IsNaN(a)
	bNaN := math.IsNaN(b)
	switch {
	case aNaN && bNaN:
		return 0
	case aNaN:
		return -1
	case bNaN:
		return 1
	}
	return cmp.Compare(a, b)
}
