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
	"iter"
	"math/big"
	"strings"

	"github.com/calc48/calc48/format"
	"github.com/calc48/calc48/settings"
)

// IntValue

// IntValue is an arbitrary-precision integer.
type IntValue struct {
	BigInt *big.Int
}

var _ Value = IntValue{}
var _ NumberValue = IntValue{}

func NewIntValueFromInt64(value int64) IntValue {
	return IntValue{BigInt: big.NewInt(value)}
}

// NewIntValueFromBigInt wraps the given integer.
// The caller must not mutate it afterwards.
func NewIntValueFromBigInt(value *big.Int) IntValue {
	return IntValue{BigInt: value}
}

// maxExponentBits bounds exponents in integer and fraction powers.
// Larger exponents would produce results too large to be useful
// and are reported as overflow instead of being attempted.
const maxExponentBits = 24

func bigIntPow(base, exponent *big.Int) (*big.Int, error) {
	if exponent.Sign() < 0 {
		// callers handle negative exponents before delegating here
		return nil, &OverflowError{Operation: OperationPow}
	}
	if exponent.BitLen() > maxExponentBits {
		return nil, &OverflowError{Operation: OperationPow}
	}
	return new(big.Int).Exp(base, exponent, nil), nil
}

func (IntValue) isValue() {}

func (IntValue) Type() ValueType {
	return ValueTypeInteger
}

func (v IntValue) String() string {
	return format.BigInt(v.BigInt)
}

func (v IntValue) Display(st *settings.Settings) string {
	st = orDefault(st)
	return format.GroupedBigInt(st.Locale, v.BigInt)
}

func (v IntValue) Entry() string {
	return format.BigInt(v.BigInt)
}

func (v IntValue) DisplayFormats(st *settings.Settings) iter.Seq[string] {
	st = orDefault(st)
	return func(yield func(string) bool) {
		if !yield(v.String()) {
			return
		}
		grouped := format.GroupedBigInt(st.Locale, v.BigInt)
		if grouped != v.String() {
			yield(grouped)
		}
	}
}

func (v IntValue) Equal(other Value) bool {
	otherInt, ok := other.(IntValue)
	if !ok {
		return false
	}
	return v.BigInt.Cmp(otherInt.BigInt) == 0
}

func (v IntValue) ToFloat64() float64 {
	f, _ := new(big.Float).SetInt(v.BigInt).Float64()
	return f
}

func (v IntValue) ToBigInt() *big.Int {
	return new(big.Int).Set(v.BigInt)
}

func (v IntValue) Sign(_ *settings.Settings) int {
	return v.BigInt.Sign()
}

func (v IntValue) Negate(_ *settings.Settings) (NumberValue, error) {
	return NewIntValueFromBigInt(new(big.Int).Neg(v.BigInt)), nil
}

func (v IntValue) Abs(_ *settings.Settings) (NumberValue, error) {
	return NewIntValueFromBigInt(new(big.Int).Abs(v.BigInt)), nil
}

func (v IntValue) Plus(_ *settings.Settings, other NumberValue) (NumberValue, error) {
	o, ok := other.(IntValue)
	if !ok {
		return nil, &InvalidOperandsError{
			Operation: OperationPlus,
			LeftType:  v.Type(),
			RightType: other.Type(),
		}
	}

	return NewIntValueFromBigInt(new(big.Int).Add(v.BigInt, o.BigInt)), nil
}

func (v IntValue) Minus(_ *settings.Settings, other NumberValue) (NumberValue, error) {
	o, ok := other.(IntValue)
	if !ok {
		return nil, &InvalidOperandsError{
			Operation: OperationMinus,
			LeftType:  v.Type(),
			RightType: other.Type(),
		}
	}

	return NewIntValueFromBigInt(new(big.Int).Sub(v.BigInt, o.BigInt)), nil
}

func (v IntValue) Mul(_ *settings.Settings, other NumberValue) (NumberValue, error) {
	o, ok := other.(IntValue)
	if !ok {
		return nil, &InvalidOperandsError{
			Operation: OperationMul,
			LeftType:  v.Type(),
			RightType: other.Type(),
		}
	}

	return NewIntValueFromBigInt(new(big.Int).Mul(v.BigInt, o.BigInt)), nil
}

// Div returns an IntValue when the division is exact,
// and an exact FractionValue otherwise.
func (v IntValue) Div(_ *settings.Settings, other NumberValue) (NumberValue, error) {
	o, ok := other.(IntValue)
	if !ok {
		return nil, &InvalidOperandsError{
			Operation: OperationDiv,
			LeftType:  v.Type(),
			RightType: other.Type(),
		}
	}

	if o.BigInt.Sign() == 0 {
		return nil, &DivisionByZeroError{}
	}

	quo, rem := new(big.Int).QuoRem(v.BigInt, o.BigInt, new(big.Int))
	if rem.Sign() == 0 {
		return NewIntValueFromBigInt(quo), nil
	}
	return NewFractionValue(v.ToBigInt(), o.ToBigInt())
}

// Mod truncates toward zero: the result carries the sign of the dividend.
func (v IntValue) Mod(_ *settings.Settings, other NumberValue) (NumberValue, error) {
	o, ok := other.(IntValue)
	if !ok {
		return nil, &InvalidOperandsError{
			Operation: OperationMod,
			LeftType:  v.Type(),
			RightType: other.Type(),
		}
	}

	if o.BigInt.Sign() == 0 {
		return nil, &DivisionByZeroError{}
	}

	return NewIntValueFromBigInt(new(big.Int).Rem(v.BigInt, o.BigInt)), nil
}

// Pow with a negative exponent yields an exact fraction 1 / v^|e|.
func (v IntValue) Pow(_ *settings.Settings, other NumberValue) (NumberValue, error) {
	o, ok := other.(IntValue)
	if !ok {
		return nil, &InvalidOperandsError{
			Operation: OperationPow,
			LeftType:  v.Type(),
			RightType: other.Type(),
		}
	}

	if o.BigInt.Sign() < 0 {
		if v.BigInt.Sign() == 0 {
			return nil, &DivisionByZeroError{}
		}
		magnitude, err := bigIntPow(v.BigInt, new(big.Int).Abs(o.BigInt))
		if err != nil {
			return nil, err
		}
		return NewFractionValue(big.NewInt(1), magnitude)
	}

	result, err := bigIntPow(v.BigInt, o.BigInt)
	if err != nil {
		return nil, err
	}
	return NewIntValueFromBigInt(result), nil
}

func (v IntValue) Invert(_ *settings.Settings) (NumberValue, error) {
	if v.BigInt.Sign() == 0 {
		return nil, &DivisionByZeroError{}
	}
	return NewFractionValue(big.NewInt(1), v.ToBigInt())
}

// Gcd returns the greatest common divisor, always non-negative.
func (v IntValue) Gcd(other IntValue) IntValue {
	a := new(big.Int).Abs(v.BigInt)
	b := new(big.Int).Abs(other.BigInt)
	// big.Int.GCD requires positive operands
	if a.Sign() == 0 {
		return NewIntValueFromBigInt(b)
	}
	if b.Sign() == 0 {
		return NewIntValueFromBigInt(a)
	}
	return NewIntValueFromBigInt(a.GCD(nil, nil, a, b))
}

// ParseInteger parses a decimal integer literal with an optional sign.
func ParseInteger(text string, _ *settings.Settings) (IntValue, bool) {
	text = strings.TrimSpace(text)
	value, ok := new(big.Int).SetString(text, 10)
	if !ok {
		return IntValue{}, false
	}
	return NewIntValueFromBigInt(value), true
}
