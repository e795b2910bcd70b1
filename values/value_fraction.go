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
	"iter"
	"math"
	"math/big"
	"strings"
	"unicode"

	"github.com/calc48/calc48/format"
	"github.com/calc48/calc48/settings"
)

// FractionValue

// FractionValue is an arbitrary-precision rational.
// The wrapped rational is always in lowest terms with a positive denominator.
type FractionValue struct {
	Rat *big.Rat
}

var _ Value = FractionValue{}
var _ NumberValue = FractionValue{}

func NewFractionValue(num, den *big.Int) (FractionValue, error) {
	if den.Sign() == 0 {
		return FractionValue{}, &DivisionByZeroError{}
	}
	return FractionValue{Rat: new(big.Rat).SetFrac(num, den)}, nil
}

// NewFractionValueFromRat wraps a copy of the given rational.
func NewFractionValueFromRat(r *big.Rat) FractionValue {
	return FractionValue{Rat: new(big.Rat).Set(r)}
}

func NewFractionValueFromBigInt(value *big.Int) FractionValue {
	return FractionValue{Rat: new(big.Rat).SetInt(value)}
}

// NewMixedFraction builds a fraction from (whole, numerator, denominator).
//
// The numerator's sign is forced to match the whole part's sign and the
// denominator's sign is forced positive, so the sign distributes over the
// whole construct like in standard mixed-number notation:
// (-2, 1, 2) is -5/2, not -3/2.
func NewMixedFraction(whole, num, den *big.Int) (FractionValue, error) {
	if den.Sign() == 0 {
		return FractionValue{}, &DivisionByZeroError{}
	}

	den = new(big.Int).Abs(den)
	num = new(big.Int).Abs(num)
	if whole.Sign() < 0 {
		num.Neg(num)
	}

	r := new(big.Rat).SetInt(whole)
	r.Add(r, new(big.Rat).SetFrac(num, den))
	return FractionValue{Rat: r}, nil
}

// NewFractionValueFromDouble converts via the decimal rendering of f,
// not its binary bit pattern, keeping denominators human-sized:
// 0.33 becomes 33/100, not a 2^52-scale fraction.
func NewFractionValueFromDouble(f float64) (FractionValue, error) {
	if math.IsInf(f, 0) || math.IsNaN(f) {
		return FractionValue{}, &OverflowError{Operation: OperationDiv}
	}
	r, ok := new(big.Rat).SetString(format.Double(f))
	if !ok {
		return FractionValue{}, &OverflowError{Operation: OperationDiv}
	}
	return FractionValue{Rat: r}, nil
}

func (FractionValue) isValue() {}

func (FractionValue) Type() ValueType {
	return ValueTypeFraction
}

// String returns the canonical form: the common `numerator/denominator`.
func (v FractionValue) String() string {
	return v.commonString()
}

func (v FractionValue) Display(st *settings.Settings) string {
	st = orDefault(st)
	switch st.FractionFormat {
	case settings.FractionFormatMixed:
		return v.mixedString()
	case settings.FractionFormatDecimal:
		if decimal, ok := v.decimalString(); ok {
			return decimal
		}
	}
	return v.commonString()
}

// Entry always uses the lossless common form,
// so re-parsing never loses precision regardless of the display format.
func (v FractionValue) Entry() string {
	return v.commonString()
}

func (v FractionValue) DisplayFormats(st *settings.Settings) iter.Seq[string] {
	return func(yield func(string) bool) {
		mixed := v.mixedString()
		common := v.commonString()
		if mixed != common {
			if !yield(mixed) {
				return
			}
		}
		if !yield(common) {
			return
		}
		// a decimal form that overflowed is omitted rather than
		// duplicated as another common form
		if decimal, ok := v.decimalString(); ok {
			yield(decimal)
		}
	}
}

func (v FractionValue) commonString() string {
	return fmt.Sprintf(
		"%s/%s",
		v.Rat.Num(),
		v.Rat.Denom(),
	)
}

// mixedString renders `whole remainder/denominator`,
// falling back to the common form for proper fractions and whole numbers.
func (v FractionValue) mixedString() string {
	num := v.Rat.Num()
	den := v.Rat.Denom()

	whole, rem := new(big.Int).QuoRem(num, den, new(big.Int))
	if whole.Sign() == 0 || rem.Sign() == 0 {
		return v.commonString()
	}

	rem.Abs(rem)
	return fmt.Sprintf("%s %s/%s", whole, rem, den)
}

// decimalString reports false when the conversion leaves the double range.
func (v FractionValue) decimalString() (string, bool) {
	f, _ := v.Rat.Float64()
	if math.IsInf(f, 0) || math.IsNaN(f) {
		return "", false
	}
	return format.Double(f), true
}

func (v FractionValue) Equal(other Value) bool {
	otherFraction, ok := other.(FractionValue)
	if !ok {
		return false
	}
	return v.Rat.Cmp(otherFraction.Rat) == 0
}

func (v FractionValue) ToFloat64() float64 {
	f, _ := v.Rat.Float64()
	return f
}

func (v FractionValue) ToBigInt() *big.Int {
	return new(big.Int).Quo(v.Rat.Num(), v.Rat.Denom())
}

// WholePart returns the integer part, truncated toward zero.
func (v FractionValue) WholePart() IntValue {
	return NewIntValueFromBigInt(v.ToBigInt())
}

// FractionalPart returns the remainder after removing the whole part.
// Its sign matches the value's sign.
func (v FractionValue) FractionalPart() FractionValue {
	whole := new(big.Rat).SetInt(v.ToBigInt())
	return FractionValue{Rat: new(big.Rat).Sub(v.Rat, whole)}
}

func (v FractionValue) Sign(_ *settings.Settings) int {
	return v.Rat.Sign()
}

func (v FractionValue) Negate(_ *settings.Settings) (NumberValue, error) {
	return FractionValue{Rat: new(big.Rat).Neg(v.Rat)}, nil
}

func (v FractionValue) Abs(_ *settings.Settings) (NumberValue, error) {
	return FractionValue{Rat: new(big.Rat).Abs(v.Rat)}, nil
}

func (v FractionValue) Plus(_ *settings.Settings, other NumberValue) (NumberValue, error) {
	o, ok := other.(FractionValue)
	if !ok {
		return nil, &InvalidOperandsError{
			Operation: OperationPlus,
			LeftType:  v.Type(),
			RightType: other.Type(),
		}
	}

	return FractionValue{Rat: new(big.Rat).Add(v.Rat, o.Rat)}, nil
}

func (v FractionValue) Minus(_ *settings.Settings, other NumberValue) (NumberValue, error) {
	o, ok := other.(FractionValue)
	if !ok {
		return nil, &InvalidOperandsError{
			Operation: OperationMinus,
			LeftType:  v.Type(),
			RightType: other.Type(),
		}
	}

	return FractionValue{Rat: new(big.Rat).Sub(v.Rat, o.Rat)}, nil
}

func (v FractionValue) Mul(_ *settings.Settings, other NumberValue) (NumberValue, error) {
	o, ok := other.(FractionValue)
	if !ok {
		return nil, &InvalidOperandsError{
			Operation: OperationMul,
			LeftType:  v.Type(),
			RightType: other.Type(),
		}
	}

	return FractionValue{Rat: new(big.Rat).Mul(v.Rat, o.Rat)}, nil
}

func (v FractionValue) Div(_ *settings.Settings, other NumberValue) (NumberValue, error) {
	o, ok := other.(FractionValue)
	if !ok {
		return nil, &InvalidOperandsError{
			Operation: OperationDiv,
			LeftType:  v.Type(),
			RightType: other.Type(),
		}
	}

	if o.Rat.Sign() == 0 {
		return nil, &DivisionByZeroError{}
	}

	return FractionValue{Rat: new(big.Rat).Quo(v.Rat, o.Rat)}, nil
}

// Mod truncates toward zero: the result carries the sign of the dividend.
func (v FractionValue) Mod(_ *settings.Settings, other NumberValue) (NumberValue, error) {
	o, ok := other.(FractionValue)
	if !ok {
		return nil, &InvalidOperandsError{
			Operation: OperationMod,
			LeftType:  v.Type(),
			RightType: other.Type(),
		}
	}

	if o.Rat.Sign() == 0 {
		return nil, &DivisionByZeroError{}
	}

	return FractionValue{Rat: ratMod(v.Rat, o.Rat)}, nil
}

// ratMod returns a - b*trunc(a/b).
func ratMod(a, b *big.Rat) *big.Rat {
	q := new(big.Rat).Quo(a, b)
	whole := new(big.Int).Quo(q.Num(), q.Denom())
	return new(big.Rat).Sub(
		a,
		new(big.Rat).Mul(b, new(big.Rat).SetInt(whole)),
	)
}

// Pow distinguishes four cases:
//
//  1. an integer exponent gives an exact rational power;
//  2. a negative base with a positive odd-denominator exponent takes the
//     real principal root via the signed magnitude, so the cube root of -8
//     is -2 rather than a complex value;
//  3. a non-negative base with a positive exponent attempts a componentwise
//     power of numerator and denominator, recombining exactly when both
//     round-trip to integers;
//  4. everything else defers to double precision.
func (v FractionValue) Pow(_ *settings.Settings, other NumberValue) (NumberValue, error) {
	o, ok := other.(FractionValue)
	if !ok {
		return nil, &InvalidOperandsError{
			Operation: OperationPow,
			LeftType:  v.Type(),
			RightType: other.Type(),
		}
	}

	exponent := o.Rat
	if exponent.IsInt() {
		return v.powInt(exponent.Num())
	}

	base := v.Rat
	baseFloat, _ := base.Float64()
	expFloat, _ := exponent.Float64()

	if base.Sign() < 0 && exponent.Sign() > 0 {
		if exponent.Denom().Bit(0) == 1 {
			return NewDoubleValue(-math.Pow(-baseFloat, expFloat)), nil
		}
		// even-denominator root of a negative base has no real result;
		// math.Pow reports the NaN
		return NewDoubleValue(math.Pow(baseFloat, expFloat)), nil
	}

	if base.Sign() >= 0 && exponent.Sign() > 0 {
		if result, ok := v.powComponentwise(expFloat); ok {
			return result, nil
		}
	}

	return NewDoubleValue(math.Pow(baseFloat, expFloat)), nil
}

func (v FractionValue) powInt(exponent *big.Int) (NumberValue, error) {
	magnitude := new(big.Int).Abs(exponent)

	num, err := bigIntPow(v.Rat.Num(), magnitude)
	if err != nil {
		return nil, err
	}
	den, err := bigIntPow(v.Rat.Denom(), magnitude)
	if err != nil {
		return nil, err
	}

	if exponent.Sign() < 0 {
		if num.Sign() == 0 {
			return nil, &DivisionByZeroError{}
		}
		num, den = den, num
	}
	return NewFractionValue(num, den)
}

func (v FractionValue) powComponentwise(expFloat float64) (NumberValue, bool) {
	numFloat, _ := new(big.Float).SetInt(v.Rat.Num()).Float64()
	denFloat, _ := new(big.Float).SetInt(v.Rat.Denom()).Float64()

	numPow := math.Pow(numFloat, expFloat)
	denPow := math.Pow(denFloat, expFloat)
	if !roundTripsToInt(numPow) || !roundTripsToInt(denPow) {
		return nil, false
	}

	result, err := NewFractionValue(
		big.NewInt(int64(numPow)),
		big.NewInt(int64(denPow)),
	)
	if err != nil {
		return nil, false
	}
	return result, true
}

func roundTripsToInt(f float64) bool {
	return !math.IsInf(f, 0) &&
		!math.IsNaN(f) &&
		f == math.Trunc(f) &&
		math.Abs(f) < 1<<53
}

func (v FractionValue) Invert(_ *settings.Settings) (NumberValue, error) {
	if v.Rat.Sign() == 0 {
		return nil, &DivisionByZeroError{}
	}
	return FractionValue{Rat: new(big.Rat).Inv(v.Rat)}, nil
}

// gcdIterationLimit bounds the Euclidean loop.
// Rational gcd always terminates; the bound fails fast if it ever does not.
const gcdIterationLimit = 10000

// Gcd runs the Euclidean algorithm on rationals.
func (v FractionValue) Gcd(other FractionValue) (FractionValue, error) {
	a := new(big.Rat).Abs(v.Rat)
	b := new(big.Rat).Abs(other.Rat)

	for i := 0; b.Sign() != 0; i++ {
		if i >= gcdIterationLimit {
			return FractionValue{}, &IterationLimitError{
				Operation: OperationGcd,
				Limit:     gcdIterationLimit,
			}
		}
		a, b = b, ratMod(a, b)
	}

	return FractionValue{Rat: a}, nil
}

// ParseFraction parses two or three integer parts separated by `_`, `/`,
// or whitespace. Three-part (mixed) input requires a non-negative numerator
// and a strictly positive denominator; the whole part carries the sign.
func ParseFraction(text string, _ *settings.Settings) (FractionValue, bool) {
	parts := strings.FieldsFunc(
		strings.TrimSpace(text),
		func(r rune) bool {
			return r == '_' || r == '/' || unicode.IsSpace(r)
		},
	)

	switch len(parts) {
	case 2:
		num, ok := new(big.Int).SetString(parts[0], 10)
		if !ok {
			return FractionValue{}, false
		}
		den, ok := new(big.Int).SetString(parts[1], 10)
		if !ok || den.Sign() == 0 {
			return FractionValue{}, false
		}
		result, err := NewFractionValue(num, den)
		if err != nil {
			return FractionValue{}, false
		}
		return result, true

	case 3:
		whole, ok := new(big.Int).SetString(parts[0], 10)
		if !ok {
			return FractionValue{}, false
		}
		num, ok := new(big.Int).SetString(parts[1], 10)
		if !ok || num.Sign() < 0 {
			return FractionValue{}, false
		}
		den, ok := new(big.Int).SetString(parts[2], 10)
		if !ok || den.Sign() <= 0 {
			return FractionValue{}, false
		}
		result, err := NewMixedFraction(whole, num, den)
		if err != nil {
			return FractionValue{}, false
		}
		return result, true
	}

	return FractionValue{}, false
}
