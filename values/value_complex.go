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
	"math/cmplx"
	"strconv"
	"strings"

	"github.com/calc48/calc48/format"
	"github.com/calc48/calc48/settings"
)

// ComplexValue

// ComplexValue is a complex number in cartesian form.
// Complex values take part in arithmetic and promotion
// but are never ordered.
type ComplexValue complex128

var _ Value = ComplexValue(0)
var _ NumberValue = ComplexValue(0)

func NewComplexValue(value complex128) ComplexValue {
	return ComplexValue(value)
}

func (ComplexValue) isValue() {}

func (ComplexValue) Type() ValueType {
	return ValueTypeComplex
}

// String returns the cartesian form `(re,im)`.
func (v ComplexValue) String() string {
	return fmt.Sprintf(
		"(%s,%s)",
		format.Double(real(complex128(v))),
		format.Double(imag(complex128(v))),
	)
}

func (v ComplexValue) Display(_ *settings.Settings) string {
	return v.String()
}

func (v ComplexValue) Entry() string {
	return v.String()
}

func (v ComplexValue) DisplayFormats(_ *settings.Settings) iter.Seq[string] {
	return func(yield func(string) bool) {
		if !yield(v.String()) {
			return
		}
		yield(v.polarString())
	}
}

// polarString renders magnitude and phase in degrees, display only.
func (v ComplexValue) polarString() string {
	magnitude := cmplx.Abs(complex128(v))
	degrees := cmplx.Phase(complex128(v)) * 180 / math.Pi
	return fmt.Sprintf(
		"(%s∠%s°)",
		format.Double(magnitude),
		format.Double(degrees),
	)
}

func (v ComplexValue) Equal(other Value) bool {
	otherComplex, ok := other.(ComplexValue)
	if !ok {
		return false
	}
	return v == otherComplex
}

// ToFloat64 returns the real part.
func (v ComplexValue) ToFloat64() float64 {
	return real(complex128(v))
}

func (v ComplexValue) ToBigInt() *big.Int {
	return NewDoubleValue(real(complex128(v))).ToBigInt()
}

// Sign is phase-based: zero for the origin, positive while the phase
// points into the right half-plane, negative otherwise.
func (v ComplexValue) Sign(_ *settings.Settings) int {
	if v == 0 {
		return 0
	}
	if math.Abs(cmplx.Phase(complex128(v))) <= math.Pi/2 {
		return 1
	}
	return -1
}

func (v ComplexValue) Negate(_ *settings.Settings) (NumberValue, error) {
	return NewComplexValue(-complex128(v)), nil
}

// Abs returns the magnitude, a real value.
func (v ComplexValue) Abs(_ *settings.Settings) (NumberValue, error) {
	return NewDoubleValue(cmplx.Abs(complex128(v))), nil
}

func (v ComplexValue) Plus(_ *settings.Settings, other NumberValue) (NumberValue, error) {
	o, ok := other.(ComplexValue)
	if !ok {
		return nil, &InvalidOperandsError{
			Operation: OperationPlus,
			LeftType:  v.Type(),
			RightType: other.Type(),
		}
	}

	return NewComplexValue(complex128(v) + complex128(o)), nil
}

func (v ComplexValue) Minus(_ *settings.Settings, other NumberValue) (NumberValue, error) {
	o, ok := other.(ComplexValue)
	if !ok {
		return nil, &InvalidOperandsError{
			Operation: OperationMinus,
			LeftType:  v.Type(),
			RightType: other.Type(),
		}
	}

	return NewComplexValue(complex128(v) - complex128(o)), nil
}

func (v ComplexValue) Mul(_ *settings.Settings, other NumberValue) (NumberValue, error) {
	o, ok := other.(ComplexValue)
	if !ok {
		return nil, &InvalidOperandsError{
			Operation: OperationMul,
			LeftType:  v.Type(),
			RightType: other.Type(),
		}
	}

	return NewComplexValue(complex128(v) * complex128(o)), nil
}

func (v ComplexValue) Div(_ *settings.Settings, other NumberValue) (NumberValue, error) {
	o, ok := other.(ComplexValue)
	if !ok {
		return nil, &InvalidOperandsError{
			Operation: OperationDiv,
			LeftType:  v.Type(),
			RightType: other.Type(),
		}
	}

	if o == 0 {
		return nil, &DivisionByZeroError{}
	}

	return NewComplexValue(complex128(v) / complex128(o)), nil
}

func (v ComplexValue) Mod(_ *settings.Settings, other NumberValue) (NumberValue, error) {
	return nil, &InvalidOperandsError{
		Operation: OperationMod,
		LeftType:  v.Type(),
		RightType: other.Type(),
	}
}

func (v ComplexValue) Pow(_ *settings.Settings, other NumberValue) (NumberValue, error) {
	o, ok := other.(ComplexValue)
	if !ok {
		return nil, &InvalidOperandsError{
			Operation: OperationPow,
			LeftType:  v.Type(),
			RightType: other.Type(),
		}
	}

	return NewComplexValue(cmplx.Pow(complex128(v), complex128(o))), nil
}

func (v ComplexValue) Invert(_ *settings.Settings) (NumberValue, error) {
	if v == 0 {
		return nil, &DivisionByZeroError{}
	}
	return NewComplexValue(1 / complex128(v)), nil
}

// ParseComplex parses the cartesian form `(re,im)`,
// also accepting `;` as the separator.
func ParseComplex(text string, _ *settings.Settings) (ComplexValue, bool) {
	text = strings.TrimSpace(text)

	inner, ok := strings.CutPrefix(text, "(")
	if !ok {
		return 0, false
	}
	inner, ok = strings.CutSuffix(inner, ")")
	if !ok {
		return 0, false
	}

	separator := ","
	if !strings.Contains(inner, separator) {
		separator = ";"
	}
	parts := strings.Split(inner, separator)
	if len(parts) != 2 {
		return 0, false
	}

	re, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return 0, false
	}
	im, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return 0, false
	}

	return NewComplexValue(complex(re, im)), true
}
