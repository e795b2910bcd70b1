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
	"math"
	"math/big"
	"strconv"
	"strings"

	"github.com/calc48/calc48/format"
	"github.com/calc48/calc48/settings"
)

// DoubleValue

// DoubleValue is an IEEE-754 double. Arithmetic follows IEEE semantics:
// division by zero yields an infinity or NaN, never an error.
type DoubleValue float64

var _ Value = DoubleValue(0)
var _ NumberValue = DoubleValue(0)

func NewDoubleValue(value float64) DoubleValue {
	return DoubleValue(value)
}

func (DoubleValue) isValue() {}

func (DoubleValue) Type() ValueType {
	return ValueTypeDouble
}

// String returns the shortest decimal form that round-trips.
func (v DoubleValue) String() string {
	return format.Double(float64(v))
}

func (v DoubleValue) Display(st *settings.Settings) string {
	st = orDefault(st)
	return format.GroupedDouble(st.Locale, float64(v))
}

func (v DoubleValue) Entry() string {
	return format.Double(float64(v))
}

func (v DoubleValue) DisplayFormats(st *settings.Settings) iter.Seq[string] {
	st = orDefault(st)
	return func(yield func(string) bool) {
		if !yield(v.String()) {
			return
		}
		grouped := format.GroupedDouble(st.Locale, float64(v))
		if grouped != v.String() {
			if !yield(grouped) {
				return
			}
		}
		if !math.IsInf(float64(v), 0) && !math.IsNaN(float64(v)) {
			scientific := strconv.FormatFloat(float64(v), 'e', -1, 64)
			if scientific != v.String() {
				yield(scientific)
			}
		}
	}
}

// Equal treats NaN as equal to NaN: this is value identity,
// not IEEE comparison.
func (v DoubleValue) Equal(other Value) bool {
	otherDouble, ok := other.(DoubleValue)
	if !ok {
		return false
	}
	if math.IsNaN(float64(v)) && math.IsNaN(float64(otherDouble)) {
		return true
	}
	return v == otherDouble
}

func (v DoubleValue) ToFloat64() float64 {
	return float64(v)
}

func (v DoubleValue) ToBigInt() *big.Int {
	// Inf and NaN have no integer part
	if math.IsInf(float64(v), 0) || math.IsNaN(float64(v)) {
		return new(big.Int)
	}
	result, _ := new(big.Float).SetFloat64(float64(v)).Int(nil)
	return result
}

func (v DoubleValue) Sign(_ *settings.Settings) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}

func (v DoubleValue) Negate(_ *settings.Settings) (NumberValue, error) {
	return NewDoubleValue(-float64(v)), nil
}

func (v DoubleValue) Abs(_ *settings.Settings) (NumberValue, error) {
	return NewDoubleValue(math.Abs(float64(v))), nil
}

func (v DoubleValue) Plus(_ *settings.Settings, other NumberValue) (NumberValue, error) {
	o, ok := other.(DoubleValue)
	if !ok {
		return nil, &InvalidOperandsError{
			Operation: OperationPlus,
			LeftType:  v.Type(),
			RightType: other.Type(),
		}
	}

	return NewDoubleValue(float64(v) + float64(o)), nil
}

func (v DoubleValue) Minus(_ *settings.Settings, other NumberValue) (NumberValue, error) {
	o, ok := other.(DoubleValue)
	if !ok {
		return nil, &InvalidOperandsError{
			Operation: OperationMinus,
			LeftType:  v.Type(),
			RightType: other.Type(),
		}
	}

	return NewDoubleValue(float64(v) - float64(o)), nil
}

func (v DoubleValue) Mul(_ *settings.Settings, other NumberValue) (NumberValue, error) {
	o, ok := other.(DoubleValue)
	if !ok {
		return nil, &InvalidOperandsError{
			Operation: OperationMul,
			LeftType:  v.Type(),
			RightType: other.Type(),
		}
	}

	return NewDoubleValue(float64(v) * float64(o)), nil
}

func (v DoubleValue) Div(_ *settings.Settings, other NumberValue) (NumberValue, error) {
	o, ok := other.(DoubleValue)
	if !ok {
		return nil, &InvalidOperandsError{
			Operation: OperationDiv,
			LeftType:  v.Type(),
			RightType: other.Type(),
		}
	}

	return NewDoubleValue(float64(v) / float64(o)), nil
}

func (v DoubleValue) Mod(_ *settings.Settings, other NumberValue) (NumberValue, error) {
	o, ok := other.(DoubleValue)
	if !ok {
		return nil, &InvalidOperandsError{
			Operation: OperationMod,
			LeftType:  v.Type(),
			RightType: other.Type(),
		}
	}

	return NewDoubleValue(math.Mod(float64(v), float64(o))), nil
}

func (v DoubleValue) Pow(_ *settings.Settings, other NumberValue) (NumberValue, error) {
	o, ok := other.(DoubleValue)
	if !ok {
		return nil, &InvalidOperandsError{
			Operation: OperationPow,
			LeftType:  v.Type(),
			RightType: other.Type(),
		}
	}

	return NewDoubleValue(math.Pow(float64(v), float64(o))), nil
}

func (v DoubleValue) Invert(_ *settings.Settings) (NumberValue, error) {
	return NewDoubleValue(1 / float64(v)), nil
}

// ParseDouble parses a floating-point literal.
func ParseDouble(text string, _ *settings.Settings) (DoubleValue, bool) {
	text = strings.TrimSpace(text)
	value, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return 0, false
	}
	return NewDoubleValue(value), true
}
