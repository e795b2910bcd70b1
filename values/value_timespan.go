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
	"strconv"
	"strings"
	"time"

	"github.com/calc48/calc48/settings"
)

// TimeSpanValue

// TimeSpanValue is a signed duration with nanosecond resolution.
//
// Time-spans add and subtract among themselves and with date-times,
// and scale by numeric factors through the cross-family rules.
// They never promote into the numeric lattice.
type TimeSpanValue time.Duration

var _ Value = TimeSpanValue(0)
var _ NumberValue = TimeSpanValue(0)

func NewTimeSpanValue(d time.Duration) TimeSpanValue {
	return TimeSpanValue(d)
}

func (TimeSpanValue) isValue() {}

func (TimeSpanValue) Type() ValueType {
	return ValueTypeTimeSpan
}

// String returns the Go duration form, e.g. `72h3m0.5s`.
func (v TimeSpanValue) String() string {
	return time.Duration(v).String()
}

func (v TimeSpanValue) Display(_ *settings.Settings) string {
	return v.colonString()
}

func (v TimeSpanValue) Entry() string {
	return time.Duration(v).String()
}

func (v TimeSpanValue) DisplayFormats(_ *settings.Settings) iter.Seq[string] {
	return func(yield func(string) bool) {
		if !yield(v.String()) {
			return
		}
		yield(v.colonString())
	}
}

// colonString renders `[-][days.]hh:mm:ss[.fraction]`.
func (v TimeSpanValue) colonString() string {
	d := time.Duration(v)

	var builder strings.Builder
	if d < 0 {
		builder.WriteByte('-')
		if d == math.MinInt64 {
			// cannot be negated; the Go form is exact
			return v.String()
		}
		d = -d
	}

	days := d / (24 * time.Hour)
	d -= days * 24 * time.Hour
	hours := d / time.Hour
	d -= hours * time.Hour
	minutes := d / time.Minute
	d -= minutes * time.Minute
	seconds := d / time.Second
	nanos := d - seconds*time.Second

	if days > 0 {
		builder.WriteString(strconv.FormatInt(int64(days), 10))
		builder.WriteByte('.')
	}
	fmt.Fprintf(&builder, "%02d:%02d:%02d", hours, minutes, seconds)
	if nanos > 0 {
		fraction := fmt.Sprintf("%09d", nanos)
		builder.WriteByte('.')
		builder.WriteString(strings.TrimRight(fraction, "0"))
	}
	return builder.String()
}

func (v TimeSpanValue) Equal(other Value) bool {
	otherSpan, ok := other.(TimeSpanValue)
	if !ok {
		return false
	}
	return v == otherSpan
}

// ToFloat64 returns the span in seconds.
func (v TimeSpanValue) ToFloat64() float64 {
	return time.Duration(v).Seconds()
}

// ToBigInt returns the span in whole seconds, truncated toward zero.
func (v TimeSpanValue) ToBigInt() *big.Int {
	return big.NewInt(int64(time.Duration(v) / time.Second))
}

func (v TimeSpanValue) Sign(_ *settings.Settings) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}

func (v TimeSpanValue) Negate(_ *settings.Settings) (NumberValue, error) {
	if time.Duration(v) == math.MinInt64 {
		return nil, &OverflowError{Operation: OperationNegate}
	}
	return NewTimeSpanValue(-time.Duration(v)), nil
}

func (v TimeSpanValue) Abs(st *settings.Settings) (NumberValue, error) {
	if v < 0 {
		return v.Negate(st)
	}
	return v, nil
}

func safeAddDuration(a, b time.Duration) (time.Duration, error) {
	if b > 0 && a > math.MaxInt64-b {
		return 0, &OverflowError{Operation: OperationPlus}
	}
	if b < 0 && a < math.MinInt64-b {
		return 0, &OverflowError{Operation: OperationPlus}
	}
	return a + b, nil
}

func (v TimeSpanValue) Plus(_ *settings.Settings, other NumberValue) (NumberValue, error) {
	o, ok := other.(TimeSpanValue)
	if !ok {
		return nil, &InvalidOperandsError{
			Operation: OperationPlus,
			LeftType:  v.Type(),
			RightType: other.Type(),
		}
	}

	sum, err := safeAddDuration(time.Duration(v), time.Duration(o))
	if err != nil {
		return nil, err
	}
	return NewTimeSpanValue(sum), nil
}

func (v TimeSpanValue) Minus(st *settings.Settings, other NumberValue) (NumberValue, error) {
	o, ok := other.(TimeSpanValue)
	if !ok {
		return nil, &InvalidOperandsError{
			Operation: OperationMinus,
			LeftType:  v.Type(),
			RightType: other.Type(),
		}
	}

	negated, err := o.Negate(st)
	if err != nil {
		return nil, err
	}
	return v.Plus(st, negated)
}

// Mul of two time-spans is undefined; scaling by a numeric factor
// goes through the cross-family rules instead.
func (v TimeSpanValue) Mul(_ *settings.Settings, other NumberValue) (NumberValue, error) {
	return nil, &InvalidOperandsError{
		Operation: OperationMul,
		LeftType:  v.Type(),
		RightType: other.Type(),
	}
}

func (v TimeSpanValue) Div(_ *settings.Settings, other NumberValue) (NumberValue, error) {
	return nil, &InvalidOperandsError{
		Operation: OperationDiv,
		LeftType:  v.Type(),
		RightType: other.Type(),
	}
}

func (v TimeSpanValue) Mod(_ *settings.Settings, other NumberValue) (NumberValue, error) {
	return nil, &InvalidOperandsError{
		Operation: OperationMod,
		LeftType:  v.Type(),
		RightType: other.Type(),
	}
}

func (v TimeSpanValue) Pow(_ *settings.Settings, other NumberValue) (NumberValue, error) {
	return nil, &InvalidOperandsError{
		Operation: OperationPow,
		LeftType:  v.Type(),
		RightType: other.Type(),
	}
}

// ScaleMul scales the span by a numeric factor.
func (v TimeSpanValue) ScaleMul(factor float64) (TimeSpanValue, error) {
	result := float64(v) * factor
	if math.IsNaN(result) || result >= math.MaxInt64 || result <= math.MinInt64 {
		return 0, &OverflowError{Operation: OperationMul}
	}
	return NewTimeSpanValue(time.Duration(result)), nil
}

// ScaleDiv divides the span by a numeric divisor.
func (v TimeSpanValue) ScaleDiv(divisor float64) (TimeSpanValue, error) {
	if divisor == 0 {
		return 0, &DivisionByZeroError{}
	}
	result := float64(v) / divisor
	if math.IsNaN(result) || result >= math.MaxInt64 || result <= math.MinInt64 {
		return 0, &OverflowError{Operation: OperationDiv}
	}
	return NewTimeSpanValue(time.Duration(result)), nil
}

// ParseTimeSpan parses either the Go duration form (`72h3m0.5s`)
// or the colon form (`[-][days.]hh:mm:ss[.fraction]`).
func ParseTimeSpan(text string, _ *settings.Settings) (TimeSpanValue, bool) {
	text = strings.TrimSpace(text)

	if d, err := time.ParseDuration(text); err == nil {
		return NewTimeSpanValue(d), true
	}

	if d, ok := parseColonSpan(text); ok {
		return NewTimeSpanValue(d), true
	}

	return 0, false
}

func parseColonSpan(text string) (time.Duration, bool) {
	negative := false
	if rest, ok := strings.CutPrefix(text, "-"); ok {
		negative = true
		text = rest
	} else {
		text, _ = strings.CutPrefix(text, "+")
	}

	var days int64
	if dot := strings.IndexByte(text, '.'); dot >= 0 {
		if colon := strings.IndexByte(text, ':'); colon > dot {
			parsed, err := strconv.ParseInt(text[:dot], 10, 64)
			if err != nil || parsed < 0 {
				return 0, false
			}
			days = parsed
			text = text[dot+1:]
		}
	}

	parts := strings.Split(text, ":")
	if len(parts) != 3 {
		return 0, false
	}

	hours, err := strconv.ParseInt(parts[0], 10, 64)
	if err != nil || hours < 0 {
		return 0, false
	}
	minutes, err := strconv.ParseInt(parts[1], 10, 64)
	if err != nil || minutes < 0 || minutes >= 60 {
		return 0, false
	}
	seconds, err := strconv.ParseFloat(parts[2], 64)
	if err != nil || seconds < 0 || seconds >= 60 {
		return 0, false
	}

	total := float64(days)*24*3600 + float64(hours)*3600 + float64(minutes)*60 + seconds
	nanos := total * float64(time.Second)
	if nanos >= math.MaxInt64 {
		return 0, false
	}

	d := time.Duration(nanos)
	if negative {
		d = -d
	}
	return d, true
}
