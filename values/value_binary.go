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
	"strconv"
	"strings"

	"github.com/calc48/calc48/format"
	"github.com/calc48/calc48/settings"
)

// BinaryValue

// BinaryValue is an arbitrary-width unsigned binary word.
//
// The value wraps a 64-bit cell but is logically limited to the word size
// supplied by the settings at operation time. The word size is never stored:
// the same value can be viewed at any width.
//
// Negation and Sign treat the word as two's-complement signed; parsing and
// conversions to integer, fraction and double always treat it as unsigned.
type BinaryValue uint64

var _ Value = BinaryValue(0)
var _ NumberValue = BinaryValue(0)

func NewBinaryValue(value uint64) BinaryValue {
	return BinaryValue(value)
}

// maskWord narrows x to the low wordSize bits
// by shifting the unused high bits out and back in.
func maskWord(x uint64, wordSize int) uint64 {
	shift := 64 - uint(wordSize)
	return x << shift >> shift
}

func wordSize(st *settings.Settings) int {
	if st == nil {
		return settings.DefaultWordSize
	}
	w := st.WordSize
	if w < settings.MinWordSize || w > settings.MaxWordSize {
		return settings.DefaultWordSize
	}
	return w
}

func (BinaryValue) isValue() {}

func (BinaryValue) Type() ValueType {
	return ValueTypeBinary
}

// String returns the canonical form: the unsigned decimal literal.
func (v BinaryValue) String() string {
	return v.literal(settings.BinaryFormatDecimal)
}

func (v BinaryValue) Display(st *settings.Settings) string {
	st = orDefault(st)
	return v.literal(st.BinaryFormat)
}

// Entry returns the decimal literal, which is lossless at every word size
// and independent of the active display base.
func (v BinaryValue) Entry() string {
	return v.literal(settings.BinaryFormatDecimal)
}

// literal renders `# <digits><suffix>`. Decimal always renders the cell
// unsigned; the other bases render the 64-bit pattern upper-cased.
func (v BinaryValue) literal(f settings.BinaryFormat) string {
	var builder strings.Builder
	builder.WriteString("# ")
	if f == settings.BinaryFormatDecimal {
		builder.WriteString(format.Uint(uint64(v)))
	} else {
		builder.WriteString(format.Radix(uint64(v), f.Base()))
	}
	builder.WriteByte(f.Suffix())
	return builder.String()
}

func (v BinaryValue) DisplayFormats(st *settings.Settings) iter.Seq[string] {
	return func(yield func(string) bool) {
		for _, f := range settings.BinaryFormats() {
			if !yield(v.literal(f)) {
				return
			}
		}
	}
}

func (v BinaryValue) Equal(other Value) bool {
	otherBinary, ok := other.(BinaryValue)
	if !ok {
		return false
	}
	return v == otherBinary
}

func (v BinaryValue) ToFloat64() float64 {
	return float64(uint64(v))
}

func (v BinaryValue) ToBigInt() *big.Int {
	return new(big.Int).SetUint64(uint64(v))
}

// Sign tests bit (wordSize-1) as a two's-complement sign bit.
func (v BinaryValue) Sign(st *settings.Settings) int {
	w := wordSize(st)
	masked := maskWord(uint64(v), w)
	if masked == 0 {
		return 0
	}
	if masked>>(uint(w)-1)&1 == 1 {
		return -1
	}
	return 1
}

// Negate returns the two's complement, masked to the word size.
func (v BinaryValue) Negate(st *settings.Settings) (NumberValue, error) {
	w := wordSize(st)
	return NewBinaryValue(maskWord(^uint64(v)+1, w)), nil
}

func (v BinaryValue) Abs(st *settings.Settings) (NumberValue, error) {
	if v.Sign(st) < 0 {
		return v.Negate(st)
	}
	return v, nil
}

func (v BinaryValue) Plus(st *settings.Settings, other NumberValue) (NumberValue, error) {
	o, ok := other.(BinaryValue)
	if !ok {
		return nil, &InvalidOperandsError{
			Operation: OperationPlus,
			LeftType:  v.Type(),
			RightType: other.Type(),
		}
	}

	w := wordSize(st)
	return NewBinaryValue(maskWord(uint64(v)+uint64(o), w)), nil
}

// Minus adds the two's-complement negation of the subtrahend,
// so subtraction is exact relative to the current word size.
func (v BinaryValue) Minus(st *settings.Settings, other NumberValue) (NumberValue, error) {
	o, ok := other.(BinaryValue)
	if !ok {
		return nil, &InvalidOperandsError{
			Operation: OperationMinus,
			LeftType:  v.Type(),
			RightType: other.Type(),
		}
	}

	w := wordSize(st)
	negated := maskWord(^uint64(o)+1, w)
	return NewBinaryValue(maskWord(uint64(v)+negated, w)), nil
}

func (v BinaryValue) Mul(st *settings.Settings, other NumberValue) (NumberValue, error) {
	o, ok := other.(BinaryValue)
	if !ok {
		return nil, &InvalidOperandsError{
			Operation: OperationMul,
			LeftType:  v.Type(),
			RightType: other.Type(),
		}
	}

	w := wordSize(st)
	return NewBinaryValue(maskWord(uint64(v)*uint64(o), w)), nil
}

func (v BinaryValue) Div(st *settings.Settings, other NumberValue) (NumberValue, error) {
	o, ok := other.(BinaryValue)
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

	w := wordSize(st)
	return NewBinaryValue(maskWord(uint64(v)/uint64(o), w)), nil
}

func (v BinaryValue) Mod(st *settings.Settings, other NumberValue) (NumberValue, error) {
	o, ok := other.(BinaryValue)
	if !ok {
		return nil, &InvalidOperandsError{
			Operation: OperationMod,
			LeftType:  v.Type(),
			RightType: other.Type(),
		}
	}

	if o == 0 {
		return nil, &DivisionByZeroError{}
	}

	w := wordSize(st)
	return NewBinaryValue(maskWord(uint64(v)%uint64(o), w)), nil
}

// Pow delegates to arbitrary-precision integer exponentiation.
// A result within the unsigned 64-bit range is re-wrapped as a BinaryValue;
// a larger result stays an IntValue. The type change is intentional.
func (v BinaryValue) Pow(st *settings.Settings, other NumberValue) (NumberValue, error) {
	o, ok := other.(BinaryValue)
	if !ok {
		return nil, &InvalidOperandsError{
			Operation: OperationPow,
			LeftType:  v.Type(),
			RightType: other.Type(),
		}
	}

	result, err := bigIntPow(v.ToBigInt(), o.ToBigInt())
	if err != nil {
		return nil, err
	}

	if result.IsUint64() {
		return NewBinaryValue(result.Uint64()), nil
	}
	return NewIntValueFromBigInt(result), nil
}

// Invert returns the fraction 1/v. Binary values cannot represent
// fractions, so inversion changes the value type.
func (v BinaryValue) Invert(st *settings.Settings) (NumberValue, error) {
	if v == 0 {
		return nil, &DivisionByZeroError{}
	}
	return NewFractionValue(big.NewInt(1), v.ToBigInt())
}

// Bitwise operations

func (v BinaryValue) BitwiseAnd(st *settings.Settings, other BinaryValue) (BinaryValue, error) {
	w := wordSize(st)
	return NewBinaryValue(maskWord(uint64(v)&uint64(other), w)), nil
}

func (v BinaryValue) BitwiseOr(st *settings.Settings, other BinaryValue) (BinaryValue, error) {
	w := wordSize(st)
	return NewBinaryValue(maskWord(uint64(v)|uint64(other), w)), nil
}

func (v BinaryValue) BitwiseXor(st *settings.Settings, other BinaryValue) (BinaryValue, error) {
	w := wordSize(st)
	return NewBinaryValue(maskWord(uint64(v)^uint64(other), w)), nil
}

func (v BinaryValue) BitwiseNot(st *settings.Settings) BinaryValue {
	w := wordSize(st)
	return NewBinaryValue(maskWord(^uint64(v), w))
}

func (v BinaryValue) ShiftLeft(st *settings.Settings, n int) (BinaryValue, error) {
	w := wordSize(st)
	if n < 0 || n >= w {
		return 0, &ShiftRangeError{Amount: n, WordSize: w}
	}
	masked := maskWord(uint64(v), w)
	return NewBinaryValue(maskWord(masked<<uint(n), w)), nil
}

func (v BinaryValue) ShiftRight(st *settings.Settings, n int) (BinaryValue, error) {
	w := wordSize(st)
	if n < 0 || n >= w {
		return 0, &ShiftRangeError{Amount: n, WordSize: w}
	}
	masked := maskWord(uint64(v), w)
	return NewBinaryValue(masked >> uint(n)), nil
}

// RotateLeft rotates by n bits within the current word size:
// the shifted-out high segment re-enters at the low end.
func (v BinaryValue) RotateLeft(st *settings.Settings, n int) (BinaryValue, error) {
	w := wordSize(st)
	if n < 0 || n >= w {
		return 0, &ShiftRangeError{Amount: n, WordSize: w}
	}
	masked := maskWord(uint64(v), w)
	out := masked >> (uint(w) - uint(n))
	return NewBinaryValue(maskWord(masked<<uint(n)|out, w)), nil
}

func (v BinaryValue) RotateRight(st *settings.Settings, n int) (BinaryValue, error) {
	w := wordSize(st)
	if n < 0 || n >= w {
		return 0, &ShiftRangeError{Amount: n, WordSize: w}
	}
	masked := maskWord(uint64(v), w)
	out := masked & (1<<uint(n) - 1)
	return NewBinaryValue(maskWord(masked>>uint(n)|out<<(uint(w)-uint(n)), w)), nil
}

// ParseBinary parses a binary literal:
//
//  1. a `#`-prefixed literal, where a trailing lower-case suffix
//     (b, o, d, h) selects the base and takes precedence over being read
//     as a base digit; without a suffix the display base applies;
//  2. a `0x`-prefixed unsigned hex literal, independent of the display base;
//  3. a bare unsigned decimal digit string.
//
// Any failure yields no value.
func ParseBinary(text string, st *settings.Settings) (BinaryValue, bool) {
	st = orDefault(st)
	text = strings.TrimSpace(text)

	if rest, ok := strings.CutPrefix(text, "#"); ok {
		rest = strings.TrimSpace(rest)
		if rest == "" {
			return 0, false
		}

		base := st.BinaryFormat.Base()
		digits := rest
		// NOTE: suffix match is case-sensitive: `#123d` is decimal 123
		// even in hex mode, while `#123D` is a hex digit string.
		if f, ok := settings.BinaryFormatForSuffix(rest[len(rest)-1]); ok {
			base = f.Base()
			digits = rest[:len(rest)-1]
		}

		value, err := strconv.ParseUint(digits, base, 64)
		if err != nil {
			return 0, false
		}
		return NewBinaryValue(value), true
	}

	if digits, ok := cutHexPrefix(text); ok {
		value, err := strconv.ParseUint(digits, 16, 64)
		if err != nil {
			return 0, false
		}
		return NewBinaryValue(value), true
	}

	value, err := strconv.ParseUint(text, 10, 64)
	if err != nil {
		return 0, false
	}
	return NewBinaryValue(value), true
}

func cutHexPrefix(text string) (string, bool) {
	if rest, ok := strings.CutPrefix(text, "0x"); ok {
		return rest, true
	}
	return strings.CutPrefix(text, "0X")
}
