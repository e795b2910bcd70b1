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

// Package format renders numbers as text.
// The functions here are context-free; locale-aware rendering
// lives in grouping.go.
package format

import (
	"math/big"
	"strconv"
	"strings"
)

func Uint(v uint64) string {
	return strconv.FormatUint(v, 10)
}

func Int(v int64) string {
	return strconv.FormatInt(v, 10)
}

func BigInt(v *big.Int) string {
	return v.String()
}

// Double renders a float64 in its shortest form that round-trips.
func Double(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// Radix renders v in the given base with upper-case digits.
func Radix(v uint64, base int) string {
	return strings.ToUpper(strconv.FormatUint(v, base))
}

func PadLeft(value string, separator rune, minLength uint) string {
	length := uint(len(value))
	if length >= minLength {
		return value
	}
	n := int(minLength - length)

	var builder strings.Builder
	builder.Grow(n)
	for i := 0; i < n; i++ {
		builder.WriteRune(separator)
	}
	builder.WriteString(value)
	return builder.String()
}
