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

package format

import (
	"math"
	"math/big"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

func printer(locale string) *message.Printer {
	tag, err := language.Parse(locale)
	if err != nil {
		tag = language.English
	}
	return message.NewPrinter(tag)
}

// GroupedInt renders v with locale-appropriate digit grouping.
func GroupedInt(locale string, v int64) string {
	return printer(locale).Sprint(number.Decimal(v))
}

// GroupedBigInt renders v with digit grouping where it fits int64,
// and falls back to the plain decimal form otherwise.
func GroupedBigInt(locale string, v *big.Int) string {
	if v.IsInt64() {
		return GroupedInt(locale, v.Int64())
	}
	return v.String()
}

// GroupedDouble renders v with locale-appropriate digit grouping.
// Non-finite values fall back to the canonical form.
func GroupedDouble(locale string, v float64) string {
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return Double(v)
	}
	return printer(locale).Sprint(number.Decimal(v))
}
