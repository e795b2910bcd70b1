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
	"github.com/calc48/calc48/settings"
)

// TryParse parses a literal under the given tag.
//
// The settings only select which literal syntaxes are accepted
// (e.g. the display base for suffix-less binary literals);
// they never change the numeric result once parsed.
func TryParse(t ValueType, text string, st *settings.Settings) (Value, error) {
	st = orDefault(st)

	switch t {
	case ValueTypeBinary:
		if v, ok := ParseBinary(text, st); ok {
			return v, nil
		}
	case ValueTypeComplex:
		if v, ok := ParseComplex(text, st); ok {
			return v, nil
		}
	case ValueTypeDateTime:
		if v, ok := ParseDateTime(text, st); ok {
			return v, nil
		}
	case ValueTypeDouble:
		if v, ok := ParseDouble(text, st); ok {
			return v, nil
		}
	case ValueTypeFraction:
		if v, ok := ParseFraction(text, st); ok {
			return v, nil
		}
	case ValueTypeInteger:
		if v, ok := ParseInteger(text, st); ok {
			return v, nil
		}
	case ValueTypeTimeSpan:
		if v, ok := ParseTimeSpan(text, st); ok {
			return v, nil
		}
	}

	return nil, &ParseError{Type: t, Text: text}
}
