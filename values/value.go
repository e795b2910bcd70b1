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

// Package values implements the calculator's numeric value engine:
// a closed set of immutable value variants (binary word, arbitrary-precision
// integer, rational, IEEE double, complex, date-time, time-span) behind one
// polymorphic contract, with implicit numeric promotion.
//
// Every operation constructs and returns a new value; no variant has a
// mutating method, so values can be freely shared without locks.
package values

import (
	"fmt"
	"iter"

	"github.com/calc48/calc48/settings"
)

// ValueType is the tag of a value variant.
// The set is closed: every variant reports exactly one tag, permanently.
type ValueType uint8

const (
	ValueTypeUnknown ValueType = iota
	ValueTypeBinary
	ValueTypeComplex
	ValueTypeDateTime
	ValueTypeDouble
	ValueTypeFraction
	ValueTypeInteger
	ValueTypeTimeSpan
)

// ValueTypes returns all tags of the closed variant set.
func ValueTypes() []ValueType {
	return []ValueType{
		ValueTypeBinary,
		ValueTypeComplex,
		ValueTypeDateTime,
		ValueTypeDouble,
		ValueTypeFraction,
		ValueTypeInteger,
		ValueTypeTimeSpan,
	}
}

// String returns the tag name.
// The name doubles as the persistence type tag, so it must stay stable.
func (t ValueType) String() string {
	switch t {
	case ValueTypeUnknown:
		return "Unknown"
	case ValueTypeBinary:
		return "Binary"
	case ValueTypeComplex:
		return "Complex"
	case ValueTypeDateTime:
		return "DateTime"
	case ValueTypeDouble:
		return "Double"
	case ValueTypeFraction:
		return "Fraction"
	case ValueTypeInteger:
		return "Integer"
	case ValueTypeTimeSpan:
		return "TimeSpan"
	}
	return fmt.Sprintf("ValueType(%d)", t)
}

// ValueTypeFromString returns the tag with the given name.
func ValueTypeFromString(name string) (ValueType, bool) {
	switch name {
	case "Binary":
		return ValueTypeBinary, true
	case "Complex":
		return ValueTypeComplex, true
	case "DateTime":
		return ValueTypeDateTime, true
	case "Double":
		return ValueTypeDouble, true
	case "Fraction":
		return ValueTypeFraction, true
	case "Integer":
		return ValueTypeInteger, true
	case "TimeSpan":
		return ValueTypeTimeSpan, true
	}
	return ValueTypeUnknown, false
}

// Value is an immutable calculator value.
//
// String returns the canonical, context-free form.
// Display returns the context-aware form selected by the settings.
// Entry returns the lossless form: parsing it under the value's own tag
// always yields an equal value, regardless of the active display format.
type Value interface {
	fmt.Stringer
	isValue()
	Type() ValueType
	Display(st *settings.Settings) string
	Entry() string
	// DisplayFormats returns the alternate display representations,
	// at most one per supported base or format.
	// The sequence is finite and can be iterated multiple times.
	DisplayFormats(st *settings.Settings) iter.Seq[string]
	Equal(other Value) bool
}

func orDefault(st *settings.Settings) *settings.Settings {
	if st == nil {
		return settings.Default()
	}
	return st
}
