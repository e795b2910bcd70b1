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

// Package settings holds the calculator configuration that is passed
// into every context-aware value operation.
//
// A Settings value is treated as immutable by the value engine:
// values never store or modify it.
package settings

import (
	"fmt"

	"github.com/goccy/go-yaml"
)

// BinaryFormat selects the display base for binary values.
type BinaryFormat uint8

const (
	BinaryFormatDecimal BinaryFormat = iota
	BinaryFormatBinary
	BinaryFormatOctal
	BinaryFormatHex
)

var binaryFormats = []BinaryFormat{
	BinaryFormatBinary,
	BinaryFormatOctal,
	BinaryFormatDecimal,
	BinaryFormatHex,
}

// BinaryFormats returns all display bases, in suffix order (b, o, d, h).
func BinaryFormats() []BinaryFormat {
	return binaryFormats
}

func (f BinaryFormat) String() string {
	switch f {
	case BinaryFormatBinary:
		return "Binary"
	case BinaryFormatOctal:
		return "Octal"
	case BinaryFormatDecimal:
		return "Decimal"
	case BinaryFormatHex:
		return "Hex"
	}
	return fmt.Sprintf("BinaryFormat(%d)", f)
}

// Base returns the numeral base of the format.
func (f BinaryFormat) Base() int {
	switch f {
	case BinaryFormatBinary:
		return 2
	case BinaryFormatOctal:
		return 8
	case BinaryFormatDecimal:
		return 10
	case BinaryFormatHex:
		return 16
	}
	return 10
}

// Suffix returns the literal suffix character of the format.
func (f BinaryFormat) Suffix() byte {
	switch f {
	case BinaryFormatBinary:
		return 'b'
	case BinaryFormatOctal:
		return 'o'
	case BinaryFormatDecimal:
		return 'd'
	case BinaryFormatHex:
		return 'h'
	}
	return 'd'
}

// BinaryFormatForSuffix returns the format for a literal suffix character.
// Only the lower-case suffixes are recognized.
func BinaryFormatForSuffix(suffix byte) (BinaryFormat, bool) {
	switch suffix {
	case 'b':
		return BinaryFormatBinary, true
	case 'o':
		return BinaryFormatOctal, true
	case 'd':
		return BinaryFormatDecimal, true
	case 'h':
		return BinaryFormatHex, true
	}
	return 0, false
}

var _ fmt.Stringer = BinaryFormat(0)

func (f BinaryFormat) MarshalText() ([]byte, error) {
	return []byte(f.String()), nil
}

func (f *BinaryFormat) UnmarshalText(text []byte) error {
	switch string(text) {
	case "Binary":
		*f = BinaryFormatBinary
	case "Octal":
		*f = BinaryFormatOctal
	case "Decimal":
		*f = BinaryFormatDecimal
	case "Hex":
		*f = BinaryFormatHex
	default:
		return fmt.Errorf("unknown binary format: %q", text)
	}
	return nil
}

// FractionFormat selects the display rendering for fraction values.
type FractionFormat uint8

const (
	FractionFormatMixed FractionFormat = iota
	FractionFormatCommon
	FractionFormatDecimal
)

func (f FractionFormat) String() string {
	switch f {
	case FractionFormatMixed:
		return "Mixed"
	case FractionFormatCommon:
		return "Common"
	case FractionFormatDecimal:
		return "Decimal"
	}
	return fmt.Sprintf("FractionFormat(%d)", f)
}

func (f FractionFormat) MarshalText() ([]byte, error) {
	return []byte(f.String()), nil
}

func (f *FractionFormat) UnmarshalText(text []byte) error {
	switch string(text) {
	case "Mixed":
		*f = FractionFormatMixed
	case "Common":
		*f = FractionFormatCommon
	case "Decimal":
		*f = FractionFormatDecimal
	default:
		return fmt.Errorf("unknown fraction format: %q", text)
	}
	return nil
}

const (
	MinWordSize = 1
	MaxWordSize = 64

	DefaultWordSize   = 64
	DefaultDateLayout = "2006-01-02 15:04:05"
	DefaultLocale     = "en"
)

// Settings is the calculator configuration.
// The value engine only ever reads it.
type Settings struct {
	// WordSize is the bit width binary arithmetic wraps to, in [1, 64].
	WordSize       int            `yaml:"wordSize"`
	BinaryFormat   BinaryFormat   `yaml:"binaryFormat"`
	FractionFormat FractionFormat `yaml:"fractionFormat"`
	// DateLayout is the reference layout used to display date-time values.
	DateLayout string `yaml:"dateLayout"`
	// Locale selects digit grouping for display strings, e.g. "en" or "de".
	Locale string `yaml:"locale"`
}

// Default returns a fresh Settings with the default configuration.
func Default() *Settings {
	return &Settings{
		WordSize:       DefaultWordSize,
		BinaryFormat:   BinaryFormatDecimal,
		FractionFormat: FractionFormatMixed,
		DateLayout:     DefaultDateLayout,
		Locale:         DefaultLocale,
	}
}

// Validate checks the configuration for values the engine cannot honor.
func (s *Settings) Validate() error {
	if s.WordSize < MinWordSize || s.WordSize > MaxWordSize {
		return fmt.Errorf(
			"word size must be in [%d, %d], got %d",
			MinWordSize,
			MaxWordSize,
			s.WordSize,
		)
	}
	return nil
}

// Load parses settings from YAML, filling unset fields with defaults.
func Load(data []byte) (*Settings, error) {
	s := Default()
	if err := yaml.Unmarshal(data, s); err != nil {
		return nil, fmt.Errorf("cannot parse settings: %w", err)
	}
	if s.WordSize == 0 {
		s.WordSize = DefaultWordSize
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

// Marshal renders the settings as YAML.
func (s *Settings) Marshal() ([]byte, error) {
	return yaml.Marshal(s)
}
