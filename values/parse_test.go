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
	"math/big"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/calc48/calc48/settings"
)

func TestTryParseEntryRoundTrip(t *testing.T) {

	st := settings.Default()

	fiveHalves, err := NewFractionValue(big.NewInt(-5), big.NewInt(2))
	require.NoError(t, err)

	samples := []Value{
		NewBinaryValue(255),
		NewIntValueFromInt64(-42),
		fiveHalves,
		NewDoubleValue(1.5),
		NewComplexValue(3 + 4i),
		NewTimeSpanValue(90 * time.Minute),
		NewDateTimeValue(time.Date(2024, 6, 1, 10, 30, 0, 0, time.UTC)),
	}

	for _, sample := range samples {
		t.Run(sample.Type().String(), func(t *testing.T) {
			parsed, err := TryParse(sample.Type(), sample.Entry(), st)
			require.NoError(t, err)
			assert.True(t, parsed.Equal(sample))
		})
	}
}

func TestTryParseEntryIsDisplayIndependent(t *testing.T) {

	// the entry text must parse identically under any display settings
	st := settings.Default()
	st.BinaryFormat = settings.BinaryFormatHex
	st.FractionFormat = settings.FractionFormatDecimal

	v := NewBinaryValue(255)
	parsed, err := TryParse(ValueTypeBinary, v.Entry(), st)
	require.NoError(t, err)
	assert.True(t, parsed.Equal(v))
}

func TestTryParseReportsParseError(t *testing.T) {

	st := settings.Default()

	for _, valueType := range ValueTypes() {
		t.Run(valueType.String(), func(t *testing.T) {
			_, err := TryParse(valueType, "certainly not a value", st)

			var parseError *ParseError
			require.ErrorAs(t, err, &parseError)
			assert.Equal(t, valueType, parseError.Type)
			assert.Equal(t, "certainly not a value", parseError.Text)
		})
	}
}

func TestTryParseUnknownTag(t *testing.T) {

	_, err := TryParse(ValueTypeUnknown, "1", settings.Default())

	var parseError *ParseError
	require.ErrorAs(t, err, &parseError)
}
