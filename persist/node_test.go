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

package persist

import (
	"math/big"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/calc48/calc48/settings"
	"github.com/calc48/calc48/values"
)

func sampleValues(t *testing.T) []values.Value {
	t.Helper()
	fraction, err := values.NewFractionValue(big.NewInt(-5), big.NewInt(2))
	require.NoError(t, err)

	return []values.Value{
		values.NewBinaryValue(255),
		values.NewIntValueFromInt64(-42),
		fraction,
		values.NewDoubleValue(1.5),
		values.NewComplexValue(3 + 4i),
		values.NewTimeSpanValue(90 * time.Minute),
		values.NewDateTimeValue(
			time.Date(2024, 6, 1, 10, 30, 0, 0, time.UTC),
		),
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {

	st := settings.Default()

	for _, sample := range sampleValues(t) {
		t.Run(sample.Type().String(), func(t *testing.T) {
			node := MapNode{}
			Save(sample, node)

			assert.Equal(t, sample.Type().String(), node[TypeKey])
			assert.Equal(t, sample.Entry(), node[EntryKey])

			loaded, ok := Load(node, st)
			require.True(t, ok)
			assert.True(t, loaded.Equal(sample))
		})
	}
}

func TestSaveNilClearsTheNode(t *testing.T) {

	node := MapNode{}
	Save(values.NewIntValueFromInt64(1), node)
	Save(nil, node)

	assert.Equal(t, "", node[TypeKey])
	assert.Equal(t, "", node[EntryKey])

	_, ok := Load(node, settings.Default())
	assert.False(t, ok)
}

func TestLoadToleratesCorruptNodes(t *testing.T) {

	st := settings.Default()

	t.Run("empty node", func(t *testing.T) {
		_, ok := Load(MapNode{}, st)
		assert.False(t, ok)
	})

	t.Run("unknown type tag", func(t *testing.T) {
		node := MapNode{
			TypeKey:  "Quaternion",
			EntryKey: "1",
		}
		_, ok := Load(node, st)
		assert.False(t, ok)
	})

	t.Run("unparseable entry", func(t *testing.T) {
		node := MapNode{
			TypeKey:  "Integer",
			EntryKey: "not an integer",
		}
		_, ok := Load(node, st)
		assert.False(t, ok)
	})
}

func TestLoadIsDisplayIndependent(t *testing.T) {

	// saving under one display configuration and loading under another
	// must not change the value
	node := MapNode{}
	Save(values.NewBinaryValue(255), node)

	st := settings.Default()
	st.BinaryFormat = settings.BinaryFormatHex
	st.WordSize = 8

	loaded, ok := Load(node, st)
	require.True(t, ok)
	assert.True(t, loaded.Equal(values.NewBinaryValue(255)))
}
