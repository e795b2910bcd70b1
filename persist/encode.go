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
	"fmt"

	"github.com/fxamacker/cbor/v2"

	"github.com/calc48/calc48/settings"
	"github.com/calc48/calc48/values"
)

// Stack snapshots encode an ordered sequence of values as CBOR,
// each value as its (type-tag, entry-text) pair.

// !!! *WARNING* !!!
//
// Only add new fields to stackEntry by
// appending new fields with the next highest key.
//
// DO *NOT* REPLACE EXISTING FIELDS!

type stackEntry struct {
	Type  string `cbor:"1,keyasint"`
	Entry string `cbor:"2,keyasint"`
}

var encMode = func() cbor.EncMode {
	options := cbor.CanonicalEncOptions()
	encMode, err := options.EncMode()
	if err != nil {
		panic(err)
	}
	return encMode
}()

var decMode = func() cbor.DecMode {
	options := cbor.DecOptions{}
	decMode, err := options.DecMode()
	if err != nil {
		panic(err)
	}
	return decMode
}()

// EncodeStack encodes a stack of values, bottom first.
// Nil stack slots are rejected.
func EncodeStack(stack []values.Value) ([]byte, error) {
	entries := make([]stackEntry, 0, len(stack))
	for i, v := range stack {
		if v == nil {
			return nil, fmt.Errorf("cannot encode nil value at stack position %d", i)
		}
		entries = append(
			entries,
			stackEntry{
				Type:  v.Type().String(),
				Entry: v.Entry(),
			},
		)
	}
	return encMode.Marshal(entries)
}

// DecodeStack decodes a stack snapshot.
// Entries with an unrecognized tag or unparseable text are skipped,
// mirroring Load's "no value" behavior.
func DecodeStack(data []byte, st *settings.Settings) ([]values.Value, error) {
	var entries []stackEntry
	if err := decMode.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("cannot decode stack snapshot: %w", err)
	}

	stack := make([]values.Value, 0, len(entries))
	for _, entry := range entries {
		valueType, ok := values.ValueTypeFromString(entry.Type)
		if !ok {
			continue
		}
		v, err := values.TryParse(valueType, entry.Entry, st)
		if err != nil {
			continue
		}
		stack = append(stack, v)
	}
	return stack, nil
}
