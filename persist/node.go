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

// Package persist serializes values as (type-tag, entry-text) pairs
// into abstract key-value nodes.
package persist

import (
	"github.com/calc48/calc48/settings"
	"github.com/calc48/calc48/values"
)

// Node is an abstract key-to-text mapping supplied by the host,
// e.g. a configuration tree node.
type Node interface {
	GetValue(key, def string) string
	SetValue(key, value string)
}

const (
	// TypeKey holds the value's type tag.
	TypeKey = "ValueType"
	// EntryKey holds the value's lossless entry text.
	EntryKey = "ValueEntry"
)

// Save writes a value into the node as a (type-tag, entry-text) pair.
// A nil value clears both keys.
func Save(v values.Value, node Node) {
	if v == nil {
		node.SetValue(TypeKey, "")
		node.SetValue(EntryKey, "")
		return
	}
	node.SetValue(TypeKey, v.Type().String())
	node.SetValue(EntryKey, v.Entry())
}

// Load reads a value back from a node.
//
// A missing or unrecognized type tag, or entry text that fails to parse
// under that tag, yields no value. Callers must treat that as "no value
// stored", not as a fatal error.
func Load(node Node, st *settings.Settings) (values.Value, bool) {
	tag := node.GetValue(TypeKey, "")
	valueType, ok := values.ValueTypeFromString(tag)
	if !ok {
		return nil, false
	}

	entry := node.GetValue(EntryKey, "")
	v, err := values.TryParse(valueType, entry, st)
	if err != nil {
		return nil, false
	}
	return v, true
}

// MapNode is an in-memory Node.
type MapNode map[string]string

var _ Node = MapNode{}

func (n MapNode) GetValue(key, def string) string {
	if value, ok := n[key]; ok {
		return value
	}
	return def
}

func (n MapNode) SetValue(key, value string) {
	n[key] = value
}
