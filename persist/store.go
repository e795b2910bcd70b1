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

	badger "github.com/dgraph-io/badger/v4"
	"github.com/vmihailenco/msgpack/v5"
)

// Store is a durable collection of persistence nodes backed by badger.
// Each node is one msgpack-encoded record of its key-to-text mapping.
type Store struct {
	db *badger.DB
}

// OpenStore opens (or creates) a store at the given directory.
func OpenStore(dir string) (*Store, error) {
	db, err := badger.Open(badger.DefaultOptions(dir).WithLogger(nil))
	if err != nil {
		return nil, fmt.Errorf("cannot open store at %s: %w", dir, err)
	}
	return &Store{db: db}, nil
}

// OpenInMemoryStore opens a store that lives only in memory,
// mainly for tests.
func OpenInMemoryStore() (*Store, error) {
	db, err := badger.Open(
		badger.DefaultOptions("").WithInMemory(true).WithLogger(nil),
	)
	if err != nil {
		return nil, fmt.Errorf("cannot open in-memory store: %w", err)
	}
	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// Node loads the node with the given key,
// returning an empty node if none is stored yet.
func (s *Store) Node(key string) (*StoreNode, error) {
	node := &StoreNode{
		store:  s,
		key:    key,
		values: map[string]string{},
	}

	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(key))
		if err == badger.ErrKeyNotFound {
			return nil
		}
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			return msgpack.Unmarshal(val, &node.values)
		})
	})
	if err != nil {
		return nil, fmt.Errorf("cannot load node %q: %w", key, err)
	}

	return node, nil
}

// StoreNode is a Node whose contents live in a Store.
// Mutations are buffered until Flush.
type StoreNode struct {
	store  *Store
	key    string
	values map[string]string
}

var _ Node = &StoreNode{}

func (n *StoreNode) GetValue(key, def string) string {
	if value, ok := n.values[key]; ok {
		return value
	}
	return def
}

func (n *StoreNode) SetValue(key, value string) {
	n.values[key] = value
}

// Flush writes the node's contents back to the store.
func (n *StoreNode) Flush() error {
	data, err := msgpack.Marshal(n.values)
	if err != nil {
		return fmt.Errorf("cannot encode node %q: %w", n.key, err)
	}

	err = n.store.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(n.key), data)
	})
	if err != nil {
		return fmt.Errorf("cannot write node %q: %w", n.key, err)
	}
	return nil
}
