// Copyright (C) 2026 Storage Interop Authors
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <http://www.gnu.org/licenses/>.

// Mapping handles: key -> value stores addressed by a hash of the key
// and a base slot. Grounded on
// original_source/crates/storage-interop/src/containers/mapping.rs.
package storage

// Map is a hash-addressed key/value store rooted at a base slot. Every
// entry occupies whole slot(s) of its own: a mapping never packs its
// value alongside another field, since the slot a value lives in is
// itself derived from the key and carries no other data.
type Map[K StorageKey, V any] struct {
	codec *Codec[V]
	base  Word
}

// NewMap returns a handle for values of codec rooted at base.
func NewMap[K StorageKey, V any](codec *Codec[V], base Word) Map[K, V] {
	return Map[K, V]{codec: codec, base: base}
}

// Base returns the mapping's root slot.
func (m Map[K, V]) Base() Word { return m.base }

// At returns the handle for the value stored under key. It performs
// no existence check: a key that was never written simply reads back
// as the zero value, the same as any other slot that was never
// touched.
func (m Map[K, V]) At(key K) Slot[V] {
	return FullSlot(m.codec, MappingSlot(key, m.base))
}

// AtOffset returns the handle for the value stored under key, for a
// mapping that is itself a field inside a struct rather than rooted
// directly at a top-level base slot: base is the struct field's own
// slot (its declared position), not the mapping's conceptual root.
func (m Map[K, V]) AtOffset(key K, base Word) Slot[V] {
	return FullSlot(m.codec, MappingSlot(key, base))
}

// Get reads the value stored under key.
func (m Map[K, V]) Get(b Backend, key K) (V, error) {
	return m.At(key).Read(b)
}

// Set stores val under key.
func (m Map[K, V]) Set(b Backend, key K, val V) error {
	return m.At(key).Write(b, val)
}

// Delete clears the entry stored under key.
func (m Map[K, V]) Delete(b Backend, key K) error {
	return m.At(key).Delete(b)
}
