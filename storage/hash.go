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

// Key derivation: canonical hashing of composite keys for mappings and
// the data area of dynamic containers. Grounded on
// original_source/crates/storage-interop/src/storage.rs
// (StorageKey::mapping_slot) for the buffer layout, and on the
// teacher's own golang.org/x/crypto/blake2b usage (fsenv.go,
// ion/blockfmt/index.go) for which hash to reach for and how to call
// it in this codebase.
package storage

import "golang.org/x/crypto/blake2b"

// H is the single 256-bit cryptographic hash this package uses to
// derive hashed slots, the same role keccak256 plays for the reference
// high-level language on an EVM-shaped target. The exact function is a
// property of the target VM rather than of this package; this is the
// only instance this repository ships.
func H(data []byte) Word {
	return blake2b.Sum256(data)
}

// StorageKey is implemented by every type that can be used as a mapping
// key. AsStorageBytes returns its canonical big-endian encoding, used
// unpadded (the mapping slot derivation pads it to a 32-byte multiple).
type StorageKey interface {
	AsStorageBytes() []byte
}

// AsStorageBytes implements StorageKey for a 20-byte account identifier.
func (a Address) AsStorageBytes() []byte {
	b := make([]byte, 20)
	copy(b, a[:])
	return b
}

// AsStorageBytes implements StorageKey for a 256-bit word key.
func (w Word) AsStorageBytes() []byte {
	b := make([]byte, 32)
	copy(b, w[:])
	return b
}

// Hash32 is a fixed-size 256-bit hash value usable as a mapping key in
// its own right (e.g. a content hash used to index a struct by its
// digest).
type Hash32 [32]byte

// AsStorageBytes implements StorageKey for Hash32.
func (h Hash32) AsStorageBytes() []byte {
	b := make([]byte, 32)
	copy(b, h[:])
	return b
}

// MappingSlot computes the slot of a mapping entry with key k rooted at
// base, per spec invariant 5: hash(pad32_left(k_bytes) || be32(base)).
func MappingSlot(k StorageKey, base Word) Word {
	keyBytes := k.AsStorageBytes()
	padded := ((len(keyBytes) + 31) / 32) * 32
	if padded == 0 {
		padded = 32
	}
	buf := make([]byte, padded+32)
	copy(buf[padded-len(keyBytes):padded], keyBytes)
	copy(buf[padded:], base[:])
	return H(buf)
}

// DataAreaSlot computes the first slot of a dynamic container's element
// storage given its length slot, per spec invariant 7: H(be32(lenSlot)).
func DataAreaSlot(lenSlot Word) Word {
	return H(lenSlot[:])
}
