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

package storage

// Backend is the only abstraction point the layout engine depends on:
// a fallible word-addressed load/store pair. The same shape serves
// persistent storage, transient storage, and the in-process
// PackedSlotBackend below — the layout engine cannot tell them apart.
//
// Grounded on original_source/crates/storage-interop/src/storage.rs
// (StorageOps).
type Backend interface {
	Load(slot Word) (Word, error)
	Store(slot Word, value Word) error
}

// PackedSlotBackend is a single mutable word held in memory, addressed
// under any slot value. It can assemble or disassemble one packed slot
// without touching a real backend: write each field at its offset into
// a fresh PackedSlotBackend, then store the resulting word once, and
// decode in reverse. Array and Vec do not use it; they read and write
// each packed element through the real backend with one load (and,
// for a write, one store) per element.
//
// Grounded on original_source/.../packing.rs (PackedSlot).
type PackedSlotBackend struct {
	Word Word
}

// Load returns the held word regardless of slot.
func (p *PackedSlotBackend) Load(Word) (Word, error) {
	return p.Word, nil
}

// Store replaces the held word regardless of slot.
func (p *PackedSlotBackend) Store(_ Word, value Word) error {
	p.Word = value
	return nil
}
