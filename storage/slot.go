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

// Slot binds a Codec to one concrete (slot, ctx) location, the
// smallest addressable handle in this package. It is the type a
// generated struct-field accessor returns: callers never construct a
// Backend location by hand.
//
// Grounded on original_source/crates/storage-interop/src/slot.rs.
type Slot[T any] struct {
	codec *Codec[T]
	slot  Word
	ctx   Ctx
}

// NewSlot returns a handle for codec at slot under ctx.
func NewSlot[T any](codec *Codec[T], slot Word, ctx Ctx) Slot[T] {
	return Slot[T]{codec: codec, slot: slot, ctx: ctx}
}

// FullSlot returns a handle owning whole slot(s) starting at slot.
func FullSlot[T any](codec *Codec[T], slot Word) Slot[T] {
	return NewSlot(codec, slot, Full)
}

// Read loads the value through b.
func (s Slot[T]) Read(b Backend) (T, error) {
	return s.codec.Read(b, s.slot, s.ctx)
}

// Write stores v through b.
func (s Slot[T]) Write(b Backend, v T) error {
	return s.codec.Write(b, s.slot, s.ctx, v)
}

// Delete clears the value through b (the whole slot under FULL, or
// just this field's bits under a packed context).
func (s Slot[T]) Delete(b Backend) error {
	return s.codec.Delete(b, s.slot, s.ctx)
}

// Location returns the underlying slot and context, e.g. to compute a
// sibling field's address relative to this one.
func (s Slot[T]) Location() (Word, Ctx) {
	return s.slot, s.ctx
}
