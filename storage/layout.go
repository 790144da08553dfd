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

// Layout describes the compile-time storage footprint of a type: it is
// either Bytes(n), a single packable sub-word field of n bytes
// (1 <= n <= 32), or Slots(k), k whole 32-byte slots that can never be
// packed alongside another field.
//
// Only the closed family of scalar primitives in primitives.go carries
// a Layout, and only they ever report Bytes(n<32). The container
// handles (Array, Vec, Bytes, Text, Map) have no Layout of their own
// and are never packed; Array.SlotCount gives an array's slot
// footprint. This is deliberate: keeping
// "packable" a property of a sealed primitive set, rather than an open
// trait any type could opt into, is what makes the bit-exact contracts
// in this package's invariants impossible to violate from outside it.
type Layout struct {
	bytes    int
	isSlots  bool
	slotsVal int
}

// BytesLayout returns the layout of a single-slot value occupying n
// bytes, 1 <= n <= 32. It is packable when n < 32.
func BytesLayout(n int) Layout {
	if n < 1 || n > 32 {
		panic("storage: BytesLayout requires 1 <= n <= 32")
	}
	return Layout{bytes: n}
}

// SlotsLayout returns the layout of a value occupying k whole slots,
// k >= 1. Slots layouts are never packable.
func SlotsLayout(k int) Layout {
	if k < 1 {
		panic("storage: SlotsLayout requires k >= 1")
	}
	return Layout{isSlots: true, slotsVal: k}
}

// Slots is the number of whole 32-byte slots the layout occupies: 1 for
// a Bytes layout, k for a Slots(k) layout.
func (l Layout) Slots() int {
	if l.isSlots {
		return l.slotsVal
	}
	return 1
}

// Bytes is the number of bytes the layout occupies: n for Bytes(n),
// 32*k for Slots(k).
func (l Layout) Bytes() int {
	if l.isSlots {
		return 32 * l.slotsVal
	}
	return l.bytes
}

// IsPackable reports whether a value of this layout can share a slot
// with other packable fields, i.e. whether it is Bytes(n) with n < 32.
// Slots layouts, and a full Bytes(32) value, are never packable.
func (l Layout) IsPackable() bool {
	return !l.isSlots && l.bytes < 32
}

// Ctx locates a value of a packable layout within the slot space: FULL
// for a value occupying whole slot(s) starting at its base slot, or a
// packed offset for a sub-word field sharing a slot with others.
type Ctx struct {
	// packedOffset holds the byte offset for a packed context, or -1
	// to mean FULL.
	packedOffset int
}

// Full is the context of a value that owns whole slot(s) starting at
// its base slot.
var Full = Ctx{packedOffset: -1}

// Packed returns the context of a value sharing a slot with other
// packed fields, starting at byte offset, counted from the
// least-significant byte of the 256-bit word (offset 0 is the low
// byte), matching the target VM's own shift-based packing.
func Packed(offset int) Ctx {
	if offset < 0 || offset >= 32 {
		panic("storage: Packed offset must be in [0, 32)")
	}
	return Ctx{packedOffset: offset}
}

// IsFull reports whether c is the FULL context.
func (c Ctx) IsFull() bool {
	return c.packedOffset < 0
}

// Offset returns the packed byte offset and true, or (0, false) if c is
// FULL.
func (c Ctx) Offset() (int, bool) {
	if c.packedOffset < 0 {
		return 0, false
	}
	return c.packedOffset, true
}

// FieldLocation locates a packed field within a composite: the slot it
// lives in (relative to some base), the byte offset within that slot,
// and its size in bytes.
type FieldLocation struct {
	OffsetSlots int
	OffsetBytes int
	Size        int
}
