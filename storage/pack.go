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

// Packing arithmetic: position, mask, insert, extract and zero
// sub-32-byte values within a single word. Grounded on
// original_source/crates/storage-interop/src/packing.rs, reimplemented
// over math/big since Go has no native 256-bit integer type and no
// third-party one appears anywhere in the retrieved example pack.
package storage

import "math/big"

var one = big.NewInt(1)

// mask returns (1<<(8*b))-1 as a big.Int, or all-ones for b>=32.
func mask(b int) *big.Int {
	if b >= 32 {
		b = 32
	}
	m := new(big.Int).Lsh(one, uint(8*b))
	return m.Sub(m, one)
}

func wordToBig(w Word) *big.Int {
	return new(big.Int).SetBytes(w[:])
}

func bigToWord(v *big.Int) Word {
	var w Word
	v.FillBytes(w[:])
	return w
}

// packedWindow validates that the b-byte window at byte offset o fits
// within a single 32-byte word, without reading or writing anything.
// Callers use this to reject an overflowing (offset, size) pair before
// ever touching a Backend (spec invariant 9).
func packedWindow(o, b int) (int, error) {
	if o+b > 32 {
		return 0, errOverflow(o, b)
	}
	return o, nil
}

// extractPacked reads the b-byte field at byte offset o (from the
// least-significant byte) out of w.
func extractPacked(w Word, o, b int) (Word, error) {
	if o+b > 32 {
		return Word{}, errOverflow(o, b)
	}
	v := wordToBig(w)
	v.Rsh(v, uint(8*o))
	v.And(v, mask(b))
	return bigToWord(v), nil
}

// insertPacked returns w with its b-byte field at byte offset o replaced
// by the low b bytes of field; all other bits of w are preserved.
func insertPacked(w Word, field Word, o, b int) (Word, error) {
	if o+b > 32 {
		return Word{}, errOverflow(o, b)
	}
	m := mask(b)
	current := wordToBig(w)
	f := new(big.Int).And(wordToBig(field), m)

	shiftedMask := new(big.Int).Lsh(m, uint(8*o))
	cleared := new(big.Int).AndNot(current, shiftedMask)

	positioned := new(big.Int).Lsh(f, uint(8*o))
	result := cleared.Or(cleared, positioned)
	return bigToWord(result), nil
}

// zeroPacked returns w with the b-byte window at byte offset o cleared
// to zero; all other bits are preserved.
func zeroPacked(w Word, o, b int) (Word, error) {
	if o+b > 32 {
		return Word{}, errOverflow(o, b)
	}
	shiftedMask := new(big.Int).Lsh(mask(b), uint(8*o))
	current := wordToBig(w)
	return bigToWord(current.AndNot(current, shiftedMask)), nil
}

// elementSlot returns the slot index, relative to a packed composite's
// base, that holds element i of a packable type of size b bytes.
func elementSlot(i, b int) int {
	return (i * b) / 32
}

// elementOffset returns the byte offset within that slot.
func elementOffset(i, b int) int {
	return (i * b) % 32
}

// elementLocation returns the full FieldLocation for element i.
func elementLocation(i, b int) FieldLocation {
	return FieldLocation{
		OffsetSlots: elementSlot(i, b),
		OffsetBytes: elementOffset(i, b),
		Size:        b,
	}
}

// packedSlotCount returns the number of whole slots needed to hold n
// consecutive packable elements of b bytes each.
func packedSlotCount(n, b int) int {
	total := n * b
	return (total + 31) / 32
}
