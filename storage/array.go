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

// Fixed-size array handles: [T; N]. Grounded on
// original_source/crates/storage-interop/src/containers/array.rs.
package storage

// Array is a fixed-length, statically-sized sequence of N elements of
// type T rooted at a base slot. Unlike Vec it carries no length word:
// N is compile-time and every index in [0, N) is always addressable.
//
// When BYTES(T) <= 16 the elements are packed, several to a slot, the
// same way a struct packs adjacent small fields; otherwise each
// element owns SLOTS(T) whole slot(s) of its own.
type Array[T any] struct {
	codec *Codec[T]
	base  Word
	n     int
}

// NewArray returns a handle for n elements of codec rooted at base.
func NewArray[T any](codec *Codec[T], base Word, n int) Array[T] {
	return Array[T]{codec: codec, base: base, n: n}
}

// Len returns N.
func (a Array[T]) Len() int { return a.n }

// packed reports whether elements share slots, per the <=16-byte rule
// (stricter than the general IS_PACKABLE(T)<32 threshold: an array
// only packs elements that can fit at least two per slot well within
// the boundary, matching the reference container layout).
func (a Array[T]) packed() bool {
	return a.codec.IsPackable() && a.codec.Bytes() <= 16
}

// At returns the element handle for index i, and true if i is in
// range. Out-of-range indices are absent, not an error: no slot
// address exists to hand back, so callers must check ok before using
// the zero-valued Slot.
func (a Array[T]) At(i int) (Slot[T], bool) {
	if i < 0 || i >= a.n {
		return Slot[T]{}, false
	}
	if a.packed() {
		b := a.codec.Bytes()
		loc := elementLocation(i, b)
		return NewSlot(a.codec, a.base.Add(loc.OffsetSlots), Packed(loc.OffsetBytes)), true
	}
	stride := a.codec.Layout().Slots()
	return FullSlot(a.codec, a.base.Add(i*stride)), true
}

// Get reads element i. It returns the zero value and false when i is
// out of range, without touching the backend.
func (a Array[T]) Get(b Backend, i int) (T, bool, error) {
	s, ok := a.At(i)
	if !ok {
		var zero T
		return zero, false, nil
	}
	v, err := s.Read(b)
	return v, true, err
}

// Set writes element i. It is a no-op reporting false when i is out
// of range.
func (a Array[T]) Set(b Backend, i int, v T) (bool, error) {
	s, ok := a.At(i)
	if !ok {
		return false, nil
	}
	return true, s.Write(b, v)
}

// ReadAll loads every element into a slice of length N.
func (a Array[T]) ReadAll(b Backend) ([]T, error) {
	out := make([]T, a.n)
	for i := 0; i < a.n; i++ {
		v, _, err := a.Get(b, i)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

// WriteAll stores values[0:N] into the array. It panics if
// len(values) != N, the same contract a Go array literal enforces.
func (a Array[T]) WriteAll(b Backend, values []T) error {
	if len(values) != a.n {
		panic("storage: Array.WriteAll requires exactly Len() values")
	}
	for i, v := range values {
		if _, err := a.Set(b, i, v); err != nil {
			return err
		}
	}
	return nil
}

// Delete clears every element's slot(s) to zero.
func (a Array[T]) Delete(b Backend) error {
	for i := 0; i < a.n; i++ {
		s, _ := a.At(i)
		if err := s.Delete(b); err != nil {
			return err
		}
	}
	return nil
}

// SlotCount returns the number of whole slots this array occupies.
func (a Array[T]) SlotCount() int {
	if a.packed() {
		return packedSlotCount(a.n, a.codec.Bytes())
	}
	return a.n * a.codec.Layout().Slots()
}
