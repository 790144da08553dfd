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

// Dynamic vector handles: Vec<T>. Grounded on
// original_source/crates/storage-interop/src/containers/vec.rs.
package storage

// Vec is a dynamically-sized sequence of elements of type T. Its
// length lives as a plain uint64 in lenSlot; its elements live in a
// data area rooted at H(lenSlot) (DataAreaSlot), the same hashed data
// area a long Bytes value uses.
//
// A shrunk Vec does not scrub the slots its old tail occupied (see
// DESIGN.md): SetLen, and WriteAll with fewer values, never zero
// trailing data, and a reader only ever trusts indices below Len.
// Push overwrites the element it appends; growing with SetLen leaves
// whatever the old tail slots still hold visible.
type Vec[T any] struct {
	codec   *Codec[T]
	lenSlot Word
}

// NewVec returns a handle whose length lives at lenSlot.
func NewVec[T any](codec *Codec[T], lenSlot Word) Vec[T] {
	return Vec[T]{codec: codec, lenSlot: lenSlot}
}

// LenSlot returns the slot holding the length word.
func (v Vec[T]) LenSlot() Word { return v.lenSlot }

// DataBase returns the first slot of the element storage area.
func (v Vec[T]) DataBase() Word { return DataAreaSlot(v.lenSlot) }

// Len reads the current element count.
func (v Vec[T]) Len(b Backend) (uint64, error) {
	w, err := b.Load(v.lenSlot)
	if err != nil {
		return 0, errRuntime(err)
	}
	return w.Uint64(), nil
}

// setLenWord writes n as the raw length word.
func (v Vec[T]) setLenWord(b Backend, n uint64) error {
	return errRuntime(b.Store(v.lenSlot, WordFromUint64(n)))
}

func (v Vec[T]) packed() bool {
	return v.codec.IsPackable() && v.codec.Bytes() <= 16
}

// elementSlot returns the element handle for index i, purely from
// arithmetic: it performs no bounds check against the current length,
// the same way Map.At never checks key existence. Callers that
// need bounds checking should go through Get/Set.
func (v Vec[T]) elementSlot(i uint64) Slot[T] {
	base := v.DataBase()
	if v.packed() {
		bsz := v.codec.Bytes()
		loc := elementLocation(int(i), bsz)
		return NewSlot(v.codec, base.Add(loc.OffsetSlots), Packed(loc.OffsetBytes))
	}
	stride := v.codec.Layout().Slots()
	return FullSlot(v.codec, base.Add(int(i)*stride))
}

// Get reads element i, reporting false without touching the data area
// when i is at or past the current length.
func (v Vec[T]) Get(b Backend, i uint64) (T, bool, error) {
	n, err := v.Len(b)
	if err != nil {
		var zero T
		return zero, false, err
	}
	if i >= n {
		var zero T
		return zero, false, nil
	}
	val, err := v.elementSlot(i).Read(b)
	return val, true, err
}

// Set writes element i, reporting false without touching the data
// area when i is at or past the current length. Use Push to grow.
func (v Vec[T]) Set(b Backend, i uint64, val T) (bool, error) {
	n, err := v.Len(b)
	if err != nil {
		return false, err
	}
	if i >= n {
		return false, nil
	}
	return true, v.elementSlot(i).Write(b, val)
}

// Push appends val and grows the length by one.
func (v Vec[T]) Push(b Backend, val T) error {
	n, err := v.Len(b)
	if err != nil {
		return err
	}
	if err := v.elementSlot(n).Write(b, val); err != nil {
		return err
	}
	return v.setLenWord(b, n+1)
}

// SetLen resizes the vector to n elements. Growing never initializes
// the newly-visible elements; shrinking never scrubs the ones made
// invisible.
func (v Vec[T]) SetLen(b Backend, n uint64) error {
	return v.setLenWord(b, n)
}

// ReadAll loads every element below the current length.
func (v Vec[T]) ReadAll(b Backend) ([]T, error) {
	n, err := v.Len(b)
	if err != nil {
		return nil, err
	}
	out := make([]T, 0, n)
	for i := uint64(0); i < n; i++ {
		val, err := v.elementSlot(i).Read(b)
		if err != nil {
			return nil, err
		}
		out = append(out, val)
	}
	return out, nil
}

// WriteAll replaces the vector's contents with values and sets the
// length accordingly.
func (v Vec[T]) WriteAll(b Backend, values []T) error {
	for i, val := range values {
		if err := v.elementSlot(uint64(i)).Write(b, val); err != nil {
			return err
		}
	}
	return v.setLenWord(b, uint64(len(values)))
}

// Delete clears the length word and every data slot the vector
// currently owns (spec invariant 8): the
// ceil(length*BYTES(T)/32) packed slots, or each live element's own
// slot(s) when unpacked.
func (v Vec[T]) Delete(b Backend) error {
	n, err := v.Len(b)
	if err != nil {
		return err
	}
	if v.packed() {
		base := v.DataBase()
		count := packedSlotCount(int(n), v.codec.Bytes())
		for i := 0; i < count; i++ {
			if err := errRuntime(b.Store(base.Add(i), ZeroWord)); err != nil {
				return err
			}
		}
	} else {
		for i := uint64(0); i < n; i++ {
			if err := v.elementSlot(i).Delete(b); err != nil {
				return err
			}
		}
	}
	return v.setLenWord(b, 0)
}
