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

// Byte-string handles: short values stored inline, long values spilled
// into a hashed data area. Grounded on
// original_source/crates/storage-interop/src/containers/bytestring.rs.
package storage

import "unicode/utf8"

// Bytes is a variable-length byte string rooted at a single base slot.
//
// A value of 31 bytes or fewer is stored entirely in the base slot:
// the payload occupies the high-order bytes starting at byte 0, and
// the low-order byte holds len*2 (always even, so its least
// significant bit is 0).
//
// A value of 32 bytes or more is stored long: the base slot holds
// len*2+1 as a plain integer (odd, so its least significant bit is
// 1), and the payload lives packed 32 bytes to a slot starting at
// H(base), the same hashed data area a Vec uses.
type Bytes struct {
	base Word
}

// NewBytes returns a handle rooted at base.
func NewBytes(base Word) Bytes { return Bytes{base: base} }

// Base returns the root slot.
func (h Bytes) Base() Word { return h.base }

func dataSlots(n int) int { return (n + 31) / 32 }

// Read loads the full byte string.
func (h Bytes) Read(b Backend) ([]byte, error) {
	w, err := b.Load(h.base)
	if err != nil {
		return nil, errRuntime(err)
	}
	if !w.Bit0() {
		n := int(w[31] / 2)
		out := make([]byte, n)
		copy(out, w[0:n])
		return out, nil
	}
	n := int(w.Uint64() >> 1)
	base := DataAreaSlot(h.base)
	out := make([]byte, 0, n)
	for i := 0; i < dataSlots(n); i++ {
		sw, err := b.Load(base.Add(i))
		if err != nil {
			return nil, errRuntime(err)
		}
		take := n - len(out)
		if take > 32 {
			take = 32
		}
		out = append(out, sw[:take]...)
	}
	return out, nil
}

// Write stores data, choosing the short or long encoding by its
// length.
func (h Bytes) Write(b Backend, data []byte) error {
	n := len(data)
	if n <= 31 {
		var w Word
		copy(w[0:n], data)
		w[31] = byte(n * 2)
		return errRuntime(b.Store(h.base, w))
	}
	marker := WordFromUint64(uint64(n)*2 + 1)
	if err := b.Store(h.base, marker); err != nil {
		return errRuntime(err)
	}
	base := DataAreaSlot(h.base)
	for i := 0; i < dataSlots(n); i++ {
		var w Word
		start, end := i*32, i*32+32
		if end > n {
			end = n
		}
		copy(w[:], data[start:end])
		if err := b.Store(base.Add(i), w); err != nil {
			return errRuntime(err)
		}
	}
	return nil
}

// Delete clears the base slot and, for a long-encoded value, every
// data slot it owns (spec invariant 8).
func (h Bytes) Delete(b Backend) error {
	w, err := b.Load(h.base)
	if err != nil {
		return errRuntime(err)
	}
	if w.Bit0() {
		n := int(w.Uint64() >> 1)
		base := DataAreaSlot(h.base)
		for i := 0; i < dataSlots(n); i++ {
			if err := errRuntime(b.Store(base.Add(i), ZeroWord)); err != nil {
				return err
			}
		}
	}
	return errRuntime(b.Store(h.base, ZeroWord))
}

// Text is a Bytes value additionally interpreted as UTF-8 on read.
type Text struct {
	inner Bytes
}

// NewText returns a handle rooted at base.
func NewText(base Word) Text { return Text{inner: NewBytes(base)} }

// Base returns the root slot.
func (h Text) Base() Word { return h.inner.base }

// Read loads the string and validates it as UTF-8, returning
// InvalidUTF8Error if the stored bytes are not well-formed.
func (h Text) Read(b Backend) (string, error) {
	raw, err := h.inner.Read(b)
	if err != nil {
		return "", err
	}
	if !utf8.Valid(raw) {
		return "", &InvalidUTF8Error{}
	}
	return string(raw), nil
}

// Write stores s as its UTF-8 byte encoding.
func (h Text) Write(b Backend, s string) error {
	return h.inner.Write(b, []byte(s))
}

// Delete clears the underlying byte string.
func (h Text) Delete(b Backend) error {
	return h.inner.Delete(b)
}
