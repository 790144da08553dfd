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

// The primitive codec: word<->value conversion for the closed family of
// scalar types this package supports. Grounded on
// original_source/crates/storage-interop/src/types.rs, whose
// impl_unsigned_packable!/impl_signed_packable! macros generate exactly
// the encode/decode pairs below per width.
package storage

import "encoding/binary"

// Codec binds a Layout to the encode/decode pair for one scalar Go
// type T. It is the only mechanism by which a type becomes Storable in
// this package: there is deliberately no open interface a caller could
// implement to smuggle an arbitrary type into the packed-field system.
//
// encode always produces the FULL 32-byte representation (zero- or
// sign-extended into the upper 32-BYTES bytes, per spec invariants 2
// and 3); decode always reads only the low BYTES bytes of whatever word
// it is given. This lets the same Codec serve both FULL and Packed
// contexts: extractPacked/insertPacked already isolate the right
// byte window before encode/decode ever sees the word.
type Codec[T any] struct {
	layout Layout
	encode func(T) Word
	decode func(Word) (T, error)
}

// Layout returns the compile-time layout of T.
func (c *Codec[T]) Layout() Layout { return c.layout }

// Bytes returns BYTES(T).
func (c *Codec[T]) Bytes() int { return c.layout.Bytes() }

// IsPackable returns IS_PACKABLE(T).
func (c *Codec[T]) IsPackable() bool { return c.layout.IsPackable() }

// Read loads a value of type T at slot under ctx.
func (c *Codec[T]) Read(b Backend, slot Word, ctx Ctx) (T, error) {
	var zero T
	if offset, packed := ctx.Offset(); packed {
		// Reject an out-of-range window before touching the backend at
		// all (spec invariant 9): an overflowing (offset, size) pair is
		// a static layout error, not something a backend read decides.
		if _, err := packedWindow(offset, c.Bytes()); err != nil {
			return zero, err
		}
		w, err := b.Load(slot)
		if err != nil {
			return zero, errRuntime(err)
		}
		field, err := extractPacked(w, offset, c.Bytes())
		if err != nil {
			return zero, err
		}
		return c.decode(field)
	}
	w, err := b.Load(slot)
	if err != nil {
		return zero, errRuntime(err)
	}
	return c.decode(w)
}

// Write stores v at slot under ctx.
func (c *Codec[T]) Write(b Backend, slot Word, ctx Ctx, v T) error {
	if offset, packed := ctx.Offset(); packed {
		if _, err := packedWindow(offset, c.Bytes()); err != nil {
			return err
		}
		current, err := b.Load(slot)
		if err != nil {
			return errRuntime(err)
		}
		updated, err := insertPacked(current, c.encode(v), offset, c.Bytes())
		if err != nil {
			return err
		}
		return errRuntime(b.Store(slot, updated))
	}
	return errRuntime(b.Store(slot, c.encode(v)))
}

// Delete clears exactly the bits this value owns: the whole slot under
// FULL, or just the packed window under Packed(offset) (spec
// invariant 8).
func (c *Codec[T]) Delete(b Backend, slot Word, ctx Ctx) error {
	if offset, packed := ctx.Offset(); packed {
		if _, err := packedWindow(offset, c.Bytes()); err != nil {
			return err
		}
		current, err := b.Load(slot)
		if err != nil {
			return errRuntime(err)
		}
		cleared, err := zeroPacked(current, offset, c.Bytes())
		if err != nil {
			return err
		}
		return errRuntime(b.Store(slot, cleared))
	}
	return errRuntime(b.Store(slot, ZeroWord))
}

func zeroExtend(dst []byte) Word {
	var w Word
	copy(w[32-len(dst):], dst)
	return w
}

func signExtend(dst []byte, negative bool) Word {
	var w Word
	fill := byte(0)
	if negative {
		fill = 0xff
		for i := range w {
			w[i] = fill
		}
	}
	copy(w[32-len(dst):], dst)
	return w
}

// Bool is the codec for bool, Bytes(1): 0 -> false, 1 -> true, anything
// else decodes to InvalidBoolError.
var Bool = Codec[bool]{
	layout: BytesLayout(1),
	encode: func(v bool) Word {
		if v {
			return zeroExtend([]byte{1})
		}
		return ZeroWord
	},
	decode: func(w Word) (bool, error) {
		switch w[31] {
		case 0:
			return false, nil
		case 1:
			return true, nil
		default:
			return false, &InvalidBoolError{Value: w[31]}
		}
	},
}

// Uint8 is the codec for uint8, Bytes(1).
var Uint8 = Codec[uint8]{
	layout: BytesLayout(1),
	encode: func(v uint8) Word { return zeroExtend([]byte{v}) },
	decode: func(w Word) (uint8, error) { return w[31], nil },
}

// Uint16 is the codec for uint16, Bytes(2).
var Uint16 = Codec[uint16]{
	layout: BytesLayout(2),
	encode: func(v uint16) Word {
		b := make([]byte, 2)
		binary.BigEndian.PutUint16(b, v)
		return zeroExtend(b)
	},
	decode: func(w Word) (uint16, error) { return binary.BigEndian.Uint16(w[30:32]), nil },
}

// Uint32 is the codec for uint32, Bytes(4).
var Uint32 = Codec[uint32]{
	layout: BytesLayout(4),
	encode: func(v uint32) Word {
		b := make([]byte, 4)
		binary.BigEndian.PutUint32(b, v)
		return zeroExtend(b)
	},
	decode: func(w Word) (uint32, error) { return binary.BigEndian.Uint32(w[28:32]), nil },
}

// Uint64 is the codec for uint64, Bytes(8).
var Uint64 = Codec[uint64]{
	layout: BytesLayout(8),
	encode: func(v uint64) Word {
		b := make([]byte, 8)
		binary.BigEndian.PutUint64(b, v)
		return zeroExtend(b)
	},
	decode: func(w Word) (uint64, error) { return binary.BigEndian.Uint64(w[24:32]), nil },
}

// Uint128 is a 128-bit unsigned integer split into high and low 64-bit
// halves, since Go has no native type of this width.
type Uint128 struct {
	Hi, Lo uint64
}

// UintCodec is the codec for Uint128, Bytes(16).
var UintCodec = Codec[Uint128]{
	layout: BytesLayout(16),
	encode: func(v Uint128) Word {
		b := make([]byte, 16)
		binary.BigEndian.PutUint64(b[:8], v.Hi)
		binary.BigEndian.PutUint64(b[8:], v.Lo)
		return zeroExtend(b)
	},
	decode: func(w Word) (Uint128, error) {
		return Uint128{
			Hi: binary.BigEndian.Uint64(w[16:24]),
			Lo: binary.BigEndian.Uint64(w[24:32]),
		}, nil
	},
}

// Uint256 is the codec for Word itself, Bytes(32), the identity
// mapping: Word already is the canonical 256-bit unsigned representation.
var Uint256 = Codec[Word]{
	layout: BytesLayout(32),
	encode: func(v Word) Word { return v },
	decode: func(w Word) (Word, error) { return w, nil },
}

// Int8 is the codec for int8, Bytes(1), sign-extended into the upper 31
// bytes of the word when written FULL (spec invariant 3).
var Int8 = Codec[int8]{
	layout: BytesLayout(1),
	encode: func(v int8) Word { return signExtend([]byte{byte(v)}, v < 0) },
	decode: func(w Word) (int8, error) { return int8(w[31]), nil },
}

// Int16 is the codec for int16, Bytes(2).
var Int16 = Codec[int16]{
	layout: BytesLayout(2),
	encode: func(v int16) Word {
		b := make([]byte, 2)
		binary.BigEndian.PutUint16(b, uint16(v))
		return signExtend(b, v < 0)
	},
	decode: func(w Word) (int16, error) { return int16(binary.BigEndian.Uint16(w[30:32])), nil },
}

// Int32 is the codec for int32, Bytes(4).
var Int32 = Codec[int32]{
	layout: BytesLayout(4),
	encode: func(v int32) Word {
		b := make([]byte, 4)
		binary.BigEndian.PutUint32(b, uint32(v))
		return signExtend(b, v < 0)
	},
	decode: func(w Word) (int32, error) { return int32(binary.BigEndian.Uint32(w[28:32])), nil },
}

// Int64 is the codec for int64, Bytes(8).
var Int64 = Codec[int64]{
	layout: BytesLayout(8),
	encode: func(v int64) Word {
		b := make([]byte, 8)
		binary.BigEndian.PutUint64(b, uint64(v))
		return signExtend(b, v < 0)
	},
	decode: func(w Word) (int64, error) { return int64(binary.BigEndian.Uint64(w[24:32])), nil },
}

// Int128 is a 128-bit signed integer in two's complement, split into a
// signed high 64-bit half and an unsigned low 64-bit half.
type Int128 struct {
	Hi int64
	Lo uint64
}

// IntCodec is the codec for Int128, Bytes(16).
var IntCodec = Codec[Int128]{
	layout: BytesLayout(16),
	encode: func(v Int128) Word {
		b := make([]byte, 16)
		binary.BigEndian.PutUint64(b[:8], uint64(v.Hi))
		binary.BigEndian.PutUint64(b[8:], v.Lo)
		return signExtend(b, v.Hi < 0)
	},
	decode: func(w Word) (Int128, error) {
		return Int128{
			Hi: int64(binary.BigEndian.Uint64(w[16:24])),
			Lo: binary.BigEndian.Uint64(w[24:32]),
		}, nil
	},
}

// AddressCodec is the codec for Address, Bytes(20), big-endian in the
// low 20 bytes of the word.
var AddressCodec = Codec[Address]{
	layout: BytesLayout(20),
	encode: func(v Address) Word { return zeroExtend(v[:]) },
	decode: func(w Word) (Address, error) {
		var a Address
		copy(a[:], w[12:32])
		return a, nil
	},
}
