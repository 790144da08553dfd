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

// Package storage is a typed storage-layout engine for a 256-bit-word
// addressed virtual machine.
//
// Given a declared data model (primitives, fixed arrays, dynamic
// vectors, byte strings, mappings) it computes slot addresses and byte
// offsets, encodes and decodes values, and drives a pluggable
// word-addressed Backend. It reproduces, bit-for-bit, the slot layout,
// packing, hashing and length-encoding rules that a high-level
// contract language emits for this class of VM, so that data written
// through this package is interoperable with any other actor touching
// the same address space.
//
// The package does not interpret or execute bytecode, validate
// signatures, or provide a general relational store: it is purely the
// arithmetic and codec layer between typed Go values and 32-byte words.
package storage
