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

package compr

import (
	"bytes"
	"testing"
)

func TestCompressBytesRoundTrip(t *testing.T) {
	for _, algo := range []string{"zstd", "zstd-better", "s2"} {
		payload := bytes.Repeat([]byte("snapshot record payload, "), 200)
		compressed, err := CompressBytes(algo, payload)
		if err != nil {
			t.Fatalf("%s: compress: %v", algo, err)
		}
		got, err := DecompressBytes(algo, compressed, len(payload))
		if err != nil {
			t.Fatalf("%s: decompress: %v", algo, err)
		}
		if !bytes.Equal(got, payload) {
			t.Fatalf("%s: round-trip mismatch", algo)
		}
	}
}

func TestCompressBytesUnknownAlgorithm(t *testing.T) {
	if _, err := CompressBytes("lzma", []byte("x")); err == nil {
		t.Fatal("expected error for unknown compressor")
	}
	if _, err := DecompressBytes("lzma", []byte("x"), 1); err == nil {
		t.Fatal("expected error for unknown decompressor")
	}
}

func TestDecompressionNoCRCVariant(t *testing.T) {
	payload := []byte("checked against the checksum-skipping decoder path")
	compressed, err := CompressBytes("zstd", payload)
	if err != nil {
		t.Fatal(err)
	}
	d := Decompression("zstd-nocrc")
	dst := make([]byte, len(payload))
	if err := d.Decompress(compressed, dst); err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(dst, payload) {
		t.Fatalf("got %q, want %q", dst, payload)
	}
}

func TestDecodeZstd(t *testing.T) {
	payload := []byte("decoded via the streaming DecodeZstd entry point")
	compressed, err := CompressBytes("zstd", payload)
	if err != nil {
		t.Fatal(err)
	}
	got, err := DecodeZstd(compressed, nil)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(got, payload) {
		t.Fatalf("got %q, want %q", got, payload)
	}
}
