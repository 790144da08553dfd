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

// File wraps Memory with snapshot persistence: the whole persistent
// address space can be flushed to, and restored from, a single
// compressed file (zstd by default, or s2) via a direct mmap of the
// file region, the same
// mmap-a-whole-region-at-once shape the teacher's blockfmt readers use
// over object-store downloads.
package storageprovider

import (
	"encoding/binary"
	"fmt"
	"os"

	"golang.org/x/sys/unix"

	"github.com/roy9527/tempo/compr"
	"github.com/roy9527/tempo/storage"
)

const (
	snapshotMagic       = uint32(0x53534e50) // "SSNP"
	recordSize          = 20 + 32 + 32
	defaultSnapshotAlgo = "zstd"
)

// File is a Memory provider that can persist and reload its entire
// persistent address space as a single file. Transient storage and
// gas/event bookkeeping are never part of a snapshot: both are
// properties of one in-flight execution, not durable state.
type File struct {
	*Memory
	algo string
}

// NewFile returns a File provider with the given gas limit and
// environment values, starting from an empty address space, snapshotted
// with zstd.
func NewFile(gasLimit, chainID, timestamp uint64, beneficiary storage.Address, isStatic bool) *File {
	return NewFileWithAlgorithm(gasLimit, chainID, timestamp, beneficiary, isStatic, defaultSnapshotAlgo)
}

// NewFileWithAlgorithm is like NewFile but snapshots with the named
// compr algorithm ("zstd" or "s2") instead of the default.
func NewFileWithAlgorithm(gasLimit, chainID, timestamp uint64, beneficiary storage.Address, isStatic bool, algo string) *File {
	return &File{
		Memory: NewMemory(gasLimit, chainID, timestamp, beneficiary, isStatic),
		algo:   algo,
	}
}

// encodeRecords packs records as fixed-size rows with no framing of
// its own; the snapshot header around it carries the algorithm name
// and row count needed to decompress and parse it back.
func encodeRecords(records []Entry) []byte {
	buf := make([]byte, len(records)*recordSize)
	off := 0
	for _, r := range records {
		copy(buf[off:off+20], r.Contract[:])
		off += 20
		copy(buf[off:off+32], r.Slot[:])
		off += 32
		copy(buf[off:off+32], r.Value[:])
		off += 32
	}
	return buf
}

func decodeRecords(buf []byte, count int) ([]Entry, error) {
	if len(buf) != count*recordSize {
		return nil, fmt.Errorf("storageprovider: snapshot has %d records but %d bytes (want %d)", count, len(buf), count*recordSize)
	}
	out := make([]Entry, count)
	off := 0
	for i := range out {
		copy(out[i].Contract[:], buf[off:off+20])
		off += 20
		copy(out[i].Slot[:], buf[off:off+32])
		off += 32
		copy(out[i].Value[:], buf[off:off+32])
		off += 32
	}
	return out, nil
}

// Save compresses the current persistent address space and writes it
// to path, replacing any existing file. The on-disk header stores the
// algorithm name and record count in the clear, ahead of the
// compressed record body, so Load knows both which compr.Decompressor
// to use and the exact output size to allocate for it.
func (f *File) Save(path string) error {
	records := f.Memory.Dump()
	body := encodeRecords(records)
	compressed, err := compr.CompressBytes(f.algo, body)
	if err != nil {
		return err
	}

	header := make([]byte, 4+1+len(f.algo)+4)
	binary.BigEndian.PutUint32(header[0:4], snapshotMagic)
	header[4] = byte(len(f.algo))
	copy(header[5:5+len(f.algo)], f.algo)
	binary.BigEndian.PutUint32(header[5+len(f.algo):], uint32(len(records)))
	full := append(header, compressed...)

	fd, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return fmt.Errorf("storageprovider: opening snapshot file: %w", err)
	}
	defer fd.Close()

	if len(full) == 0 {
		return nil
	}
	if err := fd.Truncate(int64(len(full))); err != nil {
		return fmt.Errorf("storageprovider: sizing snapshot file: %w", err)
	}
	region, err := unix.Mmap(int(fd.Fd()), 0, len(full), unix.PROT_READ|unix.PROT_WRITE, unix.MAP_SHARED)
	if err != nil {
		return fmt.Errorf("storageprovider: mmap snapshot file: %w", err)
	}
	copy(region, full)
	if err := unix.Munmap(region); err != nil {
		return fmt.Errorf("storageprovider: munmap snapshot file: %w", err)
	}
	return nil
}

// Load replaces the provider's persistent address space with the
// snapshot stored at path. Transient storage and gas counters are
// left untouched.
func (f *File) Load(path string) error {
	fd, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("storageprovider: opening snapshot file: %w", err)
	}
	defer fd.Close()

	info, err := fd.Stat()
	if err != nil {
		return fmt.Errorf("storageprovider: stat snapshot file: %w", err)
	}
	size := info.Size()
	if size == 0 {
		return nil
	}
	region, err := unix.Mmap(int(fd.Fd()), 0, int(size), unix.PROT_READ, unix.MAP_SHARED)
	if err != nil {
		return fmt.Errorf("storageprovider: mmap snapshot file: %w", err)
	}
	defer unix.Munmap(region)

	raw := make([]byte, size)
	copy(raw, region)

	if len(raw) < 9 {
		return fmt.Errorf("storageprovider: truncated snapshot header")
	}
	if magic := binary.BigEndian.Uint32(raw[0:4]); magic != snapshotMagic {
		return fmt.Errorf("storageprovider: bad snapshot magic %#x", magic)
	}
	algoLen := int(raw[4])
	if len(raw) < 5+algoLen+4 {
		return fmt.Errorf("storageprovider: truncated snapshot header")
	}
	algo := string(raw[5 : 5+algoLen])
	count := int(binary.BigEndian.Uint32(raw[5+algoLen : 9+algoLen]))
	compressed := raw[9+algoLen:]

	body, err := compr.DecompressBytes(algo, compressed, count*recordSize)
	if err != nil {
		return fmt.Errorf("storageprovider: decompressing snapshot: %w", err)
	}
	records, err := decodeRecords(body, count)
	if err != nil {
		return err
	}

	for i := range f.Memory.persistent {
		f.Memory.persistent[i] = newShard()
	}
	for _, r := range records {
		c := cell{contract: r.Contract, slot: r.Slot}
		f.Memory.persistent[shardIndex(c)].store(c, r.Value)
	}
	return nil
}

var _ storage.Provider = (*File)(nil)
