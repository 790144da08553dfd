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

// Command slotdump inspects a storageprovider.File snapshot, printing
// its live (contract, slot) -> value entries to stdout.
package main

import (
	"bytes"
	"flag"
	"fmt"
	"log"
	"os"
	"sort"
	"strings"

	"github.com/roy9527/tempo/storage"
	"github.com/roy9527/tempo/storageprovider"
)

// writeList collects repeated -write flag values into a slice, the
// same repeated-flag shape the teacher's cmd/dump uses for -include.
type writeList []string

func (w *writeList) String() string { return strings.Join(*w, ",") }

func (w *writeList) Set(s string) error {
	*w = append(*w, s)
	return nil
}

func main() {
	log.SetFlags(0)

	var (
		contractHex string
		limit       int
		writes      writeList
		out         string
		algo        string
	)
	flag.StringVar(&contractHex, "contract", "", "only print entries for this 20-byte account id (hex, optional 0x prefix)")
	flag.IntVar(&limit, "limit", 0, "stop after this many entries (0 means no limit)")
	flag.Var(&writes, "write", "synthesize mode: a contract:slot:value hex triple to store (repeatable); requires -out")
	flag.StringVar(&out, "out", "", "synthesize mode: snapshot file to write the scripted writes to")
	flag.StringVar(&algo, "algo", "zstd", "synthesize mode: compr algorithm to snapshot with (zstd or s2)")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: %s [flags] <snapshot-file>\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "       %s -write c:s:v [-write c:s:v ...] -out <snapshot-file>\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	if len(writes) > 0 {
		if err := synthesize(writes, out, algo); err != nil {
			log.Fatalf("slotdump: %s", err)
		}
		return
	}

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}
	path := flag.Arg(0)

	var filter *storage.Address
	if contractHex != "" {
		addr, err := parseAddress(contractHex)
		if err != nil {
			log.Fatalf("slotdump: %s", err)
		}
		filter = &addr
	}

	provider := storageprovider.NewFile(0, 0, 0, storage.Address{}, false)
	if err := provider.Load(path); err != nil {
		log.Fatalf("slotdump: %s", err)
	}

	entries := provider.Dump()
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Contract != entries[j].Contract {
			return bytes.Compare(entries[i].Contract[:], entries[j].Contract[:]) < 0
		}
		return bytes.Compare(entries[i].Slot[:], entries[j].Slot[:]) < 0
	})

	printed := 0
	for _, e := range entries {
		if filter != nil && e.Contract != *filter {
			continue
		}
		if limit > 0 && printed >= limit {
			break
		}
		fmt.Printf("%s %s = %s\n", e.Contract, e.Slot, e.Value)
		printed++
	}
}

// synthesize builds a scratch store from a handful of scripted writes
// and saves it to out, for manual inspection during development
// without needing a real host VM run to produce a snapshot.
func synthesize(writes writeList, out, algo string) error {
	if out == "" {
		return fmt.Errorf("-write requires -out")
	}
	provider := storageprovider.NewFileWithAlgorithm(0, 0, 0, storage.Address{}, false, algo)
	for _, w := range writes {
		parts := strings.Split(w, ":")
		if len(parts) != 3 {
			return fmt.Errorf("invalid -write %q: want contract:slot:value", w)
		}
		contract, err := parseAddress(parts[0])
		if err != nil {
			return fmt.Errorf("invalid -write %q: %w", w, err)
		}
		slot, err := parseWord(parts[1])
		if err != nil {
			return fmt.Errorf("invalid -write %q: %w", w, err)
		}
		value, err := parseWord(parts[2])
		if err != nil {
			return fmt.Errorf("invalid -write %q: %w", w, err)
		}
		if err := provider.SStore(contract, slot, value); err != nil {
			return err
		}
	}
	return provider.Save(out)
}

func parseAddress(hexStr string) (storage.Address, error) {
	hexStr = trimHexPrefix(hexStr)
	var a storage.Address
	if len(hexStr) != 2*len(a) {
		return a, fmt.Errorf("contract must be %d hex bytes, got %q", len(a), hexStr)
	}
	for i := range a {
		b, err := parseHexByte(hexStr[2*i : 2*i+2])
		if err != nil {
			return a, err
		}
		a[i] = b
	}
	return a, nil
}

// parseWord parses a big-endian hex value of up to 32 bytes, zero-
// padded on the left (most-significant end) to a full Word.
func parseWord(hexStr string) (storage.Word, error) {
	var w storage.Word
	hexStr = trimHexPrefix(hexStr)
	if len(hexStr)%2 != 0 {
		hexStr = "0" + hexStr
	}
	n := len(hexStr) / 2
	if n > len(w) {
		return w, fmt.Errorf("value must be at most %d bytes, got %q", len(w), hexStr)
	}
	off := len(w) - n
	for i := 0; i < n; i++ {
		b, err := parseHexByte(hexStr[2*i : 2*i+2])
		if err != nil {
			return w, err
		}
		w[off+i] = b
	}
	return w, nil
}

func trimHexPrefix(s string) string {
	if len(s) >= 2 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X') {
		return s[2:]
	}
	return s
}

func parseHexByte(s string) (byte, error) {
	var b byte
	_, err := fmt.Sscanf(s, "%02x", &b)
	if err != nil {
		return 0, fmt.Errorf("invalid hex byte %q: %w", s, err)
	}
	return b, nil
}
