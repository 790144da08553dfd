package storageprovider

import (
	"path/filepath"
	"testing"

	"github.com/roy9527/tempo/storage"
)

func TestFileSaveLoadRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "snapshot.bin")

	f := NewFile(1_000_000, 1, 0, storage.Address{}, false)
	var addr storage.Address
	addr[0] = 7
	slots := []uint64{0, 1, 300, 1 << 20}
	for _, s := range slots {
		slot := storage.WordFromUint64(s)
		if err := f.SStore(addr, slot, storage.WordFromUint64(s+1)); err != nil {
			t.Fatal(err)
		}
	}

	if err := f.Save(path); err != nil {
		t.Fatal(err)
	}

	restored := NewFile(1_000_000, 1, 0, storage.Address{}, false)
	if err := restored.Load(path); err != nil {
		t.Fatal(err)
	}

	for _, s := range slots {
		slot := storage.WordFromUint64(s)
		got, err := restored.SLoad(addr, slot)
		if err != nil {
			t.Fatal(err)
		}
		if got.Uint64() != s+1 {
			t.Fatalf("slot %d: got %d, want %d", s, got.Uint64(), s+1)
		}
	}
}

func TestFileSaveLoadRoundTripS2(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "snapshot-s2.bin")

	f := NewFileWithAlgorithm(1_000_000, 1, 0, storage.Address{}, false, "s2")
	var addr storage.Address
	addr[0] = 9
	slot := storage.WordFromUint64(42)
	if err := f.SStore(addr, slot, storage.WordFromUint64(1234)); err != nil {
		t.Fatal(err)
	}

	if err := f.Save(path); err != nil {
		t.Fatal(err)
	}

	restored := NewFileWithAlgorithm(1_000_000, 1, 0, storage.Address{}, false, "s2")
	if err := restored.Load(path); err != nil {
		t.Fatal(err)
	}
	got, err := restored.SLoad(addr, slot)
	if err != nil || got.Uint64() != 1234 {
		t.Fatalf("got %v, %v", got, err)
	}
}

func TestFileSaveEmptyAddressSpace(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "empty.bin")
	f := NewFile(1_000_000, 1, 0, storage.Address{}, false)
	if err := f.Save(path); err != nil {
		t.Fatal(err)
	}
	restored := NewFile(1_000_000, 1, 0, storage.Address{}, false)
	if err := restored.Load(path); err != nil {
		t.Fatal(err)
	}
	got, err := restored.SLoad(storage.Address{}, storage.WordFromUint64(0))
	if err != nil || got != storage.ZeroWord {
		t.Fatalf("got %v, %v", got, err)
	}
}
