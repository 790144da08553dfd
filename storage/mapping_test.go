package storage

import "testing"

func TestMapGetSetDelete(t *testing.T) {
	b := newMemBackend()
	base := WordFromUint64(100)
	m := NewMap[Word](&Uint64, base)

	k1, k2 := WordFromUint64(1), WordFromUint64(2)
	if err := m.Set(b, k1, 111); err != nil {
		t.Fatal(err)
	}
	if err := m.Set(b, k2, 222); err != nil {
		t.Fatal(err)
	}

	v1, err := m.Get(b, k1)
	if err != nil || v1 != 111 {
		t.Fatalf("got %v, %v", v1, err)
	}
	v2, err := m.Get(b, k2)
	if err != nil || v2 != 222 {
		t.Fatalf("got %v, %v", v2, err)
	}

	if err := m.Delete(b, k1); err != nil {
		t.Fatal(err)
	}
	v1, err = m.Get(b, k1)
	if err != nil || v1 != 0 {
		t.Fatalf("deleted entry should read zero: got %v, %v", v1, err)
	}
}

func TestMapUnsetKeyReadsZero(t *testing.T) {
	b := newMemBackend()
	m := NewMap[Word](&Uint32, WordFromUint64(5))
	v, err := m.Get(b, WordFromUint64(42))
	if err != nil || v != 0 {
		t.Fatalf("got %v, %v", v, err)
	}
}

func TestMapSlotIsAtOffsetAware(t *testing.T) {
	m := NewMap[Word](&Uint64, WordFromUint64(0))
	structBase := WordFromUint64(9)
	k := WordFromUint64(3)
	s := m.AtOffset(k, structBase)
	slot, _ := s.Location()
	if slot != MappingSlot(k, structBase) {
		t.Fatalf("got %s, want %s", slot, MappingSlot(k, structBase))
	}
}
