package storage

import "testing"

// TestPackedStructScenario covers S3: a struct packing a u8 policy_type
// at offset 0 and a 20-byte admin address at offset 1 into one slot.
func TestPackedStructScenario(t *testing.T) {
	b := newMemBackend()
	slot := WordFromUint64(0)

	var admin Address
	for i := range admin {
		admin[i] = byte(i + 1)
	}

	policySlot := NewSlot(&Uint8, slot, Packed(0))
	adminSlot := NewSlot(&AddressCodec, slot, Packed(1))

	if err := policySlot.Write(b, 1); err != nil {
		t.Fatal(err)
	}
	if err := adminSlot.Write(b, admin); err != nil {
		t.Fatal(err)
	}

	// Packed offsets count from the least-significant byte, so offset 0
	// is w[31], the address (offsets 1..21) is w[11:31] big-endian, and
	// offsets 21..32 are w[0:11].
	w, _ := b.Load(slot)
	if w[31] != 0x01 {
		t.Fatalf("offset 0: got %#x, want 0x01", w[31])
	}
	for i := 0; i < 20; i++ {
		if w[11+i] != admin[i] {
			t.Fatalf("w[%d]: got %#x, want %#x", 11+i, w[11+i], admin[i])
		}
	}
	for i := 0; i < 11; i++ {
		if w[i] != 0 {
			t.Fatalf("w[%d] should be zero, got %#x", i, w[i])
		}
	}

	gotPolicy, err := policySlot.Read(b)
	if err != nil || gotPolicy != 1 {
		t.Fatalf("got %v, %v", gotPolicy, err)
	}
	gotAdmin, err := adminSlot.Read(b)
	if err != nil || gotAdmin != admin {
		t.Fatalf("got %v, %v", gotAdmin, err)
	}

	if err := policySlot.Write(b, 2); err != nil {
		t.Fatal(err)
	}
	w2, _ := b.Load(slot)
	if w2[31] != 0x02 {
		t.Fatalf("offset 0 after mutation: got %#x, want 0x02", w2[31])
	}
	for i := 0; i < 31; i++ {
		if w2[i] != w[i] {
			t.Fatalf("byte %d changed from mutating only policy_type", i)
		}
	}
}

// TestMappingPackedStructScenario covers S4: the same packed struct as
// S3, stored through a mapping rooted at base=1 with key u256(2).
func TestMappingPackedStructScenario(t *testing.T) {
	b := newMemBackend()
	base := WordFromUint64(1)
	key := WordFromUint64(2)

	entrySlot := MappingSlot(key, base)
	buf := make([]byte, 64)
	copy(buf[0:32], key.AsStorageBytes())
	copy(buf[32:], base[:])
	if entrySlot != H(buf) {
		t.Fatal("mapping slot derivation mismatch")
	}

	var admin Address
	for i := range admin {
		admin[i] = byte(i + 1)
	}
	policySlot := NewSlot(&Uint8, entrySlot, Packed(0))
	adminSlot := NewSlot(&AddressCodec, entrySlot, Packed(1))
	if err := policySlot.Write(b, 1); err != nil {
		t.Fatal(err)
	}
	if err := adminSlot.Write(b, admin); err != nil {
		t.Fatal(err)
	}

	m := NewMap[Word](&Uint8, base)
	mappedPolicySlot := m.AtOffset(key, base)
	slot, ctx := mappedPolicySlot.Location()
	if slot != entrySlot || !ctx.IsFull() {
		t.Fatalf("mapping handle base mismatch: slot=%s ctx=%+v", slot, ctx)
	}

	gotPolicy, err := policySlot.Read(b)
	if err != nil || gotPolicy != 1 {
		t.Fatalf("got %v, %v", gotPolicy, err)
	}
	gotAdmin, err := adminSlot.Read(b)
	if err != nil || gotAdmin != admin {
		t.Fatalf("got %v, %v", gotAdmin, err)
	}
}
