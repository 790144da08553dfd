package storage

import "testing"

func TestWordFromUint64RoundTrip(t *testing.T) {
	values := []uint64{0, 1, 255, 256, 65536, 0xDEADBEEFCAFE}
	for _, v := range values {
		w := WordFromUint64(v)
		if got := w.Uint64(); got != v {
			t.Fatalf("round-trip %d: got %d", v, got)
		}
	}
}

func TestWordAddCarryPropagation(t *testing.T) {
	cases := []struct {
		start Word
		n     int
		want  uint64
	}{
		{WordFromUint64(0), 300, 300},
		{WordFromUint64(255), 1, 256},
		{WordFromUint64(0), 65536, 65536},
		{WordFromUint64(0xFFFFFFFF), 1, 0x100000000},
	}
	for _, c := range cases {
		got := c.start.Add(c.n)
		if got.Uint64() != c.want {
			t.Fatalf("Add(%d) on %s: got %d, want %d", c.n, c.start, got.Uint64(), c.want)
		}
	}
}

func TestWordBit0(t *testing.T) {
	if WordFromUint64(0).Bit0() {
		t.Fatal("0 should have Bit0 false")
	}
	if !WordFromUint64(1).Bit0() {
		t.Fatal("1 should have Bit0 true")
	}
	if WordFromUint64(2).Bit0() {
		t.Fatal("2 should have Bit0 false")
	}
}

func TestWordString(t *testing.T) {
	w := WordFromUint64(0)
	w[31] = 0xAB
	if w.String() == "" {
		t.Fatal("expected non-empty string")
	}
}
