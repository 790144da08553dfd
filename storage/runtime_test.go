package storage

import "testing"

// fakeProvider is a minimal in-memory Provider used only to exercise
// Runtime's gas metering and mode routing.
type fakeProvider struct {
	persistent map[Word]Word
	transient  map[Word]Word
	gasUsed    uint64
	gasRefund  uint64
	events     int
}

func newFakeProvider() *fakeProvider {
	return &fakeProvider{
		persistent: make(map[Word]Word),
		transient:  make(map[Word]Word),
	}
}

func (p *fakeProvider) SLoad(_ Address, slot Word) (Word, error) { return p.persistent[slot], nil }
func (p *fakeProvider) SStore(_ Address, slot Word, v Word) error {
	p.persistent[slot] = v
	return nil
}
func (p *fakeProvider) TLoad(_ Address, slot Word) (Word, error) { return p.transient[slot], nil }
func (p *fakeProvider) TStore(_ Address, slot Word, v Word) error {
	p.transient[slot] = v
	return nil
}
func (p *fakeProvider) EmitEvent(_ Address, _ []Word, _ []byte) error {
	p.events++
	return nil
}
func (p *fakeProvider) DeductGas(n uint64) error {
	p.gasUsed += n
	return nil
}
func (p *fakeProvider) RefundGas(n uint64)   { p.gasRefund += n }
func (p *fakeProvider) GasUsed() uint64      { return p.gasUsed }
func (p *fakeProvider) GasRefunded() uint64  { return p.gasRefund }
func (p *fakeProvider) ChainID() uint64      { return 1 }
func (p *fakeProvider) Timestamp() uint64    { return 0 }
func (p *fakeProvider) Beneficiary() Address { return Address{} }
func (p *fakeProvider) IsStatic() bool       { return false }

func TestRuntimeColdThenWarmSload(t *testing.T) {
	p := newFakeProvider()
	r := NewRuntime(p, Address{}, Persistent, DefaultCostTable())
	slot := WordFromUint64(5)

	if _, err := r.Load(slot); err != nil {
		t.Fatal(err)
	}
	if p.gasUsed != DefaultCostTable().ColdSload {
		t.Fatalf("first load: got %d, want cold cost", p.gasUsed)
	}
	before := p.gasUsed
	if _, err := r.Load(slot); err != nil {
		t.Fatal(err)
	}
	if p.gasUsed-before != DefaultCostTable().WarmSload {
		t.Fatalf("second load: got %d, want warm cost", p.gasUsed-before)
	}
}

func TestRuntimeStoreCostsSetResetClear(t *testing.T) {
	p := newFakeProvider()
	r := NewRuntime(p, Address{}, Persistent, DefaultCostTable())
	slot := WordFromUint64(1)

	if err := r.Store(slot, WordFromUint64(1)); err != nil {
		t.Fatal(err)
	}
	if p.gasUsed != DefaultCostTable().SstoreSet {
		t.Fatalf("first store: got %d, want set cost", p.gasUsed)
	}

	before := p.gasUsed
	if err := r.Store(slot, WordFromUint64(2)); err != nil {
		t.Fatal(err)
	}
	if p.gasUsed-before != DefaultCostTable().SstoreReset {
		t.Fatalf("second store: got %d, want reset cost", p.gasUsed-before)
	}

	before = p.gasUsed
	if err := r.Store(slot, ZeroWord); err != nil {
		t.Fatal(err)
	}
	if p.gasUsed-before != DefaultCostTable().SstoreClear {
		t.Fatalf("clearing store: got %d, want clear cost", p.gasUsed-before)
	}
}

func TestRuntimeTransientUsesFlatCost(t *testing.T) {
	p := newFakeProvider()
	r := NewRuntime(p, Address{}, Transient, DefaultCostTable())
	slot := WordFromUint64(1)
	if err := r.Store(slot, WordFromUint64(9)); err != nil {
		t.Fatal(err)
	}
	if p.gasUsed != DefaultCostTable().WarmRead {
		t.Fatalf("got %d, want warm-read cost", p.gasUsed)
	}
	v, err := r.Load(slot)
	if err != nil || v != WordFromUint64(9) {
		t.Fatalf("got %v, %v", v, err)
	}
	if _, ok := p.persistent[slot]; ok {
		t.Fatal("transient store leaked into persistent space")
	}
}

func TestRuntimeAsBackendForLayoutEngine(t *testing.T) {
	p := newFakeProvider()
	r := NewRuntime(p, Address{}, Persistent, DefaultCostTable())
	h := NewText(WordFromUint64(0))
	if err := h.Write(r, "round trip through a runtime"); err != nil {
		t.Fatal(err)
	}
	got, err := h.Read(r)
	if err != nil || got != "round trip through a runtime" {
		t.Fatalf("got %q, %v", got, err)
	}
}

func TestRuntimeEmitEventChargesGasAndForwards(t *testing.T) {
	p := newFakeProvider()
	r := NewRuntime(p, Address{}, Persistent, DefaultCostTable())
	if err := r.EmitEvent([]Word{WordFromUint64(1)}, []byte("payload")); err != nil {
		t.Fatal(err)
	}
	if p.events != 1 {
		t.Fatalf("got %d events, want 1", p.events)
	}
	want := DefaultCostTable().eventCost(1, len("payload"))
	if p.gasUsed != want {
		t.Fatalf("got %d gas, want %d", p.gasUsed, want)
	}
}
