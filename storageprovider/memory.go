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

// Package storageprovider supplies reference storage.Provider
// implementations: an in-memory provider for tests and a file-backed
// provider for anything that needs to survive a process restart.
package storageprovider

import (
	"sync"

	"github.com/dchest/siphash"

	"github.com/roy9527/tempo/storage"
)

const shardCount = 32

// shardKeys are the siphash key halves used to pick a shard for a
// given (contract, slot) pair. They only need to distribute well, not
// to be secret, so they are fixed constants rather than randomized at
// startup.
const (
	shardKey0 = 0x9ae16a3b2f90404f
	shardKey1 = 0xc3a5c85c97cb3127
)

type cell struct {
	contract storage.Address
	slot     storage.Word
}

type shard struct {
	mu   sync.RWMutex
	data map[cell]storage.Word
}

func newShard() *shard {
	return &shard{data: make(map[cell]storage.Word)}
}

func (s *shard) load(c cell) storage.Word {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.data[c]
}

func (s *shard) store(c cell, v storage.Word) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[c] = v
}

func shardIndex(c cell) int {
	buf := make([]byte, 0, 52)
	buf = append(buf, c.contract[:]...)
	buf = append(buf, c.slot[:]...)
	h := siphash.Hash(shardKey0, shardKey1, buf)
	return int(h % uint64(shardCount))
}

// Event is one recorded emit_event call.
type Event struct {
	Contract storage.Address
	Topics   []storage.Word
	Data     []byte
}

// Memory is a sharded, mutex-protected in-memory storage.Provider. Its
// persistent and transient address spaces are each split into
// shardCount independently-locked shards, keyed by
// siphash(contract||slot), so unrelated contracts rarely contend on
// the same lock — the same sharding-by-hash shape the teacher's tenant
// cache uses to spread contention across many independent buckets.
type Memory struct {
	persistent [shardCount]*shard
	transient  [shardCount]*shard

	mu          sync.Mutex
	gasLimit    uint64
	gasUsed     uint64
	gasRefunded uint64
	events      []Event

	chainID     uint64
	timestamp   uint64
	beneficiary storage.Address
	isStatic    bool
}

// NewMemory returns a Memory provider with the given gas limit and
// environment values.
func NewMemory(gasLimit, chainID, timestamp uint64, beneficiary storage.Address, isStatic bool) *Memory {
	m := &Memory{
		gasLimit:    gasLimit,
		chainID:     chainID,
		timestamp:   timestamp,
		beneficiary: beneficiary,
		isStatic:    isStatic,
	}
	for i := range m.persistent {
		m.persistent[i] = newShard()
		m.transient[i] = newShard()
	}
	return m
}

// SLoad implements storage.Provider.
func (m *Memory) SLoad(contract storage.Address, slot storage.Word) (storage.Word, error) {
	c := cell{contract, slot}
	return m.persistent[shardIndex(c)].load(c), nil
}

// SStore implements storage.Provider.
func (m *Memory) SStore(contract storage.Address, slot storage.Word, value storage.Word) error {
	c := cell{contract, slot}
	m.persistent[shardIndex(c)].store(c, value)
	return nil
}

// TLoad implements storage.Provider.
func (m *Memory) TLoad(contract storage.Address, slot storage.Word) (storage.Word, error) {
	c := cell{contract, slot}
	return m.transient[shardIndex(c)].load(c), nil
}

// TStore implements storage.Provider.
func (m *Memory) TStore(contract storage.Address, slot storage.Word, value storage.Word) error {
	c := cell{contract, slot}
	m.transient[shardIndex(c)].store(c, value)
	return nil
}

// Entry is one live (contract, slot) -> value triple, returned by
// Dump for inspection tools.
type Entry struct {
	Contract storage.Address
	Slot     storage.Word
	Value    storage.Word
}

// Dump returns every live persistent entry, in no particular order.
// It is meant for inspection tools such as cmd/slotdump, not for
// anything on the hot path.
func (m *Memory) Dump() []Entry {
	var out []Entry
	for _, sh := range m.persistent {
		sh.mu.RLock()
		for c, v := range sh.data {
			out = append(out, Entry{Contract: c.contract, Slot: c.slot, Value: v})
		}
		sh.mu.RUnlock()
	}
	return out
}

// ResetTransient clears every transient slot, the way a host VM does
// at the end of each top-level transaction. Memory never calls this
// on its own since it has no notion of transaction boundaries.
func (m *Memory) ResetTransient() {
	for i := range m.transient {
		m.transient[i] = newShard()
	}
}

// EmitEvent implements storage.Provider, recording the event for later
// inspection via Events.
func (m *Memory) EmitEvent(contract storage.Address, topics []storage.Word, data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	topicsCopy := append([]storage.Word(nil), topics...)
	dataCopy := append([]byte(nil), data...)
	m.events = append(m.events, Event{Contract: contract, Topics: topicsCopy, Data: dataCopy})
	return nil
}

// Events returns every event recorded so far.
func (m *Memory) Events() []Event {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]Event(nil), m.events...)
}

// DeductGas implements storage.Provider.
func (m *Memory) DeductGas(n uint64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if n > m.gasLimit-m.gasUsed {
		return &storage.OutOfGasError{Requested: n, Remaining: m.gasLimit - m.gasUsed}
	}
	m.gasUsed += n
	return nil
}

// RefundGas implements storage.Provider.
func (m *Memory) RefundGas(n uint64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.gasRefunded += n
}

// GasUsed implements storage.Provider.
func (m *Memory) GasUsed() uint64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.gasUsed
}

// GasRefunded implements storage.Provider.
func (m *Memory) GasRefunded() uint64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.gasRefunded
}

// ChainID implements storage.Provider.
func (m *Memory) ChainID() uint64 { return m.chainID }

// Timestamp implements storage.Provider.
func (m *Memory) Timestamp() uint64 { return m.timestamp }

// Beneficiary implements storage.Provider.
func (m *Memory) Beneficiary() storage.Address { return m.beneficiary }

// IsStatic implements storage.Provider.
func (m *Memory) IsStatic() bool { return m.isStatic }

var _ storage.Provider = (*Memory)(nil)
