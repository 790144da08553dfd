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

// Provider is the host capability set the layout engine is built on
// top of but never implements itself. Grounded on
// original_source/crates/storage-interop/src/runtime_provider.rs (the
// PrecompileStorageProvider trait).
package storage

// Provider is implemented by the host VM. It is the only boundary
// across which this package ever crosses into "real" state; the
// layout engine itself only ever calls a Backend (runtime.go adapts
// one onto the other).
type Provider interface {
	// SLoad reads persistent storage.
	SLoad(contract Address, slot Word) (Word, error)
	// SStore writes persistent storage.
	SStore(contract Address, slot Word, value Word) error
	// TLoad reads transient storage (cleared at the end of the
	// enclosing transaction by the host, not by this package).
	TLoad(contract Address, slot Word) (Word, error)
	// TStore writes transient storage.
	TStore(contract Address, slot Word, value Word) error

	// EmitEvent appends a log record to the current execution frame.
	EmitEvent(contract Address, topics []Word, data []byte) error

	// DeductGas charges n units, returning OutOfGasError if that
	// would underflow the remaining budget.
	DeductGas(n uint64) error
	// RefundGas credits n units back to the refund counter.
	RefundGas(n uint64)
	// GasUsed returns total gas consumed so far.
	GasUsed() uint64
	// GasRefunded returns the current refund counter.
	GasRefunded() uint64

	// ChainID returns the chain identifier of the executing network.
	ChainID() uint64
	// Timestamp returns the current block's timestamp.
	Timestamp() uint64
	// Beneficiary returns the current block's fee recipient.
	Beneficiary() Address
	// IsStatic reports whether the current frame forbids state
	// mutation (a static call context).
	IsStatic() bool
}
