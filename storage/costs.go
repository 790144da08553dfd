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

// Gas cost configuration for the runtime adapter, loaded from YAML via
// sigs.k8s.io/yaml — a direct dependency of the teacher's own go.mod
// that no file in the retrieved teacher slice actually exercises; this
// cost table is its home in this codebase.
package storage

import (
	"fmt"
	"io"

	"sigs.k8s.io/yaml"
)

// CostTable holds the gas price of every metered operation the
// runtime adapter performs. Field names mirror the host VM's current
// specification for warm/cold storage access and event logging.
type CostTable struct {
	ColdSload   uint64 `json:"coldSload"`
	WarmSload   uint64 `json:"warmSload"`
	SstoreSet   uint64 `json:"sstoreSet"`
	SstoreReset uint64 `json:"sstoreReset"`
	SstoreClear uint64 `json:"sstoreClear"`
	WarmRead    uint64 `json:"warmRead"`
	LogBase     uint64 `json:"logBase"`
	LogPerTopic uint64 `json:"logPerTopic"`
	LogPerByte  uint64 `json:"logPerByte"`
}

// DefaultCostTable returns the cost schedule the runtime adapter uses
// when no configuration file is supplied.
func DefaultCostTable() CostTable {
	return CostTable{
		ColdSload:   2100,
		WarmSload:   100,
		SstoreSet:   20000,
		SstoreReset: 2900,
		SstoreClear: 100,
		WarmRead:    100,
		LogBase:     375,
		LogPerTopic: 375,
		LogPerByte:  8,
	}
}

// LoadCostTable parses a YAML-encoded cost schedule, starting from
// DefaultCostTable so a partial document only overrides the fields it
// mentions.
func LoadCostTable(r io.Reader) (CostTable, error) {
	table := DefaultCostTable()
	doc, err := io.ReadAll(r)
	if err != nil {
		return table, fmt.Errorf("storage: reading cost table: %w", err)
	}
	if len(doc) == 0 {
		return table, nil
	}
	if err := yaml.Unmarshal(doc, &table); err != nil {
		return table, fmt.Errorf("storage: parsing cost table: %w", err)
	}
	return table, nil
}

// eventCost computes the gas charge for emit_event(topics, data), per
// the per-topic-and-byte schedule referenced in the external
// interfaces for this package.
func (c CostTable) eventCost(topics int, dataLen int) uint64 {
	return c.LogBase + c.LogPerTopic*uint64(topics) + c.LogPerByte*uint64(dataLen)
}
