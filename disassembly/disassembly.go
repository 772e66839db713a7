// This file is part of Gopher6502.
//
// Gopher6502 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher6502 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher6502.  If not, see <https://www.gnu.org/licenses/>.

package disassembly

import (
	"github.com/jetsetilly/gopher6502/curated"
	"github.com/jetsetilly/gopher6502/hardware/cpu/execution"
	"github.com/jetsetilly/gopher6502/hardware/cpu/instructions"
)

// Sentinal error patterns.
const (
	InvalidRange = "disassembly: invalid range (%#04x to %#04x)"
)

// Memory is the interface to the memory being disassembled. Both the CPU and
// memory types satisfy this interface.
type Memory interface {
	Read(address uint16) uint8
}

// Disassembly represents a linear disassembly of a range of memory.
type Disassembly struct {
	Entries []Entry

	// the range of memory disassembled. inclusive
	From uint16
	To   uint16
}

// FromMemory disassembles memory between the from and to addresses,
// inclusive. Decoding is linear: each instruction is assumed to begin
// immediately after the previous one.
func FromMemory(mem Memory, from uint16, to uint16) (*Disassembly, error) {
	if from > to {
		return nil, curated.Errorf(InvalidRange, from, to)
	}

	dsm := &Disassembly{
		From: from,
		To:   to,
	}

	defns := instructions.GetDefinitions()

	// int rather than uint16 so that the loop terminates if the range ends at
	// the top of memory
	address := int(from)
	for address <= int(to) {
		opcode := mem.Read(uint16(address))
		defn := defns[opcode]

		// data entry if opcode is unknown or if the instruction would extend
		// beyond the end of the range
		if defn == nil || address+defn.Bytes()-1 > int(to) {
			dsm.Entries = append(dsm.Entries, Entry{
				Level:  EntryLevelData,
				Result: execution.Result{Address: uint16(address)},
				Data:   opcode,
			})
			address++
			continue
		}

		r := execution.Result{
			Address:   uint16(address),
			Defn:      defn,
			ByteCount: defn.Bytes(),
			Final:     true,
		}

		switch defn.AddressingMode.OperandBytes() {
		case 1:
			r.InstructionData = uint16(mem.Read(uint16(address + 1)))
		case 2:
			r.InstructionData = uint16(mem.Read(uint16(address+1))) | uint16(mem.Read(uint16(address+2)))<<8
		}

		dsm.Entries = append(dsm.Entries, Entry{
			Level:  EntryLevelDecoded,
			Result: r,
		})

		address += defn.Bytes()
	}

	return dsm, nil
}
