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

package execution

import (
	"fmt"
	"strings"

	"github.com/jetsetilly/gopher6502/hardware/cpu/instructions"
)

// Result records the state/result of each instruction executed on the CPU.
// Including the address it was read from, a reference to the instruction
// definition, and other execution details.
//
// The Result type is also used by the disassembly package to describe
// instructions that have been decoded but not executed.
type Result struct {
	// the address at which the instruction began
	Address uint16

	// a reference to the instruction definition. will be nil if the opcode was
	// not found in the instruction table
	Defn *instructions.Definition

	// instruction data is the operand of the instruction. for single byte
	// operands the upper byte is unused
	InstructionData uint16

	// the number of bytes read during instruction decode
	ByteCount int

	// whether the program counter was loaded by the instruction rather than
	// advanced by the dispatcher
	PCLoaded bool

	// the most recent quirk triggered during execution of the instruction
	Quirk Quirk

	// whether this data has been finalised. the values in the fields above
	// maybe undefined unless Final is true
	Final bool
}

// Reset nullifies all members of the Result instance.
func (r *Result) Reset() {
	*r = Result{}
}

// Operand returns the operand of the instruction formatted in the
// conventional assembler style of the instruction's addressing mode.
func (r Result) Operand() string {
	if r.Defn == nil {
		return ""
	}

	switch r.Defn.AddressingMode {
	case instructions.Accumulator:
		return "A"
	case instructions.Immediate:
		return fmt.Sprintf("#$%02x", r.InstructionData&0xff)
	case instructions.Relative:
		// branch target as it would be if the branch succeeds
		target := r.Address + 2 + uint16(int8(r.InstructionData&0xff))
		return fmt.Sprintf("$%04x", target)
	case instructions.ZeroPage:
		return fmt.Sprintf("$%02x", r.InstructionData&0xff)
	case instructions.ZeroPageX:
		return fmt.Sprintf("$%02x,X", r.InstructionData&0xff)
	case instructions.ZeroPageY:
		return fmt.Sprintf("$%02x,Y", r.InstructionData&0xff)
	case instructions.Absolute:
		return fmt.Sprintf("$%04x", r.InstructionData)
	case instructions.AbsoluteX:
		return fmt.Sprintf("$%04x,X", r.InstructionData)
	case instructions.AbsoluteY:
		return fmt.Sprintf("$%04x,Y", r.InstructionData)
	case instructions.Indirect:
		return fmt.Sprintf("($%04x)", r.InstructionData)
	case instructions.IndexedIndirect:
		return fmt.Sprintf("($%02x,X)", r.InstructionData&0xff)
	case instructions.IndirectIndexed:
		return fmt.Sprintf("($%02x),Y", r.InstructionData&0xff)
	}

	return ""
}

// Bytecode returns the bytes of the instruction as a space separated hex
// string.
func (r Result) Bytecode() string {
	if r.Defn == nil {
		return ""
	}

	switch r.Defn.Bytes() {
	case 3:
		return fmt.Sprintf("%02x %02x %02x", r.Defn.OpCode, r.InstructionData&0xff, r.InstructionData>>8)
	case 2:
		return fmt.Sprintf("%02x %02x", r.Defn.OpCode, r.InstructionData&0xff)
	}
	return fmt.Sprintf("%02x", r.Defn.OpCode)
}

// String returns a single line summary of the instruction, suitable for a
// trace or disassembly listing.
func (r Result) String() string {
	if r.Defn == nil {
		return fmt.Sprintf("%04x  ???", r.Address)
	}

	s := strings.Builder{}
	s.WriteString(fmt.Sprintf("%04x  %-8s  %s", r.Address, r.Bytecode(), r.Defn.Mnemonic()))
	if op := r.Operand(); op != "" {
		s.WriteString(" ")
		s.WriteString(op)
	}
	if r.Quirk != NoQuirk {
		s.WriteString(fmt.Sprintf(" [%s]", r.Quirk))
	}

	return s.String()
}
