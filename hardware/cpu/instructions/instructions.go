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

package instructions

import "fmt"

// AddressingMode describes the method data for the instruction should be received.
type AddressingMode int

// List of supported addressing modes.
const (
	// NoneAddressing is the zero value and is never valid. An instruction
	// defined with this mode (or with a mode that has no memory operand) will
	// cause the CPU to fail if it tries to resolve an effective address.
	NoneAddressing AddressingMode = iota

	Implied
	Accumulator
	Immediate
	Relative // relative addressing is used for branch instructions

	ZeroPage  // zpg
	ZeroPageX // zpg,X
	ZeroPageY // zpg,Y

	Absolute  // abs
	AbsoluteX // abs,X
	AbsoluteY // abs,Y

	Indirect        // (ind) only used by JMP
	IndexedIndirect // (ind,X)
	IndirectIndexed // (ind),Y
)

func (m AddressingMode) String() string {
	switch m {
	case NoneAddressing:
		return "None"
	case Implied:
		return "Implied"
	case Accumulator:
		return "Accumulator"
	case Immediate:
		return "Immediate"
	case Relative:
		return "Relative"
	case ZeroPage:
		return "ZeroPage"
	case ZeroPageX:
		return "ZeroPageX"
	case ZeroPageY:
		return "ZeroPageY"
	case Absolute:
		return "Absolute"
	case AbsoluteX:
		return "AbsoluteX"
	case AbsoluteY:
		return "AbsoluteY"
	case Indirect:
		return "Indirect"
	case IndexedIndirect:
		return "IndexedIndirect"
	case IndirectIndexed:
		return "IndirectIndexed"
	}
	return "unknown addressing mode"
}

// OperandBytes returns the number of bytes that follow the opcode for an
// instruction using the addressing mode.
func (m AddressingMode) OperandBytes() int {
	switch m {
	case Immediate, Relative, ZeroPage, ZeroPageX, ZeroPageY, IndexedIndirect, IndirectIndexed:
		return 1
	case Absolute, AbsoluteX, AbsoluteY, Indirect:
		return 2
	}
	return 0
}

// HasMemoryOperand returns true if the addressing mode resolves to an address
// in memory.
func (m AddressingMode) HasMemoryOperand() bool {
	switch m {
	case NoneAddressing, Implied, Accumulator:
		return false
	}
	return true
}

// EffectCategory categorises an instruction by the effect it has.
type EffectCategory int

// List of effect categories.
const (
	Read EffectCategory = iota
	Write
	RMW

	// Flow instructions (branches and JMP) may load the PC themselves. in the
	// case of branches, whether they do depends on the status register
	Flow

	// Subroutine instructions always load the PC themselves
	Subroutine

	// Halt stops the CPU
	Halt
)

func (e EffectCategory) String() string {
	switch e {
	case Read:
		return "Read"
	case Write:
		return "Write"
	case RMW:
		return "RMW"
	case Flow:
		return "Flow"
	case Subroutine:
		return "Subroutine"
	case Halt:
		return "Halt"
	}
	return "unknown effect"
}

// Definition defines each instruction in the instruction set; one per opcode.
type Definition struct {
	OpCode         uint8
	Operator       Operator
	AddressingMode AddressingMode
	Effect         EffectCategory
}

// Mnemonic returns the assembler mnemonic of the instruction.
func (defn Definition) Mnemonic() string {
	return defn.Operator.String()
}

// Bytes returns the total number of bytes of the instruction, including the
// opcode.
func (defn Definition) Bytes() int {
	return 1 + defn.AddressingMode.OperandBytes()
}

// String returns a single instruction definition as a string.
func (defn Definition) String() string {
	return fmt.Sprintf("%02x %s +%dbytes [mode=%s effect=%s]", defn.OpCode, defn.Mnemonic(), defn.Bytes(), defn.AddressingMode, defn.Effect)
}

// IsBranch returns true if instruction is a branch instruction.
func (defn Definition) IsBranch() bool {
	return defn.AddressingMode == Relative && defn.Effect == Flow
}

// MayLoadPC returns true if the instruction might load the PC itself. Whether
// it actually does can only be known after execution.
func (defn Definition) MayLoadPC() bool {
	return defn.Effect == Flow || defn.Effect == Subroutine
}
