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

// the instruction set. adding a new instruction is a matter of adding a new
// line to this list and, if the operator is new, adding a handler for the
// operator to the CPU.
var definitions = []Definition{
	{OpCode: 0x00, Operator: Brk, AddressingMode: Implied, Effect: Halt},
	{OpCode: 0xea, Operator: Nop, AddressingMode: Implied, Effect: Read},

	// LDA
	{OpCode: 0xa9, Operator: Lda, AddressingMode: Immediate, Effect: Read},
	{OpCode: 0xa5, Operator: Lda, AddressingMode: ZeroPage, Effect: Read},
	{OpCode: 0xb5, Operator: Lda, AddressingMode: ZeroPageX, Effect: Read},
	{OpCode: 0xad, Operator: Lda, AddressingMode: Absolute, Effect: Read},
	{OpCode: 0xbd, Operator: Lda, AddressingMode: AbsoluteX, Effect: Read},
	{OpCode: 0xb9, Operator: Lda, AddressingMode: AbsoluteY, Effect: Read},
	{OpCode: 0xa1, Operator: Lda, AddressingMode: IndexedIndirect, Effect: Read},
	{OpCode: 0xb1, Operator: Lda, AddressingMode: IndirectIndexed, Effect: Read},

	// LDX
	{OpCode: 0xa2, Operator: Ldx, AddressingMode: Immediate, Effect: Read},
	{OpCode: 0xa6, Operator: Ldx, AddressingMode: ZeroPage, Effect: Read},
	{OpCode: 0xb6, Operator: Ldx, AddressingMode: ZeroPageY, Effect: Read},
	{OpCode: 0xae, Operator: Ldx, AddressingMode: Absolute, Effect: Read},
	{OpCode: 0xbe, Operator: Ldx, AddressingMode: AbsoluteY, Effect: Read},

	// LDY
	{OpCode: 0xa0, Operator: Ldy, AddressingMode: Immediate, Effect: Read},
	{OpCode: 0xa4, Operator: Ldy, AddressingMode: ZeroPage, Effect: Read},
	{OpCode: 0xb4, Operator: Ldy, AddressingMode: ZeroPageX, Effect: Read},
	{OpCode: 0xac, Operator: Ldy, AddressingMode: Absolute, Effect: Read},
	{OpCode: 0xbc, Operator: Ldy, AddressingMode: AbsoluteX, Effect: Read},

	// STA
	{OpCode: 0x85, Operator: Sta, AddressingMode: ZeroPage, Effect: Write},
	{OpCode: 0x95, Operator: Sta, AddressingMode: ZeroPageX, Effect: Write},
	{OpCode: 0x8d, Operator: Sta, AddressingMode: Absolute, Effect: Write},
	{OpCode: 0x9d, Operator: Sta, AddressingMode: AbsoluteX, Effect: Write},
	{OpCode: 0x99, Operator: Sta, AddressingMode: AbsoluteY, Effect: Write},
	{OpCode: 0x81, Operator: Sta, AddressingMode: IndexedIndirect, Effect: Write},
	{OpCode: 0x91, Operator: Sta, AddressingMode: IndirectIndexed, Effect: Write},

	// STX
	{OpCode: 0x86, Operator: Stx, AddressingMode: ZeroPage, Effect: Write},
	{OpCode: 0x96, Operator: Stx, AddressingMode: ZeroPageY, Effect: Write},
	{OpCode: 0x8e, Operator: Stx, AddressingMode: Absolute, Effect: Write},

	// STY
	{OpCode: 0x84, Operator: Sty, AddressingMode: ZeroPage, Effect: Write},
	{OpCode: 0x94, Operator: Sty, AddressingMode: ZeroPageX, Effect: Write},
	{OpCode: 0x8c, Operator: Sty, AddressingMode: Absolute, Effect: Write},

	// transfers
	{OpCode: 0xaa, Operator: Tax, AddressingMode: Implied, Effect: Read},
	{OpCode: 0x8a, Operator: Txa, AddressingMode: Implied, Effect: Read},
	{OpCode: 0xa8, Operator: Tay, AddressingMode: Implied, Effect: Read},
	{OpCode: 0x98, Operator: Tya, AddressingMode: Implied, Effect: Read},
	{OpCode: 0xba, Operator: Tsx, AddressingMode: Implied, Effect: Read},
	{OpCode: 0x9a, Operator: Txs, AddressingMode: Implied, Effect: Read},

	// stack
	{OpCode: 0x48, Operator: Pha, AddressingMode: Implied, Effect: Write},
	{OpCode: 0x68, Operator: Pla, AddressingMode: Implied, Effect: Read},
	{OpCode: 0x08, Operator: Php, AddressingMode: Implied, Effect: Write},
	{OpCode: 0x28, Operator: Plp, AddressingMode: Implied, Effect: Read},

	// ADC
	{OpCode: 0x69, Operator: Adc, AddressingMode: Immediate, Effect: Read},
	{OpCode: 0x65, Operator: Adc, AddressingMode: ZeroPage, Effect: Read},
	{OpCode: 0x75, Operator: Adc, AddressingMode: ZeroPageX, Effect: Read},
	{OpCode: 0x6d, Operator: Adc, AddressingMode: Absolute, Effect: Read},
	{OpCode: 0x7d, Operator: Adc, AddressingMode: AbsoluteX, Effect: Read},
	{OpCode: 0x79, Operator: Adc, AddressingMode: AbsoluteY, Effect: Read},
	{OpCode: 0x61, Operator: Adc, AddressingMode: IndexedIndirect, Effect: Read},
	{OpCode: 0x71, Operator: Adc, AddressingMode: IndirectIndexed, Effect: Read},

	// SBC
	{OpCode: 0xe9, Operator: Sbc, AddressingMode: Immediate, Effect: Read},
	{OpCode: 0xe5, Operator: Sbc, AddressingMode: ZeroPage, Effect: Read},
	{OpCode: 0xf5, Operator: Sbc, AddressingMode: ZeroPageX, Effect: Read},
	{OpCode: 0xed, Operator: Sbc, AddressingMode: Absolute, Effect: Read},
	{OpCode: 0xfd, Operator: Sbc, AddressingMode: AbsoluteX, Effect: Read},
	{OpCode: 0xf9, Operator: Sbc, AddressingMode: AbsoluteY, Effect: Read},
	{OpCode: 0xe1, Operator: Sbc, AddressingMode: IndexedIndirect, Effect: Read},
	{OpCode: 0xf1, Operator: Sbc, AddressingMode: IndirectIndexed, Effect: Read},

	// AND
	{OpCode: 0x29, Operator: And, AddressingMode: Immediate, Effect: Read},
	{OpCode: 0x25, Operator: And, AddressingMode: ZeroPage, Effect: Read},
	{OpCode: 0x35, Operator: And, AddressingMode: ZeroPageX, Effect: Read},
	{OpCode: 0x2d, Operator: And, AddressingMode: Absolute, Effect: Read},
	{OpCode: 0x3d, Operator: And, AddressingMode: AbsoluteX, Effect: Read},
	{OpCode: 0x39, Operator: And, AddressingMode: AbsoluteY, Effect: Read},
	{OpCode: 0x21, Operator: And, AddressingMode: IndexedIndirect, Effect: Read},
	{OpCode: 0x31, Operator: And, AddressingMode: IndirectIndexed, Effect: Read},

	// ORA
	{OpCode: 0x09, Operator: Ora, AddressingMode: Immediate, Effect: Read},
	{OpCode: 0x05, Operator: Ora, AddressingMode: ZeroPage, Effect: Read},
	{OpCode: 0x15, Operator: Ora, AddressingMode: ZeroPageX, Effect: Read},
	{OpCode: 0x0d, Operator: Ora, AddressingMode: Absolute, Effect: Read},
	{OpCode: 0x1d, Operator: Ora, AddressingMode: AbsoluteX, Effect: Read},
	{OpCode: 0x19, Operator: Ora, AddressingMode: AbsoluteY, Effect: Read},
	{OpCode: 0x01, Operator: Ora, AddressingMode: IndexedIndirect, Effect: Read},
	{OpCode: 0x11, Operator: Ora, AddressingMode: IndirectIndexed, Effect: Read},

	// EOR
	{OpCode: 0x49, Operator: Eor, AddressingMode: Immediate, Effect: Read},
	{OpCode: 0x45, Operator: Eor, AddressingMode: ZeroPage, Effect: Read},
	{OpCode: 0x55, Operator: Eor, AddressingMode: ZeroPageX, Effect: Read},
	{OpCode: 0x4d, Operator: Eor, AddressingMode: Absolute, Effect: Read},
	{OpCode: 0x5d, Operator: Eor, AddressingMode: AbsoluteX, Effect: Read},
	{OpCode: 0x59, Operator: Eor, AddressingMode: AbsoluteY, Effect: Read},
	{OpCode: 0x41, Operator: Eor, AddressingMode: IndexedIndirect, Effect: Read},
	{OpCode: 0x51, Operator: Eor, AddressingMode: IndirectIndexed, Effect: Read},

	// ASL
	{OpCode: 0x0a, Operator: Asl, AddressingMode: Accumulator, Effect: RMW},
	{OpCode: 0x06, Operator: Asl, AddressingMode: ZeroPage, Effect: RMW},
	{OpCode: 0x16, Operator: Asl, AddressingMode: ZeroPageX, Effect: RMW},
	{OpCode: 0x0e, Operator: Asl, AddressingMode: Absolute, Effect: RMW},
	{OpCode: 0x1e, Operator: Asl, AddressingMode: AbsoluteX, Effect: RMW},

	// LSR (accumulator only)
	{OpCode: 0x4a, Operator: Lsr, AddressingMode: Accumulator, Effect: RMW},

	// ROL
	{OpCode: 0x2a, Operator: Rol, AddressingMode: Accumulator, Effect: RMW},
	{OpCode: 0x26, Operator: Rol, AddressingMode: ZeroPage, Effect: RMW},
	{OpCode: 0x36, Operator: Rol, AddressingMode: ZeroPageX, Effect: RMW},
	{OpCode: 0x2e, Operator: Rol, AddressingMode: Absolute, Effect: RMW},
	{OpCode: 0x3e, Operator: Rol, AddressingMode: AbsoluteX, Effect: RMW},

	// BIT
	{OpCode: 0x24, Operator: Bit, AddressingMode: ZeroPage, Effect: Read},
	{OpCode: 0x2c, Operator: Bit, AddressingMode: Absolute, Effect: Read},

	// INC and DEC
	{OpCode: 0xe6, Operator: Inc, AddressingMode: ZeroPage, Effect: RMW},
	{OpCode: 0xf6, Operator: Inc, AddressingMode: ZeroPageX, Effect: RMW},
	{OpCode: 0xee, Operator: Inc, AddressingMode: Absolute, Effect: RMW},
	{OpCode: 0xfe, Operator: Inc, AddressingMode: AbsoluteX, Effect: RMW},
	{OpCode: 0xc6, Operator: Dec, AddressingMode: ZeroPage, Effect: RMW},
	{OpCode: 0xd6, Operator: Dec, AddressingMode: ZeroPageX, Effect: RMW},
	{OpCode: 0xce, Operator: Dec, AddressingMode: Absolute, Effect: RMW},
	{OpCode: 0xde, Operator: Dec, AddressingMode: AbsoluteX, Effect: RMW},

	// register increments and decrements
	{OpCode: 0xe8, Operator: Inx, AddressingMode: Implied, Effect: Read},
	{OpCode: 0xc8, Operator: Iny, AddressingMode: Implied, Effect: Read},
	{OpCode: 0xca, Operator: Dex, AddressingMode: Implied, Effect: Read},
	{OpCode: 0x88, Operator: Dey, AddressingMode: Implied, Effect: Read},

	// CMP
	{OpCode: 0xc9, Operator: Cmp, AddressingMode: Immediate, Effect: Read},
	{OpCode: 0xc5, Operator: Cmp, AddressingMode: ZeroPage, Effect: Read},
	{OpCode: 0xd5, Operator: Cmp, AddressingMode: ZeroPageX, Effect: Read},
	{OpCode: 0xcd, Operator: Cmp, AddressingMode: Absolute, Effect: Read},
	{OpCode: 0xdd, Operator: Cmp, AddressingMode: AbsoluteX, Effect: Read},
	{OpCode: 0xd9, Operator: Cmp, AddressingMode: AbsoluteY, Effect: Read},
	{OpCode: 0xc1, Operator: Cmp, AddressingMode: IndexedIndirect, Effect: Read},
	{OpCode: 0xd1, Operator: Cmp, AddressingMode: IndirectIndexed, Effect: Read},

	// CPX and CPY
	{OpCode: 0xe0, Operator: Cpx, AddressingMode: Immediate, Effect: Read},
	{OpCode: 0xe4, Operator: Cpx, AddressingMode: ZeroPage, Effect: Read},
	{OpCode: 0xec, Operator: Cpx, AddressingMode: Absolute, Effect: Read},
	{OpCode: 0xc0, Operator: Cpy, AddressingMode: Immediate, Effect: Read},
	{OpCode: 0xc4, Operator: Cpy, AddressingMode: ZeroPage, Effect: Read},
	{OpCode: 0xcc, Operator: Cpy, AddressingMode: Absolute, Effect: Read},

	// flags
	{OpCode: 0x18, Operator: Clc, AddressingMode: Implied, Effect: Read},
	{OpCode: 0x38, Operator: Sec, AddressingMode: Implied, Effect: Read},
	{OpCode: 0x58, Operator: Cli, AddressingMode: Implied, Effect: Read},
	{OpCode: 0x78, Operator: Sei, AddressingMode: Implied, Effect: Read},
	{OpCode: 0xd8, Operator: Cld, AddressingMode: Implied, Effect: Read},
	{OpCode: 0xf8, Operator: Sed, AddressingMode: Implied, Effect: Read},
	{OpCode: 0xb8, Operator: Clv, AddressingMode: Implied, Effect: Read},

	// branches
	{OpCode: 0x90, Operator: Bcc, AddressingMode: Relative, Effect: Flow},
	{OpCode: 0xb0, Operator: Bcs, AddressingMode: Relative, Effect: Flow},
	{OpCode: 0xf0, Operator: Beq, AddressingMode: Relative, Effect: Flow},
	{OpCode: 0xd0, Operator: Bne, AddressingMode: Relative, Effect: Flow},
	{OpCode: 0x30, Operator: Bmi, AddressingMode: Relative, Effect: Flow},
	{OpCode: 0x10, Operator: Bpl, AddressingMode: Relative, Effect: Flow},
	{OpCode: 0x50, Operator: Bvc, AddressingMode: Relative, Effect: Flow},
	{OpCode: 0x70, Operator: Bvs, AddressingMode: Relative, Effect: Flow},

	// jumps and subroutines
	{OpCode: 0x4c, Operator: Jmp, AddressingMode: Absolute, Effect: Flow},
	{OpCode: 0x6c, Operator: Jmp, AddressingMode: Indirect, Effect: Flow},
	{OpCode: 0x20, Operator: Jsr, AddressingMode: Absolute, Effect: Subroutine},
	{OpCode: 0x60, Operator: Rts, AddressingMode: Implied, Effect: Subroutine},
}

// GetDefinitions returns the instruction table indexed by opcode. Opcodes
// that are not part of the instruction set have a nil entry.
func GetDefinitions() []*Definition {
	table := make([]*Definition, 256)
	for i := range definitions {
		defn := definitions[i]
		table[defn.OpCode] = &defn
	}
	return table
}
