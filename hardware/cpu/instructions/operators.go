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

// Operator identifies the operation performed by an instruction. Many opcodes
// share the same operator, differing only by addressing mode.
type Operator int

// List of supported operators.
const (
	Nop Operator = iota
	Brk

	// loads and stores
	Lda
	Ldx
	Ldy
	Sta
	Stx
	Sty

	// register transfers
	Tax
	Txa
	Tay
	Tya
	Tsx
	Txs

	// stack
	Pha
	Pla
	Php
	Plp

	// arithmetic and logic
	Adc
	Sbc
	And
	Ora
	Eor
	Asl
	Lsr
	Rol
	Bit

	// increments and decrements
	Inc
	Dec
	Inx
	Iny
	Dex
	Dey

	// comparisons
	Cmp
	Cpx
	Cpy

	// flags
	Clc
	Sec
	Cli
	Sei
	Cld
	Sed
	Clv

	// flow
	Bcc
	Bcs
	Beq
	Bne
	Bmi
	Bpl
	Bvc
	Bvs
	Jmp
	Jsr
	Rts
)

var mnemonics = map[Operator]string{
	Nop: "NOP", Brk: "BRK",
	Lda: "LDA", Ldx: "LDX", Ldy: "LDY", Sta: "STA", Stx: "STX", Sty: "STY",
	Tax: "TAX", Txa: "TXA", Tay: "TAY", Tya: "TYA", Tsx: "TSX", Txs: "TXS",
	Pha: "PHA", Pla: "PLA", Php: "PHP", Plp: "PLP",
	Adc: "ADC", Sbc: "SBC", And: "AND", Ora: "ORA", Eor: "EOR",
	Asl: "ASL", Lsr: "LSR", Rol: "ROL", Bit: "BIT",
	Inc: "INC", Dec: "DEC", Inx: "INX", Iny: "INY", Dex: "DEX", Dey: "DEY",
	Cmp: "CMP", Cpx: "CPX", Cpy: "CPY",
	Clc: "CLC", Sec: "SEC", Cli: "CLI", Sei: "SEI", Cld: "CLD", Sed: "SED", Clv: "CLV",
	Bcc: "BCC", Bcs: "BCS", Beq: "BEQ", Bne: "BNE", Bmi: "BMI", Bpl: "BPL", Bvc: "BVC", Bvs: "BVS",
	Jmp: "JMP", Jsr: "JSR", Rts: "RTS",
}

func (o Operator) String() string {
	if m, ok := mnemonics[o]; ok {
		return m
	}
	return "???"
}
