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

// Package instructions defines the instruction set of the 6502. Each opcode
// is described by a Definition which names the operator, the addressing mode
// and the general effect of the instruction.
//
// The number of bytes that make up an instruction is derived from the
// addressing mode. The CPU uses this to advance the program counter past the
// operand of an instruction that does not load the program counter itself.
//
// Only a subset of the 6502 instruction set is defined. Undocumented opcodes,
// RTI, ROR and the memory forms of LSR are not present.
package instructions
