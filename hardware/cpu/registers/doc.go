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

// Package registers implements the registers of the 6502: the 8-bit
// general purpose registers (A, X and Y), the 16-bit program counter, the
// stack pointer and the status register.
//
// Arithmetic on the registers always wraps. No operation on a register will
// ever panic or saturate.
//
// The status register is implemented as a series of named booleans rather
// than as a byte. The byte form is available through the Value() and Load()
// functions and uses the standard bit positions (see the Flag type).
//
// The registers do not update the status register themselves. Functions that
// produce a carry or an overflow return those values for the caller to use as
// it sees fit.
package registers
