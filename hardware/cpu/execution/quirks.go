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

// Quirk names a code path where the CPU deliberately departs from, or
// exhibits a well known oddity of, the canonical 6502 behaviour.
type Quirk string

// List of quirks. The empty string indicates that no quirk was triggered.
const (
	NoQuirk Quirk = ""

	// addressing oddities of the real 6502
	JmpIndirectPageWrap Quirk = "indirect jump page wrap"
	ZeroPageIndexWrap   Quirk = "zero page index wrap"
	IndirectPointerWrap Quirk = "indirect pointer wrap"

	// flag behaviour that differs from the canonical 6502
	AndInlineZero         Quirk = "AND sets zero inline"
	RolPreShiftFlags      Quirk = "ROL flags from pre-shift value"
	LsrHighBitCarry       Quirk = "LSR carry from bit 7"
	CompareDecrementFlags Quirk = "compare flags from register-1"
	BitInvertedZero       Quirk = "BIT zero polarity inverted"
)
