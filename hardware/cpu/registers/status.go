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

package registers

import (
	"strings"
)

// Flag is the bit position of a status flag in the status register's byte
// form.
type Flag uint8

// List of valid Flag values.
const (
	FlagCarry            Flag = 0x01
	FlagZero             Flag = 0x02
	FlagInterruptDisable Flag = 0x04
	FlagDecimalMode      Flag = 0x08
	FlagBreak            Flag = 0x10
	FlagBreak2           Flag = 0x20
	FlagOverflow         Flag = 0x40
	FlagNegative         Flag = 0x80
)

func (f Flag) String() string {
	switch f {
	case FlagCarry:
		return "Carry"
	case FlagZero:
		return "Zero"
	case FlagInterruptDisable:
		return "InterruptDisable"
	case FlagDecimalMode:
		return "DecimalMode"
	case FlagBreak:
		return "Break"
	case FlagBreak2:
		return "Break2"
	case FlagOverflow:
		return "Overflow"
	case FlagNegative:
		return "Negative"
	}
	return "unknown flag"
}

// StatusReset is the value of the status register after power on or reset.
const StatusReset = uint8(FlagInterruptDisable | FlagBreak2)

// StatusRegister is the special purpose register that stores the flags of
// the CPU. Each flag is a named boolean. The byte form of the register is
// only produced when needed (pushing to the stack for example).
type StatusRegister struct {
	Negative         bool
	Overflow         bool
	Break2           bool
	Break            bool
	DecimalMode      bool
	InterruptDisable bool
	Zero             bool
	Carry            bool
}

// NewStatusRegister is the preferred method of initialisation for the status
// register. The register is in its reset state.
func NewStatusRegister() StatusRegister {
	var sr StatusRegister
	sr.Reset()
	return sr
}

// Label returns the name of the register.
func (sr StatusRegister) Label() string {
	return "SR"
}

// String returns the status register as a series of letters, one for each
// flag in the order NV-BDIZC. Upper case indicates that the flag is set. The
// Break2 flag is shown as '+' when set and '-' when not.
func (sr StatusRegister) String() string {
	s := strings.Builder{}

	flag := func(set bool, on rune, off rune) {
		if set {
			s.WriteRune(on)
		} else {
			s.WriteRune(off)
		}
	}

	flag(sr.Negative, 'N', 'n')
	flag(sr.Overflow, 'V', 'v')
	flag(sr.Break2, '+', '-')
	flag(sr.Break, 'B', 'b')
	flag(sr.DecimalMode, 'D', 'd')
	flag(sr.InterruptDisable, 'I', 'i')
	flag(sr.Zero, 'Z', 'z')
	flag(sr.Carry, 'C', 'c')

	return s.String()
}

// Reset status register to its power on state.
func (sr *StatusRegister) Reset() {
	sr.Load(StatusReset)
}

// SetZeroNegative is the rule shared by most instructions that change the
// value of a register. The Zero flag is set if the value is zero and the
// Negative flag is set if bit 7 of the value is set. No other flag is
// affected.
func (sr *StatusRegister) SetZeroNegative(value uint8) {
	sr.Zero = value == 0
	sr.Negative = value&0x80 == 0x80
}

// Get the state of a single flag.
func (sr StatusRegister) Get(f Flag) bool {
	return sr.Value()&uint8(f) == uint8(f)
}

// Set the state of a single flag.
func (sr *StatusRegister) Set(f Flag, set bool) {
	v := sr.Value()
	if set {
		v |= uint8(f)
	} else {
		v &^= uint8(f)
	}
	sr.Load(v)
}

// Value returns the byte form of the status register.
func (sr StatusRegister) Value() uint8 {
	var v uint8

	if sr.Negative {
		v |= uint8(FlagNegative)
	}
	if sr.Overflow {
		v |= uint8(FlagOverflow)
	}
	if sr.Break2 {
		v |= uint8(FlagBreak2)
	}
	if sr.Break {
		v |= uint8(FlagBreak)
	}
	if sr.DecimalMode {
		v |= uint8(FlagDecimalMode)
	}
	if sr.InterruptDisable {
		v |= uint8(FlagInterruptDisable)
	}
	if sr.Zero {
		v |= uint8(FlagZero)
	}
	if sr.Carry {
		v |= uint8(FlagCarry)
	}

	return v
}

// Load sets all flags from the byte form of the status register.
func (sr *StatusRegister) Load(v uint8) {
	sr.Negative = v&uint8(FlagNegative) != 0
	sr.Overflow = v&uint8(FlagOverflow) != 0
	sr.Break2 = v&uint8(FlagBreak2) != 0
	sr.Break = v&uint8(FlagBreak) != 0
	sr.DecimalMode = v&uint8(FlagDecimalMode) != 0
	sr.InterruptDisable = v&uint8(FlagInterruptDisable) != 0
	sr.Zero = v&uint8(FlagZero) != 0
	sr.Carry = v&uint8(FlagCarry) != 0
}
