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

package cpu

import (
	"github.com/jetsetilly/gopher6502/curated"
	"github.com/jetsetilly/gopher6502/hardware/cpu/execution"
	"github.com/jetsetilly/gopher6502/hardware/cpu/instructions"
)

// resolve returns the effective address for the addressing mode. the PC must
// be pointing at the first byte of the operand. the PC is never changed by
// this function.
//
// for immediate and relative addressing the effective address is the address
// of the operand itself.
func (mc *CPU) resolve(mode instructions.AddressingMode) (uint16, error) {
	pc := mc.pc.Address()

	switch mode {
	case instructions.Immediate, instructions.Relative:
		return pc, nil

	case instructions.ZeroPage:
		return uint16(mc.mem.Read(pc)), nil

	case instructions.ZeroPageX:
		return mc.zeroPageIndexed(mc.mem.Read(pc), mc.x.Value()), nil

	case instructions.ZeroPageY:
		return mc.zeroPageIndexed(mc.mem.Read(pc), mc.y.Value()), nil

	case instructions.Absolute:
		return mc.mem.Read16(pc), nil

	case instructions.AbsoluteX:
		return mc.mem.Read16(pc) + uint16(mc.x.Value()), nil

	case instructions.AbsoluteY:
		return mc.mem.Read16(pc) + uint16(mc.y.Value()), nil

	case instructions.Indirect:
		// the high byte of the indirect address is read from the same page as
		// the low byte, even if the low byte is at the end of the page
		ptr := mc.mem.Read16(pc)
		lo := mc.mem.Read(ptr)
		hi := mc.mem.Read((ptr & 0xff00) | ((ptr + 1) & 0x00ff))
		if ptr&0x00ff == 0x00ff {
			mc.LastResult.Quirk = execution.JmpIndirectPageWrap
		}
		return uint16(hi)<<8 | uint16(lo), nil

	case instructions.IndexedIndirect:
		ptr := mc.zeroPageIndexed(mc.mem.Read(pc), mc.x.Value())
		return mc.readZeroPage16(uint8(ptr)), nil

	case instructions.IndirectIndexed:
		base := mc.readZeroPage16(mc.mem.Read(pc))
		return base + uint16(mc.y.Value()), nil
	}

	return 0, curated.Errorf(InvalidAddressingMode, mode)
}

// zeroPageIndexed adds the index to the zero page address. the result never
// leaves the zero page.
func (mc *CPU) zeroPageIndexed(address uint8, index uint8) uint16 {
	if uint16(address)+uint16(index) > 0xff {
		mc.LastResult.Quirk = execution.ZeroPageIndexWrap
	}
	return uint16(address + index)
}

// readZeroPage16 reads a 16bit value from the zero page. the high byte is
// read from the start of the zero page if the low byte is at 0xff.
func (mc *CPU) readZeroPage16(address uint8) uint16 {
	if address == 0xff {
		mc.LastResult.Quirk = execution.IndirectPointerWrap
	}
	lo := mc.mem.Read(uint16(address))
	hi := mc.mem.Read(uint16(address + 1))
	return uint16(hi)<<8 | uint16(lo)
}

// operand returns the value referred to by the addressing mode.
func (mc *CPU) operand(mode instructions.AddressingMode) (uint8, error) {
	address, err := mc.resolve(mode)
	if err != nil {
		return 0, err
	}
	return mc.mem.Read(address), nil
}
