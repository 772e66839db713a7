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

// push writes the value to the stack page at the current stack pointer and
// then decrements the stack pointer.
func (mc *CPU) push(value uint8) {
	mc.mem.Write(mc.sp.Address(), value)
	mc.sp.Decrement()
}

// pop increments the stack pointer and then reads the value on the stack page
// at the new stack pointer.
func (mc *CPU) pop() uint8 {
	mc.sp.Increment()
	return mc.mem.Read(mc.sp.Address())
}

// push16 pushes the high byte and then the low byte.
func (mc *CPU) push16(value uint16) {
	mc.push(uint8(value >> 8))
	mc.push(uint8(value))
}

// pop16 pops the low byte and then the high byte.
func (mc *CPU) pop16() uint16 {
	lo := mc.pop()
	hi := mc.pop()
	return uint16(hi)<<8 | uint16(lo)
}
