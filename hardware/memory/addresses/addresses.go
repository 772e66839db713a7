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

package addresses

// Reset is the address where the reset address is stored. Execution begins at
// the address stored here when the CPU is reset.
const Reset = uint16(0xfffc)

// Stack is the base address of the page used for the hardware stack. The
// stack pointer is an offset into this page.
const Stack = uint16(0x0100)

// LoadBase is the address at which program images are loaded. The Reset
// vector is pointed at this address when an image is loaded.
//
// This is the same address used by many 6502 teaching environments and leaves
// the zero page and stack page free for the program.
const LoadBase = uint16(0x0600)

// MemorySize is the size of the flat address space.
const MemorySize = 0x10000
