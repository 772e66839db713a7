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

package memory

import (
	"fmt"
	"io"

	"github.com/jetsetilly/gopher6502/curated"
	"github.com/jetsetilly/gopher6502/hardware/memory/addresses"
)

// Sentinal error patterns.
const (
	ImageTooLarge = "memory: image too large (%d bytes, maximum of %d bytes at %#04x)"
)

// Memory is the flat 64KB address space. Because the address space is exactly
// sixteen bits wide there is no such thing as an out-of-range address.
type Memory struct {
	data [addresses.MemorySize]uint8
}

// NewMemory is the preferred method of initialisation for the Memory type.
// All bytes are zero.
func NewMemory() *Memory {
	return &Memory{}
}

// Snapshot creates a copy of memory in its current state.
func (mem *Memory) Snapshot() *Memory {
	n := *mem
	return &n
}

// Equal returns true if the contents of both memories are identical.
func (mem *Memory) Equal(o *Memory) bool {
	return mem.data == o.data
}

// Clear sets all bytes in memory to zero.
func (mem *Memory) Clear() {
	mem.data = [addresses.MemorySize]uint8{}
}

// Read returns the byte at address. There are no side effects.
func (mem *Memory) Read(address uint16) uint8 {
	return mem.data[address]
}

// Write value to address.
func (mem *Memory) Write(address uint16, value uint8) {
	mem.data[address] = value
}

// Read16 returns the little-endian word at address. The high byte is read from
// address+1, which wraps to zero at the top of memory.
func (mem *Memory) Read16(address uint16) uint16 {
	lo := mem.data[address]
	hi := mem.data[address+1]
	return (uint16(hi) << 8) | uint16(lo)
}

// Write16 writes value as a little-endian word at address.
func (mem *Memory) Write16(address uint16, value uint16) {
	mem.data[address] = uint8(value)
	mem.data[address+1] = uint8(value >> 8)
}

// Load copies the image into memory at addresses.LoadBase and points the Reset
// vector at the start of the image. The image must not overlap the Reset
// vector. Memory is unchanged if an error is returned.
func (mem *Memory) Load(image []uint8) error {
	max := int(addresses.Reset - addresses.LoadBase)
	if len(image) > max {
		return curated.Errorf(ImageTooLarge, len(image), max, addresses.LoadBase)
	}

	copy(mem.data[addresses.LoadBase:], image)
	mem.Write16(addresses.Reset, addresses.LoadBase)

	return nil
}

// Dump writes a hex dump of the memory between from and to inclusive. Lines
// are aligned to sixteen byte boundaries.
func (mem *Memory) Dump(output io.Writer, from uint16, to uint16) {
	if to < from {
		return
	}

	for line := int(from) &^ 0x0f; line <= int(to); line += 16 {
		s := fmt.Sprintf("%04x ", line)
		for i := line; i < line+16; i++ {
			if i < int(from) || i > int(to) {
				s = fmt.Sprintf("%s   ", s)
			} else {
				s = fmt.Sprintf("%s %02x", s, mem.data[i])
			}
		}
		io.WriteString(output, s)
		io.WriteString(output, "\n")
	}
}
