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

// Package disassembly produces a linear disassembly of 6502 memory. It uses
// the same instruction definitions as the CPU so the disassembly will always
// agree with what the CPU would execute.
//
// Linear disassembly assumes that every instruction begins immediately after
// the previous one. Bytes that do not decode to an instruction are presented
// as data.
//
//	dsm, err := disassembly.FromMemory(mc, addresses.LoadBase, addresses.LoadBase+uint16(len(image))-1)
//	if err != nil {
//		return err
//	}
//	dsm.Write(os.Stdout)
//
// The Grep() function can be used to search the disassembly.
package disassembly
