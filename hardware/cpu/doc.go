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

// Package cpu emulates the execution core of a 6502 microprocessor. Like all
// 8-bit processors of the era, the 6502 executes instructions according to
// the single byte value read from an address pointed to by the program
// counter. This single byte is the opcode and is looked up in the dispatch
// table. The instruction definition for that opcode is then used to move
// execution of the program forward.
//
// The CPU owns a flat 64KB memory. A program image is loaded with the Load()
// function, which also points the reset vector at the image. The Reset()
// function prepares the CPU for execution from the address in the reset
// vector.
//
//	mc := cpu.NewCPU()
//	err := mc.Load([]uint8{0xa9, 0x05, 0xaa, 0x00})
//	if err != nil {
//		return err
//	}
//	mc.Reset()
//
//	numInstructions := 0
//	err = mc.Run(func(mc *cpu.CPU) error {
//		numInstructions++
//		return nil
//	})
//
// The observer function is called after every instruction except the BRK
// instruction that halts the CPU. Step() executes a single instruction and
// RunFor() places an upper limit on the number of instructions executed.
//
// The LastResult field can be probed for information about the last
// instruction executed. See the execution package for more information. Very
// useful for debuggers.
//
// Some instructions implement flag behaviour that differs from the canonical
// 6502. These differences are deliberate and are recorded in the LastResult
// as a named quirk whenever they are executed.
//
// Errors are curated errors. An opcode that is not in the dispatch table
// results in an error matching the IllegalOpcode pattern. The run is
// considered terminated and the effects of the failed instruction should not
// be trusted.
package cpu
