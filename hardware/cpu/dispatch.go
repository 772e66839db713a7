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
	"github.com/jetsetilly/gopher6502/hardware/cpu/instructions"
	"github.com/jetsetilly/gopher6502/logger"
)

// Sentinal error patterns.
const (
	IllegalOpcode         = "cpu: illegal opcode (%#02x) at %#04x"
	InvalidAddressingMode = "cpu: invalid addressing mode (%v)"
	StepAfterFault        = "cpu: faulted at %#04x (reset required)"
)

// handler implements the operator of an instruction. it returns true if the
// handler loaded the PC, in which case the dispatcher will not advance the PC
// past the operand.
type handler func(mc *CPU, defn *instructions.Definition) (bool, error)

// descriptor is a single entry in the dispatch table.
type descriptor struct {
	defn    *instructions.Definition
	handler handler
}

// dispatch is indexed by opcode. an entry with a nil defn is an illegal
// opcode.
var dispatch [256]descriptor

func init() {
	for opcode, defn := range instructions.GetDefinitions() {
		if defn == nil {
			continue
		}

		h, ok := handlers[defn.Operator]
		if !ok {
			// a definition without a handler is treated as an illegal
			// opcode. this makes it possible to add definitions to the
			// instruction table before the operator is implemented
			continue
		}

		dispatch[opcode] = descriptor{defn: defn, handler: h}
	}
}

// Step executes the instruction at the PC. If the CPU is already halted the
// function returns immediately without fetching anything from memory.
//
// An illegal opcode or an invalid addressing mode results in a curated error
// and the Faulted state. Effects of the instruction in which the error
// occurred should not be trusted. Stepping a faulted CPU returns an error
// matching StepAfterFault without fetching anything, until Reset() is called.
func (mc *CPU) Step() (State, error) {
	switch mc.state {
	case Halted:
		return Halted, nil
	case Faulted:
		return Faulted, curated.Errorf(StepAfterFault, mc.LastResult.Address)
	}

	mc.LastResult.Reset()
	mc.LastResult.Address = mc.pc.Address()

	opcode := mc.mem.Read(mc.pc.Address())
	mc.pc.Add(1)

	d := dispatch[opcode]
	if d.defn == nil {
		logger.Logf(mc, "CPU", "illegal opcode %#02x at %#04x", opcode, mc.LastResult.Address)
		mc.state = Faulted
		return mc.state, curated.Errorf(IllegalOpcode, opcode, mc.LastResult.Address)
	}

	mc.LastResult.Defn = d.defn
	mc.LastResult.ByteCount = 1

	// note the instruction's operand. the PC points to the first byte of the
	// operand and is not advanced until after the handler has completed
	switch d.defn.AddressingMode.OperandBytes() {
	case 1:
		mc.LastResult.InstructionData = uint16(mc.mem.Read(mc.pc.Address()))
		mc.LastResult.ByteCount++
	case 2:
		mc.LastResult.InstructionData = mc.mem.Read16(mc.pc.Address())
		mc.LastResult.ByteCount += 2
	}

	loaded, err := d.handler(mc, d.defn)
	if err != nil {
		mc.state = Faulted
		return mc.state, err
	}

	if !loaded {
		mc.pc.Add(uint16(d.defn.AddressingMode.OperandBytes()))
	}

	mc.LastResult.PCLoaded = loaded
	mc.LastResult.Final = true

	if mc.state == Halted {
		logger.Logf(mc, "CPU", "halted at %#04x", mc.LastResult.Address)
	}

	return mc.state, nil
}

// Run executes instructions until the CPU halts or an error occurs. The
// observer function, if not nil, is called after every instruction except the
// one that halts the CPU. An error returned by the observer stops the run and
// is returned by Run().
func (mc *CPU) Run(observer func(*CPU) error) error {
	for {
		state, err := mc.Step()
		if err != nil {
			return err
		}
		if state == Halted {
			return nil
		}
		if observer != nil {
			if err := observer(mc); err != nil {
				return err
			}
		}
	}
}

// RunFor is the same as Run() except that no more than max instructions will
// be executed. Returns the number of instructions executed, including any
// halting instruction, and the state of the CPU.
func (mc *CPU) RunFor(max int, observer func(*CPU) error) (int, State, error) {
	var steps int

	if mc.state == Halted {
		return 0, Halted, nil
	}

	for steps < max {
		state, err := mc.Step()
		if err != nil {
			return steps, state, err
		}
		if state == Halted {
			steps++
			return steps, state, nil
		}
		steps++

		if observer != nil {
			if err := observer(mc); err != nil {
				return steps, state, err
			}
		}
	}

	return steps, mc.state, nil
}
