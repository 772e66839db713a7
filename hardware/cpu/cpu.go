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
	"fmt"
	"io"

	"github.com/jetsetilly/gopher6502/hardware/cpu/execution"
	"github.com/jetsetilly/gopher6502/hardware/cpu/registers"
	"github.com/jetsetilly/gopher6502/hardware/memory"
	"github.com/jetsetilly/gopher6502/hardware/memory/addresses"
)

// Reset values for the registers that are not zeroed.
const (
	StackPointerReset = uint8(0xfd)
)

// State of the CPU's dispatcher.
type State int

// List of valid State values.
const (
	Running State = iota
	Halted

	// an instruction could not be executed. the CPU must be reset
	Faulted
)

func (s State) String() string {
	switch s {
	case Running:
		return "running"
	case Halted:
		return "halted"
	case Faulted:
		return "faulted"
	}
	return "unknown state"
}

// CPU implements a 6502 execution core over a flat 64KB memory. Register logic
// is implemented by the types in the registers sub-package.
//
// The CPU owns its memory. Access to memory from outside the CPU is through
// the Read() and Write() functions.
type CPU struct {
	pc     registers.ProgramCounter
	a      registers.Register
	x      registers.Register
	y      registers.Register
	sp     registers.StackPointer
	status registers.StatusRegister

	mem   *memory.Memory
	state State

	// LastResult describes the most recently executed instruction. The value
	// is replaced at the beginning of every call to Step()
	LastResult execution.Result

	// Quiet suppresses the CPU's entries in the central logger
	Quiet bool
}

// AllowLogging implements the logger.Permission interface.
func (mc *CPU) AllowLogging() bool {
	return !mc.Quiet
}

// NewCPU is the preferred method of initialisation for the CPU structure.
// Registers are zero except for the stack pointer and status register, which
// are in their reset state. Memory is zero-filled.
func NewCPU() *CPU {
	return &CPU{
		pc:     registers.NewProgramCounter(0),
		a:      registers.NewRegister(0, "A"),
		x:      registers.NewRegister(0, "X"),
		y:      registers.NewRegister(0, "Y"),
		sp:     registers.NewStackPointer(StackPointerReset),
		status: registers.NewStatusRegister(),
		mem:    memory.NewMemory(),
		state:  Running,
	}
}

// Snapshot creates a copy of the CPU in its current state. Memory is copied
// too so the snapshot is not affected by further execution.
func (mc *CPU) Snapshot() *CPU {
	n := *mc
	n.mem = mc.mem.Snapshot()
	return &n
}

// Equal returns true if both CPU instances have identical registers, state
// and memory.
func (mc *CPU) Equal(o *CPU) bool {
	return mc.Registers() == o.Registers() && mc.state == o.state && mc.mem.Equal(o.mem)
}

func (mc *CPU) String() string {
	return fmt.Sprintf("%s=%s %s=%s %s=%s %s=%s %s=%s %s=%s",
		mc.pc.Label(), mc.pc, mc.a.Label(), mc.a,
		mc.x.Label(), mc.x, mc.y.Label(), mc.y,
		mc.sp.Label(), mc.sp, mc.status.Label(), mc.status)
}

// Load copies the image into memory at the load base and points the reset
// vector at it. The CPU is not reset.
func (mc *CPU) Load(image []uint8) error {
	return mc.mem.Load(image)
}

// Reset zeroes the A and X registers, restores the stack pointer and status
// register to their reset values and loads the PC from the reset vector. Y
// and memory are untouched.
func (mc *CPU) Reset() {
	mc.LastResult.Reset()
	mc.a.Load(0)
	mc.x.Load(0)
	mc.sp.Load(StackPointerReset)
	mc.status.Reset()
	mc.pc.Load(mc.mem.Read16(addresses.Reset))
	mc.state = Running
}

// LoadAndRun is a convenience function that loads the image, resets the CPU
// and runs until the program halts.
func (mc *CPU) LoadAndRun(image []uint8, observer func(*CPU) error) error {
	if err := mc.Load(image); err != nil {
		return err
	}
	mc.Reset()
	return mc.Run(observer)
}

// Read returns the byte at the address. There are no side effects.
func (mc *CPU) Read(address uint16) uint8 {
	return mc.mem.Read(address)
}

// Write the value to the address.
func (mc *CPU) Write(address uint16, value uint8) {
	mc.mem.Write(address, value)
}

// Dump writes a hex dump of the memory range to output.
func (mc *CPU) Dump(output io.Writer, from uint16, to uint16) {
	mc.mem.Dump(output, from, to)
}

// A returns the value of the accumulator.
func (mc *CPU) A() uint8 {
	return mc.a.Value()
}

// X returns the value of the X index register.
func (mc *CPU) X() uint8 {
	return mc.x.Value()
}

// Y returns the value of the Y index register.
func (mc *CPU) Y() uint8 {
	return mc.y.Value()
}

// SP returns the value of the stack pointer.
func (mc *CPU) SP() uint8 {
	return mc.sp.Value()
}

// PC returns the value of the program counter.
func (mc *CPU) PC() uint16 {
	return mc.pc.Address()
}

// Flag returns the state of a single status flag.
func (mc *CPU) Flag(f registers.Flag) bool {
	return mc.status.Get(f)
}

// Status returns a copy of the status register.
func (mc *CPU) Status() registers.StatusRegister {
	return mc.status
}

// State returns the current state of the dispatcher.
func (mc *CPU) State() State {
	return mc.state
}

// Registers is a value copy of the CPU's register file.
type Registers struct {
	PC     registers.ProgramCounter
	A      registers.Register
	X      registers.Register
	Y      registers.Register
	SP     registers.StackPointer
	Status registers.StatusRegister
}

// Registers returns a copy of the register file.
func (mc *CPU) Registers() Registers {
	return Registers{
		PC:     mc.pc,
		A:      mc.a,
		X:      mc.x,
		Y:      mc.y,
		SP:     mc.sp,
		Status: mc.status,
	}
}
