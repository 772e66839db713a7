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

package cpu_test

import (
	"errors"
	"testing"

	"github.com/jetsetilly/gopher6502/curated"
	"github.com/jetsetilly/gopher6502/hardware/cpu"
	"github.com/jetsetilly/gopher6502/hardware/cpu/execution"
	"github.com/jetsetilly/gopher6502/hardware/cpu/registers"
	"github.com/jetsetilly/gopher6502/hardware/cpu/registers/assert"
	"github.com/jetsetilly/gopher6502/hardware/memory"
	"github.com/jetsetilly/gopher6502/hardware/memory/addresses"
	"github.com/jetsetilly/gopher6502/logger"
	"github.com/jetsetilly/gopher6502/test"
)

// run loads the program and runs it to completion. every instruction result
// is checked for validity.
func run(t *testing.T, program []uint8) *cpu.CPU {
	t.Helper()

	mc := cpu.NewCPU()
	err := mc.LoadAndRun(program, func(mc *cpu.CPU) error {
		return mc.LastResult.IsValid()
	})
	test.DemandSuccess(t, err)
	test.DemandEquality(t, mc.State(), cpu.Halted)

	return mc
}

func TestNewCPU(t *testing.T) {
	mc := cpu.NewCPU()
	r := mc.Registers()
	assert.Assert(t, r.A, 0)
	assert.Assert(t, r.X, 0)
	assert.Assert(t, r.Y, 0)
	assert.Assert(t, r.PC, 0)
	assert.Assert(t, r.SP, 0xfd)
	assert.Assert(t, r.Status, 0x24)
	assert.Assert(t, r.Status, "nv+bdIzc")
	test.ExpectEquality(t, mc.Read(addresses.Reset), 0)
}

func TestLoad(t *testing.T) {
	mc := cpu.NewCPU()
	test.DemandSuccess(t, mc.Load([]uint8{0xa9, 0x05, 0x00}))
	test.ExpectEquality(t, mc.Read(addresses.Reset), 0x00)
	test.ExpectEquality(t, mc.Read(addresses.Reset+1), 0x06)
	test.ExpectEquality(t, mc.Read(addresses.LoadBase), 0xa9)

	// loading does not reset the CPU
	test.ExpectEquality(t, mc.PC(), 0)
	mc.Reset()
	test.ExpectEquality(t, mc.PC(), addresses.LoadBase)

	err := mc.Load(make([]uint8, 0x10000))
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Is(err, memory.ImageTooLarge))
}

func TestReset(t *testing.T) {
	// LDA #$ff; LDX #$ff; LDY #$ff; SEC; PHA; BRK
	mc := run(t, []uint8{0xa9, 0xff, 0xa2, 0xff, 0xa0, 0xff, 0x38, 0x48, 0x00})
	test.ExpectEquality(t, mc.SP(), 0xfc)
	test.ExpectSuccess(t, mc.Flag(registers.FlagCarry))

	mc.Reset()
	test.ExpectEquality(t, mc.State(), cpu.Running)
	test.ExpectEquality(t, mc.A(), 0)
	test.ExpectEquality(t, mc.X(), 0)
	test.ExpectEquality(t, mc.Y(), 0xff)
	test.ExpectEquality(t, mc.SP(), 0xfd)
	test.ExpectEquality(t, mc.PC(), addresses.LoadBase)
	test.ExpectEquality(t, mc.Status().Value(), registers.StatusReset)

	// memory is untouched
	test.ExpectEquality(t, mc.Read(0x01fd), 0xff)
}

func TestLDAImmediate(t *testing.T) {
	mc := run(t, []uint8{0xa9, 0x05, 0x00})
	test.ExpectEquality(t, mc.A(), 0x05)
	test.ExpectFailure(t, mc.Flag(registers.FlagZero))
	test.ExpectFailure(t, mc.Flag(registers.FlagNegative))
}

func TestLDAZero(t *testing.T) {
	mc := run(t, []uint8{0xa9, 0x00, 0x00})
	test.ExpectEquality(t, mc.A(), 0x00)
	test.ExpectSuccess(t, mc.Flag(registers.FlagZero))
}

func TestLDANegative(t *testing.T) {
	mc := run(t, []uint8{0xa9, 0x80, 0x00})
	test.ExpectSuccess(t, mc.Flag(registers.FlagNegative))
	test.ExpectFailure(t, mc.Flag(registers.FlagZero))
}

func TestLDAFromMemory(t *testing.T) {
	mc := cpu.NewCPU()
	mc.Write(0x10, 0x55)
	test.DemandSuccess(t, mc.LoadAndRun([]uint8{0xa5, 0x10, 0x00}, nil))
	test.ExpectEquality(t, mc.A(), 0x55)
}

func TestTAX(t *testing.T) {
	mc := run(t, []uint8{0xa9, 0x0a, 0xaa, 0x00})
	test.ExpectEquality(t, mc.X(), 10)
}

func TestFiveOps(t *testing.T) {
	mc := run(t, []uint8{0xa9, 0xc0, 0xaa, 0xe8, 0x00})
	test.ExpectEquality(t, mc.X(), 0xc1)
}

func TestINXOverflow(t *testing.T) {
	mc := run(t, []uint8{0xa2, 0xff, 0xe8, 0x00})
	test.ExpectEquality(t, mc.X(), 0)
	test.ExpectSuccess(t, mc.Flag(registers.FlagZero))
	test.ExpectFailure(t, mc.Flag(registers.FlagNegative))

	mc = run(t, []uint8{0xa2, 0xff, 0xe8, 0xe8, 0x00})
	test.ExpectEquality(t, mc.X(), 1)
	test.ExpectFailure(t, mc.Flag(registers.FlagZero))
}

func TestDEX(t *testing.T) {
	mc := run(t, []uint8{0xa2, 0x01, 0xca, 0x00})
	test.ExpectEquality(t, mc.X(), 0)
	test.ExpectSuccess(t, mc.Flag(registers.FlagZero))

	mc = run(t, []uint8{0xca, 0x00})
	test.ExpectEquality(t, mc.X(), 0xff)
	test.ExpectSuccess(t, mc.Flag(registers.FlagNegative))
}

func TestADC(t *testing.T) {
	// 0xff + 0x01 with no carry in
	mc := run(t, []uint8{0xa9, 0xff, 0x69, 0x01, 0x00})
	test.ExpectEquality(t, mc.A(), 0x00)
	test.ExpectSuccess(t, mc.Flag(registers.FlagCarry))
	test.ExpectSuccess(t, mc.Flag(registers.FlagZero))
	test.ExpectFailure(t, mc.Flag(registers.FlagOverflow))
	test.ExpectFailure(t, mc.Flag(registers.FlagNegative))

	// signed overflow 0x7f + 0x01
	mc = run(t, []uint8{0xa9, 0x7f, 0x69, 0x01, 0x00})
	test.ExpectEquality(t, mc.A(), 0x80)
	test.ExpectSuccess(t, mc.Flag(registers.FlagOverflow))
	test.ExpectSuccess(t, mc.Flag(registers.FlagNegative))
	test.ExpectFailure(t, mc.Flag(registers.FlagCarry))

	// carry in
	mc = run(t, []uint8{0x38, 0xa9, 0x01, 0x69, 0x01, 0x00})
	test.ExpectEquality(t, mc.A(), 0x03)
}

func TestSBC(t *testing.T) {
	// SEC; LDA #$10; SBC #$01
	mc := run(t, []uint8{0x38, 0xa9, 0x10, 0xe9, 0x01, 0x00})
	test.ExpectEquality(t, mc.A(), 0x0f)
	test.ExpectSuccess(t, mc.Flag(registers.FlagCarry))

	// borrow
	mc = run(t, []uint8{0x38, 0xa9, 0x00, 0xe9, 0x01, 0x00})
	test.ExpectEquality(t, mc.A(), 0xff)
	test.ExpectFailure(t, mc.Flag(registers.FlagCarry))
	test.ExpectSuccess(t, mc.Flag(registers.FlagNegative))
}

func TestLogical(t *testing.T) {
	mc := run(t, []uint8{0xa9, 0xf0, 0x09, 0x0f, 0x00})
	test.ExpectEquality(t, mc.A(), 0xff)
	test.ExpectSuccess(t, mc.Flag(registers.FlagNegative))

	mc = run(t, []uint8{0xa9, 0xff, 0x49, 0xff, 0x00})
	test.ExpectEquality(t, mc.A(), 0x00)
	test.ExpectSuccess(t, mc.Flag(registers.FlagZero))
}

func TestStoreAndMemoryModify(t *testing.T) {
	// LDA #$41; STA $0200; LDX #$02; STX $10; LDY #$03; STY $11;
	// INC $0200; DEC $10; ASL $11
	mc := run(t, []uint8{
		0xa9, 0x41, 0x8d, 0x00, 0x02,
		0xa2, 0x02, 0x86, 0x10,
		0xa0, 0x03, 0x84, 0x11,
		0xee, 0x00, 0x02,
		0xc6, 0x10,
		0x06, 0x11,
		0x00,
	})
	test.ExpectEquality(t, mc.Read(0x0200), 0x42)
	test.ExpectEquality(t, mc.Read(0x10), 0x01)
	test.ExpectEquality(t, mc.Read(0x11), 0x06)
}

func TestIndexedAddressing(t *testing.T) {
	mc := cpu.NewCPU()
	mc.Write(0x20, 0x00)
	mc.Write(0x21, 0x03)
	mc.Write(0x0305, 0x99)

	// LDY #$05; LDA ($20),Y; LDX #$04; STA $0300,X; STA $80,X
	err := mc.LoadAndRun([]uint8{0xa0, 0x05, 0xb1, 0x20, 0xa2, 0x04, 0x9d, 0x00, 0x03, 0x95, 0x80, 0x00}, nil)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, mc.A(), 0x99)
	test.ExpectEquality(t, mc.Read(0x0304), 0x99)
	test.ExpectEquality(t, mc.Read(0x84), 0x99)
}

func TestTransfers(t *testing.T) {
	// LDA #$80; TAY; LDA #$00; TYA; TSX; LDX #$40; TXS; TXA
	mc := run(t, []uint8{0xa9, 0x80, 0xa8, 0xa9, 0x00, 0x98, 0xba, 0xa2, 0x40, 0x9a, 0x8a, 0x00})
	test.ExpectEquality(t, mc.Y(), 0x80)
	test.ExpectEquality(t, mc.A(), 0x40)
	test.ExpectEquality(t, mc.SP(), 0x40)
	test.ExpectFailure(t, mc.Flag(registers.FlagNegative))

	// TSX sets flags from the stack pointer
	mc = run(t, []uint8{0xba, 0x00})
	test.ExpectEquality(t, mc.X(), 0xfd)
	test.ExpectSuccess(t, mc.Flag(registers.FlagNegative))

	// TXS does not affect flags
	mc = run(t, []uint8{0xa2, 0x00, 0xa9, 0x01, 0x9a, 0x00})
	test.ExpectEquality(t, mc.SP(), 0x00)
	test.ExpectFailure(t, mc.Flag(registers.FlagZero))
}

func TestFlags(t *testing.T) {
	// SEC; SED; CLI
	mc := run(t, []uint8{0x38, 0xf8, 0x58, 0x00})
	assert.Assert(t, mc.Status(), "nv+bDizC")

	// CLC; CLD; SEI
	mc = run(t, []uint8{0x38, 0xf8, 0x18, 0xd8, 0x78, 0x00})
	assert.Assert(t, mc.Status(), "nv+bdIzc")

	// BIT sets overflow. CLV clears it
	mc = cpu.NewCPU()
	mc.Write(0x10, 0x40)
	test.DemandSuccess(t, mc.LoadAndRun([]uint8{0x24, 0x10, 0x00}, nil))
	test.ExpectSuccess(t, mc.Flag(registers.FlagOverflow))
	test.DemandSuccess(t, mc.LoadAndRun([]uint8{0x24, 0x10, 0xb8, 0x00}, nil))
	test.ExpectFailure(t, mc.Flag(registers.FlagOverflow))
}

func TestJSRRTS(t *testing.T) {
	// 0600 JSR $0607
	// 0603 LDX #$01
	// 0605 BRK
	// 0606 .byte $00
	// 0607 LDA #$42
	// 0609 RTS
	program := []uint8{0x20, 0x07, 0x06, 0xa2, 0x01, 0x00, 0x00, 0xa9, 0x42, 0x60}

	mc := cpu.NewCPU()
	test.DemandSuccess(t, mc.Load(program))
	mc.Reset()

	state, err := mc.Step()
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, state, cpu.Running)
	test.ExpectEquality(t, mc.PC(), 0x0607)
	test.ExpectEquality(t, mc.SP(), 0xfb)
	test.ExpectEquality(t, mc.Read(0x01fd), 0x06)
	test.ExpectEquality(t, mc.Read(0x01fc), 0x02)
	test.ExpectSuccess(t, mc.LastResult.PCLoaded)

	test.DemandSuccess(t, mc.Run(nil))
	test.ExpectEquality(t, mc.A(), 0x42)
	test.ExpectEquality(t, mc.X(), 0x01)
	test.ExpectEquality(t, mc.SP(), 0xfd)
	test.ExpectEquality(t, mc.PC(), 0x0606)
}

func TestPHP(t *testing.T) {
	mc := run(t, []uint8{0x08, 0x00})
	test.ExpectEquality(t, mc.Read(0x01fd), 0x34)
	test.ExpectEquality(t, mc.SP(), 0xfc)

	// live status register is unchanged
	test.ExpectEquality(t, mc.Status().Value(), 0x24)
}

func TestPushPull(t *testing.T) {
	// LDA #$ff; PHA; LDA #$00; PLA
	mc := run(t, []uint8{0xa9, 0xff, 0x48, 0xa9, 0x00, 0x68, 0x00})
	test.ExpectEquality(t, mc.A(), 0xff)
	test.ExpectEquality(t, mc.SP(), 0xfd)
	test.ExpectSuccess(t, mc.Flag(registers.FlagNegative))

	// PLP clears the break flag and sets the break2 flag
	mc = run(t, []uint8{0xa9, 0xff, 0x48, 0x28, 0x00})
	assert.Assert(t, mc.Status(), "NV+bDIZC")
	mc = run(t, []uint8{0xa9, 0x00, 0x48, 0x28, 0x00})
	assert.Assert(t, mc.Status(), "nv+bdizc")
}

func TestStackWrap(t *testing.T) {
	// LDX #$00; TXS; LDA #$aa; PHA
	mc := run(t, []uint8{0xa2, 0x00, 0x9a, 0xa9, 0xaa, 0x48, 0x00})
	test.ExpectEquality(t, mc.Read(0x0100), 0xaa)
	test.ExpectEquality(t, mc.SP(), 0xff)

	// LDX #$ff; TXS; PLA
	mc = cpu.NewCPU()
	mc.Write(0x0100, 0x11)
	test.DemandSuccess(t, mc.LoadAndRun([]uint8{0xa2, 0xff, 0x9a, 0x68, 0x00}, nil))
	test.ExpectEquality(t, mc.SP(), 0x00)
	test.ExpectEquality(t, mc.A(), 0x11)
}

func TestBranches(t *testing.T) {
	// 0600 LDX #$03
	// 0602 DEX
	// 0603 BNE $0602
	// 0605 BRK
	mc := cpu.NewCPU()
	test.DemandSuccess(t, mc.Load([]uint8{0xa2, 0x03, 0xca, 0xd0, 0xfd, 0x00}))
	mc.Reset()

	steps, state, err := mc.RunFor(100, nil)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, state, cpu.Halted)
	test.ExpectEquality(t, steps, 8)
	test.ExpectEquality(t, mc.X(), 0)
	test.ExpectEquality(t, mc.PC(), 0x0606)

	// branches not taken advance past the offset
	mc = cpu.NewCPU()
	test.DemandSuccess(t, mc.Load([]uint8{0x90, 0x10, 0xb0, 0x10, 0x00}))
	mc.Reset()
	_, err = mc.Step()
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, mc.LastResult.PCLoaded)
	test.ExpectEquality(t, mc.PC(), 0x0612)

	mc.Reset()
	mc.Write(0x0600, 0xb0)
	_, err = mc.Step()
	test.DemandSuccess(t, err)
	test.ExpectFailure(t, mc.LastResult.PCLoaded)
	test.ExpectEquality(t, mc.PC(), 0x0602)
}

func TestJMP(t *testing.T) {
	// JMP $0605; BRK; BRK; LDA #$01
	mc := run(t, []uint8{0x4c, 0x05, 0x06, 0x00, 0x00, 0xa9, 0x01, 0x00})
	test.ExpectEquality(t, mc.A(), 0x01)

	// JMP ($0010)
	mc = cpu.NewCPU()
	mc.Write(0x10, 0x05)
	mc.Write(0x11, 0x06)
	test.DemandSuccess(t, mc.LoadAndRun([]uint8{0x6c, 0x10, 0x00, 0x00, 0x00, 0xa9, 0x02, 0x00}, nil))
	test.ExpectEquality(t, mc.A(), 0x02)
}

func TestHalt(t *testing.T) {
	mc := cpu.NewCPU()
	test.DemandSuccess(t, mc.Load([]uint8{0x00}))
	mc.Reset()

	state, err := mc.Step()
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, state, cpu.Halted)
	test.ExpectEquality(t, mc.PC(), 0x0601)

	// stepping a halted CPU does nothing
	state, err = mc.Step()
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, state, cpu.Halted)
	test.ExpectEquality(t, mc.PC(), 0x0601)

	steps, state, err := mc.RunFor(10, nil)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, steps, 0)
	test.ExpectEquality(t, state, cpu.Halted)
}

func TestQuiet(t *testing.T) {
	tw := &test.CompareWriter{}
	logger.Clear()

	mc := cpu.NewCPU()
	test.DemandSuccess(t, mc.LoadAndRun([]uint8{0xa9, 0x01, 0x00}, nil))
	logger.Write(tw)
	test.DemandEquality(t, len(tw.Lines()), 1)
	test.ExpectSuccess(t, tw.Contains("CPU: halted at 0x0602"))

	tw.Clear()
	logger.Clear()

	mc = cpu.NewCPU()
	mc.Quiet = true
	test.DemandSuccess(t, mc.LoadAndRun([]uint8{0xa9, 0x01, 0x00}, nil))
	test.ExpectEquality(t, mc.State(), cpu.Halted)
	logger.Write(tw)
	test.ExpectEquality(t, len(tw.Lines()), 0)
}

func TestIllegalOpcode(t *testing.T) {
	mc := cpu.NewCPU()
	test.DemandSuccess(t, mc.Load([]uint8{0xa9, 0x01, 0x02, 0x00}))
	mc.Reset()

	err := mc.Run(nil)
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Is(err, cpu.IllegalOpcode))
	test.ExpectEquality(t, mc.A(), 0x01)
	test.ExpectFailure(t, mc.LastResult.Final)
	test.ExpectEquality(t, mc.LastResult.Address, 0x0602)
	test.ExpectEquality(t, mc.State(), cpu.Faulted)

	// the fault is sticky. the byte after the illegal opcode is not executed
	pc := mc.PC()
	state, err := mc.Step()
	test.ExpectEquality(t, state, cpu.Faulted)
	test.ExpectSuccess(t, curated.Is(err, cpu.StepAfterFault))
	test.ExpectEquality(t, mc.PC(), pc)

	steps, state, err := mc.RunFor(10, nil)
	test.ExpectEquality(t, steps, 0)
	test.ExpectEquality(t, state, cpu.Faulted)
	test.ExpectSuccess(t, curated.Is(err, cpu.StepAfterFault))

	// reset clears the fault
	mc.Reset()
	test.ExpectEquality(t, mc.State(), cpu.Running)
	test.ExpectEquality(t, mc.State().String(), "running")
	_, err = mc.Step()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, mc.A(), 0x01)
}

func TestObserver(t *testing.T) {
	var count int
	mc := cpu.NewCPU()
	err := mc.LoadAndRun([]uint8{0xa9, 0xc0, 0xaa, 0xe8, 0x00}, func(mc *cpu.CPU) error {
		count++
		return nil
	})
	test.DemandSuccess(t, err)

	// the halting instruction is not observed
	test.ExpectEquality(t, count, 3)

	// an observer error stops the run
	stop := errors.New("stop")
	count = 0
	err = mc.LoadAndRun([]uint8{0xa9, 0xc0, 0xaa, 0xe8, 0x00}, func(mc *cpu.CPU) error {
		count++
		if mc.X() == 0xc0 {
			return stop
		}
		return nil
	})
	test.ExpectSuccess(t, errors.Is(err, stop))
	test.ExpectEquality(t, count, 2)
	test.ExpectEquality(t, mc.State(), cpu.Running)
}

func TestRunFor(t *testing.T) {
	// JMP $0600
	mc := cpu.NewCPU()
	test.DemandSuccess(t, mc.Load([]uint8{0x4c, 0x00, 0x06}))
	mc.Reset()

	steps, state, err := mc.RunFor(100, nil)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, steps, 100)
	test.ExpectEquality(t, state, cpu.Running)
	test.ExpectEquality(t, mc.PC(), 0x0600)
}

func TestQuirks(t *testing.T) {
	// ROL takes zero and negative flags from the value before rotation
	mc := run(t, []uint8{0xa9, 0x80, 0x2a, 0x00})
	test.ExpectEquality(t, mc.A(), 0x00)
	test.ExpectSuccess(t, mc.Flag(registers.FlagCarry))
	test.ExpectSuccess(t, mc.Flag(registers.FlagNegative))
	test.ExpectFailure(t, mc.Flag(registers.FlagZero))

	// LSR takes carry from bit 7
	mc = run(t, []uint8{0xa9, 0x81, 0x4a, 0x00})
	test.ExpectEquality(t, mc.A(), 0x40)
	test.ExpectSuccess(t, mc.Flag(registers.FlagCarry))
	mc = run(t, []uint8{0xa9, 0x01, 0x4a, 0x00})
	test.ExpectEquality(t, mc.A(), 0x00)
	test.ExpectFailure(t, mc.Flag(registers.FlagCarry))
	test.ExpectSuccess(t, mc.Flag(registers.FlagZero))

	// compare takes zero and negative flags from register-1
	mc = run(t, []uint8{0xa9, 0x05, 0xc9, 0x05, 0x00})
	test.ExpectSuccess(t, mc.Flag(registers.FlagCarry))
	test.ExpectFailure(t, mc.Flag(registers.FlagZero))
	mc = run(t, []uint8{0xa2, 0x01, 0xe0, 0x01, 0x00})
	test.ExpectSuccess(t, mc.Flag(registers.FlagZero))
	mc = run(t, []uint8{0xa0, 0x00, 0xc0, 0x01, 0x00})
	test.ExpectFailure(t, mc.Flag(registers.FlagCarry))
	test.ExpectSuccess(t, mc.Flag(registers.FlagNegative))

	// BIT zero polarity
	mc = cpu.NewCPU()
	mc.Write(0x10, 0xc1)
	test.DemandSuccess(t, mc.LoadAndRun([]uint8{0xa9, 0x0f, 0x24, 0x10, 0x00}, nil))
	test.ExpectSuccess(t, mc.Flag(registers.FlagZero))
	test.ExpectSuccess(t, mc.Flag(registers.FlagOverflow))
	test.ExpectSuccess(t, mc.Flag(registers.FlagNegative))

	// quirks are recorded in the last result
	quirks := []struct {
		program []uint8
		quirk   execution.Quirk
	}{
		{program: []uint8{0xa9, 0xf0, 0x29, 0x0f}, quirk: execution.AndInlineZero},
		{program: []uint8{0xa9, 0x80, 0x2a}, quirk: execution.RolPreShiftFlags},
		{program: []uint8{0xa9, 0x80, 0x4a}, quirk: execution.LsrHighBitCarry},
		{program: []uint8{0xa9, 0x80, 0xc9, 0x01}, quirk: execution.CompareDecrementFlags},
		{program: []uint8{0xa9, 0x80, 0x24, 0x10}, quirk: execution.BitInvertedZero},
		{program: []uint8{0xa2, 0x01, 0xb5, 0xff}, quirk: execution.ZeroPageIndexWrap},
		{program: []uint8{0xa9, 0x80, 0xa1, 0xff}, quirk: execution.IndirectPointerWrap},
		{program: []uint8{0xa9, 0x80, 0x6c, 0xff, 0x02}, quirk: execution.JmpIndirectPageWrap},
	}

	for i, q := range quirks {
		mc := cpu.NewCPU()
		test.DemandSuccess(t, mc.Load(q.program))
		mc.Reset()
		_, _, err := mc.RunFor(2, nil)
		test.DemandSuccess(t, err, i)
		test.ExpectEquality(t, mc.LastResult.Quirk, q.quirk, i)
	}

	// AND sets zero flag in the same way as the shared rule would
	mc = run(t, []uint8{0xa9, 0xf0, 0x29, 0x0f, 0x00})
	test.ExpectEquality(t, mc.A(), 0x00)
	test.ExpectSuccess(t, mc.Flag(registers.FlagZero))
}

func TestDeterminism(t *testing.T) {
	program := []uint8{
		0xa2, 0x10, // LDX #$10
		0x8a,       // TXA
		0x69, 0x07, // ADC #$07
		0x95, 0x20, // STA $20,X
		0x2a,       // ROL A
		0x48,       // PHA
		0xca,       // DEX
		0xd0, 0xf6, // BNE $0602
		0x00,
	}

	a := cpu.NewCPU()
	test.DemandSuccess(t, a.LoadAndRun(program, nil))

	b := cpu.NewCPU()
	test.DemandSuccess(t, b.LoadAndRun(program, nil))

	test.ExpectSuccess(t, a.Equal(b))
	test.ExpectEquality(t, a.String(), b.String())

	// snapshot is unaffected by further changes
	s := a.Snapshot()
	a.Write(0x20, ^a.Read(0x20))
	test.ExpectFailure(t, a.Equal(s))
	test.ExpectSuccess(t, s.Equal(b))
}
