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

package registers_test

import (
	"testing"

	"github.com/jetsetilly/gopher6502/hardware/cpu/registers"
	"github.com/jetsetilly/gopher6502/hardware/cpu/registers/assert"
	"github.com/jetsetilly/gopher6502/test"
)

func TestRegister(t *testing.T) {
	var carry, overflow bool

	r8 := registers.NewRegister(0, "test")
	test.ExpectEquality(t, r8.Label(), "test")
	test.ExpectSuccess(t, r8.IsZero())
	assert.Assert(t, r8, 0)

	// addition without carry
	carry, _ = r8.Add(1, false)
	assert.Assert(t, r8, 1)
	test.ExpectFailure(t, carry)

	// addition with carry
	carry, _ = r8.Add(1, true)
	assert.Assert(t, r8, 3)
	test.ExpectFailure(t, carry)

	// addition causing a carry
	r8.Load(0xff)
	carry, overflow = r8.Add(1, false)
	assert.Assert(t, r8, 0)
	test.ExpectSuccess(t, carry)
	test.ExpectFailure(t, overflow)

	// addition of 0xff with carry in wraps back to the same value
	r8.Load(0x10)
	carry, _ = r8.Add(0xff, true)
	assert.Assert(t, r8, 0x10)
	test.ExpectSuccess(t, carry)

	// positive + positive = negative is an overflow
	r8.Load(0x7f)
	carry, overflow = r8.Add(1, false)
	assert.Assert(t, r8, 0x80)
	test.ExpectFailure(t, carry)
	test.ExpectSuccess(t, overflow)
	test.ExpectSuccess(t, r8.IsNegative())

	// negative + negative = positive is an overflow
	r8.Load(0x80)
	carry, overflow = r8.Add(0xff, false)
	assert.Assert(t, r8, 0x7f)
	test.ExpectSuccess(t, carry)
	test.ExpectSuccess(t, overflow)

	// subtraction with carry (no borrow)
	r8.Load(10)
	carry, overflow = r8.Subtract(3, true)
	assert.Assert(t, r8, 7)
	test.ExpectSuccess(t, carry)
	test.ExpectFailure(t, overflow)

	// subtraction causing a borrow
	r8.Load(3)
	carry, _ = r8.Subtract(10, true)
	assert.Assert(t, r8, 0xf9)
	test.ExpectFailure(t, carry)
}

func TestBitwise(t *testing.T) {
	r8 := registers.NewRegister(0x0f, "test")

	r8.AND(0x3c)
	assert.Assert(t, r8, 0x0c)
	r8.ORA(0x81)
	assert.Assert(t, r8, 0x8d)
	r8.EOR(0xff)
	assert.Assert(t, r8, 0x72)
	test.ExpectSuccess(t, r8.IsBitV())
}

func TestShifts(t *testing.T) {
	var carry bool

	r8 := registers.NewRegister(0x81, "test")

	carry = r8.ASL()
	assert.Assert(t, r8, 0x02)
	test.ExpectSuccess(t, carry)

	carry = r8.LSR()
	assert.Assert(t, r8, 0x01)
	test.ExpectFailure(t, carry)

	carry = r8.LSR()
	assert.Assert(t, r8, 0x00)
	test.ExpectSuccess(t, carry)

	r8.Load(0x80)
	carry = r8.ROL(true)
	assert.Assert(t, r8, 0x01)
	test.ExpectSuccess(t, carry)

	carry = r8.ROL(false)
	assert.Assert(t, r8, 0x02)
	test.ExpectFailure(t, carry)
}

func TestProgramCounter(t *testing.T) {
	pc := registers.NewProgramCounter(0)
	assert.Assert(t, pc, 0)

	pc.Add(2)
	assert.Assert(t, pc, 2)

	// program counter wraps at the top of the address space
	pc.Load(0xffff)
	pc.Add(2)
	assert.Assert(t, pc, 1)
	test.ExpectEquality(t, pc.String(), "0001")
}

func TestStackPointer(t *testing.T) {
	sp := registers.NewStackPointer(0x00)
	test.ExpectEquality(t, sp.Address(), 0x0100)

	sp.Decrement()
	test.ExpectEquality(t, sp.Value(), 0xff)
	test.ExpectEquality(t, sp.Address(), 0x01ff)

	sp.Increment()
	test.ExpectEquality(t, sp.Value(), 0x00)
	assert.Assert(t, sp, 0)
}
