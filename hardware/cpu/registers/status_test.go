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

func TestStatusReset(t *testing.T) {
	sr := registers.NewStatusRegister()
	test.ExpectEquality(t, sr.Value(), 0x24)
	assert.Assert(t, sr, "nv+bdIzc")
}

func TestStatusByteForm(t *testing.T) {
	sr := registers.NewStatusRegister()

	sr.Load(0xff)
	assert.Assert(t, sr, "NV+BDIZC")
	test.ExpectEquality(t, sr.Value(), 0xff)

	sr.Load(0x00)
	assert.Assert(t, sr, "nv-bdizc")
	test.ExpectEquality(t, sr.Value(), 0x00)

	sr.Load(0x81)
	assert.Assert(t, sr, "Nv-bdizC")
	assert.Assert(t, sr, 0x81)
}

func TestStatusFlags(t *testing.T) {
	var sr registers.StatusRegister

	flags := []registers.Flag{
		registers.FlagCarry,
		registers.FlagZero,
		registers.FlagInterruptDisable,
		registers.FlagDecimalMode,
		registers.FlagBreak,
		registers.FlagBreak2,
		registers.FlagOverflow,
		registers.FlagNegative,
	}

	for _, f := range flags {
		sr.Load(0x00)
		sr.Set(f, true)
		test.ExpectEquality(t, sr.Value(), uint8(f), f)
		test.ExpectSuccess(t, sr.Get(f), f)

		sr.Load(0xff)
		sr.Set(f, false)
		test.ExpectEquality(t, sr.Value(), 0xff&^uint8(f), f)
		test.ExpectFailure(t, sr.Get(f), f)
	}
}

func TestSetZeroNegative(t *testing.T) {
	var sr registers.StatusRegister

	// every value with the flags previously clear and previously set
	for _, prior := range []uint8{0x00, 0xff} {
		for v := 0; v <= 0xff; v++ {
			sr.Load(prior)
			sr.SetZeroNegative(uint8(v))
			test.ExpectEquality(t, sr.Zero, v == 0, v)
			test.ExpectEquality(t, sr.Negative, v&0x80 == 0x80, v)

			// no other flag is affected
			mask := uint8(registers.FlagZero | registers.FlagNegative)
			test.ExpectEquality(t, sr.Value()&^mask, prior&^mask, v)
		}
	}
}
