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

package assert

import (
	"reflect"
	"testing"

	"github.com/jetsetilly/gopher6502/hardware/cpu/registers"
)

// Assert is used to test equality between one value and another. The
// expected value x is an int for all register types and can also be a string
// for the StatusRegister. The string form of the status register is the same
// as that returned by StatusRegister.String().
func Assert(t *testing.T, r, x interface{}) {
	t.Helper()

	switch r := r.(type) {
	default:
		t.Fatalf("assert failed (unknown type [%s])", reflect.TypeOf(r))

	case registers.Register:
		switch x := x.(type) {
		default:
			t.Fatalf("assert failed (unknown type [%s])", reflect.TypeOf(x))
		case int:
			if int(r.Value()) != x {
				t.Errorf("assert Register %s failed (%#02x  - wanted %#02x)", r.Label(), r.Value(), x)
			}
		}

	case registers.ProgramCounter:
		switch x := x.(type) {
		default:
			t.Fatalf("assert failed (unknown type [%s])", reflect.TypeOf(x))
		case int:
			if int(r.Address()) != x {
				t.Errorf("assert ProgramCounter failed (%#04x  - wanted %#04x)", r.Address(), x)
			}
		}

	case registers.StackPointer:
		switch x := x.(type) {
		default:
			t.Fatalf("assert failed (unknown type [%s])", reflect.TypeOf(x))
		case int:
			if int(r.Value()) != x {
				t.Errorf("assert StackPointer failed (%#02x  - wanted %#02x)", r.Value(), x)
			}
		}

	case registers.StatusRegister:
		switch x := x.(type) {
		default:
			t.Fatalf("assert failed (unknown type [%s])", reflect.TypeOf(x))
		case int:
			if int(r.Value()) != x {
				t.Errorf("assert StatusRegister failed (%#02x  - wanted %#02x)", r.Value(), x)
			}
		case string:
			if len(x) != 8 {
				t.Fatalf("assert StatusRegister failed (status flags must be an integer or a string of 8 chars)")
			}
			if r.String() != x {
				t.Errorf("assert StatusRegister failed (%s  - wanted %s)", r.String(), x)
			}
		}
	}
}
