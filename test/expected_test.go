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

package test_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jetsetilly/gopher6502/test"
)

func TestExpectations(t *testing.T) {
	test.ExpectSuccess(t, true)
	test.ExpectFailure(t, false)
	test.ExpectSuccess(t, nil)

	var err error
	test.ExpectSuccess(t, err)
	test.ExpectFailure(t, errors.New("error"))

	test.ExpectEquality(t, 10, 10)
	test.ExpectEquality(t, uint8(0xff), 0xff)
	test.ExpectInequality(t, "foo", "bar")
}

func TestCompareWriter(t *testing.T) {
	tw := &test.CompareWriter{}
	fmt.Fprintf(tw, "LDA #$%02x", 5)
	test.ExpectSuccess(t, tw.Compare("LDA #$05"))
	test.ExpectEquality(t, tw.String(), "LDA #$05")

	tw.Clear()
	test.ExpectSuccess(t, tw.Compare(""))
	test.ExpectEquality(t, len(tw.Lines()), 0)

	fmt.Fprintln(tw, "0600  a9 c0     LDA #$c0")
	fmt.Fprintln(tw, "0602  aa        TAX")
	lines := tw.Lines()
	test.DemandEquality(t, len(lines), 2)
	test.ExpectEquality(t, lines[1], "0602  aa        TAX")
	test.ExpectSuccess(t, tw.Contains("LDA #$c0"))
	test.ExpectFailure(t, tw.Contains("INX"))
}

func TestDemands(t *testing.T) {
	test.DemandSuccess(t, true)
	test.DemandSuccess(t, nil)
	test.DemandFailure(t, errors.New("error"))
	test.DemandEquality(t, 0x0600, 0x0600)
	test.DemandInequality(t, "running", "halted")
}
