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

package easyterm_test

import (
	"os"
	"testing"

	"github.com/jetsetilly/gopher6502/monitor/easyterm"
	"github.com/jetsetilly/gopher6502/test"
)

func TestNotTerminal(t *testing.T) {
	f, err := os.CreateTemp(t.TempDir(), "input")
	test.DemandSuccess(t, err)
	defer f.Close()

	test.ExpectFailure(t, easyterm.IsTerminal(f))

	var pt easyterm.Terminal
	test.ExpectFailure(t, pt.Initialise(f, os.Stdout))
	test.ExpectFailure(t, pt.Initialise(nil, os.Stdout))
	test.ExpectFailure(t, pt.Initialise(f, nil))
}
