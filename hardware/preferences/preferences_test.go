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

package preferences

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jetsetilly/gopher6502/curated"
	"github.com/jetsetilly/gopher6502/logger"
	"github.com/jetsetilly/gopher6502/prefs"
	"github.com/jetsetilly/gopher6502/test"
)

func TestDefaults(t *testing.T) {
	fn := filepath.Join(t.TempDir(), prefs.DefaultPrefsFile)

	p, err := newPreferences(fn, nil)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, p.MaxSteps.Get().(int), DefaultMaxSteps)
	test.ExpectEquality(t, p.Trace.Get().(bool), false)
	test.ExpectEquality(t, p.LogEcho.Get().(bool), false)

	// missing file was created with default values
	data, err := os.ReadFile(fn)
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, strings.Contains(string(data), "run.maxsteps :: 1000000"))
}

func TestMaxSteps(t *testing.T) {
	p, err := newPreferences(filepath.Join(t.TempDir(), prefs.DefaultPrefsFile), nil)
	test.DemandSuccess(t, err)

	test.ExpectSuccess(t, p.MaxSteps.Set(50))
	err = p.MaxSteps.Set(0)
	test.ExpectSuccess(t, curated.Is(err, InvalidMaxSteps))
	test.ExpectFailure(t, p.MaxSteps.Set("-10"))
	test.ExpectEquality(t, p.MaxSteps.Get().(int), 50)
}

func TestSaveLoad(t *testing.T) {
	fn := filepath.Join(t.TempDir(), prefs.DefaultPrefsFile)

	p, err := newPreferences(fn, nil)
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, p.MaxSteps.Set(123))
	test.ExpectSuccess(t, p.Trace.Set(true))
	test.DemandSuccess(t, p.Save())

	q, err := newPreferences(fn, nil)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, q.MaxSteps.Get().(int), 123)
	test.ExpectEquality(t, q.Trace.Get().(bool), true)

	test.ExpectSuccess(t, q.SetDefaults())
	test.ExpectEquality(t, q.MaxSteps.Get().(int), DefaultMaxSteps)

	// reload restores saved values
	test.ExpectSuccess(t, q.Load())
	test.ExpectEquality(t, q.MaxSteps.Get().(int), 123)
	test.ExpectEquality(t, q.String(), "log.echo :: false\nrun.maxsteps :: 123\nrun.trace :: true\n")
}

func TestCommandLine(t *testing.T) {
	prefs.PushCommandLineStack("run.maxsteps::10")
	defer prefs.PopCommandLineStack()

	p, err := newPreferences(filepath.Join(t.TempDir(), prefs.DefaultPrefsFile), nil)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, p.MaxSteps.Get().(int), 10)
}

func TestLogEcho(t *testing.T) {
	echo := &test.CompareWriter{}

	p, err := newPreferences(filepath.Join(t.TempDir(), prefs.DefaultPrefsFile), echo)
	test.DemandSuccess(t, err)
	defer logger.SetEcho(nil, false)

	logger.Clear()
	test.ExpectSuccess(t, p.LogEcho.Set(true))
	logger.Log(logger.Allow, "test", "echoed")
	test.ExpectSuccess(t, strings.Contains(echo.String(), "echoed"))

	echo.Clear()
	test.ExpectSuccess(t, p.LogEcho.Set(false))
	logger.Log(logger.Allow, "test", "not echoed")
	test.ExpectEquality(t, echo.String(), "")
}
