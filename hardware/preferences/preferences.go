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
	"io"

	"github.com/jetsetilly/gopher6502/curated"
	"github.com/jetsetilly/gopher6502/logger"
	"github.com/jetsetilly/gopher6502/paths"
	"github.com/jetsetilly/gopher6502/prefs"
)

// DefaultMaxSteps is the default value of the MaxSteps preference.
const DefaultMaxSteps = 1000000

// InvalidMaxSteps is the error pattern returned when MaxSteps is set to a
// value less than one.
const InvalidMaxSteps = "preferences: max steps must be greater than zero (%d)"

// Preferences defines and collates the preference values used when running a
// program.
type Preferences struct {
	dsk *prefs.Disk

	// the maximum number of instructions executed in RUN mode before giving up
	MaxSteps prefs.Int

	// print each executed instruction
	Trace prefs.Bool

	// echo log entries to the terminal as they are created
	LogEcho prefs.Bool

	// where log entries are echoed to when LogEcho is true
	echo io.Writer
}

func (p *Preferences) String() string {
	return p.dsk.String()
}

// NewPreferences is the preferred method of initialisation for the Preferences
// type. Log entries are echoed to the echo writer when LogEcho is true.
func NewPreferences(echo io.Writer) (*Preferences, error) {
	pth, err := paths.ResourcePath("", prefs.DefaultPrefsFile)
	if err != nil {
		return nil, err
	}
	return newPreferences(pth, echo)
}

func newPreferences(pth string, echo io.Writer) (*Preferences, error) {
	p := &Preferences{echo: echo}

	p.MaxSteps.SetHookPre(func(v prefs.Value) error {
		if v.(int) <= 0 {
			return curated.Errorf(InvalidMaxSteps, v.(int))
		}
		return nil
	})

	p.LogEcho.SetHookPost(func(v prefs.Value) error {
		if v.(bool) {
			logger.SetEcho(p.echo, false)
		} else {
			logger.SetEcho(nil, false)
		}
		return nil
	})

	err := p.SetDefaults()
	if err != nil {
		return nil, err
	}

	// setup preferences and load from disk
	p.dsk, err = prefs.NewDisk(pth)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("run.maxsteps", &p.MaxSteps)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("run.trace", &p.Trace)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("log.echo", &p.LogEcho)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Load(true)
	if err != nil {
		// ignore missing prefs file errors
		if !curated.Is(err, prefs.NoPrefsFile) {
			return nil, err
		}
	}

	return p, nil
}

// SetDefaults reverts all preferences to their default values. The values
// are not saved to disk.
func (p *Preferences) SetDefaults() error {
	if err := p.MaxSteps.Set(DefaultMaxSteps); err != nil {
		return err
	}
	if err := p.Trace.Set(false); err != nil {
		return err
	}
	return p.LogEcho.Set(false)
}

// Load current preferences from disk.
func (p *Preferences) Load() error {
	return p.dsk.Load(false)
}

// Save current preferences to disk.
func (p *Preferences) Save() error {
	return p.dsk.Save()
}
