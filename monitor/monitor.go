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

package monitor

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	"github.com/jetsetilly/gopher6502/hardware/cpu"
	"github.com/jetsetilly/gopher6502/monitor/easyterm"
)

// the size of a memory page in bytes.
const pageSize = 0x100

// Help is printed when the monitor starts and in response to the help key.
const Help = `s or space  step one instruction
r           run until halt
m           dump next memory page
p           dump memory page containing PC
h           help
q           quit
`

// Monitor is a simple interactive front-end to a CPU. Commands are single
// key presses.
type Monitor struct {
	mc     *cpu.CPU
	input  *bufio.Reader
	output io.Writer

	// the next page to dump in response to the 'm' key
	page uint8

	// called in response to the suspend key. can be nil
	Suspend func() error
}

// NewMonitor is the preferred method of initialisation for the Monitor type.
func NewMonitor(mc *cpu.CPU, input io.Reader, output io.Writer) *Monitor {
	return &Monitor{
		mc:     mc,
		input:  bufio.NewReader(input),
		output: output,
	}
}

// Start reads key presses from the input and acts upon them until the quit
// key is pressed or the input is exhausted.
func (m *Monitor) Start() error {
	io.WriteString(m.output, Help)
	m.prompt()

	for {
		key, err := m.input.ReadByte()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}

		quit, err := m.Handle(key)
		if err != nil {
			return err
		}
		if quit {
			return nil
		}
	}
}

// Handle a single key press. Returns true if the monitor should quit.
//
// Errors from the CPU are printed and do not stop the monitor.
func (m *Monitor) Handle(key byte) (bool, error) {
	switch key {
	case 's', ' ':
		m.step()
	case 'r':
		m.run()
	case 'm':
		m.dump(m.page)
		m.page++
	case 'p':
		m.dump(uint8(m.mc.PC() >> 8))
	case 'h', '?':
		io.WriteString(m.output, Help)
	case 'q', easyterm.KeyInterrupt, easyterm.KeyEndOfFile:
		return true, nil
	case easyterm.KeySuspend:
		if m.Suspend != nil {
			if err := m.Suspend(); err != nil {
				return false, err
			}
		}
	case easyterm.KeyCarriageReturn, easyterm.KeyLineFeed:
		return false, nil
	default:
		fmt.Fprintf(m.output, "unknown key (%q). press h for help\n", key)
	}

	m.prompt()

	return false, nil
}

func (m *Monitor) prompt() {
	fmt.Fprintf(m.output, "[%s] %s > ", m.mc.State(), m.mc)
}

func (m *Monitor) step() {
	if m.mc.State() == cpu.Halted {
		io.WriteString(m.output, "cpu is halted\n")
		return
	}

	_, err := m.mc.Step()
	if err != nil {
		fmt.Fprintf(m.output, "%v\n", err)
		return
	}
	fmt.Fprintf(m.output, "%s\n", m.mc.LastResult.String())
}

func (m *Monitor) run() {
	if m.mc.State() == cpu.Halted {
		io.WriteString(m.output, "cpu is halted\n")
		return
	}

	var count int
	err := m.mc.Run(func(_ *cpu.CPU) error {
		count++
		return nil
	})
	if err != nil {
		fmt.Fprintf(m.output, "%v\n", err)
		return
	}

	// the halting instruction is not seen by the observer
	fmt.Fprintf(m.output, "%d instructions\n", count+1)
}

func (m *Monitor) dump(page uint8) {
	from := uint16(page) * pageSize
	m.mc.Dump(m.output, from, from+pageSize-1)
}
