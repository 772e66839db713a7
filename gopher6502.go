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

package main

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"

	"github.com/bradleyjkemp/memviz"
	"github.com/jetsetilly/gopher6502/curated"
	"github.com/jetsetilly/gopher6502/disassembly"
	"github.com/jetsetilly/gopher6502/hardware/cpu"
	"github.com/jetsetilly/gopher6502/hardware/memory/addresses"
	"github.com/jetsetilly/gopher6502/hardware/preferences"
	"github.com/jetsetilly/gopher6502/logger"
	"github.com/jetsetilly/gopher6502/modalflag"
	"github.com/jetsetilly/gopher6502/monitor"
	"github.com/jetsetilly/gopher6502/monitor/easyterm"
	"github.com/jetsetilly/gopher6502/paths"
	"github.com/jetsetilly/gopher6502/prefs"
	"github.com/jetsetilly/gopher6502/scripting"
	"github.com/jetsetilly/gopher6502/statsview"
	"github.com/jetsetilly/gopher6502/version"
)

// exit value when the program ends in error.
const errorExitVal = 10

// Sentinal error patterns.
const (
	NoImage     = "%s mode requires a program image"
	TooManyArgs = "too many arguments for %s mode"
	DidNotHalt  = "program did not halt within %d steps"
	NoStatsview = "statsview is not available in this build"
	ImageError  = "image: %v"
	MemvizError = "memviz: %v"
)

// tag used for log entries made by the driver.
const logTag = "gopher6502"

func main() {
	// #ctrlc default handler
	intChan := make(chan os.Signal, 1)
	signal.Notify(intChan, os.Interrupt)

	done := make(chan int)
	go func() {
		done <- launch(os.Args[1:], os.Stdin, os.Stdout)
	}()

	exitVal := 0
	select {
	case <-intChan:
		fmt.Println("\r")
	case exitVal = <-done:
	}

	os.Exit(exitVal)
}

// launch parses the arguments and runs the selected mode. Returns the exit
// value for the program.
func launch(args []string, input io.Reader, output io.Writer) int {
	md := &modalflag.Modes{Output: output}
	md.NewArgs(args)
	md.NewMode()
	md.AddSubModes("RUN", "STEP", "DISASM")
	showVersion := md.AddBool("version", false, "print version information and exit")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return 0

	case modalflag.ParseError:
		fmt.Fprintf(output, "* error: %v\n", err)
		return errorExitVal
	}

	if *showVersion {
		fmt.Fprintln(output, version.String())
		return 0
	}

	switch md.Mode() {
	case "RUN":
		err = run(md)

	case "STEP":
		err = step(md, input)

	case "DISASM":
		err = disasm(md)
	}

	if err != nil {
		fmt.Fprintf(output, "* error in %s mode: %s\n", md.String(), err)
		return errorExitVal
	}

	return 0
}

// loadImage reads the single program image named in the remaining arguments.
func loadImage(md *modalflag.Modes) ([]uint8, string, error) {
	switch len(md.RemainingArgs()) {
	case 0:
		return nil, "", curated.Errorf(NoImage, md)
	case 1:
	default:
		return nil, "", curated.Errorf(TooManyArgs, md)
	}

	pth := md.GetArg(0)
	image, err := os.ReadFile(pth)
	if err != nil {
		return nil, "", curated.Errorf(ImageError, err)
	}

	logger.Logf(logger.Allow, logTag, "loaded %s (%d bytes)", pth, len(image))

	return image, pth, nil
}

// newCPU creates a CPU with the image loaded and reset.
func newCPU(image []uint8) (*cpu.CPU, error) {
	mc := cpu.NewCPU()
	if err := mc.Load(image); err != nil {
		return nil, err
	}
	mc.Reset()
	return mc, nil
}

func run(md *modalflag.Modes) error {
	md.NewMode()

	maxSteps := md.AddInt("maxsteps", 0, "maximum number of instructions (0 uses the run.maxsteps preference)")
	trace := md.AddBool("trace", false, "print each instruction as it is executed")
	log := md.AddBool("log", false, "echo debugging log to stdout")
	viz := md.AddBool("memviz", false, "write final register file to a graphviz file")
	script := md.AddString("script", "", "lua script to run after every instruction")
	stats := md.AddBool("statsview", false, "run stats server during execution")
	prefsOverride := md.AddString("prefs", "", "preference overrides (eg. \"run.trace::true; run.maxsteps::100\")")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	image, pth, err := loadImage(md)
	if err != nil {
		return err
	}

	if *prefsOverride != "" {
		prefs.PushCommandLineStack(*prefsOverride)
		defer func() {
			if unused := prefs.PopCommandLineStack(); unused != "" {
				logger.Logf(logger.Allow, logTag, "unused preferences: %s", unused)
			}
		}()
	}

	pref, err := preferences.NewPreferences(md.Output)
	if err != nil {
		return err
	}

	// command line flags take priority over preferences
	if *maxSteps != 0 {
		if err := pref.MaxSteps.Set(*maxSteps); err != nil {
			return err
		}
	}
	if *trace {
		if err := pref.Trace.Set(true); err != nil {
			return err
		}
	}
	if *log {
		if err := pref.LogEcho.Set(true); err != nil {
			return err
		}
	}
	defer logger.SetEcho(nil, false)

	if *stats {
		if !statsview.Available() {
			return curated.Errorf(NoStatsview)
		}
		stop := statsview.Launch(md.Output)
		defer stop()
	}

	mc, err := newCPU(image)
	if err != nil {
		return err
	}

	var observers []func(*cpu.CPU) error

	if pref.Trace.Get().(bool) {
		observers = append(observers, func(mc *cpu.CPU) error {
			_, err := fmt.Fprintln(md.Output, mc.LastResult.String())
			return err
		})
	}

	if *script != "" {
		f, err := os.Open(*script)
		if err != nil {
			return err
		}
		scr, err := scripting.NewScript(filepath.Base(*script), f, md.Output)
		f.Close()
		if err != nil {
			return err
		}
		defer scr.Close()
		observers = append(observers, scr.Observer)
	}

	observer := func(mc *cpu.CPU) error {
		for _, o := range observers {
			if err := o(mc); err != nil {
				return err
			}
		}
		return nil
	}

	steps, state, err := mc.RunFor(pref.MaxSteps.Get().(int), observer)
	if err != nil {
		return err
	}

	// the halting instruction is not seen by the observers
	if state == cpu.Halted && pref.Trace.Get().(bool) {
		fmt.Fprintln(md.Output, mc.LastResult.String())
	}

	logger.Logf(logger.Allow, logTag, "run ended after %d steps (%s)", steps, state)

	if *viz {
		if err := writeMemviz(mc, pth); err != nil {
			return err
		}
	}

	fmt.Fprintln(md.Output, mc)

	if state != cpu.Halted {
		return curated.Errorf(DidNotHalt, steps)
	}

	return nil
}

// writeMemviz writes the register file to a uniquely named file in the
// current directory.
func writeMemviz(mc *cpu.CPU, pth string) error {
	name := strings.TrimSuffix(filepath.Base(pth), filepath.Ext(pth))
	fn := fmt.Sprintf("%s.dot", paths.UniqueFilename("memviz", name))

	f, err := os.Create(fn)
	if err != nil {
		return curated.Errorf(MemvizError, err)
	}
	defer f.Close()

	regs := mc.Registers()
	memviz.Map(f, &regs)

	logger.Logf(logger.Allow, logTag, "register file written to %s", fn)

	return nil
}

func step(md *modalflag.Modes, input io.Reader) error {
	md.NewMode()

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	image, _, err := loadImage(md)
	if err != nil {
		return err
	}

	mc, err := newCPU(image)
	if err != nil {
		return err
	}

	mon := monitor.NewMonitor(mc, input, md.Output)

	// put terminal into cbreak mode if possible. the monitor works without it
	// but key presses will not be seen until the return key is pressed
	if f, ok := input.(*os.File); ok && easyterm.IsTerminal(f) {
		var term easyterm.Terminal
		if err := term.Initialise(f, os.Stdout); err != nil {
			return err
		}
		defer term.CleanUp()
		term.CBreakMode()
		mon.Suspend = easyterm.SuspendProcess
	}

	err = mon.Start()
	io.WriteString(md.Output, "\n")

	return err
}

func disasm(md *modalflag.Modes) error {
	md.NewMode()

	grep := md.AddString("grep", "", "only show lines that contain the search string")
	from := md.AddInt("from", -1, "start address (defaults to start of image)")
	to := md.AddInt("to", -1, "end address (defaults to end of image)")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	image, _, err := loadImage(md)
	if err != nil {
		return err
	}

	mc, err := newCPU(image)
	if err != nil {
		return err
	}

	start := int(addresses.LoadBase)
	if *from >= 0 {
		start = *from
	}
	end := int(addresses.LoadBase) + len(image) - 1
	if *to >= 0 {
		end = *to
	}
	if start > 0xffff || end > 0xffff || end < 0 {
		return curated.Errorf(disassembly.InvalidRange, start, end)
	}

	dsm, err := disassembly.FromMemory(mc, uint16(start), uint16(end))
	if err != nil {
		return err
	}

	if *grep != "" {
		_, err = dsm.Grep(md.Output, disassembly.GrepAll, *grep, false)
		return err
	}

	return dsm.Write(md.Output)
}
