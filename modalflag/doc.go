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

// Package modalflag wraps the flag package of the standard library so that a
// command line can be divided into modes, each with its own flags. The go
// command is a good example of a program with modes: build, test, run, etc.
//
// Arguments are given with NewArgs() and processed with Parse(). Flags are
// added before each call to Parse().
//
//	md := modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.AddSubModes("RUN", "STEP", "DISASM")
//	if r, err := md.Parse(); r != modalflag.ParseContinue {
//		return err
//	}
//
// After a successful Parse() the Mode() function returns the selected mode.
// The first sub-mode is the default and is selected if the next argument is
// not the name of a sub-mode. Mode names are case insensitive.
//
// To parse the flags of the selected mode call NewMode() and add the flags for
// that mode before calling Parse() again:
//
//	md.NewMode()
//	maxSteps := md.AddInt("maxsteps", 1000000, "maximum number of instructions")
//	if r, err := md.Parse(); r != modalflag.ParseContinue {
//		return err
//	}
//	image := md.GetArg(0)
//
// Help messages are written to Output automatically when the -help flag is
// seen. The Path() function returns all selected modes and is used in help
// messages to show the user which mode the help applies to.
package modalflag
