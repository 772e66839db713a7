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

// Package prefs facilitates the storage of preferential values in the
// Gopher6502 system. It is intended to be used by other packages to present
// tweakable values to the user.
//
// Values of type Bool, Int and String can be added to a Disk instance, which
// loads and saves values to the preferences file. Changes to a value can be
// checked, and acted upon, with the SetHookPre() and SetHookPost() functions.
//
//	var trace prefs.Bool
//	pth, _ := paths.ResourcePath("", prefs.DefaultPrefsFile)
//	dsk, _ := prefs.NewDisk(pth)
//	dsk.Add("run.trace", &trace)
//	dsk.Load(true)
//
// Preference values can also be specified on the command line with a
// preferences string. These values take priority over values on disk but are
// not saved unless Save() is called explicitly.
package prefs
