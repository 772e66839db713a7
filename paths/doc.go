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

// Package paths contains functions to prepare paths to gopher6502 resources.
//
// The ResourcePath() function returns the path to a file in the resource
// directory, creating the sub-path as required. For example, the following
// will return the path to the preferences file:
//
//	pth, err := paths.ResourcePath("", prefs.DefaultPrefsFile)
//
// In development builds the resource directory is ".gopher6502" in the
// current working directory. Release builds (built with the "release" tag)
// use the user's config directory as returned by os.UserConfigDir().
//
// UniqueFilename() creates timestamped filenames for program output.
package paths
