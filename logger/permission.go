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

package logger

// Permission is consulted by Log() and Logf() before an entry is created.
// Types that sometimes need to be quiet, such as a CPU being used for a
// throwaway run, implement the interface themselves.
type Permission interface {
	AllowLogging() bool
}

// fixed is a Permission that never changes its mind.
type fixed bool

func (f fixed) AllowLogging() bool {
	return bool(f)
}

// Allow permits every log request.
var Allow Permission = fixed(true)

// Deny refuses every log request.
var Deny Permission = fixed(false)
