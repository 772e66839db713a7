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

// Package logger is the central log for the application. Entries are tagged
// and repeated entries are collapsed into a single entry with a repeat count.
// The number of entries is bounded and the oldest entries are dropped first.
//
// Logging requests carry a Permission. Code that should always log can use
// logger.Allow.
//
//	logger.Logf(logger.Allow, "CPU", "halted at %#04x", pc)
//
// Nothing is printed unless SetEcho() has been called or the log is written
// out explicitly with Write() or Tail().
package logger
