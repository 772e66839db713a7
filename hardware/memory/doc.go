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

// Package memory implements the flat 64KB address space of the emulated
// machine. There is no memory mapping, no mirroring and no bank switching;
// every address refers to exactly one byte of RAM.
//
// Sixteen bit values are stored little-endian, low byte first.
//
// Program images are loaded with the Load() function, which also points the
// Reset vector (see the addresses package) at the loaded image.
package memory
