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

package disassembly

import (
	"fmt"
	"strings"

	"github.com/jetsetilly/gopher6502/hardware/cpu/execution"
)

// EntryLevel describes the level of the Entry.
type EntryLevel int

// List of valid EntryLevel values.
//
// Decoded entries have been decoded as though the first byte is a valid
// opcode. Data entries are bytes that could not be decoded, either because the
// byte is not an opcode in the instruction set or because the instruction
// would extend beyond the end of the disassembly range.
const (
	EntryLevelData EntryLevel = iota
	EntryLevelDecoded
)

// Entry is a disassembled instruction or a single byte of data.
type Entry struct {
	Level EntryLevel

	// the decoded instruction. the Address field is always valid
	Result execution.Result

	// the value of the byte for EntryLevelData entries
	Data uint8
}

// Mnemonic returns the mnemonic of the entry. Data entries have the
// pseudo-mnemonic ".byte".
func (e Entry) Mnemonic() string {
	if e.Level == EntryLevelData || e.Result.Defn == nil {
		return ".byte"
	}
	return e.Result.Defn.Mnemonic()
}

// Operand returns the operand of the entry.
func (e Entry) Operand() string {
	if e.Level == EntryLevelData {
		return fmt.Sprintf("$%02x", e.Data)
	}
	return e.Result.Operand()
}

func (e Entry) String() string {
	if e.Level == EntryLevelData {
		return fmt.Sprintf("%04x  %-8s  .byte $%02x", e.Result.Address, fmt.Sprintf("%02x", e.Data), e.Data)
	}
	return strings.TrimRight(e.Result.String(), " ")
}
