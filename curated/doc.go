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

// Package curated is a helper package for the plain Go language error type.
//
// Curated errors are created with the Errorf() function. Like fmt.Errorf() it
// takes a formatting pattern and placeholder values, but the pattern is
// retained and is used to identify the error later on. Patterns that callers
// are expected to test for should be exported as string constants:
//
//	const IllegalOpcode = "cpu: illegal opcode (%#02x) at (%#04x)"
//
//	err := curated.Errorf(IllegalOpcode, 0x02, 0x0600)
//	if curated.Is(err, IllegalOpcode) {
//		...
//	}
//
// The Has() function is similar to Is() but looks for the pattern anywhere in
// the chain of curated errors.
//
//	f := curated.Errorf("run: %v", err)
//	curated.Is(f, IllegalOpcode)  // false
//	curated.Has(f, IllegalOpcode) // true
//
// The Error() implementation normalises the message chain so that adjacent
// duplicate parts are removed. Chains are thought of as parts separated by
// the sub-string ": ". This means that wrapping an error with the same prefix
// at several levels of the call stack does not result in a stuttering
// message:
//
//	curated.Errorf("cpu: %v", curated.Errorf("cpu: illegal opcode"))
//
// prints as "cpu: illegal opcode".
//
// Non-curated errors that are wrapped by a curated error are reachable with
// errors.Unwrap(), errors.Is() and errors.As() from the standard library.
package curated
