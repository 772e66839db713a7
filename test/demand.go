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

package test

import "testing"

// the Demand*() functions are the fatal equivalents of the Expect*()
// functions. use them when later parts of the test depend on the value being
// correct, for example the length of a slice that is about to be indexed.

func demand(t *testing.T, ok bool, format string, args ...any) {
	t.Helper()
	if !ok {
		t.Fatalf(format, args...)
	}
}

// DemandEquality stops the test if value does not equal expectedValue.
func DemandEquality[T comparable](t *testing.T, value T, expectedValue T, tags ...any) {
	t.Helper()
	demand(t, value == expectedValue, "%sdemanded equality for type %T: '%v' does not equal '%v'",
		id(tags...), value, value, expectedValue)
}

// DemandInequality stops the test if value equals unexpectedValue.
func DemandInequality[T comparable](t *testing.T, value T, unexpectedValue T, tags ...any) {
	t.Helper()
	demand(t, value != unexpectedValue, "%sdemanded inequality for type %T: '%v' equals '%v'",
		id(tags...), value, value, unexpectedValue)
}

// DemandSuccess stops the test if v is not a success value. See
// ExpectSuccess() for the supported types.
func DemandSuccess(t *testing.T, v any, tags ...any) {
	t.Helper()
	demand(t, expect(t, v, tags...), "%sa success value is demanded for type %T (%v)", id(tags...), v, v)
}

// DemandFailure stops the test if v is not a failure value. See
// ExpectFailure() for the supported types.
func DemandFailure(t *testing.T, v any, tags ...any) {
	t.Helper()
	demand(t, !expect(t, v, tags...), "%sa failure value is demanded for type %T", id(tags...), v)
}
