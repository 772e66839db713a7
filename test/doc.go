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

// Package test bundles helper functions that remove common boilerplate from
// tests written for the standard go test harness.
//
// The Expect*() functions report a failure but allow the test to continue.
// The Demand*() functions stop the test immediately and should be used when
// later parts of the test depend on the value being correct.
//
// ExpectSuccess() and ExpectFailure() interpret their argument according to
// its type. A bool is successful if it is true and an error is successful if
// it is nil. An untyped nil is considered a success because that is how a nil
// error is seen once it has been passed as an interface value.
//
// CompareWriter implements io.Writer and can be used to capture output for
// later comparison.
package test
