// This file is part of Gopher8001.
//
// Gopher8001 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher8001 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher8001.  If not, see <https://www.gnu.org/licenses/>.

// Package test contains helper functions to remove common boilerplate to make
// testing easier.
//
// The ExpectEquality() and ExpectInequality() functions compare values of
// the same comparable type. ExpectSuccess() and ExpectFailure() test bool and
// error values, where a nil error is counted as success.
//
// The Demand*() functions are the same except that they stop the test
// immediately with t.Fatalf(). Use these when the rest of the test makes no
// sense if the condition fails.
//
// CompareWriter is an io.Writer that collects output for comparison, useful
// for testing functions that write to the logger or to a terminal.
package test
