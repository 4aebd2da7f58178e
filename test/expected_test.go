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


package test_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jetsetilly/gopher8001/test"
)

func TestExpectFailure(t *testing.T) {
	test.ExpectFailure(t, false)
	test.ExpectFailure(t, errors.New("test"))
}

func TestExpectSuccess(t *testing.T) {
	test.ExpectSuccess(t, true)
	var err error
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, nil)
}

func TestExpectEquality(t *testing.T) {
	test.ExpectEquality(t, uint16(0x6000), uint16(0x5fff)+1)
	test.ExpectEquality(t, ^uint8(0xf0), uint8(0x0f))
	test.ExpectInequality(t, "PC-8011", "PC-8012")
	test.DemandEquality(t, len("PC-8001"), 7)
}

func TestCompareWriter(t *testing.T) {
	tw := &test.CompareWriter{}
	test.ExpectEquality(t, len(tw.Lines()), 0)

	fmt.Fprintln(tw, "tape: rewind")
	fmt.Fprint(tw, "disk: ")
	fmt.Fprintln(tw, "drive 1 empty")
	test.ExpectSuccess(t, tw.Compare("tape: rewind\ndisk: drive 1 empty\n"))

	lines := tw.Lines()
	test.DemandEquality(t, len(lines), 2)
	test.ExpectEquality(t, lines[1], "disk: drive 1 empty")

	tw.Clear()
	test.ExpectSuccess(t, tw.Compare(""))
}
