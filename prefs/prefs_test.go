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

package prefs_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/jetsetilly/gopher8001/curated"
	"github.com/jetsetilly/gopher8001/prefs"
	"github.com/jetsetilly/gopher8001/test"
)

func getTmpPrefFile(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "settings.ini")
}

func cmpTmpFile(t *testing.T, fn string, expected string) {
	t.Helper()

	data, err := os.ReadFile(fn)
	if err != nil {
		t.Errorf("error reading tmp file: %v", err)
		return
	}

	test.ExpectEquality(t, string(data), expected)
}

func TestBool(t *testing.T) {
	fn := getTmpPrefFile(t)

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var v prefs.Bool
	var w prefs.Bool
	var x prefs.Bool
	test.ExpectSuccess(t, dsk.Add("PCG", &v))
	test.ExpectSuccess(t, dsk.Add("PROM", &w))
	test.ExpectSuccess(t, dsk.Add("PADENTER", &x))

	test.ExpectSuccess(t, v.Set(true))
	test.ExpectFailure(t, w.Set("foo"))
	test.ExpectSuccess(t, x.Set("TRUE"))

	test.ExpectSuccess(t, dsk.Save())
	cmpTmpFile(t, fn, "PCG=true\nPROM=false\nPADENTER=true\n")
}

func TestInt(t *testing.T) {
	fn := getTmpPrefFile(t)

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var v prefs.Int
	var w prefs.Int
	test.ExpectSuccess(t, dsk.Add("VOLUME", &v))
	test.ExpectSuccess(t, dsk.Add("SPEED", &w))

	v.SetConstraint(prefs.Range(0, 15, 7))

	test.ExpectSuccess(t, v.Set(10))
	test.ExpectSuccess(t, w.Set("5"))

	test.ExpectSuccess(t, dsk.Save())
	cmpTmpFile(t, fn, "VOLUME=10\nSPEED=5\n")

	// constraint replaces out of range values with the default
	test.ExpectSuccess(t, v.Set(16))
	test.ExpectEquality(t, v.Get().(int), 7)
	test.ExpectSuccess(t, v.Set(-1))
	test.ExpectEquality(t, v.Get().(int), 7)

	// failure conditions leave the value unchanged
	test.ExpectSuccess(t, v.Set(3))
	test.ExpectFailure(t, v.Set("---"))
	test.ExpectFailure(t, v.Set(1.0))
	test.ExpectEquality(t, v.Get().(int), 3)
}

func TestLoad(t *testing.T) {
	fn := getTmpPrefFile(t)

	err := os.WriteFile(fn, []byte("VOLUME=3\nunknown line\nTAPE= game.cmt\nFOO=bar\nPCG=maybe\n"), 0o644)
	test.DemandSuccess(t, err)

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var vol prefs.Int
	var tape prefs.String
	var pcg prefs.Bool
	test.ExpectSuccess(t, dsk.Add("VOLUME", &vol))
	test.ExpectSuccess(t, dsk.Add("TAPE", &tape))
	test.ExpectSuccess(t, dsk.Add("PCG", &pcg))
	test.ExpectSuccess(t, pcg.Set(true))

	test.ExpectSuccess(t, dsk.Load())
	test.ExpectEquality(t, vol.Get().(int), 3)
	test.ExpectEquality(t, tape.String(), "game.cmt")

	// "maybe" is not a boolean so the existing value is kept
	test.ExpectEquality(t, pcg.Get().(bool), true)
}

func TestNoPrefsFile(t *testing.T) {
	dsk, err := prefs.NewDisk(getTmpPrefFile(t))
	test.DemandSuccess(t, err)

	err = dsk.Load()
	test.ExpectSuccess(t, curated.Is(err, prefs.NoPrefsFile))
}

func TestDuplicateKey(t *testing.T) {
	dsk, err := prefs.NewDisk(getTmpPrefFile(t))
	test.DemandSuccess(t, err)

	var v, w prefs.Int
	test.ExpectSuccess(t, dsk.Add("SPEED", &v))
	err = dsk.Add("SPEED", &w)
	test.ExpectSuccess(t, curated.Is(err, prefs.DuplicateKey))
}

func TestOverride(t *testing.T) {
	dsk, err := prefs.NewDisk(getTmpPrefFile(t))
	test.DemandSuccess(t, err)

	var vol, speed prefs.Int
	test.ExpectSuccess(t, dsk.Add("VOLUME", &vol))
	test.ExpectSuccess(t, dsk.Add("SPEED", &speed))

	unused := dsk.Override("VOLUME=12; SPEED=2; ZZZ=1; AAA=2")
	test.ExpectEquality(t, vol.Get().(int), 12)
	test.ExpectEquality(t, speed.Get().(int), 2)
	test.ExpectEquality(t, unused, "AAA, ZZZ")
}
