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

package otoaudio_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/jetsetilly/gopher8001/gui/otoaudio"
	"github.com/jetsetilly/gopher8001/test"
)

type broken struct{}

func (broken) Read(p []byte) (int, error) {
	p[0] = 0x01
	return 1, errors.New("broken")
}

// the source switching does not need an audio device
func TestSource(t *testing.T) {
	var aud otoaudio.Audio

	p := []byte{1, 2, 3, 4}
	n, err := aud.Read(p)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, n, 4)
	test.ExpectSuccess(t, bytes.Equal(p, []byte{0, 0, 0, 0}))

	aud.SetSource(bytes.NewReader([]byte{5, 6, 7, 8}))
	n, err = aud.Read(p)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, n, 4)
	test.ExpectSuccess(t, bytes.Equal(p, []byte{5, 6, 7, 8}))

	// errors become silence
	aud.SetSource(broken{})
	n, err = aud.Read(p)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, n, 4)
	test.ExpectSuccess(t, bytes.Equal(p, []byte{1, 0, 0, 0}))

	aud.SetSource(nil)
	n, _ = aud.Read(p)
	test.ExpectEquality(t, n, 4)
	test.ExpectSuccess(t, bytes.Equal(p, []byte{0, 0, 0, 0}))

	// closing an Audio that was never opened is fine
	test.ExpectSuccess(t, aud.Close())
}
