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

package digest_test

import (
	"image"
	"image/color"
	"testing"

	"github.com/jetsetilly/gopher8001/digest"
	"github.com/jetsetilly/gopher8001/test"
)

func frame(c color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, 8, 4))
	for y := 0; y < 4; y++ {
		for x := 0; x < 8; x++ {
			img.SetRGBA(x, y, c)
		}
	}
	return img
}

func TestVideoChain(t *testing.T) {
	a := digest.NewVideo()
	b := digest.NewVideo()

	red := frame(color.RGBA{R: 0xff, A: 0xff})
	blue := frame(color.RGBA{B: 0xff, A: 0xff})

	test.ExpectSuccess(t, a.NewFrame(1, red))
	test.ExpectSuccess(t, b.NewFrame(1, red))
	test.ExpectEquality(t, a.Hash(), b.Hash())

	// same frame again gives a different digest because the digest is chained
	h := a.Hash()
	test.ExpectSuccess(t, a.NewFrame(2, red))
	test.ExpectInequality(t, a.Hash(), h)
	test.ExpectEquality(t, a.FrameNum(), 2)

	test.ExpectSuccess(t, b.NewFrame(2, blue))
	test.ExpectInequality(t, a.Hash(), b.Hash())

	// alpha channel isn't part of the digest
	a.ResetDigest()
	b.ResetDigest()
	test.ExpectSuccess(t, a.NewFrame(1, frame(color.RGBA{R: 0xff, A: 0xff})))
	test.ExpectSuccess(t, b.NewFrame(1, frame(color.RGBA{R: 0xff, A: 0x00})))
	test.ExpectEquality(t, a.Hash(), b.Hash())
}

func TestAudio(t *testing.T) {
	a := digest.NewAudio()
	b := digest.NewAudio()
	zero := a.Hash()

	samples := make([]float32, 800)
	for i := range samples {
		samples[i] = float32(i%10) / 10
	}

	test.ExpectSuccess(t, a.SetAudio(samples))
	test.ExpectSuccess(t, b.SetAudio(samples))
	test.ExpectSuccess(t, a.EndMixing())
	test.ExpectSuccess(t, b.EndMixing())
	test.ExpectInequality(t, a.Hash(), zero)
	test.ExpectEquality(t, a.Hash(), b.Hash())

	samples[0] = 0.5
	a.ResetDigest()
	b.ResetDigest()
	test.ExpectSuccess(t, a.SetAudio(samples))
	test.ExpectSuccess(t, a.EndMixing())
	test.ExpectSuccess(t, b.SetAudio(samples[1:]))
	test.ExpectSuccess(t, b.EndMixing())
	test.ExpectInequality(t, a.Hash(), b.Hash())
}
