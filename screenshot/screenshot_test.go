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

package screenshot_test

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/jetsetilly/gopher8001/curated"
	"github.com/jetsetilly/gopher8001/screenshot"
	"github.com/jetsetilly/gopher8001/test"
)

func frame() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, 4, 2))
	img.SetRGBA(1, 0, color.RGBA{R: 0xff, A: 0xff})
	return img
}

func load(t *testing.T, path string) image.Image {
	t.Helper()
	f, err := os.Open(path)
	test.DemandSuccess(t, err)
	defer f.Close()
	img, err := png.Decode(f)
	test.DemandSuccess(t, err)
	return img
}

func TestScale(t *testing.T) {
	img := screenshot.Scale(frame(), 2)
	test.ExpectEquality(t, img.Bounds().Dx(), 8)
	test.ExpectEquality(t, img.Bounds().Dy(), 4)
	test.ExpectEquality(t, img.RGBAAt(2, 0).R, uint8(0xff))
	test.ExpectEquality(t, img.RGBAAt(3, 1).R, uint8(0xff))
	test.ExpectEquality(t, img.RGBAAt(4, 0).R, uint8(0x00))

	// scale is clamped
	img = screenshot.Scale(frame(), 100)
	test.ExpectEquality(t, img.Bounds().Dx(), 4*screenshot.MaxScale)
}

func TestRequest(t *testing.T) {
	dir := t.TempDir()
	sh := screenshot.NewScreenshot(1, "")

	fn := filepath.Join(dir, "request.png")
	sh.Request(fn)
	test.ExpectSuccess(t, sh.NewFrame(1, frame()))

	img := load(t, fn)
	test.ExpectEquality(t, img.Bounds().Dx(), 4)
	r, _, _, _ := img.At(1, 0).RGBA()
	test.ExpectEquality(t, r, uint32(0xffff))

	// no final path means nothing to do
	test.ExpectSuccess(t, sh.EndRendering())
}

func TestFinal(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "final.png")

	sh := screenshot.NewScreenshot(3, fn)
	test.ExpectSuccess(t, curated.Is(sh.EndRendering(), screenshot.NoFrame))

	test.ExpectSuccess(t, sh.NewFrame(1, frame()))
	test.ExpectSuccess(t, sh.EndRendering())
	img := load(t, fn)
	test.ExpectEquality(t, img.Bounds().Dx(), 12)
	test.ExpectEquality(t, img.Bounds().Dy(), 6)
}
