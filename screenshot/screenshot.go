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

// Package screenshot saves television frames as PNG files. It implements the
// television.PixelRenderer interface so that the last frame is always at hand.
package screenshot

import (
	"image"
	"image/png"
	"os"
	"sync"

	"github.com/jetsetilly/gopher8001/curated"
	"github.com/jetsetilly/gopher8001/logger"
	"golang.org/x/image/draw"
)

// Sentinal errors returned by the screenshot package.
const (
	ScreenshotError = "screenshot: %v"
	NoFrame         = "screenshot: no frame to save"
)

// MaxScale is the largest scaling factor accepted by Save().
const MaxScale = 4

// Screenshot keeps a copy of the most recent frame and saves it on request.
type Screenshot struct {
	crit sync.Mutex

	scale int
	last  *image.RGBA

	// path of a screenshot to take on the next frame
	request string

	// path of a screenshot to take when rendering ends
	final string
}

// NewScreenshot is the preferred method of initialisation for the Screenshot
// type. If final is not empty a screenshot is saved to that path when
// rendering ends.
func NewScreenshot(scale int, final string) *Screenshot {
	return &Screenshot{
		scale: clampScale(scale),
		final: final,
	}
}

func clampScale(scale int) int {
	return max(1, min(MaxScale, scale))
}

// Request a screenshot of the next frame. Safe to call from any goroutine.
func (sh *Screenshot) Request(path string) {
	sh.crit.Lock()
	defer sh.crit.Unlock()
	sh.request = path
}

// NewFrame implements the television.PixelRenderer interface.
func (sh *Screenshot) NewFrame(frameNum int, img *image.RGBA) error {
	sh.crit.Lock()
	defer sh.crit.Unlock()

	if sh.last == nil || sh.last.Rect != img.Rect {
		sh.last = image.NewRGBA(img.Rect)
	}
	copy(sh.last.Pix, img.Pix)

	if sh.request != "" {
		path := sh.request
		sh.request = ""
		if err := Save(path, sh.last, sh.scale); err != nil {
			logger.Log(logger.Allow, "screenshot", err.Error())
		}
	}

	return nil
}

// EndRendering implements the television.PixelRenderer interface.
func (sh *Screenshot) EndRendering() error {
	sh.crit.Lock()
	defer sh.crit.Unlock()

	if sh.final == "" {
		return nil
	}
	if sh.last == nil {
		return curated.Errorf(NoFrame)
	}
	return Save(sh.final, sh.last, sh.scale)
}

// Scale returns a copy of the image scaled by an integer factor. Pixels are
// not blended.
func Scale(img image.Image, scale int) *image.RGBA {
	scale = clampScale(scale)
	b := img.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx()*scale, b.Dy()*scale))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), img, b, draw.Src, nil)
	return dst
}

// Save the image as a PNG file, scaled by an integer factor.
func Save(path string, img image.Image, scale int) error {
	f, err := os.Create(path)
	if err != nil {
		return curated.Errorf(ScreenshotError, err)
	}

	err = png.Encode(f, Scale(img, scale))
	if err != nil {
		_ = f.Close()
		return curated.Errorf(ScreenshotError, err)
	}

	err = f.Close()
	if err != nil {
		return curated.Errorf(ScreenshotError, err)
	}

	logger.Logf(logger.Allow, "screenshot", "saved: %s", path)

	return nil
}
