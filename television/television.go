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

package television

import (
	"context"
	"image"
	"image/color"
	"sync/atomic"
	"time"

	"github.com/jetsetilly/gopher8001/curated"
	"github.com/jetsetilly/gopher8001/hardware/crtc"
	"github.com/jetsetilly/gopher8001/performance/limiter"
)

// FramesPerSecond is the frame rate of the PC-8001 display.
const FramesPerSecond = 60

// BatchSize is the number of scanlines requested from the Source in one call.
const BatchSize = 16

// Batches is the number of batches in a frame.
const Batches = (crtc.ScreenHeight + BatchSize - 1) / BatchSize

// RetraceBatches is the length of vertical retrace at the end of each frame,
// measured in batch periods. The Source raises VRTC when it renders the last
// batch and clears it on the first batch of the next frame.
const RetraceBatches = 4

// BatchPeriod is the time allowed for each batch when the frame rate is
// capped. A frame is Batches of drawing followed by RetraceBatches of retrace.
const BatchPeriod = time.Second / (FramesPerSecond * (Batches + RetraceBatches))

// Sentinal error returned by a PixelRenderer or AudioMixer failing.
const (
	TelevisionError = "television: %v"
)

// codes maps an RGB222 pixel code to a colour.
var codes [64]color.RGBA

func init() {
	for i := range codes {
		codes[i] = color.RGBA{
			R: uint8(i&0x03) * 0x55,
			G: uint8((i>>2)&0x03) * 0x55,
			B: uint8((i>>4)&0x03) * 0x55,
			A: 0xff,
		}
	}
}

// Television is the frame paced video driver.
type Television struct {
	src Source
	aud AudioSource

	lmtr   *limiter.FpsLimiter
	fpsCap atomic.Bool

	renderers []PixelRenderer
	mixers    []AudioMixer

	// a single batch of pixel codes from the Source
	batch []uint8

	frame    *image.RGBA
	frameNum int

	samples []float32
}

// NewTelevision is the preferred method of initialisation for the Television
// type. The audio source is only used if an AudioMixer is added and can be
// nil. The frame rate is capped by default.
func NewTelevision(src Source, aud AudioSource, sampleRate int) (*Television, error) {
	lmtr, err := limiter.NewFPSLimiter(FramesPerSecond)
	if err != nil {
		return nil, curated.Errorf(TelevisionError, err)
	}

	tv := &Television{
		src:     src,
		aud:     aud,
		lmtr:    lmtr,
		batch:   make([]uint8, crtc.ScreenWidth*BatchSize),
		frame:   image.NewRGBA(image.Rect(0, 0, crtc.ScreenWidth, crtc.ScreenHeight)),
		samples: make([]float32, sampleRate/FramesPerSecond),
	}
	tv.fpsCap.Store(true)

	return tv, nil
}

// SetSource changes the video and audio sources. It must not be called while
// Run() is running.
func (tv *Television) SetSource(src Source, aud AudioSource) {
	tv.src = src
	tv.aud = aud
}

func (tv *Television) String() string {
	return "PC-8001 monitor"
}

// AddPixelRenderer registers an (additional) implementation of PixelRenderer.
func (tv *Television) AddPixelRenderer(r PixelRenderer) {
	tv.renderers = append(tv.renderers, r)
}

// AddAudioMixer registers an (additional) implementation of AudioMixer.
func (tv *Television) AddAudioMixer(m AudioMixer) {
	tv.mixers = append(tv.mixers, m)
}

// SetFPSCap sets whether the television waits for the frame limiter. Without
// the cap frames are produced as quickly as possible.
func (tv *Television) SetFPSCap(set bool) {
	tv.fpsCap.Store(set)
}

// FrameNum returns the number of frames produced so far.
func (tv *Television) FrameNum() int {
	return tv.frameNum
}

// Frame produces a single frame. Nothing is produced while the Source is
// suspended and false is returned.
//
// With the frame rate capped Frame() takes Batches of the BatchPeriod and the
// retrace period is left for the limiter in Run().
func (tv *Television) Frame() (bool, error) {
	if tv.src.Suspended() {
		return false, nil
	}

	// when capped the batches are spread over the frame period so that the
	// CPU sees the display being drawn in real time
	capped := tv.fpsCap.Load()
	start := time.Now()

	for b := 0; b < Batches; b++ {
		line := b * BatchSize
		tv.src.Render(tv.batch, line)
		tv.convert(line)

		if capped {
			if d := time.Until(start.Add(time.Duration(b+1) * BatchPeriod)); d > 0 {
				time.Sleep(d)
			}
		}
	}

	tv.frameNum++

	for _, r := range tv.renderers {
		if err := r.NewFrame(tv.frameNum, tv.frame); err != nil {
			return true, curated.Errorf(TelevisionError, err)
		}
	}

	if len(tv.mixers) > 0 && tv.aud != nil {
		for i := range tv.samples {
			tv.samples[i] = tv.aud.Sample()
		}
		for _, m := range tv.mixers {
			if err := m.SetAudio(tv.samples); err != nil {
				return true, curated.Errorf(TelevisionError, err)
			}
		}
	}

	return true, nil
}

// convert the current batch into the frame image.
func (tv *Television) convert(line int) {
	lines := min(BatchSize, crtc.ScreenHeight-line)
	pix := tv.frame.Pix[line*tv.frame.Stride:]
	for i, c := range tv.batch[:lines*crtc.ScreenWidth] {
		col := codes[c&0x3f]
		p := pix[i*4 : i*4+4]
		p[0] = col.R
		p[1] = col.G
		p[2] = col.B
		p[3] = col.A
	}
}

// Run produces frames until the context is done. If frames is greater than
// zero then Run returns after that many frames have been produced.
func (tv *Television) Run(ctx context.Context, frames int) error {
	for {
		select {
		case <-ctx.Done():
			return nil
		default:
		}

		if tv.fpsCap.Load() {
			tv.lmtr.Wait()
		}

		ok, err := tv.Frame()
		if err != nil {
			return err
		}

		// don't spin while the source is suspended
		if !ok && !tv.fpsCap.Load() {
			tv.lmtr.Wait()
		}

		if ok && frames > 0 && tv.frameNum >= frames {
			return nil
		}
	}
}

// End the television. Every PixelRenderer and AudioMixer is ended. The
// television should not be used after End() has been called.
func (tv *Television) End() error {
	tv.lmtr.Stop()

	var err error
	for _, r := range tv.renderers {
		if e := r.EndRendering(); e != nil && err == nil {
			err = curated.Errorf(TelevisionError, e)
		}
	}
	for _, m := range tv.mixers {
		if e := m.EndMixing(); e != nil && err == nil {
			err = curated.Errorf(TelevisionError, e)
		}
	}
	return err
}
