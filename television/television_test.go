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

package television_test

import (
	"context"
	"errors"
	"image"
	"testing"
	"time"

	"github.com/jetsetilly/gopher8001/hardware/crtc"
	"github.com/jetsetilly/gopher8001/hardware/font"
	"github.com/jetsetilly/gopher8001/television"
	"github.com/jetsetilly/gopher8001/test"
)

// source fills every batch with the pixel code for the line number, with a
// white first pixel.
type source struct {
	suspended bool
	starts    []int
}

func (src *source) Render(dst []uint8, start int) {
	src.starts = append(src.starts, start)
	for l := 0; l < len(dst)/crtc.ScreenWidth; l++ {
		line := dst[l*crtc.ScreenWidth : (l+1)*crtc.ScreenWidth]
		for i := range line {
			line[i] = uint8((start + l) & 0x3f)
		}
		line[0] = crtc.Palette[crtc.White]
	}
}

func (src *source) Suspended() bool {
	return src.suspended
}

type tone float32

func (t tone) Sample() float32 {
	return float32(t)
}

type renderer struct {
	frames int
	img    *image.RGBA
	ended  bool
	err    error
}

func (r *renderer) NewFrame(frameNum int, img *image.RGBA) error {
	r.frames = frameNum
	r.img = img
	return r.err
}

func (r *renderer) EndRendering() error {
	r.ended = true
	return nil
}

type mixer struct {
	samples int
	last    float32
	ended   bool
}

func (m *mixer) SetAudio(samples []float32) error {
	m.samples += len(samples)
	m.last = samples[len(samples)-1]
	return nil
}

func (m *mixer) EndMixing() error {
	m.ended = true
	return nil
}

func TestFrame(t *testing.T) {
	src := &source{}
	tv, err := television.NewTelevision(src, tone(0.25), 48000)
	test.DemandSuccess(t, err)

	r := &renderer{}
	m := &mixer{}
	tv.AddPixelRenderer(r)
	tv.AddAudioMixer(m)

	ok, err := tv.Frame()
	test.ExpectSuccess(t, ok)
	test.ExpectSuccess(t, err)

	// a frame is made of 16 line batches
	test.ExpectEquality(t, len(src.starts), crtc.ScreenHeight/television.BatchSize)
	test.ExpectEquality(t, src.starts[0], 0)
	test.ExpectEquality(t, src.starts[1], television.BatchSize)

	test.ExpectEquality(t, r.frames, 1)
	test.ExpectEquality(t, r.img.Bounds().Dx(), crtc.ScreenWidth)
	test.ExpectEquality(t, r.img.Bounds().Dy(), crtc.ScreenHeight)

	white := r.img.RGBAAt(0, 100)
	test.ExpectEquality(t, white.R, uint8(0xff))
	test.ExpectEquality(t, white.G, uint8(0xff))
	test.ExpectEquality(t, white.B, uint8(0xff))
	test.ExpectEquality(t, white.A, uint8(0xff))

	// line 3 is pixel code 3, which is full red
	red := r.img.RGBAAt(10, 3)
	test.ExpectEquality(t, red.R, uint8(0xff))
	test.ExpectEquality(t, red.G, uint8(0x00))
	test.ExpectEquality(t, red.B, uint8(0x00))

	// line 0x30 is full blue
	blue := r.img.RGBAAt(10, 0x30)
	test.ExpectEquality(t, blue.B, uint8(0xff))
	test.ExpectEquality(t, blue.R, uint8(0x00))

	// one frame of audio
	test.ExpectEquality(t, m.samples, 800)
	test.ExpectEquality(t, m.last, float32(0.25))

	test.ExpectSuccess(t, tv.End())
	test.ExpectSuccess(t, r.ended)
	test.ExpectSuccess(t, m.ended)
}

func TestSuspended(t *testing.T) {
	src := &source{suspended: true}
	tv, err := television.NewTelevision(src, nil, 48000)
	test.DemandSuccess(t, err)

	r := &renderer{}
	tv.AddPixelRenderer(r)

	ok, err := tv.Frame()
	test.ExpectFailure(t, ok)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, len(src.starts), 0)
	test.ExpectEquality(t, r.frames, 0)
}

func TestRun(t *testing.T) {
	src := &source{}
	tv, err := television.NewTelevision(src, nil, 48000)
	test.DemandSuccess(t, err)
	tv.SetFPSCap(false)

	r := &renderer{}
	tv.AddPixelRenderer(r)

	test.ExpectSuccess(t, tv.Run(context.Background(), 10))
	test.ExpectEquality(t, tv.FrameNum(), 10)
	test.ExpectEquality(t, r.frames, 10)

	// a cancelled context stops the television before any frame
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	test.ExpectSuccess(t, tv.Run(ctx, 0))
	test.ExpectEquality(t, tv.FrameNum(), 10)

	// renderer errors stop the television
	r.err = errors.New("broken")
	test.ExpectFailure(t, tv.Run(context.Background(), 0))
	test.ExpectSuccess(t, tv.End())
}

func TestBatchPeriod(t *testing.T) {
	test.ExpectEquality(t, television.Batches, crtc.ScreenHeight/television.BatchSize)

	frame := television.BatchPeriod * (television.Batches + television.RetraceBatches)
	test.ExpectSuccess(t, frame <= time.Second/television.FramesPerSecond)
	test.ExpectSuccess(t, frame > time.Second/television.FramesPerSecond-time.Millisecond)
}

// VRTC should be high for the retrace part of each frame only and not for
// the time between one burst of drawing and the next.
func TestVRTCDutyCycle(t *testing.T) {
	fnt, err := font.NewFont(make([]uint8, font.ROMSize))
	test.DemandSuccess(t, err)
	fnt.Generate()
	crt := crtc.NewCRTC(make([]uint8, 0x10000), fnt)

	tv, err := television.NewTelevision(crt, nil, 48000)
	test.DemandSuccess(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error)
	go func() {
		done <- tv.Run(ctx, 0)
	}()

	// let the first frame begin
	time.Sleep(50 * time.Millisecond)

	var high, samples int
	end := time.Now().Add(500 * time.Millisecond)
	for time.Now().Before(end) {
		if crt.VRTC() {
			high++
		}
		samples++
		time.Sleep(100 * time.Microsecond)
	}

	cancel()
	test.ExpectSuccess(t, <-done)
	test.ExpectSuccess(t, tv.End())

	test.DemandSuccess(t, samples > 100)
	duty := float64(high) / float64(samples)
	test.ExpectSuccess(t, duty > 0.03, duty)
	test.ExpectSuccess(t, duty < 0.35, duty)
	test.ExpectSuccess(t, tv.FrameNum() > 20, tv.FrameNum())
}
