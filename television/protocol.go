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

import "image"

// Source is the video controller from which the television pulls scanlines.
// Implemented by crtc.CRTC.
type Source interface {
	// Render scanlines into dst starting with scanline start. Each scanline is
	// crtc.ScreenWidth pixel codes in the RGB222 format
	Render(dst []uint8, start int)

	// Suspended returns true if Render() should not be called
	Suspended() bool
}

// AudioSource produces audio samples one at a time. Implemented by
// sound.Mixer.
type AudioSource interface {
	Sample() float32
}

// PixelRenderer implementations display, or otherwise work with, the frames
// produced by the television.
type PixelRenderer interface {
	// NewFrame is called once a frame is complete. The image is owned by the
	// television and is only valid until NewFrame() returns. Implementations
	// that need the image afterwards must copy it
	NewFrame(frameNum int, img *image.RGBA) error

	// EndRendering is called when the television is ended. The renderer should
	// dispose of any resources
	EndRendering() error
}

// AudioMixer implementations work with the audio samples produced alongside
// each frame.
type AudioMixer interface {
	// SetAudio is called once per frame. The slice is reused by the
	// television and is only valid until SetAudio() returns
	SetAudio(samples []float32) error

	// EndMixing is called when the television is ended
	EndMixing() error
}
