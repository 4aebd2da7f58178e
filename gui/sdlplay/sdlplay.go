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

// Package sdlplay is a simple SDL front end for playing. It implements the
// television.PixelRenderer interface and forwards keyboard events to a
// gui.Input.
//
// Service() and every function that creates or destroys SDL resources MUST
// only be called from the #mainthread. NewFrame() is called by the
// television goroutine and hands the frame over to the #mainthread.
package sdlplay

import (
	"image"
	"sync"
	"sync/atomic"

	"github.com/jetsetilly/gopher8001/curated"
	"github.com/jetsetilly/gopher8001/gui"
	"github.com/veandco/go-sdl2/sdl"
)

// Sentinal error returned by NewSdlPlay().
const (
	SDLError = "sdlplay: %v"
)

const pixelDepth = 4

// the default window scale
const DefaultScale = 1

// SdlPlay is the play window.
type SdlPlay struct {
	window   *sdl.Window
	renderer *sdl.Renderer
	texture  *sdl.Texture

	width  int32
	height int32

	// the most recent frame from the television. fresh is true if pixels has
	// not yet been copied to the texture
	crit   sync.Mutex
	pixels []byte
	fresh  bool

	// the input changes when the machine is rebuilt
	input atomic.Pointer[gui.Input]

	// title waiting to be set by Service()
	title atomic.Pointer[string]
}

// NewSdlPlay is the preferred method of initialisation for SdlPlay. The
// window is sized for the frames of the television at the scale.
//
// MUST ONLY be called from the #mainthread
func NewSdlPlay(title string, width int, height int, scale int) (*SdlPlay, error) {
	scr := &SdlPlay{
		width:  int32(width),
		height: int32(height),
		pixels: make([]byte, width*height*pixelDepth),
	}

	var err error

	err = sdl.Init(sdl.INIT_VIDEO | sdl.INIT_EVENTS)
	if err != nil {
		return nil, curated.Errorf(SDLError, err)
	}

	scale = max(1, scale)

	scr.window, err = sdl.CreateWindow(title,
		int32(sdl.WINDOWPOS_CENTERED), int32(sdl.WINDOWPOS_CENTERED),
		scr.width*int32(scale), scr.height*int32(scale),
		uint32(sdl.WINDOW_SHOWN|sdl.WINDOW_RESIZABLE))
	if err != nil {
		sdl.Quit()
		return nil, curated.Errorf(SDLError, err)
	}

	scr.renderer, err = sdl.CreateRenderer(scr.window, -1, uint32(sdl.RENDERER_ACCELERATED))
	if err != nil {
		scr.Destroy()
		return nil, curated.Errorf(SDLError, err)
	}

	// the logical size keeps the aspect ratio when the window is resized
	err = scr.renderer.SetLogicalSize(scr.width, scr.height)
	if err != nil {
		scr.Destroy()
		return nil, curated.Errorf(SDLError, err)
	}

	scr.texture, err = scr.renderer.CreateTexture(uint32(sdl.PIXELFORMAT_ABGR8888),
		int(sdl.TEXTUREACCESS_STREAMING), scr.width, scr.height)
	if err != nil {
		scr.Destroy()
		return nil, curated.Errorf(SDLError, err)
	}

	setupService()

	return scr, nil
}

// SetInput sets the destination of keyboard events. Safe to call from any
// goroutine.
func (scr *SdlPlay) SetInput(input *gui.Input) {
	scr.input.Store(input)
}

// SetTitle changes the title of the window. The change happens during the
// next call to Service(). Safe to call from any goroutine.
func (scr *SdlPlay) SetTitle(title string) {
	scr.title.Store(&title)
}

// NewFrame implements the television.PixelRenderer interface.
func (scr *SdlPlay) NewFrame(frameNum int, img *image.RGBA) error {
	scr.crit.Lock()
	defer scr.crit.Unlock()

	copy(scr.pixels, img.Pix)
	scr.fresh = true

	return nil
}

// EndRendering implements the television.PixelRenderer interface.
func (scr *SdlPlay) EndRendering() error {
	return nil
}

// Destroy the window and shut down SDL.
//
// MUST ONLY be called from the #mainthread
func (scr *SdlPlay) Destroy() {
	if scr.texture != nil {
		_ = scr.texture.Destroy()
		scr.texture = nil
	}
	if scr.renderer != nil {
		_ = scr.renderer.Destroy()
		scr.renderer = nil
	}
	if scr.window != nil {
		_ = scr.window.Destroy()
		scr.window = nil
	}
	sdl.Quit()
}

// ShowError shows a message box. It can be called without a window, before
// SDL is initialised.
//
// MUST ONLY be called from the #mainthread
func ShowError(title string, message string) error {
	err := sdl.ShowSimpleMessageBox(sdl.MESSAGEBOX_ERROR, title, message, nil)
	if err != nil {
		return curated.Errorf(SDLError, err)
	}
	return nil
}
