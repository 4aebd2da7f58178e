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

package sdlplay

import (
	"github.com/jetsetilly/gopher8001/gui"
	"github.com/veandco/go-sdl2/sdl"
)

func setupService() {
	// MOUSEMOTION events fill up the event queue pretty quickly. we have no use
	// for the mouse at all
	sdl.EventState(sdl.MOUSEMOTION, sdl.IGNORE)
}

func keyMod() gui.KeyMod {
	mod := sdl.GetModState()
	switch {
	case mod&sdl.KMOD_LALT == sdl.KMOD_LALT || mod&sdl.KMOD_RALT == sdl.KMOD_RALT:
		return gui.KeyModAlt
	case mod&sdl.KMOD_LSHIFT == sdl.KMOD_LSHIFT || mod&sdl.KMOD_RSHIFT == sdl.KMOD_RSHIFT:
		return gui.KeyModShift
	case mod&sdl.KMOD_LCTRL == sdl.KMOD_LCTRL || mod&sdl.KMOD_RCTRL == sdl.KMOD_RCTRL:
		return gui.KeyModCtrl
	}
	return gui.KeyModNone
}

// Service handles outstanding SDL events and presents the most recent frame.
// Returns false when the window has been closed.
//
// MUST ONLY be called from the #mainthread
func (scr *SdlPlay) Service() bool {
	running := true
	input := scr.input.Load()

	if title := scr.title.Swap(nil); title != nil {
		scr.window.SetTitle(*title)
	}

	for ev := sdl.PollEvent(); ev != nil; ev = sdl.PollEvent() {
		switch ev := ev.(type) {
		case *sdl.QuitEvent:
			running = false

		case *sdl.WindowEvent:
			if ev.Event == sdl.WINDOWEVENT_FOCUS_LOST && input != nil {
				input.ReleaseAll()
			}

		case *sdl.KeyboardEvent:
			if ev.Repeat != 0 || input == nil {
				continue
			}
			input.HandleKeyboard(gui.EventKeyboard{
				Key:  sdl.GetKeyName(ev.Keysym.Sym),
				Mod:  keyMod(),
				Down: ev.Type == sdl.KEYDOWN,
			})
		}
	}

	scr.present()

	return running
}

// present the most recent frame. the texture is only updated if the
// television has produced a frame since the last call.
func (scr *SdlPlay) present() {
	scr.crit.Lock()
	if scr.fresh {
		scr.fresh = false
		pixels, pitch, err := scr.texture.Lock(nil)
		if err == nil {
			w := int(scr.width) * pixelDepth
			for y := 0; y < int(scr.height); y++ {
				copy(pixels[y*pitch:y*pitch+w], scr.pixels[y*w:])
			}
			scr.texture.Unlock()
		}
	}
	scr.crit.Unlock()

	_ = scr.renderer.Clear()
	_ = scr.renderer.Copy(scr.texture, nil, nil)
	scr.renderer.Present()
}
