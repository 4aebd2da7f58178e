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

// Package otoaudio plays the output of the sound generators through the host
// audio device. Samples are pulled by the oto goroutine from whichever
// source is current. The source can be changed at any time, which allows
// the machine to be rebuilt without recreating the audio context. Only one
// Audio can exist in a process.
package otoaudio

import (
	"io"
	"sync"
	"sync/atomic"

	"github.com/ebitengine/oto/v3"
	"github.com/jetsetilly/gopher8001/curated"
	"github.com/jetsetilly/gopher8001/logger"
)

// Sentinal error returned by NewAudio() and Close().
const (
	AudioError = "otoaudio: %v"
)

// the size of the oto buffer in bytes. small enough for the beep to feel
// immediate
const bufferSize = 2048 * 4

// source wraps the source reader so that it can be stored in an
// atomic.Pointer
type source struct {
	r io.Reader
}

// Audio is the live audio output.
type Audio struct {
	crit   sync.Mutex
	ctx    *oto.Context
	player *oto.Player
	rate   int

	src atomic.Pointer[source]
}

// NewAudio is the preferred method of initialisation for the Audio type.
// Output is silent until a source is set with SetSource() and Play() is
// called.
func NewAudio(sampleRate int) (*Audio, error) {
	opts := &oto.NewContextOptions{
		SampleRate:   sampleRate,
		ChannelCount: 1,
		Format:       oto.FormatFloat32LE,
	}

	ctx, ready, err := oto.NewContext(opts)
	if err != nil {
		return nil, curated.Errorf(AudioError, err)
	}
	<-ready

	aud := &Audio{
		ctx:  ctx,
		rate: sampleRate,
	}
	aud.player = ctx.NewPlayer(aud)
	aud.player.SetBufferSize(bufferSize)

	logger.Logf(logger.Allow, "otoaudio", "audio output at %dHz", sampleRate)

	return aud, nil
}

// SetSource changes the source of samples. The source must produce mono
// float32 samples in little-endian byte order at the sample rate of the
// Audio. sound.Mixer does this. A nil source is silence.
func (aud *Audio) SetSource(r io.Reader) {
	if r == nil {
		aud.src.Store(nil)
		return
	}
	aud.src.Store(&source{r: r})
}

// Read implements the io.Reader interface. It is called by the oto goroutine.
func (aud *Audio) Read(p []byte) (int, error) {
	src := aud.src.Load()
	if src == nil {
		clear(p)
		return len(p), nil
	}
	n, err := src.r.Read(p)
	if err != nil {
		// the player stops for good if it sees an error so we hide it
		clear(p[n:])
		return len(p), nil
	}
	return n, nil
}

// Play starts the audio output.
func (aud *Audio) Play() {
	aud.crit.Lock()
	defer aud.crit.Unlock()

	if aud.player != nil {
		aud.player.Play()
	}
}

// Pause stops the audio output. It can be started again with Play().
func (aud *Audio) Pause() {
	aud.crit.Lock()
	defer aud.crit.Unlock()

	if aud.player != nil {
		aud.player.Pause()
	}
}

// SampleRate returns the sample rate of the audio output.
func (aud *Audio) SampleRate() int {
	return aud.rate
}

// Close the audio output. The Audio type can not be used after Close().
func (aud *Audio) Close() error {
	aud.crit.Lock()
	defer aud.crit.Unlock()

	if aud.player == nil {
		return nil
	}

	err := aud.player.Close()
	aud.player = nil
	if err != nil {
		return curated.Errorf(AudioError, err)
	}
	return nil
}
