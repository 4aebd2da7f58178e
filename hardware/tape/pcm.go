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

package tape

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-audio/wav"
	"github.com/hajimehoshi/go-mp3"
	"github.com/jetsetilly/gopher8001/logger"
)

// pcm is a single channel of a recording.
type pcm struct {
	sampleRate int
	data       []float32
}

// loadPCM decodes the WAV or MP3 file at path. Only the first channel of a
// multi-channel recording is used.
func loadPCM(perm logger.Permission, path string) (pcm, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return pcm{}, err
	}
	r := bytes.NewReader(b)

	switch strings.ToLower(filepath.Ext(path)) {
	case ".wav":
		return loadWAV(perm, r)
	case ".mp3":
		return loadMP3(perm, r)
	}

	return pcm{}, fmt.Errorf("no PCM decoder for %s", filepath.Ext(path))
}

func loadWAV(perm logger.Permission, r io.ReadSeeker) (pcm, error) {
	dec := wav.NewDecoder(r)
	if !dec.IsValidFile() {
		return pcm{}, fmt.Errorf("not a valid wav file")
	}

	logger.Log(perm, "tape", "loading from wav file")

	buf, err := dec.FullPCMBuffer()
	if err != nil {
		return pcm{}, fmt.Errorf("wav: %w", err)
	}

	channels := int(dec.NumChans)
	if channels < 1 {
		return pcm{}, fmt.Errorf("wav: no channels")
	}

	floatBuf := buf.AsFloat32Buffer()

	// scale integer samples to the range [-1,1]
	scale := float32(1)
	if dec.BitDepth > 0 {
		scale = float32(int64(1) << (dec.BitDepth - 1))
	}

	p := pcm{
		sampleRate: int(dec.SampleRate),
		data:       make([]float32, 0, len(floatBuf.Data)/channels),
	}
	for i := 0; i < len(floatBuf.Data); i += channels {
		p.data = append(p.data, floatBuf.Data[i]/scale)
	}

	if d, err := dec.Duration(); err == nil {
		logger.Logf(perm, "tape", "wav: %d channels, %dHz, %.02fs", channels, p.sampleRate, d.Seconds())
	}

	return p, nil
}

func loadMP3(perm logger.Permission, r io.Reader) (pcm, error) {
	dec, err := mp3.NewDecoder(r)
	if err != nil {
		return pcm{}, fmt.Errorf("mp3: %w", err)
	}

	logger.Log(perm, "tape", "loading from mp3 file")

	p := pcm{
		sampleRate: dec.SampleRate(),
	}

	// the decoder output is always 16 bit little-endian stereo. we take the
	// left channel only
	chunk := make([]byte, 4096)
	for {
		n, err := dec.Read(chunk)
		for i := 0; i+1 < n; i += 4 {
			v := int16(uint16(chunk[i]) | uint16(chunk[i+1])<<8)
			p.data = append(p.data, float32(v)/32768)
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return pcm{}, fmt.Errorf("mp3: %w", err)
		}
	}

	logger.Logf(perm, "tape", "mp3: %dHz, %d samples", p.sampleRate, len(p.data))

	return p, nil
}
