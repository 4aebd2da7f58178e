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

// Package tape emulates the cassette interface of the PC-8001. The machine
// talks to the cassette through the USART at ports 0x20 and 0x21, and turns
// the motor on and off through the system control port.
//
// Tapes in the CMT format are a plain stream of bytes, exactly as they are
// read by the USART. CMT tapes can also be recorded to. Tapes in the WAV and
// MP3 formats are recordings of a real cassette and are demodulated when they
// are opened. They cannot be recorded to.
package tape

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/jetsetilly/gopher8001/curated"
	"github.com/jetsetilly/gopher8001/logger"
)

// Sentinal errors returned by Open().
const (
	TapeError         = "tape: %v"
	UnsupportedFormat = "tape: unsupported format (%s)"
)

// Bits of the USART status register.
const (
	StatusTxReady = 0x01
	StatusRxReady = 0x02
	StatusTxEmpty = 0x04
)

// the system control bit for the cassette motor.
const controlMotor = 0x08

// USART command bits.
const (
	commandInternalReset = 0x40
)

// Deck is the cassette deck and the USART it is connected to.
type Deck struct {
	perm logger.Permission

	path     string
	data     []uint8
	position int

	writable bool
	modified bool

	motor bool

	// the USART expects a mode byte after a reset and command bytes after that
	expectMode bool
	mode       uint8
	command    uint8
}

// NewDeck is the preferred method of initialisation for the Deck type.
func NewDeck(perm logger.Permission) *Deck {
	return &Deck{
		perm:       perm,
		expectMode: true,
	}
}

// Open the tape. Any currently open tape is closed first.
func (dk *Deck) Open(path string) error {
	err := dk.Close()
	if err != nil {
		return err
	}

	var data []uint8
	var writable bool

	switch strings.ToLower(filepath.Ext(path)) {
	case ".cmt":
		data, err = os.ReadFile(path)
		if err != nil {
			return curated.Errorf(TapeError, err)
		}
		writable = true
	case ".wav", ".mp3":
		pcm, err := loadPCM(dk.perm, path)
		if err != nil {
			return curated.Errorf(TapeError, err)
		}
		data = DecodeFSK(pcm.data, pcm.sampleRate, Baud)
	default:
		return curated.Errorf(UnsupportedFormat, filepath.Ext(path))
	}

	dk.path = path
	dk.data = data
	dk.position = 0
	dk.writable = writable
	dk.modified = false

	logger.Logf(logger.Allow, "tape", "opened %s (%d bytes)", filepath.Base(path), len(dk.data))

	return nil
}

// Close the tape. Recorded data is written back to the file.
func (dk *Deck) Close() error {
	if dk.path == "" {
		return nil
	}

	defer func() {
		dk.path = ""
		dk.data = nil
		dk.position = 0
		dk.modified = false
	}()

	if dk.modified {
		err := os.WriteFile(dk.path, dk.data, 0o644)
		if err != nil {
			return curated.Errorf(TapeError, err)
		}
		logger.Logf(logger.Allow, "tape", "saved %s (%d bytes)", filepath.Base(dk.path), len(dk.data))
	}

	return nil
}

// Path returns the path of the open tape. Empty if there is no tape.
func (dk *Deck) Path() string {
	return dk.path
}

// Rewind the tape to the beginning.
func (dk *Deck) Rewind() {
	dk.position = 0
	logger.Log(dk.perm, "tape", "rewind")
}

// EOT winds the tape to the end. Anything recorded will be added to the end
// of the tape.
func (dk *Deck) EOT() {
	dk.position = len(dk.data)
	logger.Log(dk.perm, "tape", "end of tape")
}

// Position returns the current position and the length of the tape.
func (dk *Deck) Position() (int, int) {
	return dk.position, len(dk.data)
}

// Motor returns true if the cassette motor is running.
func (dk *Deck) Motor() bool {
	return dk.motor
}

// SystemControl handles the bits of the system control port (0x30) that are
// connected to the cassette.
func (dk *Deck) SystemControl(data uint8) {
	motor := data&controlMotor == controlMotor
	if motor != dk.motor {
		dk.motor = motor
		logger.Logf(dk.perm, "tape", "motor on: %v", motor)
	}
}

// ReadStatus reads the USART status register (odd ports 0x21 to 0x2f).
func (dk *Deck) ReadStatus() uint8 {
	v := uint8(StatusTxReady | StatusTxEmpty)
	if dk.motor && dk.position < len(dk.data) {
		v |= StatusRxReady
	}
	return v
}

// ReadData reads the next byte from the tape (even ports 0x20 to 0x2e).
func (dk *Deck) ReadData() uint8 {
	if !dk.motor || dk.position >= len(dk.data) {
		return 0x00
	}
	v := dk.data[dk.position]
	dk.position++
	return v
}

// WriteData records a byte to the tape (even ports 0x20 to 0x2e). Tapes that
// were not opened from a CMT file cannot be recorded to.
func (dk *Deck) WriteData(data uint8) {
	if !dk.motor || !dk.writable {
		return
	}
	if dk.position < len(dk.data) {
		dk.data[dk.position] = data
	} else {
		dk.data = append(dk.data, data)
	}
	dk.position++
	dk.modified = true
}

// WriteCommand writes to the USART mode or command register (odd ports 0x21
// to 0x2f).
func (dk *Deck) WriteCommand(data uint8) {
	if dk.expectMode {
		dk.mode = data
		dk.expectMode = false
		return
	}
	dk.command = data
	if data&commandInternalReset == commandInternalReset {
		dk.expectMode = true
	}
}

// Create a blank CMT tape at the path and open it.
func (dk *Deck) Create(path string) error {
	if strings.ToLower(filepath.Ext(path)) != ".cmt" {
		return curated.Errorf(UnsupportedFormat, filepath.Ext(path))
	}
	err := os.WriteFile(path, []uint8{}, 0o644)
	if err != nil {
		return curated.Errorf(TapeError, err)
	}
	return dk.Open(path)
}
