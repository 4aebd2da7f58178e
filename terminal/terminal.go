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

package terminal

import (
	"context"
	"errors"
	"io"
	"os"
	"time"

	"github.com/jetsetilly/gopher8001/curated"
	"github.com/jetsetilly/gopher8001/hardware/commands"
	"github.com/jetsetilly/gopher8001/logger"
	"github.com/pkg/term"
	xterm "golang.org/x/term"
)

// Sentinal errors returned by the terminal package.
const (
	TerminalError = "terminal: %v"
	NotATerminal  = "terminal: standard input is not a terminal"
)

// the device opened for key presses
const device = "/dev/tty"

// how long a read waits before checking whether the context is done
const readTimeout = 100 * time.Millisecond

// QuitKey is the key that ends Run().
const QuitKey = 'q'

// Commander receives machine commands. Implemented by hardware.Machine.
type Commander interface {
	Command(commands.Command)
}

// Terminal is the controlling terminal in cbreak mode.
type Terminal struct {
	t *term.Term
}

// Available returns true if standard input is a terminal.
func Available() bool {
	return xterm.IsTerminal(int(os.Stdin.Fd()))
}

// Open the controlling terminal and put it into cbreak mode.
func Open() (*Terminal, error) {
	if !Available() {
		return nil, curated.Errorf(NotATerminal)
	}

	t, err := term.Open(device, term.CBreakMode)
	if err != nil {
		return nil, curated.Errorf(TerminalError, err)
	}

	err = t.SetReadTimeout(readTimeout)
	if err != nil {
		_ = t.Restore()
		_ = t.Close()
		return nil, curated.Errorf(TerminalError, err)
	}

	return &Terminal{t: t}, nil
}

// Run reads key presses and sends the translated commands until the context
// is done or the quit key is pressed. Returns true if the quit key was
// pressed.
func (trm *Terminal) Run(ctx context.Context, cmd Commander) (bool, error) {
	b := make([]byte, 1)

	for {
		select {
		case <-ctx.Done():
			return false, nil
		default:
		}

		n, err := trm.t.Read(b)
		if n == 0 {
			// a timeout reads nothing. other errors end the loop
			if err != nil && !timeout(err) {
				return false, curated.Errorf(TerminalError, err)
			}
			continue
		}

		if b[0] == QuitKey {
			return true, nil
		}

		if c, ok := Translate(b[0]); ok {
			logger.Logf(logger.Allow, "terminal", "%s", c)
			cmd.Command(c)
		}
	}
}

// a read that times out in cbreak mode returns zero bytes and possibly EOF,
// depending on the platform
func timeout(err error) bool {
	return errors.Is(err, io.EOF)
}

// Close restores the terminal mode and closes the terminal.
func (trm *Terminal) Close() error {
	err := trm.t.Restore()
	if err != nil {
		_ = trm.t.Close()
		return curated.Errorf(TerminalError, err)
	}
	err = trm.t.Close()
	if err != nil {
		return curated.Errorf(TerminalError, err)
	}
	return nil
}
