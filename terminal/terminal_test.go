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

package terminal_test

import (
	"testing"

	"github.com/jetsetilly/gopher8001/hardware/commands"
	"github.com/jetsetilly/gopher8001/terminal"
	"github.com/jetsetilly/gopher8001/test"
)

func TestTranslate(t *testing.T) {
	expect := map[byte]commands.Command{
		'm': commands.Menu,
		'r': commands.Reset,
		'R': commands.ColdBoot,
		'h': commands.HotStart,
		'x': commands.Restart,
		'p': commands.PCG,
		'b': commands.BasicOnRAM,
		'M': commands.Mute,
		'+': commands.VolumeUp,
		'-': commands.VolumeDown,
		'w': commands.TapeRewind,
		'e': commands.TapeEOT,
		'0': commands.SetSpeed(0),
		'9': commands.SetSpeed(9),
	}

	for k, c := range expect {
		cmd, ok := terminal.Translate(k)
		test.ExpectSuccess(t, ok, string(k))
		test.ExpectEquality(t, cmd, c, string(k))
	}

	_, ok := terminal.Translate('z')
	test.ExpectFailure(t, ok)

	// the quit key is not a command
	_, ok = terminal.Translate(terminal.QuitKey)
	test.ExpectFailure(t, ok)
}
