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

package hardware

import (
	"context"

	"github.com/jetsetilly/gopher8001/curated"
	"github.com/jetsetilly/gopher8001/hardware/commands"
	"github.com/jetsetilly/gopher8001/hardware/dma"
	"github.com/jetsetilly/gopher8001/logger"
)

// PerformanceBrake is the number of cycles between each check of the pacing.
const PerformanceBrake = 100

// Run the emulation until the context is cancelled or the Restart command is
// received. Returns the Restart error in the case of the Restart command and
// nil otherwise.
//
// Run() must not be called more than once at the same time.
func (m *Machine) Run(ctx context.Context) error {
	m.stopping.Store(false)
	stop := context.AfterFunc(ctx, func() {
		m.stopping.Store(true)
		m.suspending.Store(true)
	})
	defer stop()

	m.pacer.resync()
	cycles := 0

	for {
		if m.suspending.Load() {
			if m.stopping.Load() {
				return nil
			}
			if m.control() {
				return curated.Errorf(Restart)
			}
			m.cycles.Add(int64(cycles))
			m.pacer.resync()
			cycles = 0
		}

		cycles += m.CPU.Step()

		if m.CRTC.Refresh() {
			m.DMA.TerminalCount(dma.VideoChannel)
		}

		if cycles >= PerformanceBrake {
			if m.stopping.Load() {
				return nil
			}
			m.pacer.pace(cycles)
			m.cycles.Add(int64(cycles))
			cycles = 0
		}
	}
}

// Command asks the machine to carry out the command at the next opportunity.
// The command replaces any command that hasn't yet been carried out.
//
// Safe to call from any goroutine.
func (m *Machine) Command(cmd commands.Command) {
	m.pending.Store(int32(cmd))
	m.suspending.Store(true)
}

// suspend the parts of the machine that run in real time.
func (m *Machine) suspend(suspended bool) {
	m.Keyboard.Suspend(suspended)
	m.CRTC.Suspend(suspended)
	m.Sound.Suspend(suspended)
}

// control carries out the pending command. Returns true if the machine should
// restart.
func (m *Machine) control() bool {
	m.suspending.Store(false)
	cmd := commands.Command(m.pending.Swap(int32(commands.Continue)))

	if cmd == commands.Menu {
		cmd = commands.Continue
		if m.menu != nil {
			m.suspend(true)
			cmd = m.menu.Menu(m)
			m.suspend(false)
		}
	}

	if cmd != commands.Continue {
		logger.Logf(m, "hardware", "command: %s", cmd)
	}

	switch cmd {
	case commands.Continue:
	case commands.BasicOnRAM:
		m.basicOnRAM()
	case commands.N80:
		m.enterN80()
	case commands.HotStart:
		m.reset()
		m.restartCPU(hotStartAddress)
	case commands.Reset:
		m.reset()
		m.restartCPU(resetAddress)
	case commands.ColdBoot:
		m.coldBoot()
		m.restartCPU(resetAddress)
	case commands.Restart:
		m.Keyboard.Reset()
		if err := m.Close(); err != nil {
			m.report(err)
		}
		return true
	case commands.PCG:
		m.settings.PCG = !m.settings.PCG
		m.CRTC.SetPCG(m.settings.PCG)
	case commands.TapeRewind:
		m.Tape.Rewind()
	case commands.TapeEOT:
		m.Tape.EOT()
	case commands.Mute:
		m.Sound.Mute()
	case commands.VolumeUp:
		m.Sound.VolumeUp()
	case commands.VolumeDown:
		m.Sound.VolumeDown()
	default:
		if n, ok := cmd.IsSpeed(); ok {
			m.pacer.setSpeed(n)
			m.settings.Speed = n
		} else {
			logger.Logf(logger.Allow, "hardware", "%s", cmd)
		}
	}

	return false
}
