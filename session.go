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

package main

import (
	"context"
	"fmt"
	"os"
	"sync"
	"sync/atomic"

	"github.com/bradleyjkemp/memviz"
	"github.com/jetsetilly/gopher8001/curated"
	"github.com/jetsetilly/gopher8001/hardware"
	"github.com/jetsetilly/gopher8001/hardware/commands"
	"github.com/jetsetilly/gopher8001/hardware/preferences"
	"github.com/jetsetilly/gopher8001/hardware/sound"
	"github.com/jetsetilly/gopher8001/logger"
	"github.com/jetsetilly/gopher8001/paths"
	"github.com/jetsetilly/gopher8001/television"
	"github.com/jetsetilly/gopher8001/wavwriter"
)

// options for the emulate() function.
type options struct {
	verbose bool
	fpsCap  bool

	// number of frames to run for. zero means no limit
	frames int

	// file to load with the first machine
	n80 string

	// filenames for the audio recording and the memviz graph. empty strings
	// mean no recording and no graph
	record string
	memviz string

	renderers []television.PixelRenderer
	mixers    []television.AudioMixer

	// called for every new machine before it starts running
	attach func(s *session)
}

// session is one lifetime of a Machine. A new session begins on the Restart
// command.
type session struct {
	m *hardware.Machine
}

// commander forwards commands from the terminal to the current machine.
// Commands sent between machines are dropped.
type commander struct {
	m atomic.Pointer[hardware.Machine]
}

func (c *commander) set(m *hardware.Machine) {
	c.m.Store(m)
}

// Command implements the terminal.Commander interface.
func (c *commander) Command(cmd commands.Command) {
	if m := c.m.Load(); m != nil {
		m.Command(cmd)
	}
}

// emulate creates and runs machines until the context is cancelled, the frame
// limit is reached or a machine fails.
func emulate(ctx context.Context, opts options) error {
	prefs, err := preferences.NewPreferences("")
	if err != nil {
		return err
	}

	roms, err := hardware.LoadROMs(paths.ResourcePath())
	if err != nil {
		return err
	}

	tv, err := television.NewTelevision(nil, nil, sound.SampleRate)
	if err != nil {
		return err
	}
	tv.SetFPSCap(opts.fpsCap)

	for _, r := range opts.renderers {
		tv.AddPixelRenderer(r)
	}

	for _, mx := range opts.mixers {
		tv.AddAudioMixer(mx)
	}

	if opts.record != "" {
		ww, err := wavwriter.New(opts.record, sound.SampleRate)
		if err != nil {
			return err
		}
		tv.AddAudioMixer(ww)
	}

	var last *hardware.Machine
	first := true

	for {
		var m *hardware.Machine
		m, err = hardware.NewMachine(prefs, roms)
		if err != nil {
			err = curated.Errorf("main: %v", err)
			break
		}
		m.SetVerbose(opts.verbose)

		if first && opts.n80 != "" {
			err = m.LoadN80(opts.n80)
			if err != nil {
				err = curated.Errorf("main: %v", err)
				break
			}
		}
		first = false

		s := &session{m: m}
		if opts.attach != nil {
			opts.attach(s)
		}

		var restart bool
		restart, err = s.run(ctx, tv, opts.frames)
		last = m
		if err != nil || !restart {
			break
		}

		logger.Log(logger.Allow, "main", "restarting machine")

		// the frame limit covers every session
		if opts.frames > 0 && tv.FrameNum() >= opts.frames {
			break
		}
	}

	if err == nil && last != nil && opts.memviz != "" {
		err = dumpMemviz(opts.memviz, last)
	}

	if endErr := tv.End(); endErr != nil && err == nil {
		err = endErr
	}

	return err
}

// run the machine and the television side by side. Returns true if the
// machine asked to be restarted.
func (s *session) run(ctx context.Context, tv *television.Television, frames int) (bool, error) {
	tv.SetSource(s.m.CRTC, sound.NewMixer(s.m.Sound, sound.SampleRate))

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var wg sync.WaitGroup
	var tvErr error

	wg.Add(1)
	go func() {
		defer wg.Done()
		tvErr = tv.Run(ctx, frames)

		// the television stopping for any reason stops the machine
		cancel()
	}()

	runErr := s.m.Run(ctx)

	// the machine stopping for any reason stops the television
	cancel()
	wg.Wait()

	restart := curated.Is(runErr, hardware.Restart)
	if runErr != nil && !restart {
		return false, runErr
	}

	closeErr := s.m.Close()
	if tvErr != nil {
		return false, tvErr
	}
	if closeErr != nil {
		return false, closeErr
	}

	if msg := s.m.Message(); msg != "" {
		logger.Log(logger.Allow, "main", msg)
	}

	return restart, nil
}

// the machine state written by dumpMemviz.
type machineState struct {
	Settings   preferences.Snapshot
	Speed      int
	BankReg    uint8
	Mode       int
	Unit       string
	Column80   bool
	PCG        bool
	ColourMode bool
	VRAM       uint16
	Volume     int
	Muted      bool
}

// dumpMemviz writes a graph of the final state of the machine, in the DOT
// format, to the named file.
func dumpMemviz(path string, m *hardware.Machine) error {
	st := &machineState{
		Settings:   m.Settings(),
		Speed:      m.Speed(),
		BankReg:    m.Mem.BankRegister(),
		Mode:       int(m.Mem.Mode()),
		Unit:       m.Mem.Unit().String(),
		Column80:   m.Ports.Control()&0x01 == 0x01,
		PCG:        m.CRTC.PCG(),
		ColourMode: m.CRTC.ColourMode(),
		VRAM:       m.CRTC.VRAM(),
		Volume:     m.Sound.Volume(),
		Muted:      m.Sound.Muted(),
	}

	f, err := os.Create(path)
	if err != nil {
		return curated.Errorf("main: memviz: %v", err)
	}
	defer f.Close()

	memviz.Map(f, st)
	fmt.Printf("* machine state written to %s\n", path)

	return nil
}
