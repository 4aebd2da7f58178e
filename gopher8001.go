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
	"os/signal"
	"path/filepath"
	"strings"

	"github.com/jetsetilly/gopher8001/curated"
	"github.com/jetsetilly/gopher8001/digest"
	"github.com/jetsetilly/gopher8001/gui"
	"github.com/jetsetilly/gopher8001/gui/otoaudio"
	"github.com/jetsetilly/gopher8001/gui/sdlplay"
	"github.com/jetsetilly/gopher8001/hardware"
	"github.com/jetsetilly/gopher8001/hardware/crtc"
	"github.com/jetsetilly/gopher8001/hardware/disk"
	"github.com/jetsetilly/gopher8001/hardware/memory"
	"github.com/jetsetilly/gopher8001/hardware/preferences"
	"github.com/jetsetilly/gopher8001/hardware/sound"
	"github.com/jetsetilly/gopher8001/hardware/tape"
	"github.com/jetsetilly/gopher8001/logger"
	"github.com/jetsetilly/gopher8001/modalflag"
	"github.com/jetsetilly/gopher8001/paths"
	"github.com/jetsetilly/gopher8001/performance"
	"github.com/jetsetilly/gopher8001/performance/limiter"
	"github.com/jetsetilly/gopher8001/screenshot"
	"github.com/jetsetilly/gopher8001/statsview"
	"github.com/jetsetilly/gopher8001/television"
	"github.com/jetsetilly/gopher8001/terminal"
	"github.com/jetsetilly/gopher8001/version"
)

type stateReq = string

const (
	// main thread should end as soon as possible.
	//
	// takes optional int argument, indicating the status code.
	reqQuit stateReq = "QUIT"

	// show an error message in a message box.
	//
	// takes a string argument.
	reqError stateReq = "ERROR"
)

type stateRequest struct {
	req  stateReq
	args interface{}
}

// GuiCreator facilitates the creation, servicing and destruction of GUIs
// that need to be run in the main thread.
type GuiCreator interface {
	// cleanup resources used by the gui
	Destroy()

	// Service() should not pause or loop longer than necessary. It MUST ONLY
	// be called as part of a larger loop from the main thread. Returns false
	// if the gui has been closed by the user
	Service() bool
}

// communication between the main() function and the launch() function. this is
// required because SDL requires window event handling (including creation)
// to occur on the main thread.
type mainSync struct {
	state   chan stateRequest
	creator chan func() (GuiCreator, error)

	// the result of creator will be returned on either of these two channels.
	creation      chan GuiCreator
	creationError chan error

	// closed by the main thread when the program should end. the launch
	// goroutine should finish and send reqQuit
	quit chan struct{}
}

// #mainthread
func main() {
	sync := &mainSync{
		state:         make(chan stateRequest),
		creator:       make(chan func() (GuiCreator, error)),
		creation:      make(chan GuiCreator),
		creationError: make(chan error),
		quit:          make(chan struct{}),
	}

	// the value to use with os.Exit(). can be changed with reqQuit
	// stateRequest
	exitVal := 0

	// #ctrlc the first interrupt asks the launch goroutine to end. a second
	// interrupt ends the program immediately
	intChan := make(chan os.Signal, 1)
	signal.Notify(intChan, os.Interrupt)

	// the frontend is serviced at the display rate
	lmtr, err := limiter.NewFPSLimiter(60)
	if err != nil {
		fmt.Printf("* error: %v\n", err)
		os.Exit(10)
	}

	go launch(sync)

	quitting := false
	requestQuit := func() {
		if !quitting {
			quitting = true
			close(sync.quit)
		}
	}

	done := false
	var frontend GuiCreator
	for !done {
		select {
		case <-intChan:
			fmt.Println("\r")
			if quitting {
				exitVal = 1
				done = true
			}
			requestQuit()

		case creator := <-sync.creator:
			if frontend != nil {
				frontend.Destroy()
			}

			var err error
			frontend, err = creator()
			if err != nil {
				sync.creationError <- err

				// an interface holding a nil pointer is not nil
				frontend = nil
			} else {
				sync.creation <- frontend
			}

		case state := <-sync.state:
			switch state.req {
			case reqQuit:
				done = true
				if state.args != nil {
					if v, ok := state.args.(int); ok {
						exitVal = v
					} else {
						panic(fmt.Sprintf("cannot convert %s arguments into int", reqQuit))
					}
				}

			case reqError:
				msg, ok := state.args.(string)
				if !ok {
					panic(fmt.Sprintf("cannot convert %s arguments into string", reqError))
				}
				if err := sdlplay.ShowError(version.ApplicationName, msg); err != nil {
					logger.Log(logger.Allow, "main", err.Error())
				}
			}

		default:
			if frontend != nil {
				if !frontend.Service() {
					requestQuit()
				}
				lmtr.Wait()
			} else {
				// nothing to service but we don't want to spin
				lmtr.Wait()
			}
		}
	}

	if frontend != nil {
		frontend.Destroy()
	}

	fmt.Print("\r")
	os.Exit(exitVal)
}

// launch is called from main() as a goroutine. uses mainSync instance to
// indicate frontend creation and to quit.
func launch(sync *mainSync) {
	md := &modalflag.Modes{Output: os.Stdout}
	md.NewArgs(os.Args[1:])
	md.AddSubModes("PLAY", "HEADLESS", "PERFORMANCE", "NEWDISK", "NEWTAPE")
	resources := md.AddString("resources", "", "resource directory (default ~/.gopher8001)")
	verbose := md.AddBool("verbose", false, "log routine events and echo the log to stdout")
	showVersion := md.AddBool("version", false, "show version information and exit")
	var stats *bool
	if statsview.Available() {
		stats = md.AddBool("statsview", false, fmt.Sprintf("run stats server (%s)", statsview.Address))
	}

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		sync.state <- stateRequest{req: reqQuit}
		return

	case modalflag.ParseError:
		fmt.Printf("* error: %v\n", err)
		sync.state <- stateRequest{req: reqQuit, args: 10}
		return
	}

	if *showVersion {
		inf := version.Version()
		fmt.Printf("%s %s (%s)\n", version.ApplicationName, inf.Version, inf.Revision)
		sync.state <- stateRequest{req: reqQuit}
		return
	}

	if *resources != "" {
		paths.SetBase(*resources)
	}

	if *verbose {
		logger.SetEcho(os.Stdout)
	}

	if stats != nil && *stats {
		stop := statsview.Launch(os.Stdout)
		defer stop()
	}

	// context is cancelled when the main thread asks us to quit
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() {
		select {
		case <-sync.quit:
			cancel()
		case <-ctx.Done():
		}
	}()

	err = paths.EnsureDirs()
	if err != nil {
		err = curated.Errorf("main: %v", err)
	} else {
		switch md.Mode() {
		case "PLAY":
			err = play(ctx, md, sync, *verbose)

		case "HEADLESS":
			err = headless(ctx, md, *verbose)

		case "PERFORMANCE":
			err = perform(ctx, md)

		case "NEWDISK":
			err = newDisk(md)

		case "NEWTAPE":
			err = newTape(md)
		}
	}

	if err != nil {
		fmt.Printf("* error in %s mode: %s\n", md.String(), err)
		if md.Mode() == "PLAY" {
			sync.state <- stateRequest{req: reqError, args: err.Error()}
		}
		sync.state <- stateRequest{req: reqQuit, args: 20}
		return
	}

	sync.state <- stateRequest{req: reqQuit}
}

// flags common to the PLAY and HEADLESS modes.
type sessionFlags struct {
	n80    *string
	record *string
	memviz *string
}

func addSessionFlags(md *modalflag.Modes) sessionFlags {
	return sessionFlags{
		n80:    md.AddString("n80", "", "N80 file to load and run after boot"),
		record: md.AddString("record", "", "record audio to WAV file"),
		memviz: md.AddString("memviz", "", "write a graph of the machine state (DOT format) on exit"),
	}
}

func (f sessionFlags) options(verbose bool) options {
	return options{
		verbose: verbose,
		n80:     resolve(*f.n80, "n80"),
		record:  *f.record,
		memviz:  *f.memviz,
	}
}

// resolve a path given on the command line. a path that doesn't exist
// relative to the working directory is looked for in the resource
// subdirectory.
func resolve(path string, subDir string) string {
	if path == "" || filepath.IsAbs(path) {
		return path
	}
	if _, err := os.Stat(path); err == nil {
		return path
	}
	return paths.ResourcePath(subDir, path)
}

func play(ctx context.Context, md *modalflag.Modes, sync *mainSync, verbose bool) error {
	md.NewMode()

	scale := md.AddInt("scale", 2, "window scale")
	mute := md.AddBool("nosound", false, "no live audio output")
	fpsCap := md.AddBool("fpscap", true, "cap the display at 60 frames per second")
	flags := addSessionFlags(md)

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) > 0 {
		return curated.Errorf("main: too many arguments for %s mode", md)
	}

	// create gui
	sync.creator <- func() (GuiCreator, error) {
		return sdlplay.NewSdlPlay(version.Title(), crtc.ScreenWidth, crtc.ScreenHeight, *scale)
	}

	// wait for creator result
	var scr *sdlplay.SdlPlay
	select {
	case g := <-sync.creation:
		scr = g.(*sdlplay.SdlPlay)
	case err := <-sync.creationError:
		return err
	}

	var aud *otoaudio.Audio
	if !*mute {
		aud, err = otoaudio.NewAudio(sound.SampleRate)
		if err != nil {
			// the emulation is still useful without sound
			logger.Log(logger.Allow, "main", err.Error())
			aud = nil
		} else {
			defer aud.Close()
			aud.Play()
		}
	}

	shot := screenshot.NewScreenshot(1, "")

	opts := flags.options(verbose)
	opts.fpsCap = *fpsCap
	opts.renderers = append(opts.renderers, scr, shot)
	opts.attach = func(s *session) {
		in := gui.NewInput(s.m.Keyboard, s.m)
		in.Screenshot = func() {
			shot.Request(paths.ResourcePath(paths.UniqueFilename("screenshot", "") + ".png"))
		}
		scr.SetInput(in)
		if u := s.m.Mem.Unit(); u != memory.NoUnit {
			scr.SetTitle(fmt.Sprintf("%s (%s)", version.Title(), u))
		} else {
			scr.SetTitle(version.Title())
		}
		if aud != nil {
			aud.SetSource(sound.NewMixer(s.m.Sound, sound.SampleRate))
		}
	}

	return emulate(ctx, opts)
}

func headless(ctx context.Context, md *modalflag.Modes, verbose bool) error {
	md.NewMode()

	frames := md.AddInt("frames", 0, "number of frames to run (0 runs until interrupted)")
	shotPath := md.AddString("screenshot", "", "save a PNG of the final frame")
	scale := md.AddInt("scale", 1, "screenshot scale")
	digests := md.AddBool("digest", false, "print the video and audio digests on exit")
	fpsCap := md.AddBool("fpscap", true, "run the display at 60 frames per second")
	flags := addSessionFlags(md)

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) > 0 {
		return curated.Errorf("main: too many arguments for %s mode", md)
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	opts := flags.options(verbose)
	opts.fpsCap = *fpsCap
	opts.frames = *frames
	if *shotPath != "" {
		opts.renderers = append(opts.renderers, screenshot.NewScreenshot(*scale, *shotPath))
	}

	var vdig *digest.Video
	var adig *digest.Audio
	if *digests {
		vdig = digest.NewVideo()
		adig = digest.NewAudio()
		opts.renderers = append(opts.renderers, vdig)
		opts.mixers = append(opts.mixers, adig)
	}

	// hot-keys from the terminal if there is one
	cmd := &commander{}
	opts.attach = func(s *session) {
		cmd.set(s.m)
	}

	if terminal.Available() {
		trm, err := terminal.Open()
		if err != nil {
			return err
		}
		defer trm.Close()

		fmt.Println("* press q to quit")

		go func() {
			quit, err := trm.Run(ctx, cmd)
			if err != nil {
				logger.Log(logger.Allow, "main", err.Error())
			}
			if quit {
				cancel()
			}
		}()
	}

	err = emulate(ctx, opts)
	if err != nil {
		return err
	}

	if *digests {
		fmt.Printf("video: %s (%d frames)\n", vdig.Hash(), vdig.FrameNum())
		fmt.Printf("audio: %s\n", adig.Hash())
	}

	return nil
}

func perform(ctx context.Context, md *modalflag.Modes) error {
	md.NewMode()

	duration := md.AddString("duration", "5s", "run duration (after a two second lead time)")
	uncapped := md.AddBool("uncapped", true, "run the display without the frame rate cap")
	profile := md.AddString("profile", "none", "run performance check with profiling: comma separated CPU, MEM, TRACE or ALL")
	n80 := md.AddString("n80", "", "N80 file to load and run after boot")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) > 0 {
		return curated.Errorf("main: too many arguments for %s mode", md)
	}

	prf, err := performance.ParseProfileString(*profile)
	if err != nil {
		return err
	}

	prefs, err := preferences.NewPreferences("")
	if err != nil {
		return err
	}

	roms, err := hardware.LoadROMs(paths.ResourcePath())
	if err != nil {
		return err
	}

	m, err := hardware.NewMachine(prefs, roms)
	if err != nil {
		return err
	}
	defer m.Close()

	if *n80 != "" {
		err = m.LoadN80(resolve(*n80, "n80"))
		if err != nil {
			return err
		}
	}

	tv, err := television.NewTelevision(m.CRTC, nil, sound.SampleRate)
	if err != nil {
		return err
	}
	defer tv.End()

	return performance.Check(ctx, os.Stdout, prf, m, tv, *uncapped, *duration)
}

func newDisk(md *modalflag.Modes) error {
	md.NewMode()
	protect := md.AddBool("protect", false, "write protect the new disk")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) != 1 {
		return curated.Errorf("main: %s mode requires one filename", md)
	}

	path := md.GetArg(0)
	if filepath.Base(path) == path {
		path = paths.ResourcePath("disk", path)
	}

	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	err = disk.CreateBlank(path, name)
	if err != nil {
		return err
	}

	if *protect {
		img, err := disk.OpenImage(path)
		if err != nil {
			return err
		}
		img.SetProtect(true)
		err = img.Save()
		if err != nil {
			return err
		}
	}

	fmt.Printf("* created %s\n", path)
	return nil
}

func newTape(md *modalflag.Modes) error {
	md.NewMode()

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) != 1 {
		return curated.Errorf("main: %s mode requires one filename", md)
	}

	path := md.GetArg(0)
	if filepath.Base(path) == path {
		path = paths.ResourcePath("tape", path)
	}

	dk := tape.NewDeck(logger.Allow)
	err = dk.Create(path)
	if err != nil {
		return err
	}
	err = dk.Close()
	if err != nil {
		return err
	}

	fmt.Printf("* created %s\n", path)
	return nil
}
