// This file is part of Murmulator.
//
// Murmulator is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Murmulator is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Murmulator.  If not, see <https://www.gnu.org/licenses/>.

package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"sync/atomic"
	"time"

	"github.com/jetsetilly/murmulator/board"
	"github.com/jetsetilly/murmulator/environment"
	"github.com/jetsetilly/murmulator/gui/ebitenboard"
	"github.com/jetsetilly/murmulator/gui/sdlboard"
	"github.com/jetsetilly/murmulator/gui/termboard"
	"github.com/jetsetilly/murmulator/hardware/flash"
	"github.com/jetsetilly/murmulator/hardware/scanout"
	"github.com/jetsetilly/murmulator/hardware/video"
	"github.com/jetsetilly/murmulator/limiter"
	"github.com/jetsetilly/murmulator/logger"
	"github.com/jetsetilly/murmulator/modalflag"
	"github.com/jetsetilly/murmulator/notifications"
	"github.com/jetsetilly/murmulator/prefs"
	"github.com/jetsetilly/murmulator/resources"
	"github.com/jetsetilly/murmulator/statsview"
	"github.com/jetsetilly/murmulator/storage"
	"github.com/jetsetilly/murmulator/version"

	"github.com/bradleyjkemp/memviz"
)

// the name of the flash image in the resources directory
const flashFile = "flash.bin"

// the host display refreshes at this rate. it is independent of the rate at
// which the board polls its input
const frameRate = 60

type stateReq = string

const (
	// main thread should end as soon as possible. takes an optional int
	// argument, the status code
	reqQuit stateReq = "QUIT"
)

type stateRequest struct {
	req  stateReq
	args any
}

// GuiCreator facilitates the creation, servicing and destruction of GUIs
// that need to be run in the main thread.
type GuiCreator interface {
	// cleanup resources used by the gui
	Destroy(io.Writer)

	// Service() MUST ONLY be called from the main thread. It should service
	// all gui events that are not safe to do in other goroutines
	Service()
}

// interrupter is implemented by GUIs whose Service() does not return until
// the GUI ends. Interrupt() is called from outside the main thread and should
// cause Service() to return.
type interrupter interface {
	Interrupt()
}

// boardGui is a GuiCreator that is also a host for the board
type boardGui interface {
	GuiCreator
	notifications.Notify
	Quit() <-chan struct{}
}

// communication between the main() function and the launch() function. SDL
// and ebiten both require window handling to occur on the main thread.
type mainSync struct {
	state   chan stateRequest
	creator chan func() (GuiCreator, error)

	// the result of creator is returned on one of these two channels
	creation      chan GuiCreator
	creationError chan error
}

// #mainthread
func main() {
	sync := &mainSync{
		state:         make(chan stateRequest),
		creator:       make(chan func() (GuiCreator, error)),
		creation:      make(chan GuiCreator),
		creationError: make(chan error),
	}

	exitVal := 0

	intChan := make(chan os.Signal, 1)
	signal.Notify(intChan, os.Interrupt)

	var current atomic.Pointer[GuiCreator]
	interrupted := forwardInterrupt(intChan, &current)

	go launch(sync, os.Args[1:])

	var gui GuiCreator
	done := false
	for !done {
		select {
		case <-interrupted:
			fmt.Println("\r")
			done = true

		case creator := <-sync.creator:
			if gui != nil {
				gui.Destroy(os.Stderr)
			}

			var err error
			gui, err = creator()
			if err != nil {
				// an interface holding a nil pointer is not nil
				gui = nil
				current.Store(nil)
				sync.creationError <- err
			} else {
				g := gui
				current.Store(&g)
				sync.creation <- gui
			}

		case state := <-sync.state:
			switch state.req {
			case reqQuit:
				done = true
				if v, ok := state.args.(int); ok {
					exitVal = v
				}
			}

		default:
			if gui != nil {
				gui.Service()
			}
		}
	}

	if gui != nil {
		gui.Destroy(os.Stderr)
	}

	fmt.Print("\r")
	os.Exit(exitVal)
}

// forwardInterrupt waits for a signal and then interrupts the current GUI, if
// it can be interrupted. The returned channel is closed once the GUI has been
// told.
func forwardInterrupt(sig <-chan os.Signal, current *atomic.Pointer[GuiCreator]) <-chan struct{} {
	interrupted := make(chan struct{})
	go func() {
		<-sig
		if g := current.Load(); g != nil {
			if i, ok := (*g).(interrupter); ok {
				i.Interrupt()
			}
		}
		close(interrupted)
	}()
	return interrupted
}

// launch is called from main() as a goroutine. uses mainSync instance to
// indicate gui creation and to quit.
func launch(sync *mainSync, args []string) {
	md := &modalflag.Modes{Output: os.Stdout}
	md.NewArgs(args)

	prefsString := md.AddString("prefs", "", "preference values: key::value; key::value")
	stats := md.AddBool("statsview", false, fmt.Sprintf("run stats server (%s)", statsview.Address))
	echo := md.AddBool("log", false, "echo log to stderr")
	md.AddSubModes("RUN", "EBITEN", "TERM", "FLASHINFO")

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

	if *prefsString != "" {
		prefs.PushCommandLineStack(*prefsString)
	}

	if *stats {
		statsview.Launch(os.Stdout)
	}

	if *echo {
		logger.SetEcho(logger.NewColorizer(os.Stderr), false)
	}

	switch md.Mode() {
	case "RUN":
		err = runGui(md, sync, func(gen *scanout.FrameGenerator, b *board.Board, scale int) (boardGui, error) {
			return sdlboard.NewSdlBoard(gen, b.Input, scale)
		})

	case "EBITEN":
		err = runGui(md, sync, func(gen *scanout.FrameGenerator, b *board.Board, _ int) (boardGui, error) {
			return ebitenboard.NewEbitenBoard(gen, b.Input), nil
		})

	case "TERM":
		err = runTerm(md)

	case "FLASHINFO":
		err = flashInfo(md, os.Stdout)
	}

	if err != nil {
		fmt.Printf("* error in %s mode: %s\n", md, err)
		sync.state <- stateRequest{req: reqQuit, args: 20}
		return
	}

	sync.state <- stateRequest{req: reqQuit}
}

// setup is common to all modes that run the board. the mode flag and the
// cartridge argument must have been added to md before calling
func setup(md *modalflag.Modes, mode string, env *environment.Environment,
	gen scanout.Generator) (*board.Board, board.Config, error) {

	p, err := board.NewPreferences("")
	if err != nil {
		return nil, board.Config{}, err
	}

	if mode != "" {
		if err := p.Mode.Set(mode); err != nil {
			return nil, board.Config{}, err
		}
	}

	cfg, err := p.Config()
	if err != nil {
		return nil, board.Config{}, err
	}

	switch len(md.RemainingArgs()) {
	case 0:
	case 1:
		if cfg.Mode != video.Native {
			return nil, board.Config{}, fmt.Errorf("cartridge can only be named in native mode")
		}
		cfg.Cartridge = md.GetArg(0)
	default:
		return nil, board.Config{}, fmt.Errorf("too many arguments for %s mode", md)
	}

	fn, err := resources.JoinPath(flashFile)
	if err != nil {
		return nil, board.Config{}, err
	}

	card := storage.NewCard(env, os.DirFS(p.SDRoot.String()))
	b := board.NewBoard(env, gen, card, flash.NewImage(env, fn))

	logger.Logf(env, "board", "%s: %s", version.Title(), p)

	return b, cfg, nil
}

func runGui(md *modalflag.Modes, sync *mainSync,
	create func(*scanout.FrameGenerator, *board.Board, int) (boardGui, error)) error {

	md.NewMode()
	mode := md.AddString("mode", "", "video mode: text, native")
	scale := md.AddInt("scale", 1, "window scale")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	frames := limiter.NewPulse(time.Second / frameRate)
	defer frames.Stop()

	env := environment.NewEnvironment(environment.MainBoard, nil)
	gen := scanout.NewFrameGenerator(frames)

	b, cfg, err := setup(md, *mode, env, gen)
	if err != nil {
		return err
	}

	sync.creator <- func() (GuiCreator, error) {
		return create(gen, b, *scale)
	}

	var host boardGui
	select {
	case g := <-sync.creation:
		host = g.(boardGui)
	case err := <-sync.creationError:
		return err
	}

	env.Notify = host

	return runBoard(b, cfg, host.Quit())
}

func runTerm(md *modalflag.Modes) error {
	md.NewMode()
	mode := md.AddString("mode", "", "video mode: text, native")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	frames := limiter.NewPulse(time.Second / frameRate)
	defer frames.Stop()

	env := environment.NewEnvironment(environment.MainBoard, nil)
	gen := scanout.NewFrameGenerator(frames)

	b, cfg, err := setup(md, *mode, env, gen)
	if err != nil {
		return err
	}

	tb, err := termboard.NewTermBoard(gen, b.Input, os.Stdout)
	if err != nil {
		return err
	}
	defer tb.Close()

	env.Notify = tb

	display := limiter.NewPulse(100 * time.Millisecond)
	quit := make(chan struct{})
	go func() {
		defer close(quit)
		if err := tb.Run(display); err != nil {
			logger.Log(logger.Allow, "term", err)
		}
	}()

	err = runBoard(b, cfg, quit)
	display.Stop()
	<-quit

	return err
}

// runBoard runs the board until quit is closed or the board stops
func runBoard(b *board.Board, cfg board.Config, quit <-chan struct{}) error {
	tck := limiter.NewPulse(cfg.Tick)

	done := make(chan error, 1)
	go func() {
		done <- b.Run(context.Background(), tck, cfg)
	}()

	select {
	case <-quit:
		tck.Stop()
		return <-done
	case err := <-done:
		tck.Stop()
		return err
	}
}

// flashInfo describes the cartridge region of a flash image
func flashInfo(md *modalflag.Modes, output io.Writer) error {
	md.NewMode()
	viz := md.AddString("memviz", "", "write graphviz rendering of the region description to file")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	var fn string
	switch len(md.RemainingArgs()) {
	case 0:
		fn, err = resources.JoinPath(flashFile)
		if err != nil {
			return err
		}
	case 1:
		fn = md.GetArg(0)
	default:
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	env := environment.NewEnvironment(environment.MainBoard, nil)
	info, err := flash.Inspect(flash.NewImage(env, fn))
	if err != nil {
		return err
	}
	fmt.Fprintln(output, info)

	if *viz != "" {
		f, err := os.Create(*viz)
		if err != nil {
			return err
		}
		defer f.Close()
		memviz.Map(f, &info)
	}

	return nil
}
