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

package sdlboard

import (
	"fmt"
	"io"
	"sync"

	"github.com/jetsetilly/murmulator/hardware/input"
	"github.com/jetsetilly/murmulator/hardware/scanout"
	"github.com/jetsetilly/murmulator/logger"
	"github.com/jetsetilly/murmulator/notifications"
	"github.com/jetsetilly/murmulator/version"

	"github.com/veandco/go-sdl2/sdl"
)

const pixelDepth = 4

// SdlBoard is the SDL display and input for the board.
type SdlBoard struct {
	gen *scanout.FrameGenerator
	inp *input.Unified

	window   *sdl.Window
	renderer *sdl.Renderer
	texture  *sdl.Texture

	// size of the texture. zero until the generator has been initialised
	width  int32
	height int32

	// window is this many times the size of the text mode signal
	scale int32

	// pixels copied to the texture when a new frame is available
	pixels []byte
	frames int

	joysticks []*sdl.Joystick

	// notices arrive from the board's goroutines and are acted upon in the
	// main thread
	notices chan notifications.Notice

	quit     chan struct{}
	quitOnce sync.Once
}

// NewSdlBoard is the preferred method of initialisation for the SdlBoard
// type.
//
// MUST ONLY be called from the #mainthread
func NewSdlBoard(gen *scanout.FrameGenerator, inp *input.Unified, scale int) (*SdlBoard, error) {
	scr := &SdlBoard{
		gen:     gen,
		inp:     inp,
		scale:   int32(max(scale, 1)),
		notices: make(chan notifications.Notice, 16),
		quit:    make(chan struct{}),
	}

	err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_JOYSTICK)
	if err != nil {
		return nil, fmt.Errorf("sdl: %w", err)
	}

	// window is shown once the size of the video signal is known
	scr.window, err = sdl.CreateWindow(version.ApplicationName,
		int32(sdl.WINDOWPOS_UNDEFINED), int32(sdl.WINDOWPOS_UNDEFINED),
		640*scr.scale, 480*scr.scale,
		uint32(sdl.WINDOW_HIDDEN))
	if err != nil {
		return nil, fmt.Errorf("sdl: %w", err)
	}

	scr.renderer, err = sdl.CreateRenderer(scr.window, -1,
		uint32(sdl.RENDERER_ACCELERATED|sdl.RENDERER_PRESENTVSYNC))
	if err != nil {
		return nil, fmt.Errorf("sdl: %w", err)
	}

	for i := 0; i < sdl.NumJoysticks(); i++ {
		joy := sdl.JoystickOpen(i)
		if joy != nil && joy.Attached() {
			logger.Logf(logger.Allow, "sdl", "joystick: %s", joy.Name())
			scr.joysticks = append(scr.joysticks, joy)
		}
	}
	if len(scr.joysticks) == 0 {
		logger.Log(logger.Allow, "sdl", "no joysticks found")
	}

	// MOUSEMOTION events fill up the event queue and are never used
	sdl.EventState(sdl.MOUSEMOTION, sdl.IGNORE)

	return scr, nil
}

// Quit returns a channel that is closed when the window is closed.
func (scr *SdlBoard) Quit() <-chan struct{} {
	return scr.quit
}

// Notify implements the notifications.Notify interface. Safe to call from
// any goroutine.
func (scr *SdlBoard) Notify(notice notifications.Notice) error {
	select {
	case scr.notices <- notice:
	default:
		return fmt.Errorf("sdl: dropped notice %s", notice)
	}
	return nil
}

// Destroy implements the GuiCreator interface.
//
// MUST ONLY be called from the #mainthread
func (scr *SdlBoard) Destroy(output io.Writer) {
	for _, joy := range scr.joysticks {
		joy.Close()
	}

	if scr.texture != nil {
		if err := scr.texture.Destroy(); err != nil {
			fmt.Fprintln(output, err)
		}
	}
	if err := scr.renderer.Destroy(); err != nil {
		fmt.Fprintln(output, err)
	}
	if err := scr.window.Destroy(); err != nil {
		fmt.Fprintln(output, err)
	}

	sdl.Quit()
}

// Service implements the GuiCreator interface.
//
// MUST ONLY be called from the #mainthread
func (scr *SdlBoard) Service() {
	// wait briefly for the first event so that the main thread does not spin
	// when there is nothing to do
	for ev := sdl.WaitEventTimeout(1); ev != nil; ev = sdl.PollEvent() {
		scr.event(ev)
	}

	select {
	case notice := <-scr.notices:
		scr.notice(notice)
	default:
	}

	if err := scr.render(); err != nil {
		logger.Log(logger.Allow, "sdl", err)
	}
}

func (scr *SdlBoard) notice(notice notifications.Notice) {
	switch notice {
	case notifications.NotifyLoadStarted:
		scr.window.SetTitle(fmt.Sprintf("%s (loading)", version.ApplicationName))
	case notifications.NotifyLoadEnded, notifications.NotifyLoadSkipped, notifications.NotifyReset:
		scr.window.SetTitle(version.ApplicationName)
	case notifications.NotifyScanoutHalted:
		scr.window.SetTitle(fmt.Sprintf("%s (halted)", version.ApplicationName))
	}
}

func (scr *SdlBoard) render() error {
	w, h := scr.gen.Size()
	if w == 0 || h == 0 {
		return nil
	}

	if scr.texture == nil || int32(w) != scr.width || int32(h) != scr.height {
		if err := scr.resize(int32(w), int32(h)); err != nil {
			return err
		}
	}

	n := scr.gen.RGBA(scr.pixels)
	if n == scr.frames {
		return nil
	}
	scr.frames = n

	err := scr.texture.Update(nil, scr.pixels, int(scr.width*pixelDepth))
	if err != nil {
		return fmt.Errorf("sdl: %w", err)
	}

	err = scr.renderer.Clear()
	if err != nil {
		return fmt.Errorf("sdl: %w", err)
	}
	err = scr.renderer.Copy(scr.texture, nil, nil)
	if err != nil {
		return fmt.Errorf("sdl: %w", err)
	}
	scr.renderer.Present()

	return nil
}

// resize the texture to the size of the video signal. the window size does
// not change, the renderer scales the texture to fit
func (scr *SdlBoard) resize(w int32, h int32) error {
	if scr.texture != nil {
		if err := scr.texture.Destroy(); err != nil {
			return fmt.Errorf("sdl: %w", err)
		}
	}

	var err error
	scr.texture, err = scr.renderer.CreateTexture(uint32(sdl.PIXELFORMAT_ABGR8888),
		int(sdl.TEXTUREACCESS_STREAMING), w, h)
	if err != nil {
		return fmt.Errorf("sdl: %w", err)
	}

	err = scr.renderer.SetLogicalSize(w, h)
	if err != nil {
		return fmt.Errorf("sdl: %w", err)
	}

	scr.width = w
	scr.height = h
	scr.pixels = make([]byte, w*h*pixelDepth)
	scr.frames = 0
	scr.window.Show()

	logger.Logf(logger.Allow, "sdl", "display resized to %dx%d", w, h)

	return nil
}
