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

package ebitenboard

import (
	"io"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/jetsetilly/murmulator/hardware/input"
	"github.com/jetsetilly/murmulator/hardware/scanout"
	"github.com/jetsetilly/murmulator/logger"
	"github.com/jetsetilly/murmulator/notifications"
	"github.com/jetsetilly/murmulator/version"
)

// EbitenBoard is the ebiten display and input for the board.
type EbitenBoard struct {
	gen *scanout.FrameGenerator
	inp *input.Unified

	main   *ebiten.Image
	pixels []byte
	frames int

	// width/height of the video signal. not to be confused with the window
	// dimensions
	width  int
	height int

	// written by Notify() from the board's goroutines and read by Update()
	crit  sync.Mutex
	title string

	running bool

	end      chan struct{}
	endOnce  sync.Once
	quit     chan struct{}
	quitOnce sync.Once
}

// NewEbitenBoard is the preferred method of initialisation for the
// EbitenBoard type.
func NewEbitenBoard(gen *scanout.FrameGenerator, inp *input.Unified) *EbitenBoard {
	return &EbitenBoard{
		gen:   gen,
		inp:   inp,
		title: version.ApplicationName,
		end:   make(chan struct{}),
		quit:  make(chan struct{}),
	}
}

// Quit returns a channel that is closed when the window is closed.
func (eb *EbitenBoard) Quit() <-chan struct{} {
	return eb.quit
}

// Notify implements the notifications.Notify interface.
func (eb *EbitenBoard) Notify(notice notifications.Notice) error {
	eb.crit.Lock()
	defer eb.crit.Unlock()
	switch notice {
	case notifications.NotifyLoadStarted:
		eb.title = version.ApplicationName + " (loading)"
	case notifications.NotifyScanoutHalted:
		eb.title = version.ApplicationName + " (halted)"
	default:
		eb.title = version.ApplicationName
	}
	return nil
}

// Service implements the GuiCreator interface. ebiten takes over the main
// thread so the first call to Service() does not return until the window
// has been closed or Interrupt() or Destroy() has been called. Subsequent
// calls do nothing.
//
// MUST ONLY be called from the #mainthread
func (eb *EbitenBoard) Service() {
	if eb.running {
		return
	}
	eb.running = true

	ebiten.SetWindowTitle(version.ApplicationName)
	ebiten.SetVsyncEnabled(true)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(640, 480)

	if err := ebiten.RunGame(eb); err != nil {
		logger.Log(logger.Allow, "ebiten", err)
	}

	eb.quitOnce.Do(func() {
		close(eb.quit)
	})
}

// Interrupt ends the game loop at the next update. Safe to call from any
// goroutine, and more than once.
func (eb *EbitenBoard) Interrupt() {
	eb.endOnce.Do(func() {
		close(eb.end)
	})
}

// Destroy implements the GuiCreator interface.
func (eb *EbitenBoard) Destroy(output io.Writer) {
	eb.Interrupt()
}

// Update implements the ebiten.Game interface.
func (eb *EbitenBoard) Update() error {
	select {
	case <-eb.end:
		return ebiten.Termination
	default:
	}

	if err := eb.inputKeyboard(); err != nil {
		return err
	}
	eb.inputGamepad()

	eb.crit.Lock()
	ebiten.SetWindowTitle(eb.title)
	eb.crit.Unlock()

	w, h := eb.gen.Size()
	if w == 0 || h == 0 {
		return nil
	}
	if eb.main == nil || w != eb.width || h != eb.height {
		eb.width = w
		eb.height = h
		eb.main = ebiten.NewImage(w, h)
		eb.pixels = make([]byte, w*h*4)
		eb.frames = 0
	}

	n := eb.gen.RGBA(eb.pixels)
	if n != eb.frames {
		eb.frames = n
		eb.main.WritePixels(eb.pixels)
	}

	return nil
}

// Draw implements the ebiten.Game interface.
func (eb *EbitenBoard) Draw(screen *ebiten.Image) {
	if eb.main != nil {
		screen.DrawImage(eb.main, nil)
	}
}

// Layout implements the ebiten.Game interface.
func (eb *EbitenBoard) Layout(width, height int) (int, int) {
	if eb.main != nil {
		return eb.width, eb.height
	}
	return width, height
}
