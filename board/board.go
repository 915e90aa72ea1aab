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

package board

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/jetsetilly/murmulator/browser"
	"github.com/jetsetilly/murmulator/cartridgeloader"
	"github.com/jetsetilly/murmulator/environment"
	"github.com/jetsetilly/murmulator/hardware/flash"
	"github.com/jetsetilly/murmulator/hardware/input"
	"github.com/jetsetilly/murmulator/hardware/multicore"
	"github.com/jetsetilly/murmulator/hardware/scanout"
	"github.com/jetsetilly/murmulator/hardware/video"
	"github.com/jetsetilly/murmulator/limiter"
	"github.com/jetsetilly/murmulator/logger"
	"github.com/jetsetilly/murmulator/notifications"
	"github.com/jetsetilly/murmulator/storage"
)

// The idle banner and its position on the character plane.
const (
	Banner  = "WELCOME TO MURMULATOR :)"
	BannerX = 30
	BannerY = 8
)

// Config is the configuration of a single run of the board.
type Config struct {
	Mode video.Mode

	// directory on the card shown by the browser in text mode
	Directory string

	// cartridge loaded at startup in native mode. may be empty
	Cartridge string

	// interval between input polls. used by hosts to create the ticker
	// passed to Run()
	Tick time.Duration

	// number of polls before a held direction repeats
	RepeatDelay int

	// the flash device is not written to the host after a load
	Volatile bool
}

// persister is implemented by flash devices that keep their content
// somewhere other than memory.
type persister interface {
	Write() error
}

// Board is the collection of components that make up the board.
type Board struct {
	env *environment.Environment

	FrameBuffer *video.FrameBuffer
	Input       *input.Unified
	Coordinator *scanout.Coordinator
	Card        *storage.Card
	Flash       flash.Device
	Loader      *cartridgeloader.Loader

	Lockout    *multicore.Lockout
	Interrupts *multicore.Interrupts

	// released by the control core once the video mode has been chosen
	start *multicore.Semaphore
}

// NewBoard is the preferred method of initialisation for the Board type.
func NewBoard(env *environment.Environment, gen scanout.Generator, card *storage.Card, dev flash.Device) *Board {
	b := &Board{
		env:         env,
		FrameBuffer: video.NewFrameBuffer(),
		Input:       input.NewUnified(),
		Card:        card,
		Flash:       dev,
		Lockout:     multicore.NewLockout(),
		Interrupts:  &multicore.Interrupts{},
		start:       multicore.NewSemaphore(),
	}

	b.Coordinator = scanout.NewCoordinator(env, b.FrameBuffer, gen, b.start, b.Lockout)

	// the loader reads into the pixel plane of the frame buffer. in text
	// mode the pixel plane is not visible and in native mode it is redrawn
	// after loading
	b.Loader = cartridgeloader.NewLoader(env, card, dev, b.Lockout, b.Interrupts, b.FrameBuffer.NativeScratch())

	return b
}

// Run the board. The scan-out core is started in its own goroutine and the
// control core runs in the calling goroutine, paced by the ticker. Run
// returns when the ticker is stopped.
//
// Cancelling the context halts a scan-out core that has not yet started.
// Once started the scan-out core halts when its generator stops producing
// lines.
func (b *Board) Run(ctx context.Context, tck limiter.Ticker, cfg Config) error {
	go b.Coordinator.Run(ctx)

	b.Coordinator.SetMode(cfg.Mode)
	b.start.Release()
	logger.Logf(b.env, "board", "%s mode", cfg.Mode)

	switch cfg.Mode {
	case video.Text:
		return b.runText(tck, cfg)
	case video.Native:
		return b.runNative(tck, cfg)
	}

	return fmt.Errorf("board: %s", cfg.Mode)
}

func (b *Board) runText(tck limiter.Ticker, cfg Config) error {
	rpt := input.NewRepeater(cfg.RepeatDelay)

	for {
		b.FrameBuffer.ClearText()
		b.FrameBuffer.Publish()

		brw := browser.NewBrowser(b.env, b.Card, b.FrameBuffer, cfg.Directory)
		path, err := brw.Run(tck, b.Input, rpt)
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return fmt.Errorf("board: %w", err)
		}

		if err := b.load(path, cfg); err != nil {
			logger.Log(b.env, "board", err)
			continue
		}

		if !b.idle(tck) {
			return nil
		}

		logger.Log(b.env, "board", "reset")
		if err := b.env.Notice(notifications.NotifyReset); err != nil {
			logger.Log(b.env, "board", err)
		}
	}
}

func (b *Board) runNative(tck limiter.Ticker, cfg Config) error {
	if cfg.Cartridge != "" {
		if err := b.load(cfg.Cartridge, cfg); err != nil {
			logger.Log(b.env, "board", err)
		}
	}

	drawPattern(b.FrameBuffer)
	b.FrameBuffer.Publish()

	for tck.Wait() {
	}

	return nil
}

// load the cartridge and clear the screen
func (b *Board) load(path string, cfg Config) error {
	rep, err := b.Loader.LoadCartridge(path)

	b.FrameBuffer.ClearPixels()
	b.FrameBuffer.ClearText()
	b.FrameBuffer.Publish()

	if rep.Flashed && !cfg.Volatile {
		if p, ok := b.Flash.(persister); ok {
			if err := p.Write(); err != nil {
				logger.Log(b.env, "board", err)
			}
		}
	}

	return err
}

// idle shows the banner until Select and Start are pressed together. returns
// false if the ticker has stopped.
func (b *Board) idle(tck limiter.Ticker) bool {
	b.FrameBuffer.DrawText(Banner, BannerX, BannerY, 0xff, 0x00)
	b.FrameBuffer.Publish()

	for tck.Wait() {
		if !b.Input.Poll().Pressed(input.Select | input.Start) {
			continue
		}

		// buttons must be released before returning to the browser or the
		// browser will see them as new presses
		for tck.Wait() {
			if b.Input.Poll() == input.NoButtons {
				return true
			}
		}
		return false
	}

	return false
}
