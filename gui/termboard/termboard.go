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

package termboard

import (
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/jetsetilly/murmulator/hardware/input"
	"github.com/jetsetilly/murmulator/hardware/scanout"
	"github.com/jetsetilly/murmulator/limiter"
	"github.com/jetsetilly/murmulator/logger"
	"github.com/jetsetilly/murmulator/notifications"

	"github.com/pkg/term"
)

// the terminal device used for input
const ttyDevice = "/dev/tty"

// Hold is how long a key is considered pressed after the terminal last sent
// it. It is longer than the usual delay before a terminal starts
// auto-repeating.
const Hold = 600 * time.Millisecond

// ANSI sequences
const (
	cursorHome  = "\x1b[H"
	clearScreen = "\x1b[2J"
	hideCursor  = "\x1b[?25l"
	showCursor  = "\x1b[?25h"
)

// TermBoard is the terminal display and keyboard for the board.
type TermBoard struct {
	gen *scanout.FrameGenerator
	inp *input.Unified
	out io.Writer

	tty *term.Term

	// time at which each held key is released
	crit sync.Mutex
	held map[input.Usage]time.Time

	frame  []uint8
	frames int
	screen Screen

	status   string
	statusCh chan string

	quit     chan struct{}
	quitOnce sync.Once
}

// NewTermBoard is the preferred method of initialisation for the TermBoard
// type. The controlling terminal is put into cbreak mode until Close() is
// called.
func NewTermBoard(gen *scanout.FrameGenerator, inp *input.Unified, out io.Writer) (*TermBoard, error) {
	tty, err := term.Open(ttyDevice, term.CBreakMode)
	if err != nil {
		return nil, fmt.Errorf("term: %w", err)
	}

	tb := &TermBoard{
		gen:      gen,
		inp:      inp,
		out:      out,
		tty:      tty,
		held:     make(map[input.Usage]time.Time),
		statusCh: make(chan string, 16),
		quit:     make(chan struct{}),
	}

	go tb.readKeys()

	return tb, nil
}

// Close restores the terminal.
func (tb *TermBoard) Close() error {
	io.WriteString(tb.out, showCursor)
	if err := tb.tty.Restore(); err != nil {
		return fmt.Errorf("term: %w", err)
	}
	return tb.tty.Close()
}

// Quit returns a channel that is closed when the quit key is pressed.
func (tb *TermBoard) Quit() <-chan struct{} {
	return tb.quit
}

// Notify implements the notifications.Notify interface.
func (tb *TermBoard) Notify(notice notifications.Notice) error {
	select {
	case tb.statusCh <- string(notice):
	default:
	}
	return nil
}

func (tb *TermBoard) readKeys() {
	b := make([]byte, 16)
	for {
		n, err := tb.tty.Read(b)
		if err != nil {
			logger.Log(logger.Allow, "term", err)
			return
		}

		keys, quit := parseKeys(b[:n])
		if quit {
			tb.quitOnce.Do(func() {
				close(tb.quit)
			})
			return
		}

		tb.crit.Lock()
		for _, k := range keys {
			tb.inp.Keyboard.Press(k)
			tb.held[k] = time.Now().Add(Hold)
		}
		tb.crit.Unlock()
	}
}

// release keys that have not been seen for the hold period
func (tb *TermBoard) release(now time.Time) {
	tb.crit.Lock()
	defer tb.crit.Unlock()
	for k, t := range tb.held {
		if now.After(t) {
			tb.inp.Keyboard.Release(k)
			delete(tb.held, k)
		}
	}
}

// Run the terminal display, paced by the ticker. Returns when the ticker
// stops or the quit key is pressed.
func (tb *TermBoard) Run(tck limiter.Ticker) error {
	io.WriteString(tb.out, clearScreen+hideCursor)

	for tck.Wait() {
		select {
		case <-tb.quit:
			return nil
		case tb.status = <-tb.statusCh:
		default:
		}

		tb.release(time.Now())

		if err := tb.render(); err != nil {
			return err
		}
	}

	return nil
}

func (tb *TermBoard) render() error {
	w, h := tb.gen.Size()
	if w == 0 || h == 0 {
		return nil
	}
	if len(tb.frame) != w*h {
		tb.frame = make([]uint8, w*h)
		tb.frames = 0
	}

	n := tb.gen.Indices(tb.frame)
	if n == tb.frames {
		return nil
	}
	tb.frames = n

	Decode(tb.frame, w, h, &tb.screen)

	_, err := fmt.Fprintf(tb.out, "%s%s\n%-80s", cursorHome, tb.screen.String(), tb.status)
	if err != nil {
		return fmt.Errorf("term: %w", err)
	}
	return nil
}
