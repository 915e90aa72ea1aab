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

package browser

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/jetsetilly/murmulator/environment"
	"github.com/jetsetilly/murmulator/hardware/input"
	"github.com/jetsetilly/murmulator/hardware/video"
	"github.com/jetsetilly/murmulator/limiter"
	"github.com/jetsetilly/murmulator/logger"
	"github.com/jetsetilly/murmulator/storage"
)

// PageSize is the maximum number of entries on a page.
const PageSize = 14

// Layout and colours of the page.
const (
	footerRow   = PageSize
	footerFg    = 3
	footerBg    = 11
	entryFg     = 0xff
	entryBg     = 0x00
	highlightBg = 0xf8
)

// PathSeparator is used to join the parts of the path returned on selection.
const PathSeparator = "\\"

// Page is an ordered list of up to PageSize entries and the index of the page
// it was built for. A Page is never modified after it is built.
type Page struct {
	Index   int
	Entries []storage.Entry
}

// Len returns the number of entries on the page.
func (p Page) Len() int {
	return len(p.Entries)
}

// Browser is the file browser.
type Browser struct {
	env  *environment.Environment
	card *storage.Card
	fb   *video.FrameBuffer

	// the directory the browser was created for and the directories that
	// have been entered since
	root string
	sub  []string

	page   Page
	cursor int
}

// NewBrowser is the preferred method of initialisation for the Browser type.
// The directory is relative to the root of the card.
func NewBrowser(env *environment.Environment, card *storage.Card, fb *video.FrameBuffer, dir string) *Browser {
	return &Browser{
		env:  env,
		card: card,
		fb:   fb,
		root: dir,
	}
}

// Dir returns the directory being browsed, using PathSeparator.
func (b *Browser) Dir() string {
	return strings.Join(append([]string{b.root}, b.sub...), PathSeparator)
}

// Page returns the current page.
func (b *Browser) Page() Page {
	return b.page
}

// Cursor returns the index of the highlighted entry on the current page.
func (b *Browser) Cursor() int {
	return b.cursor
}

// LoadPage enumerates the directory from the beginning, skips the entries of
// the preceding pages and returns up to PageSize entries. The card is mounted
// if necessary.
func (b *Browser) LoadPage(idx int) (Page, error) {
	pg := Page{Index: idx}

	if !b.card.Mounted() {
		if err := b.card.Mount(); err != nil {
			return pg, fmt.Errorf("browser: %w", err)
		}
	}

	dir, e, err := b.card.FindFirst(b.Dir(), "*")
	if err != nil && !errors.Is(err, io.EOF) {
		return pg, fmt.Errorf("browser: %w", err)
	}
	defer dir.Close()

	skip := idx * PageSize
	for ; err == nil; e, err = dir.Next() {
		if skip > 0 {
			skip--
			continue
		}
		pg.Entries = append(pg.Entries, e)
		if len(pg.Entries) == PageSize {
			break
		}
	}
	if err != nil && !errors.Is(err, io.EOF) {
		return pg, fmt.Errorf("browser: %w", err)
	}

	return pg, nil
}

// Open the browser at the first page of its directory and draw the page.
func (b *Browser) Open() error {
	return b.show(0)
}

// show loads and draws the page. the cursor is reset
func (b *Browser) show(idx int) error {
	pg, err := b.LoadPage(idx)
	if err != nil {
		return err
	}
	b.page = pg
	b.cursor = 0
	b.drawPage()
	return nil
}

func (b *Browser) drawPage() {
	b.fb.ClearText()
	b.fb.DrawText(fmt.Sprintf("=================== PAGE #%d -> NEXT PAGE / <- PREV. PAGE ====================", b.page.Index),
		0, footerRow, footerFg, footerBg)
	for i := range b.page.Entries {
		b.drawEntry(i, i == b.cursor)
	}
	b.fb.Publish()
}

func (b *Browser) drawEntry(i int, highlight bool) {
	if i < 0 || i >= b.page.Len() {
		return
	}
	bg := uint8(entryBg)
	if highlight {
		bg = highlightBg
	}
	b.fb.DrawText(b.page.Entries[i].Name, 0, i, entryFg, bg)
}

// moveCursor redraws the previous and the new highlighted entries only
func (b *Browser) moveCursor(to int) {
	if to == b.cursor {
		return
	}
	b.drawEntry(b.cursor, false)
	b.cursor = to
	b.drawEntry(b.cursor, true)
	b.fb.Publish()
}

// Navigate acts on the buttons. It returns the path of the selected file and
// true when a file has been selected.
//
// The returned path is the browsed directory and the name of the file joined
// with PathSeparator.
func (b *Browser) Navigate(c input.ControlState) (string, bool, error) {
	n := b.page.Len()

	switch {
	case c.Any(input.A | input.B | input.Start):
		if n == 0 {
			return "", false, nil
		}
		e := b.page.Entries[b.cursor]
		if e.IsDir {
			b.sub = append(b.sub, e.Name)
			if err := b.show(0); err != nil {
				b.sub = b.sub[:len(b.sub)-1]
				return "", false, err
			}
			return "", false, nil
		}
		return b.Dir() + PathSeparator + e.Name, true, nil

	case c.Pressed(input.Select):
		if len(b.sub) == 0 {
			return "", false, nil
		}
		b.sub = b.sub[:len(b.sub)-1]
		return "", false, b.show(0)

	case c.Pressed(input.Down):
		if n > 0 {
			b.moveCursor((b.cursor + 1) % n)
		}

	case c.Pressed(input.Up):
		if n > 0 {
			b.moveCursor((b.cursor - 1 + n) % n)
		}

	case c.Pressed(input.Right):
		prev := b.page.Index
		if err := b.show(prev + 1); err != nil {
			return "", false, err
		}
		if b.page.Len() == 0 {
			return "", false, b.show(prev)
		}

	case c.Pressed(input.Left):
		if b.page.Index > 0 {
			return "", false, b.show(b.page.Index - 1)
		}
	}

	return "", false, nil
}

// Run the browser until a file is selected or the ticker stops. The input is
// polled on every tick. Errors from the card are logged and browsing
// continues.
//
// Returns io.EOF if the ticker stops before a selection is made.
func (b *Browser) Run(tck limiter.Ticker, inp *input.Unified, rpt *input.Repeater) (string, error) {
	if err := b.Open(); err != nil {
		logger.Log(b.env, "browser", err)
	}

	rpt.Reset()
	for tck.Wait() {
		ev := rpt.Update(inp.Poll())
		if ev == input.NoButtons {
			continue
		}
		p, ok, err := b.Navigate(ev)
		if err != nil {
			logger.Log(b.env, "browser", err)
			continue
		}
		if ok {
			logger.Logf(b.env, "browser", "selected %s", p)
			return p, nil
		}
	}

	return "", io.EOF
}
