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

package browser_test

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/jetsetilly/murmulator/browser"
	"github.com/jetsetilly/murmulator/hardware/input"
	"github.com/jetsetilly/murmulator/hardware/video"
	"github.com/jetsetilly/murmulator/limiter"
	"github.com/jetsetilly/murmulator/storage"
	"github.com/jetsetilly/murmulator/test"
)

// card with n files in the SEGA directory named file00.md, file01.md, etc.
func newCard(n int) *storage.Card {
	root := fstest.MapFS{
		"SEGA/games/inner.md": {Data: []byte("inner")},
	}
	for i := range n {
		root[fmt.Sprintf("SEGA/file%02d.md", i)] = &fstest.MapFile{Data: []byte{byte(i)}}
	}
	return storage.NewCard(nil, root)
}

func names(p browser.Page) string {
	s := make([]string, 0, p.Len())
	for _, e := range p.Entries {
		s = append(s, e.Name)
	}
	return strings.Join(s, " ")
}

// the text of a row in the published character plane
func row(fb *video.FrameBuffer, y int) string {
	p := fb.Snapshot()
	return strings.TrimRight(string(p.Glyphs[y][:]), "\x00")
}

func TestLoadPage(t *testing.T) {
	// directory with fewer than PageSize entries
	card := newCard(5)
	b := browser.NewBrowser(nil, card, video.NewFrameBuffer(), "SEGA")

	pg, err := b.LoadPage(0)
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, card.Mounted())
	test.ExpectEquality(t, pg.Index, 0)

	// the games directory and five files
	test.ExpectEquality(t, pg.Len(), 6)
	test.ExpectEquality(t, names(pg), "games file00.md file01.md file02.md file03.md file04.md")

	pg, err = b.LoadPage(1)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, pg.Index, 1)
	test.ExpectEquality(t, pg.Len(), 0)
}

func TestLoadPageSkip(t *testing.T) {
	b := browser.NewBrowser(nil, newCard(30), video.NewFrameBuffer(), "SEGA")

	pg, err := b.LoadPage(1)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, pg.Len(), browser.PageSize)
	test.ExpectEquality(t, pg.Entries[0].Name, "file13.md")

	pg, err = b.LoadPage(2)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, pg.Len(), 3)
	test.ExpectEquality(t, names(pg), "file27.md file28.md file29.md")
}

func TestLoadPageMissingDirectory(t *testing.T) {
	b := browser.NewBrowser(nil, newCard(1), video.NewFrameBuffer(), "NES")
	_, err := b.LoadPage(0)
	test.ExpectSuccess(t, errors.Is(err, storage.ErrNoSuchEntry))
}

func TestCursorRoundTrip(t *testing.T) {
	b := browser.NewBrowser(nil, newCard(10), video.NewFrameBuffer(), "SEGA")
	test.DemandSuccess(t, b.Open())
	n := b.Page().Len()

	for c := range n {
		for b.Cursor() != c {
			_, _, err := b.Navigate(input.Down)
			test.DemandSuccess(t, err)
		}
		_, _, err := b.Navigate(input.Down)
		test.ExpectSuccess(t, err)
		_, _, err = b.Navigate(input.Up)
		test.ExpectSuccess(t, err)
		test.ExpectEquality(t, b.Cursor(), c)

		_, _, err = b.Navigate(input.Up)
		test.ExpectSuccess(t, err)
		_, _, err = b.Navigate(input.Down)
		test.ExpectSuccess(t, err)
		test.ExpectEquality(t, b.Cursor(), c)
	}
}

func TestCursorWrap(t *testing.T) {
	b := browser.NewBrowser(nil, newCard(3), video.NewFrameBuffer(), "SEGA")
	test.DemandSuccess(t, b.Open())

	_, _, _ = b.Navigate(input.Up)
	test.ExpectEquality(t, b.Cursor(), 3)
	_, _, _ = b.Navigate(input.Down)
	test.ExpectEquality(t, b.Cursor(), 0)
}

func TestPaging(t *testing.T) {
	b := browser.NewBrowser(nil, newCard(20), video.NewFrameBuffer(), "SEGA")
	test.DemandSuccess(t, b.Open())
	first := names(b.Page())

	// page one has the remaining seven entries
	_, _, _ = b.Navigate(input.Down)
	_, _, err := b.Navigate(input.Right)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, b.Page().Index, 1)
	test.ExpectEquality(t, b.Page().Len(), 7)
	test.ExpectEquality(t, b.Cursor(), 0)

	// page two is empty so the browser stays on page one
	_, _, err = b.Navigate(input.Right)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, b.Page().Index, 1)
	test.ExpectEquality(t, b.Page().Len(), 7)

	_, _, err = b.Navigate(input.Left)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, b.Page().Index, 0)
	test.ExpectEquality(t, names(b.Page()), first)

	// left on the first page does nothing
	_, _, _ = b.Navigate(input.Down)
	_, _, err = b.Navigate(input.Left)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, b.Page().Index, 0)
	test.ExpectEquality(t, b.Cursor(), 1)
}

func TestRightRevert(t *testing.T) {
	// a single page directory
	b := browser.NewBrowser(nil, newCard(4), video.NewFrameBuffer(), "SEGA")
	test.DemandSuccess(t, b.Open())
	first := names(b.Page())

	_, _, _ = b.Navigate(input.Down)
	_, _, err := b.Navigate(input.Right)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, b.Page().Index, 0)
	test.ExpectEquality(t, names(b.Page()), first)
	test.ExpectEquality(t, b.Cursor(), 0)

	_, _, err = b.Navigate(input.Left)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, names(b.Page()), first)
}

func TestEmptyDirectory(t *testing.T) {
	card := storage.NewCard(nil, fstest.MapFS{"SEGA/games/x.md": {}, "SEGA/empty.zip": {Data: emptyZip}})
	b := browser.NewBrowser(nil, card, video.NewFrameBuffer(), "SEGA/games")
	test.DemandSuccess(t, b.Open())

	test.ExpectEquality(t, b.Page().Len(), 1)
	b = browser.NewBrowser(nil, card, video.NewFrameBuffer(), "SEGA/empty.zip")
	test.DemandSuccess(t, b.Open())
	test.ExpectEquality(t, b.Page().Len(), 0)

	// no movement and no selection on an empty page
	for _, c := range []input.ControlState{input.Up, input.Down, input.Right, input.Left, input.A} {
		_, ok, err := b.Navigate(c)
		test.ExpectSuccess(t, err)
		test.ExpectFailure(t, ok)
		test.ExpectEquality(t, b.Cursor(), 0)
	}
}

// the smallest valid zip file: an end of central directory record
var emptyZip = []byte{0x50, 0x4b, 0x05, 0x06, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0}

func TestSelect(t *testing.T) {
	b := browser.NewBrowser(nil, newCard(3), video.NewFrameBuffer(), "SEGA")
	test.DemandSuccess(t, b.Open())

	_, _, _ = b.Navigate(input.Down)
	_, _, _ = b.Navigate(input.Down)
	p, ok, err := b.Navigate(input.Start)
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, p, "SEGA\\file01.md")

	for _, c := range []input.ControlState{input.A, input.B} {
		p, ok, _ = b.Navigate(c)
		test.ExpectSuccess(t, ok)
		test.ExpectEquality(t, p, "SEGA\\file01.md")
	}
}

func TestSubDirectory(t *testing.T) {
	b := browser.NewBrowser(nil, newCard(3), video.NewFrameBuffer(), "SEGA")
	test.DemandSuccess(t, b.Open())

	// entering the games directory
	_, ok, err := b.Navigate(input.A)
	test.ExpectSuccess(t, err)
	test.ExpectFailure(t, ok)
	test.ExpectEquality(t, b.Dir(), "SEGA\\games")
	test.ExpectEquality(t, names(b.Page()), "inner.md")

	p, ok, _ := b.Navigate(input.A)
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, p, "SEGA\\games\\inner.md")

	// select returns to the parent but no further
	_, _, err = b.Navigate(input.Select)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, b.Dir(), "SEGA")
	_, _, err = b.Navigate(input.Select)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, b.Dir(), "SEGA")
}

func TestDrawing(t *testing.T) {
	fb := video.NewFrameBuffer()
	b := browser.NewBrowser(nil, newCard(3), fb, "SEGA")
	test.DemandSuccess(t, b.Open())

	test.ExpectEquality(t, row(fb, 0), "games")
	test.ExpectEquality(t, row(fb, 3), "file02.md")
	test.ExpectEquality(t, row(fb, 4), "")
	test.ExpectSuccess(t, strings.HasPrefix(row(fb, browser.PageSize), "=================== PAGE #0 -> NEXT PAGE"))

	p := fb.Snapshot()
	test.ExpectEquality(t, p.Colours[0][0], video.Colour(0xff, 0xf8))
	test.ExpectEquality(t, p.Colours[1][0], video.Colour(0xff, 0x00))
	test.ExpectEquality(t, p.Colours[browser.PageSize][0], video.Colour(3, 11))

	// moving the cursor changes the highlight
	_, _, _ = b.Navigate(input.Down)
	p = fb.Snapshot()
	test.ExpectEquality(t, p.Colours[0][0], video.Colour(0xff, 0x00))
	test.ExpectEquality(t, p.Colours[1][0], video.Colour(0xff, 0xf8))
}

func TestRun(t *testing.T) {
	b := browser.NewBrowser(nil, newCard(3), video.NewFrameBuffer(), "SEGA")
	tck := limiter.NewManual()
	inp := input.NewUnified()
	rpt := input.NewRepeater(5)

	type result struct {
		path string
		err  error
	}
	done := make(chan result)
	go func() {
		p, err := b.Run(tck, inp, rpt)
		done <- result{p, err}
	}()

	// held for more than one tick counts as a single press. input is only
	// changed once the browser has finished with the previous tick
	inp.Gamepad.Press(input.Down)
	tck.Tick()
	tck.Tick()
	tck.Sync()
	inp.Gamepad.Release(input.Down)
	tck.Tick()
	tck.Sync()

	inp.Keyboard.Press(input.UsageEnter)
	tck.Tick()

	r := <-done
	test.ExpectSuccess(t, r.err)
	test.ExpectEquality(t, r.path, "SEGA\\file00.md")

	// stopping the ticker ends the browser without a selection
	go func() {
		p, err := b.Run(tck, inp, rpt)
		done <- result{p, err}
	}()
	tck.Stop()
	r = <-done
	test.ExpectSuccess(t, errors.Is(r.err, io.EOF))
}
