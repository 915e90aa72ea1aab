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
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/jetsetilly/murmulator/hardware/video"
)

// Cell is a single character cell of the terminal display.
type Cell struct {
	Glyph uint8
	Fg    uint8
	Bg    uint8
}

// Screen is the terminal display. It has the same dimensions as the
// character plane.
type Screen [video.Rows][video.Columns]Cell

// unknown glyphs are shown as this character
const unknownGlyph = '?'

// glyph bitmaps mapped to the glyph code. a glyph with a blank bitmap is a
// space and is not in the table
var glyphs map[[video.GlyphHeight]uint8]uint8

func init() {
	glyphs = make(map[[video.GlyphHeight]uint8]uint8)
	for code := 0x21; code <= 0x7e; code++ {
		var bm [video.GlyphHeight]uint8
		var blank = true
		for row := range video.GlyphHeight {
			bm[row] = video.GlyphRow(uint8(code), row)
			blank = blank && bm[row] == 0
		}
		if blank {
			continue
		}
		if _, ok := glyphs[bm]; !ok {
			glyphs[bm] = uint8(code)
		}
	}
}

// Decode a frame of samples into the screen. A frame at text mode resolution
// is decoded into glyphs. Any other resolution is sampled, one sample per
// cell, and shown as blocks of background colour.
func Decode(frame []uint8, width int, height int, scr *Screen) {
	if width == video.TextWidth && height == video.TextHeight {
		decodeText(frame, scr)
		return
	}

	for y := range video.Rows {
		for x := range video.Columns {
			sx := (x*width + width/2) / video.Columns
			sy := (y*height + height/2) / video.Rows
			c := frame[sy*width+sx]
			scr[y][x] = Cell{Glyph: ' ', Fg: c, Bg: c}
		}
	}
}

func decodeText(frame []uint8, scr *Screen) {
	for y := range video.Rows {
		for x := range video.Columns {
			scr[y][x] = decodeCell(frame, x, y)
		}
	}
}

// decodeCell finds the glyph in a cell. the cell contains at most two
// values and either could be the foreground so both are tried
func decodeCell(frame []uint8, x int, y int) Cell {
	base := y*video.GlyphHeight*video.TextWidth + x*video.GlyphWidth

	a := frame[base]
	b := a
	for row := range video.GlyphHeight {
		for col := range video.GlyphWidth {
			if s := frame[base+row*video.TextWidth+col]; s != a {
				b = s
			}
		}
	}

	if a == b {
		return Cell{Glyph: ' ', Fg: a, Bg: a}
	}

	for _, fg := range [2]uint8{a, b} {
		var bm [video.GlyphHeight]uint8
		for row := range video.GlyphHeight {
			for col := range video.GlyphWidth {
				if frame[base+row*video.TextWidth+col] == fg {
					bm[row] |= 1 << col
				}
			}
		}
		if g, ok := glyphs[bm]; ok {
			bg := a
			if fg == a {
				bg = b
			}
			return Cell{Glyph: g, Fg: fg, Bg: bg}
		}
	}

	return Cell{Glyph: unknownGlyph, Fg: b, Bg: a}
}

// String renders the screen with ANSI colours. Runs of cells with the same
// colours are rendered together.
func (scr *Screen) String() string {
	var s strings.Builder
	var run strings.Builder

	for y := range video.Rows {
		fg := scr[y][0].Fg
		bg := scr[y][0].Bg
		for x := range video.Columns {
			c := scr[y][x]
			if c.Fg != fg || c.Bg != bg {
				s.WriteString(style(fg, bg).Render(run.String()))
				run.Reset()
				fg = c.Fg
				bg = c.Bg
			}
			if c.Glyph < 0x20 || c.Glyph > 0x7e {
				run.WriteByte(' ')
			} else {
				run.WriteByte(c.Glyph)
			}
		}
		s.WriteString(style(fg, bg).Render(run.String()))
		run.Reset()
		if y < video.Rows-1 {
			s.WriteString("\n")
		}
	}

	return s.String()
}

// Text returns the glyphs of the screen without colours. Trailing spaces are
// removed from each row.
func (scr *Screen) Text() []string {
	rows := make([]string, video.Rows)
	for y := range video.Rows {
		b := make([]byte, video.Columns)
		for x := range video.Columns {
			b[x] = scr[y][x].Glyph
		}
		rows[y] = strings.TrimRight(string(b), " ")
	}
	return rows
}

func style(fg uint8, bg uint8) lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(lipgloss.ANSIColor(fg)).
		Background(lipgloss.ANSIColor(bg))
}
