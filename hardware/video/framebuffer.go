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

package video

import (
	"sync"
	"sync/atomic"
)

// Planes is one complete copy of the frame buffer. A Planes instance returned
// by Snapshot() must not be modified.
type Planes struct {
	Glyphs  [Rows][Columns]uint8
	Colours [Rows][Columns]uint8
	Pixels  [NativeSize]uint8
}

// FillLine writes the samples for the scanline into dest. It does not
// allocate and touches nothing but the planes and the font table.
//
// In Text mode the line is expanded from the character plane. Each glyph bit
// produces one sample, the foreground nibble of the cell's colour byte if the
// bit is set and the background nibble if it is not.
//
// In Native mode the row of the pixel plane is copied verbatim. Lines outside
// the pixel plane leave dest untouched.
func (p *Planes) FillLine(mode Mode, line int, dest []uint8) {
	switch mode {
	case Text:
		if line < 0 || line >= TextHeight {
			return
		}
		row := line / GlyphHeight
		glyphRow := line % GlyphHeight
		for col := 0; col < Columns; col++ {
			base := col * GlyphWidth
			if base >= len(dest) {
				return
			}
			bits := Font[int(p.Glyphs[row][col])*GlyphHeight+glyphRow]
			c := p.Colours[row][col]
			fg := c >> 4
			bg := c & 0x0f
			for b := 0; b < GlyphWidth && base+b < len(dest); b++ {
				if bits&(1<<b) != 0 {
					dest[base+b] = fg
				} else {
					dest[base+b] = bg
				}
			}
		}
	case Native:
		if line < 0 || line >= NativeHeight {
			return
		}
		copy(dest, p.Pixels[line*NativeWidth:(line+1)*NativeWidth])
	}
}

// FrameBuffer is the store shared between the control core and the scan-out
// core. All drawing functions write to the back buffer and are only
// called by the control core. Snapshot() is safe to call from any goroutine.
type FrameBuffer struct {
	// serialises drawing and publishing
	crit sync.Mutex

	back  *Planes
	front atomic.Pointer[Planes]
}

// NewFrameBuffer is the preferred method of initialisation for the
// FrameBuffer type. Both planes start cleared and the cleared state is
// already published.
func NewFrameBuffer() *FrameBuffer {
	fb := &FrameBuffer{
		back: &Planes{},
	}
	fb.front.Store(&Planes{})
	return fb
}

// Colour returns the colour byte for a foreground and background colour.
// Only the low nibble of each colour is used.
func Colour(fg, bg uint8) uint8 {
	return (fg << 4) | (bg & 0x0f)
}

// DrawText writes the text into the character plane starting at column x of
// row y. Text that would extend beyond the end of the row is clipped. Text on
// a row outside the plane is ignored.
func (fb *FrameBuffer) DrawText(text string, x, y int, fg, bg uint8) {
	fb.crit.Lock()
	defer fb.crit.Unlock()

	if y < 0 || y >= Rows || x >= Columns {
		return
	}

	c := Colour(fg, bg)
	for i := 0; i < len(text); i++ {
		col := x + i
		if col < 0 {
			continue
		}
		if col >= Columns {
			break
		}
		fb.back.Glyphs[y][col] = text[i]
		fb.back.Colours[y][col] = c
	}
}

// ClearText sets every cell of the character plane to glyph zero with colour
// zero.
func (fb *FrameBuffer) ClearText() {
	fb.crit.Lock()
	defer fb.crit.Unlock()
	fb.back.Glyphs = [Rows][Columns]uint8{}
	fb.back.Colours = [Rows][Columns]uint8{}
}

// ClearPixels sets every pixel of the pixel plane to zero.
func (fb *FrameBuffer) ClearPixels() {
	fb.crit.Lock()
	defer fb.crit.Unlock()
	clear(fb.back.Pixels[:])
}

// SetPixel sets the palette index of a pixel in the pixel plane. Coordinates
// outside the plane are ignored.
func (fb *FrameBuffer) SetPixel(x, y int, c uint8) {
	if x < 0 || x >= NativeWidth || y < 0 || y >= NativeHeight {
		return
	}
	fb.crit.Lock()
	defer fb.crit.Unlock()
	fb.back.Pixels[y*NativeWidth+x] = c
}

// Cell returns the glyph and colour byte of a cell in the back buffer.
func (fb *FrameBuffer) Cell(x, y int) (uint8, uint8) {
	fb.crit.Lock()
	defer fb.crit.Unlock()
	return fb.back.Glyphs[y][x], fb.back.Colours[y][x]
}

// NativeScratch lends the back buffer's pixel plane as a general purpose
// buffer of NativeSize bytes. The scan-out core never reads the back buffer
// so the loan does not disturb the display. Anything written to the buffer
// becomes visible if Publish() is called, so the pixel plane should be
// cleared once the loan is over.
func (fb *FrameBuffer) NativeScratch() []uint8 {
	return fb.back.Pixels[:]
}

// Publish makes the current state of the back buffer visible to the scan-out
// core.
func (fb *FrameBuffer) Publish() {
	fb.crit.Lock()
	defer fb.crit.Unlock()
	p := *fb.back
	fb.front.Store(&p)
}

// Snapshot returns the most recently published planes.
func (fb *FrameBuffer) Snapshot() *Planes {
	return fb.front.Load()
}

// FillLine is a convenience function that fills the line from the most
// recently published planes.
func (fb *FrameBuffer) FillLine(mode Mode, line int, dest []uint8) {
	fb.front.Load().FillLine(mode, line, dest)
}
