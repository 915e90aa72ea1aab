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
	"image"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// Font is the glyph table used by the character plane. Each glyph is
// GlyphHeight bytes, one byte per row. Bit zero of a row is the leftmost
// pixel.
var Font [256 * GlyphHeight]uint8

// glyphs are taken from the basic 7x13 face and placed one pixel in from the
// left and top of the 8x16 cell. only printable ASCII is filled in; the other
// codes are blank
const (
	firstPrintable = 0x20
	lastPrintable  = 0x7e
	cellInset      = 1
)

func init() {
	buildFont(basicfont.Face7x13)
}

func buildFont(face font.Face) {
	ascent := face.Metrics().Ascent.Ceil()
	dot := fixed.P(cellInset, cellInset+ascent)

	for code := firstPrintable; code <= lastPrintable; code++ {
		dr, mask, maskp, _, ok := face.Glyph(dot, rune(code))
		if !ok {
			continue
		}
		rasterise(code, dr, mask, maskp)
	}
}

func rasterise(code int, dr image.Rectangle, mask image.Image, maskp image.Point) {
	for y := dr.Min.Y; y < dr.Max.Y; y++ {
		if y < 0 || y >= GlyphHeight {
			continue
		}
		for x := dr.Min.X; x < dr.Max.X; x++ {
			if x < 0 || x >= GlyphWidth {
				continue
			}
			_, _, _, a := mask.At(maskp.X+x-dr.Min.X, maskp.Y+y-dr.Min.Y).RGBA()
			if a >= 0x8000 {
				Font[code*GlyphHeight+y] |= 1 << x
			}
		}
	}
}

// GlyphRow returns the bit pattern for one row of the glyph.
func GlyphRow(code uint8, row int) uint8 {
	return Font[int(code)*GlyphHeight+row%GlyphHeight]
}
