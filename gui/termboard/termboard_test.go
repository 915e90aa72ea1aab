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
	"testing"

	"github.com/jetsetilly/murmulator/hardware/input"
	"github.com/jetsetilly/murmulator/hardware/video"
	"github.com/jetsetilly/murmulator/test"
)

// render the frame buffer in the mode as the scan-out core would
func frame(fb *video.FrameBuffer, mode video.Mode) ([]uint8, int, int) {
	w, h := mode.Resolution()
	f := make([]uint8, w*h)
	for y := range h {
		fb.FillLine(mode, y, f[y*w:(y+1)*w])
	}
	return f, w, h
}

func TestParseKeys(t *testing.T) {
	keys, quit := parseKeys([]byte("\x1b[A\x1b[Bz\r\x7fx\x1bOC\x1b[D"))
	test.ExpectEquality(t, quit, false)
	test.DemandEquality(t, len(keys), 8)
	for i, k := range []input.Usage{
		input.UsageUp, input.UsageDown, input.UsageZ, input.UsageEnter,
		input.UsageBackspace, input.UsageX, input.UsageRight, input.UsageLeft,
	} {
		test.ExpectEquality(t, keys[i], k, i)
	}

	// unmapped bytes are ignored
	keys, quit = parseKeys([]byte("abc\x1b"))
	test.ExpectEquality(t, quit, false)
	test.ExpectEquality(t, len(keys), 0)

	// keys before the quit key are returned
	keys, quit = parseKeys([]byte("zqx"))
	test.ExpectEquality(t, quit, true)
	test.ExpectEquality(t, len(keys), 1)
}

func TestDecodeText(t *testing.T) {
	fb := video.NewFrameBuffer()
	fb.DrawText("HELLO, WORLD", 2, 3, 3, 11)
	fb.DrawText("page 1", 0, 29, 0xff, 0x00)
	fb.Publish()

	var scr Screen
	f, w, h := frame(fb, video.Text)
	Decode(f, w, h, &scr)

	text := scr.Text()
	test.ExpectEquality(t, text[3], "  HELLO, WORLD")
	test.ExpectEquality(t, text[29], "page 1")
	test.ExpectEquality(t, text[0], "")

	c := scr[3][2]
	test.ExpectEquality(t, c.Glyph, uint8('H'))
	test.ExpectEquality(t, c.Fg, uint8(3))
	test.ExpectEquality(t, c.Bg, uint8(11))

	// the space between words takes the background colour
	c = scr[3][8]
	test.ExpectEquality(t, c.Glyph, uint8(' '))
	test.ExpectEquality(t, c.Bg, uint8(11))

	test.ExpectSuccess(t, strings.Contains(scr.String(), "HELLO, WORLD"))
}

func TestDecodeNative(t *testing.T) {
	fb := video.NewFrameBuffer()
	for y := range video.NativeHeight {
		for x := range video.NativeWidth / 2 {
			fb.SetPixel(x, y, 196)
		}
	}
	fb.Publish()

	var scr Screen
	f, w, h := frame(fb, video.Native)
	Decode(f, w, h, &scr)

	test.ExpectEquality(t, scr[0][0].Bg, uint8(196))
	test.ExpectEquality(t, scr[15][39].Bg, uint8(196))
	test.ExpectEquality(t, scr[15][40].Bg, uint8(0))
	test.ExpectEquality(t, scr[29][79].Glyph, uint8(' '))
}
