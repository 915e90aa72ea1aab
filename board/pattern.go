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

import "github.com/jetsetilly/murmulator/hardware/video"

// colour bars in the order white, yellow, cyan, green, magenta, red, blue,
// black
var bars = [...]uint8{15, 11, 14, 10, 13, 9, 12, 0}

// drawPattern draws colour bars in the top two thirds of the pixel plane and
// a greyscale ramp below them.
func drawPattern(fb *video.FrameBuffer) {
	barWidth := video.NativeWidth / len(bars)
	split := video.NativeHeight * 2 / 3

	for y := range video.NativeHeight {
		for x := range video.NativeWidth {
			if y < split {
				fb.SetPixel(x, y, bars[x/barWidth])
			} else {
				// the greyscale ramp is the last 24 entries of the palette
				fb.SetPixel(x, y, uint8(232+x*24/video.NativeWidth))
			}
		}
	}
}
