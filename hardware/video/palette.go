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

import "image/color"

// Palette maps a sample value to a colour. The first sixteen entries are the
// colours available to the character plane. The layout is the same as the
// 256 colour xterm palette so that terminal output can use the sample value
// directly.
var Palette [256]color.RGBA

var baseColours = [16]color.RGBA{
	{0x00, 0x00, 0x00, 0xff},
	{0xaa, 0x00, 0x00, 0xff},
	{0x00, 0xaa, 0x00, 0xff},
	{0xaa, 0x55, 0x00, 0xff},
	{0x00, 0x00, 0xaa, 0xff},
	{0xaa, 0x00, 0xaa, 0xff},
	{0x00, 0xaa, 0xaa, 0xff},
	{0xaa, 0xaa, 0xaa, 0xff},
	{0x55, 0x55, 0x55, 0xff},
	{0xff, 0x55, 0x55, 0xff},
	{0x55, 0xff, 0x55, 0xff},
	{0xff, 0xff, 0x55, 0xff},
	{0x55, 0x55, 0xff, 0xff},
	{0xff, 0x55, 0xff, 0xff},
	{0x55, 0xff, 0xff, 0xff},
	{0xff, 0xff, 0xff, 0xff},
}

func init() {
	copy(Palette[:], baseColours[:])

	// 6x6x6 colour cube
	levels := [6]uint8{0x00, 0x5f, 0x87, 0xaf, 0xd7, 0xff}
	i := 16
	for r := range 6 {
		for g := range 6 {
			for b := range 6 {
				Palette[i] = color.RGBA{levels[r], levels[g], levels[b], 0xff}
				i++
			}
		}
	}

	// greyscale ramp
	for n := range 24 {
		v := uint8(8 + n*10)
		Palette[i] = color.RGBA{v, v, v, 0xff}
		i++
	}
}

// CubeIndex returns the palette index of the colour cube entry nearest to the
// red, green and blue components. Each component is in the range 0 to 5.
func CubeIndex(r, g, b int) uint8 {
	return uint8(16 + r*36 + g*6 + b)
}
