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
	"fmt"
	"strings"
)

// Mode selects which plane of the frame buffer is shown.
type Mode int

// List of valid Mode values.
const (
	Text Mode = iota
	Native
)

func (m Mode) String() string {
	switch m {
	case Text:
		return "text"
	case Native:
		return "native"
	}
	return fmt.Sprintf("unknown mode (%d)", int(m))
}

// Resolution returns the width and height of the video signal for the mode.
func (m Mode) Resolution() (int, int) {
	switch m {
	case Native:
		return NativeWidth, NativeHeight
	}
	return TextWidth, TextHeight
}

// ParseMode converts a mode name to a Mode value. The name is case
// insensitive.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "text":
		return Text, nil
	case "native":
		return Native, nil
	}
	return Text, fmt.Errorf("video: unrecognised mode %q", s)
}

// Dimensions of the character plane and of the text mode signal.
const (
	Columns     = 80
	Rows        = 30
	GlyphWidth  = 8
	GlyphHeight = 16
	TextWidth   = Columns * GlyphWidth
	TextHeight  = Rows * GlyphHeight
)

// Dimensions of the pixel plane.
const (
	NativeWidth  = 320
	NativeHeight = 240
	NativeSize   = NativeWidth * NativeHeight
)
