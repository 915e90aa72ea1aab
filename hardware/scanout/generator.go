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

package scanout

import (
	"github.com/jetsetilly/murmulator/hardware/video"
)

// ScanLine is a buffer owned by the Generator. It is lent to the Coordinator
// between NextLine() and Submit().
type ScanLine struct {
	// the line of the frame that the samples are for
	Row int

	Samples []uint8
}

// Generator is the video-timing generator. The Coordinator never generates
// timing or sync signals itself.
type Generator interface {
	// Initialise the generator for the mode and resolution. Called once
	// before the first call to NextLine().
	Initialise(mode video.Mode, width int, height int) error

	// NextLine blocks until the generator needs the next scanline. Returns
	// false if the generator will never produce another line.
	NextLine() (*ScanLine, bool)

	// Submit returns the filled scanline to the generator.
	Submit(line *ScanLine)
}
