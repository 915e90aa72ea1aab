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
	"fmt"
	"sync"

	"github.com/jetsetilly/murmulator/hardware/video"
	"github.com/jetsetilly/murmulator/limiter"
)

// FrameGenerator is a Generator that assembles scanlines into whole frames
// for a host display. The start of every frame waits on the pacing ticker.
// The generator reaches the end of its stream when the ticker is stopped.
type FrameGenerator struct {
	pace limiter.Ticker

	width  int
	height int

	// the scanline lent to the coordinator and the frame it is being copied
	// into
	line ScanLine
	work []uint8

	// the most recently completed frame. accessed by the host through
	// Indices() and RGBA()
	crit   sync.Mutex
	frame  []uint8
	frames int
}

// NewFrameGenerator is the preferred method of initialisation for the
// FrameGenerator type. A nil ticker means frames are not paced.
func NewFrameGenerator(pace limiter.Ticker) *FrameGenerator {
	return &FrameGenerator{
		pace: pace,
	}
}

// Initialise implements the Generator interface.
func (g *FrameGenerator) Initialise(mode video.Mode, width int, height int) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("scanout: illegal resolution %dx%d for %s mode", width, height, mode)
	}

	g.crit.Lock()
	defer g.crit.Unlock()

	g.width = width
	g.height = height
	g.frame = make([]uint8, width*height)
	g.work = make([]uint8, width*height)
	g.line = ScanLine{Samples: make([]uint8, width)}

	return nil
}

// NextLine implements the Generator interface.
func (g *FrameGenerator) NextLine() (*ScanLine, bool) {
	if g.line.Row == 0 && g.pace != nil {
		if !g.pace.Wait() {
			return nil, false
		}
	}
	return &g.line, true
}

// Submit implements the Generator interface.
func (g *FrameGenerator) Submit(line *ScanLine) {
	copy(g.work[line.Row*g.width:], line.Samples)
	line.Row++
	if line.Row < g.height {
		return
	}
	line.Row = 0

	g.crit.Lock()
	g.work, g.frame = g.frame, g.work
	g.frames++
	g.crit.Unlock()
}

// Size returns the resolution of the frame. Both values are zero until the
// generator has been initialised.
func (g *FrameGenerator) Size() (int, int) {
	g.crit.Lock()
	defer g.crit.Unlock()
	return g.width, g.height
}

// Indices copies the most recently completed frame into dst as palette
// indices, one byte per pixel. Returns the number of frames completed so far.
func (g *FrameGenerator) Indices(dst []uint8) int {
	g.crit.Lock()
	defer g.crit.Unlock()
	copy(dst, g.frame)
	return g.frames
}

// RGBA copies the most recently completed frame into dst, four bytes per
// pixel in R, G, B, A order. Returns the number of frames completed so far.
func (g *FrameGenerator) RGBA(dst []uint8) int {
	g.crit.Lock()
	defer g.crit.Unlock()
	for i, c := range g.frame {
		j := i * 4
		if j+3 >= len(dst) {
			break
		}
		p := video.Palette[c]
		dst[j] = p.R
		dst[j+1] = p.G
		dst[j+2] = p.B
		dst[j+3] = p.A
	}
	return g.frames
}
