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

// Package scanout runs the scan-out core. The Coordinator waits for the
// control core to choose a video mode, initialises the video-timing
// generator and then fills every scanline the generator asks for from the
// frame buffer.
//
// The Coordinator is a lockout victim. Each line fill is one unit of work so
// the control core can quiesce the scan-out core between lines.
package scanout
