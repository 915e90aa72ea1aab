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

// Package sdlboard is the SDL host for the board. It is the video-timing
// generator's display and the decoder for the keyboard and for joysticks.
//
// All SDL functions must be called from the main thread. The SdlBoard type
// is created and serviced by the main thread and communicates with the
// board only through the FrameGenerator and the input latches.
package sdlboard
