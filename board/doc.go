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

// Package board is the control core. It wires the components of the board
// together, starts the scan-out core and then drives the file browser, the
// cartridge loader and the idle screen.
//
// In text mode the board shows the file browser. Selecting a file loads it
// into flash, after which the screen is cleared and the idle banner is
// shown. Pressing Select and Start together on the idle screen returns to
// the browser.
//
// In native mode there is no browser. The cartridge, if any, is named when
// the board is started and the pixel plane shows a test pattern.
package board
