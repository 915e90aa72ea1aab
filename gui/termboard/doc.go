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

// Package termboard is a host for the board that runs in a terminal. The
// terminal is put into cbreak mode and key presses are fed to the keyboard
// latch. Frames from the scan-out core are decoded back into character cells
// and drawn with ANSI colours.
//
// Terminals do not report key releases. A key is considered held for a short
// time after the most recent byte for that key is received.
package termboard
