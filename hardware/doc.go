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

// Package hardware is the base package for the board. The sub-packages model
// the parts of the microcontroller that the firmware drives directly.
//
// The video package holds the frame buffer and the compositor that turns it
// into scanlines. The scanout package runs the compositor on the second core
// and the multicore package provides the primitives shared by the two cores.
// Input from the keyboard and gamepad is merged by the input package and the
// flash package describes the cartridge region of the onboard flash.
package hardware
