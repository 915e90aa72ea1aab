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

// Package input decodes the keyboard and the gamepad into a single
// ControlState.
//
// The Keyboard and Gamepad types are latches. Host decoders write the most
// recent report into them from whatever goroutine services the device and the
// control core reads them with Unified.Poll(). No history is kept beyond the
// most recent report.
//
// The Repeater type turns successive polls into press events, with
// auto-repeat for buttons that are held down.
package input
