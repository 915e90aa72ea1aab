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

package input

import "sync/atomic"

// Gamepad latches the most recent gamepad sample. The sample is already in
// ControlState form.
type Gamepad struct {
	state atomic.Uint32
}

// NewGamepad is the preferred method of initialisation for the Gamepad type.
func NewGamepad() *Gamepad {
	return &Gamepad{}
}

// Set the latest sample.
func (pad *Gamepad) Set(c ControlState) {
	pad.state.Store(uint32(c))
}

// Press sets the buttons in the latched sample.
func (pad *Gamepad) Press(c ControlState) {
	for {
		o := pad.state.Load()
		if pad.state.CompareAndSwap(o, o|uint32(c)) {
			return
		}
	}
}

// Release clears the buttons in the latched sample.
func (pad *Gamepad) Release(c ControlState) {
	for {
		o := pad.state.Load()
		if pad.state.CompareAndSwap(o, o&^uint32(c)) {
			return
		}
	}
}

// Latest returns the most recent sample.
func (pad *Gamepad) Latest() ControlState {
	return ControlState(pad.state.Load())
}
