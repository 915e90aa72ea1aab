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

// Unified combines the keyboard and the gamepad.
type Unified struct {
	Keyboard *Keyboard
	Gamepad  *Gamepad
}

// NewUnified is the preferred method of initialisation for the Unified type.
func NewUnified() *Unified {
	return &Unified{
		Keyboard: NewKeyboard(),
		Gamepad:  NewGamepad(),
	}
}

// Poll returns the logical OR of the keyboard and gamepad state. Either
// source asserting a button asserts it in the result.
func (u *Unified) Poll() ControlState {
	return u.Keyboard.Latest().Decode() | u.Gamepad.Latest()
}
