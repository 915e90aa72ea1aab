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

package ebitenboard

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/jetsetilly/murmulator/hardware/input"
)

var keys = map[ebiten.Key]input.Usage{
	ebiten.KeyEnter:      input.UsageEnter,
	ebiten.KeyBackspace:  input.UsageBackspace,
	ebiten.KeyZ:          input.UsageZ,
	ebiten.KeyX:          input.UsageX,
	ebiten.KeyArrowUp:    input.UsageUp,
	ebiten.KeyArrowDown:  input.UsageDown,
	ebiten.KeyArrowLeft:  input.UsageLeft,
	ebiten.KeyArrowRight: input.UsageRight,
}

// standard layout gamepad buttons
var buttons = map[ebiten.GamepadButton]input.ControlState{
	ebiten.GamepadButton14: input.Left,
	ebiten.GamepadButton12: input.Right,
	ebiten.GamepadButton11: input.Up,
	ebiten.GamepadButton13: input.Down,
	ebiten.GamepadButton0:  input.A,
	ebiten.GamepadButton2:  input.A,
	ebiten.GamepadButton1:  input.B,
	ebiten.GamepadButton3:  input.B,
	ebiten.GamepadButton6:  input.Select,
	ebiten.GamepadButton7:  input.Start,
}

func (eb *EbitenBoard) inputKeyboard() error {
	var pressed []ebiten.Key
	var released []ebiten.Key
	pressed = inpututil.AppendJustPressedKeys(pressed)
	released = inpututil.AppendJustReleasedKeys(released)

	for _, k := range released {
		if k == ebiten.KeyEscape {
			return ebiten.Termination
		}
		if u, ok := keys[k]; ok {
			eb.inp.Keyboard.Release(u)
		}
	}
	for _, k := range pressed {
		if u, ok := keys[k]; ok {
			eb.inp.Keyboard.Press(u)
		}
	}

	return nil
}

func (eb *EbitenBoard) inputGamepad() {
	const gamepad = 0

	var pressed []ebiten.GamepadButton
	var released []ebiten.GamepadButton
	pressed = inpututil.AppendJustPressedGamepadButtons(gamepad, pressed)
	released = inpututil.AppendJustReleasedGamepadButtons(gamepad, released)

	for _, b := range released {
		if c, ok := buttons[b]; ok {
			eb.inp.Gamepad.Release(c)
		}
	}
	for _, b := range pressed {
		if c, ok := buttons[b]; ok {
			eb.inp.Gamepad.Press(c)
		}
	}
}
