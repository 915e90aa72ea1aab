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

package sdlboard

import (
	"github.com/jetsetilly/murmulator/hardware/input"

	"github.com/veandco/go-sdl2/sdl"
)

// SDL scancodes are USB HID usage codes so keyboard events are passed to the
// keyboard latch without translation.
func (scr *SdlBoard) event(ev sdl.Event) {
	switch ev := ev.(type) {
	case *sdl.QuitEvent:
		scr.quitOnce.Do(func() {
			close(scr.quit)
		})

	case *sdl.KeyboardEvent:
		if ev.Repeat != 0 || ev.Keysym.Scancode > 0xff {
			return
		}
		k := input.Usage(ev.Keysym.Scancode)
		switch ev.Type {
		case sdl.KEYDOWN:
			scr.inp.Keyboard.Press(k)
		case sdl.KEYUP:
			scr.inp.Keyboard.Release(k)
		}

	case *sdl.JoyButtonEvent:
		var b input.ControlState
		switch ev.Button {
		case 0, 2:
			b = input.A
		case 1, 3:
			b = input.B
		case 6:
			b = input.Select
		case 7:
			b = input.Start
		default:
			return
		}
		if ev.State == sdl.PRESSED {
			scr.inp.Gamepad.Press(b)
		} else {
			scr.inp.Gamepad.Release(b)
		}

	case *sdl.JoyHatEvent:
		var dir input.ControlState
		if ev.Value&sdl.HAT_UP == sdl.HAT_UP {
			dir |= input.Up
		}
		if ev.Value&sdl.HAT_DOWN == sdl.HAT_DOWN {
			dir |= input.Down
		}
		if ev.Value&sdl.HAT_LEFT == sdl.HAT_LEFT {
			dir |= input.Left
		}
		if ev.Value&sdl.HAT_RIGHT == sdl.HAT_RIGHT {
			dir |= input.Right
		}
		scr.inp.Gamepad.Release(input.Directions &^ dir)
		scr.inp.Gamepad.Press(dir)
	}
}
