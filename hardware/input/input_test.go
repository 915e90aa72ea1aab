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

package input_test

import (
	"testing"

	"github.com/jetsetilly/murmulator/hardware/input"
	"github.com/jetsetilly/murmulator/test"
)

func TestKeyboardDecode(t *testing.T) {
	r := input.Report{Keycodes: [input.Rollover]input.Usage{input.UsageEnter, input.UsageZ}}
	test.ExpectEquality(t, r.Decode(), input.Start|input.A)

	r = input.Report{Keycodes: [input.Rollover]input.Usage{input.UsageBackspace, input.UsageX, input.UsageUp, input.UsageDown, input.UsageLeft, input.UsageRight}}
	test.ExpectEquality(t, r.Decode(), input.Select|input.B|input.Directions)

	// unmapped keys are ignored
	r = input.Report{Keycodes: [input.Rollover]input.Usage{0x04, 0x05}}
	test.ExpectEquality(t, r.Decode(), input.NoButtons)
}

func TestKeyboardRollOver(t *testing.T) {
	kbd := input.NewKeyboard()
	kbd.Press(input.UsageUp)
	test.ExpectEquality(t, kbd.Latest().Decode(), input.Up)

	// a roll-over error report does not replace the latched report
	var r input.Report
	for i := range r.Keycodes {
		r.Keycodes[i] = input.UsageRollOver
	}
	kbd.Set(r)
	test.ExpectEquality(t, kbd.Latest().Decode(), input.Up)
}

func TestKeyboardPressRelease(t *testing.T) {
	kbd := input.NewKeyboard()
	kbd.Press(input.UsageZ)
	kbd.Press(input.UsageZ)
	kbd.Press(input.UsageLeft)
	test.ExpectEquality(t, kbd.Latest().Decode(), input.A|input.Left)

	kbd.Release(input.UsageZ)
	test.ExpectEquality(t, kbd.Latest().Decode(), input.Left)

	// more keys than there are slots. the extra key is dropped
	for k := input.Usage(0x04); k < 0x04+input.Rollover; k++ {
		kbd.Press(k)
	}
	test.ExpectEquality(t, kbd.Latest().Decode(), input.Left)
	kbd.Release(input.UsageLeft)
	kbd.Press(input.UsageEnter)
	test.ExpectEquality(t, kbd.Latest().Decode(), input.Start)
}

func TestUnifiedPoll(t *testing.T) {
	u := input.NewUnified()
	test.ExpectEquality(t, u.Poll(), input.NoButtons)

	u.Keyboard.Press(input.UsageEnter)
	u.Gamepad.Press(input.Up | input.Start)
	test.ExpectEquality(t, u.Poll(), input.Up|input.Start)

	u.Gamepad.Release(input.Start)
	test.ExpectEquality(t, u.Poll(), input.Up|input.Start)

	u.Keyboard.Release(input.UsageEnter)
	test.ExpectEquality(t, u.Poll(), input.Up)

	u.Gamepad.Set(input.NoButtons)
	test.ExpectEquality(t, u.Poll(), input.NoButtons)
}

func TestControlStateString(t *testing.T) {
	test.ExpectEquality(t, input.NoButtons.String(), "-")
	test.ExpectEquality(t, (input.Up | input.A).String(), "Up+A")
	test.ExpectSuccess(t, (input.Select | input.Start).Pressed(input.Select|input.Start))
	test.ExpectFailure(t, input.Select.Pressed(input.Select|input.Start))
	test.ExpectSuccess(t, input.Select.Any(input.Select|input.Start))
}

func TestRepeater(t *testing.T) {
	r := input.NewRepeater(3)

	test.ExpectEquality(t, r.Update(input.Down), input.Down)

	// held direction repeats every third poll
	test.ExpectEquality(t, r.Update(input.Down), input.NoButtons)
	test.ExpectEquality(t, r.Update(input.Down), input.NoButtons)
	test.ExpectEquality(t, r.Update(input.Down), input.Down)
	test.ExpectEquality(t, r.Update(input.Down), input.NoButtons)

	// release and press is an immediate event
	test.ExpectEquality(t, r.Update(input.NoButtons), input.NoButtons)
	test.ExpectEquality(t, r.Update(input.Down), input.Down)

	// non-direction buttons do not repeat
	r.Reset()
	test.ExpectEquality(t, r.Update(input.A), input.A)
	for range 10 {
		test.ExpectEquality(t, r.Update(input.A), input.NoButtons)
	}

	// reset causes a held button to be seen again
	r.Reset()
	test.ExpectEquality(t, r.Update(input.A), input.A)
}
