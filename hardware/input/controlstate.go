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

import "strings"

// ControlState is the set of logical buttons that are currently pressed. The
// bit order is the same as the NES controller shift register.
type ControlState uint8

// List of logical buttons.
const (
	A ControlState = 1 << iota
	B
	Select
	Start
	Up
	Down
	Left
	Right
)

// NoButtons is the ControlState with nothing pressed.
const NoButtons ControlState = 0

// Directions is the set of direction buttons.
const Directions = Up | Down | Left | Right

var buttonNames = []struct {
	b    ControlState
	name string
}{
	{Up, "Up"},
	{Down, "Down"},
	{Left, "Left"},
	{Right, "Right"},
	{A, "A"},
	{B, "B"},
	{Select, "Select"},
	{Start, "Start"},
}

// Pressed returns true if every button in b is pressed.
func (c ControlState) Pressed(b ControlState) bool {
	return b != NoButtons && c&b == b
}

// Any returns true if at least one button in b is pressed.
func (c ControlState) Any(b ControlState) bool {
	return c&b != NoButtons
}

func (c ControlState) String() string {
	if c == NoButtons {
		return "-"
	}
	s := make([]string, 0, len(buttonNames))
	for _, n := range buttonNames {
		if c&n.b == n.b {
			s = append(s, n.name)
		}
	}
	return strings.Join(s, "+")
}
