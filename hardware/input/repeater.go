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

// Repeater turns successive polls of the ControlState into button events.
// A button produces an event on the poll where it is first pressed. A
// direction that is held continues to produce an event every Delay polls.
//
// Only directions auto-repeat. Other buttons must be released and pressed
// again.
type Repeater struct {
	// number of polls a direction must be held for before it repeats. a
	// value of zero or less disables auto-repeat
	Delay int

	prev ControlState
	held int
}

// NewRepeater is the preferred method of initialisation for the Repeater
// type.
func NewRepeater(delay int) *Repeater {
	return &Repeater{Delay: delay}
}

// Update the repeater with the most recent poll and return the buttons that
// should be acted upon.
func (r *Repeater) Update(c ControlState) ControlState {
	events := c &^ r.prev

	if events != NoButtons || c&Directions != r.prev&Directions {
		r.held = 0
	} else if c&Directions != NoButtons && r.Delay > 0 {
		r.held++
		if r.held >= r.Delay {
			r.held = 0
			events |= c & Directions
		}
	}

	r.prev = c
	return events
}

// Reset forgets the previous poll. A button that is held at the time of the
// next Update() will produce an event.
func (r *Repeater) Reset() {
	r.prev = NoButtons
	r.held = 0
}
