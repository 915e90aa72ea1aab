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

import (
	"sync"

	"github.com/jetsetilly/murmulator/logger"
)

// Usage is a HID keyboard usage code.
type Usage uint8

// List of keyboard usage codes that are mapped to a logical button.
const (
	UsageNone      Usage = 0x00
	UsageRollOver  Usage = 0x01
	UsageX         Usage = 0x1b
	UsageZ         Usage = 0x1d
	UsageEnter     Usage = 0x28
	UsageBackspace Usage = 0x2a
	UsageRight     Usage = 0x4f
	UsageLeft      Usage = 0x50
	UsageDown      Usage = 0x51
	UsageUp        Usage = 0x52
)

var keymap = map[Usage]ControlState{
	UsageEnter:     Start,
	UsageBackspace: Select,
	UsageZ:         A,
	UsageX:         B,
	UsageUp:        Up,
	UsageDown:      Down,
	UsageLeft:      Left,
	UsageRight:     Right,
}

// Rollover is the number of keys that can be reported at once.
const Rollover = 6

// Report is a keyboard report in the HID boot protocol format.
type Report struct {
	Modifier uint8
	Keycodes [Rollover]Usage
}

// Decode maps the pressed keys in the report to logical buttons. Unmapped keys
// are ignored.
func (r Report) Decode() ControlState {
	var c ControlState
	for _, k := range r.Keycodes {
		c |= keymap[k]
	}
	return c
}

// phantom returns true if the report is the keyboard telling us that too many
// keys are pressed
func (r Report) phantom() bool {
	for _, k := range r.Keycodes {
		if k != UsageRollOver {
			return false
		}
	}
	return true
}

// Keyboard latches the most recent keyboard report.
type Keyboard struct {
	crit   sync.Mutex
	report Report
}

// NewKeyboard is the preferred method of initialisation for the Keyboard type.
func NewKeyboard() *Keyboard {
	return &Keyboard{}
}

// Set the latest report. A roll-over error report is ignored and the previous
// report remains latched.
func (kbd *Keyboard) Set(r Report) {
	if r.phantom() {
		logger.Log(logger.Allow, "input", "keyboard roll-over error")
		return
	}
	kbd.crit.Lock()
	defer kbd.crit.Unlock()
	kbd.report = r
}

// Press adds the key to the latched report. For decoders that see individual
// key events rather than whole reports. If all slots are occupied the key is
// dropped.
func (kbd *Keyboard) Press(k Usage) {
	kbd.crit.Lock()
	defer kbd.crit.Unlock()

	free := -1
	for i, c := range kbd.report.Keycodes {
		if c == k {
			return
		}
		if c == UsageNone && free == -1 {
			free = i
		}
	}
	if free == -1 {
		return
	}
	kbd.report.Keycodes[free] = k
}

// Release removes the key from the latched report.
func (kbd *Keyboard) Release(k Usage) {
	kbd.crit.Lock()
	defer kbd.crit.Unlock()

	for i, c := range kbd.report.Keycodes {
		if c == k {
			kbd.report.Keycodes[i] = UsageNone
		}
	}
}

// Latest returns a copy of the most recent report.
func (kbd *Keyboard) Latest() Report {
	kbd.crit.Lock()
	defer kbd.crit.Unlock()
	return kbd.report
}
