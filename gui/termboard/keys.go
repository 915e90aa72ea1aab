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

package termboard

import "github.com/jetsetilly/murmulator/hardware/input"

// parseKeys converts bytes read from the terminal into keyboard usage codes.
// Returns true if the quit key was found. Bytes that do not correspond to a
// mapped key are ignored.
func parseKeys(b []byte) ([]input.Usage, bool) {
	var keys []input.Usage

	for i := 0; i < len(b); i++ {
		switch b[i] {
		case 'q', 'Q':
			return keys, true
		case '\r', '\n':
			keys = append(keys, input.UsageEnter)
		case 0x7f, 0x08:
			keys = append(keys, input.UsageBackspace)
		case 'z', 'Z':
			keys = append(keys, input.UsageZ)
		case 'x', 'X':
			keys = append(keys, input.UsageX)
		case 0x1b:
			// cursor keys are sent as ESC [ A to ESC [ D. some terminals
			// send ESC O A instead
			if i+2 < len(b) && (b[i+1] == '[' || b[i+1] == 'O') {
				switch b[i+2] {
				case 'A':
					keys = append(keys, input.UsageUp)
				case 'B':
					keys = append(keys, input.UsageDown)
				case 'C':
					keys = append(keys, input.UsageRight)
				case 'D':
					keys = append(keys, input.UsageLeft)
				}
				i += 2
			}
		}
	}

	return keys, false
}
