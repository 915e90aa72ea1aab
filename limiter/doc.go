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

// Package limiter paces the polling loops of the control core.
//
// Loops wait on a Ticker before each iteration:
//
//	for tck.Wait() {
//		state := inp.Poll()
//		...
//	}
//
// The Pulse type ticks at a fixed interval in real time. The Manual type only
// ticks when told to and is used to drive loops deterministically.
package limiter
