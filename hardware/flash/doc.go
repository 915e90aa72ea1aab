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

// Package flash models the onboard flash of the board and defines the layout
// of the region reserved for cartridge code.
//
// The region starts at TargetOffset. The first HeaderSize bytes are the
// header block; the first HeaderPathLen bytes of the header hold the source
// path of the resident cartridge, padded with zero bytes. Payload blocks of
// BlockSize bytes follow the header.
//
// Erased flash reads as 0xff. Programming can only clear bits, so a range
// must be erased before it is programmed with new data.
package flash
