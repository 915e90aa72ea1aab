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

// Package storage is the SD card as seen by the board. It presents a small
// FAT-like interface (mount, change directory, open, read, close and
// first/next directory enumeration) over any fs.FS.
//
// Paths use either slash or backslash as the separator. A path that starts
// with a separator is relative to the root of the card; any other path is
// relative to the current directory.
//
// Zip files on the card are treated as directories. A zip file can be changed
// into and its contents enumerated and opened like any other directory.
package storage
