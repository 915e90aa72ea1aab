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

// Package resources contains functions to prepare paths for murmulator
// resources: the preferences file, the host flash image and the default
// location of the SD card directory.
//
// For builds with the "release" build tag the base path is rooted in the
// user's configuration directory. On a modern Linux system this is:
//
//	/home/user/.config/murmulator/
//
// For other builds the base path is rooted in the current working directory:
//
//	.murmulator
package resources
