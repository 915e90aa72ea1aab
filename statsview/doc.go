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

// Package statsview runs a local HTTP server showing runtime statistics of
// the board. The server is only available when the program is built with the
// statsview build tag:
//
//	go build -tags statsview
//
// After launch the statistics are at localhost:12600/debug/statsview and the
// standard pprof pages at localhost:12600/debug/pprof/
package statsview

// Address of the statistics server.
const Address = "localhost:12600"

const url = "/debug/statsview"
