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

// Package modalflag handles command lines made up of modes, each with its own
// flags. It wraps flag.FlagSet from the standard library.
//
// Arguments are given once with NewArgs(). Each layer of the command line is
// then described, with AddSubModes() and the Add*() flag functions, and
// parsed with Parse(). For example, to parse "-prefs x RUN -scale 2 game.bin":
//
//	md := modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	prefs := md.AddString("prefs", "", "preferences")
//	md.AddSubModes("RUN", "TERM")
//	md.Parse()
//
//	// md.Mode() is now "RUN"
//
//	md.NewMode()
//	scale := md.AddInt("scale", 1, "window scale")
//	md.Parse()
//
//	// md.GetArg(0) is now "game.bin"
//
// The first sub-mode is the default and is chosen if the next argument is not
// a sub-mode. Sub-modes are not case sensitive.
//
// The -help flag is handled by Parse() at every layer. Help is written to the
// Output field of the Modes type.
package modalflag
