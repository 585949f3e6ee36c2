// seehuhn.de/go/wavefont - generate font sources for the Wavefont typeface
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Package face holds the static configuration of the Wavefont family.
//
// A [Face] maps semantic values to code points and carries the alias table
// which decides which additional characters render as a given bar.  The
// design space is spanned by the two axes [Roundness] and [Weight], and
// sampled at the four corner [Masters].
//
// All values in this package are read-only.  They are built once at
// program start and may be shared freely.
package face
