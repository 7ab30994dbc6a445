// This file is part of sdl4go.
//
// sdl4go is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// sdl4go is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with sdl4go.  If not, see <https://www.gnu.org/licenses/>.


// Package digest creates fingerprints of audio streams and of the frames
// shown on a surface. A fingerprint is a SHA-1 value that includes the
// previous fingerprint, so the final value depends on everything that has
// been seen and on the order it was seen in.
//
// Fingerprints are useful for checking that output has not changed between
// versions of a program.
package digest

// Digest is implemented by the fingerprint types of this package.
type Digest interface {
	Hash() string
	ResetDigest()
}

// Error patterns.
const (
	DigestError = "digest: %v"
)
