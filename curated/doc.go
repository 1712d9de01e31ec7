// This file is part of Beanboard.
//
// Beanboard is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Beanboard is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Beanboard.  If not, see <https://www.gnu.org/licenses/>.

// Package curated is a helper package for the plain Go language error type.
// Curated errors are created with Errorf(). The pattern string and the values
// are stored separately and only formatted when the Error() function is
// called. This means that an error can be tested for by its pattern, rather
// than by its formatted message:
//
//	const LightsWrite = "lights: %v"
//
//	err := curated.Errorf(LightsWrite, ioErr)
//	if curated.Is(err, LightsWrite) {
//		...
//	}
//
// The Has() function searches the values of a curated error for another
// curated error with the pattern. Has() is useful when the outermost error has
// been wrapped by a caller that added its own context.
//
// Curated errors also satisfy the Unwrap() contract of the errors package, so
// errors.Is() and errors.As() will look inside any error values.
package curated
