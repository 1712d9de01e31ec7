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

// Package test bundles helper functions that remove common boilerplate from
// tests.
//
// The Expect functions record a failure and let the test continue. The
// Demand functions stop the test immediately and should be used when later
// parts of the test depend on the value being correct. For example, testing
// the length of a slice before indexing into it.
//
// Success and failure are interpreted according to the type of the value
// being tested:
//
//	bool  -> true is success
//	error -> nil is success
//	nil   -> success
//
// The Writer type implements io.Writer and should be used to capture output
// for comparison with expected strings.
package test
