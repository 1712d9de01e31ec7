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

// Package paths contains functions to prepare paths to beanboard resources:
// the preferences file, the score file, sound clips and the optional cheats
// file.
//
// The ResourcePath() function prepends the supplied resource with the
// appropriate base directory. For example, the following will return the
// path to the dog sound bank:
//
//	d, err := paths.ResourcePath("sounds/dog", "")
//
// The policy of ResourcePath() is simple: if the base resource directory,
// ".beanboard", is present in the program's current directory then that is
// the base path that will be used. If it is not present then the user's
// config directory is used (see os.UserConfigDir()). On a Raspberry Pi that
// will usually be:
//
//	/home/pi/.config/beanboard/sounds/dog
//
// The directory part of the resource is created if it does not exist.
package paths
