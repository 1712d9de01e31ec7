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

// Package audio loads the sound clips used by the game and plays them on one
// of the supported audio backends.
//
// Clips are decoded from WAV or MP3 files once, at startup, and held in a
// Library. Clips are referred to by ClipID, which is the path of the clip's
// file relative to the audio directory. The chime played when a cheat mode is
// unlocked is synthesised rather than loaded.
//
// Playback is through the SDL or the beep backend, or through the Silent
// player when audio is muted. All backends play one clip at a time: starting
// a clip stops the previous one.
package audio
