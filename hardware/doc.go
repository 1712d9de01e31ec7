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

// Package hardware joins the lights, the buttons and the audio of the board
// into a single Gateway. The game only ever talks to the hardware through a
// Gateway.
//
// The interfaces in this package are implemented by the adapters in the
// sub-packages: lights for the serial light strip, buttons for the GPIO
// buttons, audio for the playing of clips and desk for the terminal
// simulation of the whole board. The mock package provides implementations
// for testing.
//
// Errors writing to the lights are transport faults. The game cannot run
// without its lights so these errors are returned to the caller. Errors
// playing audio are logged and otherwise ignored.
package hardware
