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

package preferences

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// environment variables that override values loaded from disk. useful when
// the game is started by a systemd unit on the board itself
type overrides struct {
	SerialPort     string        `env:"BEANBOARD_SERIAL_PORT"`
	SerialBaud     int           `env:"BEANBOARD_SERIAL_BAUD"`
	ButtonPins     string        `env:"BEANBOARD_BUTTON_PINS"`
	AudioBackend   string        `env:"BEANBOARD_AUDIO_BACKEND"`
	AudioDir       string        `env:"BEANBOARD_AUDIO_DIR"`
	AudioVolume    float64       `env:"BEANBOARD_AUDIO_VOLUME"`
	Timeout        time.Duration `env:"BEANBOARD_TIMEOUT"`
	CheatWindow    time.Duration `env:"BEANBOARD_CHEAT_WINDOW"`
	HiscoreBackend string        `env:"BEANBOARD_HISCORE_BACKEND"`
	HiscoreFile    string        `env:"BEANBOARD_HISCORE_FILE"`
	VideoCommand   string        `env:"BEANBOARD_VIDEO_COMMAND"`
	TimerCommand   string        `env:"BEANBOARD_TIMER_COMMAND"`
	CheatsFile     string        `env:"BEANBOARD_CHEATS_FILE"`
}

// ApplyEnvironment overrides preference values with any BEANBOARD_*
// environment variables that are set. Overridden values are not saved unless
// Save() is called explicitly.
func (p *Preferences) ApplyEnvironment() error {
	// start with the current values. env.Parse() leaves fields untouched if
	// the variable is not set
	o := overrides{
		SerialPort:     p.SerialPort.String(),
		SerialBaud:     p.SerialBaud.Get().(int),
		ButtonPins:     p.ButtonPins.String(),
		AudioBackend:   p.AudioBackend.String(),
		AudioDir:       p.AudioDir.String(),
		AudioVolume:    p.AudioVolume.Get().(float64),
		Timeout:        p.Timeout.Value(),
		CheatWindow:    p.CheatWindow.Value(),
		HiscoreBackend: p.HiscoreBackend.String(),
		HiscoreFile:    p.HiscoreFile.String(),
		VideoCommand:   p.VideoCommand.String(),
		TimerCommand:   p.TimerCommand.String(),
		CheatsFile:     p.CheatsFile.String(),
	}

	if err := env.Parse(&o); err != nil {
		return fmt.Errorf("preferences: environment: %w", err)
	}

	for _, err := range []error{
		p.SerialPort.Set(o.SerialPort),
		p.SerialBaud.Set(o.SerialBaud),
		p.ButtonPins.Set(o.ButtonPins),
		p.AudioBackend.Set(o.AudioBackend),
		p.AudioDir.Set(o.AudioDir),
		p.AudioVolume.Set(o.AudioVolume),
		p.Timeout.Set(o.Timeout),
		p.CheatWindow.Set(o.CheatWindow),
		p.HiscoreBackend.Set(o.HiscoreBackend),
		p.HiscoreFile.Set(o.HiscoreFile),
		p.VideoCommand.Set(o.VideoCommand),
		p.TimerCommand.Set(o.TimerCommand),
		p.CheatsFile.Set(o.CheatsFile),
	} {
		if err != nil {
			return fmt.Errorf("preferences: environment: %w", err)
		}
	}

	return nil
}
