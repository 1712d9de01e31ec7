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
	"time"

	"github.com/beanboard/beanboard/paths"
	"github.com/beanboard/beanboard/prefs"
)

// DefaultPrefsFile is the name of the preferences file in the resource path.
const DefaultPrefsFile = "preferences"

// Preferences defines and collates all the preference values used by the
// game and the hardware adapters.
type Preferences struct {
	dsk *prefs.Disk

	// the serial device connected to the light strip controller
	SerialPort prefs.String
	SerialBaud prefs.Int

	// GPIO pin numbers for each bean in bean order. comma separated
	ButtonPins prefs.String

	// buttons pull the pin low when pressed
	ButtonActiveLow prefs.Bool

	// minimum time a button must be stable before a change is reported
	ButtonDebounce prefs.Duration

	// audio output: "sdl" or "beep"
	AudioBackend   prefs.String
	AudioFrequency prefs.Int

	// playback volume in the range 0.0 to 1.0
	AudioVolume prefs.Float

	// directory containing the sound banks. empty string means the "sounds"
	// directory in the resource path
	AudioDir prefs.String

	// time allowed for each input during the ask phase of a normal game
	Timeout prefs.Duration

	// length of the cheat entry window after attract mode ends
	CheatWindow prefs.Duration

	// pause between beans during the say phase
	Beat prefs.Duration

	// pause after a round is won before the next say phase
	RoundPause prefs.Duration

	// on time for a single attract mode flash
	AttractStep prefs.Duration

	// the speedrun modifier. the timeout starts at SpeedrunTimeout and
	// shrinks by SpeedrunDecrement after every correct input, but never below
	// SpeedrunFloor
	SpeedrunTimeout   prefs.Duration
	SpeedrunDecrement prefs.Duration
	SpeedrunFloor     prefs.Duration

	// score storage: "file" or "sqlite"
	HiscoreBackend prefs.String

	// path to the score file. empty string means the default file in the
	// resource path
	HiscoreFile prefs.String

	// command lines for the cosmetic side shows. empty strings mean that the
	// mode runs without a side show
	VideoCommand prefs.String
	TimerCommand prefs.String

	// optional YAML file of additional cheat codes
	CheatsFile prefs.String
}

func (p *Preferences) String() string {
	return p.dsk.Path()
}

// NewPreferences is the preferred method of initialisation for the
// Preferences type. An empty path means the default prefs file in the
// resource path. Values are set to their defaults and then loaded from disk.
func NewPreferences(pth string) (*Preferences, error) {
	p := &Preferences{}
	p.SetDefaults()

	var err error

	if pth == "" {
		pth, err = paths.ResourcePath("", DefaultPrefsFile)
		if err != nil {
			return nil, err
		}
	}

	p.dsk, err = prefs.NewDisk(pth)
	if err != nil {
		return nil, err
	}

	for k, v := range map[string]prefsValue{
		"serial.port":        &p.SerialPort,
		"serial.baud":        &p.SerialBaud,
		"buttons.pins":       &p.ButtonPins,
		"buttons.activelow":  &p.ButtonActiveLow,
		"buttons.debounce":   &p.ButtonDebounce,
		"audio.backend":      &p.AudioBackend,
		"audio.frequency":    &p.AudioFrequency,
		"audio.volume":       &p.AudioVolume,
		"audio.dir":          &p.AudioDir,
		"game.timeout":       &p.Timeout,
		"game.cheatwindow":   &p.CheatWindow,
		"game.beat":          &p.Beat,
		"game.roundpause":    &p.RoundPause,
		"game.attractstep":   &p.AttractStep,
		"speedrun.timeout":   &p.SpeedrunTimeout,
		"speedrun.decrement": &p.SpeedrunDecrement,
		"speedrun.floor":     &p.SpeedrunFloor,
		"hiscore.backend":    &p.HiscoreBackend,
		"hiscore.file":       &p.HiscoreFile,
		"sideshow.video":     &p.VideoCommand,
		"sideshow.timer":     &p.TimerCommand,
		"cheats.file":        &p.CheatsFile,
	} {
		if err := p.dsk.Add(k, v); err != nil {
			return nil, err
		}
	}

	if err := p.dsk.Load(); err != nil {
		return nil, err
	}

	return p, nil
}

// the subset of the prefs interface needed to add a value to the disk
type prefsValue interface {
	String() string
	Set(prefs.Value) error
	Get() prefs.Value
	Reset() error
}

// SetDefaults reverts all preferences to their default values.
func (p *Preferences) SetDefaults() {
	_ = p.SerialPort.Set("/dev/ttyUSB0")
	_ = p.SerialBaud.Set(115200)
	_ = p.ButtonPins.Set("23,22,17,27")
	_ = p.ButtonActiveLow.Set(true)
	_ = p.ButtonDebounce.Set(10 * time.Millisecond)
	_ = p.AudioBackend.Set("sdl")
	_ = p.AudioFrequency.Set(44100)
	_ = p.AudioVolume.Set(1.0)
	_ = p.AudioDir.Set("")
	_ = p.Timeout.Set(10 * time.Second)
	_ = p.CheatWindow.Set(3 * time.Second)
	_ = p.Beat.Set(100 * time.Millisecond)
	_ = p.RoundPause.Set(500 * time.Millisecond)
	_ = p.AttractStep.Set(500 * time.Millisecond)
	_ = p.SpeedrunTimeout.Set(2 * time.Second)
	_ = p.SpeedrunDecrement.Set(100 * time.Millisecond)
	_ = p.SpeedrunFloor.Set(400 * time.Millisecond)
	_ = p.HiscoreBackend.Set("file")
	_ = p.HiscoreFile.Set("")
	_ = p.VideoCommand.Set("")
	_ = p.TimerCommand.Set("")
	_ = p.CheatsFile.Set("")
}

// Load preferences from disk.
func (p *Preferences) Load() error {
	return p.dsk.Load()
}

// Save preferences to disk.
func (p *Preferences) Save() error {
	return p.dsk.Save()
}
