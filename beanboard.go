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

package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/beanboard/beanboard/attract"
	"github.com/beanboard/beanboard/beans"
	"github.com/beanboard/beanboard/cheats"
	"github.com/beanboard/beanboard/curated"
	"github.com/beanboard/beanboard/environment"
	"github.com/beanboard/beanboard/hardware"
	"github.com/beanboard/beanboard/hardware/audio"
	"github.com/beanboard/beanboard/hardware/buttons"
	"github.com/beanboard/beanboard/hardware/desk"
	"github.com/beanboard/beanboard/hardware/lights"
	"github.com/beanboard/beanboard/hiscore"
	"github.com/beanboard/beanboard/logger"
	"github.com/beanboard/beanboard/modalflag"
	"github.com/beanboard/beanboard/paths"
	"github.com/beanboard/beanboard/pollclock"
	"github.com/beanboard/beanboard/preferences"
	"github.com/beanboard/beanboard/prefs"
	"github.com/beanboard/beanboard/session"
	"github.com/beanboard/beanboard/statsview"
	"github.com/beanboard/beanboard/version"
	"github.com/beanboard/beanboard/wavwriter"
)

type stateReq = string

const (
	// main thread should end as soon as possible.
	//
	// takes optional int argument, indicating the status code.
	reqQuit stateReq = "QUIT"

	// reset interrupt signal handling. used when an alternative handler is
	// more appropriate. for example, the game loop stops the side shows and
	// turns off the lights before quitting.
	//
	// takes no arguments.
	reqNoIntSig stateReq = "NOINTSIG"
)

type stateRequest struct {
	req  stateReq
	args interface{}
}

// Servicer facilitates the creation, servicing and destruction of resources
// that need to be run in the main thread.
//
// Note that there is no Create() function. Instead the creator is a channel
// which accepts a function that returns an instance of Servicer.
type Servicer interface {
	// cleanup resources
	Destroy(io.Writer)

	// Service() should not pause or loop longer than necessary (if at all).
	// It MUST ONLY by called as part of a larger loop from the main thread.
	//
	// If the resource does not require this sort of thread safety then there
	// is no need for the Service() function to do anything.
	Service()
}

// communication between the main() function and the launch() function. this
// is required because SDL wants initialisation and event handling to occur
// on the main thread.
type mainSync struct {
	state   chan stateRequest
	creator chan func() (Servicer, error)

	// the result of creator will be returned on either of these two channels.
	creation      chan Servicer
	creationError chan error
}

// how often the main thread services the most recently created Servicer
const servicePeriod = 10 * time.Millisecond

// #mainthread
func main() {
	sync := &mainSync{
		state:         make(chan stateRequest),
		creator:       make(chan func() (Servicer, error)),
		creation:      make(chan Servicer),
		creationError: make(chan error),
	}

	// the value to use with os.Exit(). can be changed with reqQuit
	// stateRequest
	exitVal := 0

	// #ctrlc default handler. can be turned off with reqNoIntSig request
	intChan := make(chan os.Signal, 1)
	signal.Notify(intChan, os.Interrupt)

	// launch program as a go routine. further communication is through the
	// mainSync instance
	go launch(sync)

	service := time.NewTicker(servicePeriod)
	defer service.Stop()

	// loop until done is true. every iteration of the loop we listen for:
	//
	//  1. interrupt signals
	//  2. new creation functions
	//  3. state requests
	//  4. the service period of the most recently created Servicer
	//
	done := false
	var svc Servicer
	for !done {
		select {
		case <-intChan:
			fmt.Println("\r")
			done = true

		case creator := <-sync.creator:
			var err error

			if svc != nil {
				svc.Destroy(os.Stderr)
			}

			svc, err = creator()
			if err != nil {
				sync.creationError <- err

				// an interface holding a nil pointer is not itself nil
				svc = nil
			} else {
				sync.creation <- svc
			}

		case state := <-sync.state:
			switch state.req {
			case reqQuit:
				done = true
				if svc != nil {
					svc.Destroy(os.Stderr)
				}

				if state.args != nil {
					if v, ok := state.args.(int); ok {
						exitVal = v
					} else {
						panic(fmt.Sprintf("cannot convert %s arguments into int", reqQuit))
					}
				}

			case reqNoIntSig:
				signal.Reset(os.Interrupt)
				if state.args != nil {
					panic(fmt.Sprintf("%s does not accept any arguments", reqNoIntSig))
				}
			}

		case <-service.C:
			if svc != nil {
				svc.Service()
			}
		}
	}

	fmt.Print("\r")
	os.Exit(exitVal)
}

// launch is called from main() as a goroutine. uses mainSync instance to
// indicate creation of main thread resources and to quit.
func launch(sync *mainSync) {
	md := &modalflag.Modes{Output: os.Stdout}
	md.NewArgs(os.Args[1:])
	md.NewMode()
	md.AddSubModes("PLAY", "SIMULATE", "LIGHTS", "SCORES", "VERSION")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		sync.state <- stateRequest{req: reqQuit}
		return

	case modalflag.ParseError:
		fmt.Printf("* error: %v\n", err)
		// 10
		sync.state <- stateRequest{req: reqQuit, args: 10}
		return
	}

	switch md.Mode() {
	case "PLAY":
		err = play(md, sync, false)

	case "SIMULATE":
		err = play(md, sync, true)

	case "LIGHTS":
		err = lightshow(md)

	case "SCORES":
		err = scores(md)

	case "VERSION":
		v, r := version.Version()
		fmt.Printf("%s %s (%s)\n", version.ApplicationName, v, r)
	}

	if err != nil {
		fmt.Printf("* error in %s mode: %s\n", md.String(), err)

		// an error that hasn't been curated is unexpected. the most recent
		// log entries might explain it
		if !curated.IsAny(err) {
			logger.Tail(os.Stdout, 10)
		}

		sync.state <- stateRequest{req: reqQuit, args: 20}
		return
	}

	sync.state <- stateRequest{req: reqQuit}
}

// flags shared by every mode that uses the preferences
type common struct {
	log       *bool
	seed      *int64
	prefs     *string
	prefsFile *string
}

func addCommon(md *modalflag.Modes) *common {
	return &common{
		log:       md.AddBool("log", false, "echo debugging log to stdout"),
		seed:      md.AddInt64("seed", 0, "random seed. zero means seed from the time"),
		prefs:     md.AddString("prefs", "", "preferences for this run only. key::value; key::value"),
		prefsFile: md.AddString("prefsfile", "", "preferences file to use instead of the default"),
	}
}

// create the environment for the game from the common flags, the preferences
// file and the process environment, in that order of priority
func (c *common) environment(echo io.Writer) (*environment.Environment, error) {
	if *c.log {
		logger.SetEcho(echo)
	} else {
		logger.SetEcho(nil)
	}

	prefs.SetCommandLine(*c.prefs)

	p, err := preferences.NewPreferences(*c.prefsFile)
	if err != nil {
		return nil, err
	}

	if u := prefs.UnusedCommandLine(); u != "" {
		return nil, fmt.Errorf("unrecognised preferences: %s", u)
	}

	if err := p.ApplyEnvironment(); err != nil {
		return nil, err
	}

	return environment.NewEnvironment(environment.MainGame, *c.seed, p)
}

// the hardware the game is played on
type board struct {
	lights  hardware.Lights
	buttons hardware.Buttons
	close   []func() error

	// closed when the user asks to quit. nil if the board has no way of
	// asking
	quit <-chan struct{}
}

func (brd *board) Close() error {
	var err error
	for i := len(brd.close) - 1; i >= 0; i-- {
		if e := brd.close[i](); e != nil && err == nil {
			err = e
		}
	}
	return err
}

// open the real board: the light strip on the serial port and the buttons on
// the GPIO pins
func openBoard(env *environment.Environment) (*board, error) {
	brd := &board{}

	strip, err := lights.OpenSerial(env.Prefs.SerialPort.String(), env.Prefs.SerialBaud.Get().(int))
	if err != nil {
		return nil, err
	}
	brd.lights = strip
	brd.close = append(brd.close, strip.Close)

	pins, err := buttons.ParsePins(env.Prefs.ButtonPins.String())
	if err != nil {
		_ = brd.Close()
		return nil, err
	}

	gpio, err := buttons.NewGPIO(env, buttons.SysfsRoot, pins, env.Prefs.ButtonActiveLow.Get().(bool), env.Prefs.ButtonDebounce.Value())
	if err != nil {
		_ = brd.Close()
		return nil, err
	}
	brd.buttons = gpio
	brd.close = append(brd.close, gpio.Close)

	return brd, nil
}

// open the simulated board in the terminal
func openDesk() (*board, error) {
	d, err := desk.Open(desk.DefaultHold)
	if err != nil {
		return nil, err
	}
	go d.Service()

	return &board{
		lights:  lights.NewStrip(d),
		buttons: d,
		close:   []func() error{d.Close},
		quit:    d.Quit(),
	}, nil
}

// sdlService creates the SDL audio device on the main thread
type sdlService struct {
	*audio.SDL
}

func (s sdlService) Destroy(output io.Writer) {
	if err := s.Close(); err != nil {
		fmt.Fprintf(output, "* %v\n", err)
	}
}

func (s sdlService) Service() {}

type player interface {
	hardware.Audio
	Close() error
}

// load every clip and open the audio backend named in the preferences
func openAudio(env *environment.Environment, sync *mainSync, mute bool) (player, *audio.Library, audio.Banks, error) {
	dir := env.Prefs.AudioDir.String()
	if dir == "" {
		var err error
		dir, err = paths.ResourcePath("", "")
		if err != nil {
			return nil, nil, audio.Banks{}, err
		}
	}

	lib := audio.NewLibrary(dir)

	banks, err := audio.LoadBanks(lib)
	if err != nil {
		return nil, nil, banks, err
	}

	if mute {
		return audio.NewSilent(lib, pollclock.RealClock{}), lib, banks, nil
	}

	freq := env.Prefs.AudioFrequency.Get().(int)
	volume := env.Prefs.AudioVolume.Get().(float64)

	switch env.Prefs.AudioBackend.String() {
	case "sdl":
		sync.creator <- func() (Servicer, error) {
			s, err := audio.NewSDL(lib, freq, volume)
			if err != nil {
				return nil, err
			}
			return sdlService{SDL: s}, nil
		}

		select {
		case s := <-sync.creation:
			return s.(sdlService).SDL, lib, banks, nil
		case err := <-sync.creationError:
			return nil, nil, banks, err
		}

	case "beep":
		b, err := audio.NewBeep(lib, freq, volume)
		if err != nil {
			return nil, nil, banks, err
		}
		return b, lib, banks, nil
	}

	return nil, nil, banks, fmt.Errorf("unknown audio backend: %s", env.Prefs.AudioBackend.String())
}

// the built in cheat modes and any modes in the cheats file
func openRegistry(env *environment.Environment) (*cheats.Registry, error) {
	r := cheats.DefaultRegistry()
	if pth := env.Prefs.CheatsFile.String(); pth != "" {
		if err := r.LoadFile(pth); err != nil {
			return nil, err
		}
	}
	return r, nil
}

func play(md *modalflag.Modes, sync *mainSync, simulate bool) error {
	md.NewMode()

	c := addCommon(md)
	mute := md.AddBool("mute", false, "play no sound")
	viz := md.AddString("memviz", "", "write a graph of the game state to file after every game")
	wav := md.AddString("wav", "", "record the game audio to a wav file. AUTO for a generated filename")

	var stats *bool
	if statsview.Available() {
		stats = md.AddBool("statsview", false, fmt.Sprintf("run stats server (%s)", statsview.Address))
	}

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) > 0 {
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	if stats != nil && *stats {
		statsview.Launch(os.Stdout)
	}

	// the log can't be echoed to the terminal if the terminal is being used
	// to simulate the board
	echo := io.Writer(os.Stdout)
	if simulate {
		echo = nil
	}

	env, err := c.environment(echo)
	if err != nil {
		return err
	}

	// audio first so that missing clips are reported before the board is
	// opened
	aud, lib, banks, err := openAudio(env, sync, *mute)
	if err != nil {
		return err
	}
	defer aud.Close()

	var rec hardware.Audio = aud
	if *wav != "" {
		if strings.ToUpper(*wav) == "AUTO" {
			*wav = paths.UniqueFilename("beanboard", "wav")
		}
		aw := wavwriter.New(env, *wav, lib, aud)
		defer func() {
			if err := aw.EndMixing(); err != nil {
				logger.Log(env, "beanboard", err)
			}
		}()
		rec = aw
	}

	registry, err := openRegistry(env)
	if err != nil {
		return err
	}

	// the game can be played without a score record
	store, err := hiscore.Open(env, env.Prefs.HiscoreBackend.String(), env.Prefs.HiscoreFile.String())
	if err != nil {
		logger.Logf(env, "beanboard", "%v: scores will not be recorded", err)
		store = nil
	} else {
		defer store.Close()
	}

	var brd *board
	if simulate {
		brd, err = openDesk()
	} else {
		brd, err = openBoard(env)
	}
	if err != nil {
		return err
	}
	defer brd.Close()

	gw := hardware.NewGateway(env, brd.lights, brd.buttons, rec)
	poll := pollclock.NewPollClock(pollclock.RealClock{}, gw, gw)
	ctrl := session.NewController(env, gw, poll, banks, registry, store)

	if !simulate {
		ctrl.Modifiers().Out = os.Stdout
	}

	if *viz != "" {
		ctrl.AfterCycle = func() {
			if err := dump(ctrl, *viz); err != nil {
				logger.Log(env, "beanboard", err)
			}
		}
	}

	// the game loop handles interrupts from now on
	sync.state <- stateRequest{req: reqNoIntSig}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if brd.quit != nil {
		go func() {
			select {
			case <-brd.quit:
				stop()
			case <-ctx.Done():
			}
		}()
	}

	done := make(chan error, 1)
	go func() {
		done <- ctrl.Run(ctx)
	}()

	select {
	case err := <-done:
		if err == nil {
			return ctrl.Close()
		}

		// the lights can't be cleared if the light strip has gone
		if curated.Has(err, hardware.TransportFault) {
			if cerr := ctrl.Modifiers().Close(); cerr != nil {
				logger.Log(env, "beanboard", cerr)
			}
		} else if cerr := ctrl.Close(); cerr != nil {
			logger.Log(env, "beanboard", cerr)
		}

		return err

	case <-ctx.Done():
		// the controller is waiting on the board and can't be stopped
		// cleanly. the side shows and lights are safe to stop from here
		for _, p := range ctrl.Modifiers().Processes() {
			if err := p.Stop(); err != nil {
				logger.Log(env, "beanboard", err)
			}
		}
		_ = brd.lights.SetAll(beans.Off)
	}

	return nil
}

// write the memviz graph of the controller to a file
func dump(ctrl *session.Controller, pth string) error {
	f, err := os.Create(pth)
	if err != nil {
		return err
	}
	ctrl.Dump(f)
	return f.Close()
}

// lightshow runs the attract animation on the board without starting a game.
// useful for checking the wiring of the lights and buttons.
func lightshow(md *modalflag.Modes) error {
	md.NewMode()

	c := addCommon(md)
	passes := md.AddInt("passes", 1, "number of passes through the attract routines")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	env, err := c.environment(os.Stdout)
	if err != nil {
		return err
	}

	brd, err := openBoard(env)
	if err != nil {
		return err
	}
	defer brd.Close()

	gw := hardware.NewGateway(env, brd.lights, brd.buttons, audio.NewSilent(audio.NewLibrary(""), pollclock.RealClock{}))
	poll := pollclock.NewPollClock(pollclock.RealClock{}, gw, gw)
	e := attract.NewEngine(env, gw, poll)

	fmt.Printf("routines: %v\n", e.Routines())

	interrupted, err := e.Show(*passes)
	if err != nil {
		return err
	}

	if interrupted {
		fmt.Println("! light show interrupted")
	} else {
		fmt.Println("! light show completed")
	}

	return nil
}

// scores prints the score record.
func scores(md *modalflag.Modes) error {
	md.NewMode()

	c := addCommon(md)
	history := md.AddInt("history", 10, "number of recent games to list (sqlite only)")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	env, err := c.environment(os.Stdout)
	if err != nil {
		return err
	}

	store, err := hiscore.Open(env, env.Prefs.HiscoreBackend.String(), env.Prefs.HiscoreFile.String())
	if err != nil {
		return err
	}
	defer store.Close()

	r, err := store.Load()
	if err != nil {
		return err
	}
	fmt.Print(r.String())

	games, err := store.History(*history)
	if err != nil {
		return err
	}
	for _, g := range games {
		fmt.Println(g.String())
	}

	return nil
}
