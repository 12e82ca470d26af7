// Package humanui lets people play maze environments in a terminal
package humanui

import (
	"fmt"
	"image/color"
	"time"

	"github.com/gdamore/tcell"
	"github.com/pkg/errors"
	"github.com/samuelfneumann/mazelearn/environment/maze"
	"github.com/samuelfneumann/mazelearn/environment/maze/cropping"
	"github.com/samuelfneumann/mazelearn/environment/maze/game"
	"github.com/samuelfneumann/mazelearn/environment/maze/render"
	log "github.com/sirupsen/logrus"
)

// NoOp is the action taken when no key is pressed within the delay
const NoOp int = 4

// DefaultDelay is the default time to wait for a key press before
// playing a NoOp
const DefaultDelay = 100 * time.Millisecond

// gap is the number of columns between views
const gap = 2

// keys maps arrow keys to the actions which move the player
var keys = map[tcell.Key]int{
	tcell.KeyUp:    0,
	tcell.KeyDown:  1,
	tcell.KeyLeft:  2,
	tcell.KeyRight: 3,
}

// Option configures a UI
type Option func(*UI)

// WithDelay sets how long to wait for a key press before playing a
// NoOp. A delay of 0 waits for key presses indefinitely.
func WithDelay(d time.Duration) Option {
	return func(u *UI) {
		u.delay = d
	}
}

// WithPalette sets the colours the UI draws with
func WithPalette(p render.Palette) Option {
	return func(u *UI) {
		u.palette = p
	}
}

// WithLogger sets the logger for the UI
func WithLogger(l log.FieldLogger) Option {
	return func(u *UI) {
		u.log = l
	}
}

// UI is a terminal user interface for playing maze environments with
// the arrow keys. Pressing q quits.
type UI struct {
	screen  tcell.Screen
	delay   time.Duration
	palette render.Palette
	log     log.FieldLogger
}

// New returns a UI drawing to screen, which must already be initialised
func New(screen tcell.Screen, opts ...Option) *UI {
	u := &UI{
		screen:  screen,
		delay:   DefaultDelay,
		palette: render.DefaultPalette(),
		log:     log.StandardLogger(),
	}
	for _, opt := range opts {
		opt(u)
	}
	return u
}

// Play plays a single episode of env, returning the episode's return.
// The episode ends early if the player quits.
func (u *UI) Play(env *maze.Maze) (float64, error) {
	step, err := env.Reset()
	if err != nil {
		return 0, errors.Wrap(err, "play: could not reset maze")
	}

	croppers := env.Croppers()
	for _, c := range croppers {
		c.Reset()
	}

	events := make(chan tcell.Event)
	done := make(chan struct{})
	defer close(done)
	go u.poll(events, done)

	var ret float64
	u.show(env, croppers, ret)

	for !step.Last() {
		var timeout <-chan time.Time
		if u.delay > 0 {
			timeout = time.After(u.delay)
		}

		action := NoOp
		select {
		case ev, ok := <-events:
			if !ok {
				return ret, nil
			}
			a, quit, act := u.handle(ev, env, croppers, ret)
			if quit {
				u.log.WithField("return", ret).Info("player quit")
				return ret, nil
			}
			if !act {
				continue
			}
			action = a

		case <-timeout:
		}

		step, _, err = env.StepAction(action)
		if err != nil {
			return ret, errors.Wrap(err, "play: could not step maze")
		}
		ret += step.Reward
		u.show(env, croppers, ret)
	}

	u.log.WithFields(log.Fields{
		"return": ret,
		"turns":  env.Turn(),
		"cause":  step.Info[maze.InfoCause],
	}).Info("game over")
	return ret, nil
}

// handle interprets an event, returning the action it selects, whether
// it quits the game, and whether it selects an action at all
func (u *UI) handle(ev tcell.Event, env *maze.Maze,
	croppers []cropping.Cropper, ret float64) (int, bool, bool) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyRune {
			switch ev.Rune() {
			case 'q', 'Q':
				return 0, true, false
			}
			return 0, false, false
		}
		if ev.Key() == tcell.KeyCtrlC {
			return 0, true, false
		}
		a, ok := keys[ev.Key()]
		return a, false, ok

	case *tcell.EventResize:
		u.screen.Sync()
		u.show(env, croppers, ret)
	}
	return 0, false, false
}

// poll forwards screen events until the screen is finalised or done is
// closed
func (u *UI) poll(events chan<- tcell.Event, done <-chan struct{}) {
	defer close(events)
	for {
		ev := u.screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case events <- ev:
		case <-done:
			return
		}
	}
}

func (u *UI) show(env *maze.Maze, croppers []cropping.Cropper, ret float64) {
	board := env.Board()
	views := make([]*game.Board, len(croppers))
	for i, c := range croppers {
		views[i] = c.Crop(board)
	}

	status := fmt.Sprintf("turn %d  return %.0f  coins %d  "+
		"[arrows move, q quits]", env.Turn(), ret, env.CoinsRemaining())
	u.Draw(views, status)
}

// Draw draws boards side by side with status on the line beneath them
func (u *UI) Draw(boards []*game.Board, status string) {
	u.screen.Clear()

	left, height := 0, 0
	for _, b := range boards {
		rows, cols := b.Dims()
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				ch := b.At(r, c)
				u.screen.SetContent(left+c, r, rune(ch), nil, u.style(ch))
			}
		}
		left += cols + gap
		if rows > height {
			height = rows
		}
	}

	for i, r := range status {
		u.screen.SetContent(i, height+1, r, nil, tcell.StyleDefault)
	}
	u.screen.Show()
}

// style colours solid characters as blocks and characters with a
// background colour as glyphs
func (u *UI) style(ch byte) tcell.Style {
	fg := colour(u.palette.Colour(ch))
	if bg, ok := u.palette.BackgroundColour(ch); ok {
		return tcell.StyleDefault.Foreground(fg).Background(colour(bg))
	}
	return tcell.StyleDefault.Foreground(fg).Background(fg)
}

func colour(c color.RGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}
