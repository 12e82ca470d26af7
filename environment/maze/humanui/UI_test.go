package humanui_test

import (
	"strings"
	"testing"

	"github.com/gdamore/tcell"
	"github.com/samuelfneumann/mazelearn/environment/maze"
	"github.com/samuelfneumann/mazelearn/environment/maze/game"
	"github.com/samuelfneumann/mazelearn/environment/maze/humanui"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func screen(t *testing.T, width, height int) tcell.SimulationScreen {
	t.Helper()
	scr := tcell.NewSimulationScreen("")
	require.NoError(t, scr.Init())
	scr.SetSize(width, height)
	t.Cleanup(scr.Fini)
	return scr
}

func lines(scr tcell.SimulationScreen) []string {
	cells, width, height := scr.GetContents()
	out := make([]string, height)
	for r := 0; r < height; r++ {
		var sb strings.Builder
		for c := 0; c < width; c++ {
			runes := cells[r*width+c].Runes
			if len(runes) == 0 {
				sb.WriteRune(' ')
				continue
			}
			sb.WriteRune(runes[0])
		}
		out[r] = sb.String()
	}
	return out
}

func TestPlayCollectsCoins(t *testing.T) {
	scr := screen(t, 80, 14)
	env, _, err := maze.Make("simple", 1)
	require.NoError(t, err)

	// The first coin is eight steps east of the player
	for i := 0; i < 8; i++ {
		scr.InjectKey(tcell.KeyRight, 0, tcell.ModNone)
	}
	scr.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)

	ui := humanui.New(scr, humanui.WithDelay(0))
	ret, err := ui.Play(env)
	require.NoError(t, err)

	assert.Equal(t, game.DefaultCoinReward, ret)
	assert.Equal(t, 8, env.Turn())

	got := lines(scr)
	assert.True(t, strings.HasPrefix(got[1], "#        P"),
		"got %q", got[1])
	assert.True(t, strings.HasPrefix(got[11], "turn 8  return 100"),
		"got %q", got[11])
}

func TestPlayEndsWithEpisode(t *testing.T) {
	scr := screen(t, 40, 8)
	level := maze.Simple
	level.Art = []string{
		"#####",
		"#P@ #",
		"#####",
	}
	env, _, err := maze.New(level, 1)
	require.NoError(t, err)

	scr.InjectKey(tcell.KeyRight, 0, tcell.ModNone)

	ui := humanui.New(scr, humanui.WithDelay(0))
	ret, err := ui.Play(env)
	require.NoError(t, err)

	assert.Equal(t, game.DefaultCoinReward, ret)
	last := env.CurrentTimeStep()
	assert.True(t, last.Last())
}

func TestUnmappedKeysAreIgnored(t *testing.T) {
	scr := screen(t, 80, 14)
	env, _, err := maze.Make("simple", 1)
	require.NoError(t, err)

	scr.InjectKey(tcell.KeyRune, 'x', tcell.ModNone)
	scr.InjectKey(tcell.KeyEnter, 0, tcell.ModNone)
	scr.InjectKey(tcell.KeyDown, 0, tcell.ModNone)
	scr.InjectKey(tcell.KeyRune, 'Q', tcell.ModNone)

	ui := humanui.New(scr, humanui.WithDelay(0))
	_, err = ui.Play(env)
	require.NoError(t, err)

	assert.Equal(t, 1, env.Turn())
	pos, ok := env.Board().Position('P')
	require.True(t, ok)
	assert.Equal(t, game.Position{Row: 2, Col: 1}, pos)
}

func TestDrawSideBySide(t *testing.T) {
	scr := screen(t, 20, 6)
	tm, err := game.ParseTileMap([]string{
		"####",
		"#P@#",
		"####",
	}, game.DefaultLegend())
	require.NoError(t, err)
	b := game.NewEngine(tm).Board()

	humanui.New(scr).Draw([]*game.Board{b, b}, "ok")

	got := lines(scr)
	assert.Equal(t, "####  ####          ", got[0])
	assert.Equal(t, "#P@#  #P@#          ", got[1])
	assert.Equal(t, "ok                  ", got[4])
}
