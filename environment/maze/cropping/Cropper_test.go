package cropping_test

import (
	"testing"

	"github.com/samuelfneumann/mazelearn/environment/maze/cropping"
	"github.com/samuelfneumann/mazelearn/environment/maze/game"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var art = []string{
	"##############################",
	"#                            #",
	"#                            #",
	"#                            #",
	"#                            #",
	"#              P             #",
	"#                            #",
	"#                            #",
	"#  a                       @ #",
	"##############################",
}

func board(t *testing.T, art []string) *game.Board {
	t.Helper()
	tm, err := game.ParseTileMap(art, game.DefaultLegend())
	require.NoError(t, err)
	return game.NewEngine(tm).Board()
}

func TestTrackingCentresOnSprite(t *testing.T) {
	c := cropping.NewTracking(5, 5, 'P', game.Position{}, ' ')
	cropped := c.Crop(board(t, art))

	rows, cols := cropped.Dims()
	assert.Equal(t, 5, rows)
	assert.Equal(t, 5, cols)
	assert.Equal(t, byte('P'), cropped.At(2, 2))
	assert.Equal(t, game.Position{Row: 3, Col: 13}, c.Corner())

	p, ok := cropped.Position('P')
	require.True(t, ok)
	assert.Equal(t, game.Position{Row: 2, Col: 2}, p)

	_, ok = cropped.Position('a')
	assert.False(t, ok)
}

func TestTrackingClampsToBoard(t *testing.T) {
	corner := []string{
		"######",
		"#P   #",
		"#    #",
		"#    #",
		"######",
	}
	c := cropping.NewTracking(3, 3, 'P', game.Position{}, ' ')
	cropped := c.Crop(board(t, corner))

	assert.Equal(t, game.Position{}, c.Corner())
	assert.Equal(t, "###\n#P \n#  ", cropped.String())
}

func TestTrackingPadsSmallBoards(t *testing.T) {
	small := []string{
		"###",
		"#P#",
		"###",
	}
	c := cropping.NewTracking(5, 7, 'P', game.Position{}, '.')
	cropped := c.Crop(board(t, small))

	want := "" +
		".......\n" +
		"..###..\n" +
		"..#P#..\n" +
		"..###..\n" +
		"......."
	assert.Equal(t, want, cropped.String())
}

func TestTrackingInitialOffset(t *testing.T) {
	c := cropping.NewTracking(5, 5, 'P', game.Position{Row: 1, Col: 2}, ' ')
	b := board(t, art)

	first := c.Crop(b)
	assert.Equal(t, byte('P'), first.At(3, 4))

	second := c.Crop(b)
	assert.Equal(t, byte('P'), second.At(2, 2))

	c.Reset()
	third := c.Crop(b)
	assert.Equal(t, byte('P'), third.At(3, 4))
}

func TestFixedPadsOutsideBoard(t *testing.T) {
	c := cropping.NewFixed(game.Position{Row: -1, Col: -1}, 3, 4, ' ')
	b := board(t, art)
	cropped := c.Crop(b)

	assert.Equal(t, "    \n ###\n #  ", cropped.String())
	assert.True(t, cropped.LayerAt(' ', 0, 0))
	assert.False(t, cropped.LayerAt('#', 0, 0))
	assert.True(t, cropped.LayerAt('#', 1, 1))

	// The source board is untouched
	assert.Equal(t, art[0], b.Rows()[0])
}

func TestFixedIgnoresMotion(t *testing.T) {
	tm, err := game.ParseTileMap(art, game.DefaultLegend())
	require.NoError(t, err)
	e := game.NewEngine(tm)

	c := cropping.NewFixed(game.Position{Row: 7, Col: 0}, 3, 10, ' ')
	before := c.Crop(e.Board())

	b, _, _, err := e.Step(3)
	require.NoError(t, err)
	after := c.Crop(b)

	assert.Equal(t, before.Rows()[0], after.Rows()[0])
	assert.Equal(t, before.Rows()[2], after.Rows()[2])
}
