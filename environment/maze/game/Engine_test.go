package game_test

import (
	"errors"
	"testing"

	"github.com/samuelfneumann/mazelearn/environment/maze/game"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

const (
	north = 0
	south = 1
	west  = 2
	east  = 3
	noop  = 4
)

func newEngine(t *testing.T, art []string) *game.Engine {
	t.Helper()
	tm, err := game.ParseTileMap(art, game.DefaultLegend())
	require.NoError(t, err)
	return game.NewEngine(tm)
}

func TestPlayerMovesAwayWithoutReward(t *testing.T) {
	art := []string{
		"##############################",
		"#P                           #",
		"#                            #",
		"#                            #",
		"#                            #",
		"#                            #",
		"#                            #",
		"#                            #",
		"#                          @ #",
		"##############################",
	}
	e := newEngine(t, art)

	var rewards []float64
	var dones []bool
	for i := 0; i < 3; i++ {
		_, r, done, err := e.Step(east)
		require.NoError(t, err)
		rewards = append(rewards, r)
		dones = append(dones, done)
	}

	assert.Equal(t, []float64{0, 0, 0}, rewards)
	assert.Equal(t, []bool{false, false, false}, dones)
	assert.Equal(t, game.Position{Row: 1, Col: 4}, e.Player().Position())
}

func TestCoinCollection(t *testing.T) {
	art := []string{
		"#######",
		"#P@ @ #",
		"#######",
	}
	e := newEngine(t, art)

	board, r, done, err := e.Step(east)
	require.NoError(t, err)
	assert.Equal(t, 100.0, r)
	assert.False(t, done)
	assert.False(t, board.LayerAt('@', 1, 2))
	assert.False(t, e.Coins().Curtain().At(1, 2))
	assert.Equal(t, 1, e.Coins().Remaining())

	_, r, done, err = e.Step(east)
	require.NoError(t, err)
	assert.Equal(t, 0.0, r)
	assert.False(t, done)

	_, r, done, err = e.Step(east)
	require.NoError(t, err)
	assert.Equal(t, 100.0, r)
	assert.True(t, done)
	assert.Equal(t, game.CauseCleared, e.Cause())
	assert.Equal(t, 0, e.Coins().Remaining())
}

func TestLastCoinEndsEpisodeRegardlessOfPatrollers(t *testing.T) {
	art := []string{
		"#######",
		"#P@  a#",
		"#######",
	}
	e := newEngine(t, art)

	_, r, done, err := e.Step(east)
	require.NoError(t, err)
	assert.Equal(t, 100.0, r)
	assert.True(t, done)
	assert.Equal(t, game.Terminated, e.State())
}

func TestPatrollerCollisionEndsEpisode(t *testing.T) {
	art := []string{
		"######",
		"#P a #",
		"######",
	}
	e := newEngine(t, art)

	for turn := 1; turn <= 3; turn++ {
		_, r, done, err := e.Step(noop)
		require.NoError(t, err)
		assert.Equal(t, 0.0, r)
		assert.False(t, done, "turn %d", turn)
	}

	board, r, done, err := e.Step(noop)
	require.NoError(t, err)
	assert.Equal(t, 0.0, r)
	assert.True(t, done)
	assert.Equal(t, game.CauseCollision, e.Cause())

	a, _ := board.Position('a')
	p, _ := board.Position('P')
	assert.Equal(t, p, a)
}

func TestPlayerWalkingIntoPatrollerEndsEpisode(t *testing.T) {
	art := []string{
		"#######",
		"#Pa ###",
		"#######",
	}
	e := newEngine(t, art)

	// Turn 1 is odd, so the patroller stays put and the player walks
	// onto it.
	_, _, done, err := e.Step(east)
	require.NoError(t, err)
	assert.True(t, done)
	assert.Equal(t, game.CauseCollision, e.Cause())
	assert.Equal(t, e.Patrollers()[0].Position(), e.Player().Position())
}

func TestSimultaneousCollisionAndClearance(t *testing.T) {
	art := []string{
		"########",
		"#P @a  #",
		"########",
	}
	e := newEngine(t, art)

	_, r, done, err := e.Step(east)
	require.NoError(t, err)
	assert.Equal(t, 0.0, r)
	assert.False(t, done)

	_, r, done, err = e.Step(east)
	require.NoError(t, err)
	assert.Equal(t, 100.0, r)
	assert.True(t, done)
	assert.Equal(t, game.CauseCollision|game.CauseCleared, e.Cause())
}

func TestStepAfterTerminationFails(t *testing.T) {
	art := []string{
		"#####",
		"#P@ #",
		"#####",
	}
	e := newEngine(t, art)

	_, _, done, err := e.Step(east)
	require.NoError(t, err)
	require.True(t, done)

	for i := 0; i < 2; i++ {
		_, r, done, err := e.Step(east)
		require.Error(t, err)
		var stateErr *game.InvalidStateError
		assert.True(t, errors.As(err, &stateErr))
		assert.Equal(t, 1, stateErr.Turn)
		assert.Equal(t, 0.0, r)
		assert.True(t, done)
	}

	// Resetting makes the engine playable again
	board := e.Reset()
	assert.Equal(t, 0, e.Turn())
	assert.Equal(t, game.Running, e.State())
	assert.True(t, board.LayerAt('@', 1, 2))

	_, _, _, err = e.Step(east)
	assert.NoError(t, err)
}

func TestWallsBlockMovement(t *testing.T) {
	art := []string{
		"#####",
		"#   #",
		"# # #",
		"#   #",
		"#####",
	}
	offsets := map[int]game.Direction{
		north: game.North,
		south: game.South,
		west:  game.West,
		east:  game.East,
	}

	for r := range art {
		for c := range art[r] {
			if art[r][c] == '#' {
				continue
			}

			placed := append([]string(nil), art...)
			row := []byte(placed[r])
			row[c] = 'P'
			placed[r] = string(row)

			for action, d := range offsets {
				start := game.Position{Row: r, Col: c}
				next := start.Add(d)
				if art[next.Row][next.Col] != '#' {
					continue
				}

				e := newEngine(t, placed)
				for i := 0; i < 2; i++ {
					_, _, _, err := e.Step(action)
					require.NoError(t, err)
					assert.Equal(t, start, e.Player().Position(),
						"moving %v from %v", d, start)
				}
			}
		}
	}
}

func TestMapEdgeBlocksMovement(t *testing.T) {
	e := newEngine(t, []string{"P  "})

	_, _, _, err := e.Step(west)
	require.NoError(t, err)
	assert.Equal(t, game.Position{Row: 0, Col: 0}, e.Player().Position())

	_, _, _, err = e.Step(north)
	require.NoError(t, err)
	assert.Equal(t, game.Position{Row: 0, Col: 0}, e.Player().Position())
}

func TestInvalidActionsAreNoOps(t *testing.T) {
	art := []string{
		"#####",
		"#   #",
		"# P #",
		"#   #",
		"#####",
	}
	e := newEngine(t, art)
	start := e.Player().Position()

	for _, action := range []int{-1, 4, 5, 99} {
		_, r, done, err := e.Step(action)
		require.NoError(t, err)
		assert.Equal(t, 0.0, r)
		assert.False(t, done)
		assert.Equal(t, start, e.Player().Position())
	}
	assert.Equal(t, 4, e.Turn())
}

func TestPatrollerMovesOnlyOnEvenTurns(t *testing.T) {
	art := []string{
		"######",
		"#a   #",
		"#P####",
		"######",
	}
	e := newEngine(t, art)
	patroller := e.Patrollers()[0]

	// Columns after each even turn: a triangle wave between the walls
	want := []int{2, 3, 4, 3, 2, 1, 2, 3, 4, 3, 2, 1}
	var got []int

	prev := patroller.Position()
	for turn := 1; turn <= 2*len(want); turn++ {
		_, _, done, err := e.Step(noop)
		require.NoError(t, err)
		require.False(t, done)

		pos := patroller.Position()
		assert.False(t, e.TileMap().Walls().AtPosition(pos))
		assert.Equal(t, 1, pos.Row)

		if turn%2 == 1 {
			assert.Equal(t, prev, pos, "patroller moved on odd turn %d",
				turn)
		} else {
			assert.NotEqual(t, prev, pos, "patroller stuck on even turn %d",
				turn)
			got = append(got, pos.Col)
		}
		prev = pos
	}

	assert.Equal(t, want, got)
}

func TestNextHeading(t *testing.T) {
	tests := []struct {
		heading            game.Heading
		wallWest, wallEast bool
		want               game.Heading
	}{
		{game.HeadingEast, false, false, game.HeadingEast},
		{game.HeadingWest, false, false, game.HeadingWest},
		{game.HeadingEast, false, true, game.HeadingWest},
		{game.HeadingWest, false, true, game.HeadingWest},
		{game.HeadingWest, true, false, game.HeadingEast},
		{game.HeadingEast, true, false, game.HeadingEast},
		{game.HeadingEast, true, true, game.HeadingEast},
		{game.HeadingWest, true, true, game.HeadingEast},
	}

	for _, test := range tests {
		got := game.NextHeading(test.heading, test.wallWest, test.wallEast)
		assert.Equal(t, test.want, got, "%+v", test)
	}
}

func TestInitialHeading(t *testing.T) {
	assert.Equal(t, game.HeadingWest, game.InitialHeading('a'))
	assert.Equal(t, game.HeadingEast, game.InitialHeading('b'))
	assert.Equal(t, game.HeadingWest, game.InitialHeading('c'))
}

func TestCoinsNeverIncrease(t *testing.T) {
	art := []string{
		"##########",
		"#P @ @ @ #",
		"# @ @ @  #",
		"###  a ###",
		"# @ @ @ @#",
		"##########",
	}
	e := newEngine(t, art)
	rng := rand.New(rand.NewSource(1923))

	for episode := 0; episode < 20; episode++ {
		e.Reset()
		prev := e.Coins().Remaining()

		for step := 0; step < 500; step++ {
			_, _, done, err := e.Step(rng.Intn(game.Actions))
			require.NoError(t, err)

			remaining := e.Coins().Remaining()
			assert.LessOrEqual(t, remaining, prev)
			prev = remaining

			if remaining == 0 {
				assert.True(t, done)
			}

			player := e.Player().Position()
			for _, p := range e.Patrollers() {
				if p.Position() == player {
					assert.True(t, done)
				}
			}

			if done {
				break
			}
		}
	}
}

func TestRenderZOrder(t *testing.T) {
	art := []string{
		"######",
		"#Pba #",
		"######",
	}
	e := newEngine(t, art)
	board := e.Board()

	assert.Equal(t, "######\n#Pba #\n######", board.String())
	assert.True(t, board.LayerAt(' ', 1, 4))
	assert.True(t, board.LayerAt('#', 0, 0))

	p, ok := board.Position('P')
	require.True(t, ok)
	assert.Equal(t, game.Position{Row: 1, Col: 1}, p)
}
