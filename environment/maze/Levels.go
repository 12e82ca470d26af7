package maze

import (
	"github.com/samuelfneumann/mazelearn/environment/maze/cropping"
	"github.com/samuelfneumann/mazelearn/environment/maze/game"
)

// Level is a maze level: the tile map the game is played on together
// with the windows that human players view it through
type Level struct {
	Name   string
	Art    []string
	Legend game.Legend

	// The player view tracks the player. For dramatic effect, the first
	// frame of the player view is shifted so that the player sits
	// StarterOffset rows and columns away from its centre.
	ViewRows, ViewCols int
	StarterOffset      game.Position

	// The teaser view stays fixed on a tantalising part of the level
	TeaserCorner           game.Position
	TeaserRows, TeaserCols int
}

// TileMap parses the Level's tile map
func (l Level) TileMap() (*game.TileMap, error) {
	return game.ParseTileMap(l.Art, l.Legend)
}

// Croppers returns the croppers of the Level's human views: the player
// view first, then the teaser view
func (l Level) Croppers() []cropping.Cropper {
	return []cropping.Cropper{
		cropping.NewTracking(l.ViewRows, l.ViewCols, l.Legend.Player,
			l.StarterOffset, l.Legend.Floor),
		cropping.NewFixed(l.TeaserCorner, l.TeaserRows, l.TeaserCols,
			l.Legend.Floor),
	}
}

// Dense is a level with three corridors full of coins, two of them
// guarded by patrollers.
var Dense = Level{
	Name: "dense",
	Art: []string{
		"##############################",
		"# P @ @ @ @ @ @ @ @ @ @ @ @ @#",
		"#  @ @ @ @ @ @ @ @ @ @ @ @ @ #",
		"#######  a    ################",
		"# @ @ @ @ @ @ @ @ @ @ @ @ @ @#",
		"#  @ @ @ @ @ @ @ @ @ @ @ @ @ #",
		"###########    b  ############",
		"# @ @ @ @ @ @ @ @ @ @ @ @ @ @#",
		"#  @ @ @ @ @ @ @ @ @ @ @ @ @ #",
		"##############################",
	},
	Legend:     game.DefaultLegend(),
	ViewRows:   10,
	ViewCols:   30,
	TeaserRows: 10,
	TeaserCols: 31,
}

// Sparse is an open maze with a single coin hidden far from the player
var Sparse = Level{
	Name: "sparse",
	Art: []string{
		"###########   #################",
		"#         #   #               #",
		"#  ####   #####   #############",
		"#  #  #                       #",
		"#  #  #   ######  #######     #",
		"#  #  #####    #  #     #     #",
		"#  #           #  #     #     #",
		"#  #           #  #     #     #",
		"#P #           ####     #  @  #",
		"####                    #######",
	},
	Legend:     game.DefaultLegend(),
	ViewRows:   10,
	ViewCols:   30,
	TeaserRows: 10,
	TeaserCols: 31,
}

// Simple is a single open room with a handful of coins and no
// patrollers
var Simple = Level{
	Name: "simple",
	Art: []string{
		"##############################",
		"#P       @                   #",
		"#                            #",
		"#   @                @       #",
		"#                            #",
		"#            @               #",
		"#                            #",
		"#        @              @    #",
		"#                            #",
		"##############################",
	},
	Legend:     game.DefaultLegend(),
	ViewRows:   10,
	ViewCols:   30,
	TeaserRows: 10,
	TeaserCols: 31,
}
