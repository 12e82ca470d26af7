package game

// DefaultCoinReward is the reward for collecting a single coin
const DefaultCoinReward float64 = 100

// CoinDrape tracks the coins left on the map. Coins are only ever
// removed from the drape during an episode.
type CoinDrape struct {
	char    byte
	curtain *Layer
	reward  float64
}

func newCoinDrape(char byte, coins *Layer, reward float64) *CoinDrape {
	return &CoinDrape{char, coins, reward}
}

// Character returns the map character coins are drawn with
func (c *CoinDrape) Character() byte {
	return c.char
}

// Curtain returns a copy of the coin layer
func (c *CoinDrape) Curtain() *Layer {
	return c.curtain.Clone()
}

// Remaining returns the number of coins left
func (c *CoinDrape) Remaining() int {
	return c.curtain.Count()
}

// update collects the coin under the player, if any, returning the
// reward earned and whether the last coin was just collected
func (c *CoinDrape) update(player Position) (reward float64, cleared bool) {
	if !c.curtain.AtPosition(player) {
		return 0, false
	}

	c.curtain.Set(player.Row, player.Col, false)
	return c.reward, !c.curtain.Any()
}
