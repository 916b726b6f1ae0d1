package assets

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTileColorStableAndShaded(t *testing.T) {
	first := TileColor("pacman_death", 0)
	assert.Equal(t, first, TileColor("pacman_death", 0))

	later := TileColor("pacman_death", 5)
	assert.LessOrEqual(t, later.R, first.R)
	assert.LessOrEqual(t, later.G, first.G)
	assert.LessOrEqual(t, later.B, first.B)
	assert.Equal(t, first.A, later.A)

	assert.Equal(t, TileColor("x", 100), TileColor("x", 12), "shade is clamped")
}
