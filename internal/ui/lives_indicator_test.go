package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"go-pacman/internal/config"
)

func TestPipsNeverBelowInitialLives(t *testing.T) {
	assert.Equal(t, config.InitialLives, Pips(0))
	assert.Equal(t, config.InitialLives, Pips(-2))
	assert.Equal(t, 7, Pips(7))
}

func TestPipCenterWrapsRows(t *testing.T) {
	ind := NewLivesIndicator(10, 20)

	x0, y0 := ind.PipCenter(0)
	assert.Equal(t, float32(10+LivesPipRadius), x0)
	assert.Equal(t, float32(20+LivesPipRadius), y0)

	x1, y1 := ind.PipCenter(1)
	assert.Equal(t, x0+livesPipColumnGap, x1)
	assert.Equal(t, y0, y1)

	xw, yw := ind.PipCenter(LivesCols)
	assert.Equal(t, x0, xw)
	assert.Equal(t, y0+livesPipColumnGap, yw)
}
