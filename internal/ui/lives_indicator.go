// internal/ui/lives_indicator.go
package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"go-pacman/internal/config"
)

const (
	LivesCols         = 5
	LivesPipRadius    = 4.0
	LivesPipSpacing   = 3.0
	livesPipColumnGap = LivesPipRadius*2 + LivesPipSpacing
)

var (
	livesPipColor  = color.RGBA{R: 255, G: 220, B: 0, A: 255}
	livesLostColor = color.RGBA{R: 40, G: 40, B: 40, A: 255}
)

// LivesIndicator рисует запас жизней кружками под колонкой игрока.
type LivesIndicator struct {
	X, Y float32
}

func NewLivesIndicator(x, y float32) *LivesIndicator {
	return &LivesIndicator{X: x, Y: y}
}

// PipCenter — центр кружка j
func (i *LivesIndicator) PipCenter(j int) (x, y float32) {
	row := j / LivesCols
	col := j % LivesCols
	x = i.X + float32(col)*livesPipColumnGap + LivesPipRadius
	y = i.Y + float32(row)*livesPipColumnGap + LivesPipRadius
	return x, y
}

// Pips — сколько кружков рисовать: не меньше начального запаса,
// лишние жизни добавляют кружки
func Pips(lives int) int {
	if lives > config.InitialLives {
		return lives
	}
	return config.InitialLives
}

// Draw рисует кружки: закрашенные по числу жизней, остальные тёмные
func (i *LivesIndicator) Draw(screen *ebiten.Image, lives int) {
	for j := 0; j < Pips(lives); j++ {
		x, y := i.PipCenter(j)
		fill := livesLostColor
		if j < lives {
			fill = livesPipColor
		}
		vector.DrawFilledCircle(screen, x, y, LivesPipRadius, fill, true)
		vector.StrokeCircle(screen, x, y, LivesPipRadius, 1, config.PanelBorderColor, true)
	}
}
