// internal/ui/player_view.go
package ui

import (
	"github.com/hajimehoshi/ebiten/v2"

	"go-pacman/internal/assets"
	"go-pacman/internal/config"
	"go-pacman/internal/level"
)

// PlayerView рисует текущий спрайт игрока в его клетке
type PlayerView struct {
	OffsetX, OffsetY float64
	sprites          *assets.SpriteCache
}

func NewPlayerView(offsetX, offsetY float64, sprites *assets.SpriteCache) *PlayerView {
	return &PlayerView{OffsetX: offsetX, OffsetY: offsetY, sprites: sprites}
}

func (v *PlayerView) Draw(screen *ebiten.Image, player *level.Player) {
	visual := player.CurrentVisual()
	if visual == nil {
		return
	}
	pos := player.Movement().Position
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(v.OffsetX+float64(pos.X*config.TileSize), v.OffsetY+float64(pos.Y*config.TileSize))
	screen.DrawImage(v.sprites.Image(visual), op)
}
