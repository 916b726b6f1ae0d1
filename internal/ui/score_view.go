// internal/ui/score_view.go
package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"

	"go-pacman/internal/config"
	"go-pacman/internal/hud"
)

// ScoreView рисует панель счёта сеткой: колонка на игрока,
// строки — заголовок, счёт, жизни.
type ScoreView struct {
	X, Y     float32
	fontFace font.Face
}

// NewScoreView создаёт вид панели; nil-шрифт заменяется встроенным 7x13
func NewScoreView(x, y float32, face font.Face) *ScoreView {
	if face == nil {
		face = basicfont.Face7x13
	}
	return &ScoreView{X: x, Y: y, fontFace: face}
}

// ColumnX — левый край колонки i
func (v *ScoreView) ColumnX(i int) float32 {
	return v.X + config.PanelPadding + float32(i*config.PanelColumnWidth)
}

// Size — размер панели на n игроков вместе с рамкой
func (v *ScoreView) Size(n int) (w, h float32) {
	w = float32(n*config.PanelColumnWidth) + 2*config.PanelPadding
	h = float32(config.PanelRows*config.PanelRowHeight) + 2*config.PanelPadding
	return w, h
}

// Draw рисует последние подписи панели
func (v *ScoreView) Draw(screen *ebiten.Image, panel *hud.ScorePanel) {
	w, h := v.Size(panel.Len())
	vector.StrokeRect(screen, v.X, v.Y, w, h, config.PanelBorderWidth, config.PanelBorderColor, true)

	ascent := v.fontFace.Metrics().Ascent.Ceil()
	for i := 0; i < panel.Len(); i++ {
		x := int(v.ColumnX(i))
		y := int(v.Y) + config.PanelPadding + ascent
		var livesColor color.Color = config.TextLightColor
		if panel.ShowsDead(i) {
			livesColor = config.TextDeadColor
		}
		text.Draw(screen, panel.Title(i), v.fontFace, x, y, config.TextLightColor)
		text.Draw(screen, panel.ScoreLabel(i), v.fontFace, x, y+config.PanelRowHeight, config.TextLightColor)
		text.Draw(screen, panel.LivesLabel(i), v.fontFace, x, y+2*config.PanelRowHeight, livesColor)
	}
}
