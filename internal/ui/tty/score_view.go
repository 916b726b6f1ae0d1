// internal/ui/tty/score_view.go
package tty

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"go-pacman/internal/config"
	"go-pacman/internal/hud"
)

// ScoreView рисует панель счёта в терминале: колонка на игрока,
// строки — заголовок, счёт, жизни
type ScoreView struct {
	X, Y      int
	Style     tcell.Style
	DeadStyle tcell.Style
}

// NewScoreView создаёт вид панели в позиции (x, y)
func NewScoreView(x, y int) *ScoreView {
	return &ScoreView{
		X:         x,
		Y:         y,
		Style:     tcell.StyleDefault.Foreground(tcell.ColorWhite),
		DeadStyle: tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true),
	}
}

// ColumnWidth — ширина колонки в ячейках терминала по самой длинной подписи
func ColumnWidth(panel *hud.ScorePanel) int {
	width := runewidth.StringWidth(config.DiedText)
	for i := 0; i < panel.Len(); i++ {
		for _, s := range []string{panel.Title(i), panel.ScoreLabel(i), panel.LivesLabel(i)} {
			if w := runewidth.StringWidth(s); w > width {
				width = w
			}
		}
	}
	return width + config.TTYPanelColumnGap
}

// Draw выводит последние подписи панели; Refresh вызывает владелец панели
func (v *ScoreView) Draw(screen tcell.Screen, panel *hud.ScorePanel) {
	width := ColumnWidth(panel)
	for i := 0; i < panel.Len(); i++ {
		x := v.X + i*width
		livesStyle := v.Style
		if panel.ShowsDead(i) {
			livesStyle = v.DeadStyle
		}
		drawText(screen, x, v.Y, width, v.Style.Bold(true), panel.Title(i))
		drawText(screen, x, v.Y+1, width, v.Style, panel.ScoreLabel(i))
		drawText(screen, x, v.Y+2, width, livesStyle, panel.LivesLabel(i))
	}
}

// drawText пишет строку и забивает остаток колонки пробелами,
// чтобы короткая подпись не оставляла хвост от прежней
func drawText(screen tcell.Screen, x, y, width int, style tcell.Style, s string) {
	col := 0
	for _, r := range s {
		w := runewidth.RuneWidth(r)
		if w == 0 {
			continue
		}
		if col+w > width {
			break
		}
		screen.SetContent(x+col, y, r, nil, style)
		col += w
	}
	for ; col < width; col++ {
		screen.SetContent(x+col, y, ' ', nil, style)
	}
}
