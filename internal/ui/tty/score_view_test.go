package tty

import (
	"strconv"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-pacman/internal/defs"
	"go-pacman/internal/hud"
	"go-pacman/internal/level"
)

func newScreen(t *testing.T) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	screen.SetSize(80, 10)
	t.Cleanup(screen.Fini)
	return screen
}

func readLine(screen tcell.Screen, x, y, n int) string {
	var out []rune
	for i := 0; i < n; i++ {
		r, _, _, _ := screen.GetContent(x+i, y)
		out = append(out, r)
	}
	return string(out)
}

func newPanel(t *testing.T, n int) (*hud.ScorePanel, []*level.Player) {
	t.Helper()
	var players []*level.Player
	for i := 0; i < n; i++ {
		p, err := level.NewPlayerFromDefinition(0, defs.DefaultPlayerDefinition("pacman"))
		require.NoError(t, err)
		players = append(players, p)
	}
	return hud.NewScorePanel(players), players
}

func TestDrawColumns(t *testing.T) {
	screen := newScreen(t)
	panel, players := newPanel(t, 2)
	players[0].AddPoints(30)
	players[1].RemoveLife()
	panel.Refresh()

	view := NewScoreView(1, 2)
	view.Draw(screen, panel)

	width := ColumnWidth(panel)
	assert.Equal(t, 11, width)
	assert.Equal(t, "Player 1", readLine(screen, 1, 2, 8))
	assert.Equal(t, "Score: 30", readLine(screen, 1, 3, 9))
	assert.Equal(t, "Lives: 3", readLine(screen, 1, 4, 8))
	assert.Equal(t, "Player 2", readLine(screen, 1+width, 2, 8))
	assert.Equal(t, "You died.", readLine(screen, 1+width, 4, 9))

	_, _, style, _ := screen.GetContent(1+width, 4)
	assert.Equal(t, view.DeadStyle, style)
}

func TestDrawClearsShorterLabel(t *testing.T) {
	screen := newScreen(t)
	panel, players := newPanel(t, 1)
	view := NewScoreView(0, 0)

	players[0].RemoveLife()
	panel.Refresh()
	view.Draw(screen, panel)
	require.Equal(t, "You died.", readLine(screen, 0, 2, 9))

	players[0].SetAlive(true)
	panel.Refresh()
	view.Draw(screen, panel)
	assert.Equal(t, "Lives: 2 ", readLine(screen, 0, 2, 9))
}

func TestColumnWidthCountsCells(t *testing.T) {
	screen := newScreen(t)
	panel, players := newPanel(t, 2)
	panel.SetScoreFormatter(func(p *level.Player) string { return "Счёт: " + strconv.Itoa(p.Score()) })
	players[0].AddPoints(30)
	panel.Refresh()

	view := NewScoreView(0, 0)
	view.Draw(screen, panel)

	width := ColumnWidth(panel)
	assert.Equal(t, 11, width)
	assert.Equal(t, "Счёт: 30", readLine(screen, 0, 1, 8))
	assert.Equal(t, "Player 2", readLine(screen, width, 0, 8))
}

func TestWideRunesTakeTwoCells(t *testing.T) {
	screen := newScreen(t)
	panel, _ := newPanel(t, 1)
	panel.SetScoreFormatter(func(p *level.Player) string { return "得分得分得分 " + strconv.Itoa(p.Score()) })
	panel.Refresh()

	assert.Equal(t, 14+2, ColumnWidth(panel))

	NewScoreView(0, 0).Draw(screen, panel)
	r, _, _, _ := screen.GetContent(0, 1)
	assert.Equal(t, '得', r)
	r, _, _, _ = screen.GetContent(2, 1)
	assert.Equal(t, '分', r)
}
