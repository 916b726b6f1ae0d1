package hud

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-pacman/internal/defs"
	"go-pacman/internal/level"
)

func newPlayers(t *testing.T, n int) []*level.Player {
	t.Helper()
	var players []*level.Player
	for i := 0; i < n; i++ {
		p, err := level.NewPlayerFromDefinition(0, defs.DefaultPlayerDefinition("pacman"))
		require.NoError(t, err)
		players = append(players, p)
	}
	return players
}

func TestNewScorePanelInitialLabels(t *testing.T) {
	panel := NewScorePanel(newPlayers(t, 2))

	require.Equal(t, 2, panel.Len())
	assert.Equal(t, "Player 1", panel.Title(0))
	assert.Equal(t, "Player 2", panel.Title(1))
	assert.Equal(t, "0", panel.ScoreLabel(0))
	assert.Equal(t, "3", panel.LivesLabel(1))
}

func TestRefreshDefaultFormatters(t *testing.T) {
	players := newPlayers(t, 1)
	players[0].RemoveLife()
	players[0].SetAlive(true)
	panel := NewScorePanel(players)

	panel.Refresh()

	assert.Equal(t, "Score: 0", panel.ScoreLabel(0))
	assert.Equal(t, "Lives: 2", panel.LivesLabel(0))
	assert.False(t, panel.ShowsDead(0))

	players[0].AddPoints(120)
	panel.Refresh()
	assert.Equal(t, "Score: 120", panel.ScoreLabel(0))
}

func TestRefreshDeadPlayerIgnoresLivesFormatter(t *testing.T) {
	players := newPlayers(t, 2)
	panel := NewScorePanel(players)
	panel.SetLivesFormatter(func(p *level.Player) string { return "custom" })

	players[1].RemoveLife()
	panel.Refresh()

	assert.Equal(t, "custom", panel.LivesLabel(0))
	assert.Equal(t, "You died.", panel.LivesLabel(1))
	assert.True(t, panel.ShowsDead(1))
	assert.Equal(t, "Score: 0", panel.ScoreLabel(1), "score label is still formatted for the dead")
}

func TestCustomScoreFormatter(t *testing.T) {
	players := newPlayers(t, 1)
	players[0].AddPoints(7)
	panel := NewScorePanel(players)

	panel.SetScoreFormatter(func(p *level.Player) string { return "pts=" + strconv.Itoa(p.Score()) })
	panel.Refresh()

	assert.Equal(t, "pts=7", panel.ScoreLabel(0))
}

func TestNilFormatterPanics(t *testing.T) {
	panel := NewScorePanel(newPlayers(t, 1))

	assert.Panics(t, func() { panel.SetScoreFormatter(nil) })
	assert.Panics(t, func() { panel.SetLivesFormatter(nil) })

	panel.Refresh()
	assert.Equal(t, "Score: 0", panel.ScoreLabel(0), "defaults survive a rejected formatter")
	assert.Equal(t, "Lives: 3", panel.LivesLabel(0))
}

func TestPlayerOrderIsFixed(t *testing.T) {
	players := newPlayers(t, 2)
	players[1].AddPoints(50)
	panel := NewScorePanel(players)

	players[0], players[1] = players[1], players[0]
	panel.Refresh()

	assert.Equal(t, "Score: 0", panel.ScoreLabel(0))
	assert.Equal(t, "Score: 50", panel.ScoreLabel(1))
}

func TestSnapshot(t *testing.T) {
	players := newPlayers(t, 2)
	panel := NewScorePanel(players)
	players[0].RemoveLife()
	panel.Refresh()

	snap := panel.Snapshot()
	want := []PlayerLabels{
		{Title: "Player 1", Score: "Score: 0", Lives: "You died.", Dead: true},
		{Title: "Player 2", Score: "Score: 0", Lives: "Lives: 3"},
	}
	assert.Equal(t, want, snap.Players)

	players[0].SetAlive(true)
	panel.Refresh()
	assert.Equal(t, "You died.", snap.Players[0].Lives, "snapshot is a copy")
}
