// internal/state/play_state.go
package state

import (
	"go-pacman/internal/app"
	"go-pacman/internal/assets"
	"go-pacman/internal/component"
	"go-pacman/internal/config"
	"go-pacman/internal/sprite"
	"go-pacman/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Управление: у каждого игрока свои клавиши движения, смерти и еды
type playerKeys struct {
	moves map[ebiten.Key]component.Direction
	kill  ebiten.Key
	eat   ebiten.Key
}

var keyBindings = []playerKeys{
	{
		moves: map[ebiten.Key]component.Direction{
			ebiten.KeyArrowUp: component.North, ebiten.KeyArrowDown: component.South,
			ebiten.KeyArrowLeft: component.West, ebiten.KeyArrowRight: component.East,
		},
		kill: ebiten.KeyK,
		eat:  ebiten.KeySpace,
	},
	{
		moves: map[ebiten.Key]component.Direction{
			ebiten.KeyW: component.North, ebiten.KeyS: component.South,
			ebiten.KeyA: component.West, ebiten.KeyD: component.East,
		},
		kill: ebiten.KeyL,
		eat:  ebiten.KeyE,
	},
}

// NewGameFunc создаёт новую партию (при старте и после конца игры)
type NewGameFunc func() (*app.Game, error)

// PlayState — состояние игры
type PlayState struct {
	sm           *StateMachine
	game         *app.Game
	newGame      NewGameFunc
	sprites      *assets.SpriteCache
	scoreView    *ui.ScoreView
	playerView   *ui.PlayerView
	ghostSprites []sprite.Sprite
}

func NewPlayState(sm *StateMachine, game *app.Game, newGame NewGameFunc) *PlayState {
	sprites := assets.NewSpriteCache(config.TileSize)
	s := &PlayState{
		sm:         sm,
		game:       game,
		newGame:    newGame,
		sprites:    sprites,
		scoreView:  ui.NewScoreView(config.PanelX, config.PanelY, nil),
		playerView: ui.NewPlayerView(0, float64(config.ScreenHeight/2), sprites),
	}
	for _, g := range game.Ghosts {
		s.ghostSprites = append(s.ghostSprites, sprite.NewStill(g.Name))
	}
	return s
}

func (s *PlayState) Enter() {}

func (s *PlayState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		s.sm.SetState(NewPauseState(s.sm, s))
		return
	}
	for i, keys := range keyBindings {
		for key, dir := range keys.moves {
			if inpututil.IsKeyJustPressed(key) {
				s.game.Turn(i, dir)
			}
		}
		if inpututil.IsKeyJustPressed(keys.kill) {
			s.game.KillPlayer(i)
		}
		if inpututil.IsKeyJustPressed(keys.eat) {
			s.game.EatPellet(i)
		}
	}

	s.game.Update(deltaTime)

	if s.game.IsOver() {
		s.sm.SetState(NewGameOverState(s.sm, s))
	}
}

func (s *PlayState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	for i, g := range s.game.Ghosts {
		pos := g.Movement().Position
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(float64(pos.X*config.TileSize), s.playerView.OffsetY+float64(pos.Y*config.TileSize))
		screen.DrawImage(s.sprites.Image(s.ghostSprites[i]), op)
	}
	for _, p := range s.game.Players {
		s.playerView.Draw(screen, p)
	}
	s.scoreView.Draw(screen, s.game.ScorePanel)
	_, panelH := s.scoreView.Size(s.game.ScorePanel.Len())
	for i, p := range s.game.Players {
		lives := ui.NewLivesIndicator(s.scoreView.ColumnX(i), config.PanelY+panelH+config.PanelPadding)
		lives.Draw(screen, p.Lives())
	}
	ebitenutil.DebugPrintAt(screen, s.game.LastEvent(), config.PanelX, config.ScreenHeight-20)
}

func (s *PlayState) Exit() {}

// Restart начинает новую партию в этом же состоянии
func (s *PlayState) Restart() error {
	game, err := s.newGame()
	if err != nil {
		return err
	}
	s.sprites.Cleanup()
	*s = *NewPlayState(s.sm, game, s.newGame)
	return nil
}
