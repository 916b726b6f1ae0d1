// internal/state/game_over_state.go
package state

import (
	"go-pacman/internal/config"
	"go-pacman/internal/logger"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// GameOverState показывает итоговую панель и ждёт Enter для новой партии
type GameOverState struct {
	sm   *StateMachine
	play *PlayState
}

func NewGameOverState(sm *StateMachine, play *PlayState) *GameOverState {
	return &GameOverState{sm: sm, play: play}
}

func (s *GameOverState) Enter() {}

func (s *GameOverState) Update(deltaTime float64) {
	// Анимация смерти доигрывается и после конца игры
	s.play.game.Level.Update(deltaTime)
	if !inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		return
	}
	if err := s.play.Restart(); err != nil {
		logger.Log.Errorf("restart: %v", err)
		return
	}
	s.sm.SetState(s.play)
}

func (s *GameOverState) Draw(screen *ebiten.Image) {
	s.play.Draw(screen)
	ebitenutil.DebugPrintAt(screen, "GAME OVER - press Enter", config.ScreenWidth/2-70, config.ScreenHeight/2)
}

func (s *GameOverState) Exit() {}
