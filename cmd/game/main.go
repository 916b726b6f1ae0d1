// cmd/game/main.go
package main

import (
	"flag"
	"log"
	"net/http"
	"time"

	"go-pacman/internal/app"
	"go-pacman/internal/config"
	"go-pacman/internal/logger"
	"go-pacman/internal/network"
	"go-pacman/internal/state"

	"github.com/hajimehoshi/ebiten/v2"
)

type AppGame struct {
	stateMachine   *state.StateMachine
	lastUpdateTime time.Time
}

func (a *AppGame) Update() error {
	now := time.Now()
	deltaTime := now.Sub(a.lastUpdateTime).Seconds()
	if deltaTime > config.MaxDeltaTime {
		deltaTime = config.MaxDeltaTime
	}
	a.lastUpdateTime = now
	a.stateMachine.Update(deltaTime)
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

func main() {
	players := flag.Int("players", 1, "number of players (1-2)")
	defsPath := flag.String("defs", "", "player definitions JSON file")
	logPath := flag.String("log", "pacman.log", "log file, empty for stderr")
	spectate := flag.String("spectate", "", "serve the score feed on this address, e.g. :8080")
	seed := flag.Int64("seed", 0, "ghost choice seed, 0 for random")
	flag.Parse()

	if err := logger.InitLogger(*logPath); err != nil {
		log.Fatal(err)
	}
	defer logger.SyncLogger()

	playerDefs, err := app.PlayerDefinitions(*defsPath, *players)
	if err != nil {
		logger.Log.Fatalf("player definitions: %v", err)
	}

	var broadcaster app.Broadcaster
	if *spectate != "" {
		hub := network.NewHub()
		defer hub.Close()
		broadcaster = hub
		go func() {
			logger.Log.Infof("score feed on ws://%s/", *spectate)
			if err := http.ListenAndServe(*spectate, hub); err != nil {
				logger.Log.Errorf("spectate: %v", err)
			}
		}()
	}

	newGame := func() (*app.Game, error) {
		g, err := app.NewGame(playerDefs, broadcaster)
		if err == nil && *seed != 0 {
			g.SetSeed(*seed)
		}
		return g, err
	}
	game, err := newGame()
	if err != nil {
		logger.Log.Fatalf("new game: %v", err)
	}

	sm := state.NewStateMachine()
	sm.SetState(state.NewPlayState(sm, game, newGame))
	a := &AppGame{
		stateMachine:   sm,
		lastUpdateTime: time.Now(),
	}
	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle("Pac-Man")
	if err := ebiten.RunGame(a); err != nil {
		logger.Log.Fatal(err)
	}
}
