// cmd/pacman-tty/main.go
package main

import (
	"flag"
	"log"
	"time"

	"github.com/gdamore/tcell/v2"

	"go-pacman/internal/app"
	"go-pacman/internal/component"
	"go-pacman/internal/config"
	"go-pacman/internal/logger"
	"go-pacman/internal/ui/tty"
)

const tickInterval = 50 * time.Millisecond

var moves = []map[rune]component.Direction{
	{'i': component.North, 'k': component.South, 'j': component.West, 'l': component.East},
	{'w': component.North, 's': component.South, 'a': component.West, 'd': component.East},
}

func main() {
	players := flag.Int("players", 1, "number of players (1-2)")
	defsPath := flag.String("defs", "", "player definitions JSON file")
	logPath := flag.String("log", "pacman-tty.log", "log file")
	flag.Parse()

	// stderr занят терминалом, поэтому журнал только в файл
	if err := logger.InitLogger(*logPath); err != nil {
		log.Fatal(err)
	}
	defer logger.SyncLogger()

	playerDefs, err := app.PlayerDefinitions(*defsPath, *players)
	if err != nil {
		log.Fatal(err)
	}
	game, err := app.NewGame(playerDefs, nil)
	if err != nil {
		log.Fatal(err)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatal(err)
	}
	if err := screen.Init(); err != nil {
		log.Fatal(err)
	}
	defer screen.Fini()

	events := make(chan tcell.Event, 16)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			events <- ev
		}
	}()

	view := tty.NewScoreView(1, 1)
	status := tcell.StyleDefault.Foreground(tcell.ColorYellow)
	ticker := time.NewTicker(tickInterval)
	defer ticker.Stop()
	last := time.Now()

	for {
		select {
		case ev := <-events:
			key, ok := ev.(*tcell.EventKey)
			if !ok {
				if _, resized := ev.(*tcell.EventResize); resized {
					screen.Sync()
				}
				continue
			}
			switch {
			case key.Key() == tcell.KeyEscape || key.Rune() == 'q':
				return
			case key.Key() == tcell.KeyEnter && game.IsOver():
				if game, err = app.NewGame(playerDefs, nil); err != nil {
					logger.Log.Errorf("restart: %v", err)
					return
				}
			case key.Rune() == 'x':
				game.KillPlayer(0)
			case key.Rune() == 'z':
				game.KillPlayer(1)
			case key.Rune() == ' ':
				game.EatPellet(0)
			case key.Rune() == 'e':
				game.EatPellet(1)
			default:
				for i, m := range moves {
					if dir, ok := m[key.Rune()]; ok {
						game.Turn(i, dir)
					}
				}
			}
		case now := <-ticker.C:
			dt := now.Sub(last).Seconds()
			if dt > config.MaxDeltaTime {
				dt = config.MaxDeltaTime
			}
			last = now
			game.Update(dt)

			screen.Clear()
			view.Draw(screen, game.ScorePanel)
			line := game.LastEvent()
			if game.IsOver() {
				line = "GAME OVER - Enter for a new game, q to quit"
			}
			for i, r := range line {
				screen.SetContent(1+i, 5, r, nil, status)
			}
			screen.Show()
		}
	}
}
