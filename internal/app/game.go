// internal/app/game.go
package app

import (
	"fmt"

	"go-pacman/internal/component"
	"go-pacman/internal/config"
	"go-pacman/internal/defs"
	"go-pacman/internal/event"
	"go-pacman/internal/hud"
	"go-pacman/internal/level"
	"go-pacman/internal/logger"
	"go-pacman/internal/types"
	"go-pacman/internal/utils"
)

// Broadcaster получает снимок панели после каждого обновления
type Broadcaster interface {
	Broadcast(snapshot hud.Snapshot)
}

// Game holds the main game state and logic.
type Game struct {
	Level           *level.Level
	Players         []*level.Player
	Ghosts          []*level.Ghost
	ScorePanel      *hud.ScorePanel
	EventDispatcher *event.Dispatcher

	broadcaster Broadcaster
	rng         *utils.PRNGService
	nextID      types.EntityID
	gameTime    float64
	over        bool
	lastEvent   string
}

// NewGame создаёт игру с игроком на каждое описание и запускает уровень
func NewGame(playerDefs []defs.PlayerDefinition, broadcaster Broadcaster) (*Game, error) {
	if len(playerDefs) == 0 {
		return nil, fmt.Errorf("no player definitions")
	}
	dispatcher := event.NewDispatcher()
	g := &Game{
		Level:           level.NewLevel(dispatcher, config.RespawnDelay),
		EventDispatcher: dispatcher,
		broadcaster:     broadcaster,
		rng:             utils.NewPRNGService(0),
		nextID:          1,
	}

	for i, def := range playerDefs {
		p, err := level.NewPlayerFromDefinition(g.newEntity(), def)
		if err != nil {
			return nil, err
		}
		p.Movement().Position = component.Position{X: 2 + i*4, Y: 6}
		g.Level.RegisterPlayer(p)
		g.Players = append(g.Players, p)
	}
	for i, name := range []string{"blinky", "pinky", "inky", "clyde"} {
		g.Ghosts = append(g.Ghosts, level.NewGhost(g.newEntity(), name, 2+i*4, 2))
	}
	g.ScorePanel = hud.NewScorePanel(g.Players)

	listener := &GameEventListener{game: g}
	dispatcher.SubscribeAll(listener,
		event.LifeLost, event.PlayerRevived, event.LevelRestarted, event.GameOver, event.PointsScored)

	g.Level.Start()
	g.ScorePanel.Refresh()
	logger.Log.Infof("game started with %d player(s)", len(g.Players))
	return g, nil
}

func (g *Game) newEntity() types.EntityID {
	id := g.nextID
	g.nextID++
	return id
}

// Update продвигает уровень, обновляет панель и рассылает её снимок
func (g *Game) Update(deltaTime float64) {
	g.gameTime += deltaTime
	g.Level.Update(deltaTime)
	g.ScorePanel.Refresh()
	if g.broadcaster != nil {
		g.broadcaster.Broadcast(g.ScorePanel.Snapshot())
	}
}

// SetSeed делает выбор призраков повторяемым
func (g *Game) SetSeed(seed int64) {
	g.rng = utils.NewPRNGService(seed)
}

// KillPlayer — столкновение игрока i со случайным призраком
func (g *Game) KillPlayer(i int) {
	if i < 0 || i >= len(g.Players) {
		return
	}
	ghost := g.Ghosts[g.rng.ChooseIndex(len(g.Ghosts))]
	g.Level.Collide(g.Players[i], ghost)
}

// EatPellet начисляет игроку i очки за съеденную точку
func (g *Game) EatPellet(i int) {
	if i < 0 || i >= len(g.Players) || !g.Level.IsInProgress() || !g.Players[i].IsAlive() {
		return
	}
	g.Level.AwardPoints(g.Players[i], config.PointsPerPellet)
}

// Turn поворачивает живого игрока i и делает шаг
func (g *Game) Turn(i int, dir component.Direction) {
	if i < 0 || i >= len(g.Players) || !g.Level.IsInProgress() || !g.Players[i].IsAlive() {
		return
	}
	m := g.Players[i].Movement()
	m.Direction = dir
	m.Step()
}

func (g *Game) IsOver() bool { return g.over }

// LastEvent — описание последнего события для строки статуса
func (g *Game) LastEvent() string { return g.lastEvent }

// GameEventListener реагирует на события уровня
type GameEventListener struct {
	game *Game
}

// OnEvent пропускает события с данными чужого типа
func (l *GameEventListener) OnEvent(e event.Event) {
	switch e.Type {
	case event.LifeLost:
		data, ok := e.Data.(event.LifeLostData)
		if !ok {
			logger.Log.Warnf("unexpected %s payload %T", e.Type, e.Data)
			return
		}
		l.game.lastEvent = fmt.Sprintf("player %d died, %d lives left", data.PlayerID, data.LivesLeft)
	case event.PlayerRevived:
		data, ok := e.Data.(event.PlayerData)
		if !ok {
			logger.Log.Warnf("unexpected %s payload %T", e.Type, e.Data)
			return
		}
		l.game.lastEvent = fmt.Sprintf("player %d is back", data.PlayerID)
	case event.LevelRestarted:
		l.game.lastEvent = "level restarted"
	case event.PointsScored:
		data, ok := e.Data.(event.PointsData)
		if !ok {
			logger.Log.Warnf("unexpected %s payload %T", e.Type, e.Data)
			return
		}
		logger.Log.Debugf("player %d scored %d (total %d)", data.PlayerID, data.Points, data.Total)
	case event.GameOver:
		l.game.over = true
		l.game.lastEvent = "game over"
		logger.Log.Infof("game over after %.1fs", l.game.gameTime)
	}
}
