// internal/level/level.go
package level

import (
	"go-pacman/internal/component"
	"go-pacman/internal/event"
	"go-pacman/internal/logger"
	"go-pacman/internal/types"
)

// Level — контроллер уровня. Реагирует на потерю жизни: останавливает игру,
// возрождает игрока после паузы или объявляет конец игры.
type Level struct {
	players      []*Player
	observers    map[*Player]*lifeWatcher
	dispatcher   *event.Dispatcher
	respawnDelay float64

	inProgress bool
	pending    map[*Player]float64 // сколько секунд осталось до возрождения
	over       bool
}

// lifeWatcher связывает сигнал LifeLost с конкретным игроком
type lifeWatcher struct {
	level  *Level
	player *Player
}

func (w *lifeWatcher) LifeLost() {
	w.level.lifeLost(w.player)
}

// NewLevel создаёт остановленный уровень
func NewLevel(dispatcher *event.Dispatcher, respawnDelay float64) *Level {
	if dispatcher == nil {
		dispatcher = event.NewDispatcher()
	}
	return &Level{
		observers:    make(map[*Player]*lifeWatcher),
		dispatcher:   dispatcher,
		respawnDelay: respawnDelay,
		pending:      make(map[*Player]float64),
	}
}

// RegisterPlayer добавляет игрока и подписывается на его жизни.
// Повторная регистрация игнорируется.
func (l *Level) RegisterPlayer(p *Player) {
	if _, ok := l.observers[p]; ok {
		return
	}
	w := &lifeWatcher{level: l, player: p}
	l.observers[p] = w
	l.players = append(l.players, p)
	p.AddObserver(w)
}

// UnregisterPlayer убирает игрока с уровня и отписывается от него
func (l *Level) UnregisterPlayer(p *Player) {
	w, ok := l.observers[p]
	if !ok {
		return
	}
	p.RemoveObserver(w)
	delete(l.observers, p)
	delete(l.pending, p)
	for i, other := range l.players {
		if other == p {
			l.players = append(l.players[:i:i], l.players[i+1:]...)
			break
		}
	}
}

// Players возвращает игроков в порядке регистрации
func (l *Level) Players() []*Player {
	return l.players
}

func (l *Level) Start() {
	if l.over {
		return
	}
	l.inProgress = true
}

func (l *Level) Stop() {
	l.inProgress = false
}

func (l *Level) IsInProgress() bool { return l.inProgress }
func (l *Level) IsOver() bool       { return l.over }

// IsAnyPlayerAlive — есть ли на уровне живой игрок
func (l *Level) IsAnyPlayerAlive() bool {
	for _, p := range l.players {
		if p.IsAlive() {
			return true
		}
	}
	return false
}

// Collide применяет результат столкновения игрока с юнитом:
// запоминает убийцу и отнимает жизнь. Вне игры и для мёртвых ничего не делает.
func (l *Level) Collide(p *Player, killer component.Unit) {
	if !l.inProgress || !p.IsAlive() {
		return
	}
	p.SetKiller(killer)
	p.RemoveLife()
}

// AwardPoints начисляет очки и сообщает об этом подписчикам
func (l *Level) AwardPoints(p *Player, points int) {
	p.AddPoints(points)
	l.dispatcher.Dispatch(event.Event{
		Type: event.PointsScored,
		Data: event.PointsData{PlayerID: p.ID(), Points: points, Total: p.Score()},
	})
}

// Update продвигает анимации и таймеры возрождения
func (l *Level) Update(deltaTime float64) {
	for _, p := range l.players {
		p.Animate(deltaTime)
	}
	if len(l.pending) == 0 {
		return
	}
	for _, p := range l.players {
		left, ok := l.pending[p]
		if !ok {
			continue
		}
		left -= deltaTime
		if left > 0 {
			l.pending[p] = left
			continue
		}
		delete(l.pending, p)
		p.SetAlive(true)
		logger.Log.Infof("player %d revived, lives=%d", p.ID(), p.Lives())
		l.dispatcher.Dispatch(event.Event{Type: event.PlayerRevived, Data: event.PlayerData{PlayerID: p.ID()}})
	}
	if len(l.pending) == 0 && l.IsAnyPlayerAlive() && !l.over {
		l.Start()
		l.dispatcher.Dispatch(event.Event{Type: event.LevelRestarted})
	}
}

func (l *Level) lifeLost(p *Player) {
	l.Stop()

	var killerID types.EntityID
	if k := p.Killer(); k != nil {
		killerID = k.ID()
	}
	logger.Log.Infof("player %d lost a life, lives=%d killer=%d", p.ID(), p.Lives(), killerID)
	l.dispatcher.Dispatch(event.Event{
		Type: event.LifeLost,
		Data: event.LifeLostData{PlayerID: p.ID(), LivesLeft: p.Lives(), KillerID: killerID},
	})

	if p.Lives() > 0 {
		l.pending[p] = l.respawnDelay
		return
	}
	delete(l.pending, p)
	if len(l.pending) > 0 || l.over {
		return
	}
	if l.IsAnyPlayerAlive() {
		// выбывший игрок остаётся мёртвым, остальные играют дальше
		l.Start()
		l.dispatcher.Dispatch(event.Event{Type: event.LevelRestarted})
		return
	}
	l.over = true
	logger.Log.Info("game over: no lives left")
	l.dispatcher.Dispatch(event.Event{Type: event.GameOver})
}
