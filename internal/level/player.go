// internal/level/player.go
package level

import (
	"go-pacman/internal/component"
	"go-pacman/internal/config"
	"go-pacman/internal/sprite"
	"go-pacman/internal/types"
)

// LifeObserver получает сигнал о каждой потерянной жизни.
// Наблюдатель хранится как ключ map, поэтому должен быть сравнимым (обычно указатель).
type LifeObserver interface {
	LifeLost()
}

// Player — управляемый игроком персонаж: счёт, жизни, жив/мёртв и причина смерти.
// Не потокобезопасен: изменяется только из игрового цикла.
type Player struct {
	id       types.EntityID
	movement *component.Movement

	score int
	lives int
	alive bool

	killer    component.Unit // nil, если игрок жив или умер не от столкновения
	observers map[LifeObserver]struct{}

	sprites     map[component.Direction]sprite.Sprite
	deathSprite sprite.Animation
}

// NewPlayer создаёт живого игрока с нулевым счётом и config.InitialLives жизнями.
// sprites и deathAnimation принадлежат игроку до конца сессии.
func NewPlayer(id types.EntityID, sprites map[component.Direction]sprite.Sprite, deathAnimation sprite.Animation) *Player {
	deathAnimation.SetAnimating(false)
	return &Player{
		id:          id,
		movement:    component.NewMovement(0, 0),
		lives:       config.InitialLives,
		alive:       true,
		observers:   make(map[LifeObserver]struct{}),
		sprites:     sprites,
		deathSprite: deathAnimation,
	}
}

func (p *Player) ID() types.EntityID            { return p.id }
func (p *Player) Movement() *component.Movement { return p.movement }

// AddObserver подписывает наблюдателя; повторная подписка ничего не меняет
func (p *Player) AddObserver(observer LifeObserver) {
	p.observers[observer] = struct{}{}
}

// RemoveObserver отписывает наблюдателя, если он был подписан
func (p *Player) RemoveObserver(observer LifeObserver) {
	delete(p.observers, observer)
}

func (p *Player) IsAlive() bool { return p.alive }
func (p *Player) Score() int    { return p.score }
func (p *Player) Lives() int    { return p.lives }

// PlayDeathAnimation проигрывает анимацию смерти с начала
func (p *Player) PlayDeathAnimation() {
	p.deathSprite.Restart()
}

// SetAlive оживляет или убивает игрока. Возрождение сбрасывает killer.
// Повторный вызов с тем же значением повторяет побочные эффекты.
func (p *Player) SetAlive(isAlive bool) {
	if isAlive {
		p.deathSprite.SetAnimating(false)
		p.killer = nil
	} else {
		p.PlayDeathAnimation()
	}
	p.alive = isAlive
}

func (p *Player) Killer() component.Unit { return p.killer }

// SetKiller запоминает причину смерти. Игрок не владеет этим юнитом.
func (p *Player) SetKiller(killer component.Unit) {
	p.killer = killer
}

// RemoveLife отнимает жизнь, убивает игрока и синхронно оповещает наблюдателей.
// Жизни могут уйти в ноль и ниже: конец игры решает вызывающий код.
func (p *Player) RemoveLife() {
	p.lives--
	p.SetAlive(false)
	p.updateObservers()
}

// AddPoints прибавляет очки к счёту
func (p *Player) AddPoints(points int) {
	p.score += points
}

// CurrentVisual возвращает анимацию смерти для мёртвого игрока,
// иначе спрайт текущего направления (nil, если такого нет в наборе)
func (p *Player) CurrentVisual() sprite.Sprite {
	if !p.alive {
		return p.deathSprite
	}
	return p.sprites[p.movement.Direction]
}

// Animate продвигает анимацию смерти, пока игрок мёртв
func (p *Player) Animate(deltaTime float64) {
	if !p.alive {
		p.deathSprite.Update(deltaTime)
	}
}

// DeathAnimationDone — анимация смерти доиграна (или не запускалась)
func (p *Player) DeathAnimationDone() bool {
	return !p.deathSprite.IsAnimating()
}

func (p *Player) updateObservers() {
	for observer := range p.observers {
		observer.LifeLost()
	}
}
