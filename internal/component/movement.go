// internal/component/movement.go
package component

import "go-pacman/internal/types"

// Position — компонент позиции в клетках поля
type Position struct {
	X, Y int
}

// Direction — направление движения
type Direction int

const (
	North Direction = iota
	South
	West
	East
)

// Directions — все направления в фиксированном порядке
var Directions = []Direction{North, South, West, East}

// Delta возвращает смещение на одну клетку
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case North:
		return 0, -1
	case South:
		return 0, 1
	case West:
		return -1, 0
	case East:
		return 1, 0
	}
	return 0, 0
}

func (d Direction) String() string {
	switch d {
	case North:
		return "north"
	case South:
		return "south"
	case West:
		return "west"
	case East:
		return "east"
	}
	return "unknown"
}

// Movement — положение и направление подвижной сущности.
// Им владеет сама сущность, а меняет внешний код (ввод, движение).
type Movement struct {
	Position  Position
	Direction Direction
}

// NewMovement создаёт подвижное состояние, смотрящее на запад
func NewMovement(x, y int) *Movement {
	return &Movement{Position: Position{X: x, Y: y}, Direction: West}
}

// Step сдвигает позицию на одну клетку в текущем направлении
func (m *Movement) Step() {
	dx, dy := m.Direction.Delta()
	m.Position.X += dx
	m.Position.Y += dy
}

// Unit — всё, что стоит на поле и может стать причиной смерти игрока
type Unit interface {
	ID() types.EntityID
	Movement() *Movement
}
