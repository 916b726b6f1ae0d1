// internal/level/ghost.go
package level

import (
	"go-pacman/internal/component"
	"go-pacman/internal/types"
)

// Ghost — противник, от столкновения с которым игрок теряет жизнь.
// Здесь нужен только как причина смерти: движение призраков вне этого пакета.
type Ghost struct {
	id       types.EntityID
	Name     string
	movement *component.Movement
}

// NewGhost создаёт призрака в клетке (x, y)
func NewGhost(id types.EntityID, name string, x, y int) *Ghost {
	return &Ghost{id: id, Name: name, movement: component.NewMovement(x, y)}
}

func (g *Ghost) ID() types.EntityID            { return g.id }
func (g *Ghost) Movement() *component.Movement { return g.movement }
