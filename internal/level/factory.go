// internal/level/factory.go
package level

import (
	"fmt"

	"go-pacman/internal/component"
	"go-pacman/internal/defs"
	"go-pacman/internal/sprite"
	"go-pacman/internal/types"
)

// NewPlayerFromDefinition собирает игрока из описания графики
func NewPlayerFromDefinition(id types.EntityID, def defs.PlayerDefinition) (*Player, error) {
	if err := def.Validate(); err != nil {
		return nil, fmt.Errorf("player %q: %w", def.ID, err)
	}
	sprites := make(map[component.Direction]sprite.Sprite, len(def.Sprites))
	for name, spriteName := range def.Sprites {
		dir, err := defs.ParseDirection(name)
		if err != nil {
			return nil, err
		}
		sprites[dir] = sprite.NewStill(spriteName)
	}
	death := sprite.NewAnimated(def.Death.Name, def.Death.Frames, def.Death.FrameTime, def.Death.Looping)
	return NewPlayer(id, sprites, death), nil
}
