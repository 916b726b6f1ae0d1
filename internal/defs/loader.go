// internal/defs/loader.go
package defs

import (
	"encoding/json"
	"fmt"
	"os"

	"go-pacman/internal/component"
	"go-pacman/internal/config"
)

// LoadPlayerDefinitions читает файл с описаниями игроков
func LoadPlayerDefinitions(path string) ([]PlayerDefinition, error) {
	file, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read player definitions file: %w", err)
	}
	return ParsePlayerDefinitions(file)
}

// ParsePlayerDefinitions разбирает и проверяет JSON-массив описаний
func ParsePlayerDefinitions(data []byte) ([]PlayerDefinition, error) {
	var playerDefs []PlayerDefinition
	if err := json.Unmarshal(data, &playerDefs); err != nil {
		return nil, fmt.Errorf("failed to unmarshal player definitions: %w", err)
	}
	for i := range playerDefs {
		if err := playerDefs[i].Validate(); err != nil {
			return nil, fmt.Errorf("player definition %d (%q): %w", i, playerDefs[i].ID, err)
		}
	}
	return playerDefs, nil
}

// Validate проверяет направления и параметры анимации.
// Полноту набора направлений не проверяет: это забота автора графики.
func (d PlayerDefinition) Validate() error {
	for name := range d.Sprites {
		if _, err := ParseDirection(name); err != nil {
			return fmt.Errorf("sprite %q: %w", name, err)
		}
	}
	if d.Death.Name == "" || d.Death.Frames < 1 || d.Death.FrameTime <= 0 {
		return fmt.Errorf("death animation %q: %w", d.Death.Name, ErrInvalidAnimation)
	}
	return nil
}

// DefaultPlayerDefinition — графика игрока, если файл описаний не задан
func DefaultPlayerDefinition(id string) PlayerDefinition {
	sprites := make(map[string]string, len(component.Directions))
	for _, dir := range component.Directions {
		sprites[dir.String()] = id + "_" + dir.String()
	}
	return PlayerDefinition{
		ID:      id,
		Sprites: sprites,
		Death: AnimationDefinition{
			Name:      config.DeathAnimationName,
			Frames:    config.DeathAnimationFrames,
			FrameTime: config.DeathAnimationFrameTime,
		},
	}
}
