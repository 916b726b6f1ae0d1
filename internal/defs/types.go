// internal/defs/types.go
package defs

import (
	"errors"
	"strings"

	"go-pacman/internal/component"
)

var (
	ErrUnknownDirection = errors.New("unknown direction")
	ErrInvalidAnimation = errors.New("invalid animation")
)

// AnimationDefinition описывает покадровую анимацию
type AnimationDefinition struct {
	Name      string  `json:"name"`
	Frames    int     `json:"frames"`
	FrameTime float64 `json:"frameTime"`
	Looping   bool    `json:"looping,omitempty"`
}

// PlayerDefinition — набор графики игрока: спрайт на каждое направление
// и анимация смерти
type PlayerDefinition struct {
	ID      string              `json:"id"`
	Sprites map[string]string   `json:"sprites"` // направление -> имя спрайта
	Death   AnimationDefinition `json:"death"`
}

// ParseDirection переводит имя направления из JSON в component.Direction
func ParseDirection(name string) (component.Direction, error) {
	for _, d := range component.Directions {
		if strings.EqualFold(name, d.String()) {
			return d, nil
		}
	}
	return 0, ErrUnknownDirection
}
