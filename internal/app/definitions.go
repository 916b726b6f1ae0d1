// internal/app/definitions.go
package app

import (
	"fmt"

	"go-pacman/internal/defs"
)

var defaultPlayerIDs = []string{"pacman", "mspacman"}

// PlayerDefinitions возвращает описания для count игроков:
// из файла, если путь задан, иначе встроенные
func PlayerDefinitions(path string, count int) ([]defs.PlayerDefinition, error) {
	if count < 1 || count > len(defaultPlayerIDs) {
		return nil, fmt.Errorf("players must be between 1 and %d, got %d", len(defaultPlayerIDs), count)
	}
	if path == "" {
		out := make([]defs.PlayerDefinition, count)
		for i := range out {
			out[i] = defs.DefaultPlayerDefinition(defaultPlayerIDs[i])
		}
		return out, nil
	}
	loaded, err := defs.LoadPlayerDefinitions(path)
	if err != nil {
		return nil, err
	}
	if len(loaded) < count {
		return nil, fmt.Errorf("%s: %d player definition(s) for %d player(s)", path, len(loaded), count)
	}
	return loaded[:count], nil
}
