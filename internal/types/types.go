// internal/types/types.go
package types

// EntityID — идентификатор сущности в игре (игрока, призрака)
type EntityID int
