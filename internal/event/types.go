// internal/event/types.go
package event

import "go-pacman/internal/types"

const (
	LifeLost       EventType = "LifeLost"       // Игрок потерял жизнь
	PlayerRevived  EventType = "PlayerRevived"  // Игрок возродился
	LevelRestarted EventType = "LevelRestarted" // Уровень продолжен после смерти
	GameOver       EventType = "GameOver"       // Жизни закончились у всех
	PointsScored   EventType = "PointsScored"   // Игроку начислены очки
)

// LifeLostData — данные события LifeLost
type LifeLostData struct {
	PlayerID  types.EntityID
	LivesLeft int
	KillerID  types.EntityID // 0, если причина смерти неизвестна
}

// PlayerData — данные событий PlayerRevived
type PlayerData struct {
	PlayerID types.EntityID
}

// PointsData — данные события PointsScored
type PointsData struct {
	PlayerID types.EntityID
	Points   int
	Total    int
}
