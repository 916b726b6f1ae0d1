// internal/config/config.go
package config

import "image/color"

const (
	ScreenWidth  = 640
	ScreenHeight = 480
	MaxDeltaTime = 0.06

	InitialLives = 3           // Стартовое число жизней игрока
	DiedText     = "You died." // Статус в панели вместо жизней, пока игрок мёртв
	RespawnDelay = 1.5         // Секунд от потери жизни до возрождения

	DeathAnimationName      = "pacman_death"
	DeathAnimationFrames    = 11
	DeathAnimationFrameTime = 0.1 // секунд на кадр

	PointsPerPellet = 10

	TileSize = 16

	// Панель счёта
	PanelX            = 10
	PanelY            = 10
	PanelColumnWidth  = 120
	PanelRowHeight    = 18
	PanelPadding      = 6
	PanelBorderWidth  = 1
	PanelRows         = 3 // заголовок, счёт, жизни
	TTYPanelColumnGap = 2
)

var (
	BackgroundColor  = color.RGBA{0, 0, 0, 255}
	TextLightColor   = color.RGBA{240, 240, 240, 255}
	TextDeadColor    = color.RGBA{220, 60, 60, 255}
	PanelBorderColor = color.RGBA{70, 130, 180, 255}
	// Цвета плиток для спрайтов без загруженной графики
	SpriteColors = []color.RGBA{
		{255, 215, 0, 255},   // Жёлтый
		{255, 50, 50, 255},   // Красный
		{255, 184, 255, 255}, // Розовый
		{0, 255, 255, 255},   // Голубой
		{255, 184, 82, 255},  // Оранжевый
	}
)
