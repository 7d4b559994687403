// internal/config/config.go
package config

import "image/color"

const (
	ScreenWidth  = 600
	ScreenHeight = 800
	WorldPadding = 24.0
	MaxDeltaTime = 0.06

	ClickCooldown = 300 // ms, debounce for UI buttons

	PlayerSpeed       = 320.0 // pixels per second
	PlayerWidth       = 36.0
	PlayerHeight      = 24.0
	PlayerY           = ScreenHeight - 64.0
	PlayerMinX        = WorldPadding + PlayerWidth/2
	PlayerMaxX        = ScreenWidth - WorldPadding - PlayerWidth/2
	FireCooldown      = 0.35 // seconds between player shots
	RespawnInvulnTime = 2.0
	InitialLives      = 3

	ProjectileSpeed      = 520.0
	ProjectileWidth      = 4.0
	ProjectileHeight     = 12.0
	ProjectileDamage     = 1
	EnemyProjectileSpeed = 240.0

	FormationTopY         = 96.0
	FormationSpacingX     = 56.0
	FormationSpacingY     = 44.0
	FormationSpeed        = 48.0 // base horizontal drift, pixels per second
	FormationSpeedPerWave = 12.0
	FormationStepDown     = 16.0
	InvasionY             = PlayerY - 40.0 // an enemy this low ends the game

	EnemyFireMinDelay = 2.0
	EnemyFireMaxDelay = 6.0

	WaveBreakDuration = 2.0 // pause between cleared wave and the next

	// Background tiling: one tile texture repeated on a fixed grid.
	TileFactorX = 10.0
	TileFactorY = 7.0
	TileSize    = 64

	PauseButtonX    = ScreenWidth - 36.0
	PauseButtonY    = 28.0
	PauseButtonSize = 12.0

	ExplosionDuration  = 0.4
	ExplosionMaxRadius = 22.0
)

var (
	BackgroundColor      = color.RGBA{8, 8, 24, 255}
	BackgroundTint       = [4]float32{0.55, 0.55, 0.75, 1}
	StarColor            = color.RGBA{180, 190, 220, 255}
	PlayerColor          = color.RGBA{80, 200, 255, 255}
	PlayerStrokeColor    = color.RGBA{255, 255, 255, 255}
	ProjectileColor      = color.RGBA{255, 240, 120, 255}
	EnemyProjectileColor = color.RGBA{255, 90, 90, 255}
	ExplosionColor       = color.RGBA{255, 160, 60, 255}
	TextLightColor       = color.RGBA{240, 240, 240, 255}
	OverlayColor         = color.RGBA{0, 0, 0, 128}
	PauseColor           = color.RGBA{70, 130, 180, 220}
	PlayColor            = color.RGBA{50, 205, 50, 220}
)
