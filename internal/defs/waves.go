// internal/defs/waves.go
package defs

import "time"

// WaveDefinition describes the formation for one wave of enemies.
type WaveDefinition struct {
	EnemyID       string        // identifier from the enemy library
	Rows          int           // formation grid height
	Cols          int           // formation grid width
	SpawnInterval time.Duration // delay between individual fly-ins
}

// WavePatterns defines the scripted wave sequence. The map key is the
// wave number; waves past the table repeat the late entries with the
// formation speed still scaling per wave.
var WavePatterns = map[int]WaveDefinition{
	1: {EnemyID: "ENEMY_DRONE", Rows: 3, Cols: 6, SpawnInterval: time.Millisecond * 120},
	2: {EnemyID: "ENEMY_DRONE", Rows: 4, Cols: 7, SpawnInterval: time.Millisecond * 110},
	3: {EnemyID: "ENEMY_STRIKER", Rows: 4, Cols: 7, SpawnInterval: time.Millisecond * 100},
	4: {EnemyID: "ENEMY_STRIKER", Rows: 4, Cols: 8, SpawnInterval: time.Millisecond * 90},
	5: {EnemyID: "ENEMY_BOSS", Rows: 2, Cols: 5, SpawnInterval: time.Millisecond * 150},
}
