// internal/defs/enemies.go
package defs

import "image/color"

// EnemyDefinition holds all the static data for a specific type of enemy.
type EnemyDefinition struct {
	ID      string  `json:"id"`
	Name    string  `json:"name"`
	Health  int     `json:"health"`
	Points  int     `json:"points"`
	Visuals Visuals `json:"visuals"`
}

// EnemyDefs is the library of all enemy definitions, mapped by their ID.
// The built-in set below keeps the game runnable without data files;
// LoadEnemyDefinitions replaces it when a JSON file is supplied.
var EnemyDefs = map[string]EnemyDefinition{
	"ENEMY_DRONE": {
		ID:      "ENEMY_DRONE",
		Name:    "Drone",
		Health:  1,
		Points:  50,
		Visuals: Visuals{Color: color.RGBA{90, 220, 120, 255}, Width: 32, Height: 24},
	},
	"ENEMY_STRIKER": {
		ID:      "ENEMY_STRIKER",
		Name:    "Striker",
		Health:  1,
		Points:  100,
		Visuals: Visuals{Color: color.RGBA{230, 120, 220, 255}, Width: 34, Height: 26},
	},
	"ENEMY_BOSS": {
		ID:      "ENEMY_BOSS",
		Name:    "Boss",
		Health:  3,
		Points:  400,
		Visuals: Visuals{Color: color.RGBA{120, 140, 255, 255}, Width: 44, Height: 36},
	},
}
