// internal/defs/loader.go
package defs

import (
	"encoding/json"
	"fmt"
	"os"
)

// LoadEnemyDefinitions reads an enemy configuration file and replaces the
// built-in EnemyDefs library.
func LoadEnemyDefinitions(path string) error {
	file, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read enemy definitions file: %w", err)
	}

	var enemyDefs []EnemyDefinition
	if err := json.Unmarshal(file, &enemyDefs); err != nil {
		return fmt.Errorf("failed to unmarshal enemy definitions: %w", err)
	}

	EnemyDefs = make(map[string]EnemyDefinition)
	for _, def := range enemyDefs {
		EnemyDefs[def.ID] = def
	}
	return nil
}
