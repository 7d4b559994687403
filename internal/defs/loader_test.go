// internal/defs/loader_test.go
package defs

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadEnemyDefinitions(t *testing.T) {
	data := `[
		{"id": "ENEMY_TEST", "name": "Test", "health": 2, "points": 75,
		 "visuals": {"color": {"R": 10, "G": 20, "B": 30, "A": 255}, "width": 30, "height": 20}}
	]`
	path := filepath.Join(t.TempDir(), "enemies.json")
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	saved := EnemyDefs
	defer func() { EnemyDefs = saved }()

	if err := LoadEnemyDefinitions(path); err != nil {
		t.Fatalf("LoadEnemyDefinitions: %v", err)
	}

	def, ok := EnemyDefs["ENEMY_TEST"]
	if !ok {
		t.Fatal("ENEMY_TEST not loaded")
	}
	if def.Health != 2 || def.Points != 75 {
		t.Errorf("loaded def = %+v, want health 2 and points 75", def)
	}
	if def.Visuals.Width != 30 {
		t.Errorf("visual width = %v, want 30", def.Visuals.Width)
	}
}

func TestLoadEnemyDefinitionsMissingFile(t *testing.T) {
	saved := EnemyDefs
	defer func() { EnemyDefs = saved }()

	if err := LoadEnemyDefinitions(filepath.Join(t.TempDir(), "nope.json")); err == nil {
		t.Error("expected an error for a missing file")
	}
}

func TestBuiltInLibraryCoversWavePatterns(t *testing.T) {
	for number, wave := range WavePatterns {
		if _, ok := EnemyDefs[wave.EnemyID]; !ok {
			t.Errorf("wave %d references unknown enemy %q", number, wave.EnemyID)
		}
		if wave.Rows <= 0 || wave.Cols <= 0 {
			t.Errorf("wave %d has an empty grid (%dx%d)", number, wave.Rows, wave.Cols)
		}
	}
}
