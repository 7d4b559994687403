// internal/system/wave_test.go
package system

import (
	"testing"

	"go-galaga/internal/config"
	"go-galaga/internal/defs"
	"go-galaga/internal/entity"
	"go-galaga/internal/event"
	"go-galaga/internal/utils"
)

func spawnFullWave(t *testing.T, ecs *entity.ECS, ws *WaveSystem, waveNumber int) {
	t.Helper()
	ecs.Wave = ws.StartWave(waveNumber)
	total := ecs.Wave.EnemiesToSpawn
	dt := ecs.Wave.SpawnInterval
	for i := 0; i < total; i++ {
		ws.Update(dt)
	}
	if ecs.Wave.EnemiesToSpawn != 0 {
		t.Fatalf("%d enemies still pending after full fly-in", ecs.Wave.EnemiesToSpawn)
	}
}

func TestStartWavePopulatesGrid(t *testing.T) {
	ecs := entity.NewECS()
	dispatcher := event.NewDispatcher()
	ws := NewWaveSystem(ecs, dispatcher, utils.NewPRNGService(1))

	spawnFullWave(t, ecs, ws, 1)

	def := defs.WavePatterns[1]
	want := def.Rows * def.Cols
	if len(ecs.Enemies) != want {
		t.Fatalf("got %d enemies, want %d", len(ecs.Enemies), want)
	}

	// Every enemy sits on its own grid slot, inside the world bounds.
	seen := make(map[[2]int]bool)
	for id, enemy := range ecs.Enemies {
		slot := [2]int{enemy.Row, enemy.Col}
		if seen[slot] {
			t.Errorf("slot %v occupied twice", slot)
		}
		seen[slot] = true

		pos := ecs.Positions[id]
		if pos == nil {
			t.Fatalf("enemy %d has no position", id)
		}
		if pos.X < config.WorldPadding || pos.X > config.ScreenWidth-config.WorldPadding {
			t.Errorf("enemy at X=%v spawned outside the world", pos.X)
		}
		if pos.Y < config.FormationTopY {
			t.Errorf("enemy at Y=%v spawned above the formation area", pos.Y)
		}
	}
}

func TestSpawnCadenceFollowsInterval(t *testing.T) {
	ecs := entity.NewECS()
	ws := NewWaveSystem(ecs, event.NewDispatcher(), utils.NewPRNGService(1))
	ecs.Wave = ws.StartWave(1)

	interval := ecs.Wave.SpawnInterval

	// A frame shorter than the interval must not spawn anything.
	ws.Update(interval / 2)
	if len(ecs.Enemies) != 0 {
		t.Fatalf("spawned %d enemies before the interval elapsed", len(ecs.Enemies))
	}

	ws.Update(interval / 2)
	if len(ecs.Enemies) != 1 {
		t.Fatalf("got %d enemies after one full interval, want 1", len(ecs.Enemies))
	}
}

func TestWaveClearedAfterLastEnemyDies(t *testing.T) {
	ecs := entity.NewECS()
	dispatcher := event.NewDispatcher()
	rec := &eventRecorder{}
	dispatcher.Subscribe(event.WaveCleared, rec)
	ws := NewWaveSystem(ecs, dispatcher, utils.NewPRNGService(1))

	spawnFullWave(t, ecs, ws, 1)

	// Still enemies alive: no clear announcement.
	ws.Update(0.016)
	if rec.count(event.WaveCleared) != 0 {
		t.Fatal("WaveCleared fired while enemies are alive")
	}

	for id := range ecs.Enemies {
		ecs.RemoveEntity(id)
		dispatcher.Dispatch(event.Event{Type: event.EnemyDestroyed, Data: 50})
	}

	ws.Update(0.016)
	if rec.count(event.WaveCleared) != 1 {
		t.Fatalf("got %d WaveCleared events, want 1", rec.count(event.WaveCleared))
	}
}

func TestStartWaveScalesFormationSpeed(t *testing.T) {
	ecs := entity.NewECS()
	ws := NewWaveSystem(ecs, event.NewDispatcher(), utils.NewPRNGService(1))

	ws.StartWave(1)
	first := ecs.Formation.Speed
	ws.StartWave(4)
	fourth := ecs.Formation.Speed

	if fourth <= first {
		t.Errorf("wave 4 formation speed %v should exceed wave 1 speed %v", fourth, first)
	}
}

func TestWavesBeyondTableRepeat(t *testing.T) {
	ecs := entity.NewECS()
	ws := NewWaveSystem(ecs, event.NewDispatcher(), utils.NewPRNGService(1))

	wave := ws.StartWave(17)
	if wave == nil {
		t.Fatal("waves past the scripted table must still start")
	}
	if wave.EnemiesToSpawn == 0 {
		t.Error("repeated wave has no enemies")
	}
	if _, ok := defs.EnemyDefs[wave.EnemyID]; !ok {
		t.Errorf("repeated wave references unknown enemy %q", wave.EnemyID)
	}
}
