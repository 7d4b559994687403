// internal/system/wave.go
package system

import (
	"log"

	"go-galaga/internal/component"
	"go-galaga/internal/config"
	"go-galaga/internal/defs"
	"go-galaga/internal/entity"
	"go-galaga/internal/event"
	"go-galaga/internal/utils"
)

// WaveSystem populates the formation grid one enemy at a time and
// announces WaveCleared once the grid has been spawned and emptied.
type WaveSystem struct {
	ecs             *entity.ECS
	eventDispatcher *event.Dispatcher
	rng             *utils.PRNGService
	activeEnemies   int
}

func NewWaveSystem(ecs *entity.ECS, eventDispatcher *event.Dispatcher, rng *utils.PRNGService) *WaveSystem {
	ws := &WaveSystem{
		ecs:             ecs,
		eventDispatcher: eventDispatcher,
		rng:             rng,
	}
	eventDispatcher.Subscribe(event.EnemyDestroyed, ws)
	return ws
}

func (s *WaveSystem) Update(deltaTime float64) {
	wave := s.ecs.Wave
	if wave == nil {
		return
	}
	if wave.EnemiesToSpawn > 0 {
		wave.SpawnTimer += deltaTime
		if wave.SpawnTimer >= wave.SpawnInterval {
			s.spawnEnemy(wave)
			wave.EnemiesToSpawn--
			wave.SpawnTimer = 0
		}
	} else if s.activeEnemies == 0 {
		s.eventDispatcher.Dispatch(event.Event{Type: event.WaveCleared, Data: wave.Number})
	}
}

func (s *WaveSystem) ResetActiveEnemies() {
	s.activeEnemies = 0
}

// ActiveEnemies reports how many spawned enemies are still alive.
func (s *WaveSystem) ActiveEnemies() int {
	return s.activeEnemies
}

func (s *WaveSystem) spawnEnemy(wave *component.Wave) {
	def, ok := defs.EnemyDefs[wave.EnemyID]
	if !ok {
		log.Printf("Error: Enemy definition not found for ID: %s", wave.EnemyID)
		return
	}

	slot := wave.NextSlot
	wave.NextSlot++
	row := slot / wave.Cols
	col := slot % wave.Cols
	x, y := formationSlotPos(row, col, wave.Cols)

	id := s.ecs.NewEntity()
	s.ecs.Positions[id] = &component.Position{X: x, Y: y}
	s.ecs.Healths[id] = &component.Health{Value: def.Health}
	s.ecs.Renderables[id] = &component.Renderable{
		Color:     def.Visuals.Color,
		Width:     float32(def.Visuals.Width),
		Height:    float32(def.Visuals.Height),
		Shape:     component.ShapeCircle,
		HasStroke: true,
	}
	s.ecs.Colliders[id] = &component.Collider{
		Width:  def.Visuals.Width,
		Height: def.Visuals.Height,
	}
	s.ecs.Enemies[id] = &component.Enemy{
		DefID:     wave.EnemyID,
		Row:       row,
		Col:       col,
		Points:    def.Points,
		FireTimer: s.rng.FloatRange(config.EnemyFireMinDelay, config.EnemyFireMaxDelay),
	}
	s.activeEnemies++
}

// StartWave builds the wave descriptor and the formation driver for the
// given wave number. Waves beyond the scripted table repeat the last
// three patterns while the formation keeps speeding up.
func (s *WaveSystem) StartWave(waveNumber int) *component.Wave {
	waveDef, ok := defs.WavePatterns[waveNumber]
	if !ok {
		repeating := ((waveNumber - 3) % 3) + 3
		waveDef, ok = defs.WavePatterns[repeating]
		if !ok {
			log.Printf("No definition for repeating wave %d, falling back to wave 1", repeating)
			waveDef = defs.WavePatterns[1]
		}
	}

	s.ecs.Formation = &component.Formation{
		Dir:      1,
		Speed:    config.FormationSpeed + config.FormationSpeedPerWave*float64(waveNumber-1),
		StepDown: config.FormationStepDown,
	}
	s.ecs.GameState.Wave = waveNumber

	return &component.Wave{
		Number:         waveNumber,
		EnemyID:        waveDef.EnemyID,
		Rows:           waveDef.Rows,
		Cols:           waveDef.Cols,
		EnemiesToSpawn: waveDef.Rows * waveDef.Cols,
		SpawnInterval:  waveDef.SpawnInterval.Seconds(),
	}
}

func (s *WaveSystem) OnEvent(e event.Event) {
	if e.Type == event.EnemyDestroyed {
		s.activeEnemies--
	}
}

// formationSlotPos converts a grid slot to its world position with the
// grid centered horizontally.
func formationSlotPos(row, col, cols int) (float64, float64) {
	originX := config.ScreenWidth/2.0 - float64(cols-1)*config.FormationSpacingX/2
	x := originX + float64(col)*config.FormationSpacingX
	y := config.FormationTopY + float64(row)*config.FormationSpacingY
	return x, y
}
