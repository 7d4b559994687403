// internal/component/wave.go
package component

// Wave tracks the fly-in of one enemy wave. Enemies appear one slot at a
// time until the whole grid is populated.
type Wave struct {
	Number         int
	EnemyID        string
	Rows           int
	Cols           int
	EnemiesToSpawn int
	NextSlot       int
	SpawnTimer     float64
	SpawnInterval  float64
}
