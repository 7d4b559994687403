// internal/event/types.go
package event

const (
	ProjectileFired EventType = "ProjectileFired" // Data: firing entity ID
	EnemyDestroyed  EventType = "EnemyDestroyed"  // Data: points awarded
	PlayerHit       EventType = "PlayerHit"       // Data: player entity ID
	WaveCleared     EventType = "WaveCleared"     // Data: wave number
	GameOver        EventType = "GameOver"
)
