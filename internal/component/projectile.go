// internal/component/projectile.go
package component

// Projectile represents a shot in flight.
type Projectile struct {
	FromPlayer bool // owner: true for player shots, false for enemy shots
	Damage     int
}
