// internal/component/player.go
package component

// Player marks the player ship and holds its firing state.
type Player struct {
	FireCooldown float64 // seconds until the next shot is allowed
	InvulnTimer  float64 // remaining spawn-protection time after a hit
}
