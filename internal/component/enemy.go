package component

// Enemy represents one member of the attacking formation.
type Enemy struct {
	DefID     string // ID from the enemy definition library
	Row       int    // formation slot
	Col       int
	Points    int     // score awarded on destruction
	FireTimer float64 // seconds until this enemy may shoot again
}
