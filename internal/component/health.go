// internal/component/health.go
package component

// Health — remaining hit points.
type Health struct {
	Value int
}
