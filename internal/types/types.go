// internal/types/types.go
package types

// EntityID uniquely identifies an entity in the ECS registry.
// IDs start at 1; 0 is the zero value and never refers to a live entity.
type EntityID int
