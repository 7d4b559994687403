// internal/defs/types.go
package defs

import "image/color"

// Visuals describes how an entity type is drawn.
type Visuals struct {
	Color  color.RGBA `json:"color"`
	Width  float64    `json:"width"`
	Height float64    `json:"height"`
}
