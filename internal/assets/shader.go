// internal/assets/shader.go
package assets

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
)

// backgroundShaderSrc is the Kage source for the tiled background.
// The quad's source coordinates span the tile exactly once, so
// (src-origin)/size is a normalized UV in [0,1). The fragment wraps that
// UV on a TileFactorX x TileFactorY grid and samples the tile at the
// wrapped coordinate, tinted by a uniform color.
var backgroundShaderSrc = []byte(`
//kage:unit pixels

package main

var Tint vec4

func Fragment(dst vec4, src vec2, color vec4) vec4 {
	origin := imageSrc0Origin()
	size := imageSrc0Size()
	uv := (src - origin) / size
	tiled := fract(uv * vec2(10.0, 7.0))
	return imageSrc0At(tiled*size+origin) * Tint
}
`)

// NewBackgroundShader compiles the tiled-background fragment shader.
func NewBackgroundShader() (*ebiten.Shader, error) {
	shader, err := ebiten.NewShader(backgroundShaderSrc)
	if err != nil {
		return nil, fmt.Errorf("failed to compile background shader: %w", err)
	}
	return shader, nil
}
