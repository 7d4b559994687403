// pkg/tile/tile_test.go
package tile

import (
	"math"
	"testing"
)

func TestFract(t *testing.T) {
	tests := []struct {
		name string
		in   float64
		want float64
	}{
		{"Zero", 0.0, 0.0},
		{"Below one", 0.35, 0.35},
		{"Exactly one", 1.0, 0.0},
		{"Above one", 1.25, 0.25},
		{"Whole number", 10.0, 0.0},
		{"Negative", -0.25, 0.75},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Fract(tt.in)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("Fract(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestUV(t *testing.T) {
	tests := []struct {
		name         string
		u, v         float64
		fx, fy       float64
		wantU, wantV float64
	}{
		{"Inside first tile", 0.05, 0.05, 10, 7, 0.5, 0.35},
		{"Far corner wraps to origin", 1.0, 1.0, 10, 7, 0.0, 0.0},
		{"Origin", 0.0, 0.0, 10, 7, 0.0, 0.0},
		{"Tile boundary", 0.1, 0.0, 10, 7, 0.0, 0.0},
		{"Center of grid", 0.55, 0.5, 10, 7, 0.5, 0.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotU, gotV := UV(tt.u, tt.v, tt.fx, tt.fy)
			if math.Abs(gotU-tt.wantU) > 1e-9 || math.Abs(gotV-tt.wantV) > 1e-9 {
				t.Errorf("UV(%v, %v) = (%v, %v), want (%v, %v)",
					tt.u, tt.v, gotU, gotV, tt.wantU, tt.wantV)
			}
		})
	}
}

func TestUVStaysInRange(t *testing.T) {
	for u := 0.0; u < 1.0; u += 0.013 {
		for v := 0.0; v < 1.0; v += 0.017 {
			gotU, gotV := UV(u, v, 10, 7)
			if gotU < 0 || gotU >= 1 || gotV < 0 || gotV >= 1 {
				t.Fatalf("UV(%v, %v) = (%v, %v), out of [0,1)", u, v, gotU, gotV)
			}
		}
	}
}
