package geodome

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

var (
	icosahedronVertices [12]mgl64.Vec3
	icosahedronFaces    = [20][3]int{
		{0, 11, 5}, {0, 5, 1}, {0, 1, 7}, {0, 7, 10}, {0, 10, 11},
		{1, 5, 9}, {5, 11, 4}, {11, 10, 2}, {10, 7, 6}, {7, 1, 8},
		{3, 9, 4}, {3, 4, 2}, {3, 2, 6}, {3, 6, 8}, {3, 8, 9},
		{4, 9, 5}, {2, 4, 11}, {6, 2, 10}, {8, 6, 7}, {9, 8, 1},
	}
)

func init() {
	// golden ratio
	t := (1.0 + math.Sqrt(5.0)) / 2.0

	raw := [12]mgl64.Vec3{
		{-1, t, 0}, {1, t, 0}, {-1, -t, 0}, {1, -t, 0},
		{0, -1, t}, {0, 1, t}, {0, -1, -t}, {0, 1, -t},
		{t, 0, -1}, {t, 0, 1}, {-t, 0, -1}, {-t, 0, 1},
	}
	for i, v := range raw {
		icosahedronVertices[i] = v.Normalize()
	}
}

// IcosahedronVertices returns the 12 corners of a regular icosahedron on the unit sphere.
func IcosahedronVertices() [12]mgl64.Vec3 {
	return icosahedronVertices
}

// IcosahedronFaces returns the 20 faces of the icosahedron as indices into
// IcosahedronVertices, wound counter-clockwise when seen from outside.
func IcosahedronFaces() [20][3]int {
	return icosahedronFaces
}
