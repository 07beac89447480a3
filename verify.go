package geodome

import (
	"fmt"

	"github.com/golang/geo/r3"
	"github.com/markus-wa/quickhull-go/v2"
)

// Verify checks a generated sphere: valid indices, the face and vertex counts
// of a closed triangulation of the given frequency, and every edge shared by
// exactly two faces with opposite direction.
func Verify(m *Mesh, frequency int) error {
	if err := m.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrDegenerateWelding, err)
	}

	wantVertices, wantFaces := ExpectedCounts(frequency)
	if m.FaceCount() != wantFaces {
		return fmt.Errorf("%w: %d faces, want %d", ErrDegenerateWelding, m.FaceCount(), wantFaces)
	}
	if m.VertexCount() != wantVertices {
		return fmt.Errorf("%w: %d vertices, want %d", ErrDegenerateWelding, m.VertexCount(), wantVertices)
	}

	edges := make(map[[2]int]int, 3*len(m.Faces))
	for i, f := range m.Faces {
		if f[0] == f[1] || f[1] == f[2] || f[2] == f[0] {
			return fmt.Errorf("%w: face %d collapsed to %v", ErrDegenerateWelding, i, f)
		}
		for k := 0; k < 3; k++ {
			edges[[2]int{f[k], f[(k+1)%3]}]++
		}
	}
	for e, n := range edges {
		if n != 1 {
			return fmt.Errorf("%w: edge %d->%d used by %d faces", ErrDegenerateWelding, e[0], e[1], n)
		}
		if edges[[2]int{e[1], e[0]}] != 1 {
			return fmt.Errorf("%w: edge %d->%d has no opposite", ErrDegenerateWelding, e[0], e[1])
		}
	}
	return nil
}

// VerifyHull checks that the convex hull of the vertices is a triangulation
// using every one of them. Points left unwelded on a seam sit on top of each
// other and drop out of the hull.
func VerifyHull(m *Mesh, eps float64) error {
	n := m.VertexCount()
	if n < 4 {
		return fmt.Errorf("%w: %d vertices cannot enclose a volume", ErrDegenerateWelding, n)
	}

	qh := new(quickhull.QuickHull)
	hull := qh.ConvexHull(toR3(m), true, true, eps)

	want := 3 * (2*n - 4)
	if len(hull.Indices) != want {
		return fmt.Errorf("%w: hull has %d indices, want %d", ErrDegenerateWelding, len(hull.Indices), want)
	}
	seen := make([]bool, n)
	for _, idx := range hull.Indices {
		seen[idx] = true
	}
	for i, ok := range seen {
		if !ok {
			return fmt.Errorf("%w: vertex %d is not on the hull", ErrDegenerateWelding, i)
		}
	}
	return nil
}

func toR3(m *Mesh) []r3.Vector {
	out := make([]r3.Vector, len(m.Vertices))
	for i, v := range m.Vertices {
		out[i] = r3.Vector{X: v[0], Y: v[1], Z: v[2]}
	}
	return out
}
