package geodome

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

type MeshStats struct {
	Vertices int
	Faces    int
	Edges    int

	MinEdge    float64
	MaxEdge    float64
	MeanEdge   float64
	StdDevEdge float64

	// Radius is the mean vertex distance from the origin; RadiusError the
	// largest deviation from it.
	Radius      float64
	RadiusError float64

	Area float64
	// AreaRatio compares Area with the area of the sphere of the mean radius.
	AreaRatio float64
}

// Stats measures a mesh. Each undirected edge is counted once.
func Stats(m *Mesh) MeshStats {
	s := MeshStats{
		Vertices: m.VertexCount(),
		Faces:    m.FaceCount(),
	}
	if s.Vertices == 0 {
		return s
	}

	dists := make([]float64, len(m.Vertices))
	for i, v := range m.Vertices {
		dists[i] = v.Len()
	}
	s.Radius = stat.Mean(dists, nil)
	for _, d := range dists {
		s.RadiusError = math.Max(s.RadiusError, math.Abs(d-s.Radius))
	}

	seen := make(map[[2]int]bool, 3*len(m.Faces)/2)
	lengths := make([]float64, 0, 3*len(m.Faces)/2)
	for i, f := range m.Faces {
		for k := 0; k < 3; k++ {
			a, b := f[k], f[(k+1)%3]
			if a > b {
				a, b = b, a
			}
			if seen[[2]int{a, b}] {
				continue
			}
			seen[[2]int{a, b}] = true
			lengths = append(lengths, m.Vertices[a].Sub(m.Vertices[b]).Len())
		}
		s.Area += triangleArea(m.FacePoints(i))
	}

	s.Edges = len(lengths)
	if s.Edges > 0 {
		s.MinEdge = floats.Min(lengths)
		s.MaxEdge = floats.Max(lengths)
		s.MeanEdge, s.StdDevEdge = stat.MeanStdDev(lengths, nil)
	}
	if s.Radius > 0 {
		s.AreaRatio = s.Area / (4 * math.Pi * s.Radius * s.Radius)
	}
	return s
}
