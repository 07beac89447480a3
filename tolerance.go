package geodome

import (
	"fmt"
	"math"

	"github.com/golang/geo/s1"
	"github.com/golang/geo/s2"
)

// seamNoise bounds, relative to the radius, how far apart two faces may place
// the same seam point. A weld quantum below it can split seam vertices.
const seamNoise = 1e-10

// MinEdgeAngle is the smallest angle subtended by an edge of a geodesic
// sphere of the given frequency. All 20 faces are congruent, so one face's
// lattice is enough.
func MinEdgeAngle(frequency int) s1.Angle {
	base := IcosahedronVertices()
	face := IcosahedronFaces()[0]
	lattice := NewLattice(base[face[0]], base[face[1]], base[face[2]], frequency)

	points := make([]s2.Point, lattice.Len())
	for i, p := range lattice.points {
		points[i] = s2.PointFromCoords(p[0], p[1], p[2])
	}

	shortest := s1.InfAngle()
	for _, t := range lattice.Triangles() {
		for k := 0; k < 3; k++ {
			a := points[t[k]].Distance(points[t[(k+1)%3]])
			if a < shortest {
				shortest = a
			}
		}
	}
	return shortest
}

// MinEdgeLength is the shortest chord between two neighbouring vertices of a
// geodesic sphere with the given radius and frequency.
func MinEdgeLength(radius float64, frequency int) float64 {
	return chordLength(MinEdgeAngle(frequency), radius)
}

func chordLength(a s1.Angle, radius float64) float64 {
	return 2 * radius * math.Sin(a.Radians()/2)
}

// SafePrecision returns the coarsest weld precision whose quantum is at most a
// quarter of the shortest edge.
func SafePrecision(radius float64, frequency int) (int, error) {
	if err := ValidateParameters(radius, frequency, 0); err != nil {
		return 0, err
	}
	minEdge := MinEdgeLength(radius, frequency)
	digits := int(math.Ceil(-math.Log10(minEdge / 4)))
	if digits < 0 {
		digits = 0
	}
	if err := CheckPrecision(radius, frequency, digits); err != nil {
		return 0, err
	}
	return digits, nil
}

// CheckPrecision reports whether welding at the given precision is safe for
// the radius and frequency. A quantum larger than a quarter of the shortest
// edge can merge distinct vertices; one below the seam noise can leave seam
// vertices unmerged.
func CheckPrecision(radius float64, frequency, precision int) error {
	if err := ValidateParameters(radius, frequency, precision); err != nil {
		return err
	}
	quantum := math.Pow10(-precision)
	minEdge := MinEdgeLength(radius, frequency)
	if quantum > minEdge/4 {
		return fmt.Errorf("%w: quantum %g too coarse for shortest edge %g (r=%v, f=%d)",
			ErrDegenerateWelding, quantum, minEdge, radius, frequency)
	}
	if quantum < radius*seamNoise {
		return fmt.Errorf("%w: quantum %g below seam noise %g (r=%v)",
			ErrDegenerateWelding, quantum, radius*seamNoise, radius)
	}
	return nil
}
