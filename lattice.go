package geodome

import "github.com/go-gl/mathgl/mgl64"

// Lattice is the triangular grid of points of one subdivided face. Row r holds
// frequency-r+1 points; they are stored row after row in a single slice.
type Lattice struct {
	frequency int
	points    []mgl64.Vec3
}

// LatticeSize is the number of points in a lattice of the given frequency.
func LatticeSize(frequency int) int {
	return (frequency + 1) * (frequency + 2) / 2
}

// NewLattice interpolates the flat triangle v1, v2, v3. Point (row, col) is
// v1 + col/F*(v2-v1) + row/F*(v3-v1); it is not projected onto the sphere.
func NewLattice(v1, v2, v3 mgl64.Vec3, frequency int) *Lattice {
	l := &Lattice{
		frequency: frequency,
		points:    make([]mgl64.Vec3, LatticeSize(frequency)),
	}

	f := float64(frequency)
	edgeCol := v2.Sub(v1)
	edgeRow := v3.Sub(v1)
	for row := 0; row <= frequency; row++ {
		for col := 0; col <= frequency-row; col++ {
			vecCol := edgeCol.Mul(float64(col) / f)
			vecRow := edgeRow.Mul(float64(row) / f)
			l.points[l.Index(row, col)] = v1.Add(vecCol.Add(vecRow))
		}
	}
	return l
}

func (l *Lattice) Frequency() int {
	return l.frequency
}

// Index is the offset of (row, col) in the flat point slice.
func (l *Lattice) Index(row, col int) int {
	return row*(l.frequency+1) - row*(row-1)/2 + col
}

func (l *Lattice) Point(row, col int) mgl64.Vec3 {
	return l.points[l.Index(row, col)]
}

func (l *Lattice) Len() int {
	return len(l.points)
}

// Triangles returns the lattice triangles as triples of flat indices. Each
// cell gets an upward triangle, and a downward one unless it is the last
// cell of its row.
func (l *Lattice) Triangles() [][3]int {
	f := l.frequency
	tris := make([][3]int, 0, f*f)
	for row := 0; row < f; row++ {
		for col := 0; col < f-row; col++ {
			tris = append(tris, [3]int{
				l.Index(row, col),
				l.Index(row, col+1),
				l.Index(row+1, col),
			})
			if col < f-row-1 {
				tris = append(tris, [3]int{
					l.Index(row, col+1),
					l.Index(row+1, col+1),
					l.Index(row+1, col),
				})
			}
		}
	}
	return tris
}

// Weld passes every lattice point through w and returns the lattice
// triangles rewritten with the welder's global vertex indices.
func (l *Lattice) Weld(w *Welder, radius float64) [][3]int {
	global := make([]int, len(l.points))
	for i, p := range l.points {
		global[i] = w.Weld(p, radius)
	}

	local := l.Triangles()
	faces := make([][3]int, len(local))
	for i, t := range local {
		faces[i] = [3]int{global[t[0]], global[t[1]], global[t[2]]}
	}
	return faces
}
