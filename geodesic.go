// Package geodome builds geodesic spheres by subdividing the faces of an
// icosahedron and projecting the lattice points onto the sphere.
package geodome

import (
	"fmt"
	"io"
	"log"
	"math"
)

type options struct {
	precision int
	logger    *log.Logger
}

type Option func(*options)

// WithPrecision sets the number of decimal digits used to weld vertices.
func WithPrecision(digits int) Option {
	return func(o *options) {
		o.precision = digits
	}
}

func WithLogger(l *log.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

// Assembler collects the welded faces of every subdivided base face.
type Assembler struct {
	faces [][3]int
}

func NewAssembler(frequency int) *Assembler {
	return &Assembler{faces: make([][3]int, 0, 20*frequency*frequency)}
}

func (a *Assembler) Append(faces [][3]int) {
	a.faces = append(a.faces, faces...)
}

// Mesh freezes the collected faces together with the welder's vertices.
func (a *Assembler) Mesh(w *Welder) *Mesh {
	faces := make([][3]int, len(a.faces))
	copy(faces, a.faces)
	return &Mesh{
		Vertices: w.Vertices(),
		Faces:    faces,
	}
}

// ValidateParameters rejects inputs Generate cannot build a sphere from.
func ValidateParameters(radius float64, frequency, precision int) error {
	if math.IsNaN(radius) || math.IsInf(radius, 0) || radius <= 0 {
		return fmt.Errorf("%w: radius must be positive, got %v", ErrInvalidParameter, radius)
	}
	if frequency < 1 {
		return fmt.Errorf("%w: frequency must be at least 1, got %d", ErrInvalidParameter, frequency)
	}
	if precision < 0 || precision > MaxPrecision {
		return fmt.Errorf("%w: precision %d outside [0, %d]", ErrInvalidParameter, precision, MaxPrecision)
	}
	// weld keys are exact integers only below 2^53
	if radius*math.Pow10(precision) >= 1<<53 {
		return fmt.Errorf("%w: radius %v too large for precision %d", ErrInvalidParameter, radius, precision)
	}
	return nil
}

// Generate builds a geodesic sphere of the given radius whose icosahedron
// edges are each split into frequency segments. The result has 20*F^2 faces
// and, when the weld precision suits the radius and frequency, 10*F^2+2
// vertices. See CheckPrecision.
func Generate(radius float64, frequency int, opts ...Option) (*Mesh, error) {
	o := options{
		precision: DefaultPrecision,
		logger:    log.New(io.Discard, "", 0),
	}
	for _, set := range opts {
		set(&o)
	}

	if err := ValidateParameters(radius, frequency, o.precision); err != nil {
		return nil, err
	}

	welder, err := NewWelder(o.precision)
	if err != nil {
		return nil, err
	}
	assembler := NewAssembler(frequency)

	base := IcosahedronVertices()
	for _, face := range IcosahedronFaces() {
		lattice := NewLattice(base[face[0]], base[face[1]], base[face[2]], frequency)
		assembler.Append(lattice.Weld(welder, radius))
	}

	mesh := assembler.Mesh(welder)
	o.logger.Printf("geodesic sphere r=%v f=%d: %d vertices (%d evaluated), %d faces",
		radius, frequency, mesh.VertexCount(), welder.Evaluated(), mesh.FaceCount())
	return mesh, nil
}

// ExpectedCounts returns the vertex and face counts of a correctly welded
// sphere of the given frequency.
func ExpectedCounts(frequency int) (vertices, faces int) {
	f2 := frequency * frequency
	return 10*f2 + 2, 20 * f2
}
