package geodome

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// DefaultPrecision is the number of decimal digits kept in a weld key.
const DefaultPrecision = 4

// MaxPrecision is the finest weld key precision accepted.
const MaxPrecision = 15

// WeldKey is a vertex position rounded to the welder's precision and stored as
// integers so equal keys hash identically on every platform.
type WeldKey [3]int64

// Welder projects lattice points onto the sphere and merges the ones that
// round to the same key. It owns the vertex list of the mesh being built.
type Welder struct {
	precision int
	scale     float64
	vertices  []mgl64.Vec3
	index     map[WeldKey]int
	evaluated int
}

func NewWelder(precision int) (*Welder, error) {
	if precision < 0 || precision > MaxPrecision {
		return nil, fmt.Errorf("%w: precision %d outside [0, %d]", ErrInvalidParameter, precision, MaxPrecision)
	}
	return &Welder{
		precision: precision,
		scale:     math.Pow10(precision),
		vertices:  make([]mgl64.Vec3, 0, 100),
		index:     make(map[WeldKey]int),
	}, nil
}

func (w *Welder) Precision() int {
	return w.precision
}

// Quantum is the spacing of the weld key grid, 10^-precision.
func (w *Welder) Quantum() float64 {
	return 1 / w.scale
}

// Project moves p onto the sphere of the given radius, keeping its direction.
func Project(p mgl64.Vec3, radius float64) mgl64.Vec3 {
	return p.Normalize().Mul(radius)
}

func (w *Welder) Key(p mgl64.Vec3) WeldKey {
	return WeldKey{
		int64(math.Round(p[0] * w.scale)),
		int64(math.Round(p[1] * w.scale)),
		int64(math.Round(p[2] * w.scale)),
	}
}

// Weld projects p onto the sphere and returns the index of the vertex at that
// position, appending a new vertex only when no existing one shares its key.
func (w *Welder) Weld(p mgl64.Vec3, radius float64) int {
	w.evaluated++

	projected := Project(p, radius)
	key := w.Key(projected)
	if index, found := w.index[key]; found {
		return index
	}

	newIndex := len(w.vertices)
	w.vertices = append(w.vertices, projected)
	w.index[key] = newIndex
	return newIndex
}

// Lookup finds the vertex already welded at p. p must be on the sphere.
func (w *Welder) Lookup(p mgl64.Vec3) (int, bool) {
	index, found := w.index[w.Key(p)]
	return index, found
}

// Len is the number of distinct vertices welded so far.
func (w *Welder) Len() int {
	return len(w.vertices)
}

// Evaluated is the number of raw points passed to Weld.
func (w *Welder) Evaluated() int {
	return w.evaluated
}

// Vertices returns a copy of the welded vertex list.
func (w *Welder) Vertices() []mgl64.Vec3 {
	out := make([]mgl64.Vec3, len(w.vertices))
	copy(out, w.vertices)
	return out
}
