package geodome

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
)

type Mesh struct {
	Vertices []mgl64.Vec3
	Faces    [][3]int
}

func (m *Mesh) VertexCount() int {
	return len(m.Vertices)
}

func (m *Mesh) FaceCount() int {
	return len(m.Faces)
}

// Validate checks that every face index points into the vertex list.
func (m *Mesh) Validate() error {
	n := len(m.Vertices)
	for i, f := range m.Faces {
		for _, idx := range f {
			if idx < 0 || idx >= n {
				return fmt.Errorf("face %d references vertex %d, mesh has %d vertices", i, idx, n)
			}
		}
	}
	return nil
}

// FacePoints returns the three corners of face i.
func (m *Mesh) FacePoints(i int) (mgl64.Vec3, mgl64.Vec3, mgl64.Vec3) {
	f := m.Faces[i]
	return m.Vertices[f[0]], m.Vertices[f[1]], m.Vertices[f[2]]
}

func (m *Mesh) Copy() *Mesh {
	newVertices := make([]mgl64.Vec3, len(m.Vertices))
	copy(newVertices, m.Vertices)
	newFaces := make([][3]int, len(m.Faces))
	copy(newFaces, m.Faces)

	return &Mesh{
		Vertices: newVertices,
		Faces:    newFaces,
	}
}
