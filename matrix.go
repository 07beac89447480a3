package geodome

import "github.com/go-gl/mathgl/mgl64"

// Transform returns a copy of the mesh with every vertex multiplied by the
// homogeneous matrix t. Faces are shared in order; a mirroring transform will
// therefore flip their winding.
func (m *Mesh) Transform(t mgl64.Mat4) *Mesh {
	out := m.Copy()
	for i, v := range out.Vertices {
		out.Vertices[i] = mgl64.TransformCoordinate(v, t)
	}
	return out
}

// Placement builds the matrix used to drop a dome into a scene: a rotation
// about each axis (radians, applied X then Y then Z) followed by a translation.
func Placement(position, rotation mgl64.Vec3) mgl64.Mat4 {
	rot := mgl64.HomogRotate3DZ(rotation.Z()).
		Mul4(mgl64.HomogRotate3DY(rotation.Y())).
		Mul4(mgl64.HomogRotate3DX(rotation.X()))
	return mgl64.Translate3D(position.X(), position.Y(), position.Z()).Mul4(rot)
}
