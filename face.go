package geodome

import "github.com/go-gl/mathgl/mgl64"

// Normal returns the unit normal of face i. For a generated sphere it points
// away from the origin.
func (m *Mesh) Normal(i int) mgl64.Vec3 {
	p1, p2, p3 := m.FacePoints(i)
	return triangleNormal(p1, p2, p3)
}

func triangleNormal(p1, p2, p3 mgl64.Vec3) mgl64.Vec3 {
	u := p2.Sub(p1)
	v := p3.Sub(p2)
	n := u.Cross(v)
	if n.Len() == 0 {
		return mgl64.Vec3{0, 0, 1}
	}
	return n.Normalize()
}

func triangleArea(p1, p2, p3 mgl64.Vec3) float64 {
	return p2.Sub(p1).Cross(p3.Sub(p1)).Len() / 2
}

// Centroid of face i.
func (m *Mesh) Centroid(i int) mgl64.Vec3 {
	p1, p2, p3 := m.FacePoints(i)
	return p1.Add(p2).Add(p3).Mul(1.0 / 3.0)
}
