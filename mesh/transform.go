package mesh

import "github.com/go-gl/mathgl/mgl64"

// Transform represents a position in 3D space
type Transform struct {
	Position        mgl64.Vec3
	Rotation        mgl64.Quat
	InverseRotation mgl64.Quat
}

// NewTransform creates an identity transform
func NewTransform() Transform {
	return Transform{
		Position: mgl64.Vec3{0, 0, 0},
		Rotation: mgl64.QuatIdent(),
	}
}

// SetRotation sets the rotation and keeps the cached inverse in sync.
func (t *Transform) SetRotation(r mgl64.Quat) {
	t.Rotation = r
	t.InverseRotation = r.Inverse()
}

// TransformPoint maps a point from local space to world space.
func (t Transform) TransformPoint(p mgl64.Vec3) mgl64.Vec3 {
	return t.Rotation.Rotate(p).Add(t.Position)
}

// TransformVector rotates a direction from local space to world space
// without translating it.
func (t Transform) TransformVector(v mgl64.Vec3) mgl64.Vec3 {
	return t.Rotation.Rotate(v)
}

// InverseTransformPoint maps a world-space point into this transform's
// local space.
func (t Transform) InverseTransformPoint(p mgl64.Vec3) mgl64.Vec3 {
	inv := t.InverseRotation
	if inv == (mgl64.Quat{}) {
		inv = t.Rotation.Inverse()
	}
	return inv.Rotate(p.Sub(t.Position))
}

// PointInOther maps a point expressed in this transform's local frame into
// the local frame of other: world = t.TransformPoint(p), result =
// other.InverseTransformPoint(world). Used to bring one mesh's triangle
// vertices into another mesh's local frame for closest-point probes (see
// the broadphase augmentation pass).
func (t Transform) PointInOther(p mgl64.Vec3, other Transform) mgl64.Vec3 {
	return other.InverseTransformPoint(t.TransformPoint(p))
}
