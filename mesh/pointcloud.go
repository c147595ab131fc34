package mesh

import "github.com/go-gl/mathgl/mgl64"

// PointCloud is a set of points in a local frame together with a world
// transform. It carries no topology: each point is independent.
type PointCloud struct {
	points    []mgl64.Vec3
	Transform Transform
}

// NewPointCloud builds a PointCloud from a local-frame point list. The
// slice is copied; the cloud rejects construction with no points since a
// contact generator has nothing to query against otherwise.
func NewPointCloud(points []mgl64.Vec3) (*PointCloud, error) {
	if len(points) == 0 {
		return nil, ErrEmptyPointCloud
	}
	return &PointCloud{
		points:    append([]mgl64.Vec3(nil), points...),
		Transform: NewTransform(),
	}, nil
}

// Count returns the number of points in the cloud.
func (p *PointCloud) Count() int { return len(p.points) }

// LocalPoint returns point i in the cloud's local frame.
func (p *PointCloud) LocalPoint(i int) mgl64.Vec3 { return p.points[i] }

// WorldPoint returns point i transformed into world space.
func (p *PointCloud) WorldPoint(i int) mgl64.Vec3 {
	return p.Transform.TransformPoint(p.points[i])
}
