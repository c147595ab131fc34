package mesh

import "errors"

// Sentinel errors returned by mesh construction. Callers should use
// errors.Is rather than comparing against these directly, since they may be
// wrapped with positional context.
var (
	// ErrInvalidVertexID is returned when a triangle references a vertex
	// index outside the mesh's vertex list.
	ErrInvalidVertexID = errors.New("mesh: invalid vertex id")

	// ErrDegenerateTriangle is returned when a triangle's three vertices
	// are collinear or coincident (zero area).
	ErrDegenerateTriangle = errors.New("mesh: degenerate triangle")

	// ErrEmptyPointCloud is returned when a PointCloud is constructed with
	// no points.
	ErrEmptyPointCloud = errors.New("mesh: empty point cloud")
)
