package geometry

// CustomGeometryData is the host-facing registration handle for a Geometry:
// the shape plus the additional outer margin the broad phase should widen
// its queries by. It is the Go equivalent of the host engine's
// dGeomID/CustomGeometryData pair — the class-data payload attached to a
// registered geometry handle.
type CustomGeometryData struct {
	Geometry    *Geometry
	OuterMargin float64
}

// CreateCustom registers geom with the given outer margin, equivalent to
// dCreateCustomGeometry. The outer margin is added to geom's own inner
// margin wherever a generator needs the combined tolerance.
func CreateCustom(geom *Geometry, outerMargin float64) *CustomGeometryData {
	return &CustomGeometryData{Geometry: geom, OuterMargin: outerMargin}
}

// totalMargin is the tolerance a generator should use for this handle: the
// geometry's own margin plus the handle's outer margin.
func (d *CustomGeometryData) totalMargin() float64 {
	return d.Geometry.Margin + d.OuterMargin
}

// AABB returns d's geometry bounding box inflated by its outer margin, in
// the host engine's [xmin,xmax,ymin,ymax,zmin,zmax] layout.
func AABB(d *CustomGeometryData) [6]float64 {
	return d.Geometry.AABB().Inflate(d.OuterMargin).Array()
}

// initialized records whether Init has run.
var initialized bool

// Init performs one-time package setup. Dispatch here is a static type
// switch rather than a registered collider-class callback, so there is no
// process-wide class id to assign; Init exists only as a one-time entry
// point for callers that expect a registration step before the first
// Collide call.
func Init() {
	initialized = true
}
