package geom

import "github.com/1siamBot/csg-viewer/engine/math3d"

// Triangle is a single world-space triangle. Immutable once built; the
// renderer only ever reads it.
type Triangle struct {
	P0, P1, P2 math3d.Vec3
}

// Plane is an oriented plane in Hesse normal form: Normal.Dot(p) == W for
// points on the plane.
type Plane struct {
	Normal math3d.Vec3
	W      float64
}

// PlaneFromPoints derives the plane through three points. The normal follows
// the winding of (a, b, c); a degenerate triple yields a zero normal.
func PlaneFromPoints(a, b, c math3d.Vec3) Plane {
	n := b.Sub(a).Cross(c.Sub(a)).Normalize()
	return Plane{Normal: n, W: n.Dot(a)}
}

// Flipped returns the plane facing the other way.
func (p Plane) Flipped() Plane {
	return Plane{Normal: p.Normal.Neg(), W: -p.W}
}

// Polygon is a convex planar face with at least three vertices, wound
// counter-clockwise when seen from the outside (plane normal side).
type Polygon struct {
	Vertices []math3d.Vec3
	Plane    Plane
}

// NewPolygon builds a polygon and caches its plane.
func NewPolygon(vertices ...math3d.Vec3) Polygon {
	return Polygon{
		Vertices: vertices,
		Plane:    PlaneFromPoints(vertices[0], vertices[1], vertices[2]),
	}
}

// Flipped returns the polygon with reversed winding.
func (p Polygon) Flipped() Polygon {
	rev := make([]math3d.Vec3, len(p.Vertices))
	for i, v := range p.Vertices {
		rev[len(p.Vertices)-1-i] = v
	}
	return Polygon{Vertices: rev, Plane: p.Plane.Flipped()}
}

// Triangles fan-triangulates the polygon. Convexity is assumed; every face
// the primitives and the BSP splitter produce is convex.
func (p Polygon) Triangles() []Triangle {
	if len(p.Vertices) < 3 {
		return nil
	}
	out := make([]Triangle, 0, len(p.Vertices)-2)
	for i := 2; i < len(p.Vertices); i++ {
		out = append(out, Triangle{p.Vertices[0], p.Vertices[i-1], p.Vertices[i]})
	}
	return out
}

// Solid is a closed surface described by boundary polygons.
type Solid struct {
	Polygons []Polygon
}

// NewSolid wraps a polygon list. Polygons with a degenerate plane are
// dropped so they cannot poison BSP construction.
func NewSolid(polygons []Polygon) *Solid {
	kept := make([]Polygon, 0, len(polygons))
	for _, p := range polygons {
		if len(p.Vertices) >= 3 && p.Plane.Normal.Len() > 0.5 {
			kept = append(kept, p)
		}
	}
	return &Solid{Polygons: kept}
}

// Triangles triangulates every face of the solid.
func (s *Solid) Triangles() []Triangle {
	var out []Triangle
	for _, p := range s.Polygons {
		out = append(out, p.Triangles()...)
	}
	return out
}

func clonePolygons(polys []Polygon) []Polygon {
	out := make([]Polygon, len(polys))
	copy(out, polys)
	return out
}
