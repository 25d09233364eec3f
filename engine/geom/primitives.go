package geom

import (
	"math"

	"github.com/1siamBot/csg-viewer/engine/math3d"
)

// Cube builds an axis-aligned box spanning [0,w] x [0,h] x [0,d], faces
// wound outward.
func Cube(w, h, d float64) *Solid {
	v := func(x, y, z float64) math3d.Vec3 { return math3d.V3(x, y, z) }
	polys := []Polygon{
		NewPolygon(v(0, 0, 0), v(w, 0, 0), v(w, 0, d), v(0, 0, d)), // bottom
		NewPolygon(v(0, h, 0), v(0, h, d), v(w, h, d), v(w, h, 0)), // top
		NewPolygon(v(0, 0, 0), v(0, h, 0), v(w, h, 0), v(w, 0, 0)), // near
		NewPolygon(v(0, 0, d), v(w, 0, d), v(w, h, d), v(0, h, d)), // far
		NewPolygon(v(0, 0, 0), v(0, 0, d), v(0, h, d), v(0, h, 0)), // left
		NewPolygon(v(w, 0, 0), v(w, h, 0), v(w, h, d), v(w, 0, d)), // right
	}
	return NewSolid(polys)
}

// Sphere builds a latitude/longitude sphere of the given radius centered at
// the origin. Poles produce triangles, everything else quads.
func Sphere(radius float64, slices, stacks int) *Solid {
	if slices < 3 {
		slices = 3
	}
	if stacks < 2 {
		stacks = 2
	}

	point := func(theta, phi float64) math3d.Vec3 {
		theta *= 2 * math.Pi
		phi *= math.Pi
		return math3d.V3(
			math.Cos(theta)*math.Sin(phi),
			math.Cos(phi),
			math.Sin(theta)*math.Sin(phi),
		).Scale(radius)
	}

	var polys []Polygon
	for i := 0; i < slices; i++ {
		for j := 0; j < stacks; j++ {
			var verts []math3d.Vec3
			verts = append(verts, point(float64(i)/float64(slices), float64(j)/float64(stacks)))
			if j > 0 {
				verts = append(verts, point(float64(i+1)/float64(slices), float64(j)/float64(stacks)))
			}
			if j < stacks-1 {
				verts = append(verts, point(float64(i+1)/float64(slices), float64(j+1)/float64(stacks)))
			}
			verts = append(verts, point(float64(i)/float64(slices), float64(j+1)/float64(stacks)))
			polys = append(polys, NewPolygon(verts...))
		}
	}
	return NewSolid(polys)
}

// Cylinder builds a capped cylinder of the given radius along the Y axis,
// from -height/2 to +height/2.
func Cylinder(radius, height float64, slices int) *Solid {
	if slices < 3 {
		slices = 3
	}
	hh := height / 2
	top := math3d.V3(0, hh, 0)
	bot := math3d.V3(0, -hh, 0)

	rim := func(i int, y float64) math3d.Vec3 {
		a := float64(i) / float64(slices) * 2 * math.Pi
		return math3d.V3(radius*math.Cos(a), y, radius*math.Sin(a))
	}

	var polys []Polygon
	for i := 0; i < slices; i++ {
		p0b := rim(i, -hh)
		p1b := rim(i+1, -hh)
		p0t := rim(i, hh)
		p1t := rim(i+1, hh)

		polys = append(polys,
			NewPolygon(p0b, p0t, p1t, p1b),
			NewPolygon(top, p1t, p0t),
			NewPolygon(bot, p0b, p1b),
		)
	}
	return NewSolid(polys)
}

// DemoSolid is the startup scene: a unit cube unioned with a sphere sitting
// at the cube's origin corner.
func DemoSolid() *Solid {
	return Cube(1, 1, 1).Union(Sphere(1, 16, 8))
}
