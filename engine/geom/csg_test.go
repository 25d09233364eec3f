package geom

import (
	"math"
	"testing"

	"github.com/1siamBot/csg-viewer/engine/math3d"
)

func allFinite(tris []Triangle) bool {
	ok := func(v math3d.Vec3) bool {
		return !math.IsNaN(v.X) && !math.IsInf(v.X, 0) &&
			!math.IsNaN(v.Y) && !math.IsInf(v.Y, 0) &&
			!math.IsNaN(v.Z) && !math.IsInf(v.Z, 0)
	}
	for _, tr := range tris {
		if !ok(tr.P0) || !ok(tr.P1) || !ok(tr.P2) {
			return false
		}
	}
	return true
}

func TestCubeTriangleCount(t *testing.T) {
	tris := Cube(1, 1, 1).Triangles()
	if len(tris) != 12 {
		t.Errorf("cube has %d triangles, want 12", len(tris))
	}
}

func TestSphereTriangleCount(t *testing.T) {
	// 16 slices x 8 stacks: pole rings are triangles, the rest quads.
	s := Sphere(1, 16, 8)
	if len(s.Polygons) != 16*8 {
		t.Errorf("sphere has %d faces, want %d", len(s.Polygons), 16*8)
	}
	want := 16*2 + 16*6*2 // 2 pole rings of triangles + 6 rings of quads
	if got := len(s.Triangles()); got != want {
		t.Errorf("sphere has %d triangles, want %d", got, want)
	}
}

func TestSphereOnRadius(t *testing.T) {
	for _, p := range Sphere(2.5, 8, 4).Polygons {
		for _, v := range p.Vertices {
			if math.Abs(v.Len()-2.5) > 1e-9 {
				t.Fatalf("vertex %v not on radius 2.5", v)
			}
		}
	}
}

func TestUnionDisjoint(t *testing.T) {
	// Two boxes far apart: union keeps every face of both.
	a := Cube(1, 1, 1)
	b := translated(Cube(1, 1, 1), math3d.V3(10, 0, 0))
	u := a.Union(b)
	if got := len(u.Triangles()); got != 24 {
		t.Errorf("disjoint union has %d triangles, want 24", got)
	}
}

func TestUnionOverlapping(t *testing.T) {
	a := Cube(1, 1, 1)
	b := translated(Cube(1, 1, 1), math3d.V3(0.5, 0.5, 0.5))
	u := a.Union(b)

	tris := u.Triangles()
	if len(tris) == 0 {
		t.Fatal("overlapping union is empty")
	}
	if !allFinite(tris) {
		t.Fatal("union produced non-finite vertices")
	}
	// No surviving vertex may be strictly inside either operand.
	inside := func(v math3d.Vec3, lo, hi math3d.Vec3) bool {
		const e = 1e-6
		return v.X > lo.X+e && v.X < hi.X-e &&
			v.Y > lo.Y+e && v.Y < hi.Y-e &&
			v.Z > lo.Z+e && v.Z < hi.Z-e
	}
	for _, tr := range tris {
		for _, v := range []math3d.Vec3{tr.P0, tr.P1, tr.P2} {
			if inside(v, math3d.V3(0, 0, 0), math3d.V3(1, 1, 1)) ||
				inside(v, math3d.V3(0.5, 0.5, 0.5), math3d.V3(1.5, 1.5, 1.5)) {
				t.Fatalf("vertex %v is inside an operand", v)
			}
		}
	}
}

func TestSubtractShrinks(t *testing.T) {
	a := Cube(2, 2, 2)
	b := translated(Cube(2, 2, 2), math3d.V3(1, 1, 1))
	d := a.Subtract(b)

	tris := d.Triangles()
	if len(tris) == 0 {
		t.Fatal("subtract result is empty")
	}
	if !allFinite(tris) {
		t.Fatal("subtract produced non-finite vertices")
	}
	// Nothing may remain inside the subtracted volume.
	const e = 1e-6
	for _, tr := range tris {
		for _, v := range []math3d.Vec3{tr.P0, tr.P1, tr.P2} {
			if v.X > 1+e && v.Y > 1+e && v.Z > 1+e &&
				v.X < 3-e && v.Y < 3-e && v.Z < 3-e {
				t.Fatalf("vertex %v survived inside the subtracted cube", v)
			}
		}
	}
}

func TestIntersectBounds(t *testing.T) {
	a := Cube(2, 2, 2)
	b := translated(Cube(2, 2, 2), math3d.V3(1, 1, 1))
	x := a.Intersect(b)

	tris := x.Triangles()
	if len(tris) == 0 {
		t.Fatal("intersect result is empty")
	}
	// The intersection of the two cubes is [1,2]^3.
	const e = 1e-6
	for _, tr := range tris {
		for _, v := range []math3d.Vec3{tr.P0, tr.P1, tr.P2} {
			if v.X < 1-e || v.Y < 1-e || v.Z < 1-e ||
				v.X > 2+e || v.Y > 2+e || v.Z > 2+e {
				t.Fatalf("vertex %v outside the intersection bounds", v)
			}
		}
	}
}

func TestDemoSolid(t *testing.T) {
	tris := DemoSolid().Triangles()
	if len(tris) == 0 {
		t.Fatal("demo solid is empty")
	}
	if !allFinite(tris) {
		t.Fatal("demo solid has non-finite vertices")
	}
	// The sphere pokes out past the cube in -X, the cube's far corner pokes
	// out past the sphere: both operands must contribute surface.
	var minX, maxLen float64
	for _, tr := range tris {
		for _, v := range []math3d.Vec3{tr.P0, tr.P1, tr.P2} {
			if v.X < minX {
				minX = v.X
			}
			if l := v.Len(); l > maxLen {
				maxLen = l
			}
		}
	}
	if minX > -0.9 {
		t.Errorf("min X = %v, expected sphere surface near -1", minX)
	}
	if maxLen < 1.2 {
		t.Errorf("max |v| = %v, expected cube corner beyond radius 1", maxLen)
	}
}

// translated shifts every vertex of a solid. Test helper only; solids are
// otherwise immutable after construction.
func translated(s *Solid, off math3d.Vec3) *Solid {
	polys := make([]Polygon, len(s.Polygons))
	for i, p := range s.Polygons {
		verts := make([]math3d.Vec3, len(p.Vertices))
		for j, v := range p.Vertices {
			verts[j] = v.Add(off)
		}
		polys[i] = NewPolygon(verts...)
	}
	return NewSolid(polys)
}
