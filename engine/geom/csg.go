package geom

// Boolean operations on solids via BSP clipping. Each operation builds a BSP
// tree per operand, clips each tree against the other, and merges the
// surviving faces. Faces spanning a splitting plane are cut along it, so the
// result is again a closed surface made of convex polygons.

import "github.com/1siamBot/csg-viewer/engine/math3d"

// planeEps is the thickness of a splitting plane: vertices closer than this
// count as lying on it.
const planeEps = 1e-5

const (
	sideCoplanar = 0
	sideFront    = 1
	sideBack     = 2
	sideSpanning = 3
)

// splitPolygon sorts poly into the four output lists relative to the plane,
// cutting it in two if it spans.
func (pl Plane) splitPolygon(poly Polygon, coplanarFront, coplanarBack, front, back *[]Polygon) {
	polyType := 0
	types := make([]int, len(poly.Vertices))
	for i, v := range poly.Vertices {
		d := pl.Normal.Dot(v) - pl.W
		t := sideCoplanar
		if d < -planeEps {
			t = sideBack
		} else if d > planeEps {
			t = sideFront
		}
		polyType |= t
		types[i] = t
	}

	switch polyType {
	case sideCoplanar:
		if pl.Normal.Dot(poly.Plane.Normal) > 0 {
			*coplanarFront = append(*coplanarFront, poly)
		} else {
			*coplanarBack = append(*coplanarBack, poly)
		}
	case sideFront:
		*front = append(*front, poly)
	case sideBack:
		*back = append(*back, poly)
	case sideSpanning:
		var f, b []math3d.Vec3
		n := len(poly.Vertices)
		for i := 0; i < n; i++ {
			j := (i + 1) % n
			ti, tj := types[i], types[j]
			vi, vj := poly.Vertices[i], poly.Vertices[j]
			if ti != sideBack {
				f = append(f, vi)
			}
			if ti != sideFront {
				b = append(b, vi)
			}
			if (ti | tj) == sideSpanning {
				t := (pl.W - pl.Normal.Dot(vi)) / pl.Normal.Dot(vj.Sub(vi))
				v := vi.Lerp(vj, t)
				f = append(f, v)
				b = append(b, v)
			}
		}
		if len(f) >= 3 {
			*front = append(*front, Polygon{Vertices: f, Plane: poly.Plane})
		}
		if len(b) >= 3 {
			*back = append(*back, Polygon{Vertices: b, Plane: poly.Plane})
		}
	}
}

// bspNode is one node of a solid's BSP tree. Coplanar faces live on the
// node, everything else goes down the front/back subtrees.
type bspNode struct {
	plane    *Plane
	front    *bspNode
	back     *bspNode
	polygons []Polygon
}

func newBSPNode(polygons []Polygon) *bspNode {
	n := &bspNode{}
	n.build(polygons)
	return n
}

// invert swaps solid and empty space below this node.
func (n *bspNode) invert() {
	for i := range n.polygons {
		n.polygons[i] = n.polygons[i].Flipped()
	}
	if n.plane != nil {
		p := n.plane.Flipped()
		n.plane = &p
	}
	if n.front != nil {
		n.front.invert()
	}
	if n.back != nil {
		n.back.invert()
	}
	n.front, n.back = n.back, n.front
}

// clipPolygons removes the parts of the given polygons inside this node's
// solid volume.
func (n *bspNode) clipPolygons(polygons []Polygon) []Polygon {
	if n.plane == nil {
		return clonePolygons(polygons)
	}
	var front, back []Polygon
	for _, p := range polygons {
		n.plane.splitPolygon(p, &front, &back, &front, &back)
	}
	if n.front != nil {
		front = n.front.clipPolygons(front)
	}
	if n.back != nil {
		back = n.back.clipPolygons(back)
	} else {
		back = nil
	}
	return append(front, back...)
}

// clipTo removes the parts of this tree's polygons inside other's volume.
func (n *bspNode) clipTo(other *bspNode) {
	n.polygons = other.clipPolygons(n.polygons)
	if n.front != nil {
		n.front.clipTo(other)
	}
	if n.back != nil {
		n.back.clipTo(other)
	}
}

func (n *bspNode) allPolygons() []Polygon {
	out := clonePolygons(n.polygons)
	if n.front != nil {
		out = append(out, n.front.allPolygons()...)
	}
	if n.back != nil {
		out = append(out, n.back.allPolygons()...)
	}
	return out
}

// build inserts polygons into the tree, using the first polygon's plane as
// the splitting plane of an empty node.
func (n *bspNode) build(polygons []Polygon) {
	if len(polygons) == 0 {
		return
	}
	if n.plane == nil {
		p := polygons[0].Plane
		n.plane = &p
	}
	var front, back []Polygon
	for _, p := range polygons {
		n.plane.splitPolygon(p, &n.polygons, &n.polygons, &front, &back)
	}
	if len(front) > 0 {
		if n.front == nil {
			n.front = &bspNode{}
		}
		n.front.build(front)
	}
	if len(back) > 0 {
		if n.back == nil {
			n.back = &bspNode{}
		}
		n.back.build(back)
	}
}

// Union returns the combined volume of s and o.
func (s *Solid) Union(o *Solid) *Solid {
	a := newBSPNode(clonePolygons(s.Polygons))
	b := newBSPNode(clonePolygons(o.Polygons))
	a.clipTo(b)
	b.clipTo(a)
	b.invert()
	b.clipTo(a)
	b.invert()
	a.build(b.allPolygons())
	return NewSolid(a.allPolygons())
}

// Subtract returns the volume of s with o carved out.
func (s *Solid) Subtract(o *Solid) *Solid {
	a := newBSPNode(clonePolygons(s.Polygons))
	b := newBSPNode(clonePolygons(o.Polygons))
	a.invert()
	a.clipTo(b)
	b.clipTo(a)
	b.invert()
	b.clipTo(a)
	b.invert()
	a.build(b.allPolygons())
	a.invert()
	return NewSolid(a.allPolygons())
}

// Intersect returns the volume common to s and o.
func (s *Solid) Intersect(o *Solid) *Solid {
	a := newBSPNode(clonePolygons(s.Polygons))
	b := newBSPNode(clonePolygons(o.Polygons))
	a.invert()
	b.clipTo(a)
	b.invert()
	a.clipTo(b)
	b.clipTo(a)
	a.build(b.allPolygons())
	a.invert()
	return NewSolid(a.allPolygons())
}
