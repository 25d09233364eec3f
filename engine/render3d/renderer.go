package render3d

import (
	"image/color"
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/1siamBot/csg-viewer/engine/geom"
	"github.com/1siamBot/csg-viewer/engine/math3d"
)

// RenderTri is one visible triangle ready for compositing: its average
// camera-space depth, depth shade, and the three projected points. The
// whole set is rebuilt every frame and thrown away after drawing.
type RenderTri struct {
	Depth      float64
	Shade      float64
	P0, P1, P2 math3d.Vec2
}

// BuildFrame runs the per-frame pipeline over the world triangles:
// transform all three vertices into camera space, average their depth,
// derive the shade, project, and sort the survivors back-to-front. A
// triangle is dropped outright if any of its vertices fails the near-plane
// test; there is no partial clipping.
func BuildFrame(view math3d.Mat4, tris []geom.Triangle) []RenderTri {
	out := make([]RenderTri, 0, len(tris))
	for _, tr := range tris {
		v0 := view.TransformPoint(tr.P0)
		v1 := view.TransformPoint(tr.P1)
		v2 := view.TransformPoint(tr.P2)

		depth := (v0.Z + v1.Z + v2.Z) / 3

		p0, ok0 := Project(v0)
		p1, ok1 := Project(v1)
		p2, ok2 := Project(v2)
		if !ok0 || !ok1 || !ok2 {
			continue
		}

		out = append(out, RenderTri{
			Depth: depth,
			Shade: DepthShade(depth),
			P0:    p0,
			P1:    p1,
			P2:    p2,
		})
	}
	SortBackToFront(out)
	return out
}

// SortBackToFront orders records farthest-first so nearer triangles are
// painted over farther ones. NaN depths compare as equal on purpose:
// degenerate geometry must not abort the sort.
func SortBackToFront(recs []RenderTri) {
	sort.Slice(recs, func(i, j int) bool {
		return recs[i].Depth > recs[j].Depth
	})
}

// Renderer composites sorted records onto an ebiten canvas as filled,
// outlined triangles.
type Renderer struct {
	Palette     Palette
	Scale       float64 // screen pixels per projected unit
	StrokeWidth float32

	whiteImg *ebiten.Image
}

func NewRenderer() *Renderer {
	return &Renderer{
		Palette:     Grayscale{},
		Scale:       100,
		StrokeWidth: 1,
	}
}

// ScreenPos maps a projected point to pixels: canvas center plus the scaled
// projection plus the pan offset.
func (r *Renderer) ScreenPos(p math3d.Vec2, cx, cy, panX, panY float64) (float32, float32) {
	return float32(cx + p.X*r.Scale + panX), float32(cy + p.Y*r.Scale + panY)
}

// Draw paints the records in the order given. Each triangle is filled with
// vertex colors against a white texture, then outlined, so a nearer fill
// covers a farther outline.
func (r *Renderer) Draw(screen *ebiten.Image, recs []RenderTri, panX, panY float64) {
	if r.whiteImg == nil {
		// 3x3 so the sampled texel at (1,1) has white neighbors
		r.whiteImg = ebiten.NewImage(3, 3)
		r.whiteImg.Fill(color.White)
	}

	b := screen.Bounds()
	cx := float64(b.Min.X) + float64(b.Dx())/2
	cy := float64(b.Min.Y) + float64(b.Dy())/2

	var vs [3]ebiten.Vertex
	idx := []uint16{0, 1, 2}
	for _, rec := range recs {
		fill, stroke := r.Palette.Colors(rec.Shade)

		x0, y0 := r.ScreenPos(rec.P0, cx, cy, panX, panY)
		x1, y1 := r.ScreenPos(rec.P1, cx, cy, panX, panY)
		x2, y2 := r.ScreenPos(rec.P2, cx, cy, panX, panY)

		cr := float32(fill.R) / 255
		cg := float32(fill.G) / 255
		cb := float32(fill.B) / 255
		vs[0] = ebiten.Vertex{DstX: x0, DstY: y0, SrcX: 1, SrcY: 1, ColorR: cr, ColorG: cg, ColorB: cb, ColorA: 1}
		vs[1] = ebiten.Vertex{DstX: x1, DstY: y1, SrcX: 1, SrcY: 1, ColorR: cr, ColorG: cg, ColorB: cb, ColorA: 1}
		vs[2] = ebiten.Vertex{DstX: x2, DstY: y2, SrcX: 1, SrcY: 1, ColorR: cr, ColorG: cg, ColorB: cb, ColorA: 1}
		screen.DrawTriangles(vs[:], idx, r.whiteImg, nil)

		vector.StrokeLine(screen, x0, y0, x1, y1, r.StrokeWidth, stroke, false)
		vector.StrokeLine(screen, x1, y1, x2, y2, r.StrokeWidth, stroke, false)
		vector.StrokeLine(screen, x2, y2, x0, y0, r.StrokeWidth, stroke, false)
	}
}
