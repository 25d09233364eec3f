package render3d

import (
	"math"
	"testing"

	"github.com/1siamBot/csg-viewer/engine/geom"
	"github.com/1siamBot/csg-viewer/engine/math3d"
)

func TestBuildFrameScenario(t *testing.T) {
	// The reference triangle: all vertices at z=2, camera at rest.
	tris := []geom.Triangle{{
		P0: math3d.V3(0, 0, 2),
		P1: math3d.V3(1, 0, 2),
		P2: math3d.V3(0, 1, 2),
	}}
	recs := BuildFrame((&Camera{}).ViewTransform(), tris)

	if len(recs) != 1 {
		t.Fatalf("got %d records, want 1", len(recs))
	}
	r := recs[0]
	if math.Abs(r.Depth-2) > 1e-9 {
		t.Errorf("depth = %v, want 2", r.Depth)
	}
	if math.Abs(r.Shade-0.8) > 1e-9 {
		t.Errorf("shade = %v, want 0.8", r.Shade)
	}
	wants := []math3d.Vec2{math3d.V2(0, 0), math3d.V2(1, 0), math3d.V2(0, -1)}
	for i, got := range []math3d.Vec2{r.P0, r.P1, r.P2} {
		if math.Abs(got.X-wants[i].X) > 1e-9 || math.Abs(got.Y-wants[i].Y) > 1e-9 {
			t.Errorf("p%d = %v, want %v", i, got, wants[i])
		}
	}
}

func TestBuildFrameCullsBehindNearPlane(t *testing.T) {
	tris := []geom.Triangle{{
		P0: math3d.V3(0, 0, 0.05),
		P1: math3d.V3(1, 0, 0.05),
		P2: math3d.V3(0, 1, 0.05),
	}}
	recs := BuildFrame((&Camera{}).ViewTransform(), tris)
	if len(recs) != 0 {
		t.Errorf("got %d records, want 0", len(recs))
	}
}

func TestBuildFrameDropsWholeTriangle(t *testing.T) {
	// One vertex behind the near plane drops the whole triangle; there is
	// no partial clipping.
	tris := []geom.Triangle{{
		P0: math3d.V3(0, 0, 5),
		P1: math3d.V3(1, 0, 5),
		P2: math3d.V3(0, 1, 0.05),
	}}
	recs := BuildFrame((&Camera{}).ViewTransform(), tris)
	if len(recs) != 0 {
		t.Errorf("got %d records, want 0", len(recs))
	}
}

func TestBuildFrameOrdersBackToFront(t *testing.T) {
	far := geom.Triangle{P0: math3d.V3(0, 0, 5), P1: math3d.V3(1, 0, 5), P2: math3d.V3(0, 1, 5)}
	near := geom.Triangle{P0: math3d.V3(0, 0, 2), P1: math3d.V3(1, 0, 2), P2: math3d.V3(0, 1, 2)}

	recs := BuildFrame((&Camera{}).ViewTransform(), []geom.Triangle{near, far})
	if len(recs) != 2 {
		t.Fatalf("got %d records, want 2", len(recs))
	}
	if math.Abs(recs[0].Depth-5) > 1e-9 || math.Abs(recs[1].Depth-2) > 1e-9 {
		t.Errorf("depths = %v, %v; want 5 then 2", recs[0].Depth, recs[1].Depth)
	}
}

func TestSortBackToFrontIdempotent(t *testing.T) {
	recs := []RenderTri{{Depth: 1}, {Depth: 9}, {Depth: 4}, {Depth: 4}, {Depth: 0.5}}
	SortBackToFront(recs)
	once := make([]RenderTri, len(recs))
	copy(once, recs)
	SortBackToFront(recs)
	for i := range recs {
		if recs[i] != once[i] {
			t.Fatalf("second sort changed order at %d", i)
		}
	}
}

func TestSortBackToFrontToleratesNaN(t *testing.T) {
	recs := []RenderTri{
		{Depth: 3},
		{Depth: math.NaN()},
		{Depth: 7},
		{Depth: math.NaN()},
		{Depth: 1},
	}
	// NaN compares equal to everything, so the exact order is unspecified.
	// The sort must complete without panicking and keep all records.
	SortBackToFront(recs)
	if len(recs) != 5 {
		t.Fatalf("lost records: %d", len(recs))
	}
	nans, sum := 0, 0.0
	for _, r := range recs {
		if math.IsNaN(r.Depth) {
			nans++
			continue
		}
		sum += r.Depth
	}
	if nans != 2 || math.Abs(sum-11) > 1e-9 {
		t.Errorf("records corrupted: %d NaNs, sum %v", nans, sum)
	}
}

func TestScreenPos(t *testing.T) {
	r := NewRenderer() // scale 100
	x, y := r.ScreenPos(math3d.V2(0.5, -0.25), 400, 300, 10, -20)
	if x != 460 || y != 255 {
		t.Errorf("got (%v, %v), want (460, 255)", x, y)
	}

	// Pure pan moves the canvas center 1:1
	x, y = r.ScreenPos(math3d.V2(0, 0), 400, 300, -7, 13)
	if x != 393 || y != 313 {
		t.Errorf("got (%v, %v), want (393, 313)", x, y)
	}
}

func BenchmarkBuildFrame(b *testing.B) {
	tris := geom.DemoSolid().Triangles()
	view := (&Camera{Yaw: 0.6, Pitch: 0.3, Dist: 3}).ViewTransform()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		BuildFrame(view, tris)
	}
}
