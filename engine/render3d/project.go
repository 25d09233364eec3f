package render3d

import "github.com/1siamBot/csg-viewer/engine/math3d"

const (
	// NearZ is the camera-space depth below which points are culled.
	NearZ = 0.1
	// FocalLength scales the perspective divide; it stands in for a field
	// of view.
	FocalLength = 2.0
)

// Project maps a camera-space point to normalized screen-plane coordinates.
// Points in front of the near plane project to (x*f/z, -y*f/z); the Y flip
// matches a screen whose Y axis grows downward. Points with z < NearZ
// report ok=false. The test is strict, so a point exactly on the near plane
// is still visible.
func Project(p math3d.Vec3) (math3d.Vec2, bool) {
	if p.Z < NearZ {
		return math3d.Vec2{}, false
	}
	s := FocalLength / p.Z
	return math3d.V2(p.X*s, -p.Y*s), true
}
