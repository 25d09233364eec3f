package render3d

import (
	"github.com/1siamBot/csg-viewer/engine/input"
	"github.com/1siamBot/csg-viewer/engine/math3d"
)

const (
	rotateSpeed = 0.01
	panSpeed    = 0.5
	zoomSpeed   = 0.001

	// A single scroll step can shrink the distance to at most 5% of its
	// previous value, and the distance itself never reaches zero.
	minZoomFactor = 0.05
	minDist       = 0.001
)

// Camera is the orbit camera: yaw and pitch around the origin, distance
// along the view axis, and a 2D pan applied after projection. It is the
// only mutable state the render loop keeps between frames.
type Camera struct {
	Yaw   float64 // radians, rotation about the vertical axis
	Pitch float64 // radians, rotation about the horizontal axis
	Dist  float64
	PanX  float64
	PanY  float64
}

func NewCamera() *Camera {
	return &Camera{Dist: 3}
}

// Apply folds one frame's input deltas into the camera. Primary-button
// drags rotate, secondary-button drags pan, scroll zooms.
func (c *Camera) Apply(f input.Frame) {
	if f.Dragging {
		if f.Primary {
			c.Yaw -= f.DragDX * rotateSpeed
			c.Pitch += f.DragDY * rotateSpeed
		} else if f.Secondary {
			c.PanX += f.DragDX * panSpeed
			c.PanY += f.DragDY * panSpeed
		}
	}
	if f.ScrollY != 0 {
		factor := 1 - f.ScrollY*zoomSpeed
		if factor < minZoomFactor {
			factor = minZoomFactor
		}
		c.Dist *= factor
	}
	if c.Dist < minDist {
		c.Dist = minDist
	}
}

// ViewTransform builds the world-to-camera transform for this frame: yaw
// about the vertical axis first, then pitch, then a push back along +Z by
// Dist. Rebuilt from scratch every frame, never cached.
func (c *Camera) ViewTransform() math3d.Mat4 {
	return math3d.Mat4Translate(0, 0, c.Dist).
		Mul(math3d.Mat4RotateX(c.Pitch)).
		Mul(math3d.Mat4RotateY(c.Yaw))
}
