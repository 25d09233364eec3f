package render3d

import (
	"github.com/charmbracelet/harmonica"

	"github.com/1siamBot/csg-viewer/engine/input"
)

// Orbit adds rotation inertia on top of a Camera. While the primary button
// drags, the drag drives yaw/pitch velocity directly; after release a
// critically damped spring bleeds the velocity off, so the model keeps
// spinning briefly and settles without overshoot. Pan and zoom stay
// immediate.
type Orbit struct {
	Camera *Camera

	yawVel, yawAcc     float64
	pitchVel, pitchAcc float64
	spring             harmonica.Spring
}

func NewOrbit(c *Camera, fps int) *Orbit {
	return &Orbit{
		Camera: c,
		// frequency 4.0, damping 1.0: critically damped
		spring: harmonica.NewSpring(harmonica.FPS(fps), 4.0, 1.0),
	}
}

// Apply replaces Camera.Apply when inertia is enabled.
func (o *Orbit) Apply(f input.Frame) {
	if f.Dragging && f.Primary {
		o.yawVel = -f.DragDX * rotateSpeed
		o.pitchVel = f.DragDY * rotateSpeed
	}
	o.Camera.Yaw += o.yawVel
	o.Camera.Pitch += o.pitchVel
	o.yawVel, o.yawAcc = o.spring.Update(o.yawVel, o.yawAcc, 0)
	o.pitchVel, o.pitchAcc = o.spring.Update(o.pitchVel, o.pitchAcc, 0)

	rest := f
	rest.Primary = false
	o.Camera.Apply(rest)
}
