package input

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Frame is the per-frame input sample consumed by the camera. It is rebuilt
// from scratch every update; nothing queues across frames.
type Frame struct {
	Dragging  bool
	Primary   bool
	Secondary bool
	DragDX    float64
	DragDY    float64
	ScrollY   float64
}

// State tracks mouse state across frames so per-frame deltas can be derived.
type State struct {
	MouseX, MouseY   int
	MouseDX, MouseDY int // delta since last frame
	prevMouseX       int
	prevMouseY       int
	LeftPressed      bool
	RightPressed     bool
	ScrollY          float64

	// Drag
	DragStartX, DragStartY int
	Dragging               bool
	DragThreshold          int
}

func NewState() *State {
	return &State{DragThreshold: 3}
}

// Update should be called once at the start of every frame.
func (s *State) Update() {
	s.prevMouseX = s.MouseX
	s.prevMouseY = s.MouseY
	s.MouseX, s.MouseY = ebiten.CursorPosition()
	s.MouseDX = s.MouseX - s.prevMouseX
	s.MouseDY = s.MouseY - s.prevMouseY

	s.LeftPressed = ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	s.RightPressed = ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight)

	_, scrollY := ebiten.Wheel()
	s.ScrollY = scrollY

	// Drag starts once the cursor moves past the threshold with either
	// button held.
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) ||
		inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight) {
		s.DragStartX = s.MouseX
		s.DragStartY = s.MouseY
		s.Dragging = false
	}
	if (s.LeftPressed || s.RightPressed) && !s.Dragging {
		dx := s.MouseX - s.DragStartX
		dy := s.MouseY - s.DragStartY
		if dx*dx+dy*dy > s.DragThreshold*s.DragThreshold {
			s.Dragging = true
		}
	}
	if !s.LeftPressed && !s.RightPressed {
		s.Dragging = false
	}
}

// Frame returns this frame's camera-facing snapshot.
func (s *State) Frame() Frame {
	return Frame{
		Dragging:  s.Dragging,
		Primary:   s.LeftPressed,
		Secondary: s.RightPressed,
		DragDX:    float64(s.MouseDX),
		DragDY:    float64(s.MouseDY),
		ScrollY:   s.ScrollY,
	}
}
