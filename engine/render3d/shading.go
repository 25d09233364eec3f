package render3d

import (
	"image/color"
	"math"
)

// DepthShade maps an average camera-space depth to [0,1]: 1 at the camera,
// 0 from ten units out. A crude distance fog, not lighting. NaN depths
// shade to 0.
func DepthShade(depth float64) float64 {
	s := 1 - depth/10
	switch {
	case math.IsNaN(s), s < 0:
		return 0
	case s > 1:
		return 1
	}
	return s
}

// Palette turns a depth shade into fill and stroke colors. It is the seam
// for swapping presentation without touching the pipeline.
type Palette interface {
	Colors(shade float64) (fill, stroke color.RGBA)
}

// Grayscale fills with a gray ramp, darker with distance, white outline.
type Grayscale struct{}

func (Grayscale) Colors(shade float64) (color.RGBA, color.RGBA) {
	v := uint8(math.Round(shade * 200))
	return color.RGBA{v, v, v, 255}, color.RGBA{255, 255, 255, 255}
}

// BlueSteel keeps a fixed blue hue and modulates its brightness by shade.
type BlueSteel struct{}

func (BlueSteel) Colors(shade float64) (color.RGBA, color.RGBA) {
	m := 0.25 + 0.75*shade
	fill := color.RGBA{
		R: uint8(math.Round(50 * m)),
		G: uint8(math.Round(100 * m)),
		B: uint8(math.Round(255 * m)),
		A: 255,
	}
	return fill, color.RGBA{255, 255, 255, 255}
}
