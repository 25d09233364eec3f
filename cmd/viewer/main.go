package main

import (
	"bytes"
	"flag"
	"fmt"
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/1siamBot/csg-viewer/engine/geom"
	"github.com/1siamBot/csg-viewer/engine/input"
	"github.com/1siamBot/csg-viewer/engine/models"
	"github.com/1siamBot/csg-viewer/engine/render3d"
)

const (
	ScreenWidth  = 1280
	ScreenHeight = 720
)

// Game implements ebiten.Game: one synchronous pipeline pass per frame.
type Game struct {
	triangles []geom.Triangle // immutable after startup
	camera    *render3d.Camera
	orbit     *render3d.Orbit // non-nil only with -inertia
	input     *input.State
	renderer  *render3d.Renderer

	face        *text.GoTextFace
	lastRecords int
}

func NewGame(triangles []geom.Triangle, palette render3d.Palette, inertia bool) (*Game, error) {
	src, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, fmt.Errorf("load HUD font: %w", err)
	}

	g := &Game{
		triangles: triangles,
		camera:    render3d.NewCamera(),
		input:     input.NewState(),
		renderer:  render3d.NewRenderer(),
		face:      &text.GoTextFace{Source: src, Size: 14},
	}
	g.renderer.Palette = palette
	if inertia {
		g.orbit = render3d.NewOrbit(g.camera, ebiten.TPS())
	}
	return g, nil
}

func (g *Game) Update() error {
	g.input.Update()
	frame := g.input.Frame()
	if g.orbit != nil {
		g.orbit.Apply(frame)
	} else {
		g.camera.Apply(frame)
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{18, 18, 26, 255})

	recs := render3d.BuildFrame(g.camera.ViewTransform(), g.triangles)
	g.renderer.Draw(screen, recs, g.camera.PanX, g.camera.PanY)
	g.lastRecords = len(recs)

	g.drawHUD(screen)
}

func (g *Game) drawHUD(screen *ebiten.Image) {
	msg := fmt.Sprintf(
		"Left-drag = rotate, Right-drag = pan, Scroll = zoom  |  %d/%d triangles",
		g.lastRecords, len(g.triangles),
	)
	op := &text.DrawOptions{}
	op.GeoM.Translate(10, 8)
	op.ColorScale.ScaleWithColor(color.RGBA{220, 220, 220, 255})
	text.Draw(screen, msg, g.face, op)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return ScreenWidth, ScreenHeight
}

func main() {
	modelPath := flag.String("model", "", "render a glTF/GLB file instead of the built-in CSG demo")
	paletteName := flag.String("palette", "gray", "fill palette: gray or blue")
	inertia := flag.Bool("inertia", false, "keep the model spinning briefly after a drag")
	flag.Parse()

	var triangles []geom.Triangle
	if *modelPath != "" {
		var err error
		triangles, err = models.LoadGLB(*modelPath)
		if err != nil {
			log.Fatal(err)
		}
		log.Printf("loaded %s: %d triangles", *modelPath, len(triangles))
	} else {
		triangles = geom.DemoSolid().Triangles()
		log.Printf("built demo solid: %d triangles", len(triangles))
	}

	var palette render3d.Palette
	switch *paletteName {
	case "gray":
		palette = render3d.Grayscale{}
	case "blue":
		palette = render3d.BlueSteel{}
	default:
		log.Fatalf("unknown palette %q", *paletteName)
	}

	game, err := NewGame(triangles, palette, *inertia)
	if err != nil {
		log.Fatal(err)
	}

	ebiten.SetWindowSize(ScreenWidth, ScreenHeight)
	ebiten.SetWindowTitle("CSG Viewer")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetVsyncEnabled(true)

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
