package game

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/iburimskiy/wheel-of-luck/internal/config"
	"github.com/iburimskiy/wheel-of-luck/internal/geom"
	"github.com/iburimskiy/wheel-of-luck/internal/particle"
	"github.com/iburimskiy/wheel-of-luck/internal/spin"
)

// 1x1 white source for DrawTriangles, created on first draw
var whiteSubImage *ebiten.Image

func whiteSource() *ebiten.Image {
	if whiteSubImage == nil {
		img := ebiten.NewImage(3, 3)
		img.Fill(color.White)
		whiteSubImage = img.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
	}
	return whiteSubImage
}

func (g *game) Draw(screen *ebiten.Image) {
	g.drawBackground(screen)
	g.drawWheel(screen)
	g.drawPointer(screen)
	g.drawConfetti(screen)
	for _, b := range g.buttons {
		b.draw(screen)
	}
	g.drawHistory(screen)
	g.drawStatus(screen)
}

func (g *game) drawBackground(screen *ebiten.Image) {
	// Slow vertical gradient, brighter while the confetti is falling
	glow := 0.0
	if len(g.confetti) > 0 {
		glow = 0.06
	}
	for y := 0; y < config.WindowHeight; y += 4 {
		ratio := float64(y) / float64(config.WindowHeight)
		c := hsv(220+20*math.Sin(g.time*0.2+ratio*math.Pi), 0.45, 0.14+0.06*ratio+glow)
		vector.DrawFilledRect(screen, 0, float32(y), config.WindowWidth, 4, c, false)
	}
}

// wheelLabels is what the wheel shows: the spin snapshot while busy,
// otherwise the live list.
func (g *game) wheelLabels() []string {
	if g.Controller.Busy() {
		return g.Controller.Options()
	}
	return g.Options.Labels()
}

func (g *game) drawWheel(screen *ebiten.Image) {
	labels := g.wheelLabels()
	cx, cy, r := float64(config.WheelCenterX), float64(config.WheelCenterY), float64(config.WheelRadius)
	if len(labels) == 0 {
		vector.StrokeCircle(screen, float32(cx), float32(cy), float32(r), 2, color.RGBA{R: 120, G: 120, B: 130, A: 255}, true)
		ebitenutil.DebugPrintAt(screen, "No options!", int(cx)-33, int(cy)-8)
		return
	}

	n := len(labels)
	steps := config.WheelArcSteps/n + 2
	for i := range labels {
		fill := particle.DefaultPalette[i%len(particle.DefaultPalette)]
		// last slice would otherwise match the first one across the seam
		if n > 1 && i == n-1 && (n-1)%len(particle.DefaultPalette) == 0 {
			fill = particle.DefaultPalette[1]
		}
		drawFan(screen, geom.SegmentFan(cx, cy, r, i, n, g.angle, steps), fill)

		edge := geom.PointAt(cx, cy, geom.SegmentCenter(i, n, g.angle)-180/float64(n), r)
		vector.StrokeLine(screen, float32(cx), float32(cy), float32(edge.X), float32(edge.Y), 1, color.Black, true)
	}
	vector.StrokeCircle(screen, float32(cx), float32(cy), float32(r), 2, color.Black, true)

	for i, label := range labels {
		p := geom.PointAt(cx, cy, geom.SegmentCenter(i, n, g.angle), r*config.LabelRadiusFrac)
		w := len(label) * 6
		ebitenutil.DebugPrintAt(screen, label, int(p.X)-w/2, int(p.Y)-8)
	}
	vector.DrawFilledCircle(screen, float32(cx), float32(cy), 10, color.RGBA{R: 30, G: 30, B: 36, A: 255}, true)
}

func drawFan(screen *ebiten.Image, pts []geom.Point, c color.RGBA) {
	if len(pts) < 3 {
		return
	}
	vs := make([]ebiten.Vertex, len(pts))
	cr, cg, cb, ca := float32(c.R)/255, float32(c.G)/255, float32(c.B)/255, float32(c.A)/255
	for i, p := range pts {
		vs[i] = ebiten.Vertex{
			DstX: float32(p.X), DstY: float32(p.Y),
			SrcX: 1, SrcY: 1,
			ColorR: cr, ColorG: cg, ColorB: cb, ColorA: ca,
		}
	}
	screen.DrawTriangles(vs, geom.FanIndices(len(pts)-1), whiteSource(), &ebiten.DrawTrianglesOptions{})
}

func (g *game) drawPointer(screen *ebiten.Image) {
	cx := float64(config.WheelCenterX)
	top := float64(config.WheelCenterY - config.WheelRadius)
	// grows with whatever sound is playing
	size := 12 + 6*g.pulse
	pts := []geom.Point{
		{X: cx, Y: top + size},
		{X: cx - size, Y: top - size},
		{X: cx + size, Y: top - size},
	}
	drawFan(screen, pts, shade(color.RGBA{R: 255, G: 255, B: 255, A: 255}, 0.8+0.2*g.pulse))
}

func (g *game) drawConfetti(screen *ebiten.Image) {
	for _, p := range g.confetti {
		switch p.Shape {
		case particle.Circle:
			vector.DrawFilledCircle(screen, float32(p.X), float32(p.Y), float32(p.Size/2), p.Color, false)
		case particle.Square:
			drawPolygon(screen, geom.Polygon(p.X, p.Y, p.Size/math.Sqrt2, 4, p.Rotation+45), p.Color)
		case particle.Triangle:
			drawPolygon(screen, geom.Polygon(p.X, p.Y, p.Size/2, 3, p.Rotation), p.Color)
		}
	}
}

// drawPolygon fills a convex polygon as a fan around its centroid.
func drawPolygon(screen *ebiten.Image, corners []geom.Point, c color.RGBA) {
	if len(corners) < 3 {
		return
	}
	var centre geom.Point
	for _, p := range corners {
		centre.X += p.X
		centre.Y += p.Y
	}
	centre.X /= float64(len(corners))
	centre.Y /= float64(len(corners))

	pts := make([]geom.Point, 0, len(corners)+2)
	pts = append(pts, centre)
	pts = append(pts, corners...)
	pts = append(pts, corners[0])
	drawFan(screen, pts, c)
}

func (g *game) drawHistory(screen *ebiten.Image) {
	recent := g.History.Recent()
	if len(recent) == 0 {
		return
	}
	x, y := config.WindowWidth-150, 12
	ebitenutil.DebugPrintAt(screen, "Recent results", x, y)
	for i := len(recent) - 1; i >= 0; i-- {
		y += 14
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("#%d %s", recent[i].Seq, recent[i].Label), x, y)
	}
}

func (g *game) drawStatus(screen *ebiten.Image) {
	var status string
	switch g.Controller.State() {
	case spin.Spinning:
		status = "Spinning " + formatDuration(g.Controller.Elapsed()) + " - Space or Stop to slow down"
	case spin.Stopping:
		status = "Slowing down..."
	default:
		switch {
		case g.result != "":
			status = "You won: " + g.result + "!"
		case g.Options.Len() == 0:
			status = "No options - click Add or Load"
		default:
			status = fmt.Sprintf("%d options - Space or Spin to play", g.Options.Len())
		}
	}
	if g.message != "" {
		status += " | " + g.message
	}
	if g.lastErr != nil {
		status += " | Error: " + g.lastErr.Error()
	}
	ebitenutil.DebugPrintAt(screen, status, 12, 12)
	ebitenutil.DebugPrintAt(screen, "Esc/Q: Quit", 12, config.ButtonY-20)
}
