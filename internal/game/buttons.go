package game

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/iburimskiy/wheel-of-luck/internal/config"
	"github.com/iburimskiy/wheel-of-luck/internal/geom"
)

type action int

const (
	actSpin action = iota
	actStop
	actAdd
	actRemove
	actShuffle
	actSave
	actLoad
	actImport
	actExport
)

func (a action) String() string {
	switch a {
	case actSpin:
		return "spin"
	case actStop:
		return "stop"
	case actAdd:
		return "add"
	case actRemove:
		return "remove"
	case actShuffle:
		return "shuffle"
	case actSave:
		return "save"
	case actLoad:
		return "load"
	case actImport:
		return "import"
	case actExport:
		return "export"
	default:
		return "unknown"
	}
}

type button struct {
	act   action
	label string
	rect  geom.Rect

	hovered bool
	pressed bool
	enabled bool
}

func newButtons() []*button {
	labels := []struct {
		act   action
		label string
	}{
		{actSpin, "Spin"},
		{actStop, "Stop"},
		{actAdd, "Add"},
		{actRemove, "Remove"},
		{actShuffle, "Shuffle"},
		{actSave, "Save"},
		{actLoad, "Load"},
		{actImport, "Import"},
		{actExport, "Export"},
	}
	out := make([]*button, len(labels))
	for i, l := range labels {
		out[i] = &button{
			act:   l.act,
			label: l.label,
			rect: geom.Rect{
				X: config.ButtonX + i*(config.ButtonWidth+config.ButtonGap),
				Y: config.ButtonY,
				W: config.ButtonWidth,
				H: config.ButtonHeight,
			},
		}
	}
	return out
}

func (b *button) draw(screen *ebiten.Image) {
	var bgColor color.RGBA
	switch {
	case !b.enabled:
		bgColor = color.RGBA{R: 60, G: 64, B: 72, A: 255} // Disabled
	case b.pressed:
		bgColor = color.RGBA{R: 60, G: 80, B: 120, A: 255} // Pressed
	case b.hovered:
		bgColor = color.RGBA{R: 80, G: 100, B: 140, A: 255} // Hovered
	default:
		bgColor = color.RGBA{R: 100, G: 120, B: 160, A: 255} // Normal
	}
	r := b.rect
	vector.DrawFilledRect(screen, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), bgColor, false)

	borderColor := color.RGBA{R: 150, G: 170, B: 200, A: 255}
	if !b.enabled {
		borderColor = shade(borderColor, 0.5)
	}
	vector.StrokeRect(screen, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), 2, borderColor, false)

	textWidth := len(b.label) * 6 // debug font glyph width
	textX := r.X + (r.W-textWidth)/2
	textY := r.Y + (r.H-16)/2
	ebitenutil.DebugPrintAt(screen, b.label, textX, textY)
}
